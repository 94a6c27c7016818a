package content

import "testing"

func TestResolveID(t *testing.T) {
	cases := []struct {
		raw    string
		want   uint64
		wantOK bool
	}{
		{raw: "1,1", want: 1, wantOK: true},
		{raw: " 7 ", want: 7, wantOK: true},
		{raw: " 12 , 3", want: 12, wantOK: true},
		{raw: "abc", wantOK: false},
		{raw: "", wantOK: false},
		{raw: "   ", wantOK: false},
		{raw: ",5", wantOK: false},
		{raw: "-1", wantOK: false},
		{raw: "1.5", wantOK: false},
		{raw: "+7", want: 7, wantOK: true},
		{raw: "9223372036854775807", want: 9223372036854775807, wantOK: true},
		{raw: "9223372036854775808", wantOK: false},
		{raw: "18446744073709551615", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := ResolveID(tc.raw)
		if ok != tc.wantOK {
			t.Fatalf("ResolveID(%q) ok=%v, want %v", tc.raw, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ResolveID(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
