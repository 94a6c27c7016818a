package content

import "testing"

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{page: 0, size: 10, wantPage: 1, wantSize: 10},
		{page: -5, size: 20, wantPage: 1, wantSize: 20},
		{page: 3, size: 0, wantPage: 3, wantSize: DefaultPageSize},
		{page: 3, size: -1, wantPage: 3, wantSize: DefaultPageSize},
		{page: 2, size: 101, wantPage: 2, wantSize: MaxPageSize},
		{page: 2, size: 5000, wantPage: 2, wantSize: MaxPageSize},
		{page: 1, size: 1, wantPage: 1, wantSize: 1},
		{page: 9, size: 100, wantPage: 9, wantSize: 100},
	}

	for _, tc := range cases {
		page, size := ClampPage(tc.page, tc.size)
		if page != tc.wantPage || size != tc.wantSize {
			t.Fatalf("ClampPage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.size, page, size, tc.wantPage, tc.wantSize)
		}
	}
}
