package content

import (
	"encoding/json"
	"testing"
)

func TestDecodeTyped_EmptyOnUnusableInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "not json", "[1,2]", "42", `"str"`, `{"a":`, `{"a":1`} {
		got := DecodeTyped(raw)
		if got == nil {
			t.Fatalf("DecodeTyped(%q) returned nil map", raw)
		}
		if len(got) != 0 {
			t.Fatalf("DecodeTyped(%q) = %v, want empty", raw, got)
		}
	}
}

func TestDecodeTyped_IgnoresDataAfterObject(t *testing.T) {
	for _, raw := range []string{`{"a":1} trailing`, `{"a":1}}`, `{"a":1}]`, `{"a":1} {"b":2}`} {
		got := DecodeTyped(raw)
		if len(got) != 1 || got["a"] != "1" {
			t.Fatalf("DecodeTyped(%q) = %v, want map[a:1]", raw, got)
		}
	}
}

func TestDecodeTyped_StringifiesScalarsAndDropsTheRest(t *testing.T) {
	got := DecodeTyped(`{"a":1,"b":"x","c":null,"d":{"e":1},"f":[1],"g":true,"h":2.5}`)
	want := map[string]string{"a": "1", "b": "x", "g": "true", "h": "2.5"}
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("key %q: expected %q got %q", k, v, got[k])
		}
	}
}

func TestDecodeTyped_DuplicateKeysLastWins(t *testing.T) {
	got := DecodeTyped(`{"a":"first","a":"second"}`)
	if got["a"] != "second" {
		t.Fatalf("expected last value to win, got %q", got["a"])
	}
}

func TestDecodeRaw_KeepsNativeTypes(t *testing.T) {
	got := DecodeRaw(`{"chartData":[{"x":"Mon","y":3}],"unit":"kg","n":7}`)

	list, ok := got["chartData"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected chartData array, got %#v", got["chartData"])
	}
	point, ok := list[0].(map[string]any)
	if !ok {
		t.Fatalf("expected object element, got %#v", list[0])
	}
	if point["y"] != json.Number("3") {
		t.Fatalf("expected json.Number 3, got %#v", point["y"])
	}
	if got["n"] != json.Number("7") {
		t.Fatalf("expected json.Number 7, got %#v", got["n"])
	}
}
