package adapted

import "testing"

func TestActualBytes(t *testing.T) {
	for in, want := range map[string]string{
		`plain`:        "plain",
		`a\nb`:         "a\nb",
		`tab\there`:    "tab\there",
		`quote\"d`:     "quote\"d",
		`back\\slash`:  "back\\slash",
		`caf\u00e9`:    "café",
		`\101`:         "A",
	} {
		got, err := ActualBytes(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}

		if got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestActualBytesRejectsUnknownEscape(t *testing.T) {
	if _, err := ActualBytes(`\q`); err == nil {
		t.Fatal("expected an error for \\q")
	}
}
