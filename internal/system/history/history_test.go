package history

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), Name)

	err := Save(path, func(w io.Writer) (int, error) {
		n, err := io.WriteString(w, "(+ 1 2)\n")

		return n, err
	})
	if err != nil {
		t.Fatal(err)
	}

	var got string

	err = Load(path, func(r io.Reader) (int, error) {
		b, err := io.ReadAll(r)
		got = string(b)

		return len(b), err
	})
	if err != nil || got != "(+ 1 2)\n" {
		t.Fatalf("expected the saved history, got %q, %v", got, err)
	}
}

func TestPath(t *testing.T) {
	if p := Path("/tmp/h"); p != "/tmp/h" {
		t.Fatalf("expected override, got %s", p)
	}

	if p := Path(""); !strings.HasSuffix(p, Name) {
		t.Fatalf("expected default name, got %s", p)
	}

	if err := Load(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
