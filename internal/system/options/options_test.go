package options

import "testing"

func TestScript(t *testing.T) {
	ParseArgs([]string{"-t", "main.sprig", "a", "b"}, true)

	if Script() != "main.sprig" || Interactive() || !Trace() {
		t.Fatalf("unexpected options: %q %v %v", Script(), Interactive(), Trace())
	}

	if a := Args(); len(a) != 2 || a[0] != "a" || a[1] != "b" {
		t.Fatalf("unexpected arguments: %v", a)
	}
}

func TestEval(t *testing.T) {
	ParseArgs([]string{"--ns", "app", "-e", "(+ 1 2)"}, true)

	if Command() != "(+ 1 2)" || Namespace() != "app" || Interactive() {
		t.Fatalf("unexpected options: %q %q %v", Command(), Namespace(), Interactive())
	}
}

func TestInteractive(t *testing.T) {
	ParseArgs([]string{}, true)

	if !Interactive() || Script() != "" || Command() != "" {
		t.Fatal("expected an interactive session on a terminal")
	}

	ParseArgs(nil, false)

	if Interactive() {
		t.Fatal("expected no interactive session without a terminal")
	}

	ParseArgs([]string{"-i", "--config", "sprig.yaml"}, false)

	if !Interactive() || Config() != "sprig.yaml" {
		t.Fatal("expected -i to force an interactive session")
	}
}
