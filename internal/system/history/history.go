// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's line history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

// Name is the history file's name in the user's home directory.
const Name = ".sprig_history"

// Path returns override if it is set and the default history path
// otherwise.
func Path(override string) string {
	if override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Name
	}

	return filepath.Join(home, Name)
}

// Load passes the history file at path to read.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save passes the truncated history file at path to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
