// Released under an MIT license. See LICENSE.

// Package config reads sprig's optional YAML settings file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"
)

// Variable names the environment variable consulted when no path is given.
const Variable = "SPRIG_CONFIG"

// T (config) holds settings that can also come from the command line.
// Command-line values win.
type T struct {
	History   string   `yaml:"history"`   // REPL history file.
	Namespace string   `yaml:"namespace"` // Namespace current after boot.
	Prelude   []string `yaml:"prelude"`   // Files loaded before anything else runs.
	Trace     bool     `yaml:"trace"`     // Log analyzed forms.
}

// Load reads the file at path, or at $SPRIG_CONFIG if path is empty. With
// neither, it returns an empty configuration.
func Load(path string) (*T, error) {
	if path == "" {
		path = os.Getenv(Variable)
	}

	if path == "" {
		return &T{}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.Decorate(errorx.ExternalError.Wrap(err, "cannot read config"), "%s", path)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, errorx.Decorate(err, "%s", path)
	}

	return c, nil
}

// Parse decodes YAML settings. Unknown keys are an error.
func Parse(b []byte) (*T, error) {
	c := &T{}

	d := yaml.NewDecoder(bytes.NewReader(b))
	d.KnownFields(true)

	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errorx.IllegalFormat.Wrap(err, "invalid config")
	}

	return c, nil
}
