// Package config implements jsflow.yaml: the ambient run configuration
// listing precode files, an optional docstring-regex override, and render
// options. Grounded in the teacher's internal/ext.Config use of
// gopkg.in/yaml.v3 for a small declarative YAML surface.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level jsflow.yaml document.
type Config struct {
	// Precode lists auxiliary source files, applied in order before the
	// main file during expansion (spec §3's "Precode" glossary entry).
	Precode []string `yaml:"precode"`

	// DocstringPattern overrides internal/jsdoc's default @returns regex.
	DocstringPattern string `yaml:"docstring_pattern,omitempty"`

	Render RenderOptions `yaml:"render,omitempty"`
}

// RenderOptions toggles optional sections of Program.String().
type RenderOptions struct {
	ShowCallTallies     bool `yaml:"show_call_tallies"`
	ShowInstantiations  bool `yaml:"show_instantiations"`
}

// Default returns a Config with the renderer's everything-on defaults.
func Default() Config {
	return Config{Render: RenderOptions{ShowCallTallies: true, ShowInstantiations: true}}
}

// Load reads and parses a jsflow.yaml file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses jsflow.yaml content from bytes. path is used only for
// error messages.
func Parse(data []byte, path string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
