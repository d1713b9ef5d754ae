package config

import "testing"

func TestParseDefaultsRenderOptionsOn(t *testing.T) {
	cfg, err := Parse([]byte(`precode: [env.js]`), "jsflow.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Precode) != 1 || cfg.Precode[0] != "env.js" {
		t.Fatalf("precode: got %v", cfg.Precode)
	}
	if !cfg.Render.ShowCallTallies || !cfg.Render.ShowInstantiations {
		t.Fatalf("expected render options to default on, got %+v", cfg.Render)
	}
}

func TestParseOverridesRenderOptions(t *testing.T) {
	cfg, err := Parse([]byte(`
docstring_pattern: "@(?<token>[A-Za-z]+)"
render:
  show_call_tallies: false
  show_instantiations: false
`), "jsflow.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.DocstringPattern == "" {
		t.Fatal("expected docstring_pattern to be set")
	}
	if cfg.Render.ShowCallTallies || cfg.Render.ShowInstantiations {
		t.Fatalf("expected render options overridden off, got %+v", cfg.Render)
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("precode: [unterminated"), "jsflow.yaml")
	if err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}
