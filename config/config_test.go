package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_AcceptsExample(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("example config must validate: %v", err)
	}
	if cfg.Source.BaseURL != "https://www.usda.gov/oce/commodity/wasde" {
		t.Errorf("unexpected base url: %s", cfg.Source.BaseURL)
	}
	if cfg.Source.TimeoutSeconds != 60 {
		t.Errorf("unexpected timeout: %d", cfg.Source.TimeoutSeconds)
	}
	if cfg.Publish.Template != "./index.html" {
		t.Errorf("unexpected template path: %s", cfg.Publish.Template)
	}
	if cfg.Database.Path != "./wasdex.db" {
		t.Errorf("unexpected db path: %s", cfg.Database.Path)
	}
}

func TestValidateYAMLContent_RejectsInvalidURL(t *testing.T) {
	t.Parallel()

	content := []byte(`source:
  base_url: "not a url"
  timeout_seconds: 60
publish:
  template: "./index.html"
database:
  path: "./wasdex.db"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for invalid source url")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsNonPositiveTimeout(t *testing.T) {
	t.Parallel()

	content := []byte(`source:
  base_url: "https://www.usda.gov/oce/commodity/wasde"
  timeout_seconds: 0
publish:
  template: "./index.html"
database:
  path: "./wasdex.db"
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for timeout_seconds 0")
	}
}

func TestValidateYAMLContent_DefaultsFillMissingSections(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("publish:\n  template: \"./dash.html\"\n"))
	if err != nil {
		t.Fatalf("partial config must validate with defaults: %v", err)
	}
	if cfg.Source.BaseURL == "" {
		t.Fatalf("expected default source base url")
	}
	if cfg.Publish.Template != "./dash.html" {
		t.Fatalf("explicit template must win over default, got %s", cfg.Publish.Template)
	}
}
