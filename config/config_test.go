package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astgen.yaml")
	content := `output: generated/ast.hpp
namespace: seatbelt
runlog: .astgen/runs.db
force: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Output != "generated/ast.hpp" {
		t.Errorf("output: got %q", cfg.Output)
	}
	if cfg.Namespace != "seatbelt" {
		t.Errorf("namespace: got %q", cfg.Namespace)
	}
	if cfg.RunLog != ".astgen/runs.db" {
		t.Errorf("runlog: got %q", cfg.RunLog)
	}
	if !cfg.Force {
		t.Error("force: expected true")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("output: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
