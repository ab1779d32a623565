package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "demo"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Paths.Pages != DefaultPages {
		t.Errorf("Pages = %q, want %q", cfg.Paths.Pages, DefaultPages)
	}
	if cfg.Address() != "localhost:3000" {
		t.Errorf("Address = %q", cfg.Address())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing strata.json")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadInvalidPort(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"port": 99999}`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected validation error for port out of range")
	}
}

func TestPagesPathResolution(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"paths": {"pages": "site/pages"}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := filepath.Join(dir, "site", "pages")
	if cfg.PagesPath() != want {
		t.Errorf("PagesPath = %q, want %q", cfg.PagesPath(), want)
	}
}

func TestFindProjectRoot(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{}`)

	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot error: %v", err)
	}
	// Resolve symlinks: t.TempDir may sit behind one on some platforms.
	wantInfo, _ := os.Stat(dir)
	gotInfo, _ := os.Stat(root)
	if !os.SameFile(wantInfo, gotInfo) {
		t.Errorf("root = %q, want %q", root, dir)
	}
}
