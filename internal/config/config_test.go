package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bloxi-go/bloxi/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Server.MetricsPath != DefaultMetricsPath {
		t.Errorf("Server.MetricsPath = %q, want %q", cfg.Server.MetricsPath, DefaultMetricsPath)
	}
	if cfg.Publish.Target != TargetDisk {
		t.Errorf("Publish.Target = %q, want %q", cfg.Publish.Target, TargetDisk)
	}
	if !cfg.StrictMode() {
		t.Error("strict mode should default to on")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if !errors.HasCode(err, "E101") {
		t.Fatalf("expected E101 for missing config, got %v", err)
	}

	writeFile(t, filepath.Join(tmpDir, ConfigFileName), `{
  "name": "demo",
  "server": {
    "port": 8080,
    "host": "0.0.0.0"
  },
  "page": {
    "title": "Demo",
    "pretty": true,
    "strict": false
  },
  "publish": {
    "target": "s3",
    "bucket": "my-assets",
    "region": "eu-west-1"
  },
  "breakpoints": {"md": 800}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address = %q", cfg.Address())
	}
	if !cfg.Page.Pretty || cfg.Page.Title != "Demo" {
		t.Errorf("Page = %+v", cfg.Page)
	}
	if cfg.Page.Lang != DefaultLang {
		t.Errorf("Page.Lang = %q, want default", cfg.Page.Lang)
	}
	if cfg.StrictMode() {
		t.Error("strict mode should be off")
	}
	if cfg.Publish.Bucket != "my-assets" || cfg.Publish.Region != "eu-west-1" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Breakpoints["md"] != 800 {
		t.Errorf("Breakpoints = %v", cfg.Breakpoints)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir(), tmpDir)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, YAMLFileName), `
server:
  port: 4000
  metricsPath: /internal/metrics
  tracing: true
page:
  lang: de
publish:
  dir: public/css
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 4000 || !cfg.Server.Tracing {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.MetricsPath != "/internal/metrics" {
		t.Errorf("MetricsPath = %q", cfg.Server.MetricsPath)
	}
	if cfg.Page.Lang != "de" {
		t.Errorf("Lang = %q", cfg.Page.Lang)
	}
	if got, want := cfg.PublishDir(), filepath.Join(tmpDir, "public/css"); got != want {
		t.Errorf("PublishDir = %q, want %q", got, want)
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ConfigFileName), `{"server": {"port": 1111}}`)
	writeFile(t, filepath.Join(tmpDir, YAMLFileName), "server:\n  port: 2222\n")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 1111 {
		t.Errorf("Port = %d, want the JSON value", cfg.Server.Port)
	}
}

func TestLoadFileParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  string
	}{
		{"json", ConfigFileName, "not valid json", "JSON"},
		{"yaml", YAMLFileName, "server: [1, 2", "YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			_, err := LoadFile(path)
			if !errors.HasCode(err, "E102") {
				t.Fatalf("expected E102, got %v", err)
			}
			e := errors.FromError(err, "")
			if !strings.Contains(e.Suggestion, tt.format) {
				t.Errorf("suggestion %q should name %s", e.Suggestion, tt.format)
			}
			if e.Location == nil || e.Location.File != path {
				t.Errorf("location = %v, want %s", e.Location, path)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.HasCode(err, "E101") {
		t.Errorf("expected E101, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port"},
		{"empty host", func(c *Config) { c.Server.Host = "" }, "server.host"},
		{"relative base", func(c *Config) { c.Server.Base = "app" }, "server.base"},
		{"relative metrics path", func(c *Config) { c.Server.MetricsPath = "metrics" }, "server.metricsPath"},
		{"unknown target", func(c *Config) { c.Publish.Target = "ftp" }, "publish.target"},
		{"s3 without bucket", func(c *Config) { c.Publish.Target = TargetS3 }, "publish.bucket"},
		{"bad bucket name", func(c *Config) {
			c.Publish.Target = TargetS3
			c.Publish.Bucket = "Bad_Bucket"
		}, "publish.bucket"},
		{"bad endpoint", func(c *Config) { c.Publish.Endpoint = "not a url" }, "publish.endpoint"},
		{"disk without dir", func(c *Config) { c.Publish.Dir = "" }, "publish.dir"},
		{"unknown breakpoint", func(c *Config) { c.Breakpoints = map[string]int{"huge": 2000} }, "breakpoints"},
		{"zero breakpoint", func(c *Config) { c.Breakpoints = map[string]int{"md": 0} }, "breakpoints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.HasCode(err, "E103") {
				t.Fatalf("expected E103, got %v", err)
			}
			e := errors.FromError(err, "")
			if !strings.Contains(e.Detail, tt.field) {
				t.Errorf("detail %q should name %s", e.Detail, tt.field)
			}
		})
	}
}

func TestValidateSuggestion(t *testing.T) {
	cfg := New()
	cfg.Publish.Target = "ftp"

	e := errors.FromError(cfg.Validate(), "")
	if e.Suggestion != "Use one of: disk, s3" {
		t.Errorf("Suggestion = %q", e.Suggestion)
	}
}

func TestValidateBreakpointOrder(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]int
		wantErr   string
	}{
		{"defaults", nil, ""},
		{"raised within range", map[string]int{"md": 800}, ""},
		{"all raised together", map[string]int{"xs": 500, "sm": 700, "md": 900, "lg": 1100, "xl": 1300, "2xl": 1600}, ""},
		{"md past lg", map[string]int{"md": 2000}, "breakpoints.lg (1024px) must be wider than breakpoints.md (2000px)"},
		{"equal neighbours", map[string]int{"sm": 768}, "breakpoints.md (768px) must be wider than breakpoints.sm (768px)"},
		{"xs past sm", map[string]int{"xs": 700}, "breakpoints.sm (640px) must be wider than breakpoints.xs (700px)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.Breakpoints = tt.overrides

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, "E103") {
				t.Fatalf("expected E103, got %v", err)
			}
			e := errors.FromError(err, "")
			if e.Detail != tt.wantErr {
				t.Errorf("Detail = %q, want %q", e.Detail, tt.wantErr)
			}
			if e.Suggestion != "Breakpoint widths must increase in order: xs < sm < md < lg < xl < 2xl" {
				t.Errorf("Suggestion = %q", e.Suggestion)
			}
		})
	}
}

func TestLoadFileBreakpointOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, `{"breakpoints": {"md": 2000}}`)

	_, err := LoadFile(path)
	if !errors.HasCode(err, "E103") {
		t.Fatalf("expected E103, got %v", err)
	}
	if e := errors.FromError(err, ""); e.Location == nil || e.Location.File != path {
		t.Errorf("location should point at the config file, got %v", e.Location)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, `{"publish": {"target": "s3"}}`)

	_, err := LoadFile(path)
	if !errors.HasCode(err, "E103") {
		t.Fatalf("expected E103, got %v", err)
	}
	if e := errors.FromError(err, ""); e.Location == nil || e.Location.File != path {
		t.Errorf("location should point at the config file, got %v", e.Location)
	}
}

func TestSave(t *testing.T) {
	for _, name := range []string{ConfigFileName, YAMLFileName} {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), name)

			cfg := New()
			cfg.Server.Port = 9000
			cfg.Page.Title = "Saved"

			if err := cfg.Save(); err == nil {
				t.Error("expected error when saving without path")
			}
			if err := cfg.SaveTo(configPath); err != nil {
				t.Fatalf("SaveTo error: %v", err)
			}

			loaded, err := LoadFile(configPath)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if loaded.Server.Port != 9000 || loaded.Page.Title != "Saved" {
				t.Errorf("loaded = %+v", loaded)
			}

			loaded.Server.Port = 9001
			if err := loaded.Save(); err != nil {
				t.Fatalf("Save error: %v", err)
			}
			reloaded, err := LoadFile(configPath)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if reloaded.Server.Port != 9001 {
				t.Errorf("Port = %d, want 9001", reloaded.Server.Port)
			}
		})
	}
}

func TestURL(t *testing.T) {
	cfg := New()
	if got := cfg.URL(); got != "http://localhost:3000" {
		t.Errorf("URL = %q", got)
	}
	cfg.Server.Base = "/app"
	if got := cfg.URL(); got != "http://localhost:3000/app" {
		t.Errorf("URL with base = %q", got)
	}
}

func TestPublishDirAbsolute(t *testing.T) {
	cfg := New()
	cfg.Publish.Dir = "/var/www/css"
	if got := cfg.PublishDir(); got != "/var/www/css" {
		t.Errorf("PublishDir = %q", got)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Page.Title != DefaultTitle || cfg.Page.Lang != DefaultLang {
		t.Errorf("Page = %+v", cfg.Page)
	}
	if cfg.Publish.Target != TargetDisk || cfg.Publish.Dir != DefaultPublishDir {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if !cfg.StrictMode() {
		t.Error("strict should default to on")
	}
}

func TestExists(t *testing.T) {
	for _, name := range []string{ConfigFileName, YAMLFileName} {
		tmpDir := t.TempDir()
		if Exists(tmpDir) {
			t.Error("Exists should be false for empty directory")
		}
		writeFile(t, filepath.Join(tmpDir, name), "{}")
		if !Exists(tmpDir) {
			t.Errorf("Exists should be true after creating %s", name)
		}
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nestedDir := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := FindProjectRoot(nestedDir)
	if !errors.HasCode(err, "E101") {
		t.Errorf("expected E101 when no config exists, got %v", err)
	}

	writeFile(t, filepath.Join(tmpDir, ConfigFileName), "{}")

	for _, start := range []string{nestedDir, filepath.Join(tmpDir, "a"), tmpDir} {
		root, err := FindProjectRoot(start)
		if err != nil {
			t.Fatalf("FindProjectRoot(%s) error: %v", start, err)
		}
		if root != tmpDir {
			t.Errorf("FindProjectRoot(%s) = %q, want %q", start, root, tmpDir)
		}
	}
}
