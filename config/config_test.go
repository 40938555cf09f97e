package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/validation"
)

type mockFS struct {
	files     map[string]bool
	configDir string
}

func (m *mockFS) Exists(path string) bool        { return m.files[path] }
func (m *mockFS) LoadEnv(string) error           { return nil }
func (m *mockFS) UserConfigDir() (string, error) { return m.configDir, nil }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestResolverSearchOrder(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"cmd dir wins", []string{"cmd/reddish/config.yml", "config.yml"}, "cmd/reddish/config.yml"},
		{"config dir", []string{"config/config.yml", "config.yml"}, "config/config.yml"},
		{"working dir", []string{"config.yml"}, "config.yml"},
		{"user config dir", []string{"/home/u/.config/reddish/config.yml"}, "/home/u/.config/reddish/config.yml"},
		{"nothing found", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &mockFS{files: map[string]bool{}, configDir: "/home/u/.config"}
			for _, f := range tt.files {
				fs.files[f] = true
			}
			resolver := &Resolver{FileSystem: fs}
			if got := resolver.ResolveFiles("reddish", LoaderConfig{}).ConfigFile; got != tt.want {
				t.Errorf("ConfigFile = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolverEnvFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{".env": true, "cmd/reddish/.env.reddish": true}}
	resolver := &Resolver{FileSystem: fs}

	if got := resolver.ResolveFiles("reddish", LoaderConfig{}).EnvFile; got != "cmd/reddish/.env.reddish" {
		t.Errorf("EnvFile = %q, want cmd/reddish/.env.reddish", got)
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{files: map[string]bool{"config.yml": true}}}
	files := resolver.ResolveFiles("reddish", LoaderConfig{ConfigFile: "/etc/r.yml", EnvFile: "/etc/r.env"})
	if files.ConfigFile != "/etc/r.yml" || files.EnvFile != "/etc/r.env" {
		t.Errorf("explicit paths not kept: %+v", files)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)

	if lc.FileSystem != fs {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"OUTPUT", []string{"output"}},
		{"DATE_FORMAT", []string{"date_format", "date.format"}},
		{"LOGGING_NO_COLOR", []string{"logging_no_color", "logging.no.color", "logging.no_color", "logging_no.color"}},
	}
	for _, tt := range tests {
		if got := envKeyVariants(tt.key); !slices.Equal(got, tt.want) {
			t.Errorf("envKeyVariants(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestLoadCLIConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: reddish-test
environment: staging
output: json
date_format: "%d/%m/%Y"
logging:
  level: info
  format: json
  no_color: true
`)

	cfg, err := LoadCLIConfig("reddish", WithConfigFile(path))
	if err != nil {
		t.Fatalf("LoadCLIConfig failed: %v", err)
	}
	if cfg.Name != "reddish-test" {
		t.Errorf("Name = %q, want reddish-test", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("Environment = %q, want staging", cfg.Environment)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.DateFormat != "%d/%m/%Y" {
		t.Errorf("DateFormat = %q, want %%d/%%m/%%Y", cfg.DateFormat)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" || !cfg.Logging.NoColor {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Logging.Output = %q, want stderr default", cfg.Logging.Output)
	}
}

func TestLoadCLIConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "output: text\nlogging:\n  level: info\n")

	t.Setenv("REDDISH_OUTPUT", "json")
	t.Setenv("REDDISH_LOGGING_LEVEL", "error")
	t.Setenv("REDDISH_DATE_FORMAT", "%Y")
	t.Setenv("OUTPUT", "ignored-without-prefix")

	cfg, err := LoadCLIConfig("reddish", WithConfigFile(path))
	if err != nil {
		t.Fatalf("LoadCLIConfig failed: %v", err)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want json from env", cfg.Output)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error from env", cfg.Logging.Level)
	}
	if cfg.DateFormat != "%Y" {
		t.Errorf("DateFormat = %q, want %%Y from env", cfg.DateFormat)
	}
}

func TestLoadCLIConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "REDDISH_ENVIRONMENT=development\n")
	t.Cleanup(func() { os.Unsetenv("REDDISH_ENVIRONMENT") })

	cfg, err := LoadCLIConfig("reddish",
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("LoadCLIConfig failed: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development from .env", cfg.Environment)
	}
}

func TestLoadCLIConfigDefaults(t *testing.T) {
	cfg, err := LoadCLIConfig("reddish",
		WithFileSystem(&mockFS{files: map[string]bool{}}))
	if err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Name != "reddish" {
		t.Errorf("Name = %q, want program name", cfg.Name)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.DateFormat != DefaultDateFormat {
		t.Errorf("DateFormat = %q, want %q", cfg.DateFormat, DefaultDateFormat)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want text", cfg.Output)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "output: [unclosed\n")

	_, err := LoadCLIConfig("reddish", WithConfigFile(path))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidFormat {
		t.Errorf("expected INVALID_FORMAT AppError, got %v", err)
	}
}

func TestCLIConfigApplyDefaultsDebug(t *testing.T) {
	cfg := CLIConfig{Name: "reddish", Debug: true}
	cfg.ApplyDefaults()
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestCLIConfigValidate(t *testing.T) {
	valid := func() CLIConfig {
		cfg := CLIConfig{Name: "reddish"}
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*CLIConfig)
		field  string
	}{
		{"valid", func(*CLIConfig) {}, ""},
		{"missing name", func(c *CLIConfig) { c.Name = "" }, "name"},
		{"bad environment", func(c *CLIConfig) { c.Environment = "qa" }, "environment"},
		{"bad output", func(c *CLIConfig) { c.Output = "xml" }, "output"},
		{"bad date format", func(c *CLIConfig) { c.DateFormat = "%Q" }, "date_format"},
		{"bad logging level", func(c *CLIConfig) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected *AppError, got %T", err)
			}
			if fields, ok := appErr.Details["fields"].([]validation.FieldError); ok {
				if fields[0].Field != tt.field {
					t.Errorf("field = %q, want %q", fields[0].Field, tt.field)
				}
			} else if appErr.Details["field"] != tt.field {
				t.Errorf("field detail = %v, want %q", appErr.Details["field"], tt.field)
			}
		})
	}
}
