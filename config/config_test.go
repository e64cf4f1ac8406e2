package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/resultiter/errors"
)

func TestBaseConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := BaseConfig{Name: "ingest"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging in development, got %q", cfg.Logging.Level)
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := BaseConfig{Name: "ingest", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info logging, got %q", cfg.Logging.Level)
		}
	})
}

func TestBaseConfigValidate(t *testing.T) {
	valid := func(env string) BaseConfig {
		cfg := BaseConfig{Name: "ingest", Environment: env}
		cfg.Logging.ApplyDefaults()
		return cfg
	}
	badLogging := valid("staging")
	badLogging.Logging.Level = "loud"

	tests := []struct {
		name    string
		cfg     BaseConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", valid("development"), false, ""},
		{"valid staging", valid("staging"), false, ""},
		{"valid production", valid("production"), false, ""},
		{"missing name", BaseConfig{Environment: "production"}, true, "name: is required"},
		{"invalid environment", valid("invalid"), true, "environment: must be one of"},
		{"invalid logging", badLogging, true, "logging.level must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("expected INVALID_CONFIG, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

type testConfig struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`
	Batch      struct {
		Size int `mapstructure:"size"`
	} `mapstructure:"batch"`
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	yamlContent := `
name: ingest
environment: staging
logging:
  level: warn
  format: json
batch:
  size: 64
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	if err := Load("ingest", &cfg, WithConfigFile(configPath), WithEnvPrefix("RITEST_NONE")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "ingest" || cfg.Environment != "staging" {
		t.Errorf("unexpected base config %+v", cfg.BaseConfig)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Batch.Size != 64 {
		t.Errorf("expected batch size 64, got %d", cfg.Batch.Size)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("name: ingest\nlogging:\n  level: info\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("RITEST_LOGGING_LEVEL", "error")
	t.Setenv("RITEST_BATCH_SIZE", "8")

	var cfg testConfig
	if err := Load("ingest", &cfg, WithConfigFile(configPath), WithEnvPrefix("ritest")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected env override 'error', got %q", cfg.Logging.Level)
	}
	if cfg.Batch.Size != 8 {
		t.Errorf("expected env override 8, got %d", cfg.Batch.Size)
	}
	if cfg.Name != "ingest" {
		t.Errorf("expected file value to survive, got %q", cfg.Name)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("RIDOTENV_NAME=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("RIDOTENV_NAME") })

	var cfg testConfig
	if err := Load("ingest", &cfg, WithEnvFile(envPath), WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvPrefix("RIDOTENV")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "from-dotenv" {
		t.Errorf("expected name from .env, got %q", cfg.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	err := Load("nonexistent", &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvPrefix("RITEST_NONE"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

func TestLoadBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("name: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	var cfg testConfig
	if err := Load("ingest", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected a read error")
	}
}

type mockFS struct {
	files  map[string]bool
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/ingest.yml": true,
		"./config.yml":        true,
		"./.env":              true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("ingest", LoaderConfig{})
	if files.ConfigFile != "./config/ingest.yml" {
		t.Errorf("expected ./config/ingest.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}

	explicit := resolver.ResolveFiles("ingest", LoaderConfig{ConfigFile: "/etc/x.yml"})
	if explicit.ConfigFile != "/etc/x.yml" {
		t.Errorf("explicit path should win, got %q", explicit.ConfigFile)
	}
}

func TestLoadUsesFileSystemForEnv(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./.env.ingest": true}}
	var cfg testConfig
	if err := Load("ingest", &cfg, WithFileSystem(fs), WithEnvPrefix("RITEST_NONE")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != "./.env.ingest" {
		t.Errorf("expected .env.ingest to be loaded, got %v", fs.loaded)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("OBSERVE_METER_NAME")
	want := []string{"observe_meter_name", "observe.meter.name", "observe.meter_name"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := envKeyVariants("NAME"); len(got) != 1 || got[0] != "name" {
		t.Errorf("got %v, want [name]", got)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("app")(&lc)
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected loader config %+v", lc)
	}
	if lc.EnvPrefix != "APP" {
		t.Errorf("expected upper-cased prefix, got %q", lc.EnvPrefix)
	}
}
