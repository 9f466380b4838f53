package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Its-donkey/portfolio-fx/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORTFOLIO_LISTEN", "PORTFOLIO_STATIC_DIR", "PORTFOLIO_RESUME_PATH", "PORTFOLIO_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Config{
		ListenAddr: "127.0.0.1:4173",
		StaticDir:  "web",
		ResumePath: "resources/resume.pdf",
		LogLevel:   "INFO",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestFromEnvReadsDotEnvAndProcessEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORTFOLIO_STATIC_DIR=public\nPORTFOLIO_LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PORTFOLIO_LISTEN", ":9090")

	cfg, err := FromEnv(path)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.StaticDir != "public" || cfg.ListenAddr != ":9090" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Level() != logging.DEBUG {
		t.Fatalf("level = %v", cfg.Level())
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Config{ListenAddr: "nope", StaticDir: " ", ResumePath: "../secret.pdf", LogLevel: "loud"}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"listen address", "static dir", "resume path", "unknown log level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}
