package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mtv_cron/internal/models"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := NewFlagSet("test")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return Load(fs)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := load(t)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Commands != models.DefaultCommands() {
		t.Fatalf("commands = %+v, want defaults", cfg.Commands)
	}
	if cfg.LogLevel != defaultLogLevel || cfg.Next != 0 {
		t.Fatalf("got level=%q next=%d", cfg.LogLevel, cfg.Next)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "mtv.yml", `
log:
  level: info
commands:
  update: /opt/mtv/bin/mtv-cli aktualisiere-filmliste
next: 2
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := load(t, "--config", path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Commands.Update != "/opt/mtv/bin/mtv-cli aktualisiere-filmliste" {
			t.Fatalf("update = %q", cfg.Commands.Update)
		}
		if cfg.Commands.Download != models.DefaultCommands().Download {
			t.Fatalf("download should keep default, got %q", cfg.Commands.Download)
		}
		if cfg.LogLevel != "info" || cfg.Next != 2 {
			t.Fatalf("got level=%q next=%d", cfg.LogLevel, cfg.Next)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MTV_CRON_LOG_LEVEL", "debug")
		t.Setenv("MTV_CRON_COMMANDS_DOWNLOAD", "mtv-cli vormerkungen-herunterladen --quiet")
		cfg, err := load(t, "--config", path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.LogLevel != "debug" {
			t.Fatalf("level = %q, want debug", cfg.LogLevel)
		}
		if cfg.Commands.Download != "mtv-cli vormerkungen-herunterladen --quiet" {
			t.Fatalf("download = %q", cfg.Commands.Download)
		}
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("MTV_CRON_LOG_LEVEL", "debug")
		cfg, err := load(t, "--config", path, "--log-level", "error", "--next", "5")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.LogLevel != "error" || cfg.Next != 5 {
			t.Fatalf("got level=%q next=%d", cfg.LogLevel, cfg.Next)
		}
	})
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		args      []string
		wantValid bool // true if the error must be ErrInvalidConfig
	}{
		{
			name: "explicit file missing",
			args: []string{"--config", filepath.Join(dir, "absent.yml")},
		},
		{
			name: "malformed file",
			args: []string{"--config", writeFile(t, dir, "bad.yml", "log: [unterminated\n")},
		},
		{
			name:      "unknown log level",
			args:      []string{"--log-level", "loud"},
			wantValid: true,
		},
		{
			name:      "empty command",
			args:      []string{"--config", writeFile(t, dir, "empty.yml", "commands:\n  sendinfo: \"  \"\n")},
			wantValid: true,
		},
		{
			name:      "negative next",
			args:      []string{"--next", "-1"},
			wantValid: true,
		},
		{
			name:      "next too large",
			args:      []string{"--next", "4000000000000000000"},
			wantValid: true,
		},
		{
			name:      "non-integer next in file",
			args:      []string{"--config", writeFile(t, dir, "next.yml", "next: three\n")},
			wantValid: true,
		},
		{
			name:      "percent in command",
			args:      []string{"--config", writeFile(t, dir, "pct.yml", "commands:\n  update: \"date +%F\"\n")},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantValid && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_RejectsMultilineCommand(t *testing.T) {
	t.Parallel()

	cfg := Config{LogLevel: "warn", Commands: models.DefaultCommands()}
	cfg.Commands.Update = "mtv-cli\n* * * * * rm -rf /"
	if err := Validate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_NonIntegerNextFromEnv(t *testing.T) {
	t.Setenv("MTV_CRON_NEXT", "three")
	if _, err := load(t); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_NextFromEnv(t *testing.T) {
	t.Setenv("MTV_CRON_NEXT", "3")
	cfg, err := load(t)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Next != 3 {
		t.Fatalf("next = %d, want 3", cfg.Next)
	}
}
