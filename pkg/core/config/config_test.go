package config

import (
	"strings"
	"testing"

	"github.com/msto63/mcalc/internal/calculator"
	"github.com/spf13/afero"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", path, err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Variant() != calculator.Advanced {
		t.Errorf("Variant() = %v, want advanced", cfg.Variant())
	}
	if cfg.AngleMode() != calculator.Degrees {
		t.Errorf("AngleMode() = %v, want DEG", cfg.AngleMode())
	}
	if !cfg.ColorEnabled() {
		t.Error("ColorEnabled() should default to true")
	}
	if cfg.Source() != "" {
		t.Errorf("Source() = %q, want empty", cfg.Source())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadFs_TOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/etc/mcalc.toml", `
[general]
log_level = "debug"
log_format = "json"
log_file = "/tmp/mcalc.log"

[calculator]
variant = "basic"
angle_mode = "radians"

[ui]
color = false
prompt = "calc> "
`)

	cfg, err := LoadFs(fs, "/etc/mcalc.toml")
	if err != nil {
		t.Fatalf("LoadFs() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.LogFile != "/tmp/mcalc.log" {
		t.Errorf("LogFile = %v", cfg.General.LogFile)
	}
	if cfg.Variant() != calculator.Basic {
		t.Errorf("Variant() = %v, want basic", cfg.Variant())
	}
	if cfg.AngleMode() != calculator.Radians {
		t.Errorf("AngleMode() = %v, want RAD", cfg.AngleMode())
	}
	if cfg.ColorEnabled() {
		t.Error("ColorEnabled() should be false")
	}
	if cfg.UI.Prompt != "calc> " {
		t.Errorf("Prompt = %q", cfg.UI.Prompt)
	}
	if cfg.Source() != "/etc/mcalc.toml" {
		t.Errorf("Source() = %q", cfg.Source())
	}

	logCfg := cfg.LoggerConfig("repl")
	if logCfg.Level != "debug" || logCfg.Format != "json" || logCfg.ServiceName != "repl" {
		t.Errorf("LoggerConfig() = %+v", logCfg)
	}
}

func TestLoadFs_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/cfg/mcalc.yaml", `
general:
  log_level: error
calculator:
  angle_mode: rad
`)

	cfg, err := LoadFs(fs, "/cfg/mcalc.yaml")
	if err != nil {
		t.Fatalf("LoadFs() error = %v", err)
	}

	if cfg.General.LogLevel != "error" {
		t.Errorf("LogLevel = %v, want error", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("LogFormat = %v, want default text", cfg.General.LogFormat)
	}
	if cfg.Variant() != calculator.Advanced {
		t.Errorf("Variant() = %v, want default advanced", cfg.Variant())
	}
	if cfg.AngleMode() != calculator.Radians {
		t.Errorf("AngleMode() = %v, want RAD", cfg.AngleMode())
	}
}

func TestLoadFs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		wantErr string
	}{
		{"missing file", "/missing.toml", "", "not found"},
		{"broken toml", "/broken.toml", "[general\nlog_level=", "failed to parse"},
		{"broken yaml", "/broken.yml", "general: [", "failed to parse"},
		{"bad level", "/level.toml", "[general]\nlog_level = \"loud\"", "unknown log level"},
		{"bad format", "/format.toml", "[general]\nlog_format = \"xml\"", "unknown log format"},
		{"bad variant", "/variant.toml", "[calculator]\nvariant = \"graphing\"", "unknown calculator variant"},
		{"bad angle mode", "/angle.toml", "[calculator]\nangle_mode = \"grad\"", "unknown angle mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != "" {
				writeFile(t, fs, tt.path, tt.content)
			}

			_, err := LoadFs(fs, tt.path)
			if err == nil {
				t.Fatal("LoadFs() should return error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFs() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/explicit.toml", "[calculator]\nvariant = \"basic\"")

		cfg, err := Discover(fs, "/explicit.toml")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Variant() != calculator.Basic {
			t.Errorf("Variant() = %v, want basic", cfg.Variant())
		}
	})

	t.Run("environment variable", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/env/mcalc.toml", "[calculator]\nangle_mode = \"radians\"")
		t.Setenv(EnvConfigPath, "/env/mcalc.toml")

		cfg, err := Discover(fs, "")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.AngleMode() != calculator.Radians {
			t.Errorf("AngleMode() = %v, want RAD", cfg.AngleMode())
		}
	})

	t.Run("default location", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		t.Setenv(EnvConfigPath, "")
		path := DefaultPaths()[0]
		writeFile(t, fs, path, "[general]\nlog_level = \"info\"")

		cfg, err := Discover(fs, "")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.General.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.General.LogLevel)
		}
	})

	t.Run("no file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		t.Setenv(EnvConfigPath, "")

		cfg, err := Discover(fs, "")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Source() != "" {
			t.Errorf("Source() = %q, want defaults", cfg.Source())
		}
	})
}
