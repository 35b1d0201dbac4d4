package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kwartel.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse(writeConfig(t, `
window:
  width: 800
  height: 600
  title: test window
`))
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window size = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "test window" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	// defaults still apply to whatever the file doesn't mention
	if cfg.ClearColour != "#000000ff" {
		t.Errorf("clear colour = %q, want default", cfg.ClearColour)
	}
	if cfg.Api != nil {
		t.Error("api section should be absent by default")
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config does not validate: %s", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Window.Width = 0 },
			wantErr: "invalid",
		},
		{
			name:    "negative height",
			mutate:  func(c *Config) { c.Window.Height = -1 },
			wantErr: "invalid",
		},
		{
			name:    "empty title",
			mutate:  func(c *Config) { c.Window.Title = "" },
			wantErr: "title",
		},
		{
			name:    "bad clear colour",
			mutate:  func(c *Config) { c.ClearColour = "#zz0000ff" },
			wantErr: "hex colour",
		},
		{
			name:    "bad quad colour",
			mutate:  func(c *Config) { c.QuadColour = "red" },
			wantErr: "hex colour",
		},
		{
			name:    "half a shader pair",
			mutate:  func(c *Config) { c.Shaders = &ShaderCfg{Vertex: "quad.vert"} },
			wantErr: "both vertex and fragment",
		},
		{
			name:    "missing shader file",
			mutate:  func(c *Config) { c.Shaders = &ShaderCfg{Vertex: "/no/such.vert", Fragment: "/no/such.frag"} },
			wantErr: "vertex shader",
		},
		{
			name:    "api without bind",
			mutate:  func(c *Config) { c.Api = &ApiCfg{} },
			wantErr: "bind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseShaderPathsRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"quad.vert", "quad.frag"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("void main() {}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, "kwartel.yaml")
	err := os.WriteFile(path, []byte(`
shaders:
  vertex: quad.vert
  fragment: quad.frag
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if got := string(cfg.Shaders.Vertex); got != filepath.Join(dir, "quad.vert") {
		t.Errorf("vertex path = %q, want it resolved next to the config", got)
	}
}

func TestParseVsyncOff(t *testing.T) {
	cfg, err := Parse(writeConfig(t, `
window:
  width: 640
  height: 480
  title: kwartel
  vsync: false
`))
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if cfg.Window.Vsync == nil || *cfg.Window.Vsync {
		t.Error("vsync should be explicitly off")
	}
}
