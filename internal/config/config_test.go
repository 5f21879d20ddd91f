package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"sociogram/internal/layout"
	"sociogram/internal/session"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input string
		want  Preset
	}{
		{"compact", PresetCompact},
		{"balanced", PresetBalanced},
		{"spread", PresetSpread},
		{"invalid", PresetBalanced}, // Default
	}

	for _, tt := range tests {
		if got := ParsePreset(tt.input); got != tt.want {
			t.Errorf("ParsePreset(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestPresetParams(t *testing.T) {
	if got := PresetBalanced.Params(); got != layout.DefaultParams() {
		t.Errorf("balanced = %+v, want layout defaults", got)
	}
	if got := Preset("unknown").Params(); got != layout.DefaultParams() {
		t.Errorf("unknown preset = %+v, want balanced", got)
	}

	compact, spread := PresetCompact.Params(), PresetSpread.Params()
	if compact.LinkDistance >= spread.LinkDistance {
		t.Errorf("compact link distance %v should be below spread %v", compact.LinkDistance, spread.LinkDistance)
	}
	if compact.ChargeStrength <= spread.ChargeStrength {
		t.Errorf("compact charge %v should be weaker than spread %v", compact.ChargeStrength, spread.ChargeStrength)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Preset != PresetBalanced {
		t.Errorf("Preset = %s, want balanced", cfg.Preset)
	}
	if cfg.Analysis.MaxCliqueNodes != 2000 {
		t.Errorf("MaxCliqueNodes = %d, want 2000", cfg.Analysis.MaxCliqueNodes)
	}
	if cfg.Analysis.MinCliqueSize != 2 {
		t.Errorf("MinCliqueSize = %d, want 2", cfg.Analysis.MinCliqueSize)
	}
	if cfg.Watch.Debounce.Duration() != 500*time.Millisecond {
		t.Errorf("Debounce = %s, want 500ms", cfg.Watch.Debounce.Duration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	p := cfg.EffectiveParams()
	if p.LinkDistance != 100 || p.ChargeStrength != -200 || p.CollideFactor != 1.2 {
		t.Errorf("EffectiveParams = %+v, want 100/-200/1.2", p)
	}
	if f := cfg.EffectiveFilter(); f != session.DefaultFilter() {
		t.Errorf("EffectiveFilter = %+v, want default", f)
	}
}

func TestEffectiveParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = PresetSpread
	distance := 42.0
	cfg.Layout = &LayoutOverride{LinkDistance: &distance}

	p := cfg.EffectiveParams()
	if p.LinkDistance != 42 {
		t.Errorf("LinkDistance = %v, want override 42", p.LinkDistance)
	}
	if p.ChargeStrength != PresetSpread.Params().ChargeStrength {
		t.Errorf("ChargeStrength = %v, want spread preset value", p.ChargeStrength)
	}
}

func TestEffectiveFilter(t *testing.T) {
	cfg := DefaultConfig()
	hide := false
	cfg.Filter.ShowNegative = &hide
	cfg.Filter.MinPreferences = 2

	want := session.Filter{ShowPositive: true, ShowNegative: false, MinPreferences: 2}
	if got := cfg.EffectiveFilter(); got != want {
		t.Errorf("EffectiveFilter = %+v, want %+v", got, want)
	}
}

func TestSessionOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewport = ViewportConfig{Width: 1024, Height: 768}
	cfg.Analysis.MaxCentralityNodes = 500
	cfg.Run.Seed = 9

	opts := cfg.SessionOptions()
	if opts.Viewport != (layout.Viewport{Width: 1024, Height: 768}) {
		t.Errorf("Viewport = %+v", opts.Viewport)
	}
	if opts.Analysis.MaxCliqueNodes != 2000 || opts.Analysis.MaxCentralityNodes != 500 {
		t.Errorf("Analysis = %+v", opts.Analysis)
	}
	if opts.Seed != 9 {
		t.Errorf("Seed = %d, want 9", opts.Seed)
	}
	if opts.Params != cfg.EffectiveParams() {
		t.Errorf("Params = %+v, want %+v", opts.Params, cfg.EffectiveParams())
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	// Create and save config
	cfg := DefaultConfig()
	cfg.Preset = PresetCompact
	charge := -50.0
	cfg.Layout = &LayoutOverride{ChargeStrength: &charge}
	cfg.Watch.Debounce = Duration(2 * time.Second)

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Load config
	loaded, path, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if path != configPath {
		t.Errorf("path = %s, want %s", path, configPath)
	}

	// Verify values
	if loaded.Preset != PresetCompact {
		t.Errorf("Preset = %s, want %s", loaded.Preset, PresetCompact)
	}
	if loaded.Layout == nil || loaded.Layout.ChargeStrength == nil || *loaded.Layout.ChargeStrength != -50 {
		t.Error("ChargeStrength override should be -50")
	}
	if loaded.Watch.Debounce.Duration() != 2*time.Second {
		t.Errorf("Debounce = %s, want 2s", loaded.Watch.Debounce.Duration())
	}
}

func TestLoadFromPathAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "filter:\n  min_preferences: 1\n")

	cfg, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Version != 1 || cfg.Preset != PresetBalanced {
		t.Errorf("defaults not applied: version %d preset %s", cfg.Version, cfg.Preset)
	}
	if cfg.Run.MaxTicks != DefaultMaxTicks {
		t.Errorf("MaxTicks = %d, want %d", cfg.Run.MaxTicks, DefaultMaxTicks)
	}
	if cfg.Filter.MinPreferences != 1 {
		t.Errorf("MinPreferences = %d, want 1", cfg.Filter.MinPreferences)
	}
	if !cfg.EffectiveFilter().ShowPositive || !cfg.EffectiveFilter().ShowNegative {
		t.Error("unset toggles should default to shown")
	}
}

func TestLoadFromPathValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative threshold", "filter:\n  min_preferences: -1\n"},
		{"zero link distance", "layout:\n  link_distance: 0\n"},
		{"attractive charge", "layout:\n  charge_strength: 30\n"},
		{"unknown preset", "preset: wild\n"},
		{"unknown log level", "logging:\n  level: loud\n"},
		{"clique size below two", "analysis:\n  min_clique_size: 1\n"},
		{"negative viewport", "viewport:\n  width: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadFromPath(writeConfig(t, tt.content))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadFromPathErrors(t *testing.T) {
	if _, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
	if _, _, err := LoadFromPath(writeConfig(t, "version: [\n")); err == nil {
		t.Error("expected parse error")
	}
	if _, _, err := LoadFromPath(writeConfig(t, "watch:\n  debounce: soon\n")); err == nil {
		t.Error("expected duration parse error")
	}
}

func TestFindConfigPath(t *testing.T) {
	// Create temp directory with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// Set working directory to temp
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(oldWd)

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	// Should find config in working directory
	found := FindConfigPath()
	if !strings.HasSuffix(found, ConfigFileName) {
		t.Errorf("FindConfigPath() = %q, want working directory config", found)
	}

	// Explicit path doesn't exist, should fall back
	t.Setenv(EnvConfigPath, "/nonexistent/path.yaml")
	if found = FindConfigPath(); !strings.HasSuffix(found, ConfigFileName) {
		t.Errorf("FindConfigPath() = %q, should fall back when env path doesn't exist", found)
	}

	// Existing explicit path wins
	explicit := writeConfig(t, "version: 1\n")
	t.Setenv(EnvConfigPath, explicit)
	if found = FindConfigPath(); found != explicit {
		t.Errorf("FindConfigPath() = %q, want %q", found, explicit)
	}

	cfg2, path, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if path != explicit || cfg2.Version != 1 {
		t.Errorf("Load() = %q version %d", path, cfg2.Version)
	}
}

func TestSearchPathsOrder(t *testing.T) {
	t.Setenv(EnvConfigPath, "/explicit.yaml")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/user")

	paths := SearchPaths()
	if len(paths) != 5 {
		t.Fatalf("expected 5 search paths, got %v", paths)
	}
	if paths[0] != "/explicit.yaml" {
		t.Errorf("first path = %s, want env path", paths[0])
	}
	if paths[2] != "/xdg/sociogram/config.yaml" {
		t.Errorf("xdg path = %s", paths[2])
	}
	if paths[3] != "/home/user/.config/sociogram/config.yaml" {
		t.Errorf("home path = %s", paths[3])
	}
	if paths[4] != "/etc/sociogram/config.yaml" {
		t.Errorf("system path = %s", paths[4])
	}
}

func TestDuration(t *testing.T) {
	d := Duration(5 * time.Minute)

	if d.Duration() != 5*time.Minute {
		t.Errorf("Duration() = %s, want 5m", d.Duration())
	}

	// Test YAML marshaling
	marshaled, err := d.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error: %v", err)
	}
	if marshaled != "5m0s" {
		t.Errorf("MarshalYAML() = %v, want 5m0s", marshaled)
	}
}

func TestSummary(t *testing.T) {
	summary := DefaultConfig().Summary()
	for _, want := range []string{"Preset: balanced", "min_preferences=0", "clique guard: 2000"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() missing %q:\n%s", want, summary)
		}
	}
}
