package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gucio32/morsekit/pkg/generator"
	"github.com/gucio32/morsekit/pkg/morseerr"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Variant != "international" {
		t.Fatalf("expected international variant, got %q", cfg.Variant)
	}
	if cfg.Profile() != generator.DefaultProfile() {
		t.Fatalf("expected default profile, got %+v", cfg.Profile())
	}
	if cfg.Format() != generator.DefaultFormat() {
		t.Fatalf("expected default format, got %+v", cfg.Format())
	}
	if cfg.Audio.Backend != generator.BackendOto {
		t.Fatalf("expected oto backend, got %q", cfg.Audio.Backend)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morse.yaml")
	data := `
variant: greek
variant_files:
  greek: ./greek.yaml
audio:
  backend: silent
  frequency: 700
  channels: 2
timing:
  character_pause: 6
  word_pause: 14
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Variant != "greek" || cfg.VariantFiles["greek"] != "./greek.yaml" {
		t.Fatalf("variant not loaded: %+v", cfg)
	}
	p := cfg.Profile()
	if p.Frequency != 700 || p.CharGap != 6 || p.WordGap != 14 || p.Dot != 1 {
		t.Fatalf("unexpected profile %+v", p)
	}
	if cfg.Format().ChannelCount != 2 || cfg.Format().SampleRate != 44100 {
		t.Fatalf("unexpected format %+v", cfg.Format())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MORSE_VARIANT", "custom")
	t.Setenv("MORSE_AUDIO_BACKEND", "bell")
	t.Setenv("MORSE_AUDIO_FREQUENCY", "523.25")
	t.Setenv("MORSE_AUDIO_SAMPLE_RATE", "48000")
	t.Setenv("MORSE_AUDIO_UNIT_DURATION_MS", "60")
	t.Setenv("MORSE_TIMING_WORD_PAUSE", "21")
	t.Setenv("MORSE_LOG_LEVEL", "warn")
	t.Setenv("MORSE_LOG_PATH", "/tmp/morse.log")
	t.Setenv("MORSE_HISTORY_LIMIT", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Variant != "custom" || cfg.Audio.Backend != "bell" {
		t.Fatalf("expected string overrides, got %+v", cfg)
	}
	if cfg.Audio.Frequency != 523.25 || cfg.Audio.SampleRate != 48000 {
		t.Fatalf("expected audio overrides, got %+v", cfg.Audio)
	}
	if cfg.Profile().Unit != 60*time.Millisecond || cfg.Profile().WordGap != 21 {
		t.Fatalf("expected timing overrides, got %+v", cfg.Profile())
	}
	if cfg.Log.Level != "warn" || cfg.Log.Path != "/tmp/morse.log" {
		t.Fatalf("expected log overrides, got %+v", cfg.Log)
	}
	if cfg.History.Limit != 5 {
		t.Fatalf("expected history limit 5, got %d", cfg.History.Limit)
	}
}

func TestUnparsableEnvIsIgnored(t *testing.T) {
	t.Setenv("MORSE_AUDIO_SAMPLE_RATE", "fast")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Fatalf("expected default sample rate, got %d", cfg.Audio.SampleRate)
	}
}

func TestWPMOverridesUnit(t *testing.T) {
	t.Setenv("MORSE_AUDIO_WPM", "20")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profile().Unit != 60*time.Millisecond {
		t.Fatalf("expected 60ms unit at 20 wpm, got %s", cfg.Profile().Unit)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MORSE_AUDIO_FREQUENCY", "0"},
		{"MORSE_AUDIO_SAMPLE_RATE", "-1"},
		{"MORSE_AUDIO_CHANNELS", "6"},
		{"MORSE_AUDIO_UNIT_DURATION_MS", "0"},
		{"MORSE_AUDIO_BACKEND", "gramophone"},
		{"MORSE_AUDIO_WPM", "-3"},
		{"MORSE_TIMING_DOT_LENGTH", "0"},
		{"MORSE_TIMING_DASH_LENGTH", "-3"},
		{"MORSE_TIMING_CHARACTER_PAUSE", "0"},
		{"MORSE_LOG_LEVEL", "loud"},
		{"MORSE_HISTORY_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); !errors.Is(err, morseerr.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("audio: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, morseerr.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MORSE_TEST_DOTENV_FREQ=880\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("MORSE_TEST_DOTENV_FREQ") })

	if err := LoadDotEnv(filepath.Join(dir, "absent.env"), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("MORSE_TEST_DOTENV_FREQ"); got != "880" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}
