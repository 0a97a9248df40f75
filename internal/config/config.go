package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gucio32/morsekit/pkg/codetable"
	"github.com/gucio32/morsekit/pkg/generator"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type AudioConfig struct {
	Backend        string  `yaml:"backend"`
	Frequency      float64 `yaml:"frequency"`
	SampleRate     int     `yaml:"sample_rate"`
	Channels       int     `yaml:"channels"`
	UnitDurationMS int     `yaml:"unit_duration_ms"`
	WPM            int     `yaml:"wpm"` // overrides unit_duration_ms when set
}

type TimingConfig struct {
	DotLength      int `yaml:"dot_length"`
	DashLength     int `yaml:"dash_length"`
	ElementPause   int `yaml:"element_pause"`
	CharacterPause int `yaml:"character_pause"`
	WordPause      int `yaml:"word_pause"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

type Config struct {
	Variant      string            `yaml:"variant"`
	VariantFiles map[string]string `yaml:"variant_files"`
	Audio        AudioConfig       `yaml:"audio"`
	Timing       TimingConfig      `yaml:"timing"`
	Log          LogConfig         `yaml:"log"`
	History      HistoryConfig     `yaml:"history"`
}

func Default() Config {
	return Config{
		Variant: codetable.InternationalName,
		Audio: AudioConfig{
			Backend:        generator.BackendOto,
			Frequency:      generator.DefaultFrequency,
			SampleRate:     generator.DefaultSampleRate,
			Channels:       generator.DefaultChannelCount,
			UnitDurationMS: int(generator.DefaultUnit / time.Millisecond),
		},
		Timing: TimingConfig{
			DotLength:      1,
			DashLength:     3,
			ElementPause:   1,
			CharacterPause: 3,
			WordPause:      7,
		},
		Log: LogConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Limit: 100,
		},
	}
}

// LoadDotEnv loads the given .env files (".env" when none are given) into
// the process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, morseerr.Configuration("failed to parse config file: %v", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.Variant, "MORSE_VARIANT")
	overrideString(&cfg.Audio.Backend, "MORSE_AUDIO_BACKEND")
	overrideFloat(&cfg.Audio.Frequency, "MORSE_AUDIO_FREQUENCY")
	overrideInt(&cfg.Audio.SampleRate, "MORSE_AUDIO_SAMPLE_RATE")
	overrideInt(&cfg.Audio.Channels, "MORSE_AUDIO_CHANNELS")
	overrideInt(&cfg.Audio.UnitDurationMS, "MORSE_AUDIO_UNIT_DURATION_MS")
	overrideInt(&cfg.Audio.WPM, "MORSE_AUDIO_WPM")
	overrideInt(&cfg.Timing.DotLength, "MORSE_TIMING_DOT_LENGTH")
	overrideInt(&cfg.Timing.DashLength, "MORSE_TIMING_DASH_LENGTH")
	overrideInt(&cfg.Timing.ElementPause, "MORSE_TIMING_ELEMENT_PAUSE")
	overrideInt(&cfg.Timing.CharacterPause, "MORSE_TIMING_CHARACTER_PAUSE")
	overrideInt(&cfg.Timing.WordPause, "MORSE_TIMING_WORD_PAUSE")
	overrideString(&cfg.Log.Level, "MORSE_LOG_LEVEL")
	overrideString(&cfg.Log.Path, "MORSE_LOG_PATH")
	overrideInt(&cfg.History.Limit, "MORSE_HISTORY_LIMIT")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideFloat(target *float64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*target = parsed
		}
	}
}

func validate(cfg Config) error {
	if cfg.Variant == "" {
		return morseerr.Configuration("variant must not be empty")
	}
	for name, path := range cfg.VariantFiles {
		if name == "" || path == "" {
			return morseerr.Configuration("variant_files entries need a name and a path")
		}
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return morseerr.Configuration("log.level %q is not a valid level", cfg.Log.Level)
	}
	if !slices.Contains(generator.Backends(), cfg.Audio.Backend) {
		return morseerr.Configuration("audio.backend %q must be one of %s",
			cfg.Audio.Backend, strings.Join(generator.Backends(), ", "))
	}
	if cfg.Audio.WPM < 0 {
		return morseerr.Configuration("audio.wpm must not be negative")
	}
	if cfg.History.Limit <= 0 {
		return morseerr.Configuration("history.limit must be positive")
	}
	if err := cfg.Profile().Validate(); err != nil {
		return err
	}
	return cfg.Format().Validate()
}

// Profile returns the timing profile described by the audio and timing
// sections.
func (c Config) Profile() generator.Profile {
	unit := time.Duration(c.Audio.UnitDurationMS) * time.Millisecond
	if c.Audio.WPM > 0 {
		unit = generator.UnitForWPM(c.Audio.WPM)
	}
	return generator.Profile{
		Timing: generator.Timing{
			Dot:        c.Timing.DotLength,
			Dash:       c.Timing.DashLength,
			ElementGap: c.Timing.ElementPause,
			CharGap:    c.Timing.CharacterPause,
			WordGap:    c.Timing.WordPause,
		},
		Unit:      unit,
		Frequency: c.Audio.Frequency,
	}
}

func (c Config) Format() generator.Format {
	return generator.Format{
		SampleRate:   c.Audio.SampleRate,
		ChannelCount: c.Audio.Channels,
	}
}
