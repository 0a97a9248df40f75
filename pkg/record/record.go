// Package record saves and loads the last state of a conversion.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gucio32/morsekit/pkg/morseerr"
	"gopkg.in/yaml.v3"
)

type Type string

const (
	TextToMorse Type = "text_to_morse"
	MorseToText Type = "morse_to_text"
	PlayMorse   Type = "play_morse"
)

type Record struct {
	Type      Type   `json:"type" yaml:"type"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	MorseCode string `json:"morse_code,omitempty" yaml:"morse_code,omitempty"`
}

func (r Record) Validate() error {
	switch r.Type {
	// The converted side may be empty when nothing in the input mapped.
	case TextToMorse:
		if r.Text == "" {
			return morseerr.Input("%s record needs text", r.Type)
		}
	case MorseToText, PlayMorse:
		if r.MorseCode == "" {
			return morseerr.Input("%s record needs morse_code", r.Type)
		}
	default:
		return morseerr.Input("unknown conversion type %q", r.Type)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Save writes rec as indented JSON, or YAML for .yaml/.yml paths.
func Save(path string, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(rec)
	} else {
		data, err = json.MarshalIndent(rec, "", "    ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func Load(path string) (Record, error) {
	var rec Record
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("failed to read record: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return rec, morseerr.Input("failed to parse record %s: %v", path, err)
	}

	return rec, rec.Validate()
}
