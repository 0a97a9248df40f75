package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gucio32/morsekit/pkg/codetable"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"github.com/rs/zerolog"
)

func TestDefaultHasInternational(t *testing.T) {
	r := NewDefault(zerolog.Nop())
	table, err := r.Get(codetable.InternationalName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table != codetable.International() {
		t.Errorf("expected the shared international table")
	}
	if names := r.Names(); len(names) != 1 || names[0] != "international" {
		t.Errorf("Names() = %v", names)
	}
}

func TestGetUnknown(t *testing.T) {
	r := NewDefault(zerolog.Nop())
	_, err := r.Get("klingon")
	if !errors.Is(err, morseerr.ErrConfiguration) {
		t.Fatalf("err = %v, want configuration error", err)
	}
	if !strings.Contains(err.Error(), "Available variants: international") {
		t.Errorf("error %q does not list available variants", err)
	}
}

func TestRegister(t *testing.T) {
	r := New(zerolog.Nop())
	if err := r.RegisterCodes("tiny", map[rune]string{'A': ".-", 'B': "-..."}); err != nil {
		t.Fatalf("RegisterCodes: %v", err)
	}

	c, err := r.NewConverter("tiny")
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	got, err := c.Encode("ab")
	if err != nil || got != ".- -..." {
		t.Errorf("Encode(ab) = %q, %v", got, err)
	}
}

func TestRegisterRejects(t *testing.T) {
	r := NewDefault(zerolog.Nop())
	tests := []struct {
		name string
		fn   func() error
	}{
		{"duplicate", func() error { return r.Register("international", codetable.International()) }},
		{"empty name", func() error { return r.Register(" ", codetable.International()) }},
		{"nil table", func() error { return r.Register("nil", nil) }},
		{"malformed codes", func() error { return r.RegisterCodes("bad", map[rune]string{'A': "abc"}) }},
	}

	for _, tt := range tests {
		if err := tt.fn(); !errors.Is(err, morseerr.ErrConfiguration) {
			t.Errorf("%s: err = %v, want configuration error", tt.name, err)
		}
	}
	if names := r.Names(); len(names) != 1 {
		t.Errorf("failed registrations leaked into registry: %v", names)
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := NewDefault(zerolog.Nop())
	b := NewDefault(zerolog.Nop())
	if err := a.RegisterCodes("only-a", map[rune]string{'A': ".-"}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get("only-a"); err == nil {
		t.Fatal("registration leaked between registries")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greek.yaml")
	content := "\"Α\": \".-\"\n\"Β\": \"-...\"\n\"Γ\": \"--.\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewDefault(zerolog.Nop())
	if err := r.LoadFile("greek", path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	c, err := r.NewConverter("greek")
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Decode(".- -... --.")
	if err != nil || got != "ΑΒΓ" {
		t.Errorf("Decode = %q, %v", got, err)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("A: [1, 2]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dup := filepath.Join(dir, "dup.yaml")
	if err := os.WriteFile(dup, []byte("A: .-\nB: .-\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := New(zerolog.Nop())
	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad, dup} {
		if err := r.LoadFile("x", path); !errors.Is(err, morseerr.ErrConfiguration) {
			t.Errorf("LoadFile(%s) err = %v, want configuration error", path, err)
		}
	}
}
