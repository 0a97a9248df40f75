package codetable

import (
	"errors"
	"sync"
	"testing"

	"github.com/gucio32/morsekit/pkg/morseerr"
)

func TestInternationalIsInvertible(t *testing.T) {
	table := International()
	if table.Name() != InternationalName {
		t.Errorf("Name() = %q, want %q", table.Name(), InternationalName)
	}
	for _, r := range table.Chars() {
		code, ok := table.Code(r)
		if !ok {
			t.Fatalf("Code(%q) missing", r)
		}
		back, ok := table.Char(code)
		if !ok || back != r {
			t.Errorf("Char(%q) = %q, %v, want %q", code, back, ok, r)
		}
	}
}

func TestInternationalSharedInstance(t *testing.T) {
	if International() != International() {
		t.Fatal("expected the same table instance")
	}
}

func TestNewRejectsMalformedTables(t *testing.T) {
	tests := []struct {
		name  string
		codes map[rune]string
	}{
		{"empty", map[rune]string{}},
		{"space key", map[rune]string{' ': "..."}},
		{"lower-case key", map[rune]string{'a': ".-"}},
		{"empty code", map[rune]string{'A': ""}},
		{"bad code alphabet", map[rune]string{'A': ".x-"}},
		{"duplicate code", map[rune]string{'A': ".-", 'B': ".-"}},
	}

	for _, tt := range tests {
		_, err := New("custom", tt.codes)
		if !errors.Is(err, morseerr.ErrConfiguration) {
			t.Errorf("%s: New() err = %v, want configuration error", tt.name, err)
		}
	}
}

func TestNewCopiesInput(t *testing.T) {
	codes := map[rune]string{'A': ".-"}
	table, err := New("custom", codes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	codes['A'] = "-"
	if code, _ := table.Code('A'); code != ".-" {
		t.Errorf("Code('A') = %q after caller mutation, want %q", code, ".-")
	}
}

func TestFromStrings(t *testing.T) {
	table, err := FromStrings("tiny", map[string]string{"A": ".-", "Ä": ".-.-"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, ok := table.Char(".-.-"); !ok || r != 'Ä' {
		t.Errorf("Char(.-.-) = %q, %v", r, ok)
	}

	if _, err := FromStrings("bad", map[string]string{"AB": ".-"}); !errors.Is(err, morseerr.ErrConfiguration) {
		t.Errorf("multi-character key err = %v, want configuration error", err)
	}
}

func TestCharConcurrentInverse(t *testing.T) {
	table, err := New("custom", map[rune]string{'A': ".-", 'B': "-..."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r, ok := table.Char("-..."); !ok || r != 'B' {
				t.Errorf("Char(-...) = %q, %v", r, ok)
			}
		}()
	}
	wg.Wait()
}

func TestCheckMorse(t *testing.T) {
	if err := CheckMorse("morse_string", "... --- ..."); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := CheckMorse("morse_string", "")
	if !errors.Is(err, morseerr.ErrInput) {
		t.Errorf("empty err = %v, want input error", err)
	}

	err = CheckMorse("morse_string", "... --- ... ! !a")
	var me *morseerr.Error
	if !errors.As(err, &me) || !errors.Is(err, morseerr.ErrInput) {
		t.Fatalf("err = %v, want *morseerr.Error input error", err)
	}
	if string(me.Invalid) != "!a" {
		t.Errorf("Invalid = %q, want %q", string(me.Invalid), "!a")
	}
}
