// Package codetable provides immutable character to Morse code tables.
package codetable

import (
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gucio32/morsekit/pkg/morseerr"
)

// Table maps upper-case characters to dot/dash codes. It is read-only after
// New returns and safe for concurrent use.
type Table struct {
	name  string
	codes map[rune]string

	once    sync.Once
	inverse map[string]rune
}

// New validates codes and builds a Table from a private copy of it.
func New(name string, codes map[rune]string) (*Table, error) {
	if len(codes) == 0 {
		return nil, morseerr.Configuration("code table %q is empty", name)
	}

	owners := make(map[string]rune, len(codes))
	copied := make(map[rune]string, len(codes))
	for r, code := range codes {
		if r == ' ' || unicode.IsSpace(r) {
			return nil, morseerr.Configuration("code table %q maps whitespace", name)
		}
		if unicode.ToUpper(r) != r {
			return nil, morseerr.Configuration("code table %q key %q is not upper-case", name, r)
		}
		if code == "" || strings.Trim(code, ".-") != "" {
			return nil, morseerr.Configuration("code table %q has malformed code %q for %q", name, code, r)
		}
		if other, dup := owners[code]; dup {
			return nil, morseerr.Configuration("code table %q maps both %q and %q to %q", name, other, r, code)
		}
		owners[code] = r
		copied[r] = code
	}

	return &Table{name: name, codes: copied}, nil
}

// FromStrings builds a Table from single-character string keys, the shape
// used by variant files.
func FromStrings(name string, codes map[string]string) (*Table, error) {
	runes := make(map[rune]string, len(codes))
	for k, v := range codes {
		if utf8.RuneCountInString(k) != 1 {
			return nil, morseerr.Configuration("code table %q key %q is not a single character", name, k)
		}
		r, _ := utf8.DecodeRuneInString(k)
		runes[r] = v
	}
	return New(name, runes)
}

func (t *Table) Name() string { return t.name }

func (t *Table) Len() int { return len(t.codes) }

// Code returns the code for r. r must already be upper-case.
func (t *Table) Code(r rune) (string, bool) {
	code, ok := t.codes[r]
	return code, ok
}

// Char returns the character encoded by code.
func (t *Table) Char(code string) (rune, bool) {
	t.once.Do(t.buildInverse)
	r, ok := t.inverse[code]
	return r, ok
}

func (t *Table) buildInverse() {
	t.inverse = make(map[string]rune, len(t.codes))
	for r, code := range t.codes {
		t.inverse[code] = r
	}
}

// Chars returns the table's characters in ascending order.
func (t *Table) Chars() []rune {
	chars := make([]rune, 0, len(t.codes))
	for r := range t.codes {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}
