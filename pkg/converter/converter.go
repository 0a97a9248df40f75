// Package converter translates between text and Morse code using a
// codetable.Table.
package converter

import (
	"strings"

	"github.com/gucio32/morsekit/pkg/codetable"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Converter is stateless apart from its read-only table and may be shared
// between goroutines.
type Converter struct {
	table *codetable.Table
	log   zerolog.Logger
}

type Option func(*Converter)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

func New(table *codetable.Table, opts ...Option) (*Converter, error) {
	if table == nil {
		return nil, morseerr.Type("code table must not be nil")
	}
	c := &Converter{
		table: table,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log.Debug().Str("variant", table.Name()).Int("characters", table.Len()).Msg("converter ready")
	return c, nil
}

func (c *Converter) Table() *codetable.Table {
	return c.table
}

// Encode converts text to Morse. A space becomes the three-space word token,
// which the single-space join turns into a five-space run. Characters
// missing from the table are dropped and reported in one warning.
func (c *Converter) Encode(text string) (string, error) {
	if text == "" {
		return "", morseerr.Input("input_string cannot be empty")
	}

	var groups []string
	var skipped []rune
	for _, r := range strings.ToUpper(text) {
		if code, ok := c.table.Code(r); ok {
			groups = append(groups, code)
		} else if r == ' ' {
			groups = append(groups, codetable.WordSeparator)
		} else {
			skipped = append(skipped, r)
		}
	}

	if len(skipped) > 0 {
		c.log.Warn().
			Str("variant", c.table.Name()).
			Strs("characters", runeStrings(lo.Uniq(skipped))).
			Msg("characters not valid in Morse code were ignored")
	}

	return strings.Join(groups, codetable.CharSeparator), nil
}

// Decode converts Morse back to text. Words are split on the three-space
// separator first, then on whitespace; unknown codes are dropped and
// reported in one warning.
func (c *Converter) Decode(morse string) (string, error) {
	if err := codetable.CheckMorse("morse_string", morse); err != nil {
		return "", err
	}

	var unknown []string
	words := strings.Split(morse, codetable.WordSeparator)
	decoded := make([]string, 0, len(words))
	for _, word := range words {
		var sb strings.Builder
		for _, code := range strings.Fields(word) {
			if r, ok := c.table.Char(code); ok {
				sb.WriteRune(r)
			} else {
				unknown = append(unknown, code)
			}
		}
		decoded = append(decoded, sb.String())
	}

	if len(unknown) > 0 {
		c.log.Warn().
			Str("variant", c.table.Name()).
			Strs("codes", lo.Uniq(unknown)).
			Msg("Morse codes not valid in this variant were ignored")
	}

	return strings.Join(decoded, " "), nil
}

func runeStrings(rs []rune) []string {
	return lo.Map(rs, func(r rune, _ int) string { return string(r) })
}
