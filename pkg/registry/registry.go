// Package registry keeps the named Morse alphabets an application can pick
// from and builds converters for them.
package registry

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/gucio32/morsekit/pkg/codetable"
	"github.com/gucio32/morsekit/pkg/converter"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Registry is an explicitly owned set of variants. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*codetable.Table
	log    zerolog.Logger
}

func New(log zerolog.Logger) *Registry {
	return &Registry{
		tables: make(map[string]*codetable.Table),
		log:    log,
	}
}

// NewDefault returns a registry holding the international alphabet.
func NewDefault(log zerolog.Logger) *Registry {
	r := New(log)
	if err := r.Register(codetable.InternationalName, codetable.International()); err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Register(name string, table *codetable.Table) error {
	if strings.TrimSpace(name) == "" {
		return morseerr.Configuration("variant name must not be empty")
	}
	if table == nil {
		return morseerr.Configuration("variant %q has no code table", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; exists {
		return morseerr.Configuration("Morse code variant '%s' is already registered", name)
	}
	r.tables[name] = table
	r.log.Info().Str("variant", name).Int("characters", table.Len()).Msg("registered Morse code variant")
	return nil
}

// RegisterCodes validates codes as a code table and registers it.
func (r *Registry) RegisterCodes(name string, codes map[rune]string) error {
	table, err := codetable.New(name, codes)
	if err != nil {
		return err
	}
	return r.Register(name, table)
}

// LoadFile registers a variant read from a YAML mapping of characters to
// codes, e.g. `A: ".-"`.
func (r *Registry) LoadFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return morseerr.Configuration("reading variant file %s: %v", path, err)
	}
	var codes map[string]string
	if err := yaml.Unmarshal(data, &codes); err != nil {
		return morseerr.Configuration("parsing variant file %s: %v", path, err)
	}
	table, err := codetable.FromStrings(name, codes)
	if err != nil {
		return fmt.Errorf("variant file %s: %w", path, err)
	}
	return r.Register(name, table)
}

func (r *Registry) Get(name string) (*codetable.Table, error) {
	r.mu.RLock()
	table, ok := r.tables[name]
	r.mu.RUnlock()
	if !ok {
		err := morseerr.Configuration("Morse code variant '%s' is not available. Available variants: %s",
			name, strings.Join(r.Names(), ", "))
		r.log.Error().Err(err).Msg("variant lookup failed")
		return nil, err
	}
	return table, nil
}

// Names lists registered variants in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewConverter builds a converter for the named variant.
func (r *Registry) NewConverter(name string, opts ...converter.Option) (*converter.Converter, error) {
	table, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	r.log.Debug().Str("variant", name).Msg("creating Morse code converter")
	return converter.New(table, opts...)
}
