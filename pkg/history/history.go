// Package history keeps the conversions of the running session.
package history

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gucio32/morsekit/pkg/record"
)

const DefaultLimit = 100

type Entry struct {
	ID     uuid.UUID
	Type   record.Type
	Input  string
	Output string
	At     time.Time
}

// Record converts the entry to the format understood by record.Save.
func (e Entry) Record() record.Record {
	switch e.Type {
	case record.TextToMorse:
		return record.Record{Type: e.Type, Text: e.Input, MorseCode: e.Output}
	case record.MorseToText:
		return record.Record{Type: e.Type, Text: e.Output, MorseCode: e.Input}
	default:
		return record.Record{Type: e.Type, MorseCode: e.Input}
	}
}

// History is a bounded list of entries, oldest first. Once full, adding
// an entry drops the oldest one.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
	now     func() time.Time
}

func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit, now: time.Now}
}

func (h *History) Add(typ record.Type, input, output string) Entry {
	e := Entry{
		ID:     uuid.New(),
		Type:   typ,
		Input:  input,
		Output: output,
		At:     h.now(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = slices.Delete(h.entries, 0, over)
	}
	return e
}

func (h *History) List() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

func (h *History) Last() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
