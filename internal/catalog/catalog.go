// Package catalog holds the server-side price list used at checkout time.
// The snapshot is loaded once at startup and is the sole source of truth
// for unit price, title and category; clients never supply prices.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

//go:embed catalog.json
var defaultCatalogFS embed.FS

// Entry describes one purchasable product.
type Entry struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
}

// Snapshot is an immutable product-id keyed price list. Safe for
// concurrent reads; no mutation path exists after construction.
type Snapshot struct {
	entries map[string]Entry
	order   []string
}

// NewSnapshot builds a Snapshot from entries. Duplicate ids are rejected
// and prices must be non-negative.
func NewSnapshot(entries []Entry) (*Snapshot, error) {
	s := &Snapshot{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry with empty id")
		}
		if _, dup := s.entries[e.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", e.ID)
		}
		if e.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("catalog id %q has negative price", e.ID)
		}
		s.entries[e.ID] = e
		s.order = append(s.order, e.ID)
	}
	return s, nil
}

// Load reads the catalog from path, or from the embedded default when path
// is empty.
func Load(path string) (*Snapshot, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = defaultCatalogFS.ReadFile("catalog.json")
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewSnapshot(entries)
}

// Lookup resolves a product id.
func (s *Snapshot) Lookup(productID string) (Entry, bool) {
	e, ok := s.entries[productID]
	return e, ok
}

// Entries returns the catalog in load order. The slice is a copy.
func (s *Snapshot) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}

// Len reports the number of entries.
func (s *Snapshot) Len() int { return len(s.entries) }
