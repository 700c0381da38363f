// Package memory holds the in-memory address book. Contacts live only for
// the lifetime of the process; there is no durable store behind it.
package memory

import (
	"context"
	"strings"
	"sync"

	"addressbook/contact"
)

// Book implements contact.Repository. Records are keyed by normalized name
// and iterated in insertion order; overwriting an existing key keeps its
// original position.
type Book struct {
	mu      sync.RWMutex
	records map[string]contact.Record
	order   []string
}

func NewBook() *Book {
	return &Book{
		records: make(map[string]contact.Record),
	}
}

// Upsert stores r under its normalized name. Last write wins; this is a
// replace, not a merge.
func (b *Book) Upsert(_ context.Context, r contact.Record) error {
	key := r.Name.Normalized()

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = clone(r)
	return nil
}

func (b *Book) Find(_ context.Context, name string) (contact.Record, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rec, ok := b.records[contact.Normalize(name)]
	return clone(rec), ok, nil
}

// Delete removes the named record. Deleting an absent name is a no-op.
func (b *Book) Delete(_ context.Context, name string) error {
	key := contact.Normalize(name)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[key]; !ok {
		return nil
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

func (b *Book) All(_ context.Context) ([]contact.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	records := make([]contact.Record, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, clone(b.records[key]))
	}
	return records, nil
}

// clone copies the record's phone slice so handed-out records never share a
// backing array with the stored one.
func clone(r contact.Record) contact.Record {
	if r.Phones != nil {
		r.Phones = append([]contact.Phone(nil), r.Phones...)
	}
	return r
}

func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

func (b *Book) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.order) == 0 {
		return "No contacts yet"
	}

	lines := make([]string, 0, len(b.order))
	for _, key := range b.order {
		lines = append(lines, b.records[key].String())
	}
	return strings.Join(lines, "\n")
}
