// Package book implements the address book: a name-keyed collection of
// contact records that iterates in insertion order.
package book

import (
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/smileynet/addressbook/internal/contact"
)

// AddressBook maps contact names to records. At most one record exists per
// name; adding a record under an existing name replaces the old one.
// It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*contact.Record
	order   []string
	log     *zap.Logger
}

// Option configures an AddressBook.
type Option func(*AddressBook)

// WithLogger sets the logger used for overwrite and delete events.
func WithLogger(l *zap.Logger) Option {
	return func(b *AddressBook) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates an empty AddressBook.
func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		records: make(map[string]*contact.Record),
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// AddRecord stores r under its name. An existing record with the same name
// is replaced and keeps its position in iteration order. Nil is ignored.
func (b *AddressBook) AddRecord(r *contact.Record) {
	if r == nil {
		return
	}
	name := r.Name().Value
	if _, ok := b.records[name]; ok {
		b.log.Debug("replacing record", zap.String("name", name))
	} else {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record stored under name, or nil.
func (b *AddressBook) Find(name string) *contact.Record {
	return b.records[name]
}

// Delete removes the record stored under name. Missing names are ignored.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	b.log.Debug("deleted record", zap.String("name", name))
}

// All yields (name, record) pairs in insertion order.
func (b *AddressBook) All() iter.Seq2[string, *contact.Record] {
	return func(yield func(string, *contact.Record) bool) {
		for _, name := range b.order {
			if !yield(name, b.records[name]) {
				return
			}
		}
	}
}

// Names returns the contact names in insertion order.
func (b *AddressBook) Names() []string {
	return slices.Clone(b.order)
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// String renders one record per line in insertion order.
func (b *AddressBook) String() string {
	var sb strings.Builder
	for _, r := range b.All() {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
