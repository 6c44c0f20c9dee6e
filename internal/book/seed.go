package book

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/addressbook/internal/contact"
)

// seedFile is the YAML shape of an address book seed.
type seedFile struct {
	Contacts []seedContact `yaml:"contacts"`
}

type seedContact struct {
	Name   string   `yaml:"name"`
	Phones []string `yaml:"phones"`
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	book   []Option
	record []contact.Option
}

// WithBookOptions passes options to the AddressBook that Decode creates.
func WithBookOptions(opts ...Option) DecodeOption {
	return func(d *decodeOptions) {
		d.book = append(d.book, opts...)
	}
}

// WithRecordOptions passes options to every Record that Decode creates.
func WithRecordOptions(opts ...contact.Option) DecodeOption {
	return func(d *decodeOptions) {
		d.record = append(d.record, opts...)
	}
}

// Decode reads a YAML seed and builds a new AddressBook from it. Every phone
// goes through Record.AddPhone, so an invalid phone fails the whole decode.
// Repeated names follow AddRecord semantics. Unknown fields are rejected.
func Decode(r io.Reader, opts ...DecodeOption) (*AddressBook, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("book: reading seed: %w", err)
	}

	b := New(o.book...)
	if len(bytes.TrimSpace(data)) == 0 {
		return b, nil
	}

	var seed seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		// Comment-only documents decode to EOF.
		if errors.Is(err, io.EOF) {
			return b, nil
		}
		return nil, fmt.Errorf("book: parsing seed: %w", err)
	}

	for i, c := range seed.Contacts {
		rec := contact.NewRecord(c.Name, o.record...)
		for _, p := range c.Phones {
			if err := rec.AddPhone(p); err != nil {
				return nil, fmt.Errorf("book: contact %d %q: %w", i+1, c.Name, err)
			}
		}
		b.AddRecord(rec)
	}
	return b, nil
}

// Encode writes b as a YAML seed in iteration order.
func Encode(w io.Writer, b *AddressBook) error {
	seed := seedFile{Contacts: make([]seedContact, 0, b.Len())}
	for name, rec := range b.All() {
		c := seedContact{Name: name}
		for _, p := range rec.Phones() {
			c.Phones = append(c.Phones, p.Value)
		}
		seed.Contacts = append(seed.Contacts, c)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seed); err != nil {
		return fmt.Errorf("book: encoding seed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("book: encoding seed: %w", err)
	}
	return nil
}
