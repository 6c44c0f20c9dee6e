package contact

import (
	"fmt"
	"strings"
)

// Record is a single contact: a name and its phones in insertion order.
// Duplicate phones are allowed. The name is fixed at construction since an
// AddressBook keys records by it. A Record is not safe for concurrent use.
type Record struct {
	name   Name
	phones []*Phone

	rules      Rules
	strictEdit bool
}

// Option configures a Record.
type Option func(*Record)

// WithRules sets the validation policy for phones added to the record.
func WithRules(r Rules) Option {
	return func(rec *Record) {
		rec.rules = r
	}
}

// WithStrictEdit makes EditPhone validate the replacement value before
// touching any phone. Without it the replacement is stored as given.
func WithStrictEdit() Option {
	return func(rec *Record) {
		rec.strictEdit = true
	}
}

// NewRecord creates a Record named name with no phones.
func NewRecord(name string, opts ...Option) *Record {
	r := &Record{
		name:  NewName(name),
		rules: DefaultRules,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Name returns the record's name.
func (r *Record) Name() Name {
	return r.name
}

// AddPhone validates value and appends it. It returns a *ValidationError
// when the value is rejected; the record is unchanged in that case.
func (r *Record) AddPhone(value string) error {
	p, err := r.rules.NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to value. Missing values are ignored.
func (r *Record) RemovePhone(value string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.Value != value {
			kept = append(kept, p)
		}
	}
	// Clear the tail so removed phones can be collected.
	for i := len(kept); i < len(r.phones); i++ {
		r.phones[i] = nil
	}
	r.phones = kept
}

// EditPhone rewrites every phone equal to oldValue to newValue, in place.
// Order and count are preserved; no match is a no-op.
//
// The replacement is not validated unless the record was created with
// WithStrictEdit, in which case a *ValidationError is returned and no phone
// changes. The error is always nil otherwise.
func (r *Record) EditPhone(oldValue, newValue string) error {
	if r.strictEdit {
		if err := r.rules.Validate(newValue); err != nil {
			return err
		}
	}
	for _, p := range r.phones {
		if p.Value == oldValue {
			p.Value = newValue
		}
	}
	return nil
}

// FindPhone returns the first phone equal to value, or nil.
func (r *Record) FindPhone(value string) *Phone {
	for _, p := range r.phones {
		if p.Value == value {
			return p
		}
	}
	return nil
}

// Phones returns the record's phones in storage order. The slice is a copy;
// the Phone values are shared with the record.
func (r *Record) Phones() []*Phone {
	return append([]*Phone(nil), r.phones...)
}

// String formats the record as "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.Value
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(values, "; "))
}
