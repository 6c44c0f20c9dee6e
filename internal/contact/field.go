// Package contact holds the address book's value types (Name, Phone) and the
// Record aggregate that ties one name to an ordered list of phones.
package contact

// Field is the value wrapper shared by Name and Phone.
type Field struct {
	Value string
}

// String returns the raw value.
func (f Field) String() string {
	return f.Value
}

// Name is a contact's name. Any string is accepted.
type Name struct {
	Field
}

// NewName wraps value as a Name.
func NewName(value string) Name {
	return Name{Field{Value: value}}
}

// Phone is a contact's phone number. Construct with NewPhone or Rules.NewPhone
// so the value passes validation.
type Phone struct {
	Field
}

// NewPhone validates value under the default rules and returns a Phone.
func NewPhone(value string) (*Phone, error) {
	return DefaultRules.NewPhone(value)
}
