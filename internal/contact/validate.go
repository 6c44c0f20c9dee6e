package contact

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// PhoneLength is the exact number of characters a phone value must have.
const PhoneLength = 10

// ErrInvalidPhone matches every ValidationError via errors.Is.
var ErrInvalidPhone = errors.New("contact: invalid phone number")

// ValidationError reports a phone value rejected by Rules.
type ValidationError struct {
	Value string
	Err   error // Underlying rule failure.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact: invalid phone %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying rule error.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidPhone.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPhone
}

// Rules is the phone validation policy. The zero value checks length only:
// any value of exactly PhoneLength characters passes, whatever it contains.
type Rules struct {
	DigitsOnly bool // Also require every character to be a digit.
}

// DefaultRules is the length-only policy used by NewPhone and NewRecord.
var DefaultRules = Rules{}

// Validate returns a *ValidationError if value does not satisfy the rules.
// Length is counted in characters, not bytes.
func (r Rules) Validate(value string) error {
	rules := []validation.Rule{
		validation.Required.Error(fmt.Sprintf("must be exactly %d characters", PhoneLength)),
		validation.RuneLength(PhoneLength, PhoneLength).Error(fmt.Sprintf("must be exactly %d characters", PhoneLength)),
	}
	if r.DigitsOnly {
		rules = append(rules, is.Digit.Error("must contain digits only"))
	}
	if err := validation.Validate(value, rules...); err != nil {
		return &ValidationError{Value: value, Err: err}
	}
	return nil
}

// NewPhone validates value and returns a Phone holding it unchanged.
func (r Rules) NewPhone(value string) (*Phone, error) {
	if err := r.Validate(value); err != nil {
		return nil, err
	}
	return &Phone{Field{Value: value}}, nil
}
