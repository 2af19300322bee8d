package validation

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

// ValidateEmail checks a normalized email. The bar is deliberately low:
// the address only has to carry an @ and fit in a mail header.
func ValidateEmail(email string) error {
	if email == "" || len(email) > 254 {
		return ErrInvalidEmail
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
