package validation

import "errors"

var (
	ErrWeakPassword    = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong = errors.New("password must not exceed 72 characters")
)

// ValidatePassword checks password length. The upper bound exists because
// bcrypt silently truncates input beyond 72 bytes.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	return nil
}
