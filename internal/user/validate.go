package user

import (
	"regexp"
	"strings"
)

const minPasswordLen = 6

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()./-]{5,17}[0-9]$`)
)

// FieldError reports a single failed input check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateSignup checks all signup fields and returns every failure, not
// just the first one.
func ValidateSignup(email, password, phone string) []FieldError {
	errs := ValidateLogin(email, password)
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		errs = append(errs, FieldError{Field: "phone", Message: "please enter a valid phone number"})
	}
	return errs
}

// ValidateLogin checks the credential pair shared by signup and login.
func ValidateLogin(email, password string) []FieldError {
	var errs []FieldError
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		errs = append(errs, FieldError{Field: "email", Message: "please enter a valid email address"})
	}
	if len(password) < minPasswordLen {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	return errs
}
