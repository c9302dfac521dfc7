package util

import (
	"regexp"
	"strings"
	"unicode"
)

// FieldError is one form-level validation failure. These are produced before
// any network call and never reach the identity API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

var (
	emailRegexp    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// ValidPassword requires at least 8 characters with one uppercase letter, one
// lowercase letter and one digit. (RE2 has no lookahead, so this is spelled
// out instead of a single regexp.)
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func ValidateLogin(username, password string) ValidationErrors {
	var errs ValidationErrors

	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Username is required"})
	} else if len(trimmed) < 3 {
		errs = append(errs, FieldError{Field: "username", Message: "Username must be at least 3 characters"})
	}

	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	} else if len(password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}

	return errs
}

func ValidateRegistration(firstName, lastName, email, username, password, confirmPassword string) ValidationErrors {
	var errs ValidationErrors

	if first := strings.TrimSpace(firstName); first == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "First name is required"})
	} else if len(first) < 2 {
		errs = append(errs, FieldError{Field: "firstName", Message: "First name must be at least 2 characters"})
	}

	if last := strings.TrimSpace(lastName); last == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "Last name is required"})
	} else if len(last) < 2 {
		errs = append(errs, FieldError{Field: "lastName", Message: "Last name must be at least 2 characters"})
	}

	if strings.TrimSpace(email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if !ValidEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}

	switch user := strings.TrimSpace(username); {
	case user == "":
		errs = append(errs, FieldError{Field: "username", Message: "Username is required"})
	case len(user) < 3:
		errs = append(errs, FieldError{Field: "username", Message: "Username must be at least 3 characters"})
	case len(user) > 20:
		errs = append(errs, FieldError{Field: "username", Message: "Username must be less than 20 characters"})
	case !usernameRegexp.MatchString(user):
		errs = append(errs, FieldError{Field: "username", Message: "Username can only contain letters, numbers, and underscores"})
	}

	if password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	} else if !ValidPassword(password) {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters with 1 uppercase, 1 lowercase, and 1 number"})
	}

	// The confirmation check runs regardless of whether the primary password
	// passed its own validation.
	if confirmPassword == "" {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "Please confirm your password"})
	} else if password != confirmPassword {
		errs = append(errs, FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	}

	return errs
}
