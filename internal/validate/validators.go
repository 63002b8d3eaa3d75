// Package validate provides pure form-validation helpers. Validators
// never return errors as Go errors: they return structured results the
// UI layer can render per field.
package validate

import (
	"regexp"
	"unicode/utf8"
)

// Result is the outcome of a single-field validator.
type Result struct {
	Valid   bool
	Message string
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Valid: false, Message: msg} }

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Mainland-China mobile numbers: 11 digits, prefix 13x-19x.
	phoneRe    = regexp.MustCompile(`^1[3-9]\d{9}$`)
	letterRe   = regexp.MustCompile(`[a-zA-Z]`)
	digitRe    = regexp.MustCompile(`\d`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	realNameRe = regexp.MustCompile(`^[\p{Han}a-zA-Z\s]+$`)
)

// IsEmpty reports whether the value is the empty string.
func IsEmpty(value string) bool {
	return value == ""
}

// IsValidEmail reports whether s has a local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhone reports whether s is a valid mainland-China mobile number.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// ValidatePassword checks length 6-20 and requires at least one letter
// and one digit.
func ValidatePassword(password string) Result {
	if utf8.RuneCountInString(password) < 6 {
		return fail("password must be at least 6 characters")
	}
	if utf8.RuneCountInString(password) > 20 {
		return fail("password must not exceed 20 characters")
	}
	if !letterRe.MatchString(password) || !digitRe.MatchString(password) {
		return fail("password must contain both letters and digits")
	}
	return ok()
}

// ValidateUsername checks length 3-20 and the [A-Za-z0-9_] charset.
func ValidateUsername(username string) Result {
	if IsEmpty(username) {
		return fail("username must not be empty")
	}
	n := utf8.RuneCountInString(username)
	if n < 3 {
		return fail("username must be at least 3 characters")
	}
	if n > 20 {
		return fail("username must not exceed 20 characters")
	}
	if !usernameRe.MatchString(username) {
		return fail("username may only contain letters, digits and underscores")
	}
	return ok()
}

// ValidateRealName checks length 2-20 and allows CJK ideographs, ASCII
// letters and whitespace. Lengths are rune counts so CJK names measure
// correctly.
func ValidateRealName(name string) Result {
	if IsEmpty(name) {
		return fail("real name must not be empty")
	}
	n := utf8.RuneCountInString(name)
	if n < 2 {
		return fail("real name must be at least 2 characters")
	}
	if n > 20 {
		return fail("real name must not exceed 20 characters")
	}
	if !realNameRe.MatchString(name) {
		return fail("real name may only contain Chinese characters, letters and spaces")
	}
	return ok()
}

// ValidateActivityTitle checks length 5-50.
func ValidateActivityTitle(title string) Result {
	if IsEmpty(title) {
		return fail("activity title must not be empty")
	}
	n := utf8.RuneCountInString(title)
	if n < 5 {
		return fail("activity title must be at least 5 characters")
	}
	if n > 50 {
		return fail("activity title must not exceed 50 characters")
	}
	return ok()
}

// ValidateActivityDescription checks length 20-1000.
func ValidateActivityDescription(description string) Result {
	if IsEmpty(description) {
		return fail("activity description must not be empty")
	}
	n := utf8.RuneCountInString(description)
	if n < 20 {
		return fail("activity description must be at least 20 characters")
	}
	if n > 1000 {
		return fail("activity description must not exceed 1000 characters")
	}
	return ok()
}

// ValidatePrice checks the range [0, 10000].
func ValidatePrice(price float64) Result {
	if price < 0 {
		return fail("price must not be negative")
	}
	if price > 10000 {
		return fail("price must not exceed 10000")
	}
	return ok()
}

// ValidateParticipantCount checks the integer range [1, 1000].
func ValidateParticipantCount(count int) Result {
	if count < 1 {
		return fail("participant count must be at least 1")
	}
	if count > 1000 {
		return fail("participant count must not exceed 1000")
	}
	return ok()
}
