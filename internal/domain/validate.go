package domain

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// birthDatePattern is the accepted grammar before calendar checks.
// Month and day may drop their leading zero.
var birthDatePattern = regexp.MustCompile(`^\d{4}-(0?[1-9]|1[012])-(0?[1-9]|[12][0-9]|3[01])$`)

// birthDateParseLayout accepts both "1990-05-01" and "1990-5-1".
const birthDateParseLayout = "2006-1-2"

// ValidatePerson checks p field by field in the order
// nickname, name, birth_date, stack and returns the first failure as a
// *ValidationError, or nil when p is acceptable.
//
// now is the wall-clock time used for the "not in the future" rule; only its
// UTC calendar date is considered.
//
// Empty nickname and name strings pass: only upper length bounds apply.
func ValidatePerson(p Person, now time.Time) error {
	if err := ValidateNickname(p.Nickname); err != nil {
		return err
	}
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if err := ValidateBirthDate(p.BirthDate, now); err != nil {
		return err
	}
	return ValidateStack(p.Stack)
}

// ValidateNickname enforces the nickname length bound.
func ValidateNickname(nickname string) error {
	if utf8.RuneCountInString(nickname) > MaxNicknameLength {
		return &ValidationError{
			Field:   "nickname",
			Message: fmt.Sprintf("must be at most %d characters", MaxNicknameLength),
		}
	}
	return nil
}

// ValidateName enforces the name length bound.
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be at most %d characters", MaxNameLength),
		}
	}
	return nil
}

// ValidateBirthDate accepts s only if it matches the YYYY-MM-DD grammar,
// names a real calendar day, and is not after the UTC date of now.
func ValidateBirthDate(s string, now time.Time) error {
	d, err := ParseBirthDate(s)
	if err != nil {
		return &ValidationError{
			Field:   "birth_date",
			Message: "must be a valid date in YYYY-MM-DD format",
		}
	}
	y, m, day := now.UTC().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return &ValidationError{
			Field:   "birth_date",
			Message: "must not be in the future",
		}
	}
	return nil
}

// ValidateStack enforces the per-entry length bound. A nil or empty stack is valid.
func ValidateStack(stack []string) error {
	for _, word := range stack {
		if utf8.RuneCountInString(word) > MaxStackWordLength {
			return &ValidationError{
				Field:   "stack",
				Message: fmt.Sprintf("entries must be at most %d characters", MaxStackWordLength),
			}
		}
	}
	return nil
}

// ParseBirthDate parses s as a calendar date at UTC midnight.
// It rejects strings outside the grammar and impossible days such as
// "2023-02-29".
func ParseBirthDate(s string) (time.Time, error) {
	if !birthDatePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("birth date %q: want YYYY-MM-DD", s)
	}
	d, err := time.ParseInLocation(birthDateParseLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("birth date %q: %w", s, err)
	}
	return d, nil
}
