package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/people-registry/internal/domain"
)

// fixedNow is the clock used by every test in this file.
var fixedNow = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

func validPerson() domain.Person {
	return domain.Person{
		Nickname:  "ann",
		Name:      "Ann",
		BirthDate: "1990-05-01",
		Stack:     []string{"Go", "Postgres"},
	}
}

func TestValidatePerson_Valid(t *testing.T) {
	require.NoError(t, domain.ValidatePerson(validPerson(), fixedNow))
}

func TestValidatePerson_NilAndEmptyStack(t *testing.T) {
	p := validPerson()
	p.Stack = nil
	assert.NoError(t, domain.ValidatePerson(p, fixedNow))

	p.Stack = []string{}
	assert.NoError(t, domain.ValidatePerson(p, fixedNow))
}

// Empty strings are accepted: the rules are upper bounds only.
func TestValidatePerson_EmptyNicknameAndName(t *testing.T) {
	p := validPerson()
	p.Nickname = ""
	p.Name = ""

	assert.NoError(t, domain.ValidatePerson(p, fixedNow))
}

func TestValidatePerson_NicknameTooLong(t *testing.T) {
	p := validPerson()
	p.Nickname = strings.Repeat("a", domain.MaxNicknameLength+1)

	err := domain.ValidatePerson(p, fixedNow)

	require.ErrorIs(t, err, domain.ErrValidation)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "nickname", ve.Field)
}

func TestValidatePerson_LengthBoundsAreInclusive(t *testing.T) {
	p := validPerson()
	p.Nickname = strings.Repeat("a", domain.MaxNicknameLength)
	p.Name = strings.Repeat("b", domain.MaxNameLength)
	p.Stack = []string{strings.Repeat("c", domain.MaxStackWordLength)}

	assert.NoError(t, domain.ValidatePerson(p, fixedNow))
}

// Multi-byte characters count once each.
func TestValidateNickname_CountsRunes(t *testing.T) {
	assert.NoError(t, domain.ValidateNickname(strings.Repeat("é", domain.MaxNicknameLength)))
	assert.Error(t, domain.ValidateNickname(strings.Repeat("é", domain.MaxNicknameLength+1)))
}

// When several fields are invalid, the first in nickname → name →
// birth_date → stack order is reported.
func TestValidatePerson_FirstViolationWins(t *testing.T) {
	bad := domain.Person{
		Nickname:  strings.Repeat("n", domain.MaxNicknameLength+1),
		Name:      strings.Repeat("m", domain.MaxNameLength+1),
		BirthDate: "not-a-date",
		Stack:     []string{strings.Repeat("s", domain.MaxStackWordLength+1)},
	}

	tests := []struct {
		name  string
		fix   func(p *domain.Person)
		field string
	}{
		{"all invalid", func(*domain.Person) {}, "nickname"},
		{"nickname fixed", func(p *domain.Person) { p.Nickname = "ok" }, "name"},
		{"name fixed", func(p *domain.Person) { p.Nickname, p.Name = "ok", "ok" }, "birth_date"},
		{"birth date fixed", func(p *domain.Person) {
			p.Nickname, p.Name, p.BirthDate = "ok", "ok", "2000-01-01"
		}, "stack"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := bad
			p.Stack = append([]string(nil), bad.Stack...)
			tc.fix(&p)

			var ve *domain.ValidationError
			require.ErrorAs(t, domain.ValidatePerson(p, fixedNow), &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestValidateBirthDate(t *testing.T) {
	today := fixedNow.Format(domain.DateLayout)
	tomorrow := fixedNow.AddDate(0, 0, 1).Format(domain.DateLayout)

	tests := []struct {
		in    string
		valid bool
	}{
		{"1970-01-01", true},
		{"2020-02-29", true}, // leap year
		{"2023-02-29", false},
		{"2023-04-31", false},
		{"1990-5-1", true},
		{"70-01-01", false},
		{"1990-13-01", false},
		{"1990-00-10", false},
		{"1990/05/01", false},
		{"", false},
		{" 1990-05-01", false},
		{today, true},
		{tomorrow, false},
		{"2999-01-01", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			err := domain.ValidateBirthDate(tc.in, fixedNow)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "birth_date", ve.Field)
		})
	}
}

// Today is evaluated in UTC regardless of the clock's location.
func TestValidateBirthDate_UsesUTCDate(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*60*60)
	// 2024-03-11 05:00 in UTC+10 is still 2024-03-10 in UTC.
	now := time.Date(2024, 3, 11, 5, 0, 0, 0, east)

	assert.NoError(t, domain.ValidateBirthDate("2024-03-10", now))
	assert.Error(t, domain.ValidateBirthDate("2024-03-11", now))
}

func TestValidateStack_EntryTooLong(t *testing.T) {
	err := domain.ValidateStack([]string{"Go", strings.Repeat("x", domain.MaxStackWordLength+1)})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "stack", ve.Field)
}

func TestValidationError_Detail(t *testing.T) {
	err := domain.ValidateName(strings.Repeat("x", domain.MaxNameLength+1))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name must be at most 100 characters", ve.Detail())
	assert.Equal(t, "validation error: name must be at most 100 characters", err.Error())
}

func TestParseBirthDate_NormalizesToUTCMidnight(t *testing.T) {
	d, err := domain.ParseBirthDate("1990-5-1")

	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "1990-05-01", d.Format(domain.DateLayout))
}

func TestNewSearchParams(t *testing.T) {
	none := domain.NewSearchParams(nil)
	assert.False(t, none.HasTerm)
	assert.Equal(t, domain.SearchLimit, none.Limit)

	empty := ""
	blank := domain.NewSearchParams(&empty)
	assert.True(t, blank.HasTerm, "an empty t is still a search")
	assert.Equal(t, "", blank.Term)

	term := "rust"
	got := domain.NewSearchParams(&term)
	assert.True(t, got.HasTerm)
	assert.Equal(t, "rust", got.Term)
	assert.Equal(t, 50, got.Limit)
}
