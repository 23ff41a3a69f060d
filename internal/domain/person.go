// Package domain contains the core data types for the people registry.
// This package depends only on google/uuid and the standard library and is
// imported by every other internal package (repo, service, handler, cache).
package domain

import (
	"github.com/google/uuid"
)

// Field length limits, counted in Unicode code points.
const (
	MaxNicknameLength  = 32
	MaxNameLength      = 100
	MaxStackWordLength = 32
)

// DateLayout is the wire format of BirthDate on reads.
// Input also accepts one-digit month and day (see ParseBirthDate).
const DateLayout = "2006-01-02"

// Person is the only entity in the registry.
// ID is zero on create input and set by the database on every persisted read.
// Stack is nil when the person listed no technologies.
// A Person is never updated after creation.
type Person struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date"`
	Stack     []string  `json:"stack"`
}
