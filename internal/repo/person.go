// Package repo contains all database access logic for the people registry.
// No business logic lives here, only SQL, type mapping, and classification
// of PostgreSQL errors into domain errors.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/people-registry/internal/domain"
)

// PersonRepo defines the persistence operations for people.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
// Every method performs exactly one round trip to the database.
type PersonRepo interface {
	// Create inserts a new person and returns the persisted record with its
	// DB-generated id. Returns domain.ErrConflict if the nickname is taken.
	Create(ctx context.Context, p domain.Person) (domain.Person, error)

	// GetByID retrieves a single person by UUID.
	// Returns domain.ErrNotFound if no person with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Person, error)

	// Search returns up to p.Limit people. With a term, only people whose
	// searchable text is similar to the term are returned, best match first.
	// Returns an empty slice, not an error, when nothing matches.
	Search(ctx context.Context, p domain.SearchParams) ([]domain.Person, error)

	// Count returns the total number of people.
	Count(ctx context.Context) (int64, error)
}

// pgPersonRepo is the Postgres implementation of PersonRepo.
type pgPersonRepo struct {
	db db
}

// NewPersonRepo constructs a PersonRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPersonRepo(db db) PersonRepo {
	return &pgPersonRepo{db: db}
}

const personColumns = `id, nickname, name, birth_date, stack`

// Create inserts a person row and returns the full persisted record.
// The search column is denormalized here so the similarity index covers
// nickname, name and every stack entry.
func (r *pgPersonRepo) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	const q = `
		INSERT INTO people (nickname, name, birth_date, stack, search)
		VALUES (@nickname, @name, @birth_date, @stack, @search)
		RETURNING ` + personColumns

	birth, err := domain.ParseBirthDate(p.BirthDate)
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"nickname":   p.Nickname,
		"name":       p.Name,
		"birth_date": pgtype.Date{Time: birth, Valid: true},
		"stack":      p.Stack, // nil becomes NULL
		"search":     searchText(p),
	}

	var result domain.Person
	err = withConn(ctx, r.db, func(c db) error {
		var err error
		result, err = scanPerson(c.QueryRow(ctx, q, args))
		return err
	})
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.Create: %w", classifyInsertError(err))
	}
	return result, nil
}

// GetByID retrieves a person by primary key.
func (r *pgPersonRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Person, error) {
	const q = `
		SELECT ` + personColumns + `
		FROM people
		WHERE id = @id`

	var result domain.Person
	err := withConn(ctx, r.db, func(c db) error {
		var err error
		result, err = scanPerson(c.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
		return err
	})
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.GetByID: %w", classifyConnError(err))
	}
	return result, nil
}

// Search lists people, filtered by trigram word similarity when a term is set.
// An empty term is still a similarity query; pg_trgm extracts no trigrams
// from it, so it matches nothing.
func (r *pgPersonRepo) Search(ctx context.Context, p domain.SearchParams) ([]domain.Person, error) {
	const listQ = `
		SELECT ` + personColumns + `
		FROM people
		LIMIT @limit`

	const searchQ = `
		SELECT ` + personColumns + `
		FROM people
		WHERE lower(@term) <% search
		ORDER BY word_similarity(lower(@term), search) DESC
		LIMIT @limit`

	q, args := listQ, pgx.NamedArgs{"limit": p.Limit}
	if p.HasTerm {
		q = searchQ
		args["term"] = p.Term
	}

	people := []domain.Person{}
	err := withConn(ctx, r.db, func(c db) error {
		rows, err := c.Query(ctx, q, args)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			person, err := scanPerson(rows)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			people = append(people, person)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repo.PersonRepo.Search: %w", classifyConnError(err))
	}
	return people, nil
}

// Count returns the number of rows in people.
func (r *pgPersonRepo) Count(ctx context.Context) (int64, error) {
	const q = `SELECT count(*) FROM people`

	var n int64
	err := withConn(ctx, r.db, func(c db) error {
		return c.QueryRow(ctx, q).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("repo.PersonRepo.Count: %w", classifyConnError(err))
	}
	return n, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanPerson to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPerson maps a single database row into a domain.Person.
// Columns must be selected in personColumns order.
func scanPerson(s scanner) (domain.Person, error) {
	var (
		p     domain.Person
		id    pgtype.UUID
		birth pgtype.Date
	)

	err := s.Scan(&id, &p.Nickname, &p.Name, &birth, &p.Stack)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Person{}, domain.ErrNotFound
		}
		return domain.Person{}, err
	}
	if !id.Valid || !birth.Valid {
		return domain.Person{}, fmt.Errorf("scan person: unexpected NULL in id or birth_date")
	}

	p.ID = uuid.UUID(id.Bytes)
	p.BirthDate = birth.Time.Format(domain.DateLayout)
	return p, nil
}

// searchText builds the denormalized, lower-cased text the similarity
// search runs against.
func searchText(p domain.Person) string {
	parts := make([]string, 0, 2+len(p.Stack))
	parts = append(parts, p.Nickname, p.Name)
	parts = append(parts, p.Stack...)
	return strings.ToLower(strings.Join(parts, " "))
}
