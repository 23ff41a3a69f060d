// Package handler implements the HTTP handlers for the people registry API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (health.go, person.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/people-registry/internal/domain"
)

// PersonServicer defines the business operations the person handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type PersonServicer interface {
	Create(ctx context.Context, p domain.Person) (domain.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Person, error)
	Search(ctx context.Context, params domain.SearchParams) ([]domain.Person, error)
	Count(ctx context.Context) (int64, error)
}

// Pinger reports whether the store is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions(logger)).
type Server struct {
	people PersonServicer
	db     Pinger
}

// NewServer constructs the Server with all its dependencies.
// db may be nil, in which case /healthz only reports that the process is up.
func NewServer(people PersonServicer, db Pinger) *Server {
	return &Server{people: people, db: db}
}
