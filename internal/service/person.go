// Package service contains the business logic for the people registry.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/people-registry/internal/domain"
	"github.com/pkordes/people-registry/internal/metrics"
	"github.com/pkordes/people-registry/internal/repo"
)

// PersonCache is the read-through cache the service consults on GetByID.
// *cache.PersonCache satisfies it.
type PersonCache interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Person, bool, error)
	Set(ctx context.Context, p domain.Person) error
}

// PersonService implements business logic for Person operations.
type PersonService struct {
	repo    repo.PersonRepo
	cache   PersonCache
	metrics *metrics.Metrics
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a PersonService.
type Option func(*PersonService)

// WithCache enables the read-through cache. Without it every GetByID hits the repo.
func WithCache(c PersonCache) Option {
	return func(s *PersonService) { s.cache = c }
}

// WithMetrics records create outcomes and cache lookups on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *PersonService) { s.metrics = m }
}

// WithClock replaces time.Now for the birth date "not in the future" rule.
func WithClock(now func() time.Time) Option {
	return func(s *PersonService) { s.now = now }
}

// WithLogger sets the logger for cache failures. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *PersonService) { s.log = l }
}

// NewPersonService constructs a PersonService backed by the provided PersonRepo.
func NewPersonService(r repo.PersonRepo, opts ...Option) *PersonService {
	s := &PersonService{repo: r, now: time.Now, log: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create validates and persists a new person.
// Returns domain.ErrValidation before touching the repo if any field is invalid,
// and domain.ErrConflict if the nickname is already taken.
func (s *PersonService) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	if err := domain.ValidatePerson(p, s.now()); err != nil {
		s.count((*metrics.Metrics).IncrementValidationFailures)
		return domain.Person{}, fmt.Errorf("service.PersonService.Create: %w", err)
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.count((*metrics.Metrics).IncrementConflicts)
		}
		return domain.Person{}, fmt.Errorf("service.PersonService.Create: %w", err)
	}
	s.count((*metrics.Metrics).IncrementCreated)

	if s.cache != nil {
		if err := s.cache.Set(ctx, created); err != nil {
			s.log.WarnContext(ctx, "cache person after create", "id", created.ID, "error", err)
		}
	}
	return created, nil
}

// GetByID returns a single person by ID, from the cache when possible.
// Returns domain.ErrNotFound if no person with that ID exists.
func (s *PersonService) GetByID(ctx context.Context, id uuid.UUID) (domain.Person, error) {
	if s.cache != nil {
		p, found, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			s.observeCache("error")
			s.log.WarnContext(ctx, "read person from cache", "id", id, "error", err)
		case found:
			s.observeCache("hit")
			return p, nil
		default:
			s.observeCache("miss")
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.GetByID: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, p); err != nil {
			s.log.WarnContext(ctx, "cache person after read", "id", id, "error", err)
		}
	}
	return p, nil
}

// Search returns up to params.Limit people matching the optional term.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PersonService) Search(ctx context.Context, params domain.SearchParams) ([]domain.Person, error) {
	people, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("service.PersonService.Search: %w", err)
	}
	if people == nil {
		return []domain.Person{}, nil
	}
	return people, nil
}

// Count returns the total number of people.
func (s *PersonService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.PersonService.Count: %w", err)
	}
	return n, nil
}

func (s *PersonService) count(inc func(*metrics.Metrics)) {
	if s.metrics != nil {
		inc(s.metrics)
	}
}

func (s *PersonService) observeCache(result string) {
	if s.metrics != nil {
		s.metrics.ObserveCacheLookup(result)
	}
}
