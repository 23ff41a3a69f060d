package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/pkordes/people-registry/internal/domain"
	"github.com/pkordes/people-registry/internal/handler/gen"
)

// CreatePerson handles POST /people.
func (s *Server) CreatePerson(ctx context.Context, req gen.CreatePersonRequestObject) (gen.CreatePersonResponseObject, error) {
	p, err := requestToPerson(req.Body)
	if err != nil {
		return gen.CreatePerson422JSONResponse(validationBody(err)), nil
	}

	created, err := s.people.Create(ctx, p)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.CreatePerson422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.CreatePerson409Response{}, nil
		}
		return nil, err
	}

	return gen.CreatePerson201JSONResponse{
		Body:    personToResponse(created),
		Headers: gen.CreatePerson201ResponseHeaders{Location: "/people/" + created.ID.String()},
	}, nil
}

// ListPeople handles GET /people.
// Without ?t= it lists people unfiltered; with it, it runs a similarity search.
// Either way at most domain.SearchLimit people are returned.
func (s *Server) ListPeople(ctx context.Context, req gen.ListPeopleRequestObject) (gen.ListPeopleResponseObject, error) {
	people, err := s.people.Search(ctx, domain.NewSearchParams(req.Params.T))
	if err != nil {
		return nil, err
	}

	data := make(gen.ListPeople200JSONResponse, len(people))
	for i, p := range people {
		data[i] = personToResponse(p)
	}
	return data, nil
}

// GetPerson handles GET /people/{id}.
// An id that is not a UUID cannot name a person, so it is a 404 as well.
func (s *Server) GetPerson(ctx context.Context, req gen.GetPersonRequestObject) (gen.GetPersonResponseObject, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return gen.GetPerson404Response{}, nil
	}

	p, err := s.people.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetPerson404Response{}, nil
		}
		return nil, err
	}

	return gen.GetPerson200JSONResponse(personToResponse(p)), nil
}

// CountPeople handles GET /people/count.
func (s *Server) CountPeople(ctx context.Context, _ gen.CountPeopleRequestObject) (gen.CountPeopleResponseObject, error) {
	n, err := s.people.Count(ctx)
	if err != nil {
		return nil, err
	}
	return gen.CountPeople200TextResponse(strconv.FormatInt(n, 10)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToPerson converts a CreatePersonRequest body into a domain.Person.
// Returns a *domain.ValidationError if a required field is missing or null.
func requestToPerson(body *gen.CreatePersonRequest) (domain.Person, error) {
	if body == nil {
		return domain.Person{}, &domain.ValidationError{Field: "body", Message: "is required"}
	}
	switch {
	case body.Nickname == nil:
		return domain.Person{}, &domain.ValidationError{Field: "nickname", Message: "is required"}
	case body.Name == nil:
		return domain.Person{}, &domain.ValidationError{Field: "name", Message: "is required"}
	case body.BirthDate == nil:
		return domain.Person{}, &domain.ValidationError{Field: "birth_date", Message: "is required"}
	}

	p := domain.Person{
		Nickname:  *body.Nickname,
		Name:      *body.Name,
		BirthDate: *body.BirthDate,
	}
	if body.Stack != nil {
		p.Stack = *body.Stack
	}
	return p, nil
}

// personToResponse converts a domain.Person into the generated gen.Person type.
// A nil stack is written as JSON null.
func personToResponse(p domain.Person) gen.Person {
	resp := gen.Person{
		Id:        p.ID,
		Nickname:  p.Nickname,
		Name:      p.Name,
		BirthDate: p.BirthDate,
	}
	if p.Stack != nil {
		stack := p.Stack
		resp.Stack = &stack
	}
	return resp
}
