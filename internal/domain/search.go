package domain

// SearchLimit caps every list or search result. There is no pagination.
const SearchLimit = 50

// SearchParams carries the optional search term from the HTTP layer to the
// repo layer.
type SearchParams struct {
	// Term is matched by similarity against the searchable text of each person.
	// It is only meaningful when HasTerm is true.
	Term string
	// HasTerm distinguishes "?t=" (search for the empty string) from no t at all.
	HasTerm bool
	// Limit is the maximum number of people to return.
	Limit int
}

// NewSearchParams builds SearchParams from the optional ?t= query parameter.
// A nil term lists people without a filter. An empty or whitespace-only term
// is passed through to the similarity search unchanged.
func NewSearchParams(term *string) SearchParams {
	p := SearchParams{Limit: SearchLimit}
	if term != nil {
		p.Term = *term
		p.HasTerm = true
	}
	return p
}
