package domain

import "strings"

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListParams carries paging and search values from the HTTP layer to the repo.
// Page is 1-indexed; Limit is capped at maxPageLimit.
type ListParams struct {
	Page  int
	Limit int
	// Search filters tours whose title or location contains it, ignoring case.
	// Empty matches everything.
	Search string
}

// NewListParams builds ListParams from optional query values.
// Nil or non-positive values fall back to page=1, limit=20.
func NewListParams(page, limit *int, search string) ListParams {
	p := ListParams{Page: 1, Limit: defaultPageLimit, Search: strings.TrimSpace(search)}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, maxPageLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
