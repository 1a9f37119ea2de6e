package lifecycle

import (
	"context"

	"github.com/gnames/datablock/pkg/schema"
)

const (
	// DefaultLimit is the page size of ListCompanies when Limit is not set.
	DefaultLimit = 50

	// MaxLimit is the largest allowed page size.
	MaxLimit = 1000
)

// Querier reads companies together with their detail groups.
type Querier interface {
	// CompanyByDUNS returns a company with every detail group and its
	// nested rows.
	CompanyByDUNS(ctx context.Context, duns string) (*schema.Company, error)

	// ListCompanies returns companies ordered by DUNS.
	ListCompanies(ctx context.Context, f Filter) ([]schema.Company, error)

	// Counts returns the number of rows per table that belong to a company.
	Counts(ctx context.Context, duns string) (map[string]int64, error)
}

// Filter narrows ListCompanies results. Empty fields do not filter.
type Filter struct {
	// Country is an ISO 3166 alpha-2 code.
	Country string

	// Name is a case-insensitive substring of the primary name.
	Name string

	// Group keeps companies that have rows of this detail group.
	Group schema.Group

	Limit  int
	Offset int

	// Full preloads every detail group.
	Full bool
}

// Normalize applies default and maximum limits.
func (f Filter) Normalize() Filter {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
