// Package parser converts classified documents into rows of the relational
// schema.
//
// Parsers never touch the database. The result of parsing is a list of
// generations: the complete new content of every detail group that the
// document carries. A detail group whose section is absent from the document
// produces no generation, so its rows stay untouched by a load. A section
// that is present but empty produces an empty generation, which removes the
// rows of the group.
package parser

import (
	"github.com/gnames/datablock/pkg/document"
	"github.com/gnames/datablock/pkg/schema"
)

// Generation is the new content of one detail group of a company.
type Generation struct {
	// Group is the detail group replaced by this generation.
	Group schema.Group

	// Rows are the top-level rows of the group. Their descendants are
	// attached through association fields.
	Rows []schema.Row
}

// RowsNumber returns the number of rows in the generation, descendants
// included.
func (g Generation) RowsNumber() int {
	var res int
	for _, r := range g.Rows {
		res += schema.CountRows(r)
	}
	return res
}

// Parse converts a document into generations of its detail groups.
func Parse(doc document.Document) ([]Generation, error) {
	switch d := doc.(type) {
	case document.CompanyInfoDoc:
		return []Generation{CompanyInfo(d)}, nil
	case document.EventsFilingsDoc:
		return EventsFilings(d), nil
	case document.FinancialsDoc:
		return Financials(d), nil
	default:
		return nil, UnsupportedDocumentError(doc)
	}
}
