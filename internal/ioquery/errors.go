package ioquery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/gn"
)

var errNotFound = errors.New("company not found")

// NotFoundError is returned when there is no company with the DUNS.
func NotFoundError(duns string) error {
	msg := `Company <em>%s</em> is not in the database

<em>How to fix:</em>
  1. Check the DUNS, it has 9 digits
  2. Load a document of the company: <em>datablock load file.json</em>`

	return &gn.Error{
		Code: errcode.QueryNotFoundError,
		Msg:  msg,
		Vars: []any{duns},
		Err:  fmt.Errorf("duns %s: %w", duns, errNotFound),
	}
}

// QueryError wraps a failed database read.
func QueryError(op string, err error) error {
	msg := `Cannot read <em>%s</em> from database`

	return &gn.Error{
		Code: errcode.QueryError,
		Msg:  msg,
		Vars: []any{op},
		Err:  fmt.Errorf("query %s failed: %w", op, err),
	}
}

// IsNotFound checks if an error means the company does not exist.
func IsNotFound(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.QueryNotFoundError
	}
	return false
}

// UnknownGroupError is returned for a filter by a group that does not
// exist.
func UnknownGroupError(group string, known []string) error {
	msg := `Unknown detail group <em>%s</em>

<em>How to fix:</em>
  Use one of: %s`

	return &gn.Error{
		Code: errcode.QueryUnknownGroupError,
		Msg:  msg,
		Vars: []any{group, strings.Join(known, ", ")},
		Err:  fmt.Errorf("unknown group %q", group),
	}
}
