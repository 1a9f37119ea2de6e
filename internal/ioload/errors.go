package ioload

import (
	"fmt"

	"github.com/gnames/datablock/pkg/errcode"
	"github.com/gnames/datablock/pkg/schema"
	"github.com/gnames/gn"
)

// ResolveCompanyError creates an error for a failed lookup or insert of
// the companies row.
func ResolveCompanyError(duns string, err error) error {
	msg := `Cannot find or create company <em>%s</em>`

	return &gn.Error{
		Code: errcode.LoadResolveCompanyError,
		Msg:  msg,
		Vars: []any{duns},
		Err:  fmt.Errorf("failed to resolve company %s: %w", duns, err),
	}
}

// SyncDeleteError creates an error for a failed removal of previously
// loaded rows.
func SyncDeleteError(group schema.Group, table string, err error) error {
	msg := `Cannot delete old rows of <em>%s</em> from <em>%s</em>

<em>Possible causes:</em>
  - Schema is outdated, run <em>datablock migrate</em>
  - Database connection was lost`

	return &gn.Error{
		Code: errcode.LoadSyncDeleteError,
		Msg:  msg,
		Vars: []any{group, table},
		Err:  fmt.Errorf("failed to delete %s rows from %s: %w", group, table, err),
	}
}

// SyncInsertError creates an error for a failed insert of new rows.
func SyncInsertError(group schema.Group, table string, err error) error {
	msg := `Cannot insert rows of <em>%s</em> into <em>%s</em>

<em>Possible causes:</em>
  - Schema is outdated, run <em>datablock migrate</em>
  - A value does not fit its column`

	return &gn.Error{
		Code: errcode.LoadSyncInsertError,
		Msg:  msg,
		Vars: []any{group, table},
		Err:  fmt.Errorf("failed to insert %s rows into %s: %w", group, table, err),
	}
}

// ProvenanceError creates an error for failed bookkeeping of load runs
// and source documents.
func ProvenanceError(table string, err error) error {
	msg := `Cannot record load provenance in <em>%s</em>`

	return &gn.Error{
		Code: errcode.LoadProvenanceError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to write %s: %w", table, err),
	}
}

// TransactionError wraps a storage failure of a document that is not
// already a *gn.Error.
func TransactionError(name string, err error) error {
	msg := `Transaction for <em>%s</em> was rolled back`

	return &gn.Error{
		Code: errcode.LoadTransactionError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("transaction for %s failed: %w", name, err),
	}
}

// CancelledError creates an error for an interrupted load.
func CancelledError(err error) error {
	msg := "Load operation was cancelled"

	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}

// AllFilesFailedError is returned when no document of a run was loaded.
func AllFilesFailedError(count int) error {
	msg := `Failed number of documents: <em>%d</em>`

	plural := "s"
	if count == 1 {
		plural = ""
	}

	return &gn.Error{
		Code: errcode.LoadAllFilesFailedError,
		Msg:  msg,
		Vars: []any{count},
		Err:  fmt.Errorf("%d document%s failed to load", count, plural),
	}
}

// MetricsError creates an error for a metrics file that cannot be
// written.
func MetricsError(path string, err error) error {
	msg := `Cannot write metrics to <em>%s</em>`

	return &gn.Error{
		Code: errcode.LoadMetricsError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to write metrics file %s: %w", path, err),
	}
}
