package ioschema

import "fmt"

type indexDef struct {
	name, table, expr string
}

// lookupIndexes support case-insensitive filters of the list command.
var lookupIndexes = []indexDef{
	{"idx_companies_primary_name_lower", "companies", "LOWER(primary_name)"},
}

// formatIndexSQL formats an idempotent CREATE INDEX statement.
func formatIndexSQL(idx indexDef) string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		idx.name, idx.table, idx.expr)
}
