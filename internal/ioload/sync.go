package ioload

import (
	"errors"
	"fmt"

	"github.com/gnames/datablock/pkg/parser"
	"github.com/gnames/datablock/pkg/schema"
	"gorm.io/gorm"
)

type deleteStmt struct {
	table, where string
}

// Replace removes the rows of the generation's group that belong to the
// company and inserts the new generation. It returns the number of
// inserted rows, nested rows included. It must run inside a transaction,
// otherwise a failed insert leaves the group empty.
func Replace(tx *gorm.DB, companyID uint, gen parser.Generation) (int, error) {
	if err := deleteGroup(tx, companyID, gen.Group); err != nil {
		return 0, err
	}

	for _, r := range gen.Rows {
		r.SetCompanyID(companyID)
		if err := tx.Create(r).Error; err != nil {
			return 0, SyncInsertError(gen.Group, r.TableName(), err)
		}
	}
	return gen.RowsNumber(), nil
}

// deleteGroup deletes leaves first, so every subquery still finds the
// parent rows it filters by.
func deleteGroup(tx *gorm.DB, companyID uint, group schema.Group) error {
	nodes := schema.Ownership(group)
	if len(nodes) == 0 {
		return SyncDeleteError(group, "", errors.New("group owns no tables"))
	}

	var stmts []deleteStmt
	err := schema.Walk(nodes, func(n schema.Node, where string) error {
		if n.Table == "" || n.FK == "" {
			return fmt.Errorf("incomplete ownership node %+v", n)
		}
		stmts = append(stmts, deleteStmt{table: n.Table, where: where})
		return nil
	})
	if err != nil {
		return SyncDeleteError(group, "", err)
	}

	for i := len(stmts) - 1; i >= 0; i-- {
		s := stmts[i]
		q := "DELETE FROM " + s.table + " WHERE " + s.where
		if err := tx.Exec(q, companyID).Error; err != nil {
			return SyncDeleteError(group, s.table, err)
		}
	}
	return nil
}
