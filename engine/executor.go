package engine

import (
	"errors"
	"fmt"
	"io"

	"simpledb/btree"
	"simpledb/row"
)

// Execute-time errors, user-visible and recoverable (spec.md §4.7 class 1).
var (
	ErrDuplicateKey = errors.New("duplicate key")
	ErrTableFull    = errors.New("table is full")
)

// Execute runs stmt against the table, writing select output to w.
func (t *Table) Execute(stmt *Statement, w io.Writer) error {
	switch stmt.Type {
	case StatementInsert:
		return t.executeInsert(stmt)
	case StatementSelect:
		return t.executeSelect(w)
	default:
		return fmt.Errorf("engine: unknown statement type %d", stmt.Type)
	}
}

// executeInsert looks the key up via btree.Find; an equal key at the found
// position is a duplicate. A full root leaf is checked first so a table-full
// error never depends on where the key would land.
func (t *Table) executeInsert(stmt *Statement) error {
	root, err := t.bt.Pager.GetPage(t.bt.RootPageNum)
	if err != nil {
		return fatal(err)
	}
	if btree.LeafNumCells(root) >= btree.LeafMaxCells {
		return ErrTableFull
	}

	key := stmt.RowToInsert.ID
	cursor, err := btree.Find(t.bt, key)
	if err != nil {
		// Find fails only via btree.ErrInternalNode (unimplemented) or a
		// pager I/O error; both are fatal per spec.md §4.7 classes 2-3.
		return fatal(err)
	}

	numCells := btree.LeafNumCells(root)
	if cursor.CellNum < numCells && btree.LeafKey(root, cursor.CellNum) == key {
		return ErrDuplicateKey
	}

	if err := btree.LeafInsert(cursor, key, stmt.RowToInsert); err != nil {
		if errors.Is(err, btree.ErrLeafFull) {
			return ErrTableFull
		}
		return fatal(err)
	}

	return nil
}

// executeSelect scans the table in key order, writing each row as
// "(<id>, <username>, <email>)" followed by a newline.
func (t *Table) executeSelect(w io.Writer) error {
	cursor, err := btree.TableStart(t.bt)
	if err != nil {
		return fatal(err)
	}

	for !cursor.EndOfTable {
		slot, err := cursor.Value()
		if err != nil {
			return fatal(err)
		}

		r, err := row.Deserialize(slot)
		if err != nil {
			return fatal(err)
		}

		if _, err := fmt.Fprintf(w, "(%d, %s, %s)\n", r.ID, r.Username, r.Email); err != nil {
			return fatal(err)
		}

		if err := cursor.Advance(); err != nil {
			return fatal(err)
		}
	}

	return nil
}
