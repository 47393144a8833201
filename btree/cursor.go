package btree

// Cursor names a logical position within a table: either an existing cell
// or the one-past-last slot of a leaf. Cursors borrow from the table's
// pager and must not outlive it.
type Cursor struct {
	Table      *Table
	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// TableStart returns a cursor positioned at cell 0 of the root.
func TableStart(t *Table) (*Cursor, error) {
	node, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		return nil, err
	}

	return &Cursor{
		Table:      t,
		PageNum:    t.RootPageNum,
		CellNum:    0,
		EndOfTable: LeafNumCells(node) == 0,
	}, nil
}

// Value returns the value slice at the cursor's current position.
func (c *Cursor) Value() ([]byte, error) {
	node, err := c.Table.Pager.GetPage(c.PageNum)
	if err != nil {
		return nil, err
	}
	return LeafValue(node, c.CellNum), nil
}

// Advance moves the cursor to the next cell, setting EndOfTable once it
// reaches one past the last cell.
func (c *Cursor) Advance() error {
	node, err := c.Table.Pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}

	c.CellNum++
	if c.CellNum >= LeafNumCells(node) {
		c.EndOfTable = true
	}

	return nil
}
