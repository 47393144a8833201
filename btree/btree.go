package btree

import (
	"errors"
	"fmt"

	"simpledb/pager"
	"simpledb/row"
)

// ErrLeafFull is returned by LeafInsert when the target leaf has reached
// LeafMaxCells. Leaf splitting is not implemented; this is an explicit,
// named design stop rather than a silent no-op.
var ErrLeafFull = errors.New("btree: leaf node full")

// ErrInternalNode is returned by Find when the root is an internal node.
// Internal-node navigation is not implemented in this design; LeafInsert
// does not check the node type and relies on the cursor Find returned.
var ErrInternalNode = errors.New("btree: internal node search unimplemented")

// Table owns a pager and the root page number of its single B-tree.
type Table struct {
	Pager       *pager.Pager
	RootPageNum uint32
}

// OpenTable opens p as a table, initializing page 0 as an empty leaf root
// if the file is freshly created.
func OpenTable(p *pager.Pager) (*Table, error) {
	t := &Table{Pager: p, RootPageNum: 0}

	if p.NumPages() == 0 {
		root, err := p.GetPage(0)
		if err != nil {
			return nil, err
		}
		InitializeLeaf(root)
		SetNodeRoot(root, true)
	}

	return t, nil
}

// Find returns a cursor to the position where key is, or would be
// inserted, within the root leaf. It fails with ErrInternalNode if the
// root has grown into an internal node, which this design cannot search.
func Find(t *Table, key uint32) (*Cursor, error) {
	root, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		return nil, err
	}

	switch GetNodeType(root) {
	case NodeLeaf:
		return leafFind(t, t.RootPageNum, key)
	default:
		return nil, ErrInternalNode
	}
}

// leafFind performs a binary search over the cells of the leaf at pageNum,
// narrowing [minIndex, onePastMaxIndex) until it finds key or the smallest
// index whose key is greater than the target.
func leafFind(t *Table, pageNum uint32, key uint32) (*Cursor, error) {
	node, err := t.Pager.GetPage(pageNum)
	if err != nil {
		return nil, err
	}

	numCells := LeafNumCells(node)
	minIndex := uint32(0)
	onePastMaxIndex := numCells

	for minIndex != onePastMaxIndex {
		idx := (minIndex + onePastMaxIndex) / 2
		keyAtIndex := LeafKey(node, idx)

		if key == keyAtIndex {
			return &Cursor{Table: t, PageNum: pageNum, CellNum: idx}, nil
		}
		if key < keyAtIndex {
			onePastMaxIndex = idx
		} else {
			minIndex = idx + 1
		}
	}

	return &Cursor{Table: t, PageNum: pageNum, CellNum: minIndex}, nil
}

// LeafInsert performs ordered insertion of (key, r) at cursor's position,
// shifting any cells at or past CellNum one slot to the right. It returns
// ErrLeafFull rather than splitting when the leaf has no room left.
func LeafInsert(cursor *Cursor, key uint32, r row.Row) error {
	node, err := cursor.Table.Pager.GetPage(cursor.PageNum)
	if err != nil {
		return err
	}

	numCells := LeafNumCells(node)
	if numCells >= LeafMaxCells {
		return ErrLeafFull
	}

	if cursor.CellNum < numCells {
		for i := numCells; i > cursor.CellNum; i-- {
			copy(LeafCell(node, i), LeafCell(node, i-1))
		}
	}

	SetLeafNumCells(node, numCells+1)
	SetLeafKey(node, cursor.CellNum, key)
	if err := row.Serialize(r, LeafValue(node, cursor.CellNum)); err != nil {
		return fmt.Errorf("btree: serializing row into cell %d: %w", cursor.CellNum, err)
	}

	return nil
}
