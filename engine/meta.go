package engine

import (
	"errors"
	"fmt"
	"io"

	"simpledb/btree"
	"simpledb/row"
)

// ErrUnrecognizedCommand is returned for any dotted input this table does
// not recognize. ".exit" is deliberately not handled here: it is
// process-level exit plumbing (spec.md §1 names the REPL's exit handling as
// out of the core's scope), and is handled directly by cmd/simpledb so it
// can call Close and os.Exit without the engine depending on either.
var ErrUnrecognizedCommand = errors.New("unrecognized command")

// MetaCommand dispatches a leading-dot command, writing any diagnostic
// output to w.
func (t *Table) MetaCommand(input string, w io.Writer) error {
	switch input {
	case ".btree":
		return t.printBTree(w)
	case ".constants":
		t.printConstants(w)
		return nil
	default:
		return ErrUnrecognizedCommand
	}
}

// printBTree prints the root leaf's cell count and the key at each cell.
// TODO: once leaf splits land, descend into internal nodes the way the
// teacher's printTree does; today the root is always a leaf.
func (t *Table) printBTree(w io.Writer) error {
	node, err := t.bt.Pager.GetPage(t.bt.RootPageNum)
	if err != nil {
		return fatal(err)
	}

	numCells := btree.LeafNumCells(node)
	fmt.Fprintf(w, "leaf (size %d)\n", numCells)
	for i := uint32(0); i < numCells; i++ {
		fmt.Fprintf(w, "  - %d\n", btree.LeafKey(node, i))
	}

	return nil
}

func (t *Table) printConstants(w io.Writer) {
	fmt.Fprintf(w, "ROW_SIZE: %d\n", row.Size)
	fmt.Fprintf(w, "COMMON_NODE_HEADER_SIZE: %d\n", btree.CommonHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_HEADER_SIZE: %d\n", btree.LeafHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_CELL_SIZE: %d\n", btree.LeafCellSize)
	fmt.Fprintf(w, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", btree.LeafSpaceForCells)
	fmt.Fprintf(w, "LEAF_NODE_MAX_CELLS: %d\n", btree.LeafMaxCells)
}
