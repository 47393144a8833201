// Package engine translates the shell's statements and meta-commands into
// B-tree operations, and classifies every failure into the three classes
// spec.md describes: user-visible recoverable errors, fatal orderly-exit
// errors, and fatal unimplemented-path errors.
package engine

import (
	"fmt"

	"simpledb/btree"
	"simpledb/pager"
)

// FatalError wraps a failure that spec.md classifies as fatal: the process
// must print a diagnostic and exit non-zero, with no rollback. Keeping this
// as a distinguished type (rather than calling os.Exit inside the engine)
// lets cmd/simpledb own process-exit plumbing while the engine stays
// testable in-process.
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string { return f.Err.Error() }
func (f *FatalError) Unwrap() error { return f.Err }

func fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// Table is an open database session: a B-tree over a pager over a file.
type Table struct {
	bt *btree.Table
}

// Open opens path as a database file, initializing a fresh file's root
// page as an empty leaf. Any I/O or structural failure (corrupt file
// length, unable to open) is fatal per spec.md §4.7 class 2.
func Open(path string) (*Table, error) {
	p, err := pager.Open(path)
	if err != nil {
		return nil, fatal(err)
	}

	bt, err := btree.OpenTable(p)
	if err != nil {
		return nil, fatal(err)
	}

	return &Table{bt: bt}, nil
}

// Close flushes every dirty page and closes the underlying file. A close
// failure is fatal per spec.md §4.7 class 2.
func (t *Table) Close() error {
	if err := t.bt.Pager.Close(); err != nil {
		return fatal(fmt.Errorf("closing database: %w", err))
	}
	return nil
}
