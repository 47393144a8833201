// Package btree implements the on-disk node layout and the single-leaf
// B-tree built on top of it: typed accessors over a page buffer, ordered
// leaf search and insertion, and a cursor that hides page/cell addressing
// from callers.
package btree

import (
	"encoding/binary"
	"fmt"

	"simpledb/pager"
	"simpledb/row"
)

// NodeType distinguishes a leaf page from an internal page.
type NodeType uint8

const (
	NodeLeaf NodeType = iota
	NodeInternal
)

// Common node header layout: node_type (1) + is_root (1) + parent_page_num (4).
const (
	nodeTypeSize   = 1
	nodeTypeOffset = 0

	isRootSize   = 1
	isRootOffset = nodeTypeOffset + nodeTypeSize

	parentPointerSize   = 4
	parentPointerOffset = isRootOffset + isRootSize

	commonNodeHeaderSize = nodeTypeSize + isRootSize + parentPointerSize

	// CommonHeaderSize is the width shared by every node, leaf or internal.
	CommonHeaderSize = commonNodeHeaderSize
)

// Leaf node header layout: common header + num_cells (4).
const (
	leafNumCellsSize   = 4
	leafNumCellsOffset = commonNodeHeaderSize

	LeafHeaderSize = commonNodeHeaderSize + leafNumCellsSize
)

// Leaf node body layout: each cell is key (4) + value (row.Size).
const (
	leafKeySize   = 4
	leafKeyOffset = 0

	leafValueSize   = row.Size
	leafValueOffset = leafKeyOffset + leafKeySize

	// LeafCellSize is the width of one (key, value) cell.
	LeafCellSize = leafKeySize + leafValueSize

	// LeafSpaceForCells is the body space available for cells in a page.
	LeafSpaceForCells = pager.PageSize - LeafHeaderSize

	// LeafMaxCells is the capacity of a single leaf page, derived from the
	// row width rather than hand-rolled as a magic number.
	LeafMaxCells = LeafSpaceForCells / LeafCellSize
)

// Internal node header and body layout. Defined as typed accessors so the
// extension point spec.md names ("the design anticipates internal nodes...
// as the next extension point") is visible in the layout, but nothing in
// this package constructs, searches, or mutates an internal node — see
// Find and LeafInsert in btree.go.
const (
	internalNumKeysSize   = 4
	internalNumKeysOffset = commonNodeHeaderSize

	internalRightChildSize   = 4
	internalRightChildOffset = internalNumKeysOffset + internalNumKeysSize

	InternalHeaderSize = commonNodeHeaderSize + internalNumKeysSize + internalRightChildSize

	internalKeySize   = 4
	internalChildSize = 4
	InternalCellSize  = internalChildSize + internalKeySize

	InternalMaxCells = (pager.PageSize - InternalHeaderSize) / InternalCellSize
)

// GetNodeType reads the node_type field from the common header.
func GetNodeType(node []byte) NodeType {
	return NodeType(node[nodeTypeOffset])
}

// SetNodeType writes the node_type field.
func SetNodeType(node []byte, t NodeType) {
	node[nodeTypeOffset] = uint8(t)
}

// IsNodeRoot reports whether the is_root flag is set.
func IsNodeRoot(node []byte) bool {
	return node[isRootOffset] != 0
}

// SetNodeRoot writes the is_root flag.
func SetNodeRoot(node []byte, isRoot bool) {
	if isRoot {
		node[isRootOffset] = 1
	} else {
		node[isRootOffset] = 0
	}
}

// NodeParent reads the parent_page_num field.
func NodeParent(node []byte) uint32 {
	return binary.LittleEndian.Uint32(node[parentPointerOffset:])
}

// SetNodeParent writes the parent_page_num field.
func SetNodeParent(node []byte, parent uint32) {
	binary.LittleEndian.PutUint32(node[parentPointerOffset:], parent)
}

// LeafNumCells reads num_cells from a leaf node's header.
func LeafNumCells(node []byte) uint32 {
	return binary.LittleEndian.Uint32(node[leafNumCellsOffset:])
}

// SetLeafNumCells writes num_cells.
func SetLeafNumCells(node []byte, numCells uint32) {
	binary.LittleEndian.PutUint32(node[leafNumCellsOffset:], numCells)
}

// LeafCell returns the cellNum-th cell's full (key, value) window.
func LeafCell(node []byte, cellNum uint32) []byte {
	offset := LeafHeaderSize + cellNum*LeafCellSize
	return node[offset : offset+LeafCellSize]
}

// LeafKey reads the key of the cellNum-th cell.
func LeafKey(node []byte, cellNum uint32) uint32 {
	cell := LeafCell(node, cellNum)
	return binary.LittleEndian.Uint32(cell[leafKeyOffset:])
}

// SetLeafKey writes the key of the cellNum-th cell.
func SetLeafKey(node []byte, cellNum uint32, key uint32) {
	cell := LeafCell(node, cellNum)
	binary.LittleEndian.PutUint32(cell[leafKeyOffset:], key)
}

// LeafValue returns the value slice of the cellNum-th cell.
func LeafValue(node []byte, cellNum uint32) []byte {
	cell := LeafCell(node, cellNum)
	return cell[leafValueOffset : leafValueOffset+leafValueSize]
}

// InitializeLeaf stamps node as a fresh, empty leaf.
func InitializeLeaf(node []byte) {
	SetNodeType(node, NodeLeaf)
	SetNodeRoot(node, false)
	SetLeafNumCells(node, 0)
}

// InternalNumKeys reads num_keys from an internal node's header.
func InternalNumKeys(node []byte) uint32 {
	return binary.LittleEndian.Uint32(node[internalNumKeysOffset:])
}

// SetInternalNumKeys writes num_keys.
func SetInternalNumKeys(node []byte, numKeys uint32) {
	binary.LittleEndian.PutUint32(node[internalNumKeysOffset:], numKeys)
}

// InternalRightChild reads the right_child page pointer.
func InternalRightChild(node []byte) uint32 {
	return binary.LittleEndian.Uint32(node[internalRightChildOffset:])
}

// SetInternalRightChild writes the right_child page pointer.
func SetInternalRightChild(node []byte, pageNum uint32) {
	binary.LittleEndian.PutUint32(node[internalRightChildOffset:], pageNum)
}

func internalCell(node []byte, cellNum uint32) []byte {
	offset := InternalHeaderSize + cellNum*InternalCellSize
	return node[offset : offset+InternalCellSize]
}

// InternalChild returns the childNum-th child page pointer, which is
// InternalRightChild when childNum equals num_keys.
func InternalChild(node []byte, childNum uint32) (uint32, error) {
	numKeys := InternalNumKeys(node)
	if childNum > numKeys {
		return 0, fmt.Errorf("btree: child_num %d out of range, num_keys %d", childNum, numKeys)
	}
	if childNum == numKeys {
		return InternalRightChild(node), nil
	}
	return binary.LittleEndian.Uint32(internalCell(node, childNum)), nil
}

// InternalKey reads the keyNum-th separator key.
func InternalKey(node []byte, keyNum uint32) uint32 {
	cell := internalCell(node, keyNum)
	return binary.LittleEndian.Uint32(cell[internalChildSize:])
}

// InitializeInternal stamps node as a fresh, empty internal node. Defined
// for layout completeness; no code path in this package calls it, since
// leaf splits and internal-node construction are out of scope.
func InitializeInternal(node []byte) {
	SetNodeType(node, NodeInternal)
	SetNodeRoot(node, false)
	SetInternalNumKeys(node, 0)
}
