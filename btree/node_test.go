package btree

import "testing"

func TestLeafMaxCellsDerivation(t *testing.T) {
	// Ground-truth values pinned by spec.md: 4096-byte page, 10-byte leaf
	// header, 295-byte cell.
	if LeafHeaderSize != 10 {
		t.Errorf("LeafHeaderSize = %d, want 10", LeafHeaderSize)
	}
	if LeafCellSize != 295 {
		t.Errorf("LeafCellSize = %d, want 295", LeafCellSize)
	}
	if LeafSpaceForCells != 4086 {
		t.Errorf("LeafSpaceForCells = %d, want 4086", LeafSpaceForCells)
	}
	if LeafMaxCells != 13 {
		t.Errorf("LeafMaxCells = %d, want 13", LeafMaxCells)
	}
}

func TestLeafNodeAccessors(t *testing.T) {
	node := make([]byte, 4096)
	InitializeLeaf(node)

	if GetNodeType(node) != NodeLeaf {
		t.Errorf("GetNodeType = %v, want NodeLeaf", GetNodeType(node))
	}
	if IsNodeRoot(node) {
		t.Error("freshly initialized leaf should not be root")
	}
	if LeafNumCells(node) != 0 {
		t.Errorf("LeafNumCells = %d, want 0", LeafNumCells(node))
	}

	SetNodeRoot(node, true)
	if !IsNodeRoot(node) {
		t.Error("expected IsNodeRoot true after SetNodeRoot(true)")
	}

	SetNodeParent(node, 7)
	if NodeParent(node) != 7 {
		t.Errorf("NodeParent = %d, want 7", NodeParent(node))
	}

	SetLeafNumCells(node, 3)
	if LeafNumCells(node) != 3 {
		t.Errorf("LeafNumCells = %d, want 3", LeafNumCells(node))
	}

	SetLeafKey(node, 0, 42)
	if LeafKey(node, 0) != 42 {
		t.Errorf("LeafKey(0) = %d, want 42", LeafKey(node, 0))
	}

	value := LeafValue(node, 0)
	if len(value) != leafValueSize {
		t.Errorf("len(LeafValue(0)) = %d, want %d", len(value), leafValueSize)
	}
}

func TestLeafCellsDoNotOverlap(t *testing.T) {
	node := make([]byte, 4096)
	InitializeLeaf(node)

	for i := uint32(0); i < 3; i++ {
		SetLeafKey(node, i, i+1)
		copy(LeafValue(node, i), []byte{byte(i)})
	}

	for i := uint32(0); i < 3; i++ {
		if LeafKey(node, i) != i+1 {
			t.Errorf("LeafKey(%d) = %d, want %d", i, LeafKey(node, i), i+1)
		}
		if LeafValue(node, i)[0] != byte(i) {
			t.Errorf("LeafValue(%d)[0] = %d, want %d", i, LeafValue(node, i)[0], i)
		}
	}
}

func TestInternalNodeAccessors(t *testing.T) {
	node := make([]byte, 4096)
	InitializeInternal(node)

	if GetNodeType(node) != NodeInternal {
		t.Errorf("GetNodeType = %v, want NodeInternal", GetNodeType(node))
	}

	SetInternalNumKeys(node, 0)
	SetInternalRightChild(node, 9)
	if InternalRightChild(node) != 9 {
		t.Errorf("InternalRightChild = %d, want 9", InternalRightChild(node))
	}

	child, err := InternalChild(node, 0)
	if err != nil {
		t.Fatalf("InternalChild(0) with num_keys=0: %v", err)
	}
	if child != 9 {
		t.Errorf("InternalChild(0) = %d, want 9 (the right child)", child)
	}

	if _, err := InternalChild(node, 1); err == nil {
		t.Error("expected error for child_num beyond num_keys")
	}
}
