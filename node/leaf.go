package node

import (
	"encoding/binary"

	"github.com/leafdb/leafdb/constants"
)

// Leaf is a typed view over a page buffer known to hold a leaf node. It
// borrows the buffer; it never copies it.
type Leaf struct {
	page []byte
}

// AsLeaf views page as a leaf node. It does not check page's node_type —
// callers that need that guarantee should check node.Type first.
func AsLeaf(page []byte) Leaf {
	return Leaf{page: page}
}

// Initialize writes node_type = leaf and num_cells = 0. is_root and
// parent_page are left zero; SetIsRoot is called separately by whichever
// layer knows this page is (or isn't) the root.
func (l Leaf) Initialize() {
	SetType(l.page, constants.NodeLeaf)
	l.setNumCells(0)
}

// NumCells returns the number of cells currently stored in the leaf.
func (l Leaf) NumCells() uint32 {
	return binary.LittleEndian.Uint32(l.page[constants.LEAF_NODE_NUM_CELLS_OFFSET:])
}

func (l Leaf) setNumCells(n uint32) {
	binary.LittleEndian.PutUint32(l.page[constants.LEAF_NODE_NUM_CELLS_OFFSET:], n)
}

// cellOffset returns the byte offset of cell i within the page.
func cellOffset(i uint32) int {
	return constants.LEAF_NODE_HEADER_SIZE + int(i)*constants.LEAF_NODE_CELL_SIZE
}

// Cell returns the raw key||value bytes for cell i.
func (l Leaf) Cell(i uint32) []byte {
	off := cellOffset(i)
	return l.page[off : off+constants.LEAF_NODE_CELL_SIZE]
}

// Key returns the key stored in cell i.
func (l Leaf) Key(i uint32) uint32 {
	c := l.Cell(i)
	return binary.LittleEndian.Uint32(c[constants.LEAF_NODE_KEY_OFFSET:])
}

// SetKey overwrites the key stored in cell i.
func (l Leaf) SetKey(i uint32, key uint32) {
	c := l.Cell(i)
	binary.LittleEndian.PutUint32(c[constants.LEAF_NODE_KEY_OFFSET:], key)
}

// Value returns the ROW_SIZE-byte value span for cell i.
func (l Leaf) Value(i uint32) []byte {
	c := l.Cell(i)
	return c[constants.LEAF_NODE_VALUE_OFFSET : constants.LEAF_NODE_VALUE_OFFSET+constants.LEAF_NODE_VALUE_SIZE]
}

// InsertAt shifts cells [at, NumCells()) right by one cell and writes key
// into the freed slot at index at. The caller (table.LeafInsert) is
// responsible for serializing the row value into the returned Value
// slice and for having already checked NumCells() < LEAF_NODE_MAX_CELLS.
func (l Leaf) InsertAt(at uint32, key uint32) []byte {
	n := l.NumCells()
	for i := n; i > at; i-- {
		copy(l.Cell(i), l.Cell(i-1))
	}
	l.setNumCells(n + 1)
	l.SetKey(at, key)
	return l.Value(at)
}
