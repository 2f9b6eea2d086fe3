// Package cursor implements the cursor abstraction: a logical position
// (page, cell index, end-flag) used to read, advance, and write through
// the tree, isolating higher layers from node geometry. A Cursor borrows
// a *pager.Pager; it does not own it and must not outlive it.
package cursor

import (
	"github.com/leafdb/leafdb/node"
	"github.com/leafdb/leafdb/pager"
)

// Cursor is a transient position into a single-leaf-root table.
type Cursor struct {
	Pager      *pager.Pager
	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// Start returns a cursor positioned at the first cell of the leaf rooted
// at rootPageNum. EndOfTable is true iff the leaf has no cells.
func Start(p *pager.Pager, rootPageNum uint32) (*Cursor, error) {
	page, err := p.GetPage(rootPageNum)
	if err != nil {
		return nil, err
	}
	leaf := node.AsLeaf(page)

	return &Cursor{
		Pager:      p,
		PageNum:    rootPageNum,
		CellNum:    0,
		EndOfTable: leaf.NumCells() == 0,
	}, nil
}

// End returns a cursor positioned one-past the last cell of the leaf
// rooted at rootPageNum — the position new rows are appended at.
func End(p *pager.Pager, rootPageNum uint32) (*Cursor, error) {
	page, err := p.GetPage(rootPageNum)
	if err != nil {
		return nil, err
	}
	leaf := node.AsLeaf(page)

	return &Cursor{
		Pager:      p,
		PageNum:    rootPageNum,
		CellNum:    leaf.NumCells(),
		EndOfTable: true,
	}, nil
}

// Value returns the value bytes of the cursor's current cell.
func (c *Cursor) Value() ([]byte, error) {
	page, err := c.Pager.GetPage(c.PageNum)
	if err != nil {
		return nil, err
	}
	return node.AsLeaf(page).Value(c.CellNum), nil
}

// Advance moves the cursor to the next cell, setting EndOfTable once the
// cell index reaches the leaf's cell count.
func (c *Cursor) Advance() error {
	page, err := c.Pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}

	c.CellNum++
	if c.CellNum >= node.AsLeaf(page).NumCells() {
		c.EndOfTable = true
	}
	return nil
}
