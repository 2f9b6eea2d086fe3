// Package table implements the table abstraction: it owns a root page
// number and a pager, and produces cursors that traverse and mutate leaf
// cells. This is the layer application code (or the REPL glue in
// cmd/leafdb) is meant to call; it never manipulates a page buffer
// directly.
package table

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/leafdb/leafdb/constants"
	"github.com/leafdb/leafdb/cursor"
	"github.com/leafdb/leafdb/dberr"
	"github.com/leafdb/leafdb/dblog"
	"github.com/leafdb/leafdb/node"
	"github.com/leafdb/leafdb/pager"
	"github.com/leafdb/leafdb/row"
)

// Table owns a Pager and a root page number. The current implementation
// always uses page 0 as the root, and that root is always a leaf:
// internal nodes and node splits are not implemented.
type Table struct {
	RootPageNum uint32
	Pager       *pager.Pager

	log     *dblog.Logger
	session uuid.UUID
}

// DBOpen opens the pager at path and, for a brand new file, initializes
// page 0 as the (leaf) root. log receives structured db.open/db.close/
// page.flush events tagged with a session UUID so a close can be matched
// back to the open that started it.
func DBOpen(path string, log *dblog.Logger) (*Table, error) {
	if log == nil {
		log = dblog.Discard()
	}

	p, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	t := &Table{
		RootPageNum: 0,
		Pager:       p,
		log:         log,
		session:     uuid.New(),
	}

	if p.NumPages() == 0 {
		root, err := p.GetPage(0)
		if err != nil {
			return nil, err
		}
		node.AsLeaf(root).Initialize()
		node.SetIsRoot(root, true)
	}

	log.Info("db.open", "path", path, "session", t.session, "pages", p.NumPages())
	return t, nil
}

// DBClose flushes every resident page and closes the pager. Every
// mutation performed since the last successful DBClose is durable on
// disk once DBClose returns nil.
func (t *Table) DBClose() error {
	for i := uint32(0); i < t.Pager.NumPages(); i++ {
		if !t.Pager.Resident(i) {
			continue
		}
		if err := t.Pager.FlushPage(i); err != nil {
			return err
		}
		t.log.Debug("page.flush", "page", i, "session", t.session)
		t.Pager.Release(i)
	}

	if err := t.Pager.Close(); err != nil {
		return err
	}
	t.log.Info("db.close", "session", t.session, "pages", t.Pager.NumPages())
	return nil
}

// Insert adds r to the root leaf. It rejects a row whose ID already
// exists (a linear scan, since cells are kept in insertion order rather
// than sorted — see DESIGN.md's resolution of the open question about
// leaf ordering) and a row that would overflow the leaf's capacity.
func (t *Table) Insert(r row.Row) error {
	page, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		return err
	}
	leaf := node.AsLeaf(page)

	for i := uint32(0); i < leaf.NumCells(); i++ {
		if leaf.Key(i) == r.ID {
			return dberr.ErrDuplicateKey
		}
	}

	c, err := cursor.End(t.Pager, t.RootPageNum)
	if err != nil {
		return err
	}
	return LeafInsert(c, r)
}

// LeafInsert performs a cursor-positioned insert: it shifts existing
// cells right from c's position and writes the new cell there. It fails
// with dberr.ErrTableFull if the leaf is already at LEAF_NODE_MAX_CELLS —
// the leaf-only core does not split.
func LeafInsert(c *cursor.Cursor, r row.Row) error {
	page, err := c.Pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}
	leaf := node.AsLeaf(page)

	if leaf.NumCells() >= constants.LEAF_NODE_MAX_CELLS {
		return dberr.ErrTableFull
	}

	dest := leaf.InsertAt(c.CellNum, r.ID)
	row.Encode(r, dest)
	return nil
}

// Scan walks every row in the table in insertion order, calling fn for
// each one. It stops and returns fn's error if fn returns non-nil.
func (t *Table) Scan(fn func(row.Row) error) error {
	c, err := cursor.Start(t.Pager, t.RootPageNum)
	if err != nil {
		return err
	}

	for !c.EndOfTable {
		v, err := c.Value()
		if err != nil {
			return err
		}
		if err := fn(row.Decode(v)); err != nil {
			return fmt.Errorf("table: scan: %w", err)
		}
		if err := c.Advance(); err != nil {
			return err
		}
	}
	return nil
}
