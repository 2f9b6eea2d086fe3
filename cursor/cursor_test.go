package cursor

import (
	"path/filepath"
	"testing"

	"github.com/leafdb/leafdb/node"
	"github.com/leafdb/leafdb/pager"
)

func openEmptyLeaf(t *testing.T) *pager.Pager {
	t.Helper()
	p, err := pager.Open(filepath.Join(t.TempDir(), "db.leaf"))
	if err != nil {
		t.Fatalf("pager.Open: %v", err)
	}
	page, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage(0): %v", err)
	}
	node.AsLeaf(page).Initialize()
	return p
}

func TestStartOnEmptyLeafIsEndOfTable(t *testing.T) {
	p := openEmptyLeaf(t)
	defer p.Close()

	c, err := Start(p, 0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !c.EndOfTable {
		t.Errorf("EndOfTable = false on an empty leaf, want true")
	}
}

func TestEndPositionsAfterLastCell(t *testing.T) {
	p := openEmptyLeaf(t)
	defer p.Close()

	page, _ := p.GetPage(0)
	leaf := node.AsLeaf(page)
	leaf.InsertAt(0, 1)
	leaf.InsertAt(1, 2)

	c, err := End(p, 0)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if c.CellNum != 2 {
		t.Errorf("CellNum = %d, want 2", c.CellNum)
	}
}

func TestAdvanceReachesEndOfTable(t *testing.T) {
	p := openEmptyLeaf(t)
	defer p.Close()

	page, _ := p.GetPage(0)
	leaf := node.AsLeaf(page)
	leaf.InsertAt(0, 1)

	c, err := Start(p, 0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if c.EndOfTable {
		t.Fatalf("EndOfTable = true immediately, want false with one cell present")
	}
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !c.EndOfTable {
		t.Errorf("EndOfTable = false after advancing past the only cell")
	}
}
