package command

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/leafdb/leafdb/dberr"
	"github.com/leafdb/leafdb/table"
)

func openTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.DBOpen(filepath.Join(t.TempDir(), "db.leaf"), nil)
	if err != nil {
		t.Fatalf("DBOpen: %v", err)
	}
	t.Cleanup(func() { tb.DBClose() })
	return tb
}

func TestExecuteInsertReportsExecuted(t *testing.T) {
	tb := openTable(t)

	lines, err := Execute(Insert{ID: 1, Username: "alice", Email: "alice@example.com"}, tb)
	if err != nil {
		t.Fatalf("Execute(Insert): %v", err)
	}
	if len(lines) != 1 || lines[0] != "Executed." {
		t.Fatalf("lines = %v, want [Executed.]", lines)
	}
}

func TestExecuteSelectListsRowsThenExecuted(t *testing.T) {
	tb := openTable(t)

	if _, err := Execute(Insert{ID: 1, Username: "alice", Email: "alice@example.com"}, tb); err != nil {
		t.Fatalf("Execute(Insert): %v", err)
	}
	if _, err := Execute(Insert{ID: 2, Username: "bob", Email: "bob@example.com"}, tb); err != nil {
		t.Fatalf("Execute(Insert): %v", err)
	}

	lines, err := Execute(Select{}, tb)
	if err != nil {
		t.Fatalf("Execute(Select): %v", err)
	}

	want := []string{
		"ID: 1, Username: alice, Email: alice@example.com",
		"ID: 2, Username: bob, Email: bob@example.com",
		"Executed.",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestExecuteSelectOnEmptyTable(t *testing.T) {
	tb := openTable(t)

	lines, err := Execute(Select{}, tb)
	if err != nil {
		t.Fatalf("Execute(Select): %v", err)
	}
	if len(lines) != 1 || lines[0] != "Executed." {
		t.Fatalf("lines = %v, want [Executed.]", lines)
	}
}

func TestExecuteInsertDuplicateKeyPropagates(t *testing.T) {
	tb := openTable(t)

	ins := Insert{ID: 1, Username: "alice", Email: "alice@example.com"}
	if _, err := Execute(ins, tb); err != nil {
		t.Fatalf("first Execute(Insert): %v", err)
	}
	if _, err := Execute(ins, tb); !errors.Is(err, dberr.ErrDuplicateKey) {
		t.Fatalf("second Execute(Insert): err = %v, want dberr.ErrDuplicateKey", err)
	}
}
