// Package command defines the Command value the REPL parser produces and
// routes it to table operations. It is the "glue" layer from the design:
// it never touches a page buffer, cursor, or pager directly.
package command

import (
	"fmt"

	"github.com/leafdb/leafdb/dberr"
	"github.com/leafdb/leafdb/row"
	"github.com/leafdb/leafdb/table"
)

// Command is a parsed statement the core can execute. The lexer/parser
// that produces a Command from a line of REPL input is an external
// collaborator (cmd/leafdb); this package only consumes the result.
type Command interface {
	isCommand()
}

// Insert requests that a new row be added to the table.
type Insert struct {
	ID       uint32
	Username string
	Email    string
}

func (Insert) isCommand() {}

// Select requests that every row in the table be printed.
type Select struct{}

func (Select) isCommand() {}

// Execute routes cmd to the matching table operation and returns the
// lines the REPL should print. It returns an error for the input-error
// cases (dberr.ErrTableFull, dberr.ErrDuplicateKey) as well as any
// resource error surfaced from the pager; the caller (cmd/leafdb)
// decides which of those is fatal via dberr.IsFatal.
func Execute(cmd Command, t *table.Table) ([]string, error) {
	switch c := cmd.(type) {
	case Insert:
		return executeInsert(c, t)
	case Select:
		return executeSelect(t)
	default:
		return nil, fmt.Errorf("command: %w", dberr.ErrUnrecognizedStatement)
	}
}

func executeInsert(c Insert, t *table.Table) ([]string, error) {
	r := row.Row{ID: c.ID, Username: c.Username, Email: c.Email}
	if err := t.Insert(r); err != nil {
		return nil, err
	}
	return []string{"Executed."}, nil
}

func executeSelect(t *table.Table) ([]string, error) {
	var lines []string
	err := t.Scan(func(r row.Row) error {
		lines = append(lines, fmt.Sprintf("ID: %d, Username: %s, Email: %s", r.ID, r.Username, r.Email))
		return nil
	})
	if err != nil {
		return nil, err
	}
	lines = append(lines, "Executed.")
	return lines, nil
}
