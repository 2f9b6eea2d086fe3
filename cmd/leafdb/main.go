// Command leafdb is the REPL front end for the storage core. Everything
// in this file is external to the core itself: prompt printing, EOF
// handling, line lexing into a command.Command, and the diagnostic
// meta-commands. It never reads or writes a page buffer itself.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/leafdb/leafdb/command"
	"github.com/leafdb/leafdb/config"
	"github.com/leafdb/leafdb/constants"
	"github.com/leafdb/leafdb/dberr"
	"github.com/leafdb/leafdb/dblog"
	"github.com/leafdb/leafdb/node"
	"github.com/leafdb/leafdb/table"
)

const prompt = "db > "

var insertPattern = regexp.MustCompile(`^insert (-?\d+) (\S+) (\S+)$`)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Parse("leafdb", args)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	log := dblog.New(errOut, cfg.LogLevel, cfg.LogFormat)

	t, err := table.DBOpen(cfg.Path, log)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	closed := false
	closeDB := func() error {
		if closed {
			return nil
		}
		closed = true
		if err := t.DBClose(); err != nil {
			fmt.Fprintln(errOut, err)
			return err
		}
		return nil
	}
	defer closeDB()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			if err := closeDB(); err != nil {
				return 1
			}
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			exit, err := doMetaCommand(line, t, out)
			if err != nil {
				fmt.Fprintln(out, "Unrecognized command:", line)
				continue
			}
			if exit {
				if err := closeDB(); err != nil {
					return 1
				}
				return 0
			}
			continue
		}

		cmd, err := parseLine(line)
		if err != nil {
			printPrepareError(out, err, line)
			continue
		}

		lines, err := command.Execute(cmd, t)
		if err != nil {
			if dberr.IsFatal(err) {
				fmt.Fprintln(errOut, err)
				closeDB()
				return 1
			}
			fmt.Fprintln(out, "Error:", executeMessage(err))
			continue
		}
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
	}
}

// parseLine is the REPL's lexer/parser: it turns one line of input into
// a command.Command, never touching table state itself.
func parseLine(line string) (command.Command, error) {
	if line == "select" {
		return command.Select{}, nil
	}

	if strings.HasPrefix(line, "insert") {
		m := insertPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, dberr.ErrSyntax
		}

		id, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, dberr.ErrSyntax
		}
		if id <= 0 {
			return nil, dberr.ErrNonPositiveID
		}

		username, email := m[2], m[3]
		if len(username) > constants.COLUMN_USERNAME_SIZE || len(email) > constants.COLUMN_EMAIL_SIZE {
			return nil, dberr.ErrStringTooLong
		}

		return command.Insert{ID: uint32(id), Username: username, Email: email}, nil
	}

	return nil, dberr.ErrUnrecognizedStatement
}

func printPrepareError(out io.Writer, err error, line string) {
	switch {
	case err == dberr.ErrUnrecognizedStatement:
		fmt.Fprintln(out, "Unrecognized keyword at start of:", line)
	case err == dberr.ErrStringTooLong:
		fmt.Fprintln(out, "String too long. Could not insert.")
	case err == dberr.ErrNonPositiveID:
		fmt.Fprintln(out, "Negative ID. Could not insert.")
	default:
		fmt.Fprintln(out, "Syntax error. Could not parse statement.")
	}
}

func executeMessage(err error) string {
	switch {
	case err == dberr.ErrTableFull:
		return "Table full."
	case err == dberr.ErrDuplicateKey:
		return "Duplicate key."
	default:
		return err.Error()
	}
}

// doMetaCommand handles the diagnostic shims over core inspection:
// .exit, .btree, .constants. It returns exit=true only for .exit.
func doMetaCommand(line string, t *table.Table, out io.Writer) (exit bool, err error) {
	switch line {
	case ".exit":
		return true, nil
	case ".constants":
		fmt.Fprintln(out, "Constants:")
		printConstants(out)
		return false, nil
	case ".btree":
		fmt.Fprintln(out, "Tree:")
		printLeaf(out, t)
		return false, nil
	default:
		return false, dberr.ErrUnrecognizedCommand
	}
}

func printConstants(out io.Writer) {
	fmt.Fprintf(out, "ROW_SIZE: %d\n", constants.ROW_SIZE)
	fmt.Fprintf(out, "COMMON_NODE_HEADER_SIZE: %d\n", constants.COMMON_NODE_HEADER_SIZE)
	fmt.Fprintf(out, "LEAF_NODE_HEADER_SIZE: %d\n", constants.LEAF_NODE_HEADER_SIZE)
	fmt.Fprintf(out, "LEAF_NODE_CELL_SIZE: %d\n", constants.LEAF_NODE_CELL_SIZE)
	fmt.Fprintf(out, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", constants.LEAF_NODE_SPACE_FOR_CELLS)
	fmt.Fprintf(out, "LEAF_NODE_MAX_CELLS: %d\n", constants.LEAF_NODE_MAX_CELLS)
}

// printLeaf dumps the root leaf's keys in cell order. Only a leaf root is
// representable today; an internal root would need the split support
// this project does not implement.
func printLeaf(out io.Writer, t *table.Table) {
	page, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	leaf := node.AsLeaf(page)
	n := leaf.NumCells()
	fmt.Fprintf(out, "- leaf (size %d)\n", n)
	for i := uint32(0); i < n; i++ {
		fmt.Fprintf(out, "  - %d\n", leaf.Key(i))
	}
}
