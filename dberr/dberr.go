// Package dberr classifies the errors the storage core can return: input
// errors the REPL should print and recover from, and resource/programmer
// errors that are fatal to the process. Nothing in this package logs or
// exits; table and cmd/leafdb decide what to do with a classified error.
package dberr

import "errors"

// Input errors: recoverable, reported to the caller, the REPL keeps going.
var (
	ErrSyntax                = errors.New("syntax error")
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	ErrStringTooLong         = errors.New("string too long")
	ErrNonPositiveID         = errors.New("id must be positive")
	ErrTableFull             = errors.New("table full")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrUnrecognizedCommand   = errors.New("unrecognized command")
)

// Resource/IO errors: fatal, terminate the process after logging.
var (
	ErrCorruptFile     = errors.New("db file is not a whole number of pages")
	ErrPageOutOfBounds = errors.New("page number out of bounds")
	ErrIO              = errors.New("i/o error")
)

// Programmer errors: fatal, indicate a bug rather than bad input.
var (
	ErrFlushUnallocated = errors.New("tried to flush an unallocated page")
)

// IsFatal reports whether err belongs to the resource/IO or programmer
// error classes, i.e. whether the caller should terminate the process
// rather than print a message and continue the REPL loop.
func IsFatal(err error) bool {
	switch {
	case errors.Is(err, ErrCorruptFile),
		errors.Is(err, ErrPageOutOfBounds),
		errors.Is(err, ErrIO),
		errors.Is(err, ErrFlushUnallocated):
		return true
	default:
		return false
	}
}
