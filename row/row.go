// Package row implements the fixed-row codec: deterministic
// structuring/destructuring of a Row into a byte span at defined field
// offsets. Nothing here allocates beyond the Row value itself, and there
// are no length checks — those live in cmd/leafdb's line parser, which is
// closer to user input.
package row

import (
	"bytes"
	"encoding/binary"

	"github.com/leafdb/leafdb/constants"
)

// Size is the on-wire/on-disk size of one serialized row.
const Size = constants.ROW_SIZE

// Row is the single record type the engine stores. ID also serves as the
// B-tree key.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Encode writes r into dst[:Size]. dst must have length >= Size. Username
// and Email are written followed by a null terminator; the codec does not
// check their length against COLUMN_USERNAME_SIZE/COLUMN_EMAIL_SIZE — the
// REPL parser in cmd/leafdb is responsible for rejecting oversized strings
// before a row reaches Encode.
func Encode(r Row, dst []byte) {
	_ = dst[Size-1] // bounds check hint, mirrors the corpus's slice-length assumptions

	binary.LittleEndian.PutUint32(dst[constants.ID_OFFSET:constants.ID_OFFSET+constants.ID_SIZE], r.ID)

	writeField(dst[constants.USERNAME_OFFSET:constants.USERNAME_OFFSET+constants.USERNAME_SIZE], r.Username)
	writeField(dst[constants.EMAIL_OFFSET:constants.EMAIL_OFFSET+constants.EMAIL_SIZE], r.Email)
}

// Decode is the inverse of Encode: it reads a Row out of src[:Size].
func Decode(src []byte) Row {
	_ = src[Size-1]

	return Row{
		ID:       binary.LittleEndian.Uint32(src[constants.ID_OFFSET : constants.ID_OFFSET+constants.ID_SIZE]),
		Username: readField(src[constants.USERNAME_OFFSET : constants.USERNAME_OFFSET+constants.USERNAME_SIZE]),
		Email:    readField(src[constants.EMAIL_OFFSET : constants.EMAIL_OFFSET+constants.EMAIL_SIZE]),
	}
}

// writeField copies s into field followed by a null terminator. Trailing
// bytes beyond the terminator are left untouched.
func writeField(field []byte, s string) {
	n := copy(field, s)
	if n < len(field) {
		field[n] = 0
	}
}

// readField reads a null-terminated string out of field, stopping at the
// first 0x00 byte (or the end of field if there is none).
func readField(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		return string(field[:i])
	}
	return string(field)
}
