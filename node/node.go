// Package node interprets a 4 KiB page buffer as a B-tree node. It is a
// purely typed view: no heap allocation beyond the accessor return values,
// no I/O. Bounds are enforced by ordinary slice indexing into the backing
// buffer, which panics on a genuinely malformed page — the same "fatal on
// corruption" posture the rest of the core takes.
package node

import (
	"encoding/binary"

	"github.com/leafdb/leafdb/constants"
)

// Type reads the common header's node_type field.
func Type(page []byte) constants.NodeType {
	return constants.NodeType(page[constants.NODE_TYPE_OFFSET])
}

// SetType writes the common header's node_type field.
func SetType(page []byte, t constants.NodeType) {
	page[constants.NODE_TYPE_OFFSET] = byte(t)
}

// IsRoot reads the common header's is_root field.
func IsRoot(page []byte) bool {
	return page[constants.IS_ROOT_OFFSET] != 0
}

// SetIsRoot writes the common header's is_root field.
func SetIsRoot(page []byte, isRoot bool) {
	var v byte
	if isRoot {
		v = 1
	}
	page[constants.IS_ROOT_OFFSET] = v
}

// ParentPage reads the common header's parent_page field. It is unused by
// the single-leaf-root tree this module implements; reading and writing
// it keeps the field's slot in the on-disk format live for a future
// internal-node implementation.
func ParentPage(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[constants.PARENT_POINTER_OFFSET : constants.PARENT_POINTER_OFFSET+constants.PARENT_POINTER_SIZE])
}

// SetParentPage writes the common header's parent_page field.
func SetParentPage(page []byte, parent uint32) {
	binary.LittleEndian.PutUint32(page[constants.PARENT_POINTER_OFFSET:constants.PARENT_POINTER_OFFSET+constants.PARENT_POINTER_SIZE], parent)
}
