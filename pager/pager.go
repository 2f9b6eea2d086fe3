// Package pager implements the paged-file abstraction: a demand-loaded,
// write-back cache mapping logical page numbers to in-memory 4 KiB
// buffers over a single backing file descriptor, flushed in bulk when the
// table is closed (table.DBClose). It knows nothing about rows or B-tree nodes — it hands out raw
// []byte pages.
package pager

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/leafdb/leafdb/constants"
	"github.com/leafdb/leafdb/dberr"
)

// Pager owns a file descriptor and a fixed-size array of page slots. A
// slot is nil when empty.
type Pager struct {
	fd       int
	fileSize int64
	numPages uint32
	pages    [constants.TABLE_MAX_PAGES][]byte
}

// Open opens path read/write, creating it with mode 0600 if it does not
// exist. It rejects a file whose size is not a whole multiple of
// PAGE_SIZE (unless the size is 0) as corrupt.
func Open(path string) (*Pager, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CREAT, 0o600)
	if err != nil {
		return nil, fmt.Errorf("pager: open %s: %w: %v", path, dberr.ErrIO, err)
	}

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("pager: stat %s: %w: %v", path, dberr.ErrIO, err)
	}

	fileSize := st.Size
	if fileSize%constants.PAGE_SIZE != 0 {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("pager: %s: %w", path, dberr.ErrCorruptFile)
	}

	return &Pager{
		fd:       fd,
		fileSize: fileSize,
		numPages: uint32(fileSize / constants.PAGE_SIZE),
	}, nil
}

// NumPages returns the number of logical pages currently known to the
// pager (including pages materialized in memory but never flushed).
func (p *Pager) NumPages() uint32 {
	return p.numPages
}

// GetPage returns the resident buffer for logical page n, demand-loading
// it from disk on a cache miss. The returned slice aliases the pager's
// internal buffer; callers must not retain it past Close.
func (p *Pager) GetPage(n uint32) ([]byte, error) {
	if n >= constants.TABLE_MAX_PAGES {
		return nil, fmt.Errorf("pager: page %d: %w", n, dberr.ErrPageOutOfBounds)
	}

	if p.pages[n] == nil {
		buf := make([]byte, constants.PAGE_SIZE)

		onDisk := uint32(p.fileSize / constants.PAGE_SIZE)
		if n < onDisk {
			if _, err := unix.Pread(p.fd, buf, int64(n)*constants.PAGE_SIZE); err != nil {
				return nil, fmt.Errorf("pager: read page %d: %w: %v", n, dberr.ErrIO, err)
			}
		}
		p.pages[n] = buf
	}

	if n >= p.numPages {
		p.numPages = n + 1
	}

	return p.pages[n], nil
}

// FlushPage writes the entire 4096-byte buffer for page n at its offset.
// It fails if the slot is empty (a programmer error: nothing ever
// resided at that page number).
func (p *Pager) FlushPage(n uint32) error {
	buf := p.pages[n]
	if buf == nil {
		return fmt.Errorf("pager: page %d: %w", n, dberr.ErrFlushUnallocated)
	}

	if _, err := unix.Pwrite(p.fd, buf, int64(n)*constants.PAGE_SIZE); err != nil {
		return fmt.Errorf("pager: write page %d: %w: %v", n, dberr.ErrIO, err)
	}
	return nil
}

// Resident reports whether page n currently has a buffer in the cache.
func (p *Pager) Resident(n uint32) bool {
	return n < constants.TABLE_MAX_PAGES && p.pages[n] != nil
}

// Release drops the in-memory buffer for page n without flushing it.
func (p *Pager) Release(n uint32) {
	if n < constants.TABLE_MAX_PAGES {
		p.pages[n] = nil
	}
}

// Close closes the underlying file descriptor. It does not flush; callers
// must flush every resident page first (see table.DBClose).
func (p *Pager) Close() error {
	if err := unix.Close(p.fd); err != nil {
		return fmt.Errorf("pager: close: %w: %v", dberr.ErrIO, err)
	}
	return nil
}
