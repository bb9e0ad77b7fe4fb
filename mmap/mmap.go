// Package mmap provides cross-platform memory mapping for page buffers.
//
// B+Tree pages managed by pageio may live off the Go heap; this package
// supplies the two mappings that matter for that: anonymous mappings used
// as in-memory page arenas, and file-backed mappings over a persisted
// page file. Carving the mapping into fixed-size pages is the caller's
// job (see Map.Page).
package mmap

// Map represents a memory-mapped region.
// This type wraps platform-specific mmap implementations.
type Map struct {
	data     []byte // Mapped memory region
	fd       int    // File descriptor (-1 for anonymous mappings)
	size     int64  // Mapped size
	writable bool   // True if mapped with write permission
	anon     bool   // True for anonymous (non file-backed) mappings
	// Windows-specific handles (only used on Windows, zero on Unix)
	handle  uintptr // File handle (Windows only)
	mapping uintptr // Mapping handle (Windows only)
}

// Data returns the mapped byte slice.
func (m *Map) Data() []byte {
	return m.data
}

// Size returns the mapped size.
func (m *Map) Size() int64 {
	return m.size
}

// Writable returns true if the mapping is writable.
func (m *Map) Writable() bool {
	return m.writable
}

// Anonymous returns true for anonymous (non file-backed) mappings.
func (m *Map) Anonymous() bool {
	return m.anon
}

// Page returns the pageSize-byte buffer for page idx of the mapping.
func (m *Map) Page(idx, pageSize int) ([]byte, error) {
	off := int64(idx) * int64(pageSize)
	if idx < 0 || pageSize <= 0 || off+int64(pageSize) > m.size {
		return nil, ErrInvalidRange
	}
	return m.data[off : off+int64(pageSize) : off+int64(pageSize)], nil
}

// Error represents an mmap error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "mmap: " + e.Op + ": " + e.Err.Error()
	}
	return "mmap: " + e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrInvalidSize  = &Error{Op: "invalid size"}
	ErrInvalidRange = &Error{Op: "invalid range"}
	ErrNotMapped    = &Error{Op: "not mapped"}
	ErrEmptyFile    = &Error{Op: "empty file"}
)
