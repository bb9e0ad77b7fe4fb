// Package pageio implements the binary page layout for inner (non-leaf)
// nodes of a B+Tree built over fixed-size memory pages.
//
// A page is a flat byte buffer of a fixed size (4096, 8192, 16384, ...)
// that may live on the Go heap, in an off-heap mapping (see the mmap
// subpackage), or in a persisted file. pageio owns only the byte layout
// of such a buffer: how ordered items and child page references are
// packed, and the primitive mutations (insert, range copy, new-root
// construction) that a tree-balancing algorithm needs. Search, split and
// merge policy, page allocation, and locking all live with the caller.
//
// Inner-page format:
//
//	|header|w|A|x|B|y|C|z|
//
// where capital letters are fixed-size items and lowercase letters are
// 8-byte child page ids. An inner page with N items carries N+1 child
// ids: the right child of item i and the left child of item i+1 are the
// same bytes. Every mutation in this package preserves that identity.
//
// An InnerIO value is immutable after construction and describes one
// (page type, format version, item size) combination. A single instance
// is shared across all pages of that kind and is safe for concurrent use
// on distinct page buffers. Concurrent access to one buffer must be
// serialized by the caller; pageio takes no locks.
//
// Basic usage:
//
//	io := pageio.NewInnerIO(pageio.TypeBTreeInner, 1, false, pageio.Uint64Codec{})
//
//	buf := make([]byte, 4096)
//	io.InitNewPage(buf, rootID, len(buf))
//
//	// Insert a separator key with the right child produced by a split
//	// one level below.
//	err := io.Insert(buf, idx, key, nil, rightChildID)
package pageio
