package pageio

// Page size constraints
const (
	// MinPageSize is the minimum allowed page size (256 bytes)
	MinPageSize = 256

	// MaxPageSize is the maximum allowed page size (64KB)
	MaxPageSize = 65536

	// DefaultPageSize is the default page size (4KB)
	DefaultPageSize = 4096
)

// Common page header layout.
//
// Memory layout (little-endian):
//
//	Offset  Size  Field
//	0       2     page type tag
//	2       2     format version
//	4       2     flags (bit 0: leaf, bit 1: full row retrievable)
//	6       2     item count
//	8       8     page id
//	16      ...   slot data
const (
	typeOff    = 0
	versionOff = 2
	flagsOff   = 4
	countOff   = 6
	pageIDOff  = 8

	// ItemsOff is the fixed end of the common page header and the start
	// of slot data.
	ItemsOff = 16
)

// Header flag bits
const (
	flagLeaf      uint16 = 0x01
	flagCanGetRow uint16 = 0x02
)

// PageIDSize is the size of an on-page child reference (8 bytes).
const PageIDSize = 8

// Well-known page type tags. Tags >= TypeUser are free for callers that
// register their own layouts.
const (
	// TypeBTreeInner tags inner (non-leaf) B+Tree pages.
	TypeBTreeInner uint16 = 1

	// TypeBTreeLeaf tags leaf B+Tree pages. The leaf byte format is owned
	// by the caller; the tag is reserved here so registries can route it.
	TypeBTreeLeaf uint16 = 2

	// TypeUser is the first tag available for caller-defined layouts.
	TypeUser uint16 = 0x0100
)

// PageID identifies a page one level down in the tree. The zero value is
// never a valid child reference.
type PageID uint64
