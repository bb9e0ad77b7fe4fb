package pageio

// ItemCodec converts between rows and the fixed-size item bytes stored in
// a page slot. The item's internal structure is opaque to the page layout;
// only Size is load-bearing for offset arithmetic.
type ItemCodec[L any] interface {
	// Size returns the fixed encoded size of an item in bytes.
	Size() int

	// Encode writes row into dst, which is exactly Size() bytes.
	Encode(dst []byte, row L) error

	// Decode reads a row back from src, which is exactly Size() bytes.
	Decode(src []byte) (L, error)
}

// Layout is the slot-geometry half of a page I/O. Each concrete layout
// supplies its own; the generic item-shift algorithms below are written
// against this interface.
type Layout interface {
	// MaxCount returns the maximum number of items a page of the given
	// size can hold under this layout.
	MaxCount(pageSize int) int

	// Offset returns the byte offset of the item portion of slot idx.
	Offset(idx int) int

	// CopyItems moves cnt contiguous slots from src to dst, where src and
	// dst may be the same buffer with overlapping ranges. cpLeft controls
	// whether the leading left child reference travels with the range;
	// layouts without child references ignore it.
	CopyItems(src, dst []byte, srcIdx, dstIdx, cnt int, cpLeft bool)
}

// PageIO is the layout-independent surface a tree algorithm or registry
// needs to route a page buffer to its I/O instance. Both inner and leaf
// layouts satisfy it.
type PageIO interface {
	Layout

	Type() uint16
	Version() uint16
	Leaf() bool
	CanGetFullRow() bool
	ItemSize() int
}

// IO carries the header-level state shared by every page layout of one
// (type, version, item size) combination. It is immutable after
// construction; all per-page state lives in the page buffer itself.
type IO[L any] struct {
	typ       uint16
	ver       uint16
	leaf      bool
	canGetRow bool
	itemSize  int
	codec     ItemCodec[L]
}

func newIO[L any](typ, ver uint16, leaf, canGetRow bool, codec ItemCodec[L]) IO[L] {
	return IO[L]{
		typ:       typ,
		ver:       ver,
		leaf:      leaf,
		canGetRow: canGetRow,
		itemSize:  codec.Size(),
		codec:     codec,
	}
}

// Type returns the page type tag this I/O stamps and serves.
func (io *IO[L]) Type() uint16 { return io.typ }

// Version returns the page format version this I/O stamps and serves.
func (io *IO[L]) Version() uint16 { return io.ver }

// Leaf returns true for leaf layouts.
func (io *IO[L]) Leaf() bool { return io.leaf }

// CanGetFullRow returns true if pages of this layout store enough of a
// row to reconstruct it without descending further.
func (io *IO[L]) CanGetFullRow() bool { return io.canGetRow }

// ItemSize returns the fixed per-slot item size in bytes.
func (io *IO[L]) ItemSize() int { return io.itemSize }

// Count returns the live item count from the page header.
func (io *IO[L]) Count(buf []byte) int {
	return int(getUint16LE(buf[countOff:]))
}

// SetCount updates the live item count in the page header. The caller
// must keep it consistent with the actually occupied slots.
func (io *IO[L]) SetCount(buf []byte, cnt int) {
	putUint16LE(buf[countOff:], uint16(cnt))
}

// InitNewPage zeroes the buffer and stamps the common header: type tag,
// format version, flags, this page's id, and a zero item count.
func (io *IO[L]) InitNewPage(buf []byte, pageID PageID, pageSize int) {
	clear(buf[:pageSize])

	putUint16LE(buf[typeOff:], io.typ)
	putUint16LE(buf[versionOff:], io.ver)

	var flags uint16
	if io.leaf {
		flags |= flagLeaf
	}
	if io.canGetRow {
		flags |= flagCanGetRow
	}
	putUint16LE(buf[flagsOff:], flags)

	putUint16LE(buf[countOff:], 0)
	putPageID(buf, pageIDOff, pageID)
}

// storeAt writes the item value (not any child references) at the given
// byte offset. If rowBytes is non-nil it must hold a pre-encoded item of
// exactly itemSize bytes; otherwise row is encoded through the codec.
// Encode failure is the one checked error path of a page mutation and
// leaves the page in the caller's hands (no rollback at this layer).
func (io *IO[L]) storeAt(buf []byte, off int, row L, rowBytes []byte) error {
	dst := buf[off : off+io.itemSize]
	if rowBytes != nil {
		copy(dst, rowBytes)
		return nil
	}
	if err := io.codec.Encode(dst, row); err != nil {
		return encodeErr(err)
	}
	return nil
}

// loadAt decodes the item value stored at the given byte offset.
func (io *IO[L]) loadAt(buf []byte, off int) (L, error) {
	row, err := io.codec.Decode(buf[off : off+io.itemSize])
	if err != nil {
		var zero L
		return zero, decodeErr(err)
	}
	return row, nil
}

// insertItem is the generic insert: shift slots [idx, count) one position
// right, store the item at idx, bump the count. Child references beyond
// what CopyItems carries are the concrete layout's business (the inner
// layout wires the right child on top of this).
func (io *IO[L]) insertItem(lay Layout, buf []byte, idx int, row L, rowBytes []byte) error {
	cnt := io.Count(buf)

	if idx < cnt {
		lay.CopyItems(buf, buf, idx, idx+1, cnt-idx, false)
	}

	if err := io.storeAt(buf, lay.Offset(idx), row, rowBytes); err != nil {
		return err
	}

	io.SetCount(buf, cnt+1)
	return nil
}

// removeItem is the generic remove: shift slots [idx+1, count) one
// position left and drop the count.
func (io *IO[L]) removeItem(lay Layout, buf []byte, idx int) {
	cnt := io.Count(buf) - 1

	if idx < cnt {
		lay.CopyItems(buf, buf, idx+1, idx, cnt-idx, false)
	}

	io.SetCount(buf, cnt)
}
