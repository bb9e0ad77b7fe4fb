package pageio

// InnerIO is the page I/O for inner (non-leaf) B+Tree pages.
//
// The slot data of an inner page is laid out as
//
//	|ItemsOff|w|A|x|B|y|C|z|
//
// where capital letters are items of itemSize bytes and lowercase letters
// are 8-byte child page ids. With N items the page holds N+1 child ids;
// Right(buf, i) and Left(buf, i+1) address the same bytes, so the
// identity Right(i) == Left(i+1) holds by construction.
//
// An InnerIO holds only layout constants derived at construction and is
// safe to share across goroutines operating on distinct page buffers.
type InnerIO[L any] struct {
	IO[L]

	// Byte offsets of slot 0's left reference, item, and right reference.
	// Slot idx adds idx*(PageIDSize+itemSize) to each.
	shiftLeft  int
	shiftLink  int
	shiftRight int
}

// NewInnerIO constructs the inner-page I/O for one (type, version, item
// size) combination. The item size comes from the codec.
func NewInnerIO[L any](typ, ver uint16, canGetRow bool, codec ItemCodec[L]) *InnerIO[L] {
	io := &InnerIO[L]{
		IO: newIO(typ, ver, false, canGetRow, codec),
	}
	io.shiftLeft = ItemsOff
	io.shiftLink = io.shiftLeft + PageIDSize
	io.shiftRight = io.shiftLink + io.itemSize
	return io
}

// MaxCount returns the maximum number of items a page of the given size
// can hold. The extra PageIDSize subtracted once pays for the single
// trailing child reference beyond the last item.
func (io *InnerIO[L]) MaxCount(pageSize int) int {
	return (pageSize - ItemsOff - PageIDSize) / (io.itemSize + PageIDSize)
}

// slotOffset returns shift advanced to slot idx.
func (io *InnerIO[L]) slotOffset(idx, shift int) int {
	return shift + (PageIDSize+io.itemSize)*idx
}

// Offset returns the byte offset of the item portion of slot idx.
func (io *InnerIO[L]) Offset(idx int) int {
	return io.slotOffset(idx, io.shiftLink)
}

// Left returns the left child reference of slot idx.
func (io *InnerIO[L]) Left(buf []byte, idx int) PageID {
	return getPageID(buf, io.slotOffset(idx, io.shiftLeft))
}

// SetLeft writes the left child reference of slot idx.
func (io *InnerIO[L]) SetLeft(buf []byte, idx int, pageID PageID) {
	putPageID(buf, io.slotOffset(idx, io.shiftLeft), pageID)

	if debugAsserts && io.Left(buf, idx) != pageID {
		panic("pageio: left child reference did not read back")
	}
}

// Right returns the right child reference of slot idx. These are the same
// bytes as the left reference of slot idx+1.
func (io *InnerIO[L]) Right(buf []byte, idx int) PageID {
	return getPageID(buf, io.slotOffset(idx, io.shiftRight))
}

// SetRight writes the right child reference of slot idx.
func (io *InnerIO[L]) SetRight(buf []byte, idx int, pageID PageID) {
	putPageID(buf, io.slotOffset(idx, io.shiftRight), pageID)

	if debugAsserts && io.Right(buf, idx) != pageID {
		panic("pageio: right child reference did not read back")
	}
}

// Item decodes the item stored in slot idx.
func (io *InnerIO[L]) Item(buf []byte, idx int) (L, error) {
	return io.loadAt(buf, io.Offset(idx))
}

// RawItem returns the item bytes of slot idx, aliasing the page buffer.
func (io *InnerIO[L]) RawItem(buf []byte, idx int) []byte {
	off := io.Offset(idx)
	return buf[off : off+io.itemSize]
}

// Store writes the item value of slot idx without touching any child
// references. If rowBytes is non-nil it is copied verbatim; otherwise row
// is encoded through the codec.
func (io *InnerIO[L]) Store(buf []byte, idx int, row L, rowBytes []byte) error {
	return io.storeAt(buf, io.Offset(idx), row, rowBytes)
}

// CopyItems moves cnt contiguous slots from src to dst, starting at
// srcIdx and dstIdx. Each moved slot carries its item and its right child
// reference; cpLeft additionally carries the leading left reference of
// the range. src and dst may be the same buffer with overlapping ranges,
// as during in-page shifts for insert/remove or when a split or merge
// copies a run of items to a sibling page.
//
// The bulk copy and the leading-reference write can overlap the same
// bytes when cpLeft is set, so their order depends on direction: shifting
// right, the bulk copy must run first so it reads untouched source bytes;
// shifting left (or across buffers), the leading reference goes first.
func (io *InnerIO[L]) CopyItems(src, dst []byte, srcIdx, dstIdx, cnt int, cpLeft bool) {
	if debugAsserts && srcIdx == dstIdx && &src[0] == &dst[0] {
		panic("pageio: copy of a slot range onto itself")
	}

	n := cnt * (io.itemSize + PageIDSize)

	if dstIdx > srcIdx {
		CopyMemory(src, dst, io.Offset(srcIdx), io.Offset(dstIdx), n)

		if cpLeft {
			putPageID(dst, io.slotOffset(dstIdx, io.shiftLeft),
				getPageID(src, io.slotOffset(srcIdx, io.shiftLeft)))
		}
	} else {
		if cpLeft {
			putPageID(dst, io.slotOffset(dstIdx, io.shiftLeft),
				getPageID(src, io.slotOffset(srcIdx, io.shiftLeft)))
		}

		CopyMemory(src, dst, io.Offset(srcIdx), io.Offset(dstIdx), n)
	}
}

// Insert places a new separator item at idx, shifting slots [idx, count)
// one position right, and wires the item's right child reference. A new
// separator always arrives paired with the new right sibling produced by
// a split one level below, which is why the right reference is set here
// rather than left to the caller.
//
// The caller must never insert into a page whose count has reached
// MaxCount; capacity is the tree algorithm's contract, not checked here.
func (io *InnerIO[L]) Insert(buf []byte, idx int, row L, rowBytes []byte, rightID PageID) error {
	if err := io.insertItem(io, buf, idx, row, rowBytes); err != nil {
		return err
	}

	io.SetRight(buf, idx, rightID)
	return nil
}

// Remove deletes the item at idx, shifting slots [idx+1, count) one
// position left. The removed item's left child reference is overwritten
// by the shift; dropping the orphaned child page is the caller's problem.
func (io *InnerIO[L]) Remove(buf []byte, idx int) {
	io.removeItem(io, buf, idx)
}

// InitNewRoot builds a brand-new single-item root page after a root
// split: the page is initialized, the moved-up separator stored at slot
// 0, and the two halves of the old root wired as its children.
func (io *InnerIO[L]) InitNewRoot(buf []byte, newRootID, leftChildID PageID, row L, rowBytes []byte, rightChildID PageID, pageSize int) error {
	io.InitNewPage(buf, newRootID, pageSize)

	io.SetCount(buf, 1)
	io.SetLeft(buf, 0, leftChildID)
	if err := io.Store(buf, 0, row, rowBytes); err != nil {
		return err
	}
	io.SetRight(buf, 0, rightChildID)
	return nil
}
