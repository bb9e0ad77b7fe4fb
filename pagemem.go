package pageio

// Raw page accessors. These operate on a page's flat byte buffer at
// caller-supplied offsets; the caller guarantees off + size <= len(buf).
// Out-of-range offsets panic via the usual slice bounds check rather than
// silently corrupting adjacent memory.

// GetByte reads a single byte at the given offset.
func GetByte(buf []byte, off int) byte {
	return buf[off]
}

// PutByte writes a single byte at the given offset.
func PutByte(buf []byte, off int, v byte) {
	buf[off] = v
}

// GetLong reads an 8-byte little-endian value at the given offset.
func GetLong(buf []byte, off int) uint64 {
	return getUint64LE(buf[off:])
}

// PutLong writes an 8-byte little-endian value at the given offset.
func PutLong(buf []byte, off int, v uint64) {
	putUint64LE(buf[off:], v)
}

// getPageID reads a child page reference at the given offset.
func getPageID(buf []byte, off int) PageID {
	return PageID(getUint64LE(buf[off:]))
}

// putPageID writes a child page reference at the given offset.
func putPageID(buf []byte, off int, id PageID) {
	putUint64LE(buf[off:], uint64(id))
}

// CopyMemory moves n bytes from src[srcOff:] to dst[dstOff:] with memmove
// semantics: src and dst may be the same buffer with overlapping ranges.
func CopyMemory(src, dst []byte, srcOff, dstOff, n int) {
	copy(dst[dstOff:dstOff+n], src[srcOff:srcOff+n])
}
