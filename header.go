package pageio

// Common header accessors. These read the fixed [0, ItemsOff) region that
// every page layout shares; see constants.go for the byte assignment.

// PageType returns the page type tag stamped at initialization.
func PageType(buf []byte) uint16 {
	return getUint16LE(buf[typeOff:])
}

// PageVersion returns the page format version stamped at initialization.
func PageVersion(buf []byte) uint16 {
	return getUint16LE(buf[versionOff:])
}

// IsLeaf returns true if the page was initialized by a leaf layout.
func IsLeaf(buf []byte) bool {
	return getUint16LE(buf[flagsOff:])&flagLeaf != 0
}

// CanGetFullRow returns true if a full row can be retrieved from this
// page without descending to a leaf.
func CanGetFullRow(buf []byte) bool {
	return getUint16LE(buf[flagsOff:])&flagCanGetRow != 0
}

// PageIDOf returns the page's own id stamped at initialization.
func PageIDOf(buf []byte) PageID {
	return getPageID(buf, pageIDOff)
}
