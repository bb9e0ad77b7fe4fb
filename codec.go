package pageio

// Uint64Codec stores a uint64 key as an 8-byte little-endian item. It is
// the codec used throughout this package's tests and serves as the
// reference ItemCodec implementation; real indexes typically store a
// wider key or a (key, row link) pair.
type Uint64Codec struct{}

// Size returns 8.
func (Uint64Codec) Size() int { return 8 }

// Encode writes the key into dst.
func (Uint64Codec) Encode(dst []byte, row uint64) error {
	putUint64LE(dst, row)
	return nil
}

// Decode reads the key back from src.
func (Uint64Codec) Decode(src []byte) (uint64, error) {
	return getUint64LE(src), nil
}
