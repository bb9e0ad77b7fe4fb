package pageio

import (
	"sync"

	"github.com/stratumdb/pageio/internal/fastmap"
)

// Registry resolves a page buffer to the I/O instance that understands
// its (type, version) combination. A tree algorithm typically registers
// one InnerIO per inner-page version (plus the caller's leaf I/Os) at
// startup and resolves through the registry whenever it descends into a
// page whose layout it does not already know.
//
// Registration and lookup are safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	ios fastmap.Map[PageIO]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func ioKey(typ, ver uint16) uint32 {
	return uint32(typ)<<16 | uint32(ver)
}

// Register adds an I/O instance keyed by its type and version. A second
// registration for the same (type, version) fails with ErrDuplicateIO.
func (r *Registry) Register(io PageIO) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ioKey(io.Type(), io.Version())
	if _, ok := r.ios.Get(key); ok {
		return ErrDuplicateIO
	}
	r.ios.Set(key, io)
	return nil
}

// Lookup returns the I/O instance registered for the given type and
// version, or ErrUnknownIO.
func (r *Registry) Lookup(typ, ver uint16) (PageIO, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	io, ok := r.ios.Get(ioKey(typ, ver))
	if !ok {
		return nil, ErrUnknownIO
	}
	return io, nil
}

// Resolve reads the type tag and format version from a page's header and
// returns the matching I/O instance.
func (r *Registry) Resolve(buf []byte) (PageIO, error) {
	return r.Lookup(PageType(buf), PageVersion(buf))
}
