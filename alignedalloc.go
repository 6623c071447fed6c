package alignedalloc

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/alignedalloc/internal/mathx"
)

// MinAlign is the smallest alignment Alloc accepts: the size of a native
// pointer word. Every platform allocator already guarantees at least this
// much, so weaker requests indicate a caller bug and are rejected.
const MinAlign = int(unsafe.Sizeof(uintptr(0)))

// Allocator obtains and releases memory regions with explicit alignment.
//
// Alloc returns a slice of exactly size bytes whose first byte sits on an
// address that is a multiple of align. size must be positive and align must
// be a power of two no smaller than MinAlign; violations panic. A nil slice
// with a non-nil error (always *ErrOutOfMemory) means the request could not
// be satisfied.
//
// Free releases a region previously returned by Alloc. The argument must be
// exactly the slice Alloc returned; passing anything else, or passing the
// same slice twice, is undefined behavior. The memory must not be accessed
// after Free returns.
type Allocator interface {
	Alloc(size, align int) ([]byte, error)
	Free(buf []byte) error
}

// Default is the allocator behind the package-level Alloc and Free.
// Replace it to reroute those functions, e.g. to a HeapAllocator in tests.
var Default Allocator = NewSystemAllocator()

// Alloc obtains size bytes aligned to align from the Default allocator.
func Alloc(size, align int) ([]byte, error) {
	return Default.Alloc(size, align)
}

// Free returns a region obtained from Alloc to the Default allocator.
func Free(buf []byte) error {
	return Default.Free(buf)
}

// checkRequest enforces the Alloc contract shared by all allocators.
func checkRequest(size, align int) {
	if size <= 0 {
		panic(fmt.Sprintf("alignedalloc: invalid size %d: must be positive", size))
	}
	if align < MinAlign {
		panic(fmt.Sprintf("alignedalloc: invalid alignment %d: must be at least %d", align, MinAlign))
	}
	if !mathx.IsPow(align) {
		panic(fmt.Sprintf("alignedalloc: invalid alignment %d: must be a power of two", align))
	}
}
