package alignedalloc

import (
	"math"
	"time"
	"unsafe"
)

// HeapAllocator produces aligned regions from the Go heap by over-allocating
// and slicing. The garbage collector owns the backing arrays, so Free is a
// no-op and forgetting it leaks nothing. It works on every platform and
// supports any power-of-two alignment, including ones beyond the page size.
type HeapAllocator struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// NewHeapAllocator creates a new HeapAllocator.
func NewHeapAllocator(optFns ...Option) *HeapAllocator {
	o := applyOptions(optFns)

	return &HeapAllocator{
		metricsCollector: o.metricsCollector,
		logger:           o.logger,
	}
}

// Alloc implements Allocator.
func (a *HeapAllocator) Alloc(size, align int) ([]byte, error) {
	checkRequest(size, align)

	start := time.Now()
	buf, err := a.alloc(size, align)
	a.metricsCollector.RecordAlloc(size, align, time.Since(start), err)
	a.logger.LogAlloc("heap", size, align, err)

	return buf, err
}

func (a *HeapAllocator) alloc(size, align int) ([]byte, error) {
	if size > math.MaxInt-align {
		return nil, &ErrOutOfMemory{Size: size, Align: align}
	}

	return heapAlloc(size, align), nil
}

// Free implements Allocator. It only records the release; the garbage
// collector reclaims the backing array once the caller drops the slice.
func (a *HeapAllocator) Free(buf []byte) error {
	start := time.Now()
	a.metricsCollector.RecordFree(len(buf), time.Since(start), nil)
	a.logger.LogFree("heap", len(buf), nil)

	return nil
}

// heapAlloc allocates size + align bytes to guarantee an aligned offset
// exists, then returns the slice starting at the first aligned byte.
// Capacity is clamped so callers cannot append into the alignment slack.
// The underlying array is kept alive by the returned slice.
func heapAlloc(size, align int) []byte {
	buf := make([]byte, size+align)

	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))

	return buf[offset : offset+size : offset+size]
}
