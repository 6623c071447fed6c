//go:build !unix && !windows

package alignedalloc

const strategyName = "heap"

// osAlloc degrades to Go heap allocation on platforms without usable
// virtual memory primitives. Alignment still holds; ownership moves to the
// garbage collector.
func osAlloc(size, align int) ([]byte, error) {
	return heapAlloc(size, align), nil
}

// osFree is a no-op; the garbage collector reclaims the backing array once
// the caller drops the slice.
func osFree(buf []byte) error {
	return nil
}
