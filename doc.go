// Package alignedalloc provides heap memory with caller-chosen alignment,
// built on the operating system's virtual memory primitives.
//
// # Overview
//
// The regular allocator guarantees alignment only up to a small fixed bound.
// Code that locates metadata by masking pointer bits, or that lays data out
// for page-granular access, needs blocks whose starting address is a multiple
// of a larger power of two. This package obtains such blocks directly from
// the OS and releases them without leaking or corrupting allocator state.
//
// It is intended for infrequent, large allocations. Arena or pool layers that
// carve many small objects out of one aligned block belong on top of this
// package, not inside it.
//
// # Usage
//
//	// One 1 MiB block starting on a 1 MiB boundary.
//	buf, err := alignedalloc.Alloc(1<<20, 1<<20)
//	if err != nil {
//	    // out of memory
//	}
//	defer alignedalloc.Free(buf)
//
// Alloc panics if size is not positive, or if align is not a power of two at
// least MinAlign. Running out of memory is the only error it returns.
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): anonymous mmap(2). Mappings are page-aligned,
//     so alignments up to the page size need a single call; stronger
//     alignments over-map and trim the excess with munmap(2).
//   - Windows: VirtualAlloc. Alignments beyond the page size reserve an
//     oversized range, release it, and commit at the aligned address inside
//     the former reservation.
//   - Everything else: Go heap over-allocation via HeapAllocator; the
//     garbage collector owns the memory and Free is a no-op.
//
// # Thread Safety
//
// Allocators hold no mutable state and are safe for concurrent use. On
// Windows a concurrent VirtualAlloc by another thread can steal the released
// range before it is re-committed; this surfaces as an allocation failure,
// never as a misaligned or shared block.
package alignedalloc
