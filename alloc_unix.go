//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package alignedalloc

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/hupe1980/alignedalloc/internal/mathx"
)

const strategyName = "direct"

// osAlloc obtains an aligned read-write region from an anonymous private
// mapping. mmap results are always page-aligned, so alignments up to the
// page size are satisfied by a plain mapping of size bytes.
//
// Stronger alignments over-map by align bytes, which guarantees an aligned
// base exists somewhere in the mapping, then unmap the misaligned head and
// the unused tail. Both trims are whole pages: align is a page multiple
// here, so the head is the distance between two page-aligned addresses, and
// the tail starts on the page boundary following the region.
func osAlloc(size, align int) ([]byte, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	if align <= pageSize {
		p, err := unix.MmapPtr(-1, 0, nil, uintptr(size), prot, flags)
		if err != nil {
			return nil, err
		}
		return unsafe.Slice((*byte)(p), size), nil
	}

	total := uintptr(size + align)

	p, err := unix.MmapPtr(-1, 0, nil, total, prot, flags)
	if err != nil {
		return nil, err
	}

	base := uintptr(p)
	head := mathx.Align(base, uintptr(align)) - base
	if head > 0 {
		if err := unix.MunmapPtr(p, head); err != nil {
			panic("alignedalloc: failed to trim mapping head: " + err.Error())
		}
	}

	end := head + uintptr(size)
	if tail := mathx.Align(end, uintptr(pageSize)); tail < total {
		if err := unix.MunmapPtr(unsafe.Add(p, tail), total-tail); err != nil {
			panic("alignedalloc: failed to trim mapping tail: " + err.Error())
		}
	}

	return unsafe.Slice((*byte)(unsafe.Add(p, head)), size), nil
}

// osFree unmaps a region returned by osAlloc. The kernel rounds the length
// up to whole pages, which is exactly the set of pages osAlloc left mapped.
func osFree(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.MunmapPtr(unsafe.Pointer(&buf[0]), uintptr(len(buf)))
}
