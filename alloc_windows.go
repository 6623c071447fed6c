//go:build windows

package alignedalloc

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hupe1980/alignedalloc/internal/mathx"
)

const strategyName = "reserve-commit"

// osAlloc obtains an aligned read-write region via VirtualAlloc.
//
// VirtualAlloc results are at least page-aligned, so alignments up to the
// page size are satisfied by committing size bytes directly.
//
// Stronger alignments cannot be requested from VirtualAlloc, so the region
// is located in two steps: reserve size+align bytes without committing,
// compute the first aligned address inside the reservation, release the
// whole reservation, and commit size bytes at that address. Reservation
// bases honor the 64 KiB allocation granularity, which makes the computed
// address granularity-aligned for every power-of-two align, so the commit
// is never rounded away from it.
//
// Between the release and the commit another thread may claim the address
// range. That window is inherent to the two-step approach; it surfaces as
// an allocation failure and is never retried here.
func osAlloc(size, align int) ([]byte, error) {
	if align <= pageSize {
		addr, err := windows.VirtualAlloc(0, uintptr(size),
			windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
		if err != nil {
			return nil, err
		}
		return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
	}

	total := uintptr(size + align)

	reserved, err := windows.VirtualAlloc(0, total, windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, err
	}

	aligned := mathx.Align(reserved, uintptr(align))

	if err := windows.VirtualFree(reserved, 0, windows.MEM_RELEASE); err != nil {
		// Releasing our own fresh reservation can only fail on a bad handle
		// or address, so this is a bug, not an environment condition.
		panic("alignedalloc: failed to release oversized reservation: " + err.Error())
	}

	addr, err := windows.VirtualAlloc(aligned, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// osFree releases a region returned by osAlloc. MEM_RELEASE operates on the
// whole region from its base address; no length is involved.
func osFree(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&buf[0])), 0, windows.MEM_RELEASE)
}
