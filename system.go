package alignedalloc

import (
	"fmt"
	"math"
	"os"
	"time"
)

// The page size cannot change while the process runs, so it is looked up once.
var pageSize = os.Getpagesize()

// SystemAllocator obtains memory directly from the operating system's
// virtual memory facilities, outside the Go heap. The garbage collector
// never sees the returned regions; every Alloc must be paired with a Free.
//
// On platforms without usable virtual memory primitives it degrades to
// Go heap allocation (see HeapAllocator), where Free is a no-op.
type SystemAllocator struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// NewSystemAllocator creates a new SystemAllocator.
func NewSystemAllocator(optFns ...Option) *SystemAllocator {
	o := applyOptions(optFns)

	return &SystemAllocator{
		metricsCollector: o.metricsCollector,
		logger:           o.logger,
	}
}

// Alloc implements Allocator.
func (a *SystemAllocator) Alloc(size, align int) ([]byte, error) {
	checkRequest(size, align)

	start := time.Now()
	buf, err := a.alloc(size, align)
	a.metricsCollector.RecordAlloc(size, align, time.Since(start), err)
	a.logger.LogAlloc(strategyName, size, align, err)

	return buf, err
}

func (a *SystemAllocator) alloc(size, align int) ([]byte, error) {
	// Strategies over-allocate by up to align bytes; a request for which
	// size+align does not fit in an int cannot be satisfied anywhere.
	if size > math.MaxInt-align {
		return nil, &ErrOutOfMemory{Size: size, Align: align}
	}

	buf, err := osAlloc(size, align)
	if err != nil {
		return nil, &ErrOutOfMemory{Size: size, Align: align, cause: err}
	}

	return buf, nil
}

// Free implements Allocator.
func (a *SystemAllocator) Free(buf []byte) error {
	start := time.Now()

	err := osFree(buf)
	if err != nil {
		err = fmt.Errorf("alignedalloc: failed to release region: %w", err)
	}

	a.metricsCollector.RecordFree(len(buf), time.Since(start), err)
	a.logger.LogFree(strategyName, len(buf), err)

	return err
}
