package alignedalloc

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSystemAllocator_RoundTrip(t *testing.T) {
	const (
		iterations = 10000
		size       = 65536
		align      = 65536
	)

	metrics := &BasicMetricsCollector{}
	a := NewSystemAllocator(WithMetricsCollector(metrics))

	for i := 0; i < iterations; i++ {
		buf, err := a.Alloc(size, align)
		require.NoError(t, err)
		require.NoError(t, a.Free(buf))
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(iterations), stats.AllocCount)
	assert.Equal(t, int64(iterations), stats.FreeCount)
	assert.Equal(t, int64(0), stats.AllocErrors)
	assert.Equal(t, int64(0), stats.FreeErrors)
	assert.Equal(t, int64(iterations*size), stats.BytesAllocated)
	assert.Equal(t, int64(0), stats.BytesOutstanding)
}

func TestSystemAllocator_AlignmentBeyondPage(t *testing.T) {
	a := NewSystemAllocator()

	aligns := []int{4 * pageSize, 16 * pageSize, 1 << 20}
	sizes := []int{1, pageSize - 1, pageSize + 1, 1 << 20}

	for _, align := range aligns {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("size=%d/align=%d", size, align), func(t *testing.T) {
				buf, err := a.Alloc(size, align)
				require.NoError(t, err)
				require.Len(t, buf, size)
				assert.Equal(t, size, cap(buf))

				addr := uintptr(unsafe.Pointer(&buf[0]))
				assert.Equal(t, uintptr(0), addr%uintptr(align))

				// Touch both ends to catch a mistrimmed mapping.
				buf[0] = 0xFF
				buf[len(buf)-1] = 0xFF

				assert.NoError(t, a.Free(buf))
			})
		}
	}
}

func TestSystemAllocator_Concurrent(t *testing.T) {
	const (
		workers    = 8
		iterations = 200
	)

	sizes := []int{1, 512, 4096, 65536, 1 << 20}
	aligns := []int{64, 4096, 65536, 1 << 20}

	a := NewSystemAllocator()

	var (
		mu   sync.Mutex
		live = make(map[uintptr]uintptr)
	)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				size := sizes[(w*iterations+i)%len(sizes)]
				align := aligns[(w+i)%len(aligns)]

				buf, err := a.Alloc(size, align)
				if err != nil {
					return err
				}

				start := uintptr(unsafe.Pointer(&buf[0]))
				end := start + uintptr(len(buf))

				if start%uintptr(align) != 0 {
					return fmt.Errorf("address %#x not aligned to %d", start, align)
				}

				mu.Lock()
				for s, e := range live {
					if start < e && s < end {
						mu.Unlock()
						return fmt.Errorf("region [%#x,%#x) overlaps live region [%#x,%#x)", start, end, s, e)
					}
				}
				live[start] = end
				mu.Unlock()

				buf[0] = byte(i)
				buf[len(buf)-1] = byte(i)

				// Untrack before unmapping so a concurrent Alloc reusing the
				// range is not reported as an overlap.
				mu.Lock()
				delete(live, start)
				mu.Unlock()

				if err := a.Free(buf); err != nil {
					return err
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Empty(t, live)
}

func TestSystemAllocator_MetricsOnFailure(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	a := NewSystemAllocator(WithMetricsCollector(metrics))

	_, err := a.Alloc(math.MaxInt-64, 128)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.AllocCount)
	assert.Equal(t, int64(1), stats.AllocErrors)
	assert.Equal(t, int64(0), stats.BytesAllocated)
}

func BenchmarkSystemAllocator(b *testing.B) {
	a := NewSystemAllocator()

	benchmarks := []struct {
		size  int
		align int
	}{
		{4096, 4096},
		{65536, 65536},
		{1 << 20, 4096},
		{1 << 20, 1 << 20},
	}

	for _, bm := range benchmarks {
		b.Run(fmt.Sprintf("size=%d/align=%d", bm.size, bm.align), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf, err := a.Alloc(bm.size, bm.align)
				if err != nil {
					b.Fatal(err)
				}
				if err := a.Free(buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
