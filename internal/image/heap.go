// Package image holds the pixel storage behind panel sprites and the
// allocator that accounts for it.
package image

import (
	"errors"
	"sync"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("image: out of memory")
)

// Allocator provides the backing bytes of owned buffers.
//
// Free receives exactly the slice returned by Alloc, once.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// HeapStats is a snapshot of a Heap's accounting.
type HeapStats struct {
	// InUse is the number of bytes currently allocated.
	InUse int

	// Peak is the highest InUse observed.
	Peak int

	// Allocs and Frees count successful Alloc and Free calls.
	Allocs uint64
	Frees  uint64

	// Failures counts Alloc calls refused by the limit.
	Failures uint64
}

// Heap is an Allocator with an optional byte budget and a free list of
// recently released slices, grouped by size.
//
// A Heap models the fixed memory of a display controller: once the
// budget is spent, further allocations fail instead of growing.
//
// Thread safety: All methods are safe for concurrent use.
type Heap struct {
	mu      sync.Mutex
	limit   int
	buckets map[int][]([]byte)
	maxSize int // max slices per bucket
	stats   HeapStats
}

// NewHeap creates a heap that refuses allocations pushing the bytes in
// use above limit. A limit of 0 means unlimited.
//
// Freed slices are kept for reuse, up to four per size, for the life of
// the heap. The retained bytes do not count as in use.
func NewHeap(limit int) *Heap {
	return newHeap(limit, 4)
}

func newHeap(limit, keep int) *Heap {
	return &Heap{
		limit:   limit,
		buckets: make(map[int][]([]byte)),
		maxSize: keep,
	}
}

// Alloc returns a zeroed slice of size bytes.
func (h *Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidDimensions
	}

	h.mu.Lock()
	if h.limit > 0 && h.stats.InUse+size > h.limit {
		h.stats.Failures++
		h.mu.Unlock()
		return nil, ErrOutOfMemory
	}
	h.stats.InUse += size
	if h.stats.InUse > h.stats.Peak {
		h.stats.Peak = h.stats.InUse
	}
	h.stats.Allocs++

	bucket := h.buckets[size]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		h.buckets[size] = bucket[:len(bucket)-1]
		h.mu.Unlock()

		clear(buf)
		return buf, nil
	}
	h.mu.Unlock()

	return make([]byte, size), nil
}

// Free returns buf to the heap. Releasing a slice that did not come from
// this heap corrupts the accounting.
func (h *Heap) Free(buf []byte) {
	if buf == nil {
		return
	}
	size := len(buf)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.stats.InUse -= size
	h.stats.Frees++

	bucket := h.buckets[size]
	if len(bucket) >= h.maxSize {
		return
	}
	h.buckets[size] = append(bucket, buf)
}

// Stats returns the current accounting.
func (h *Heap) Stats() HeapStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// Limit returns the byte budget, 0 meaning unlimited.
func (h *Heap) Limit() int {
	return h.limit
}

// DefaultHeap is the unlimited heap used when no allocator is configured.
// It is process-wide, so it keeps no free list: a closed sprite's buffer
// goes back to the garbage collector.
var DefaultHeap = newHeap(0, 0)
