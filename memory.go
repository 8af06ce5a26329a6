package panel

import "github.com/gogpu/panel/internal/image"

// Allocator provides the bytes of owned sprite buffers.
type Allocator = image.Allocator

// Heap is an Allocator with an optional byte budget and usage counters.
type Heap = image.Heap

// HeapStats is a snapshot of a Heap's counters.
type HeapStats = image.HeapStats

// NewHeap returns a heap refusing allocations beyond limit bytes in use.
// A limit of 0 means unlimited.
func NewHeap(limit int) *Heap {
	return image.NewHeap(limit)
}
