package image

import (
	"errors"
	"sync"
	"testing"
)

func TestHeap_AllocFree(t *testing.T) {
	h := NewHeap(0)

	buf, err := h.Alloc(100)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(buf) != 100 {
		t.Fatalf("len = %d, want 100", len(buf))
	}

	st := h.Stats()
	if st.InUse != 100 || st.Allocs != 1 || st.Peak != 100 {
		t.Errorf("stats after alloc = %+v", st)
	}

	h.Free(buf)
	st = h.Stats()
	if st.InUse != 0 || st.Frees != 1 || st.Peak != 100 {
		t.Errorf("stats after free = %+v", st)
	}
}

func TestHeap_ReusedSliceIsZeroed(t *testing.T) {
	h := NewHeap(0)

	buf, _ := h.Alloc(16)
	for i := range buf {
		buf[i] = 0xAA
	}
	h.Free(buf)

	again, err := h.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	for i, v := range again {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, v)
		}
	}
}

func TestHeap_Limit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		sizes   []int
		wantErr []bool
	}{
		{"unlimited", 0, []int{1 << 20, 1 << 20}, []bool{false, false}},
		{"exact fit", 64, []int{32, 32}, []bool{false, false}},
		{"over budget", 64, []int{48, 32}, []bool{false, true}},
		{"single too large", 10, []int{11}, []bool{true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeap(tt.limit)
			for i, size := range tt.sizes {
				_, err := h.Alloc(size)
				if gotErr := err != nil; gotErr != tt.wantErr[i] {
					t.Fatalf("Alloc(%d) err = %v, wantErr %v", size, err, tt.wantErr[i])
				}
				if err != nil && !errors.Is(err, ErrOutOfMemory) {
					t.Errorf("err = %v, want ErrOutOfMemory", err)
				}
			}
		})
	}
}

func TestHeap_FailureLeavesAccountingUnchanged(t *testing.T) {
	h := NewHeap(10)
	if _, err := h.Alloc(20); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("err = %v, want ErrOutOfMemory", err)
	}
	st := h.Stats()
	if st.InUse != 0 || st.Allocs != 0 || st.Failures != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestHeap_InvalidSize(t *testing.T) {
	h := NewHeap(0)
	if _, err := h.Alloc(0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Alloc(0) err = %v, want ErrInvalidDimensions", err)
	}
}

func TestHeap_Concurrent(t *testing.T) {
	h := NewHeap(0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				buf, err := h.Alloc(64)
				if err != nil {
					t.Error(err)
					return
				}
				h.Free(buf)
			}
		}()
	}
	wg.Wait()

	st := h.Stats()
	if st.InUse != 0 {
		t.Errorf("InUse = %d, want 0", st.InUse)
	}
	if st.Allocs != 800 || st.Frees != 800 {
		t.Errorf("Allocs/Frees = %d/%d, want 800/800", st.Allocs, st.Frees)
	}
}

func TestHeap_FreeListRetention(t *testing.T) {
	tests := []struct {
		name string
		heap *Heap
		want int
	}{
		{"NewHeap keeps four", NewHeap(0), 4},
		{"DefaultHeap keeps none", DefaultHeap, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const size = 4099
			bufs := make([][]byte, 6)
			for i := range bufs {
				b, err := tt.heap.Alloc(size)
				if err != nil {
					t.Fatalf("Alloc() = %v", err)
				}
				bufs[i] = b
			}
			for _, b := range bufs {
				tt.heap.Free(b)
			}

			tt.heap.mu.Lock()
			got := len(tt.heap.buckets[size])
			tt.heap.mu.Unlock()
			if got != tt.want {
				t.Errorf("retained %d slices, want %d", got, tt.want)
			}
		})
	}
}
