package generation

// History is a fixed-capacity ring buffer. Pushing onto a full buffer
// overwrites the oldest entry. Items are returned oldest first.
type History[T any] struct {
	buf   []T
	head  int
	size  int
	limit int
}

// NewHistory creates a buffer holding at most limit entries
func NewHistory[T any](limit int) *History[T] {
	if limit < 1 {
		limit = 1
	}
	return &History[T]{buf: make([]T, limit), limit: limit}
}

// Push appends an entry, evicting the oldest when full
func (h *History[T]) Push(v T) {
	h.buf[h.head] = v
	h.head = (h.head + 1) % h.limit
	if h.size < h.limit {
		h.size++
	}
}

// Len returns the number of stored entries
func (h *History[T]) Len() int {
	return h.size
}

// Cap returns the maximum number of entries
func (h *History[T]) Cap() int {
	return h.limit
}

// At returns the i-th entry counting from the oldest
func (h *History[T]) At(i int) T {
	return h.buf[(h.head-h.size+i+h.limit)%h.limit]
}

// Last returns the newest entry
func (h *History[T]) Last() (T, bool) {
	if h.size == 0 {
		var zero T
		return zero, false
	}
	return h.buf[(h.head-1+h.limit)%h.limit], true
}

// Items returns a copy of the entries, oldest first
func (h *History[T]) Items() []T {
	out := make([]T, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.At(i)
	}
	return out
}

// Retain keeps only entries for which keep returns true, preserving order
func (h *History[T]) Retain(keep func(T) bool) int {
	kept := make([]T, 0, h.size)
	for i := 0; i < h.size; i++ {
		if v := h.At(i); keep(v) {
			kept = append(kept, v)
		}
	}
	removed := h.size - len(kept)

	var zero T
	for i := range h.buf {
		h.buf[i] = zero
	}
	h.head, h.size = 0, 0
	for _, v := range kept {
		h.Push(v)
	}
	return removed
}
