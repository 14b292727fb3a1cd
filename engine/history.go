package engine

// History is a bounded ring keeping the most recent Cap() values
// Push at capacity evicts the oldest; Pop returns the newest
type History[T any] struct {
	buf   []T
	head  int // Index of the oldest element
	count int
}

// NewHistory creates a ring of the given capacity, minimum 1
func NewHistory[T any](capacity int) *History[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &History[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest entry when full
func (h *History[T]) Push(v T) {
	capacity := len(h.buf)
	if h.count < capacity {
		h.buf[(h.head+h.count)%capacity] = v
		h.count++
		return
	}
	h.buf[h.head] = v
	h.head = (h.head + 1) % capacity
}

// Pop removes and returns the newest entry
func (h *History[T]) Pop() (T, bool) {
	var zero T
	if h.count == 0 {
		return zero, false
	}
	idx := (h.head + h.count - 1) % len(h.buf)
	v := h.buf[idx]
	h.buf[idx] = zero
	h.count--
	return v, true
}

// At returns the i-th entry counting from the oldest
func (h *History[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= h.count {
		return zero, false
	}
	return h.buf[(h.head+i)%len(h.buf)], true
}

func (h *History[T]) Oldest() (T, bool) {
	return h.At(0)
}

func (h *History[T]) Newest() (T, bool) {
	return h.At(h.count - 1)
}

func (h *History[T]) Len() int {
	return h.count
}

func (h *History[T]) Cap() int {
	return len(h.buf)
}

// Clear drops every entry
func (h *History[T]) Clear() {
	clear(h.buf)
	h.head = 0
	h.count = 0
}
