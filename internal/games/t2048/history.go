package t2048

// Entry is the state recorded right before an effective move.
type Entry struct {
	Tiles Board
	Score int
}

// History is a fixed-capacity LIFO of entries. Pushing onto a full history
// evicts the oldest entry.
type History struct {
	entries []Entry
	start   int // index of the oldest entry
	size    int
}

// NewHistory creates a history holding at most capacity entries.
// A capacity of zero or less yields a history that records nothing.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{entries: make([]Entry, capacity)}
}

// Cap returns the maximum number of entries.
func (h *History) Cap() int {
	return len(h.entries)
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return h.size
}

// Push records an entry, evicting the oldest one when full.
func (h *History) Push(e Entry) {
	capacity := len(h.entries)
	if capacity == 0 {
		return
	}

	if h.size == capacity {
		h.entries[h.start] = e
		h.start = (h.start + 1) % capacity
		return
	}

	h.entries[(h.start+h.size)%capacity] = e
	h.size++
}

// Pop removes and returns the most recently pushed entry.
func (h *History) Pop() (Entry, bool) {
	if h.size == 0 {
		return Entry{}, false
	}

	idx := (h.start + h.size - 1) % len(h.entries)
	e := h.entries[idx]
	h.entries[idx] = Entry{}
	h.size--
	return e, true
}

// Reset drops every entry.
func (h *History) Reset() {
	for i := range h.entries {
		h.entries[i] = Entry{}
	}
	h.start = 0
	h.size = 0
}
