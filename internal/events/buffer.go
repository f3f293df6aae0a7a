package events

import (
	"sync"

	"github.com/vigil-sh/vigil/internal/domain"
)

// RingBuffer is a fixed-size circular buffer of recent events
type RingBuffer struct {
	mu       sync.RWMutex
	entries  []domain.Event
	head     int // next write position
	count    int // current number of entries
	capacity int // max entries
}

// NewRingBuffer creates a new ring buffer with the given capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1000
	}
	return &RingBuffer{
		entries:  make([]domain.Event, capacity),
		capacity: capacity,
	}
}

// Write adds a new event to the buffer
func (b *RingBuffer) Write(event domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.head] = event
	b.head = (b.head + 1) % b.capacity

	if b.count < b.capacity {
		b.count++
	}
}

// Read returns all events in chronological order
func (b *RingBuffer) Read() []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	result := make([]domain.Event, b.count)

	start := 0
	if b.count == b.capacity {
		start = b.head // oldest entry is at head when full
	}

	for i := 0; i < b.count; i++ {
		result[i] = b.entries[(start+i)%b.capacity]
	}

	return result
}

// ReadLast returns the last n events in chronological order
func (b *RingBuffer) ReadLast(n int) []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 || n <= 0 {
		return nil
	}
	if n > b.count {
		n = b.count
	}

	result := make([]domain.Event, n)

	var start int
	if b.count == b.capacity {
		start = (b.head - n + b.capacity) % b.capacity
	} else {
		start = b.count - n
	}

	for i := 0; i < n; i++ {
		result[i] = b.entries[(start+i)%b.capacity]
	}

	return result
}

// Count returns the current number of events in the buffer
func (b *RingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}
