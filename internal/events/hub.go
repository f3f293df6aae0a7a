// Package events fans monitor events out to interested consumers and keeps
// a bounded history of recent ones.
package events

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/vigil-sh/vigil/internal/domain"
)

// HubConfig holds configuration for the event hub
type HubConfig struct {
	BufferSize         int // Number of events to keep in the ring buffer
	SubscriptionBuffer int // Buffer size for subscription channels
}

// DefaultHubConfig returns the default configuration
func DefaultHubConfig() HubConfig {
	return HubConfig{
		BufferSize:         1000,
		SubscriptionBuffer: 100,
	}
}

// Hub stores recent events and broadcasts new ones to subscribers. The
// console printer, daily log writer, SSE handler, and TUI all consume the
// same stream.
type Hub struct {
	buffer *RingBuffer

	mu            sync.RWMutex
	subscriptions map[string]*subscription
	subBuffer     int
}

// NewHub creates a new event hub
func NewHub(config HubConfig) *Hub {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultHubConfig().BufferSize
	}
	if config.SubscriptionBuffer <= 0 {
		config.SubscriptionBuffer = DefaultHubConfig().SubscriptionBuffer
	}

	return &Hub{
		buffer:        NewRingBuffer(config.BufferSize),
		subscriptions: make(map[string]*subscription),
		subBuffer:     config.SubscriptionBuffer,
	}
}

// Publish records the event and broadcasts it to all subscribers
func (h *Hub) Publish(event domain.Event) {
	h.buffer.Write(event)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subscriptions {
		sub.send(event)
	}
}

// Recent returns the last n events in chronological order. n <= 0 returns
// everything in the buffer.
func (h *Hub) Recent(n int) []domain.Event {
	if n <= 0 {
		return h.buffer.Read()
	}
	return h.buffer.ReadLast(n)
}

// Subscribe registers a new subscriber and returns its id and channel.
// Slow subscribers drop events rather than block the publisher.
func (h *Hub) Subscribe() (string, <-chan domain.Event) {
	sub := newSubscription(h.subBuffer)

	h.mu.Lock()
	h.subscriptions[sub.id] = sub
	h.mu.Unlock()

	return sub.id, sub.ch
}

// Unsubscribe removes a subscription and closes its channel
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subscriptions[id]
	if ok {
		delete(h.subscriptions, id)
	}
	h.mu.Unlock()

	if ok {
		sub.close()
	}
}

// Subscribers returns the number of active subscriptions
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscriptions)
}

// Close closes all subscriptions
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*subscription, 0, len(h.subscriptions))
	for _, sub := range h.subscriptions {
		subs = append(subs, sub)
	}
	h.subscriptions = make(map[string]*subscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

var subscriptionIDCounter uint64

type subscription struct {
	id     string
	ch     chan domain.Event
	closed atomic.Bool
}

func newSubscription(bufferSize int) *subscription {
	id := atomic.AddUint64(&subscriptionIDCounter, 1)
	return &subscription{
		id: "sub-" + strconv.FormatUint(id, 10),
		ch: make(chan domain.Event, bufferSize),
	}
}

// send attempts to deliver an event; full or closed channels drop it
func (s *subscription) send(event domain.Event) bool {
	if s.closed.Load() {
		return false
	}
	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

func (s *subscription) close() {
	if s.closed.CompareAndSwap(false, true) {
		close(s.ch)
	}
}
