// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/editbox/internal/logger"
)

// Handler is an event subscriber. It returns true if it consumed the event,
// which stops delivery to later handlers.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{handlers: make(map[Type][]Handler)}
}

// Subscribe adds a handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Handler subscribed to %v", eventType)
}

// Dispatch delivers an event to the handlers of its type, synchronously and
// in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	handlers := append([]Handler(nil), m.handlers[eventType]...)
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		if handler(e) {
			logger.DebugTagf("event", "%v consumed", eventType)
			return
		}
	}
}
