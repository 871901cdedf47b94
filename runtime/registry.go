package runtime

import (
	"chat-core/contract"
	"chat-core/observability"
	"sync"

	"github.com/samber/lo"
)

// Registry is the directory of currently connected clients. There is no
// per-user or per-conversation addressing: every sink receives every event.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.EventSink // map client -> Sink
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]contract.EventSink)}
}

// Subscribe registers the active connection of a client, replacing any
// previous sink registered under the same id.
func (r *Registry) Subscribe(clientID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[clientID] = sink
	observability.ConnectedClients.Set(float64(len(r.sessions)))
}

func (r *Registry) Unsubscribe(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, clientID)
	observability.ConnectedClients.Set(float64(len(r.sessions)))
}

// Sinks returns a snapshot; clients joining or leaving afterwards do not
// affect a broadcast already in flight.
func (r *Registry) Sinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Values(r.sessions)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
