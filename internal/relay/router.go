// Package relay implements the board-linking message router (spec.md
// §4.5): client registration, wall/portal join tables, the operator
// console, and the per-client session state machine.
package relay

import (
	"sync"

	"github.com/lguibr/pinball/internal/wire"
)

// Router owns the board-name → connection map shared between the
// accept loop, the stdin command loop and every client's reader
// goroutine (spec.md §5 "Shared resources"); it requires a mutex.
type Router struct {
	mu      sync.RWMutex
	clients map[string]*wire.Conn
}

func NewRouter() *Router {
	return &Router{clients: make(map[string]*wire.Conn)}
}

// Register adds name→conn, rejecting a name already in use so the
// map stays injective (spec.md §8 invariant 4).
func (r *Router) Register(name string, conn *wire.Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.clients[name]; taken {
		return false
	}
	r.clients[name] = conn
	return true
}

func (r *Router) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, name)
}

func (r *Router) Lookup(name string) (*wire.Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.clients[name]
	return conn, ok
}

// Names returns every currently registered board name.
func (r *Router) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.clients))
	for name := range r.clients {
		out = append(out, name)
	}
	return out
}

// Broadcast sends msg to every registered client, success-wrapped.
func (r *Router) Broadcast(msg wire.Message) {
	line, err := wire.Encode(msg)
	if err != nil {
		return
	}
	r.mu.RLock()
	conns := make([]*wire.Conn, 0, len(r.clients))
	for _, c := range r.clients {
		conns = append(conns, c)
	}
	r.mu.RUnlock()
	for _, c := range conns {
		_ = c.WriteLine(wire.WrapSuccess(line))
	}
}

// CloseAll closes every registered connection (spec.md §6 "disconnect
// closes every client").
func (r *Router) CloseAll() {
	r.mu.RLock()
	conns := make([]*wire.Conn, 0, len(r.clients))
	for _, c := range r.clients {
		conns = append(conns, c)
	}
	r.mu.RUnlock()
	for _, c := range conns {
		_ = c.Close()
	}
}
