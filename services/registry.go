package services

import "sync"

// Conn is the slice of a live transport connection the relay needs: an
// identity for logging and a way to push events. socketio.Conn satisfies it;
// tests supply fakes.
type Conn interface {
	ID() string
	Emit(event string, args ...interface{})
}

// Registry maps an authenticated user id to the set of live connections for
// that user. A user may hold several connections at once (multiple devices
// or tabs). State is process-local and in-memory only: it answers "is this
// user reachable via push right now" and nothing durable. Lost on restart;
// clients re-authenticate on reconnect.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]map[Conn]struct{}
}

// NewRegistry creates an empty connection registry. Construct one per
// process and inject it into the relay and the socket handshake code.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]map[Conn]struct{})}
}

// Register adds a connection to the user's set, creating the set if absent.
// Registering the same connection twice is a no-op.
func (r *Registry) Register(userID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[Conn]struct{})
		r.conns[userID] = set
	}
	set[conn] = struct{}{}
}

// Unregister removes a connection from the user's set and deletes the entry
// entirely once the set is empty. No-op if the user or connection is absent.
func (r *Registry) Unregister(userID string, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(r.conns, userID)
	}
}

// ConnectionsFor returns a snapshot of the user's current connections, empty
// if none. Callers must re-read at send time rather than cache the result:
// connections may drop between a suspension point and the actual push.
func (r *Registry) ConnectionsFor(userID string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.conns[userID]
	conns := make([]Conn, 0, len(set))
	for conn := range set {
		conns = append(conns, conn)
	}
	return conns
}

// IsOnline reports whether the user has at least one live connection.
func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[userID]
	return ok
}
