package auth

import "sync"

// State is the gate's view of the current identity. It starts at Checking and
// only ever settles on what the identity source reports; nothing else is
// trusted as a source of signed-in status.
type State int

const (
	Checking State = iota
	Authenticated
	Unauthenticated
)

// Source emits the current identity, or nil for a definitive "no identity".
// Subscribe returns the teardown for the registration.
type Source interface {
	Subscribe(fn func(*Identity)) (unsubscribe func())
}

// Gate blocks protected work until the source reports a definitive state.
// While Checking, callers must not start protected fetches; Unauthenticated
// means a redirect to login is due.
type Gate struct {
	mu    sync.Mutex
	state State
	id    *Identity
	stop  func()
}

// NewGate subscribes to the source immediately; Close tears the
// subscription down.
func NewGate(src Source) *Gate {
	g := &Gate{state: Checking}
	g.stop = src.Subscribe(g.onEmit)
	return g
}

func (g *Gate) onEmit(id *Identity) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id == nil {
		g.state = Unauthenticated
		g.id = nil
		return
	}
	g.state = Authenticated
	g.id = id
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Identity returns the signed-in principal, or nil unless Authenticated.
func (g *Gate) Identity() *Identity {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *Gate) Close() {
	if g.stop != nil {
		g.stop()
	}
}

// Feed is a fan-out Source fed by the caller.
type Feed struct {
	mu   sync.Mutex
	subs map[int]func(*Identity)
	next int
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[int]func(*Identity))}
}

func (f *Feed) Subscribe(fn func(*Identity)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.subs[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

// Emit delivers the identity (or nil) to every live subscriber.
func (f *Feed) Emit(id *Identity) {
	f.mu.Lock()
	fns := make([]func(*Identity), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(id)
	}
}

// Once is a Source that emits a single value on subscribe. The request
// middleware wraps each token verification in one of these.
func Once(id *Identity) Source {
	return onceSource{id: id}
}

type onceSource struct {
	id *Identity
}

func (s onceSource) Subscribe(fn func(*Identity)) func() {
	fn(s.id)
	return func() {}
}
