package gum

import "sync"

// Locked serializes every call sequence on a Context behind one mutex.
// Use it when more than one goroutine draws through the same context.
type Locked struct {
	mu  sync.Mutex
	ctx *Context
}

// NewLocked wraps ctx.
func NewLocked(ctx *Context) *Locked {
	return &Locked{ctx: ctx}
}

// Do runs fn with exclusive access to the context.
func (l *Locked) Do(fn func(*Context) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.ctx)
}
