package strategy

import (
	"errors"
	"sync"
)

// ErrNoStrategy is returned by Execute when no strategy has been selected.
// It lets callers distinguish "not configured yet" from a failure of the
// selected strategy itself.
var ErrNoStrategy = errors.New("no strategy selected")

// Context holds the currently selected strategy and routes Execute calls to
// it. A fresh Context has no selection. Use takes the write lock, Execute the
// read lock, so reconfiguration may race with calls without tearing.
type Context[I, O any] struct {
	mu  sync.RWMutex
	cur Strategy[I, O]
}

// NewContext returns a Context with no strategy selected.
func NewContext[I, O any]() *Context[I, O] {
	return &Context[I, O]{}
}

// Use replaces the selected strategy unconditionally. The previous strategy
// is simply dropped; variants hold no resources requiring cleanup. Passing
// nil returns the context to the unselected state.
func (c *Context[I, O]) Use(s Strategy[I, O]) {
	c.mu.Lock()
	c.cur = s
	c.mu.Unlock()
}

// Selected reports whether a strategy is currently held.
func (c *Context[I, O]) Selected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur != nil
}

// Execute delegates to the selected strategy. It fails with ErrNoStrategy
// while unselected; otherwise the strategy's result is returned as is and the
// selection is untouched, whether the call succeeded or not.
func (c *Context[I, O]) Execute(in I) (O, error) {
	c.mu.RLock()
	s := c.cur
	c.mu.RUnlock()
	if s == nil {
		var zero O
		return zero, ErrNoStrategy
	}
	return s.Execute(in)
}
