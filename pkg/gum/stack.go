package gum

import (
	"fmt"

	"github.com/Faultbox/gum/pkg/math"
)

// Push duplicates the top of the selected stack. The hardware-visible
// matrix does not change, so the dirty flag is left alone.
func (c *Context) Push() error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("push", err)
	}

	st := &c.stacks[c.mode]
	if st.sp >= StackDepth-1 {
		return c.reject("push", fmt.Errorf("%w: depth %d", ErrStackOverflow, StackDepth))
	}

	st.slots[st.sp] = r.top
	st.sp++
	st.slots[st.sp] = r.top
	return nil
}

// Pop discards the top of the selected stack and restores the entry below.
func (c *Context) Pop() error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("pop", err)
	}

	st := &c.stacks[c.mode]
	if st.sp == 0 {
		return c.reject("pop", ErrStackUnderflow)
	}

	st.sp--
	r.top = st.top()
	r.dirty = true
	return nil
}

// LoadIdentity replaces the top with the identity matrix.
func (c *Context) LoadIdentity() error {
	return c.Load(math.Identity())
}

// Load replaces the top with m.
func (c *Context) Load(m math.Mat4) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("load", err)
	}
	r.top = m
	r.dirty = true
	return nil
}

// Multiply sets the top to top * m, applying m in the top's local space.
func (c *Context) Multiply(m math.Mat4) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("multiply", err)
	}
	r.compose(m)
	return nil
}

// Store returns a copy of the top without changing any state.
func (c *Context) Store() (math.Mat4, error) {
	r, err := c.acquire()
	if err != nil {
		return math.Mat4{}, c.reject("store", err)
	}
	return r.top, nil
}

func (r *registers) compose(m math.Mat4) {
	r.tmp = r.top.Mul(m)
	r.top = r.tmp
	r.dirty = true
}
