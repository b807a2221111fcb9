// Package gum keeps one matrix stack per transform space and uploads only
// the spaces that changed, right before the rasterizer needs them.
//
// All transform calls act on the top of the selected space's stack. The
// selected top lives in a scratch register set until SelectSpace or Update
// writes it back, so a burst of transforms between two draws is uploaded
// once, as a single composed matrix.
package gum

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/math"
)

// StackDepth is the number of slots in each transform space's stack.
const StackDepth = 32

var (
	ErrStackOverflow  = errors.New("matrix stack overflow")
	ErrStackUnderflow = errors.New("matrix stack underflow")
	ErrUninitialized  = errors.New("matrix context not initialized")
	ErrInvalidMode    = errors.New("invalid matrix mode")

	// ErrDomain is returned for degenerate projection parameters.
	ErrDomain = math.ErrDomain
)

// State is the lifecycle state of a Context.
type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

type stack struct {
	slots [StackDepth]math.Mat4
	sp    int
	dirty bool
}

func (s *stack) top() math.Mat4 { return s.slots[s.sp] }

// registers is the scratch set. top is the authoritative copy of the
// selected space's top matrix; tmp holds intermediates of multi-step
// compositions.
type registers struct {
	top   math.Mat4
	dirty bool
	tmp   math.Mat4
}

// Context owns the four matrix stacks and the backend they sync to.
// It is not safe for concurrent use; see Locked.
type Context struct {
	backend gu.Backend
	log     *zap.Logger

	stacks [gu.NumModes]stack
	mode   gu.MatrixMode
	regs   *registers
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for sync and rejection messages.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a context that syncs to backend. Every stack starts zeroed
// with Projection selected; call LoadIdentity to get a usable matrix.
func New(backend gu.Backend, opts ...Option) *Context {
	c := &Context{
		backend: backend,
		log:     zap.NewNop(),
		mode:    gu.Projection,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// acquire returns the scratch registers, loading them from the selected
// stack on first use.
func (c *Context) acquire() (*registers, error) {
	if c == nil || c.backend == nil {
		return nil, ErrUninitialized
	}
	if c.regs == nil {
		c.regs = &registers{top: c.stacks[c.mode].top()}
		c.logger().Debug("matrix context ready")
	}
	return c.regs, nil
}

func (c *Context) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// reject logs a refused operation and wraps err with it.
func (c *Context) reject(op string, err error) error {
	if c != nil {
		c.logger().Debug("matrix operation rejected",
			zap.String("op", op),
			zap.Stringer("mode", c.mode),
			zap.Error(err),
		)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// writeBack stores the scratch top into its slot and hands the scratch
// dirty bit to the selected stack.
func (c *Context) writeBack(r *registers) {
	st := &c.stacks[c.mode]
	st.slots[st.sp] = r.top
	st.dirty = r.dirty
}

// State reports whether the scratch registers have been acquired.
func (c *Context) State() State {
	if c == nil || c.regs == nil {
		return Uninitialized
	}
	return Ready
}

// Mode returns the selected transform space.
func (c *Context) Mode() gu.MatrixMode {
	if c == nil {
		return gu.Projection
	}
	return c.mode
}

// Depth returns the stack pointer of the selected space.
func (c *Context) Depth() int {
	if c == nil {
		return 0
	}
	return c.stacks[c.mode].sp
}

// Dirty reports whether mode has changed since it was last uploaded.
func (c *Context) Dirty(mode gu.MatrixMode) bool {
	if c == nil || !mode.Valid() {
		return false
	}
	if mode == c.mode && c.regs != nil && c.regs.dirty {
		return true
	}
	return c.stacks[mode].dirty
}

// SelectSpace makes mode the target of subsequent operations. Nothing is
// uploaded.
func (c *Context) SelectSpace(mode gu.MatrixMode) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("select space", err)
	}
	if !mode.Valid() {
		return c.reject("select space", fmt.Errorf("%w: %d", ErrInvalidMode, int(mode)))
	}

	c.writeBack(r)
	c.mode = mode
	st := &c.stacks[mode]
	r.top = st.top()
	r.dirty = st.dirty
	return nil
}

// Update uploads every dirty space to the backend and clears its flag.
// Calling it again without changes uploads nothing.
func (c *Context) Update() error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("update", err)
	}

	c.writeBack(r)
	// The scratch bit follows the selected stack, even on a failed upload.
	defer func() { r.dirty = c.stacks[c.mode].dirty }()

	for _, mode := range gu.Modes {
		s := &c.stacks[mode]
		if !s.dirty {
			continue
		}
		if err := c.backend.SetMatrix(mode, s.top()); err != nil {
			return fmt.Errorf("sync %s matrix: %w", mode, err)
		}
		s.dirty = false
		c.logger().Debug("matrix synced",
			zap.Stringer("mode", mode),
			zap.Int("depth", s.sp),
		)
	}
	return nil
}

// DrawArray syncs dirty matrices and draws count vertices.
func (c *Context) DrawArray(prim gu.Primitive, vtype gu.VertexType, count int, indices, vertices []byte) error {
	if err := c.Update(); err != nil {
		return err
	}
	return c.backend.DrawArray(prim, vtype, count, indices, vertices)
}

// DrawArrayN syncs dirty matrices and draws n batches of count vertices.
func (c *Context) DrawArrayN(prim gu.Primitive, vtype gu.VertexType, count, n int, indices, vertices []byte) error {
	if err := c.Update(); err != nil {
		return err
	}
	return c.backend.DrawArrayN(prim, vtype, count, n, indices, vertices)
}

// DrawBezier syncs dirty matrices and draws a bezier patch.
func (c *Context) DrawBezier(vtype gu.VertexType, uCount, vCount int, indices, vertices []byte) error {
	if err := c.Update(); err != nil {
		return err
	}
	return c.backend.DrawBezier(vtype, uCount, vCount, indices, vertices)
}

// DrawSpline syncs dirty matrices and draws a spline surface.
func (c *Context) DrawSpline(vtype gu.VertexType, uCount, vCount, uEdge, vEdge int, indices, vertices []byte) error {
	if err := c.Update(); err != nil {
		return err
	}
	return c.backend.DrawSpline(vtype, uCount, vCount, uEdge, vEdge, indices, vertices)
}
