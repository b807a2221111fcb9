package gum

import (
	"github.com/Faultbox/gum/pkg/math"
)

// Translate moves the coordinate system by v.
func (c *Context) Translate(v math.Vec3) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("translate", err)
	}
	r.compose(math.Translate(v.X, v.Y, v.Z))
	return nil
}

// Scale scales the coordinate system by v.
func (c *Context) Scale(v math.Vec3) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("scale", err)
	}
	r.compose(math.Scale(v.X, v.Y, v.Z))
	return nil
}

// RotateX rotates around the X axis. angle is in radians.
func (c *Context) RotateX(angle float32) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("rotate x", err)
	}
	r.compose(math.RotateX(angle))
	return nil
}

// RotateY rotates around the Y axis. angle is in radians.
func (c *Context) RotateY(angle float32) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("rotate y", err)
	}
	r.compose(math.RotateY(angle))
	return nil
}

// RotateZ rotates around the Z axis. angle is in radians.
func (c *Context) RotateZ(angle float32) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("rotate z", err)
	}
	r.compose(math.RotateZ(angle))
	return nil
}

// RotateXYZ rotates by v.X around X, then v.Y around Y, then v.Z around Z,
// as three separate compositions.
func (c *Context) RotateXYZ(v math.Vec3) error {
	if err := c.RotateX(v.X); err != nil {
		return err
	}
	if err := c.RotateY(v.Y); err != nil {
		return err
	}
	return c.RotateZ(v.Z)
}

// RotateZYX rotates by v.Z around Z, then v.Y around Y, then v.X around X.
func (c *Context) RotateZYX(v math.Vec3) error {
	if err := c.RotateZ(v.Z); err != nil {
		return err
	}
	if err := c.RotateY(v.Y); err != nil {
		return err
	}
	return c.RotateX(v.X)
}

// Ortho applies an orthographic projection.
func (c *Context) Ortho(left, right, bottom, top, near, far float32) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("ortho", err)
	}
	m, err := math.Ortho(left, right, bottom, top, near, far)
	if err != nil {
		return c.reject("ortho", err)
	}
	r.compose(m)
	return nil
}

// Perspective applies a perspective projection. fovy is in degrees.
func (c *Context) Perspective(fovy, aspect, near, far float32) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("perspective", err)
	}
	m, err := math.Perspective(fovy, aspect, near, far)
	if err != nil {
		return c.reject("perspective", err)
	}
	r.compose(m)
	return nil
}

// LookAt rotates into a camera basis looking from eye toward center, then
// translates by -eye in that basis.
func (c *Context) LookAt(eye, center, up math.Vec3) error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("look at", err)
	}
	basis := math.LookAtBasis(eye, center, up)
	ieye := eye.Negate()
	r.compose(basis)
	r.compose(math.Translate(ieye.X, ieye.Y, ieye.Z))
	return nil
}

// FastInverse replaces the top with its rigid-transform inverse. The top
// must be rotation plus translation only.
func (c *Context) FastInverse() error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("fast inverse", err)
	}
	r.top = math.FastInverse(r.top)
	r.dirty = true
	return nil
}

// FullInverse replaces the top with its inverse through a stored copy.
// It shares FastInverse's rigid-transform restriction.
func (c *Context) FullInverse() error {
	r, err := c.acquire()
	if err != nil {
		return c.reject("full inverse", err)
	}
	r.tmp = r.top
	r.top = math.FullInverse(r.tmp)
	r.dirty = true
	return nil
}
