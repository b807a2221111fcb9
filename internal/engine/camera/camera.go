// Package camera provides cameras that drive the view space of a matrix
// stack.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/gum"
	"github.com/Faultbox/gum/pkg/math"
)

// OrbitCamera orbits around a center point. With zero pitch and yaw it sits
// Distance units along +Z from the center looking down -Z.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Pitch stays within ±MaxPitch. MaxPitch below π/2 keeps the up vector
	// off the view direction.
	MaxPitch float32

	// Radians per Rotate step
	Sensitivity float32
}

// NewOrbitCamera creates a camera looking at center from distance.
func NewOrbitCamera(center math.Vec3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Center:      center,
		Distance:    distance,
		MaxPitch:    1.5,
		Sensitivity: 0.05,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := math32.Cos(c.Pitch)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cp * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * cp * math32.Cos(c.Yaw),
	})
}

// Rotate moves the camera by dYaw and dPitch steps.
func (c *OrbitCamera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw * c.Sensitivity
	c.Pitch += dPitch * c.Sensitivity

	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// Apply reloads the view space of ctx with this camera. The previously
// selected space is restored.
func (c *OrbitCamera) Apply(ctx *gum.Context) error {
	prev := ctx.Mode()
	if err := ctx.SelectSpace(gu.View); err != nil {
		return err
	}
	if err := ctx.LoadIdentity(); err != nil {
		return err
	}
	if err := ctx.LookAt(c.Position(), c.Center, math.Vec3{Y: 1}); err != nil {
		return err
	}
	return ctx.SelectSpace(prev)
}
