package camera

import (
	"testing"

	"github.com/Faultbox/gum/pkg/cmdlist"
	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/gum"
	"github.com/Faultbox/gum/pkg/math"
)

func TestOrbitPosition(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{Z: -2.5}, 2.5)

	pos := c.Position()
	if pos != (math.Vec3{}) {
		t.Errorf("Position() = %+v, want origin", pos)
	}

	// Quarter turn of yaw moves the camera to +X of the center
	c.Yaw = math.DegToRad(90)
	pos = c.Position()
	if d := pos.Sub(math.Vec3{X: 2.5, Z: -2.5}).Length(); d > 1e-5 {
		t.Errorf("Position() after yaw = %+v", pos)
	}
}

func TestOrbitRotateClampsPitch(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{}, 10)

	c.Rotate(0, 1000)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, c.MaxPitch)
	}
	c.Rotate(0, -1000)
	if c.Pitch != -c.MaxPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, -c.MaxPitch)
	}

	c.Rotate(2, 0)
	if c.Yaw != 2*c.Sensitivity {
		t.Errorf("yaw = %f, want %f", c.Yaw, 2*c.Sensitivity)
	}
}

func TestOrbitViewMatrixCentersTarget(t *testing.T) {
	c := NewOrbitCamera(math.Vec3{X: 1, Y: 2, Z: 3}, 5)
	c.Rotate(7, 4)

	// The orbit center lands on the -Z axis at Distance
	p := c.ViewMatrix().TransformPoint(c.Center)
	if d := p.Sub(math.Vec3{Z: -5}).Length(); d > 1e-4 {
		t.Errorf("center in view space = %+v, want (0, 0, -5)", p)
	}
}

func TestOrbitApply(t *testing.T) {
	list := cmdlist.New()
	ctx := gum.New(list)
	if err := ctx.SelectSpace(gu.Model); err != nil {
		t.Fatal(err)
	}

	c := NewOrbitCamera(math.Vec3{Z: -2.5}, 2.5)
	if err := c.Apply(ctx); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if ctx.Mode() != gu.Model {
		t.Errorf("mode after Apply = %s, want model", ctx.Mode())
	}
	if err := ctx.Update(); err != nil {
		t.Fatal(err)
	}

	cmds, err := list.Commands()
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 1 || cmds[0].Mode != gu.View {
		t.Fatalf("expected a single view upload, got %+v", cmds)
	}
	if !cmds[0].Matrix.ApproxEqual(math.Identity(), 1e-6) {
		t.Errorf("resting orbit view = %v, want identity", cmds[0].Matrix)
	}
}
