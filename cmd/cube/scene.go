package main

import (
	"encoding/binary"
	gomath "math"

	"github.com/Faultbox/gum/internal/config"
	"github.com/Faultbox/gum/internal/engine/camera"
	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/gum"
	"github.com/Faultbox/gum/pkg/math"
)

// cubeVertexType matches the vertex struct below: uv, ABGR color, xyz.
const cubeVertexType = gu.Texture32BitF | gu.Color8888 | gu.Vertex32BitF | gu.Transform3D

type vertex struct {
	u, v    float32
	color   uint32
	x, y, z float32
}

// faceColors are ABGR, one per cube face.
var faceColors = [6]uint32{
	0xff3366ff, 0xff33ff66, 0xffff6633,
	0xff33ffff, 0xffff33ff, 0xffffff33,
}

// cubeFaces lists the 12 triangles of a unit cube, two per face, clockwise.
var cubeFaces = [12][3][5]float32{
	{{0, 0, -1, -1, 1}, {1, 0, -1, 1, 1}, {1, 1, 1, 1, 1}},
	{{0, 0, -1, -1, 1}, {1, 1, 1, 1, 1}, {0, 1, 1, -1, 1}},

	{{0, 0, -1, -1, -1}, {1, 0, 1, -1, -1}, {1, 1, 1, 1, -1}},
	{{0, 0, -1, -1, -1}, {1, 1, 1, 1, -1}, {0, 1, -1, 1, -1}},

	{{0, 0, 1, -1, -1}, {1, 0, 1, -1, 1}, {1, 1, 1, 1, 1}},
	{{0, 0, 1, -1, -1}, {1, 1, 1, 1, 1}, {0, 1, 1, 1, -1}},

	{{0, 0, -1, -1, -1}, {1, 0, -1, 1, -1}, {1, 1, -1, 1, 1}},
	{{0, 0, -1, -1, -1}, {1, 1, -1, 1, 1}, {0, 1, -1, -1, 1}},

	{{0, 0, -1, 1, -1}, {1, 0, 1, 1, -1}, {1, 1, 1, 1, 1}},
	{{0, 0, -1, 1, -1}, {1, 1, 1, 1, 1}, {0, 1, -1, 1, 1}},

	{{0, 0, -1, -1, -1}, {1, 0, -1, -1, 1}, {1, 1, 1, -1, 1}},
	{{0, 0, -1, -1, -1}, {1, 1, 1, -1, 1}, {0, 1, 1, -1, -1}},
}

const cubeVertexCount = len(cubeFaces) * 3

// cubeVertices encodes the cube in cubeVertexType layout.
func cubeVertices() []byte {
	stride := cubeVertexType.Layout().Stride
	buf := make([]byte, 0, cubeVertexCount*stride)

	for i, tri := range cubeFaces {
		for _, p := range tri {
			buf = appendVertex(buf, vertex{
				u: p[0], v: p[1],
				color: faceColors[i/2],
				x:     p[2], y: p[3], z: p[4],
			})
		}
	}
	return buf
}

func appendVertex(buf []byte, v vertex) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.u))
	buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.v))
	buf = binary.LittleEndian.AppendUint32(buf, v.color)
	buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.x))
	buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.y))
	buf = binary.LittleEndian.AppendUint32(buf, gomath.Float32bits(v.z))
	return buf
}

// rotation returns the cube angles in radians after frame frames.
func rotation(scene config.SceneConfig, frame int) math.Vec3 {
	t := float32(frame)
	return math.Vec3{
		X: math.DegToRad(t * scene.SpinX),
		Y: math.DegToRad(t * scene.SpinY),
		Z: math.DegToRad(t * scene.SpinZ),
	}
}

// drawFrame rebuilds every transform space and draws the cube. A nil cam
// leaves the view at identity.
func drawFrame(ctx *gum.Context, cam *camera.OrbitCamera, scene config.SceneConfig, aspect float32, frame int, vertices []byte) error {
	if err := ctx.SelectSpace(gu.Projection); err != nil {
		return err
	}
	if err := ctx.LoadIdentity(); err != nil {
		return err
	}
	if err := ctx.Perspective(scene.FovY, aspect, scene.Near, scene.Far); err != nil {
		return err
	}

	if cam != nil {
		if err := cam.Apply(ctx); err != nil {
			return err
		}
	} else {
		if err := ctx.SelectSpace(gu.View); err != nil {
			return err
		}
		if err := ctx.LoadIdentity(); err != nil {
			return err
		}
	}

	if err := ctx.SelectSpace(gu.Texture); err != nil {
		return err
	}
	if err := ctx.LoadIdentity(); err != nil {
		return err
	}

	if err := ctx.SelectSpace(gu.Model); err != nil {
		return err
	}
	if err := ctx.LoadIdentity(); err != nil {
		return err
	}
	if err := ctx.Translate(math.Vec3{Z: -scene.Distance}); err != nil {
		return err
	}
	if err := ctx.RotateXYZ(rotation(scene, frame)); err != nil {
		return err
	}

	return ctx.DrawArray(gu.Triangles, cubeVertexType, cubeVertexCount, nil, vertices)
}
