// Package gu describes the rasterizer the matrix stack drives: the four
// matrix slots it consumes and the draw calls it executes.
package gu

import (
	"fmt"

	"github.com/Faultbox/gum/pkg/math"
)

// MatrixMode selects one of the rasterizer's transform spaces.
type MatrixMode int

const (
	Projection MatrixMode = iota
	View
	Model
	Texture
)

// NumModes is the number of transform spaces.
const NumModes = 4

// Modes lists every transform space in upload order.
var Modes = [NumModes]MatrixMode{Projection, View, Model, Texture}

// Valid reports whether m names a transform space.
func (m MatrixMode) Valid() bool {
	return m >= Projection && m <= Texture
}

func (m MatrixMode) String() string {
	switch m {
	case Projection:
		return "projection"
	case View:
		return "view"
	case Model:
		return "model"
	case Texture:
		return "texture"
	default:
		return fmt.Sprintf("MatrixMode(%d)", int(m))
	}
}

// Primitive is the topology of a draw call.
type Primitive int

const (
	Points Primitive = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
	Sprites
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineStrip:
		return "line_strip"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	case TriangleFan:
		return "triangle_fan"
	case Sprites:
		return "sprites"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}

// Backend is the fixed-function rasterizer. It holds one active matrix per
// transform space and draws with whatever matrices were last set.
type Backend interface {
	// SetMatrix makes m the active matrix for mode.
	SetMatrix(mode MatrixMode, m math.Mat4) error

	// DrawArray draws count vertices of prim. indices may be nil.
	DrawArray(prim Primitive, vtype VertexType, count int, indices, vertices []byte) error

	// DrawArrayN draws n consecutive batches of count vertices each.
	DrawArrayN(prim Primitive, vtype VertexType, count, n int, indices, vertices []byte) error

	// DrawBezier draws a uCount x vCount bezier patch.
	DrawBezier(vtype VertexType, uCount, vCount int, indices, vertices []byte) error

	// DrawSpline draws a uCount x vCount spline surface with the given
	// edge modes.
	DrawSpline(vtype VertexType, uCount, vCount, uEdge, vEdge int, indices, vertices []byte) error
}
