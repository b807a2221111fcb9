// Package cmdlist records rasterizer calls into a flat command stream.
//
// A List satisfies gu.Backend, so a matrix context can drive it in place
// of real hardware. The stream can be inspected, serialized, or replayed
// into another backend later.
package cmdlist

import (
	"encoding/binary"
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/math"
)

// Each command is an opcode followed by its arguments. Index and vertex
// data are copied into the stream as OpRawBuffer blocks; draw commands
// refer to them by the word offset of that block, or noBuffer.
const (
	OpSetMatrix  = iota // int32 mode, then 16 float32: rows x, y, z, w
	OpRawBuffer         // int32 size in bytes, then (size+3)/4 words
	OpDrawArray         // prim, vtype, count, index offset, vertex offset
	OpDrawArrayN        // prim, vtype, count, n, index offset, vertex offset
	OpDrawBezier        // vtype, u count, v count, index offset, vertex offset
	OpDrawSpline        // vtype, u count, v count, u edge, v edge, index offset, vertex offset
)

const noBuffer = ^uint32(0)

// ErrCorrupt is returned when a stream cannot be decoded.
var ErrCorrupt = errors.New("corrupt command list")

// List is a recorded command stream.
type List struct {
	Buf []uint32
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// Reset truncates the list so its storage can be reused.
func (l *List) Reset() {
	l.Buf = l.Buf[:0]
}

// Len returns the stream length in words.
func (l *List) Len() int {
	return len(l.Buf)
}

func (l *List) appendInts(ints ...int) {
	for _, i := range ints {
		l.Buf = append(l.Buf, uint32(int32(i)))
	}
}

func (l *List) appendFloats(floats ...float32) {
	for _, f := range floats {
		l.Buf = append(l.Buf, gomath.Float32bits(f))
	}
}

// rawBuffer copies b into the stream and returns the offset of its block.
func (l *List) rawBuffer(b []byte) uint32 {
	if b == nil {
		return noBuffer
	}
	off := uint32(len(l.Buf))
	l.appendInts(OpRawBuffer, len(b))
	for i := 0; i < len(b); i += 4 {
		var word [4]byte
		copy(word[:], b[i:])
		l.Buf = append(l.Buf, binary.LittleEndian.Uint32(word[:]))
	}
	return off
}

// SetMatrix records a matrix upload.
func (l *List) SetMatrix(mode gu.MatrixMode, m math.Mat4) error {
	l.appendInts(OpSetMatrix, int(mode))
	l.appendFloats(m[:]...)
	return nil
}

// DrawArray records a draw call.
func (l *List) DrawArray(prim gu.Primitive, vtype gu.VertexType, count int, indices, vertices []byte) error {
	ib, vb := l.rawBuffer(indices), l.rawBuffer(vertices)
	l.appendInts(OpDrawArray, int(prim), int(vtype), count)
	l.Buf = append(l.Buf, ib, vb)
	return nil
}

// DrawArrayN records a batched draw call.
func (l *List) DrawArrayN(prim gu.Primitive, vtype gu.VertexType, count, n int, indices, vertices []byte) error {
	ib, vb := l.rawBuffer(indices), l.rawBuffer(vertices)
	l.appendInts(OpDrawArrayN, int(prim), int(vtype), count, n)
	l.Buf = append(l.Buf, ib, vb)
	return nil
}

// DrawBezier records a bezier patch.
func (l *List) DrawBezier(vtype gu.VertexType, uCount, vCount int, indices, vertices []byte) error {
	ib, vb := l.rawBuffer(indices), l.rawBuffer(vertices)
	l.appendInts(OpDrawBezier, int(vtype), uCount, vCount)
	l.Buf = append(l.Buf, ib, vb)
	return nil
}

// DrawSpline records a spline surface.
func (l *List) DrawSpline(vtype gu.VertexType, uCount, vCount, uEdge, vEdge int, indices, vertices []byte) error {
	ib, vb := l.rawBuffer(indices), l.rawBuffer(vertices)
	l.appendInts(OpDrawSpline, int(vtype), uCount, vCount, uEdge, vEdge)
	l.Buf = append(l.Buf, ib, vb)
	return nil
}

// Bytes serializes the stream as little-endian words.
func (l *List) Bytes() []byte {
	out := make([]byte, 0, 4*len(l.Buf))
	for _, w := range l.Buf {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}

// FromBytes parses a stream produced by Bytes.
func FromBytes(b []byte) (*List, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", ErrCorrupt, len(b))
	}
	l := &List{Buf: make([]uint32, len(b)/4)}
	for i := range l.Buf {
		l.Buf[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return l, nil
}
