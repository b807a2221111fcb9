package renderer

import (
	"encoding/binary"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/gum/pkg/gu"
)

// Shader attribute locations.
const (
	locTexCoord = 0
	locColor    = 1
	locNormal   = 2
	locPosition = 3
)

// attrib describes one vertex attribute as glVertexAttribPointer needs it.
type attrib struct {
	location   uint32
	size       int32
	xtype      uint32
	normalized bool
	offset     int
}

// primitiveMode maps a primitive to its GL draw mode.
func primitiveMode(p gu.Primitive) (uint32, error) {
	switch p {
	case gu.Points:
		return gl.POINTS, nil
	case gu.Lines:
		return gl.LINES, nil
	case gu.LineStrip:
		return gl.LINE_STRIP, nil
	case gu.Triangles:
		return gl.TRIANGLES, nil
	case gu.TriangleStrip:
		return gl.TRIANGLE_STRIP, nil
	case gu.TriangleFan:
		return gl.TRIANGLE_FAN, nil
	default:
		return 0, fmt.Errorf("%w: primitive %s", ErrUnsupported, p)
	}
}

// indexFormat returns the GL element type and its size in bytes. size is 0
// for non-indexed vertex types.
func indexFormat(vtype gu.VertexType) (xtype uint32, size int) {
	switch vtype.Index() {
	case gu.Index8Bit:
		return gl.UNSIGNED_BYTE, 1
	case gu.Index16Bit:
		return gl.UNSIGNED_SHORT, 2
	default:
		return 0, 0
	}
}

// maxIndex returns the largest of the first count little-endian indices of
// size bytes each.
func maxIndex(indices []byte, size, count int) int {
	hi := 0
	for i := 0; i < count; i++ {
		var v int
		switch size {
		case 1:
			v = int(indices[i])
		case 2:
			v = int(binary.LittleEndian.Uint16(indices[2*i:]))
		}
		if v > hi {
			hi = v
		}
	}
	return hi
}

// attributes translates a vertex type into attribute pointers and the vertex
// stride. Packed 16-bit colors and multiple morph targets have no direct GL
// attribute equivalent.
func attributes(vtype gu.VertexType) ([]attrib, int, error) {
	if vtype.MorphCount() > 1 {
		return nil, 0, fmt.Errorf("%w: %d morph targets", ErrUnsupported, vtype.MorphCount())
	}
	if vtype.Position() == 0 {
		return nil, 0, fmt.Errorf("%w: vertex type %#x has no position", ErrUnsupported, uint32(vtype))
	}

	layout := vtype.Layout()
	attrs := make([]attrib, 0, 4)

	switch vtype.Texture() {
	case gu.Texture8Bit:
		attrs = append(attrs, attrib{locTexCoord, 2, gl.UNSIGNED_BYTE, true, layout.Texture})
	case gu.Texture16Bit:
		attrs = append(attrs, attrib{locTexCoord, 2, gl.UNSIGNED_SHORT, true, layout.Texture})
	case gu.Texture32BitF:
		attrs = append(attrs, attrib{locTexCoord, 2, gl.FLOAT, false, layout.Texture})
	}

	switch vtype.Color() {
	case 0:
	case gu.Color8888:
		attrs = append(attrs, attrib{locColor, 4, gl.UNSIGNED_BYTE, true, layout.Color})
	default:
		return nil, 0, fmt.Errorf("%w: packed color format %#x", ErrUnsupported, uint32(vtype.Color()))
	}

	switch vtype.Normal() {
	case gu.Normal8Bit:
		attrs = append(attrs, attrib{locNormal, 3, gl.BYTE, true, layout.Normal})
	case gu.Normal16Bit:
		attrs = append(attrs, attrib{locNormal, 3, gl.SHORT, true, layout.Normal})
	case gu.Normal32BitF:
		attrs = append(attrs, attrib{locNormal, 3, gl.FLOAT, false, layout.Normal})
	}

	switch vtype.Position() {
	case gu.Vertex8Bit:
		attrs = append(attrs, attrib{locPosition, 3, gl.BYTE, true, layout.Position})
	case gu.Vertex16Bit:
		attrs = append(attrs, attrib{locPosition, 3, gl.SHORT, true, layout.Position})
	case gu.Vertex32BitF:
		attrs = append(attrs, attrib{locPosition, 3, gl.FLOAT, false, layout.Position})
	}

	return attrs, layout.Stride, nil
}
