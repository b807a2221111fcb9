package gu

// VertexType packs the vertex format of a draw call. Each attribute has a
// small field selecting its encoding; zero means the attribute is absent.
type VertexType uint32

const (
	Texture8Bit   VertexType = 1 << 0
	Texture16Bit  VertexType = 2 << 0
	Texture32BitF VertexType = 3 << 0
	textureMask   VertexType = 3 << 0

	Color5650 VertexType = 4 << 2
	Color5551 VertexType = 5 << 2
	Color4444 VertexType = 6 << 2
	Color8888 VertexType = 7 << 2
	colorMask VertexType = 7 << 2

	Normal8Bit   VertexType = 1 << 5
	Normal16Bit  VertexType = 2 << 5
	Normal32BitF VertexType = 3 << 5
	normalMask   VertexType = 3 << 5

	Vertex8Bit   VertexType = 1 << 7
	Vertex16Bit  VertexType = 2 << 7
	Vertex32BitF VertexType = 3 << 7
	vertexMask   VertexType = 3 << 7

	Index8Bit  VertexType = 1 << 11
	Index16Bit VertexType = 2 << 11
	indexMask  VertexType = 3 << 11

	weightShift = 14
	weightMask  VertexType = 7 << weightShift
	morphShift  = 18
	morphMask   VertexType = 7 << morphShift

	Transform3D VertexType = 0 << 23
	Transform2D VertexType = 1 << 23
)

// Weights returns VertexType bits for n skinning weights (1..8).
func Weights(n int) VertexType {
	return VertexType((n-1)&7) << weightShift
}

// Vertices returns VertexType bits for n morph targets (1..8).
func Vertices(n int) VertexType {
	return VertexType((n-1)&7) << morphShift
}

// Texture returns the texture coordinate field.
func (v VertexType) Texture() VertexType { return v & textureMask }

// Color returns the color field.
func (v VertexType) Color() VertexType { return v & colorMask }

// Normal returns the normal field.
func (v VertexType) Normal() VertexType { return v & normalMask }

// Position returns the position field.
func (v VertexType) Position() VertexType { return v & vertexMask }

// Index returns the index field.
func (v VertexType) Index() VertexType { return v & indexMask }

// WeightCount returns the number of skinning weights encoded in v.
func (v VertexType) WeightCount() int {
	return int((v&weightMask)>>weightShift) + 1
}

// MorphCount returns the number of morph targets encoded in v.
func (v VertexType) MorphCount() int {
	return int((v&morphMask)>>morphShift) + 1
}

// Through reports whether v bypasses the transform pipeline.
func (v VertexType) Through() bool { return v&Transform2D != 0 }

// componentSize maps an attribute field to bytes per component.
func componentSize(field VertexType, b8, b16, f32 VertexType) int {
	switch field {
	case b8:
		return 1
	case b16:
		return 2
	case f32:
		return 4
	default:
		return 0
	}
}

// Layout gives the byte offset of each attribute inside one vertex and the
// total stride. Absent attributes have offset -1. Attributes follow the
// order texture, color, normal, position.
type Layout struct {
	Texture, Color, Normal, Position int
	Stride                           int
}

// Layout computes the interleaved layout for a single morph target. Each
// attribute is padded to its own component size and the stride to the
// widest one.
func (v VertexType) Layout() Layout {
	l := Layout{Texture: -1, Color: -1, Normal: -1, Position: -1}
	off, widest := 0, 1
	align := func(n int) {
		if n > widest {
			widest = n
		}
		if off%n != 0 {
			off += n - off%n
		}
	}

	if sz := componentSize(v.Texture(), Texture8Bit, Texture16Bit, Texture32BitF); sz > 0 {
		align(sz)
		l.Texture = off
		off += 2 * sz
	}
	if c := v.Color(); c != 0 {
		sz := 2
		if c == Color8888 {
			sz = 4
		}
		align(sz)
		l.Color = off
		off += sz
	}
	if sz := componentSize(v.Normal(), Normal8Bit, Normal16Bit, Normal32BitF); sz > 0 {
		align(sz)
		l.Normal = off
		off += 3 * sz
	}
	if sz := componentSize(v.Position(), Vertex8Bit, Vertex16Bit, Vertex32BitF); sz > 0 {
		align(sz)
		l.Position = off
		off += 3 * sz
	}

	align(widest)
	l.Stride = off
	return l
}
