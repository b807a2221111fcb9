package gu

import "testing"

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		vtype VertexType
		want  Layout
	}{
		{
			name:  "textured float",
			vtype: Texture32BitF | Vertex32BitF | Transform3D,
			want:  Layout{Texture: 0, Color: -1, Normal: -1, Position: 8, Stride: 20},
		},
		{
			name:  "colored float",
			vtype: Color8888 | Vertex32BitF,
			want:  Layout{Texture: -1, Color: 0, Normal: -1, Position: 4, Stride: 16},
		},
		{
			name:  "all float with normal",
			vtype: Texture32BitF | Color8888 | Normal32BitF | Vertex32BitF,
			want:  Layout{Texture: 0, Color: 8, Normal: 12, Position: 24, Stride: 36},
		},
		{
			name:  "16-bit position after 16-bit color",
			vtype: Color5650 | Vertex16Bit,
			want:  Layout{Texture: -1, Color: 0, Normal: -1, Position: 2, Stride: 8},
		},
		{
			name:  "byte texture pads to short position",
			vtype: Texture8Bit | Vertex16Bit,
			want:  Layout{Texture: 0, Color: -1, Normal: -1, Position: 2, Stride: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vtype.Layout(); got != tt.want {
				t.Errorf("Layout() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVertexTypeFields(t *testing.T) {
	v := Texture16Bit | Color4444 | Normal8Bit | Vertex32BitF | Index16Bit | Weights(3) | Vertices(2) | Transform2D

	if v.Texture() != Texture16Bit {
		t.Errorf("Texture() = %#x", v.Texture())
	}
	if v.Color() != Color4444 {
		t.Errorf("Color() = %#x", v.Color())
	}
	if v.Normal() != Normal8Bit {
		t.Errorf("Normal() = %#x", v.Normal())
	}
	if v.Position() != Vertex32BitF {
		t.Errorf("Position() = %#x", v.Position())
	}
	if v.Index() != Index16Bit {
		t.Errorf("Index() = %#x", v.Index())
	}
	if v.WeightCount() != 3 {
		t.Errorf("WeightCount() = %d, want 3", v.WeightCount())
	}
	if v.MorphCount() != 2 {
		t.Errorf("MorphCount() = %d, want 2", v.MorphCount())
	}
	if !v.Through() {
		t.Error("Through() should be true for Transform2D")
	}
}

func TestMatrixModeString(t *testing.T) {
	for i, want := range []string{"projection", "view", "model", "texture"} {
		if got := Modes[i].String(); got != want {
			t.Errorf("Modes[%d].String() = %q, want %q", i, got, want)
		}
	}
	if MatrixMode(7).Valid() {
		t.Error("MatrixMode(7) should not be valid")
	}
}
