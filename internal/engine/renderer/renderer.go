// Package renderer executes matrix uploads and draw calls with OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gum/internal/logger"
	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/math"
)

// ErrUnsupported is returned for draws the core profile cannot express.
var ErrUnsupported = errors.New("unsupported by the GL backend")

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer is a gu.Backend that draws through OpenGL 4.1 core. One matrix
// uniform per transform space holds the last uploaded matrix.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	matrices  [gu.NumModes]int32
	uScreen   int32
	uThrough  int32
	uTextured int32
}

var _ gu.Backend = (*Renderer)(nil)

var uniformNames = [gu.NumModes]string{
	gu.Projection: "uProjection",
	gu.View:       "uView",
	gu.Model:      "uModel",
	gu.Texture:    "uTexture",
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = compileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	gl.UseProgram(r.program)

	for _, mode := range gu.Modes {
		r.matrices[mode] = uniform(r.program, uniformNames[mode])
		identity := math.Identity()
		gl.UniformMatrix4fv(r.matrices[mode], 1, false, &identity[0])
	}
	r.uScreen = uniform(r.program, "uScreen")
	r.uThrough = uniform(r.program, "uThrough")
	r.uTextured = uniform(r.program, "uTextured")

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	r.Resize(cfg.Width, cfg.Height)

	r.log.Debug("renderer ready",
		zap.Uint32("program", r.program),
		zap.Uint32("vao", r.vao),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize sets the viewport and the screen mapping used by through-mode
// vertices.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))

	// A minimized window reports a zero size; keep the previous mapping.
	screen, err := math.Ortho(0, float32(width), float32(height), 0, -1, 1)
	if err == nil {
		gl.UniformMatrix4fv(r.uScreen, 1, false, &screen[0])
	}

	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetMatrix uploads m as the active matrix for mode. The row-major x, y, z, w
// layout is what GL reads as column-major, so no transpose is needed.
func (r *Renderer) SetMatrix(mode gu.MatrixMode, m math.Mat4) error {
	if !mode.Valid() {
		return fmt.Errorf("set matrix: invalid mode %s", mode)
	}
	gl.UniformMatrix4fv(r.matrices[mode], 1, false, &m[0])
	return nil
}

// DrawArray draws count vertices of prim.
func (r *Renderer) DrawArray(prim gu.Primitive, vtype gu.VertexType, count int, indices, vertices []byte) error {
	return r.draw(prim, vtype, count, 1, indices, vertices)
}

// DrawArrayN draws n batches of count vertices each, one GL draw per batch.
func (r *Renderer) DrawArrayN(prim gu.Primitive, vtype gu.VertexType, count, n int, indices, vertices []byte) error {
	return r.draw(prim, vtype, count, n, indices, vertices)
}

// DrawBezier is not available in the core profile.
func (r *Renderer) DrawBezier(vtype gu.VertexType, uCount, vCount int, indices, vertices []byte) error {
	r.log.Warn("bezier patch skipped",
		zap.Int("u", uCount),
		zap.Int("v", vCount),
	)
	return fmt.Errorf("draw bezier: %w", ErrUnsupported)
}

// DrawSpline is not available in the core profile.
func (r *Renderer) DrawSpline(vtype gu.VertexType, uCount, vCount, uEdge, vEdge int, indices, vertices []byte) error {
	r.log.Warn("spline surface skipped",
		zap.Int("u", uCount),
		zap.Int("v", vCount),
	)
	return fmt.Errorf("draw spline: %w", ErrUnsupported)
}

func (r *Renderer) draw(prim gu.Primitive, vtype gu.VertexType, count, n int, indices, vertices []byte) error {
	mode, err := primitiveMode(prim)
	if err != nil {
		r.log.Warn("draw skipped", zap.Stringer("primitive", prim), zap.Error(err))
		return err
	}
	attrs, stride, err := attributes(vtype)
	if err != nil {
		r.log.Warn("draw skipped", zap.Uint32("vtype", uint32(vtype)), zap.Error(err))
		return err
	}
	if count <= 0 || n <= 0 {
		return nil
	}

	itype, isize := indexFormat(vtype)
	indexed := isize > 0 && len(indices) > 0
	total := count * n
	if indexed {
		if len(indices) < total*isize {
			return fmt.Errorf("draw: %d index bytes for %d vertices", len(indices), total)
		}
		if hi := maxIndex(indices, isize, total); (hi+1)*stride > len(vertices) {
			return fmt.Errorf("draw: index %d outside %d vertex bytes of stride %d", hi, len(vertices), stride)
		}
	} else if len(vertices) < total*stride {
		return fmt.Errorf("draw: %d vertex bytes for %d vertices of stride %d", len(vertices), total, stride)
	}
	if len(vertices) == 0 {
		return fmt.Errorf("draw: no vertex data")
	}

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.STREAM_DRAW)

	r.bindAttributes(attrs, stride)

	gl.Uniform1i(r.uThrough, boolToInt(vtype.Through()))
	gl.Uniform1i(r.uTextured, boolToInt(vtype.Texture() != 0))

	if indexed {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, total*isize, gl.Ptr(indices), gl.STREAM_DRAW)
		for i := 0; i < n; i++ {
			gl.DrawElements(mode, int32(count), itype, gl.PtrOffset(i*count*isize))
		}
		return nil
	}

	for i := 0; i < n; i++ {
		gl.DrawArrays(mode, int32(i*count), int32(count))
	}
	return nil
}

// bindAttributes points each present attribute into the bound VBO. Absent
// attributes fall back to constant values: white for color, zero otherwise.
func (r *Renderer) bindAttributes(attrs []attrib, stride int) {
	for loc := uint32(locTexCoord); loc <= locPosition; loc++ {
		gl.DisableVertexAttribArray(loc)
	}
	gl.VertexAttrib4f(locColor, 1, 1, 1, 1)
	gl.VertexAttrib2f(locTexCoord, 0, 0)
	gl.VertexAttrib3f(locNormal, 0, 0, 0)

	for _, a := range attrs {
		gl.VertexAttribPointer(a.location, a.size, a.xtype, a.normalized, int32(stride), gl.PtrOffset(a.offset))
		gl.EnableVertexAttribArray(a.location)
	}
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
