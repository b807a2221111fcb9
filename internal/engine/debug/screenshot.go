// Package debug provides frame capture for inspecting renderer output.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Capture formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// ErrFormat is returned for an unknown capture format.
var ErrFormat = errors.New("unknown screenshot format")

var encoders = map[string]func(io.Writer, image.Image) error{
	FormatPNG: png.Encode,
	FormatBMP: bmp.Encode,
}

// ScreenshotCapture writes framebuffer readbacks as image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
	seq       int
}

// NewScreenshotCapture creates a PNG capture handler writing into outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    FormatPNG,
		now:       time.Now,
	}
}

// SetFormat selects FormatPNG or FormatBMP.
func (sc *ScreenshotCapture) SetFormat(format string) error {
	if _, ok := encoders[format]; !ok {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	sc.format = format
	return nil
}

// CaptureFromPixels saves RGBA pixels of width*height*4 bytes, as returned
// by glReadPixels. Rows are flipped since GL puts the origin bottom-left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := encoders[sc.format](file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", sc.format, err)
	}
	return filename, nil
}

// nextFilename numbers captures so several per second do not collide.
func (sc *ScreenshotCapture) nextFilename() string {
	sc.seq++
	timestamp := sc.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_%03d.%s", sc.prefix, timestamp, sc.seq, sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
