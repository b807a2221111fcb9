// Package main is the spinning cube demo for the gum matrix stack.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gum/internal/config"
	"github.com/Faultbox/gum/internal/engine/camera"
	"github.com/Faultbox/gum/internal/engine/debug"
	"github.com/Faultbox/gum/internal/engine/input"
	"github.com/Faultbox/gum/internal/engine/renderer"
	"github.com/Faultbox/gum/internal/engine/window"
	"github.com/Faultbox/gum/internal/logger"
	"github.com/Faultbox/gum/pkg/cmdlist"
	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/gum"
	"github.com/Faultbox/gum/pkg/math"
)

const (
	windowTitle = "gum cube"

	// Headless runs need an end; record this many frames when none is set.
	defaultHeadlessFrames = 60
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== gum cube ===", zap.String("backend", cfg.Backend.Kind))
	logger.Sugar.Debugf("Config: %+v", cfg)

	switch cfg.Backend.Kind {
	case config.BackendCmdList:
		err = runHeadless(cfg)
	default:
		err = runWindowed(cfg)
	}
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}

// runHeadless records each frame into a command list and logs what the
// stack sent.
func runHeadless(cfg *config.Config) error {
	frames := cfg.Backend.Frames
	if frames <= 0 {
		frames = defaultHeadlessFrames
	}

	list := cmdlist.New()
	ctx := gum.New(list, gum.WithLogger(logger.Named("gum")))
	vertices := cubeVertices()

	uploads := 0
	for frame := 0; frame < frames; frame++ {
		list.Reset()
		if err := drawFrame(ctx, nil, cfg.Scene, cfg.Display.Aspect(), frame, vertices); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		frameUploads := 0
		for _, mode := range gu.Modes {
			frameUploads += list.MatrixUploads(mode)
		}
		uploads += frameUploads

		logger.Debug("frame recorded",
			zap.Int("frame", frame),
			zap.Int("uploads", frameUploads),
			zap.Int("draws", list.Draws()),
			zap.Int("words", list.Len()),
		)
	}

	logger.Info("headless run finished",
		zap.Int("frames", frames),
		zap.Int("uploads", uploads),
	)
	return nil
}

// runWindowed drives the GL backend until the window closes or the frame
// limit is reached.
func runWindowed(cfg *config.Config) error {
	win, err := window.New(window.ConfigFrom(windowTitle, cfg.Display))
	if err != nil {
		return err
	}
	defer win.Close()

	width, height := win.DrawableSize()
	r, err := renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		return err
	}
	defer r.Close()

	ctx := gum.New(r, gum.WithLogger(logger.Named("gum")))
	in := input.New()
	vertices := cubeVertices()
	aspect := cfg.Display.Aspect()
	cam := camera.NewOrbitCamera(math.Vec3{Z: -cfg.Scene.Distance}, cfg.Scene.Distance)

	var shots *debug.ScreenshotCapture
	if cfg.Display.ScreenshotDir != "" {
		shots = debug.NewScreenshotCapture(cfg.Display.ScreenshotDir, "cube")
		if err := shots.SetFormat(cfg.Display.ScreenshotFormat); err != nil {
			return err
		}
	}

	for frame := 0; cfg.Backend.Frames == 0 || frame < cfg.Backend.Frames; frame++ {
		if in.Update() {
			break
		}
		if _, _, ok := in.Resized(); ok {
			width, height = win.DrawableSize()
			r.Resize(width, height)
			if height > 0 {
				aspect = float32(width) / float32(height)
			}
		}

		steer(cam, in.Events())

		r.Begin()
		if err := drawFrame(ctx, cam, cfg.Scene, aspect, frame, vertices); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}

		last := cfg.Backend.Frames > 0 && frame == cfg.Backend.Frames-1
		if shots != nil && (last || pressed(in.Events(), sdl.K_F12)) {
			capture(shots, r)
		}
		win.SwapBuffers()
	}
	return nil
}

// steer turns the camera with the arrow keys.
func steer(cam *camera.OrbitCamera, events []input.Event) {
	for _, e := range events {
		if e.Type != input.EventKeyDown {
			continue
		}
		switch e.Key {
		case sdl.K_LEFT:
			cam.Rotate(-1, 0)
		case sdl.K_RIGHT:
			cam.Rotate(1, 0)
		case sdl.K_UP:
			cam.Rotate(0, 1)
		case sdl.K_DOWN:
			cam.Rotate(0, -1)
		}
	}
}

func pressed(events []input.Event, key sdl.Keycode) bool {
	for _, e := range events {
		if e.Type == input.EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

// capture saves the back buffer. Failures are logged; the demo keeps going.
func capture(shots *debug.ScreenshotCapture, r *renderer.Renderer) {
	pixels, w, h := r.ReadPixels()
	name, err := shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}
