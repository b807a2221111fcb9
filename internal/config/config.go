// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Scene   SceneConfig   `yaml:"scene"`
	Backend BackendConfig `yaml:"backend"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds window settings.
type DisplayConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	// ScreenshotDir receives captures; empty disables them.
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // "png" or "bmp"
}

// Aspect returns width/height.
func (d DisplayConfig) Aspect() float32 {
	if d.Height == 0 {
		return 0
	}
	return float32(d.Width) / float32(d.Height)
}

// SceneConfig holds the camera and cube animation parameters.
type SceneConfig struct {
	FovY     float32 `yaml:"fovy"` // degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`

	// Degrees per frame around each axis
	SpinX float32 `yaml:"spin_x"`
	SpinY float32 `yaml:"spin_y"`
	SpinZ float32 `yaml:"spin_z"`
}

// Backend names.
const (
	BackendGL      = "gl"
	BackendCmdList = "cmdlist"
)

// BackendConfig selects where matrices and draws go.
type BackendConfig struct {
	Kind   string `yaml:"kind"`   // "gl" or "cmdlist"
	Frames int    `yaml:"frames"` // 0 runs until the window closes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      480,
			Height:     272,
			Fullscreen: false,
			VSync:      true,

			ScreenshotFormat: "png",
		},
		Scene: SceneConfig{
			FovY:     75,
			Near:     0.5,
			Far:      1000,
			Distance: 2.5,
			SpinX:    0.79,
			SpinY:    0.98,
			SpinZ:    1.32,
		},
		Backend: BackendConfig{
			Kind:   BackendGL,
			Frames: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
