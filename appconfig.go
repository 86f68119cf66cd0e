package vulkano

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig is the TOML configuration read by applications built on this
// package. Formats are named by their registry name, e.g. "B8G8R8A8Srgb",
// so a config can request formats without touching native codes.
type AppConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Validation bool   `toml:"validation"`

	SwapchainFormat string `toml:"swapchain_format"`
	DepthFormat     string `toml:"depth_format"`

	ShaderDir string `toml:"shader_dir"`
	LogLevel  string `toml:"log_level"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Title:  "vulkano",
		Width:  800,
		Height: 600,
	}
}

// LoadAppConfig reads a TOML config file. Missing fields keep their
// defaults.
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	cfg := DefaultAppConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// SwapchainFormatValue resolves the configured swapchain format name.
// An empty name means "no preference" and resolves to FormatUndefined.
func (c *AppConfig) SwapchainFormatValue() (Format, error) {
	if c.SwapchainFormat == "" {
		return FormatUndefined, nil
	}
	f, ok := FormatFromName(c.SwapchainFormat)
	if !ok {
		return FormatUndefined, fmt.Errorf("unknown swapchain format %q", c.SwapchainFormat)
	}
	return f, nil
}

// DepthFormatValue resolves the configured depth format name and checks
// that it actually is a depth format.
func (c *AppConfig) DepthFormatValue() (Format, error) {
	if c.DepthFormat == "" {
		return FormatUndefined, nil
	}
	f, ok := FormatFromName(c.DepthFormat)
	if !ok {
		return FormatUndefined, fmt.Errorf("unknown depth format %q", c.DepthFormat)
	}
	switch f.Class() {
	case FormatClassDepth, FormatClassDepthStencil:
	default:
		return FormatUndefined, fmt.Errorf("format %s has class %s, want a depth format", f, f.Class())
	}
	return f, nil
}

// Apply pushes the config's choices onto a graphics app. It must be called
// before the app is initialized.
func (c *AppConfig) Apply(app *GraphicsApp) error {
	if c.LogLevel != "" {
		level, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return fmt.Errorf("unknown log level %q", c.LogLevel)
		}
		SetLogLevel(level)
	}

	sf, err := c.SwapchainFormatValue()
	if err != nil {
		return err
	}
	app.PreferredSwapchainFormat = sf

	df, err := c.DepthFormatValue()
	if err != nil {
		return err
	}
	app.DepthFormat = df

	if c.Validation {
		app.EnableDebugging()
	}

	return nil
}
