package vulkano

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeConfig(t, `
title = "teapot"
width = 1280
height = 720
validation = true
swapchain_format = "B8G8R8A8Srgb"
depth_format = "D16Unorm"
shader_dir = "shaders"
log_level = "debug"
`)
	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Title != "teapot" || cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("unexpected window config: %+v", cfg)
	}
	if !cfg.Validation {
		t.Error("validation not set")
	}

	sf, err := cfg.SwapchainFormatValue()
	if err != nil || sf != FormatB8G8R8A8Srgb {
		t.Errorf("swapchain format = %v, %v", sf, err)
	}
	df, err := cfg.DepthFormatValue()
	if err != nil || df != FormatD16Unorm {
		t.Errorf("depth format = %v, %v", df, err)
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(writeConfig(t, `title = "bare"`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	sf, err := cfg.SwapchainFormatValue()
	if err != nil || sf != FormatUndefined {
		t.Errorf("empty swapchain format should resolve to undefined, got %v, %v", sf, err)
	}
	df, err := cfg.DepthFormatValue()
	if err != nil || df != FormatUndefined {
		t.Errorf("empty depth format should resolve to undefined, got %v, %v", df, err)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadAppConfigBadTOML(t *testing.T) {
	if _, err := LoadAppConfig(writeConfig(t, `title = `)); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestAppConfigUnknownFormatName(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.SwapchainFormat = "NotAFormat"
	if _, err := cfg.SwapchainFormatValue(); err == nil {
		t.Error("expected error for unknown swapchain format")
	}
}

func TestAppConfigDepthFormatClass(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DepthFormat = "R8G8B8A8Unorm"
	if _, err := cfg.DepthFormatValue(); err == nil {
		t.Error("expected error for a color format in the depth slot")
	}

	cfg.DepthFormat = "D24UnormS8Uint"
	f, err := cfg.DepthFormatValue()
	if err != nil || f != FormatD24UnormS8Uint {
		t.Errorf("depth-stencil format = %v, %v", f, err)
	}
}
