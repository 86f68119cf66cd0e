package vulkano

import (
	"testing"
)

func TestAsTypedImage(t *testing.T) {
	img := &ImageResource{}
	img.Format = FormatR8G8B8A8Unorm

	typed, err := AsTypedImage[R8G8B8A8Unorm](img)
	if err != nil {
		t.Fatalf("wrap failed: %v", err)
	}
	if typed.Format != FormatR8G8B8A8Unorm {
		t.Errorf("wrapped image format = %v", typed.Format)
	}

	if _, err := AsTypedImage[D32Sfloat](img); err == nil {
		t.Error("expected error wrapping a color image as a depth tag")
	}
}

func TestTexelBufferFormat(t *testing.T) {
	buf := &BufferResource{}
	typed := AsTexelBuffer[R32Sfloat](buf)
	if typed.TexelFormat() != FormatR32Sfloat {
		t.Errorf("texel format = %v", typed.TexelFormat())
	}
}
