package vulkano

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestFormatRoundTrip(t *testing.T) {
	for f, info := range formatTable {
		got, ok := FormatFromCode(f.Code())
		if !ok {
			t.Errorf("FormatFromCode(%d) not ok for %s", f.Code(), info.name)
			continue
		}
		if got != f {
			t.Errorf("FormatFromCode(%d) = %v, want %v", f.Code(), got, f)
		}
	}
}

func TestFormatFromCodeUnknown(t *testing.T) {
	for _, code := range []int32{-1, 185, 500, 1000000} {
		f, ok := FormatFromCode(code)
		if ok {
			t.Errorf("FormatFromCode(%d) reported ok", code)
		}
		if f != FormatUndefined {
			t.Errorf("FormatFromCode(%d) = %v, want FormatUndefined", code, f)
		}
	}
}

func TestFormatCodesMatchNative(t *testing.T) {
	if FormatUndefined.Code() != 0 {
		t.Error("FormatUndefined should have code 0")
	}
	if FormatR8G8B8A8Unorm.Code() != 37 {
		t.Errorf("FormatR8G8B8A8Unorm code = %d, want 37", FormatR8G8B8A8Unorm.Code())
	}
	if FormatB8G8R8A8Srgb.Code() != 50 {
		t.Errorf("FormatB8G8R8A8Srgb code = %d, want 50", FormatB8G8R8A8Srgb.Code())
	}
	if FormatD32Sfloat.Code() != 126 {
		t.Errorf("FormatD32Sfloat code = %d, want 126", FormatD32Sfloat.Code())
	}
	if FormatASTC12x12SrgbBlock.Code() != 184 {
		t.Errorf("FormatASTC12x12SrgbBlock code = %d, want 184", FormatASTC12x12SrgbBlock.Code())
	}
}

func TestFormatClass(t *testing.T) {
	checks := []struct {
		format Format
		class  FormatClass
	}{
		{FormatR32Sfloat, FormatClassFloat},
		{FormatB8G8R8A8Srgb, FormatClassFloat},
		{FormatR8G8B8A8Uint, FormatClassUint},
		{FormatR16G16Sint, FormatClassSint},
		{FormatD16Unorm, FormatClassDepth},
		{FormatD32Sfloat, FormatClassDepth},
		{FormatS8Uint, FormatClassStencil},
		{FormatD24UnormS8Uint, FormatClassDepthStencil},
		{FormatD32SfloatS8Uint, FormatClassDepthStencil},
		{FormatBC1RGBUnormBlock, FormatClassCompressed},
		{FormatASTC12x12SrgbBlock, FormatClassCompressed},
	}
	for _, c := range checks {
		if got := c.format.Class(); got != c.class {
			t.Errorf("%s class = %v, want %v", c.format, got, c.class)
		}
	}
}

func TestFormatFromName(t *testing.T) {
	f, ok := FormatFromName("B8G8R8A8Srgb")
	if !ok || f != FormatB8G8R8A8Srgb {
		t.Errorf("FormatFromName(B8G8R8A8Srgb) = %v, %v", f, ok)
	}
	if _, ok := FormatFromName("NotAFormat"); ok {
		t.Error("FormatFromName accepted a bogus name")
	}

	for f, info := range formatTable {
		byName, ok := FormatFromName(info.name)
		if !ok || byName != f {
			t.Errorf("FormatFromName(%s) = %v, %v, want %v", info.name, byName, ok, f)
		}
	}
}

func TestFormatString(t *testing.T) {
	if s := FormatD32Sfloat.String(); s != "D32Sfloat" {
		t.Errorf("String() = %q, want D32Sfloat", s)
	}
	if s := Format(9999).String(); s != "Format(9999)" {
		t.Errorf("String() on unknown format = %q", s)
	}
}

func TestFormatAspectFlags(t *testing.T) {
	checks := []struct {
		format Format
		flags  vk.ImageAspectFlags
	}{
		{FormatB8G8R8A8Srgb, vk.ImageAspectFlags(vk.ImageAspectColorBit)},
		{FormatD32Sfloat, vk.ImageAspectFlags(vk.ImageAspectDepthBit)},
		{FormatS8Uint, vk.ImageAspectFlags(vk.ImageAspectStencilBit)},
		{FormatD24UnormS8Uint, vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)},
	}
	for _, c := range checks {
		if got := c.format.AspectFlags(); got != c.flags {
			t.Errorf("%s aspect flags = %v, want %v", c.format, got, c.flags)
		}
	}
}

func TestTagFormat(t *testing.T) {
	if f := TagFormat[R8G8B8A8Unorm](); f != FormatR8G8B8A8Unorm {
		t.Errorf("TagFormat[R8G8B8A8Unorm] = %v", f)
	}
	if f := TagFormat[D32Sfloat](); f != FormatD32Sfloat {
		t.Errorf("TagFormat[D32Sfloat] = %v", f)
	}
	if f := TagFormat[B8G8R8A8Srgb](); f != FormatB8G8R8A8Srgb {
		t.Errorf("TagFormat[B8G8R8A8Srgb] = %v", f)
	}
}
