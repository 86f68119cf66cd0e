package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// FormatClass partitions formats by how their texel or element data is
// interpreted by the device.
type FormatClass int

const (
	FormatClassFloat FormatClass = iota
	FormatClassUint
	FormatClassSint
	FormatClassDepth
	FormatClassStencil
	FormatClassDepthStencil
	FormatClassCompressed
)

func (c FormatClass) String() string {
	switch c {
	case FormatClassFloat:
		return "Float"
	case FormatClassUint:
		return "Uint"
	case FormatClassSint:
		return "Sint"
	case FormatClassDepth:
		return "Depth"
	case FormatClassStencil:
		return "Stencil"
	case FormatClassDepthStencil:
		return "DepthStencil"
	case FormatClassCompressed:
		return "Compressed"
	}
	return fmt.Sprintf("FormatClass(%d)", int(c))
}

// Format identifies one of the core Vulkan texel and vertex element formats.
// The numeric value of each constant is the VkFormat code it stands for, so
// conversion in either direction is free. Working with Format instead of raw
// vk.Format values lets the rest of the package switch exhaustively over the
// defined vocabulary and lets typed buffers and images name their element
// format as part of their type (see FormatTag).
//
// A word on the suffixes, which follow the Vulkan spec:
//
//	Unorm    unsigned integers normalized into [0.0, 1.0] when read
//	Snorm    signed integers normalized into [-1.0, 1.0]
//	Uscaled  unsigned integers converted to their float value as-is
//	Sscaled  like Uscaled but signed
//	Uint     unsigned integers, no conversion
//	Sint     signed integers, no conversion
//	Ufloat   unsigned floats, no conversion (rare)
//	Sfloat   regular floats, no conversion
//	Srgb     like Unorm, but read through the sRGB transfer curve
//	         (the alpha channel, when present, stays linear)
type Format int32

const (
	FormatUndefined Format = iota
	FormatR4G4UnormPack8
	FormatR4G4B4A4UnormPack16
	FormatB4G4R4A4UnormPack16
	FormatR5G6B5UnormPack16
	FormatB5G6R5UnormPack16
	FormatR5G5B5A1UnormPack16
	FormatB5G5R5A1UnormPack16
	FormatA1R5G5B5UnormPack16
	FormatR8Unorm
	FormatR8Snorm
	FormatR8Uscaled
	FormatR8Sscaled
	FormatR8Uint
	FormatR8Sint
	FormatR8Srgb
	FormatR8G8Unorm
	FormatR8G8Snorm
	FormatR8G8Uscaled
	FormatR8G8Sscaled
	FormatR8G8Uint
	FormatR8G8Sint
	FormatR8G8Srgb
	FormatR8G8B8Unorm
	FormatR8G8B8Snorm
	FormatR8G8B8Uscaled
	FormatR8G8B8Sscaled
	FormatR8G8B8Uint
	FormatR8G8B8Sint
	FormatR8G8B8Srgb
	FormatB8G8R8Unorm
	FormatB8G8R8Snorm
	FormatB8G8R8Uscaled
	FormatB8G8R8Sscaled
	FormatB8G8R8Uint
	FormatB8G8R8Sint
	FormatB8G8R8Srgb
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8Snorm
	FormatR8G8B8A8Uscaled
	FormatR8G8B8A8Sscaled
	FormatR8G8B8A8Uint
	FormatR8G8B8A8Sint
	FormatR8G8B8A8Srgb
	FormatB8G8R8A8Unorm
	FormatB8G8R8A8Snorm
	FormatB8G8R8A8Uscaled
	FormatB8G8R8A8Sscaled
	FormatB8G8R8A8Uint
	FormatB8G8R8A8Sint
	FormatB8G8R8A8Srgb
	FormatA8B8G8R8UnormPack32
	FormatA8B8G8R8SnormPack32
	FormatA8B8G8R8UscaledPack32
	FormatA8B8G8R8SscaledPack32
	FormatA8B8G8R8UintPack32
	FormatA8B8G8R8SintPack32
	FormatA8B8G8R8SrgbPack32
	FormatA2R10G10B10UnormPack32
	FormatA2R10G10B10SnormPack32
	FormatA2R10G10B10UscaledPack32
	FormatA2R10G10B10SscaledPack32
	FormatA2R10G10B10UintPack32
	FormatA2R10G10B10SintPack32
	FormatA2B10G10R10UnormPack32
	FormatA2B10G10R10SnormPack32
	FormatA2B10G10R10UscaledPack32
	FormatA2B10G10R10SscaledPack32
	FormatA2B10G10R10UintPack32
	FormatA2B10G10R10SintPack32
	FormatR16Unorm
	FormatR16Snorm
	FormatR16Uscaled
	FormatR16Sscaled
	FormatR16Uint
	FormatR16Sint
	FormatR16Sfloat
	FormatR16G16Unorm
	FormatR16G16Snorm
	FormatR16G16Uscaled
	FormatR16G16Sscaled
	FormatR16G16Uint
	FormatR16G16Sint
	FormatR16G16Sfloat
	FormatR16G16B16Unorm
	FormatR16G16B16Snorm
	FormatR16G16B16Uscaled
	FormatR16G16B16Sscaled
	FormatR16G16B16Uint
	FormatR16G16B16Sint
	FormatR16G16B16Sfloat
	FormatR16G16B16A16Unorm
	FormatR16G16B16A16Snorm
	FormatR16G16B16A16Uscaled
	FormatR16G16B16A16Sscaled
	FormatR16G16B16A16Uint
	FormatR16G16B16A16Sint
	FormatR16G16B16A16Sfloat
	FormatR32Uint
	FormatR32Sint
	FormatR32Sfloat
	FormatR32G32Uint
	FormatR32G32Sint
	FormatR32G32Sfloat
	FormatR32G32B32Uint
	FormatR32G32B32Sint
	FormatR32G32B32Sfloat
	FormatR32G32B32A32Uint
	FormatR32G32B32A32Sint
	FormatR32G32B32A32Sfloat
	FormatR64Uint
	FormatR64Sint
	FormatR64Sfloat
	FormatR64G64Uint
	FormatR64G64Sint
	FormatR64G64Sfloat
	FormatR64G64B64Uint
	FormatR64G64B64Sint
	FormatR64G64B64Sfloat
	FormatR64G64B64A64Uint
	FormatR64G64B64A64Sint
	FormatR64G64B64A64Sfloat
	FormatB10G11R11UfloatPack32
	FormatE5B9G9R9UfloatPack32
	FormatD16Unorm
	FormatX8D24UnormPack32
	FormatD32Sfloat
	FormatS8Uint
	FormatD16UnormS8Uint
	FormatD24UnormS8Uint
	FormatD32SfloatS8Uint
	FormatBC1RGBUnormBlock
	FormatBC1RGBSrgbBlock
	FormatBC1RGBAUnormBlock
	FormatBC1RGBASrgbBlock
	FormatBC2UnormBlock
	FormatBC2SrgbBlock
	FormatBC3UnormBlock
	FormatBC3SrgbBlock
	FormatBC4UnormBlock
	FormatBC4SnormBlock
	FormatBC5UnormBlock
	FormatBC5SnormBlock
	FormatBC6HUfloatBlock
	FormatBC6HSfloatBlock
	FormatBC7UnormBlock
	FormatBC7SrgbBlock
	FormatETC2R8G8B8UnormBlock
	FormatETC2R8G8B8SrgbBlock
	FormatETC2R8G8B8A1UnormBlock
	FormatETC2R8G8B8A1SrgbBlock
	FormatETC2R8G8B8A8UnormBlock
	FormatETC2R8G8B8A8SrgbBlock
	FormatEACR11UnormBlock
	FormatEACR11SnormBlock
	FormatEACR11G11UnormBlock
	FormatEACR11G11SnormBlock
	FormatASTC4x4UnormBlock
	FormatASTC4x4SrgbBlock
	FormatASTC5x4UnormBlock
	FormatASTC5x4SrgbBlock
	FormatASTC5x5UnormBlock
	FormatASTC5x5SrgbBlock
	FormatASTC6x5UnormBlock
	FormatASTC6x5SrgbBlock
	FormatASTC6x6UnormBlock
	FormatASTC6x6SrgbBlock
	FormatASTC8x5UnormBlock
	FormatASTC8x5SrgbBlock
	FormatASTC8x6UnormBlock
	FormatASTC8x6SrgbBlock
	FormatASTC8x8UnormBlock
	FormatASTC8x8SrgbBlock
	FormatASTC10x5UnormBlock
	FormatASTC10x5SrgbBlock
	FormatASTC10x6UnormBlock
	FormatASTC10x6SrgbBlock
	FormatASTC10x8UnormBlock
	FormatASTC10x8SrgbBlock
	FormatASTC10x10UnormBlock
	FormatASTC10x10SrgbBlock
	FormatASTC12x10UnormBlock
	FormatASTC12x10SrgbBlock
	FormatASTC12x12UnormBlock
	FormatASTC12x12SrgbBlock
)

// formatInfo rows are baked in at definition time; Class and String are pure
// table lookups, never computed from the code.
type formatInfo struct {
	name  string
	class FormatClass
}

var formatTable = map[Format]formatInfo{
	FormatUndefined: {"Undefined", FormatClassFloat},
	FormatR4G4UnormPack8: {"R4G4UnormPack8", FormatClassFloat},
	FormatR4G4B4A4UnormPack16: {"R4G4B4A4UnormPack16", FormatClassFloat},
	FormatB4G4R4A4UnormPack16: {"B4G4R4A4UnormPack16", FormatClassFloat},
	FormatR5G6B5UnormPack16: {"R5G6B5UnormPack16", FormatClassFloat},
	FormatB5G6R5UnormPack16: {"B5G6R5UnormPack16", FormatClassFloat},
	FormatR5G5B5A1UnormPack16: {"R5G5B5A1UnormPack16", FormatClassFloat},
	FormatB5G5R5A1UnormPack16: {"B5G5R5A1UnormPack16", FormatClassFloat},
	FormatA1R5G5B5UnormPack16: {"A1R5G5B5UnormPack16", FormatClassFloat},
	FormatR8Unorm: {"R8Unorm", FormatClassFloat},
	FormatR8Snorm: {"R8Snorm", FormatClassFloat},
	FormatR8Uscaled: {"R8Uscaled", FormatClassFloat},
	FormatR8Sscaled: {"R8Sscaled", FormatClassFloat},
	FormatR8Uint: {"R8Uint", FormatClassUint},
	FormatR8Sint: {"R8Sint", FormatClassSint},
	FormatR8Srgb: {"R8Srgb", FormatClassFloat},
	FormatR8G8Unorm: {"R8G8Unorm", FormatClassFloat},
	FormatR8G8Snorm: {"R8G8Snorm", FormatClassFloat},
	FormatR8G8Uscaled: {"R8G8Uscaled", FormatClassFloat},
	FormatR8G8Sscaled: {"R8G8Sscaled", FormatClassFloat},
	FormatR8G8Uint: {"R8G8Uint", FormatClassUint},
	FormatR8G8Sint: {"R8G8Sint", FormatClassSint},
	FormatR8G8Srgb: {"R8G8Srgb", FormatClassFloat},
	FormatR8G8B8Unorm: {"R8G8B8Unorm", FormatClassFloat},
	FormatR8G8B8Snorm: {"R8G8B8Snorm", FormatClassFloat},
	FormatR8G8B8Uscaled: {"R8G8B8Uscaled", FormatClassFloat},
	FormatR8G8B8Sscaled: {"R8G8B8Sscaled", FormatClassFloat},
	FormatR8G8B8Uint: {"R8G8B8Uint", FormatClassUint},
	FormatR8G8B8Sint: {"R8G8B8Sint", FormatClassSint},
	FormatR8G8B8Srgb: {"R8G8B8Srgb", FormatClassFloat},
	FormatB8G8R8Unorm: {"B8G8R8Unorm", FormatClassFloat},
	FormatB8G8R8Snorm: {"B8G8R8Snorm", FormatClassFloat},
	FormatB8G8R8Uscaled: {"B8G8R8Uscaled", FormatClassFloat},
	FormatB8G8R8Sscaled: {"B8G8R8Sscaled", FormatClassFloat},
	FormatB8G8R8Uint: {"B8G8R8Uint", FormatClassUint},
	FormatB8G8R8Sint: {"B8G8R8Sint", FormatClassSint},
	FormatB8G8R8Srgb: {"B8G8R8Srgb", FormatClassFloat},
	FormatR8G8B8A8Unorm: {"R8G8B8A8Unorm", FormatClassFloat},
	FormatR8G8B8A8Snorm: {"R8G8B8A8Snorm", FormatClassFloat},
	FormatR8G8B8A8Uscaled: {"R8G8B8A8Uscaled", FormatClassFloat},
	FormatR8G8B8A8Sscaled: {"R8G8B8A8Sscaled", FormatClassFloat},
	FormatR8G8B8A8Uint: {"R8G8B8A8Uint", FormatClassUint},
	FormatR8G8B8A8Sint: {"R8G8B8A8Sint", FormatClassSint},
	FormatR8G8B8A8Srgb: {"R8G8B8A8Srgb", FormatClassFloat},
	FormatB8G8R8A8Unorm: {"B8G8R8A8Unorm", FormatClassFloat},
	FormatB8G8R8A8Snorm: {"B8G8R8A8Snorm", FormatClassFloat},
	FormatB8G8R8A8Uscaled: {"B8G8R8A8Uscaled", FormatClassFloat},
	FormatB8G8R8A8Sscaled: {"B8G8R8A8Sscaled", FormatClassFloat},
	FormatB8G8R8A8Uint: {"B8G8R8A8Uint", FormatClassUint},
	FormatB8G8R8A8Sint: {"B8G8R8A8Sint", FormatClassSint},
	FormatB8G8R8A8Srgb: {"B8G8R8A8Srgb", FormatClassFloat},
	FormatA8B8G8R8UnormPack32: {"A8B8G8R8UnormPack32", FormatClassFloat},
	FormatA8B8G8R8SnormPack32: {"A8B8G8R8SnormPack32", FormatClassFloat},
	FormatA8B8G8R8UscaledPack32: {"A8B8G8R8UscaledPack32", FormatClassFloat},
	FormatA8B8G8R8SscaledPack32: {"A8B8G8R8SscaledPack32", FormatClassFloat},
	FormatA8B8G8R8UintPack32: {"A8B8G8R8UintPack32", FormatClassUint},
	FormatA8B8G8R8SintPack32: {"A8B8G8R8SintPack32", FormatClassSint},
	FormatA8B8G8R8SrgbPack32: {"A8B8G8R8SrgbPack32", FormatClassFloat},
	FormatA2R10G10B10UnormPack32: {"A2R10G10B10UnormPack32", FormatClassFloat},
	FormatA2R10G10B10SnormPack32: {"A2R10G10B10SnormPack32", FormatClassFloat},
	FormatA2R10G10B10UscaledPack32: {"A2R10G10B10UscaledPack32", FormatClassFloat},
	FormatA2R10G10B10SscaledPack32: {"A2R10G10B10SscaledPack32", FormatClassFloat},
	FormatA2R10G10B10UintPack32: {"A2R10G10B10UintPack32", FormatClassUint},
	FormatA2R10G10B10SintPack32: {"A2R10G10B10SintPack32", FormatClassSint},
	FormatA2B10G10R10UnormPack32: {"A2B10G10R10UnormPack32", FormatClassFloat},
	FormatA2B10G10R10SnormPack32: {"A2B10G10R10SnormPack32", FormatClassFloat},
	FormatA2B10G10R10UscaledPack32: {"A2B10G10R10UscaledPack32", FormatClassFloat},
	FormatA2B10G10R10SscaledPack32: {"A2B10G10R10SscaledPack32", FormatClassFloat},
	FormatA2B10G10R10UintPack32: {"A2B10G10R10UintPack32", FormatClassUint},
	FormatA2B10G10R10SintPack32: {"A2B10G10R10SintPack32", FormatClassSint},
	FormatR16Unorm: {"R16Unorm", FormatClassFloat},
	FormatR16Snorm: {"R16Snorm", FormatClassFloat},
	FormatR16Uscaled: {"R16Uscaled", FormatClassFloat},
	FormatR16Sscaled: {"R16Sscaled", FormatClassFloat},
	FormatR16Uint: {"R16Uint", FormatClassUint},
	FormatR16Sint: {"R16Sint", FormatClassSint},
	FormatR16Sfloat: {"R16Sfloat", FormatClassFloat},
	FormatR16G16Unorm: {"R16G16Unorm", FormatClassFloat},
	FormatR16G16Snorm: {"R16G16Snorm", FormatClassFloat},
	FormatR16G16Uscaled: {"R16G16Uscaled", FormatClassFloat},
	FormatR16G16Sscaled: {"R16G16Sscaled", FormatClassFloat},
	FormatR16G16Uint: {"R16G16Uint", FormatClassUint},
	FormatR16G16Sint: {"R16G16Sint", FormatClassSint},
	FormatR16G16Sfloat: {"R16G16Sfloat", FormatClassFloat},
	FormatR16G16B16Unorm: {"R16G16B16Unorm", FormatClassFloat},
	FormatR16G16B16Snorm: {"R16G16B16Snorm", FormatClassFloat},
	FormatR16G16B16Uscaled: {"R16G16B16Uscaled", FormatClassFloat},
	FormatR16G16B16Sscaled: {"R16G16B16Sscaled", FormatClassFloat},
	FormatR16G16B16Uint: {"R16G16B16Uint", FormatClassUint},
	FormatR16G16B16Sint: {"R16G16B16Sint", FormatClassSint},
	FormatR16G16B16Sfloat: {"R16G16B16Sfloat", FormatClassFloat},
	FormatR16G16B16A16Unorm: {"R16G16B16A16Unorm", FormatClassFloat},
	FormatR16G16B16A16Snorm: {"R16G16B16A16Snorm", FormatClassFloat},
	FormatR16G16B16A16Uscaled: {"R16G16B16A16Uscaled", FormatClassFloat},
	FormatR16G16B16A16Sscaled: {"R16G16B16A16Sscaled", FormatClassFloat},
	FormatR16G16B16A16Uint: {"R16G16B16A16Uint", FormatClassUint},
	FormatR16G16B16A16Sint: {"R16G16B16A16Sint", FormatClassSint},
	FormatR16G16B16A16Sfloat: {"R16G16B16A16Sfloat", FormatClassFloat},
	FormatR32Uint: {"R32Uint", FormatClassUint},
	FormatR32Sint: {"R32Sint", FormatClassSint},
	FormatR32Sfloat: {"R32Sfloat", FormatClassFloat},
	FormatR32G32Uint: {"R32G32Uint", FormatClassUint},
	FormatR32G32Sint: {"R32G32Sint", FormatClassSint},
	FormatR32G32Sfloat: {"R32G32Sfloat", FormatClassFloat},
	FormatR32G32B32Uint: {"R32G32B32Uint", FormatClassUint},
	FormatR32G32B32Sint: {"R32G32B32Sint", FormatClassSint},
	FormatR32G32B32Sfloat: {"R32G32B32Sfloat", FormatClassFloat},
	FormatR32G32B32A32Uint: {"R32G32B32A32Uint", FormatClassUint},
	FormatR32G32B32A32Sint: {"R32G32B32A32Sint", FormatClassSint},
	FormatR32G32B32A32Sfloat: {"R32G32B32A32Sfloat", FormatClassFloat},
	FormatR64Uint: {"R64Uint", FormatClassUint},
	FormatR64Sint: {"R64Sint", FormatClassSint},
	FormatR64Sfloat: {"R64Sfloat", FormatClassFloat},
	FormatR64G64Uint: {"R64G64Uint", FormatClassUint},
	FormatR64G64Sint: {"R64G64Sint", FormatClassSint},
	FormatR64G64Sfloat: {"R64G64Sfloat", FormatClassFloat},
	FormatR64G64B64Uint: {"R64G64B64Uint", FormatClassUint},
	FormatR64G64B64Sint: {"R64G64B64Sint", FormatClassSint},
	FormatR64G64B64Sfloat: {"R64G64B64Sfloat", FormatClassFloat},
	FormatR64G64B64A64Uint: {"R64G64B64A64Uint", FormatClassUint},
	FormatR64G64B64A64Sint: {"R64G64B64A64Sint", FormatClassSint},
	FormatR64G64B64A64Sfloat: {"R64G64B64A64Sfloat", FormatClassFloat},
	FormatB10G11R11UfloatPack32: {"B10G11R11UfloatPack32", FormatClassFloat},
	FormatE5B9G9R9UfloatPack32: {"E5B9G9R9UfloatPack32", FormatClassFloat},
	FormatD16Unorm: {"D16Unorm", FormatClassDepth},
	FormatX8D24UnormPack32: {"X8D24UnormPack32", FormatClassDepth},
	FormatD32Sfloat: {"D32Sfloat", FormatClassDepth},
	FormatS8Uint: {"S8Uint", FormatClassStencil},
	FormatD16UnormS8Uint: {"D16UnormS8Uint", FormatClassDepthStencil},
	FormatD24UnormS8Uint: {"D24UnormS8Uint", FormatClassDepthStencil},
	FormatD32SfloatS8Uint: {"D32SfloatS8Uint", FormatClassDepthStencil},
	FormatBC1RGBUnormBlock: {"BC1RGBUnormBlock", FormatClassCompressed},
	FormatBC1RGBSrgbBlock: {"BC1RGBSrgbBlock", FormatClassCompressed},
	FormatBC1RGBAUnormBlock: {"BC1RGBAUnormBlock", FormatClassCompressed},
	FormatBC1RGBASrgbBlock: {"BC1RGBASrgbBlock", FormatClassCompressed},
	FormatBC2UnormBlock: {"BC2UnormBlock", FormatClassCompressed},
	FormatBC2SrgbBlock: {"BC2SrgbBlock", FormatClassCompressed},
	FormatBC3UnormBlock: {"BC3UnormBlock", FormatClassCompressed},
	FormatBC3SrgbBlock: {"BC3SrgbBlock", FormatClassCompressed},
	FormatBC4UnormBlock: {"BC4UnormBlock", FormatClassCompressed},
	FormatBC4SnormBlock: {"BC4SnormBlock", FormatClassCompressed},
	FormatBC5UnormBlock: {"BC5UnormBlock", FormatClassCompressed},
	FormatBC5SnormBlock: {"BC5SnormBlock", FormatClassCompressed},
	FormatBC6HUfloatBlock: {"BC6HUfloatBlock", FormatClassCompressed},
	FormatBC6HSfloatBlock: {"BC6HSfloatBlock", FormatClassCompressed},
	FormatBC7UnormBlock: {"BC7UnormBlock", FormatClassCompressed},
	FormatBC7SrgbBlock: {"BC7SrgbBlock", FormatClassCompressed},
	FormatETC2R8G8B8UnormBlock: {"ETC2R8G8B8UnormBlock", FormatClassCompressed},
	FormatETC2R8G8B8SrgbBlock: {"ETC2R8G8B8SrgbBlock", FormatClassCompressed},
	FormatETC2R8G8B8A1UnormBlock: {"ETC2R8G8B8A1UnormBlock", FormatClassCompressed},
	FormatETC2R8G8B8A1SrgbBlock: {"ETC2R8G8B8A1SrgbBlock", FormatClassCompressed},
	FormatETC2R8G8B8A8UnormBlock: {"ETC2R8G8B8A8UnormBlock", FormatClassCompressed},
	FormatETC2R8G8B8A8SrgbBlock: {"ETC2R8G8B8A8SrgbBlock", FormatClassCompressed},
	FormatEACR11UnormBlock: {"EACR11UnormBlock", FormatClassCompressed},
	FormatEACR11SnormBlock: {"EACR11SnormBlock", FormatClassCompressed},
	FormatEACR11G11UnormBlock: {"EACR11G11UnormBlock", FormatClassCompressed},
	FormatEACR11G11SnormBlock: {"EACR11G11SnormBlock", FormatClassCompressed},
	FormatASTC4x4UnormBlock: {"ASTC4x4UnormBlock", FormatClassCompressed},
	FormatASTC4x4SrgbBlock: {"ASTC4x4SrgbBlock", FormatClassCompressed},
	FormatASTC5x4UnormBlock: {"ASTC5x4UnormBlock", FormatClassCompressed},
	FormatASTC5x4SrgbBlock: {"ASTC5x4SrgbBlock", FormatClassCompressed},
	FormatASTC5x5UnormBlock: {"ASTC5x5UnormBlock", FormatClassCompressed},
	FormatASTC5x5SrgbBlock: {"ASTC5x5SrgbBlock", FormatClassCompressed},
	FormatASTC6x5UnormBlock: {"ASTC6x5UnormBlock", FormatClassCompressed},
	FormatASTC6x5SrgbBlock: {"ASTC6x5SrgbBlock", FormatClassCompressed},
	FormatASTC6x6UnormBlock: {"ASTC6x6UnormBlock", FormatClassCompressed},
	FormatASTC6x6SrgbBlock: {"ASTC6x6SrgbBlock", FormatClassCompressed},
	FormatASTC8x5UnormBlock: {"ASTC8x5UnormBlock", FormatClassCompressed},
	FormatASTC8x5SrgbBlock: {"ASTC8x5SrgbBlock", FormatClassCompressed},
	FormatASTC8x6UnormBlock: {"ASTC8x6UnormBlock", FormatClassCompressed},
	FormatASTC8x6SrgbBlock: {"ASTC8x6SrgbBlock", FormatClassCompressed},
	FormatASTC8x8UnormBlock: {"ASTC8x8UnormBlock", FormatClassCompressed},
	FormatASTC8x8SrgbBlock: {"ASTC8x8SrgbBlock", FormatClassCompressed},
	FormatASTC10x5UnormBlock: {"ASTC10x5UnormBlock", FormatClassCompressed},
	FormatASTC10x5SrgbBlock: {"ASTC10x5SrgbBlock", FormatClassCompressed},
	FormatASTC10x6UnormBlock: {"ASTC10x6UnormBlock", FormatClassCompressed},
	FormatASTC10x6SrgbBlock: {"ASTC10x6SrgbBlock", FormatClassCompressed},
	FormatASTC10x8UnormBlock: {"ASTC10x8UnormBlock", FormatClassCompressed},
	FormatASTC10x8SrgbBlock: {"ASTC10x8SrgbBlock", FormatClassCompressed},
	FormatASTC10x10UnormBlock: {"ASTC10x10UnormBlock", FormatClassCompressed},
	FormatASTC10x10SrgbBlock: {"ASTC10x10SrgbBlock", FormatClassCompressed},
	FormatASTC12x10UnormBlock: {"ASTC12x10UnormBlock", FormatClassCompressed},
	FormatASTC12x10SrgbBlock: {"ASTC12x10SrgbBlock", FormatClassCompressed},
	FormatASTC12x12UnormBlock: {"ASTC12x12UnormBlock", FormatClassCompressed},
	FormatASTC12x12SrgbBlock: {"ASTC12x12SrgbBlock", FormatClassCompressed},
}

// FormatFromCode returns the Format for a native VkFormat code. Codes outside
// the defined table report ok == false rather than an error, so callers can
// treat unrecognized codes as plain "unsupported".
func FormatFromCode(code int32) (Format, bool) {
	f := Format(code)
	if _, ok := formatTable[f]; !ok {
		return FormatUndefined, false
	}
	return f, true
}

var formatByName map[string]Format

func init() {
	formatByName = make(map[string]Format, len(formatTable))
	for f, info := range formatTable {
		formatByName[info.name] = f
	}
}

// FormatFromName looks a format up by its name, for example
// "B8G8R8A8Srgb". Names match what String reports.
func FormatFromName(name string) (Format, bool) {
	f, ok := formatByName[name]
	return f, ok
}

// Code returns the native VkFormat code of this format.
func (f Format) Code() int32 {
	return int32(f)
}

// VK returns the format as the vulkan-go enum value, for handing to the
// driver directly.
func (f Format) VK() vk.Format {
	return vk.Format(f)
}

// Class reports how texels of this format are interpreted.
func (f Format) Class() FormatClass {
	return formatTable[f].class
}

func (f Format) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}
