package vulkano

// FormatTag is implemented by the zero-sized tag types below, exactly one per
// defined Format. A tag lets a buffer or image wrapper carry its element
// format as part of its Go type instead of as a runtime field; the generic
// wrappers in typedresource.go consume it.
//
// Only the mechanically generated tags in this file implement FormatTag;
// wrappers that accept a tag also validate it against the runtime format of
// the wrapped object, so a hand-rolled tag that lies about its format is
// caught at construction rather than at draw time.
type FormatTag interface {
	FormatOf() Format
}

// TagFormat returns the Format a tag type stands for without needing a value
// of it.
func TagFormat[F FormatTag]() Format {
	var f F
	return f.FormatOf()
}

type R4G4UnormPack8 struct{}

func (R4G4UnormPack8) FormatOf() Format { return FormatR4G4UnormPack8 }

type R4G4B4A4UnormPack16 struct{}

func (R4G4B4A4UnormPack16) FormatOf() Format { return FormatR4G4B4A4UnormPack16 }

type B4G4R4A4UnormPack16 struct{}

func (B4G4R4A4UnormPack16) FormatOf() Format { return FormatB4G4R4A4UnormPack16 }

type R5G6B5UnormPack16 struct{}

func (R5G6B5UnormPack16) FormatOf() Format { return FormatR5G6B5UnormPack16 }

type B5G6R5UnormPack16 struct{}

func (B5G6R5UnormPack16) FormatOf() Format { return FormatB5G6R5UnormPack16 }

type R5G5B5A1UnormPack16 struct{}

func (R5G5B5A1UnormPack16) FormatOf() Format { return FormatR5G5B5A1UnormPack16 }

type B5G5R5A1UnormPack16 struct{}

func (B5G5R5A1UnormPack16) FormatOf() Format { return FormatB5G5R5A1UnormPack16 }

type A1R5G5B5UnormPack16 struct{}

func (A1R5G5B5UnormPack16) FormatOf() Format { return FormatA1R5G5B5UnormPack16 }

type R8Unorm struct{}

func (R8Unorm) FormatOf() Format { return FormatR8Unorm }

type R8Snorm struct{}

func (R8Snorm) FormatOf() Format { return FormatR8Snorm }

type R8Uscaled struct{}

func (R8Uscaled) FormatOf() Format { return FormatR8Uscaled }

type R8Sscaled struct{}

func (R8Sscaled) FormatOf() Format { return FormatR8Sscaled }

type R8Uint struct{}

func (R8Uint) FormatOf() Format { return FormatR8Uint }

type R8Sint struct{}

func (R8Sint) FormatOf() Format { return FormatR8Sint }

type R8Srgb struct{}

func (R8Srgb) FormatOf() Format { return FormatR8Srgb }

type R8G8Unorm struct{}

func (R8G8Unorm) FormatOf() Format { return FormatR8G8Unorm }

type R8G8Snorm struct{}

func (R8G8Snorm) FormatOf() Format { return FormatR8G8Snorm }

type R8G8Uscaled struct{}

func (R8G8Uscaled) FormatOf() Format { return FormatR8G8Uscaled }

type R8G8Sscaled struct{}

func (R8G8Sscaled) FormatOf() Format { return FormatR8G8Sscaled }

type R8G8Uint struct{}

func (R8G8Uint) FormatOf() Format { return FormatR8G8Uint }

type R8G8Sint struct{}

func (R8G8Sint) FormatOf() Format { return FormatR8G8Sint }

type R8G8Srgb struct{}

func (R8G8Srgb) FormatOf() Format { return FormatR8G8Srgb }

type R8G8B8Unorm struct{}

func (R8G8B8Unorm) FormatOf() Format { return FormatR8G8B8Unorm }

type R8G8B8Snorm struct{}

func (R8G8B8Snorm) FormatOf() Format { return FormatR8G8B8Snorm }

type R8G8B8Uscaled struct{}

func (R8G8B8Uscaled) FormatOf() Format { return FormatR8G8B8Uscaled }

type R8G8B8Sscaled struct{}

func (R8G8B8Sscaled) FormatOf() Format { return FormatR8G8B8Sscaled }

type R8G8B8Uint struct{}

func (R8G8B8Uint) FormatOf() Format { return FormatR8G8B8Uint }

type R8G8B8Sint struct{}

func (R8G8B8Sint) FormatOf() Format { return FormatR8G8B8Sint }

type R8G8B8Srgb struct{}

func (R8G8B8Srgb) FormatOf() Format { return FormatR8G8B8Srgb }

type B8G8R8Unorm struct{}

func (B8G8R8Unorm) FormatOf() Format { return FormatB8G8R8Unorm }

type B8G8R8Snorm struct{}

func (B8G8R8Snorm) FormatOf() Format { return FormatB8G8R8Snorm }

type B8G8R8Uscaled struct{}

func (B8G8R8Uscaled) FormatOf() Format { return FormatB8G8R8Uscaled }

type B8G8R8Sscaled struct{}

func (B8G8R8Sscaled) FormatOf() Format { return FormatB8G8R8Sscaled }

type B8G8R8Uint struct{}

func (B8G8R8Uint) FormatOf() Format { return FormatB8G8R8Uint }

type B8G8R8Sint struct{}

func (B8G8R8Sint) FormatOf() Format { return FormatB8G8R8Sint }

type B8G8R8Srgb struct{}

func (B8G8R8Srgb) FormatOf() Format { return FormatB8G8R8Srgb }

type R8G8B8A8Unorm struct{}

func (R8G8B8A8Unorm) FormatOf() Format { return FormatR8G8B8A8Unorm }

type R8G8B8A8Snorm struct{}

func (R8G8B8A8Snorm) FormatOf() Format { return FormatR8G8B8A8Snorm }

type R8G8B8A8Uscaled struct{}

func (R8G8B8A8Uscaled) FormatOf() Format { return FormatR8G8B8A8Uscaled }

type R8G8B8A8Sscaled struct{}

func (R8G8B8A8Sscaled) FormatOf() Format { return FormatR8G8B8A8Sscaled }

type R8G8B8A8Uint struct{}

func (R8G8B8A8Uint) FormatOf() Format { return FormatR8G8B8A8Uint }

type R8G8B8A8Sint struct{}

func (R8G8B8A8Sint) FormatOf() Format { return FormatR8G8B8A8Sint }

type R8G8B8A8Srgb struct{}

func (R8G8B8A8Srgb) FormatOf() Format { return FormatR8G8B8A8Srgb }

type B8G8R8A8Unorm struct{}

func (B8G8R8A8Unorm) FormatOf() Format { return FormatB8G8R8A8Unorm }

type B8G8R8A8Snorm struct{}

func (B8G8R8A8Snorm) FormatOf() Format { return FormatB8G8R8A8Snorm }

type B8G8R8A8Uscaled struct{}

func (B8G8R8A8Uscaled) FormatOf() Format { return FormatB8G8R8A8Uscaled }

type B8G8R8A8Sscaled struct{}

func (B8G8R8A8Sscaled) FormatOf() Format { return FormatB8G8R8A8Sscaled }

type B8G8R8A8Uint struct{}

func (B8G8R8A8Uint) FormatOf() Format { return FormatB8G8R8A8Uint }

type B8G8R8A8Sint struct{}

func (B8G8R8A8Sint) FormatOf() Format { return FormatB8G8R8A8Sint }

type B8G8R8A8Srgb struct{}

func (B8G8R8A8Srgb) FormatOf() Format { return FormatB8G8R8A8Srgb }

type A8B8G8R8UnormPack32 struct{}

func (A8B8G8R8UnormPack32) FormatOf() Format { return FormatA8B8G8R8UnormPack32 }

type A8B8G8R8SnormPack32 struct{}

func (A8B8G8R8SnormPack32) FormatOf() Format { return FormatA8B8G8R8SnormPack32 }

type A8B8G8R8UscaledPack32 struct{}

func (A8B8G8R8UscaledPack32) FormatOf() Format { return FormatA8B8G8R8UscaledPack32 }

type A8B8G8R8SscaledPack32 struct{}

func (A8B8G8R8SscaledPack32) FormatOf() Format { return FormatA8B8G8R8SscaledPack32 }

type A8B8G8R8UintPack32 struct{}

func (A8B8G8R8UintPack32) FormatOf() Format { return FormatA8B8G8R8UintPack32 }

type A8B8G8R8SintPack32 struct{}

func (A8B8G8R8SintPack32) FormatOf() Format { return FormatA8B8G8R8SintPack32 }

type A8B8G8R8SrgbPack32 struct{}

func (A8B8G8R8SrgbPack32) FormatOf() Format { return FormatA8B8G8R8SrgbPack32 }

type A2R10G10B10UnormPack32 struct{}

func (A2R10G10B10UnormPack32) FormatOf() Format { return FormatA2R10G10B10UnormPack32 }

type A2R10G10B10SnormPack32 struct{}

func (A2R10G10B10SnormPack32) FormatOf() Format { return FormatA2R10G10B10SnormPack32 }

type A2R10G10B10UscaledPack32 struct{}

func (A2R10G10B10UscaledPack32) FormatOf() Format { return FormatA2R10G10B10UscaledPack32 }

type A2R10G10B10SscaledPack32 struct{}

func (A2R10G10B10SscaledPack32) FormatOf() Format { return FormatA2R10G10B10SscaledPack32 }

type A2R10G10B10UintPack32 struct{}

func (A2R10G10B10UintPack32) FormatOf() Format { return FormatA2R10G10B10UintPack32 }

type A2R10G10B10SintPack32 struct{}

func (A2R10G10B10SintPack32) FormatOf() Format { return FormatA2R10G10B10SintPack32 }

type A2B10G10R10UnormPack32 struct{}

func (A2B10G10R10UnormPack32) FormatOf() Format { return FormatA2B10G10R10UnormPack32 }

type A2B10G10R10SnormPack32 struct{}

func (A2B10G10R10SnormPack32) FormatOf() Format { return FormatA2B10G10R10SnormPack32 }

type A2B10G10R10UscaledPack32 struct{}

func (A2B10G10R10UscaledPack32) FormatOf() Format { return FormatA2B10G10R10UscaledPack32 }

type A2B10G10R10SscaledPack32 struct{}

func (A2B10G10R10SscaledPack32) FormatOf() Format { return FormatA2B10G10R10SscaledPack32 }

type A2B10G10R10UintPack32 struct{}

func (A2B10G10R10UintPack32) FormatOf() Format { return FormatA2B10G10R10UintPack32 }

type A2B10G10R10SintPack32 struct{}

func (A2B10G10R10SintPack32) FormatOf() Format { return FormatA2B10G10R10SintPack32 }

type R16Unorm struct{}

func (R16Unorm) FormatOf() Format { return FormatR16Unorm }

type R16Snorm struct{}

func (R16Snorm) FormatOf() Format { return FormatR16Snorm }

type R16Uscaled struct{}

func (R16Uscaled) FormatOf() Format { return FormatR16Uscaled }

type R16Sscaled struct{}

func (R16Sscaled) FormatOf() Format { return FormatR16Sscaled }

type R16Uint struct{}

func (R16Uint) FormatOf() Format { return FormatR16Uint }

type R16Sint struct{}

func (R16Sint) FormatOf() Format { return FormatR16Sint }

type R16Sfloat struct{}

func (R16Sfloat) FormatOf() Format { return FormatR16Sfloat }

type R16G16Unorm struct{}

func (R16G16Unorm) FormatOf() Format { return FormatR16G16Unorm }

type R16G16Snorm struct{}

func (R16G16Snorm) FormatOf() Format { return FormatR16G16Snorm }

type R16G16Uscaled struct{}

func (R16G16Uscaled) FormatOf() Format { return FormatR16G16Uscaled }

type R16G16Sscaled struct{}

func (R16G16Sscaled) FormatOf() Format { return FormatR16G16Sscaled }

type R16G16Uint struct{}

func (R16G16Uint) FormatOf() Format { return FormatR16G16Uint }

type R16G16Sint struct{}

func (R16G16Sint) FormatOf() Format { return FormatR16G16Sint }

type R16G16Sfloat struct{}

func (R16G16Sfloat) FormatOf() Format { return FormatR16G16Sfloat }

type R16G16B16Unorm struct{}

func (R16G16B16Unorm) FormatOf() Format { return FormatR16G16B16Unorm }

type R16G16B16Snorm struct{}

func (R16G16B16Snorm) FormatOf() Format { return FormatR16G16B16Snorm }

type R16G16B16Uscaled struct{}

func (R16G16B16Uscaled) FormatOf() Format { return FormatR16G16B16Uscaled }

type R16G16B16Sscaled struct{}

func (R16G16B16Sscaled) FormatOf() Format { return FormatR16G16B16Sscaled }

type R16G16B16Uint struct{}

func (R16G16B16Uint) FormatOf() Format { return FormatR16G16B16Uint }

type R16G16B16Sint struct{}

func (R16G16B16Sint) FormatOf() Format { return FormatR16G16B16Sint }

type R16G16B16Sfloat struct{}

func (R16G16B16Sfloat) FormatOf() Format { return FormatR16G16B16Sfloat }

type R16G16B16A16Unorm struct{}

func (R16G16B16A16Unorm) FormatOf() Format { return FormatR16G16B16A16Unorm }

type R16G16B16A16Snorm struct{}

func (R16G16B16A16Snorm) FormatOf() Format { return FormatR16G16B16A16Snorm }

type R16G16B16A16Uscaled struct{}

func (R16G16B16A16Uscaled) FormatOf() Format { return FormatR16G16B16A16Uscaled }

type R16G16B16A16Sscaled struct{}

func (R16G16B16A16Sscaled) FormatOf() Format { return FormatR16G16B16A16Sscaled }

type R16G16B16A16Uint struct{}

func (R16G16B16A16Uint) FormatOf() Format { return FormatR16G16B16A16Uint }

type R16G16B16A16Sint struct{}

func (R16G16B16A16Sint) FormatOf() Format { return FormatR16G16B16A16Sint }

type R16G16B16A16Sfloat struct{}

func (R16G16B16A16Sfloat) FormatOf() Format { return FormatR16G16B16A16Sfloat }

type R32Uint struct{}

func (R32Uint) FormatOf() Format { return FormatR32Uint }

type R32Sint struct{}

func (R32Sint) FormatOf() Format { return FormatR32Sint }

type R32Sfloat struct{}

func (R32Sfloat) FormatOf() Format { return FormatR32Sfloat }

type R32G32Uint struct{}

func (R32G32Uint) FormatOf() Format { return FormatR32G32Uint }

type R32G32Sint struct{}

func (R32G32Sint) FormatOf() Format { return FormatR32G32Sint }

type R32G32Sfloat struct{}

func (R32G32Sfloat) FormatOf() Format { return FormatR32G32Sfloat }

type R32G32B32Uint struct{}

func (R32G32B32Uint) FormatOf() Format { return FormatR32G32B32Uint }

type R32G32B32Sint struct{}

func (R32G32B32Sint) FormatOf() Format { return FormatR32G32B32Sint }

type R32G32B32Sfloat struct{}

func (R32G32B32Sfloat) FormatOf() Format { return FormatR32G32B32Sfloat }

type R32G32B32A32Uint struct{}

func (R32G32B32A32Uint) FormatOf() Format { return FormatR32G32B32A32Uint }

type R32G32B32A32Sint struct{}

func (R32G32B32A32Sint) FormatOf() Format { return FormatR32G32B32A32Sint }

type R32G32B32A32Sfloat struct{}

func (R32G32B32A32Sfloat) FormatOf() Format { return FormatR32G32B32A32Sfloat }

type R64Uint struct{}

func (R64Uint) FormatOf() Format { return FormatR64Uint }

type R64Sint struct{}

func (R64Sint) FormatOf() Format { return FormatR64Sint }

type R64Sfloat struct{}

func (R64Sfloat) FormatOf() Format { return FormatR64Sfloat }

type R64G64Uint struct{}

func (R64G64Uint) FormatOf() Format { return FormatR64G64Uint }

type R64G64Sint struct{}

func (R64G64Sint) FormatOf() Format { return FormatR64G64Sint }

type R64G64Sfloat struct{}

func (R64G64Sfloat) FormatOf() Format { return FormatR64G64Sfloat }

type R64G64B64Uint struct{}

func (R64G64B64Uint) FormatOf() Format { return FormatR64G64B64Uint }

type R64G64B64Sint struct{}

func (R64G64B64Sint) FormatOf() Format { return FormatR64G64B64Sint }

type R64G64B64Sfloat struct{}

func (R64G64B64Sfloat) FormatOf() Format { return FormatR64G64B64Sfloat }

type R64G64B64A64Uint struct{}

func (R64G64B64A64Uint) FormatOf() Format { return FormatR64G64B64A64Uint }

type R64G64B64A64Sint struct{}

func (R64G64B64A64Sint) FormatOf() Format { return FormatR64G64B64A64Sint }

type R64G64B64A64Sfloat struct{}

func (R64G64B64A64Sfloat) FormatOf() Format { return FormatR64G64B64A64Sfloat }

type B10G11R11UfloatPack32 struct{}

func (B10G11R11UfloatPack32) FormatOf() Format { return FormatB10G11R11UfloatPack32 }

type E5B9G9R9UfloatPack32 struct{}

func (E5B9G9R9UfloatPack32) FormatOf() Format { return FormatE5B9G9R9UfloatPack32 }

type D16Unorm struct{}

func (D16Unorm) FormatOf() Format { return FormatD16Unorm }

type X8D24UnormPack32 struct{}

func (X8D24UnormPack32) FormatOf() Format { return FormatX8D24UnormPack32 }

type D32Sfloat struct{}

func (D32Sfloat) FormatOf() Format { return FormatD32Sfloat }

type S8Uint struct{}

func (S8Uint) FormatOf() Format { return FormatS8Uint }

type D16UnormS8Uint struct{}

func (D16UnormS8Uint) FormatOf() Format { return FormatD16UnormS8Uint }

type D24UnormS8Uint struct{}

func (D24UnormS8Uint) FormatOf() Format { return FormatD24UnormS8Uint }

type D32SfloatS8Uint struct{}

func (D32SfloatS8Uint) FormatOf() Format { return FormatD32SfloatS8Uint }

type BC1RGBUnormBlock struct{}

func (BC1RGBUnormBlock) FormatOf() Format { return FormatBC1RGBUnormBlock }

type BC1RGBSrgbBlock struct{}

func (BC1RGBSrgbBlock) FormatOf() Format { return FormatBC1RGBSrgbBlock }

type BC1RGBAUnormBlock struct{}

func (BC1RGBAUnormBlock) FormatOf() Format { return FormatBC1RGBAUnormBlock }

type BC1RGBASrgbBlock struct{}

func (BC1RGBASrgbBlock) FormatOf() Format { return FormatBC1RGBASrgbBlock }

type BC2UnormBlock struct{}

func (BC2UnormBlock) FormatOf() Format { return FormatBC2UnormBlock }

type BC2SrgbBlock struct{}

func (BC2SrgbBlock) FormatOf() Format { return FormatBC2SrgbBlock }

type BC3UnormBlock struct{}

func (BC3UnormBlock) FormatOf() Format { return FormatBC3UnormBlock }

type BC3SrgbBlock struct{}

func (BC3SrgbBlock) FormatOf() Format { return FormatBC3SrgbBlock }

type BC4UnormBlock struct{}

func (BC4UnormBlock) FormatOf() Format { return FormatBC4UnormBlock }

type BC4SnormBlock struct{}

func (BC4SnormBlock) FormatOf() Format { return FormatBC4SnormBlock }

type BC5UnormBlock struct{}

func (BC5UnormBlock) FormatOf() Format { return FormatBC5UnormBlock }

type BC5SnormBlock struct{}

func (BC5SnormBlock) FormatOf() Format { return FormatBC5SnormBlock }

type BC6HUfloatBlock struct{}

func (BC6HUfloatBlock) FormatOf() Format { return FormatBC6HUfloatBlock }

type BC6HSfloatBlock struct{}

func (BC6HSfloatBlock) FormatOf() Format { return FormatBC6HSfloatBlock }

type BC7UnormBlock struct{}

func (BC7UnormBlock) FormatOf() Format { return FormatBC7UnormBlock }

type BC7SrgbBlock struct{}

func (BC7SrgbBlock) FormatOf() Format { return FormatBC7SrgbBlock }

type ETC2R8G8B8UnormBlock struct{}

func (ETC2R8G8B8UnormBlock) FormatOf() Format { return FormatETC2R8G8B8UnormBlock }

type ETC2R8G8B8SrgbBlock struct{}

func (ETC2R8G8B8SrgbBlock) FormatOf() Format { return FormatETC2R8G8B8SrgbBlock }

type ETC2R8G8B8A1UnormBlock struct{}

func (ETC2R8G8B8A1UnormBlock) FormatOf() Format { return FormatETC2R8G8B8A1UnormBlock }

type ETC2R8G8B8A1SrgbBlock struct{}

func (ETC2R8G8B8A1SrgbBlock) FormatOf() Format { return FormatETC2R8G8B8A1SrgbBlock }

type ETC2R8G8B8A8UnormBlock struct{}

func (ETC2R8G8B8A8UnormBlock) FormatOf() Format { return FormatETC2R8G8B8A8UnormBlock }

type ETC2R8G8B8A8SrgbBlock struct{}

func (ETC2R8G8B8A8SrgbBlock) FormatOf() Format { return FormatETC2R8G8B8A8SrgbBlock }

type EACR11UnormBlock struct{}

func (EACR11UnormBlock) FormatOf() Format { return FormatEACR11UnormBlock }

type EACR11SnormBlock struct{}

func (EACR11SnormBlock) FormatOf() Format { return FormatEACR11SnormBlock }

type EACR11G11UnormBlock struct{}

func (EACR11G11UnormBlock) FormatOf() Format { return FormatEACR11G11UnormBlock }

type EACR11G11SnormBlock struct{}

func (EACR11G11SnormBlock) FormatOf() Format { return FormatEACR11G11SnormBlock }

type ASTC4x4UnormBlock struct{}

func (ASTC4x4UnormBlock) FormatOf() Format { return FormatASTC4x4UnormBlock }

type ASTC4x4SrgbBlock struct{}

func (ASTC4x4SrgbBlock) FormatOf() Format { return FormatASTC4x4SrgbBlock }

type ASTC5x4UnormBlock struct{}

func (ASTC5x4UnormBlock) FormatOf() Format { return FormatASTC5x4UnormBlock }

type ASTC5x4SrgbBlock struct{}

func (ASTC5x4SrgbBlock) FormatOf() Format { return FormatASTC5x4SrgbBlock }

type ASTC5x5UnormBlock struct{}

func (ASTC5x5UnormBlock) FormatOf() Format { return FormatASTC5x5UnormBlock }

type ASTC5x5SrgbBlock struct{}

func (ASTC5x5SrgbBlock) FormatOf() Format { return FormatASTC5x5SrgbBlock }

type ASTC6x5UnormBlock struct{}

func (ASTC6x5UnormBlock) FormatOf() Format { return FormatASTC6x5UnormBlock }

type ASTC6x5SrgbBlock struct{}

func (ASTC6x5SrgbBlock) FormatOf() Format { return FormatASTC6x5SrgbBlock }

type ASTC6x6UnormBlock struct{}

func (ASTC6x6UnormBlock) FormatOf() Format { return FormatASTC6x6UnormBlock }

type ASTC6x6SrgbBlock struct{}

func (ASTC6x6SrgbBlock) FormatOf() Format { return FormatASTC6x6SrgbBlock }

type ASTC8x5UnormBlock struct{}

func (ASTC8x5UnormBlock) FormatOf() Format { return FormatASTC8x5UnormBlock }

type ASTC8x5SrgbBlock struct{}

func (ASTC8x5SrgbBlock) FormatOf() Format { return FormatASTC8x5SrgbBlock }

type ASTC8x6UnormBlock struct{}

func (ASTC8x6UnormBlock) FormatOf() Format { return FormatASTC8x6UnormBlock }

type ASTC8x6SrgbBlock struct{}

func (ASTC8x6SrgbBlock) FormatOf() Format { return FormatASTC8x6SrgbBlock }

type ASTC8x8UnormBlock struct{}

func (ASTC8x8UnormBlock) FormatOf() Format { return FormatASTC8x8UnormBlock }

type ASTC8x8SrgbBlock struct{}

func (ASTC8x8SrgbBlock) FormatOf() Format { return FormatASTC8x8SrgbBlock }

type ASTC10x5UnormBlock struct{}

func (ASTC10x5UnormBlock) FormatOf() Format { return FormatASTC10x5UnormBlock }

type ASTC10x5SrgbBlock struct{}

func (ASTC10x5SrgbBlock) FormatOf() Format { return FormatASTC10x5SrgbBlock }

type ASTC10x6UnormBlock struct{}

func (ASTC10x6UnormBlock) FormatOf() Format { return FormatASTC10x6UnormBlock }

type ASTC10x6SrgbBlock struct{}

func (ASTC10x6SrgbBlock) FormatOf() Format { return FormatASTC10x6SrgbBlock }

type ASTC10x8UnormBlock struct{}

func (ASTC10x8UnormBlock) FormatOf() Format { return FormatASTC10x8UnormBlock }

type ASTC10x8SrgbBlock struct{}

func (ASTC10x8SrgbBlock) FormatOf() Format { return FormatASTC10x8SrgbBlock }

type ASTC10x10UnormBlock struct{}

func (ASTC10x10UnormBlock) FormatOf() Format { return FormatASTC10x10UnormBlock }

type ASTC10x10SrgbBlock struct{}

func (ASTC10x10SrgbBlock) FormatOf() Format { return FormatASTC10x10SrgbBlock }

type ASTC12x10UnormBlock struct{}

func (ASTC12x10UnormBlock) FormatOf() Format { return FormatASTC12x10UnormBlock }

type ASTC12x10SrgbBlock struct{}

func (ASTC12x10SrgbBlock) FormatOf() Format { return FormatASTC12x10SrgbBlock }

type ASTC12x12UnormBlock struct{}

func (ASTC12x12UnormBlock) FormatOf() Format { return FormatASTC12x12UnormBlock }

type ASTC12x12SrgbBlock struct{}

func (ASTC12x12SrgbBlock) FormatOf() Format { return FormatASTC12x12SrgbBlock }
