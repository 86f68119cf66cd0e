package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// TypedImage is an image resource whose format is part of its Go type.
// Code which requires, say, an R8G8B8A8Unorm texture can take a
// TypedImage[R8G8B8A8Unorm] and the compiler will refuse anything else.
// The wrapped resource behaves exactly like a plain ImageResource.
type TypedImage[F FormatTag] struct {
	*ImageResource
}

// AsTypedImage wraps an existing image resource, verifying at runtime that
// its format matches the tag. This is the bridge from dynamically created
// images (swapchains, loaders) into statically typed code.
func AsTypedImage[F FormatTag](img *ImageResource) (TypedImage[F], error) {
	want := TagFormat[F]()
	if img.Format != want {
		return TypedImage[F]{}, fmt.Errorf("image format is %s, want %s", img.Format, want)
	}
	return TypedImage[F]{img}, nil
}

// AllocateTypedImage allocates an image from the pool with the format named
// by the tag. Go methods cannot introduce type parameters, so this is a free
// function rather than a method on ImageResourcePool.
func AllocateTypedImage[F FormatTag](p *ImageResourcePool, extent vk.Extent2D, tiling vk.ImageTiling, usage vk.ImageUsageFlagBits) (TypedImage[F], error) {
	img, err := p.AllocateImage(extent, TagFormat[F](), tiling, usage)
	if err != nil {
		return TypedImage[F]{}, err
	}
	return TypedImage[F]{img}, nil
}

// TexelBuffer is a buffer resource whose texel format is part of its Go
// type. Buffers, unlike images, do not carry a format natively, so the tag
// records the format the buffer's contents are meant to be read as.
type TexelBuffer[F FormatTag] struct {
	*BufferResource
}

// AsTexelBuffer tags an existing buffer resource with a texel format.
func AsTexelBuffer[F FormatTag](buf *BufferResource) TexelBuffer[F] {
	return TexelBuffer[F]{buf}
}

// TexelFormat reports the format named by the buffer's tag.
func (t TexelBuffer[F]) TexelFormat() Format {
	return TagFormat[F]()
}
