package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DescriptorBind is a payload that can be bound into a descriptor slot. The
// set of implementations is closed: each one reports the single descriptor
// kind it can occupy, and SetLayoutDesc checks that report against the
// declared layout before anything reaches the driver. Application code
// cannot implement DescriptorBind.
type DescriptorBind interface {
	// Kind reports which descriptor kind this payload occupies.
	Kind() DescriptorKind

	// validate checks the payload itself, before vkWrite may assume it is
	// well formed.
	validate() error

	// vkWrite fills in the payload part of a native write record.
	vkWrite(w *vk.WriteDescriptorSet)
}

// UniformBufferBind binds a buffer as a uniform buffer. The buffer is shared:
// the descriptor set holds a reference to it alongside whoever else does, and
// it stays alive until the last holder lets go of it.
type UniformBufferBind struct {
	Buffer *Buffer

	// Offset in bytes into the buffer; the bound range runs from Offset to
	// the end of the buffer.
	Offset uint64
}

func (b UniformBufferBind) Kind() DescriptorKind {
	return KindUniformBuffer
}

func (b UniformBufferBind) validate() error {
	if b.Buffer == nil {
		return fmt.Errorf("nil buffer")
	}
	// the bound range runs from Offset to the end of the buffer, so the
	// offset must leave at least one byte
	if b.Offset >= b.Buffer.Size {
		return fmt.Errorf("offset %d beyond buffer size %d", b.Offset, b.Buffer.Size)
	}
	return nil
}

func (b UniformBufferBind) vkWrite(w *vk.WriteDescriptorSet) {
	w.PBufferInfo = []vk.DescriptorBufferInfo{{
		Buffer: b.Buffer.VKBuffer,
		Offset: vk.DeviceSize(b.Offset),
		Range:  vk.DeviceSize(b.Buffer.Size - b.Offset),
	}}
}

// CombinedImageSamplerBind binds an image view and sampler pair, typically a
// texture.
type CombinedImageSamplerBind struct {
	Layout  vk.ImageLayout
	View    vk.ImageView
	Sampler vk.Sampler
}

func (b CombinedImageSamplerBind) Kind() DescriptorKind {
	return KindCombinedImageSampler
}

func (b CombinedImageSamplerBind) validate() error {
	return nil
}

func (b CombinedImageSamplerBind) vkWrite(w *vk.WriteDescriptorSet) {
	w.PImageInfo = []vk.DescriptorImageInfo{{
		ImageLayout: b.Layout,
		ImageView:   b.View,
		Sampler:     b.Sampler,
	}}
}

// DescriptorWrite is one decoded, driver-ready binding instruction: put the
// payload into the given slot and array element of a descriptor set. Values
// of this type come out of SetLayoutDesc.DecodeWrite and DecodeInit and have
// already been validated against the layout.
type DescriptorWrite struct {
	Binding      uint32
	ArrayElement uint32
	Bind         DescriptorBind
}

// WriteParam is the user-facing side of a descriptor write: which slot to
// target and what to put there. It is the input of DecodeWrite and
// DecodeInit.
type WriteParam struct {
	Binding      uint32
	ArrayElement uint32
	Bind         DescriptorBind
}
