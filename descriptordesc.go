package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DescriptorKind enumerates the kinds of resources a descriptor slot may
// hold. The numeric values match the native VkDescriptorType codes.
type DescriptorKind int32

const (
	KindSampler DescriptorKind = iota
	KindCombinedImageSampler
	KindSampledImage
	KindStorageImage
	KindUniformTexelBuffer
	KindStorageTexelBuffer
	KindUniformBuffer
	KindStorageBuffer
	KindUniformBufferDynamic
	KindStorageBufferDynamic
	KindInputAttachment
)

// VK converts the kind into the native descriptor type.
func (k DescriptorKind) VK() vk.DescriptorType {
	return vk.DescriptorType(k)
}

func (k DescriptorKind) String() string {
	switch k {
	case KindSampler:
		return "Sampler"
	case KindCombinedImageSampler:
		return "CombinedImageSampler"
	case KindSampledImage:
		return "SampledImage"
	case KindStorageImage:
		return "StorageImage"
	case KindUniformTexelBuffer:
		return "UniformTexelBuffer"
	case KindStorageTexelBuffer:
		return "StorageTexelBuffer"
	case KindUniformBuffer:
		return "UniformBuffer"
	case KindStorageBuffer:
		return "StorageBuffer"
	case KindUniformBufferDynamic:
		return "UniformBufferDynamic"
	case KindStorageBufferDynamic:
		return "StorageBufferDynamic"
	case KindInputAttachment:
		return "InputAttachment"
	}
	return fmt.Sprintf("DescriptorKind(%d)", int32(k))
}

// DescriptorDesc describes a single shader-visible binding slot within a
// descriptor set layout.
type DescriptorDesc struct {
	// Binding is the slot index, unique within one layout.
	Binding uint32

	// Kind is what sort of resource may later be bound to this slot.
	Kind DescriptorKind

	// ArrayCount is how many array elements the slot holds, at least 1.
	ArrayCount uint32

	// Stages is which shader stages will access the slot.
	Stages ShaderStages
}

// VKBinding converts the desc into the native layout binding structure.
func (d DescriptorDesc) VKBinding() vk.DescriptorSetLayoutBinding {
	return vk.DescriptorSetLayoutBinding{
		Binding:         d.Binding,
		DescriptorType:  d.Kind.VK(),
		DescriptorCount: d.ArrayCount,
		StageFlags:      d.Stages.VKFlags(),
	}
}
