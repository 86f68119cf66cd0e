package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DescriptorSet is a live, allocated set of descriptor slots matching a
// DescriptorSetLayout. When the layout was built from a SetLayoutDesc, Init
// and Update validate every write against it before the driver sees
// anything. The raw Add*/Write path from the native API remains available
// for layouts without a desc.
type DescriptorSet struct {
	Device               *Device
	DescriptorPool       *DescriptorPool
	Desc                 *SetLayoutDesc
	VKDescriptorSet      vk.DescriptorSet
	VKWriteDescriptorSet []vk.WriteDescriptorSet
}

func (d *Device) NewDescriptorSet() *DescriptorSet {
	return &DescriptorSet{Device: d}
}

// Init populates a freshly allocated set. Every binding of the layout must
// be covered exactly once; see SetLayoutDesc.DecodeInit.
func (du *DescriptorSet) Init(params ...WriteParam) error {
	if du.Desc == nil {
		return fmt.Errorf("descriptor set has no layout desc to validate against")
	}
	writes, err := du.Desc.DecodeInit(params...)
	if err != nil {
		return err
	}
	du.ApplyWrites(writes)
	return nil
}

// Update applies incremental writes to an already initialized set,
// validating them against the layout desc first.
func (du *DescriptorSet) Update(params ...WriteParam) error {
	if du.Desc == nil {
		return fmt.Errorf("descriptor set has no layout desc to validate against")
	}
	writes, err := du.Desc.DecodeWrite(params...)
	if err != nil {
		return err
	}
	du.ApplyWrites(writes)
	return nil
}

// ApplyWrites hands already decoded write records to the driver. The records
// are expected to come from DecodeWrite or DecodeInit on this set's layout
// desc.
func (du *DescriptorSet) ApplyWrites(writes []DescriptorWrite) {
	native := make([]vk.WriteDescriptorSet, len(writes))
	for i, w := range writes {
		native[i] = vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          du.VKDescriptorSet,
			DstBinding:      w.Binding,
			DstArrayElement: w.ArrayElement,
			DescriptorCount: 1,
			DescriptorType:  w.Bind.Kind().VK(),
		}
		w.Bind.vkWrite(&native[i])
	}
	vk.UpdateDescriptorSets(du.Device.VKDevice, uint32(len(native)), native, 0, nil)
}

// AddBuffer stages a raw buffer write on this set; nothing is validated or
// applied until Write is called.
func (du *DescriptorSet) AddBuffer(dstBinding int, dtype vk.DescriptorType, b *Buffer, offset int) {
	var descriptorBufferInfo = vk.DescriptorBufferInfo{}
	descriptorBufferInfo.Buffer = b.VKBuffer
	descriptorBufferInfo.Offset = vk.DeviceSize(offset)
	descriptorBufferInfo.Range = vk.DeviceSize(b.Size)

	var writeDescriptorSet = vk.WriteDescriptorSet{}
	writeDescriptorSet.SType = vk.StructureTypeWriteDescriptorSet
	writeDescriptorSet.DstBinding = uint32(dstBinding)
	writeDescriptorSet.DescriptorCount = 1
	writeDescriptorSet.DescriptorType = dtype
	writeDescriptorSet.PBufferInfo = []vk.DescriptorBufferInfo{descriptorBufferInfo}

	du.VKWriteDescriptorSet = append(du.VKWriteDescriptorSet, writeDescriptorSet)
}

// AddCombinedImageSampler stages an image layout, image view and sampler
// write to support displaying a texture.
func (du *DescriptorSet) AddCombinedImageSampler(dstBinding int, layout vk.ImageLayout, imageView vk.ImageView, sampler vk.Sampler) {

	var descriptorImageInfo = vk.DescriptorImageInfo{}
	descriptorImageInfo.ImageView = imageView
	descriptorImageInfo.ImageLayout = layout
	descriptorImageInfo.Sampler = sampler

	var writeDescriptorSet = vk.WriteDescriptorSet{}
	writeDescriptorSet.SType = vk.StructureTypeWriteDescriptorSet
	writeDescriptorSet.DstBinding = uint32(dstBinding)
	writeDescriptorSet.DescriptorCount = 1
	writeDescriptorSet.DescriptorType = vk.DescriptorTypeCombinedImageSampler
	writeDescriptorSet.PImageInfo = []vk.DescriptorImageInfo{descriptorImageInfo}

	du.VKWriteDescriptorSet = append(du.VKWriteDescriptorSet, writeDescriptorSet)

}

// Write applies the staged raw writes to the set.
func (du *DescriptorSet) Write() {
	for i := range du.VKWriteDescriptorSet {
		du.VKWriteDescriptorSet[i].DstSet = du.VKDescriptorSet
	}
	vk.UpdateDescriptorSets(du.Device.VKDevice, uint32(len(du.VKWriteDescriptorSet)), du.VKWriteDescriptorSet, 0, nil)
}
