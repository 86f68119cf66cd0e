package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// PipelineLayout wraps the native pipeline layout object. It is created once
// at pipeline build time, immutable afterwards, and shared by reference
// across every pipeline built against it. The Desc assembled from the set
// layouts lets a pipeline check a candidate descriptor set layout for
// structural compatibility before use.
type PipelineLayout struct {
	Device           *Device
	Desc             *PipelineLayoutDesc
	VKPipelineLayout vk.PipelineLayout
}

func (p *PipelineLayout) Destroy() {
	vk.DestroyPipelineLayout(p.Device.VKDevice, p.VKPipelineLayout, nil)
}

// CreatePipelineLayoutWithPushConstants creates a pipeline layout over the
// given descriptor set layouts and push constant ranges.
func (d *Device) CreatePipelineLayoutWithPushConstants(descriptorSetLayouts []*DescriptorSetLayout, pushConstants []vk.PushConstantRange) (*PipelineLayout, error) {
	var pipelineLayoutCreateInfo = vk.PipelineLayoutCreateInfo{}
	pipelineLayoutCreateInfo.SType = vk.StructureTypePipelineLayoutCreateInfo
	pipelineLayoutCreateInfo.SetLayoutCount = uint32(len(descriptorSetLayouts))

	l := make([]vk.DescriptorSetLayout, len(descriptorSetLayouts))
	descs := make([]*SetLayoutDesc, len(descriptorSetLayouts))
	for i, dsl := range descriptorSetLayouts {
		l[i] = dsl.VKDescriptorSetLayout
		descs[i] = dsl.Desc
	}

	pipelineLayoutCreateInfo.PSetLayouts = l

	pipelineLayoutCreateInfo.PushConstantRangeCount = uint32(len(pushConstants))
	pipelineLayoutCreateInfo.PPushConstantRanges = pushConstants

	var pipelineLayout vk.PipelineLayout

	err := vk.Error(vk.CreatePipelineLayout(d.VKDevice, &pipelineLayoutCreateInfo, nil, &pipelineLayout))
	if err != nil {
		return nil, fmt.Errorf("unable to create pipeline layout: %w", err)
	}

	desc := NewPipelineLayoutDesc(descs...)
	for _, r := range pushConstants {
		desc.AddPushConstantRange(r)
	}

	var ret PipelineLayout

	ret.VKPipelineLayout = pipelineLayout
	ret.Desc = desc
	ret.Device = d

	return &ret, nil

}

// CreatePipelineLayout creates a pipeline layout over the given descriptor
// set layouts, without push constants.
func (d *Device) CreatePipelineLayout(descriptorSetLayouts ...*DescriptorSetLayout) (*PipelineLayout, error) {
	return d.CreatePipelineLayoutWithPushConstants(descriptorSetLayouts, nil)
}
