package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DescriptorSetLayout wraps the native descriptor set layout object. When
// built from a SetLayoutDesc the desc is retained, so sets allocated against
// this layout can validate their writes.
type DescriptorSetLayout struct {
	Device                        *Device
	Desc                          *SetLayoutDesc
	VKDescriptorSetLayout         vk.DescriptorSetLayout
	VKDescriptorSetLayoutBindings []vk.DescriptorSetLayoutBinding
}

func (d *Device) NewDescriptorSetLayout() *DescriptorSetLayout {
	return &DescriptorSetLayout{Device: d}
}

// AddBinding adds a raw native binding to the layout. Layouts built this way
// carry no desc and skip write validation; prefer
// CreateDescriptorSetLayoutFromDesc.
func (d *DescriptorSetLayout) AddBinding(binding vk.DescriptorSetLayoutBinding) {
	d.VKDescriptorSetLayoutBindings = append(d.VKDescriptorSetLayoutBindings, binding)
}

// Destroy destroys this descriptor set layout
func (d *DescriptorSetLayout) Destroy() {
	vk.DestroyDescriptorSetLayout(d.Device.VKDevice, d.VKDescriptorSetLayout, nil)
}

// CreateDescriptorSetLayoutFromDesc builds the native layout object once
// from the desc's descriptors. The desc stays attached to the returned
// layout and never changes afterwards.
func (d *Device) CreateDescriptorSetLayoutFromDesc(desc *SetLayoutDesc) (*DescriptorSetLayout, error) {
	layout := d.NewDescriptorSetLayout()
	layout.Desc = desc
	for _, dd := range desc.Descriptors() {
		layout.AddBinding(dd.VKBinding())
	}
	return d.CreateDescriptorSetLayout(layout)
}

// CreateDescriptorSetLayout creates this descriptor set layout
func (d *Device) CreateDescriptorSetLayout(layout *DescriptorSetLayout) (*DescriptorSetLayout, error) {
	var descriptorSetLayoutCreateInfo = &vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(layout.VKDescriptorSetLayoutBindings)),
		PBindings:    layout.VKDescriptorSetLayoutBindings,
	}

	var descriptorSetLayout vk.DescriptorSetLayout
	err := vk.Error(vk.CreateDescriptorSetLayout(d.VKDevice, descriptorSetLayoutCreateInfo, nil, &descriptorSetLayout))
	if err != nil {
		return nil, fmt.Errorf("unable to create descriptor set layout: %w", err)
	}

	layout.Device = d
	layout.VKDescriptorSetLayout = descriptorSetLayout

	return layout, nil
}
