package vulkano

import (
	"fmt"
	"strings"

	vk "github.com/vulkan-go/vulkan"
)

// Buffer are used to map hunks of data that are then bound to resources used by the pipeline
// and command buffers to render data.
type Buffer struct {
	Device   *Device
	VKBuffer vk.Buffer
	Size     uint64
	Usage    vk.BufferUsageFlagBits
}

func usageToString(usage vk.BufferUsageFlagBits) string {
	names := make([]string, 0)
	if usage&vk.BufferUsageVertexBufferBit != 0 {
		names = append(names, "vertex")
	}
	if usage&vk.BufferUsageIndexBufferBit != 0 {
		names = append(names, "index")
	}
	if usage&vk.BufferUsageUniformBufferBit != 0 {
		names = append(names, "uniform")
	}
	if usage&vk.BufferUsageStorageBufferBit != 0 {
		names = append(names, "storage")
	}
	if usage&vk.BufferUsageTransferSrcBit != 0 {
		names = append(names, "transfer-src")
	}
	if usage&vk.BufferUsageTransferDstBit != 0 {
		names = append(names, "transfer-dst")
	}
	if len(names) == 0 {
		return fmt.Sprintf("0x%x", int(usage))
	}
	return strings.Join(names, "|")
}

func (b *Buffer) String() string {
	return fmt.Sprintf("{ Size: %d Usage: %s }", b.Size, usageToString(b.Usage))
}

func (d *Device) CreateBuffer(sizeInBytes uint64) (*Buffer, error) {
	return d.CreateBufferWithOptions(sizeInBytes, vk.BufferUsageFlags(vk.BufferUsageStorageBufferBit), vk.SharingModeExclusive)
}

func (d *Device) CreateBufferWithOptions(sizeInBytes uint64, usage vk.BufferUsageFlags, sharing vk.SharingMode) (*Buffer, error) {

	bufferCreateInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(sizeInBytes),
		Usage:       usage,
		SharingMode: sharing,
	}

	var buffer vk.Buffer
	err := vk.Error(vk.CreateBuffer(d.VKDevice, &bufferCreateInfo, nil, &buffer))
	if err != nil {
		return nil, err
	}

	var ret Buffer
	ret.VKBuffer = buffer
	ret.Device = d
	ret.Size = sizeInBytes
	ret.Usage = vk.BufferUsageFlagBits(usage)

	return &ret, nil

}

func (b *Buffer) VKMemoryRequirements() vk.MemoryRequirements {
	var memoryRequirements vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(b.Device.VKDevice, b.VKBuffer, &memoryRequirements)
	return memoryRequirements
}

func (b *Buffer) DSInfo(offset int) vk.DescriptorBufferInfo {
	var descriptorBufferInfo = vk.DescriptorBufferInfo{}
	descriptorBufferInfo.Buffer = b.VKBuffer
	descriptorBufferInfo.Offset = vk.DeviceSize(offset)
	descriptorBufferInfo.Range = vk.DeviceSize(b.Size)
	return descriptorBufferInfo
}

func (b *Buffer) AllocationRequirments() *AllocationRequirements {
	memoryRequirements := b.VKMemoryRequirements()
	mr := &memoryRequirements
	mr.Deref()

	return &AllocationRequirements{
		Size:           int(mr.Size),
		MemoryTypeBits: mr.MemoryTypeBits,
	}
}

func (b *Buffer) Bind(memory *DeviceMemory, offset uint64) error {
	return vk.Error((vk.BindBufferMemory(b.Device.VKDevice, b.VKBuffer, memory.VKDeviceMemory, vk.DeviceSize(offset))))
}

func (b *Buffer) Destroy() {
	vk.DestroyBuffer(b.Device.VKDevice, b.VKBuffer, nil)
}
