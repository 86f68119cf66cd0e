package vulkano

import (
	vk "github.com/vulkan-go/vulkan"
)

// BufferObject is any bit of data which can present itself as bytes
// for upload into a buffer.
type BufferObject interface {
	Bytes() []byte
}

// IndexSource provides index data for indexed draws.
type IndexSource interface {
	BufferObject
	IndexType() vk.IndexType
}

// VertexSource provides vertex data along with the input bindings and
// attributes which describe it to a pipeline.
type VertexSource interface {
	BufferObject
	GetBindingDescription() vk.VertexInputBindingDescription
	GetAttributeDescriptions() []vk.VertexInputAttributeDescription
}

// MutableBufferObject is a buffer object whose contents change over time
// and which must be synchronized before recopying.
type MutableBufferObject interface {
	IsValid() bool
	Invalidate()

	// Lock prior to copying the data
	Lock()
	// Unlock after copying the data
	Unlock()
}
