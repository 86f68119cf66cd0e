package vulkano

import (
	vk "github.com/vulkan-go/vulkan"
)

// ShaderStages describes which shader stages may access a descriptor.
type ShaderStages struct {
	Vertex                 bool
	TessellationControl    bool
	TessellationEvaluation bool
	Geometry               bool
	Fragment               bool
	Compute                bool
}

// AllGraphicsStages returns a ShaderStages with every graphics stage set and
// the compute stage unset.
func AllGraphicsStages() ShaderStages {
	return ShaderStages{
		Vertex:                 true,
		TessellationControl:    true,
		TessellationEvaluation: true,
		Geometry:               true,
		Fragment:               true,
		Compute:                false,
	}
}

// ComputeStages returns a ShaderStages with only the compute stage set.
func ComputeStages() ShaderStages {
	return ShaderStages{Compute: true}
}

// VKFlags converts the stage set into the native flag bits.
func (s ShaderStages) VKFlags() vk.ShaderStageFlags {
	var flags vk.ShaderStageFlags
	if s.Vertex {
		flags |= vk.ShaderStageFlags(vk.ShaderStageVertexBit)
	}
	if s.TessellationControl {
		flags |= vk.ShaderStageFlags(vk.ShaderStageTessellationControlBit)
	}
	if s.TessellationEvaluation {
		flags |= vk.ShaderStageFlags(vk.ShaderStageTessellationEvaluationBit)
	}
	if s.Geometry {
		flags |= vk.ShaderStageFlags(vk.ShaderStageGeometryBit)
	}
	if s.Fragment {
		flags |= vk.ShaderStageFlags(vk.ShaderStageFragmentBit)
	}
	if s.Compute {
		flags |= vk.ShaderStageFlags(vk.ShaderStageComputeBit)
	}
	return flags
}
