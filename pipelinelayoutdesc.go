package vulkano

import (
	vk "github.com/vulkan-go/vulkan"
)

// PipelineLayoutDesc describes the shape of a whole pipeline layout: the
// ordered descriptor set layouts plus any push constant ranges. Set index i
// in shader code refers to SetLayouts()[i].
type PipelineLayoutDesc struct {
	sets          []*SetLayoutDesc
	pushConstants []vk.PushConstantRange
}

// NewPipelineLayoutDesc builds a pipeline layout description over the given
// set layout descriptions, in set index order.
func NewPipelineLayoutDesc(sets ...*SetLayoutDesc) *PipelineLayoutDesc {
	return &PipelineLayoutDesc{sets: append([]*SetLayoutDesc(nil), sets...)}
}

// AddPushConstantRange declares a push constant range on the layout.
func (p *PipelineLayoutDesc) AddPushConstantRange(r vk.PushConstantRange) {
	p.pushConstants = append(p.pushConstants, r)
}

// SetLayouts returns the set layout descriptions in set index order.
func (p *PipelineLayoutDesc) SetLayouts() []*SetLayoutDesc {
	return append([]*SetLayoutDesc(nil), p.sets...)
}

// PushConstantRanges returns the declared push constant ranges.
func (p *PipelineLayoutDesc) PushConstantRanges() []vk.PushConstantRange {
	return append([]vk.PushConstantRange(nil), p.pushConstants...)
}

// IsCompatibleWith reports whether two pipeline layout descriptions are
// structurally identical: pairwise compatible set layouts at every set index
// and equal push constant ranges.
func (p *PipelineLayoutDesc) IsCompatibleWith(other *PipelineLayoutDesc) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.sets) != len(other.sets) {
		return false
	}
	for i, s := range p.sets {
		if !s.IsCompatibleWith(other.sets[i]) {
			return false
		}
	}
	if len(p.pushConstants) != len(other.pushConstants) {
		return false
	}
	for i, r := range p.pushConstants {
		if r != other.pushConstants[i] {
			return false
		}
	}
	return true
}
