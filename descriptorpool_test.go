package vulkano

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestWrapSetsOnePerLayout(t *testing.T) {
	uboLayout := &DescriptorSetLayout{
		Desc: MustSetLayoutDesc(
			DescriptorDesc{Binding: 0, Kind: KindUniformBuffer, ArrayCount: 1, Stages: AllGraphicsStages()},
		),
	}
	samplerLayout := &DescriptorSetLayout{
		Desc: MustSetLayoutDesc(
			DescriptorDesc{Binding: 0, Kind: KindCombinedImageSampler, ArrayCount: 2, Stages: ShaderStages{Fragment: true}},
		),
	}

	pool := &DescriptorPool{}
	handles := make([]vk.DescriptorSet, 2)
	sets := pool.wrapSets([]*DescriptorSetLayout{uboLayout, samplerLayout}, handles)

	if len(sets) != 2 {
		t.Fatalf("got %d sets, want one per layout", len(sets))
	}
	if sets[0].Desc != uboLayout.Desc {
		t.Error("first set does not carry the first layout's desc")
	}
	if sets[1].Desc != samplerLayout.Desc {
		t.Error("second set does not carry the second layout's desc")
	}
	for i, s := range sets {
		if s.DescriptorPool != pool {
			t.Errorf("set %d not linked to its pool", i)
		}
	}
}

func TestAllocateManyNoLayouts(t *testing.T) {
	pool := &DescriptorPool{}
	if _, err := pool.AllocateMany(); err == nil {
		t.Error("expected error allocating with no layouts")
	}
}
