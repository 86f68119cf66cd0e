package vulkano

import (
	"errors"
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func testLayout(t *testing.T) *SetLayoutDesc {
	t.Helper()
	desc, err := NewSetLayoutDesc(
		DescriptorDesc{Binding: 0, Kind: KindUniformBuffer, ArrayCount: 1, Stages: AllGraphicsStages()},
		DescriptorDesc{Binding: 1, Kind: KindCombinedImageSampler, ArrayCount: 4, Stages: ShaderStages{Fragment: true}},
	)
	if err != nil {
		t.Fatalf("unable to build layout: %v", err)
	}
	return desc
}

func uniformBind() DescriptorBind {
	return UniformBufferBind{Buffer: &Buffer{Size: 256}}
}

func samplerBind() DescriptorBind {
	return CombinedImageSamplerBind{Layout: vk.ImageLayoutShaderReadOnlyOptimal}
}

func TestNewSetLayoutDescRejectsDuplicateBinding(t *testing.T) {
	_, err := NewSetLayoutDesc(
		DescriptorDesc{Binding: 0, Kind: KindUniformBuffer, ArrayCount: 1},
		DescriptorDesc{Binding: 0, Kind: KindStorageBuffer, ArrayCount: 1},
	)
	if err == nil {
		t.Error("expected error for duplicate binding")
	}
}

func TestNewSetLayoutDescRejectsZeroArrayCount(t *testing.T) {
	_, err := NewSetLayoutDesc(
		DescriptorDesc{Binding: 0, Kind: KindUniformBuffer, ArrayCount: 0},
	)
	if err == nil {
		t.Error("expected error for zero array count")
	}
}

func TestDescriptorAt(t *testing.T) {
	desc := testLayout(t)
	d, ok := desc.DescriptorAt(1)
	if !ok {
		t.Fatal("binding 1 not found")
	}
	if d.Kind != KindCombinedImageSampler || d.ArrayCount != 4 {
		t.Errorf("unexpected descriptor at binding 1: %+v", d)
	}
	if _, ok := desc.DescriptorAt(7); ok {
		t.Error("binding 7 should not exist")
	}
}

func TestDecodeWrite(t *testing.T) {
	desc := testLayout(t)
	writes, err := desc.DecodeWrite(
		WriteParam{Binding: 0, Bind: uniformBind()},
		WriteParam{Binding: 1, ArrayElement: 3, Bind: samplerBind()},
	)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(writes) != 2 {
		t.Fatalf("got %d writes, want 2", len(writes))
	}
	if writes[0].Binding != 0 || writes[1].ArrayElement != 3 {
		t.Errorf("writes carry wrong targets: %+v", writes)
	}
}

func TestDecodeWriteUnknownBinding(t *testing.T) {
	desc := testLayout(t)
	_, err := desc.DecodeWrite(WriteParam{Binding: 2, Bind: uniformBind()})
	if !errors.Is(err, ErrUnknownBinding) {
		t.Errorf("got %v, want ErrUnknownBinding", err)
	}
}

func TestDecodeWriteKindMismatch(t *testing.T) {
	desc := testLayout(t)
	_, err := desc.DecodeWrite(WriteParam{Binding: 0, Bind: samplerBind()})
	if !errors.Is(err, ErrKindMismatch) {
		t.Errorf("got %v, want ErrKindMismatch", err)
	}
}

func TestDecodeWriteArrayOutOfRange(t *testing.T) {
	desc := testLayout(t)
	_, err := desc.DecodeWrite(WriteParam{Binding: 1, ArrayElement: 4, Bind: samplerBind()})
	if !errors.Is(err, ErrArrayOutOfRange) {
		t.Errorf("got %v, want ErrArrayOutOfRange", err)
	}
}

func TestDecodeWriteBadUniformBufferBind(t *testing.T) {
	desc := testLayout(t)

	// an offset at or past the end of the buffer would make the bound
	// range wrap around
	_, err := desc.DecodeWrite(WriteParam{
		Binding: 0,
		Bind:    UniformBufferBind{Buffer: &Buffer{Size: 256}, Offset: 300},
	})
	if err == nil {
		t.Error("expected error for offset beyond buffer size")
	}

	_, err = desc.DecodeWrite(WriteParam{
		Binding: 0,
		Bind:    UniformBufferBind{Buffer: &Buffer{Size: 256}, Offset: 256},
	})
	if err == nil {
		t.Error("expected error for offset equal to buffer size")
	}

	_, err = desc.DecodeWrite(WriteParam{
		Binding: 0,
		Bind:    UniformBufferBind{},
	})
	if err == nil {
		t.Error("expected error for nil buffer")
	}
}

func TestDecodeInit(t *testing.T) {
	desc := testLayout(t)
	params := []WriteParam{
		{Binding: 0, Bind: uniformBind()},
		{Binding: 1, ArrayElement: 0, Bind: samplerBind()},
		{Binding: 1, ArrayElement: 1, Bind: samplerBind()},
		{Binding: 1, ArrayElement: 2, Bind: samplerBind()},
		{Binding: 1, ArrayElement: 3, Bind: samplerBind()},
	}
	writes, err := desc.DecodeInit(params...)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(writes) != 5 {
		t.Errorf("got %d writes, want 5", len(writes))
	}
}

func TestDecodeInitMissingElement(t *testing.T) {
	desc := testLayout(t)
	_, err := desc.DecodeInit(
		WriteParam{Binding: 0, Bind: uniformBind()},
		WriteParam{Binding: 1, ArrayElement: 0, Bind: samplerBind()},
	)
	if !errors.Is(err, ErrInitCoverage) {
		t.Errorf("got %v, want ErrInitCoverage", err)
	}
}

func TestDecodeInitDuplicateElement(t *testing.T) {
	desc := testLayout(t)
	_, err := desc.DecodeInit(
		WriteParam{Binding: 0, Bind: uniformBind()},
		WriteParam{Binding: 0, Bind: uniformBind()},
		WriteParam{Binding: 1, ArrayElement: 0, Bind: samplerBind()},
		WriteParam{Binding: 1, ArrayElement: 1, Bind: samplerBind()},
		WriteParam{Binding: 1, ArrayElement: 2, Bind: samplerBind()},
		WriteParam{Binding: 1, ArrayElement: 3, Bind: samplerBind()},
	)
	if !errors.Is(err, ErrInitCoverage) {
		t.Errorf("got %v, want ErrInitCoverage", err)
	}
}

func TestSetLayoutDescCompatibility(t *testing.T) {
	a := testLayout(t)
	b := testLayout(t)
	if !a.IsCompatibleWith(b) {
		t.Error("identical layouts should be compatible")
	}

	c := MustSetLayoutDesc(
		DescriptorDesc{Binding: 0, Kind: KindStorageBuffer, ArrayCount: 1, Stages: AllGraphicsStages()},
		DescriptorDesc{Binding: 1, Kind: KindCombinedImageSampler, ArrayCount: 4, Stages: ShaderStages{Fragment: true}},
	)
	if a.IsCompatibleWith(c) {
		t.Error("layouts with different kinds should not be compatible")
	}

	d := MustSetLayoutDesc(
		DescriptorDesc{Binding: 0, Kind: KindUniformBuffer, ArrayCount: 1, Stages: AllGraphicsStages()},
	)
	if a.IsCompatibleWith(d) {
		t.Error("layouts with different binding counts should not be compatible")
	}
}

func TestPipelineLayoutDescCompatibility(t *testing.T) {
	a := NewPipelineLayoutDesc(testLayout(t))
	b := NewPipelineLayoutDesc(testLayout(t))
	if !a.IsCompatibleWith(b) {
		t.Error("identical pipeline layouts should be compatible")
	}

	b.AddPushConstantRange(vk.PushConstantRange{
		StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		Offset:     0,
		Size:       64,
	})
	if a.IsCompatibleWith(b) {
		t.Error("push constant ranges should break compatibility")
	}

	a.AddPushConstantRange(vk.PushConstantRange{
		StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		Offset:     0,
		Size:       64,
	})
	if !a.IsCompatibleWith(b) {
		t.Error("matching push constant ranges should restore compatibility")
	}

	c := NewPipelineLayoutDesc()
	if a.IsCompatibleWith(c) {
		t.Error("pipeline layouts with different set counts should not be compatible")
	}
}

func TestShaderStagesVKFlags(t *testing.T) {
	all := AllGraphicsStages().VKFlags()
	if all&vk.ShaderStageFlags(vk.ShaderStageVertexBit) == 0 {
		t.Error("graphics stages missing vertex bit")
	}
	if all&vk.ShaderStageFlags(vk.ShaderStageFragmentBit) == 0 {
		t.Error("graphics stages missing fragment bit")
	}
	if all&vk.ShaderStageFlags(vk.ShaderStageComputeBit) != 0 {
		t.Error("graphics stages should not include compute")
	}

	compute := ComputeStages().VKFlags()
	if compute != vk.ShaderStageFlags(vk.ShaderStageComputeBit) {
		t.Errorf("compute stages = %v", compute)
	}
}

func TestDescriptorDescVKBinding(t *testing.T) {
	d := DescriptorDesc{Binding: 3, Kind: KindUniformBuffer, ArrayCount: 2, Stages: ShaderStages{Vertex: true}}
	b := d.VKBinding()
	if b.Binding != 3 || b.DescriptorCount != 2 {
		t.Errorf("unexpected native binding: %+v", b)
	}
	if b.DescriptorType != vk.DescriptorTypeUniformBuffer {
		t.Errorf("descriptor type = %v", b.DescriptorType)
	}
	if b.StageFlags != vk.ShaderStageFlags(vk.ShaderStageVertexBit) {
		t.Errorf("stage flags = %v", b.StageFlags)
	}
}

func TestAddPoolSizesForDesc(t *testing.T) {
	desc := testLayout(t)
	pool := &DescriptorPool{}
	pool.AddPoolSizesForDesc(desc, 3)

	counts := make(map[vk.DescriptorType]uint32)
	for _, s := range pool.VKDescriptorPoolSize {
		counts[s.Type] += s.DescriptorCount
	}
	if counts[vk.DescriptorTypeUniformBuffer] != 3 {
		t.Errorf("uniform buffer count = %d, want 3", counts[vk.DescriptorTypeUniformBuffer])
	}
	if counts[vk.DescriptorTypeCombinedImageSampler] != 12 {
		t.Errorf("combined image sampler count = %d, want 12", counts[vk.DescriptorTypeCombinedImageSampler])
	}
}
