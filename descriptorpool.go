package vulkano

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// DescriptorPool is an allocation arena for descriptor sets. Its capacity, a
// maximum set count plus a per-kind descriptor quota, is fixed when the pool
// is created; the quota is enforced by the driver, which reports exhaustion
// as an allocation failure. Sets allocated from the pool are implicitly
// freed when the pool is destroyed.
//
// A pool and the sets allocated from it must not be touched from two
// goroutines at once without external locking, same as the native API's
// single-writer rule.
type DescriptorPool struct {
	Device               *Device
	VKDescriptorPool     vk.DescriptorPool
	VKDescriptorPoolSize []vk.DescriptorPoolSize
}

func (d *Device) NewDescriptorPool() *DescriptorPool {
	return &DescriptorPool{Device: d}
}

// AddPoolSize declares how many descriptors of a given kind the pool will
// hold across all sets allocated from it.
func (d *DescriptorPool) AddPoolSize(kind DescriptorKind, count int) {
	d.VKDescriptorPoolSize = append(d.VKDescriptorPoolSize, vk.DescriptorPoolSize{
		Type:            kind.VK(),
		DescriptorCount: uint32(count),
	})
}

// AddPoolSizesForDesc sizes the pool so that setCount sets of the given
// layout fit exactly, summing array counts per kind.
func (d *DescriptorPool) AddPoolSizesForDesc(desc *SetLayoutDesc, setCount int) {
	perKind := map[DescriptorKind]int{}
	for _, dd := range desc.Descriptors() {
		perKind[dd.Kind] += int(dd.ArrayCount)
	}
	for _, dd := range desc.Descriptors() {
		if count, ok := perKind[dd.Kind]; ok {
			d.AddPoolSize(dd.Kind, count*setCount)
			delete(perKind, dd.Kind)
		}
	}
}

// CreateDescriptorPool creates the descriptor pool with the declared sizes
// and a maximum number of sets. Exhaustion later on is surfaced by Allocate,
// never retried here.
func (d *Device) CreateDescriptorPool(pool *DescriptorPool, maxSets int) (*DescriptorPool, error) {

	var descriptorPoolCreateInfo = vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       uint32(maxSets),
		Flags:         vk.DescriptorPoolCreateFlags(vk.DescriptorPoolCreateFreeDescriptorSetBit),
		PoolSizeCount: uint32(len(pool.VKDescriptorPoolSize)),
		PPoolSizes:    pool.VKDescriptorPoolSize,
	}

	var descriptorPool vk.DescriptorPool
	err := vk.Error(vk.CreateDescriptorPool(d.VKDevice, &descriptorPoolCreateInfo, nil, &descriptorPool))

	if err != nil {
		return nil, fmt.Errorf("unable to create descriptor pool: %w", err)
	}

	pool.Device = d
	pool.VKDescriptorPool = descriptorPool

	return pool, nil

}

// Allocate allocates a descriptor set from the pool against a layout built
// with CreateDescriptorSetLayoutFromDesc or CreateDescriptorSetLayout. The
// allocation either fully succeeds or fails; on failure the driver error is
// returned as-is.
func (d *DescriptorPool) Allocate(layout *DescriptorSetLayout) (*DescriptorSet, error) {
	sets, err := d.AllocateMany(layout)
	if err != nil {
		return nil, err
	}
	return sets[0], nil
}

// AllocateMany allocates one descriptor set per layout in a single driver
// call. The driver writes as many handles as layouts were passed, so the
// output slice must hold all of them; each returned set carries the desc of
// its own layout.
func (d *DescriptorPool) AllocateMany(layouts ...*DescriptorSetLayout) ([]*DescriptorSet, error) {
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layouts to allocate descriptor sets against")
	}

	dsl := make([]vk.DescriptorSetLayout, len(layouts))
	for i, ds := range layouts {
		dsl[i] = ds.VKDescriptorSetLayout
	}

	descriptorSetAllocateInfo := vk.DescriptorSetAllocateInfo{}
	descriptorSetAllocateInfo.SType = vk.StructureTypeDescriptorSetAllocateInfo
	descriptorSetAllocateInfo.DescriptorPool = d.VKDescriptorPool
	descriptorSetAllocateInfo.DescriptorSetCount = uint32(len(layouts))
	descriptorSetAllocateInfo.PSetLayouts = dsl

	handles := make([]vk.DescriptorSet, len(layouts))
	err := vk.Error(vk.AllocateDescriptorSets(d.Device.VKDevice, &descriptorSetAllocateInfo, &handles[0]))
	if err != nil {
		return nil, fmt.Errorf("unable to allocate descriptor sets: %w", err)
	}

	return d.wrapSets(layouts, handles), nil
}

func (d *DescriptorPool) wrapSets(layouts []*DescriptorSetLayout, handles []vk.DescriptorSet) []*DescriptorSet {
	sets := make([]*DescriptorSet, len(layouts))
	for i, l := range layouts {
		sets[i] = &DescriptorSet{
			Device:          d.Device,
			DescriptorPool:  d,
			Desc:            l.Desc,
			VKDescriptorSet: handles[i],
		}
	}
	return sets
}

func (d *DescriptorPool) Reset() error {
	return vk.Error(vk.ResetDescriptorPool(d.Device.VKDevice, d.VKDescriptorPool, 0))
}

func (d *DescriptorPool) Free(ds *DescriptorSet) error {
	descriptorSet := ds.VKDescriptorSet
	return vk.Error(vk.FreeDescriptorSets(d.Device.VKDevice, d.VKDescriptorPool, 1, &descriptorSet))
}

// Destroy destroys the pool and with it every set allocated from it. Sets
// become unusable; resources referenced by their writes are unaffected and
// live on with their other holders.
func (d *DescriptorPool) Destroy() {
	vk.DestroyDescriptorPool(d.Device.VKDevice, d.VKDescriptorPool, nil)
}
