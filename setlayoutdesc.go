package vulkano

import (
	"errors"
	"fmt"
)

// Errors reported while decoding descriptor writes against a layout. All of
// them indicate a programming error in the caller, caught here before the
// mismatch can reach the driver.
var (
	ErrUnknownBinding  = errors.New("no such binding in descriptor set layout")
	ErrKindMismatch    = errors.New("descriptor kind does not match layout")
	ErrArrayOutOfRange = errors.New("descriptor array element out of range")
	ErrInitCoverage    = errors.New("initial writes must cover every binding exactly once")
)

// SetLayoutDesc describes the fixed shape of one descriptor set: which
// binding slots exist, what kind of resource each holds, and which shader
// stages see it. It is immutable after construction and is the single place
// where typed application-side bind requests are checked and translated into
// the generic DescriptorWrite records the allocation layer consumes.
type SetLayoutDesc struct {
	descs     []DescriptorDesc
	byBinding map[uint32]DescriptorDesc
}

// NewSetLayoutDesc builds a layout description from the given descriptors.
// Binding indices must be unique and every array count must be at least 1.
func NewSetLayoutDesc(descs ...DescriptorDesc) (*SetLayoutDesc, error) {
	byBinding := make(map[uint32]DescriptorDesc, len(descs))
	for _, d := range descs {
		if d.ArrayCount == 0 {
			return nil, fmt.Errorf("binding %d: array count must be at least 1", d.Binding)
		}
		if _, dup := byBinding[d.Binding]; dup {
			return nil, fmt.Errorf("binding %d declared twice", d.Binding)
		}
		byBinding[d.Binding] = d
	}
	return &SetLayoutDesc{
		descs:     append([]DescriptorDesc(nil), descs...),
		byBinding: byBinding,
	}, nil
}

// MustSetLayoutDesc is NewSetLayoutDesc that panics on error, for layouts
// built from literals.
func MustSetLayoutDesc(descs ...DescriptorDesc) *SetLayoutDesc {
	s, err := NewSetLayoutDesc(descs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Descriptors returns the descriptors of this layout, in declaration order.
// The result is a copy; the same layout always yields the same sequence.
func (s *SetLayoutDesc) Descriptors() []DescriptorDesc {
	return append([]DescriptorDesc(nil), s.descs...)
}

// DescriptorAt returns the descriptor declared at the given binding index.
func (s *SetLayoutDesc) DescriptorAt(binding uint32) (DescriptorDesc, bool) {
	d, ok := s.byBinding[binding]
	return d, ok
}

func (s *SetLayoutDesc) check(p WriteParam) error {
	d, ok := s.byBinding[p.Binding]
	if !ok {
		return fmt.Errorf("%w: binding %d", ErrUnknownBinding, p.Binding)
	}
	if p.Bind == nil {
		return fmt.Errorf("binding %d: nil bind payload", p.Binding)
	}
	if got := p.Bind.Kind(); got != d.Kind {
		return fmt.Errorf("%w: binding %d holds %v, got %v", ErrKindMismatch, p.Binding, d.Kind, got)
	}
	if err := p.Bind.validate(); err != nil {
		return fmt.Errorf("binding %d: %w", p.Binding, err)
	}
	if p.ArrayElement >= d.ArrayCount {
		return fmt.Errorf("%w: binding %d element %d, count %d", ErrArrayOutOfRange, p.Binding, p.ArrayElement, d.ArrayCount)
	}
	return nil
}

// DecodeWrite translates typed bind parameters into generic write records,
// validating each against the declared layout. It fails on an unknown
// binding, a payload kind that differs from the declared kind, or an array
// element beyond the declared count. Nothing is applied here; the returned
// records are handed to DescriptorSet.ApplyWrites.
func (s *SetLayoutDesc) DecodeWrite(params ...WriteParam) ([]DescriptorWrite, error) {
	writes := make([]DescriptorWrite, 0, len(params))
	for _, p := range params {
		if err := s.check(p); err != nil {
			return nil, err
		}
		writes = append(writes, DescriptorWrite{
			Binding:      p.Binding,
			ArrayElement: p.ArrayElement,
			Bind:         p.Bind,
		})
	}
	return writes, nil
}

// DecodeInit is DecodeWrite for the initial population of a freshly
// allocated set. On top of the per-write checks, the parameters must cover
// every array element of every binding exactly once, so a set can never
// leave initialization with a dangling slot.
func (s *SetLayoutDesc) DecodeInit(params ...WriteParam) ([]DescriptorWrite, error) {
	writes, err := s.DecodeWrite(params...)
	if err != nil {
		return nil, err
	}

	type slot struct{ binding, element uint32 }
	seen := make(map[slot]bool, len(writes))
	for _, w := range writes {
		k := slot{w.Binding, w.ArrayElement}
		if seen[k] {
			return nil, fmt.Errorf("%w: binding %d element %d written twice", ErrInitCoverage, w.Binding, w.ArrayElement)
		}
		seen[k] = true
	}
	for _, d := range s.descs {
		for e := uint32(0); e < d.ArrayCount; e++ {
			if !seen[slot{d.Binding, e}] {
				return nil, fmt.Errorf("%w: binding %d element %d not written", ErrInitCoverage, d.Binding, e)
			}
		}
	}
	return writes, nil
}

// IsCompatibleWith reports whether two layout descriptions are structurally
// identical: the same binding indices with the same kinds, array counts and
// stage sets. A pipeline built against one layout may be used with a
// descriptor set built against any compatible layout.
func (s *SetLayoutDesc) IsCompatibleWith(other *SetLayoutDesc) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.byBinding) != len(other.byBinding) {
		return false
	}
	for binding, d := range s.byBinding {
		o, ok := other.byBinding[binding]
		if !ok || o != d {
			return false
		}
	}
	return true
}
