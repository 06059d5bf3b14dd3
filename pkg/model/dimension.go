/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"sort"

	"github.com/khaeru/sdmx/pkg/urn"
)

// DimensionComponent is satisfied by the dimension kinds: *Dimension,
// *TimeDimension and *MeasureDimension.
type DimensionComponent interface {
	Componenter
	orderedComponent
	dimensionComponent()
}

// Dimension identifies one axis of the statistical cube.
type Dimension struct {
	Component
	order int
}

func (*Dimension) dimensionComponent() {}

// Order is the 1-based position of the dimension within its descriptor;
// 0 while unassigned.
func (d *Dimension) Order() int { return d.order }

// SetOrder assigns the position explicitly, overriding auto-assignment.
func (d *Dimension) SetOrder(order int) { d.order = order }

func newDimensionAs(class urn.Class, id string, cfg *artefactConfig) (Dimension, error) {
	ident, err := makeIdentifiable(class, id, cfg)
	if err != nil {
		return Dimension{}, err
	}
	return Dimension{Component: Component{IdentifiableArtefact: ident}}, nil
}

func newDimension(id string, cfg *artefactConfig) (*Dimension, error) {
	d, err := newDimensionAs(urn.Class_Dimension, id, cfg)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func NewDimension(id string, opts ...Option) (*Dimension, error) {
	return newDimension(id, newConfig(opts))
}

// TimeDimension is the at-most-one dimension carrying the time period of
// observations.
type TimeDimension struct {
	Dimension
}

func NewTimeDimension(id string, opts ...Option) (*TimeDimension, error) {
	d, err := newDimensionAs(urn.Class_TimeDimension, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &TimeDimension{Dimension: d}, nil
}

// MeasureDimension is a dimension whose values select among several measures;
// its representation enumerates a concept scheme.
type MeasureDimension struct {
	Dimension
}

func NewMeasureDimension(id string, opts ...Option) (*MeasureDimension, error) {
	d, err := newDimensionAs(urn.Class_MeasureDimension, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &MeasureDimension{Dimension: d}, nil
}

// DimensionDescriptor orders the dimensions of a data structure definition.
type DimensionDescriptor struct {
	ComponentList[DimensionComponent]
}

// DefaultDimensionDescriptorID is the conventional id of the single dimension
// descriptor of a data structure definition.
const DefaultDimensionDescriptorID = "DimensionDescriptor"

func dimensionFactory(id string, cfg *artefactConfig) (DimensionComponent, error) {
	return newDimension(id, cfg)
}

func newDimensionDescriptor(class urn.Class, id string, cfg *artefactConfig) (DimensionDescriptor, error) {
	ident, err := makeIdentifiable(class, id, cfg)
	if err != nil {
		return DimensionDescriptor{}, err
	}
	dd := DimensionDescriptor{}
	dd.IdentifiableArtefact = ident
	dd.ComponentList.init(dimensionFactory)
	return dd, nil
}

func NewDimensionDescriptor(opts ...Option) (*DimensionDescriptor, error) {
	dd, err := newDimensionDescriptor(urn.Class_DimensionDescriptor, DefaultDimensionDescriptorID, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &dd, nil
}

// NewDimensionDescriptorFromKey infers a descriptor from a single key: one
// dimension per key value, ordered as in the key, each represented by a
// one-code codelist holding the observed value.
func NewDimensionDescriptorFromKey(key *Key) (*DimensionDescriptor, error) {
	dd, err := NewDimensionDescriptor()
	if err != nil {
		return nil, err
	}
	for _, kv := range key.Values() {
		dim, err := NewDimension(kv.ID)
		if err != nil {
			return nil, err
		}
		cl, err := NewCodelist(kv.ID)
		if err != nil {
			return nil, err
		}
		if _, err := cl.SetDefault(stringValue(kv.Value)); err != nil {
			return nil, err
		}
		dim.LocalRepresentation = &Representation{Enumerated: cl}
		if err := dd.Append(dim); err != nil {
			return nil, err
		}
	}
	return dd, nil
}

// OrderKey returns a copy of key with its values rearranged to the order of
// the dimensions of the descriptor. Key values for unknown dimensions are
// dropped.
func (dd *DimensionDescriptor) OrderKey(key *Key) *Key {
	dims := dd.Components()
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].Order() < dims[j].Order() })
	out := &Key{describedBy: dd, attrib: key.cloneAttrib()}
	for _, dim := range dims {
		if kv, ok := key.Get(dim.ID()); ok {
			out.values = append(out.values, kv)
		}
	}
	return out
}

// AssignOrder renumbers the dimensions 1..n in their current list order,
// overwriting any previous positions.
func (dd *DimensionDescriptor) AssignOrder() {
	for i, dim := range dd.components {
		dim.SetOrder(i + 1)
	}
}

// GroupDimensionDescriptor names a subset of the dimensions; group keys and
// group-attached attributes refer to it.
type GroupDimensionDescriptor struct {
	DimensionDescriptor
}

func (*GroupDimensionDescriptor) constrainableArtefact() {}

// AssignOrder is a no-op: group dimensions keep the positions assigned by the
// full dimension descriptor they are drawn from.
func (*GroupDimensionDescriptor) AssignOrder() {}

func newGroupDimensionDescriptor(id string, cfg *artefactConfig) (*GroupDimensionDescriptor, error) {
	dd, err := newDimensionDescriptor(urn.Class_GroupDimensionDescriptor, id, cfg)
	if err != nil {
		return nil, err
	}
	return &GroupDimensionDescriptor{DimensionDescriptor: dd}, nil
}

func NewGroupDimensionDescriptor(id string, opts ...Option) (*GroupDimensionDescriptor, error) {
	return newGroupDimensionDescriptor(id, newConfig(opts))
}
