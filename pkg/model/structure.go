/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"sort"
	"strings"

	"github.com/khaeru/sdmx/pkg/urn"
)

// DataStructureDefinition (DSD) binds together the dimensions, attributes
// and measure that give meaning to the data of a flow. Content constraints
// may attach to it.
type DataStructureDefinition struct {
	MaintainableArtefact

	Dimensions *DimensionDescriptor
	Attributes *AttributeDescriptor
	Measures   *MeasureDescriptor

	groups []*GroupDimensionDescriptor
}

func (*DataStructureDefinition) constrainableArtefact() {}

// NewDataStructureDefinition builds an empty DSD with its three component
// descriptors in place.
func NewDataStructureDefinition(id string, opts ...Option) (*DataStructureDefinition, error) {
	m, err := makeMaintainable(urn.Class_DataStructureDefinition, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	dd, err := NewDimensionDescriptor()
	if err != nil {
		return nil, err
	}
	ad, err := NewAttributeDescriptor()
	if err != nil {
		return nil, err
	}
	md, err := NewMeasureDescriptor()
	if err != nil {
		return nil, err
	}
	return &DataStructureDefinition{
		MaintainableArtefact: m,
		Dimensions:           dd,
		Attributes:           ad,
		Measures:             md,
	}, nil
}

// Dimension returns the dimension with the given id.
func (dsd *DataStructureDefinition) Dimension(id string) (DimensionComponent, error) {
	return dsd.Dimensions.Get(id)
}

// Attribute returns the data attribute with the given id.
func (dsd *DataStructureDefinition) Attribute(id string) (*DataAttribute, error) {
	return dsd.Attributes.Get(id)
}

// Groups returns the group dimension descriptors in order of addition.
func (dsd *DataStructureDefinition) Groups() []*GroupDimensionDescriptor {
	out := make([]*GroupDimensionDescriptor, len(dsd.groups))
	copy(out, dsd.groups)
	return out
}

// Group returns the group dimension descriptor with the given id.
func (dsd *DataStructureDefinition) Group(id string) (*GroupDimensionDescriptor, error) {
	for _, g := range dsd.groups {
		if g.ID() == id {
			return g, nil
		}
	}
	return nil, ErrNotFound("group «%v» in DSD «%v»", id, dsd.id)
}

// AddGroup registers a group dimension descriptor; its id must be unique
// within the DSD.
func (dsd *DataStructureDefinition) AddGroup(g *GroupDimensionDescriptor) error {
	if _, err := dsd.Group(g.ID()); err == nil {
		return ErrAlreadyExists("group «%v» in DSD «%v»", g.ID(), dsd.id)
	}
	dsd.groups = append(dsd.groups, g)
	return nil
}

// orderedDims returns the dimensions sorted by position.
func (dsd *DataStructureDefinition) orderedDims() []DimensionComponent {
	dims := dsd.Dimensions.Components()
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].Order() < dims[j].Order() })
	return dims
}

// makeKey assembles key values against a dimension descriptor. The key
// follows the descriptor's dimension order; ids not known to the descriptor
// are an error unless extend is set, in which case matching dimensions are
// created (in sorted id order, for determinism) and appended.
func makeKey(dd *DimensionDescriptor, values map[string]any, extend bool) (*Key, error) {
	key := &Key{describedBy: dd}
	seen := make(map[string]bool, len(values))

	dims := dd.Components()
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].Order() < dims[j].Order() })
	for _, dim := range dims {
		v, ok := values[dim.ID()]
		if !ok {
			continue
		}
		key.values = append(key.values, KeyValue{ID: dim.ID(), Value: v, ValueFor: dim})
		seen[dim.ID()] = true
	}

	var rest []string
	for id := range values {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		if !extend {
			return nil, ErrDimensionNotFound(id)
		}
		dim, err := dd.SetDefault(id)
		if err != nil {
			return nil, err
		}
		key.values = append(key.values, KeyValue{ID: id, Value: values[id], ValueFor: dim})
	}
	return key, nil
}

// partitionValues splits raw key/value input: ids naming a data attribute of
// the DSD become attribute values, the rest are dimension values.
func (dsd *DataStructureDefinition) partitionValues(values map[string]any) (map[string]any, map[string]*AttributeValue) {
	dims := make(map[string]any, len(values))
	attrs := make(map[string]*AttributeValue)
	for id, v := range values {
		if da, err := dsd.Attributes.Get(id); err == nil {
			attrs[id] = &AttributeValue{Value: v, ValueFor: da}
			continue
		}
		dims[id] = v
	}
	return dims, attrs
}

// MakeKey builds a full key from the given values, ordered by the DSD's
// dimensions. Values naming a data attribute attach to the key as attribute
// values instead. With extend, values for unknown dimensions create them.
func (dsd *DataStructureDefinition) MakeKey(values map[string]any, extend bool) (*Key, error) {
	dims, attrs := dsd.partitionValues(values)
	key, err := makeKey(dsd.Dimensions, dims, extend)
	if err != nil {
		return nil, err
	}
	for id, av := range attrs {
		key.SetAttrib(id, av)
	}
	return key, nil
}

// MakeSeriesKey builds a series key the same way as MakeKey.
func (dsd *DataStructureDefinition) MakeSeriesKey(values map[string]any, extend bool) (*SeriesKey, error) {
	k, err := dsd.MakeKey(values, extend)
	if err != nil {
		return nil, err
	}
	return &SeriesKey{Key: *k}, nil
}

// MakeGroupKey builds a group key against the group dimension descriptor
// with the given id. An empty groupID builds an anonymous group key,
// validated against the DSD's own dimensions and described by no group. With
// extend, a missing group descriptor is created and its dimensions are drawn
// from the DSD's dimensions (created there too when absent).
func (dsd *DataStructureDefinition) MakeGroupKey(groupID string, values map[string]any, extend bool) (*GroupKey, error) {
	dimValues, attrs := dsd.partitionValues(values)
	if groupID == "" {
		k, err := makeKey(dsd.Dimensions, dimValues, extend)
		if err != nil {
			return nil, err
		}
		k.describedBy = nil
		for id, av := range attrs {
			k.SetAttrib(id, av)
		}
		return &GroupKey{Key: *k}, nil
	}
	gdd, err := dsd.Group(groupID)
	if err != nil {
		if !extend {
			return nil, err
		}
		gdd, err = NewGroupDimensionDescriptor(groupID)
		if err != nil {
			return nil, err
		}
		if err := dsd.AddGroup(gdd); err != nil {
			return nil, err
		}
	}
	if extend {
		// dimensions unknown to the group go to the DSD as well
		ids := make([]string, 0, len(dimValues))
		for id := range dimValues {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if _, err := gdd.Get(id); err == nil {
				continue
			}
			dim, err := dsd.Dimensions.SetDefault(id)
			if err != nil {
				return nil, err
			}
			if err := gdd.Append(dim); err != nil {
				return nil, err
			}
		}
	}
	k, err := makeKey(&gdd.DimensionDescriptor, dimValues, false)
	if err != nil {
		return nil, err
	}
	for id, av := range attrs {
		k.SetAttrib(id, av)
	}
	return &GroupKey{Key: *k, ID: groupID, DescribedBy: gdd}, nil
}

// MakeConstraint builds an allowable content constraint with a single
// inclusive cube region selecting, for each given dimension, exactly the
// given values. A value may pack several codes joined by "+". Unknown
// dimension ids are an error.
func (dsd *DataStructureDefinition) MakeConstraint(values map[string][]string) (*ContentConstraint, error) {
	cr := NewCubeRegion(true)
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		dim, err := dsd.Dimensions.Get(id)
		if err != nil {
			return nil, err
		}
		var vv []string
		for _, v := range values[id] {
			vv = append(vv, strings.Split(v, "+")...)
		}
		cr.Members[id] = NewMemberSelection(dim, vv...)
	}
	cc, err := NewContentConstraint(dsd.id+"_ALLOWABLE", ConstraintRoleType_Allowable)
	if err != nil {
		return nil, err
	}
	cc.DataContentRegions = append(cc.DataContentRegions, cr)
	cc.ContentOf = append(cc.ContentOf, dsd)
	return cc, nil
}

// NewDSDFromKeys infers a minimal DSD from observed keys: one dimension per
// key value id, each enumerated by a codelist of the observed values.
func NewDSDFromKeys(id string, keys ...*Key) (*DataStructureDefinition, error) {
	dsd, err := NewDataStructureDefinition(id)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		for _, kv := range key.Values() {
			dim, err := dsd.Dimensions.SetDefault(kv.ID)
			if err != nil {
				return nil, err
			}
			base := dim.ComponentBase()
			if base.LocalRepresentation == nil {
				cl, err := NewCodelist(kv.ID)
				if err != nil {
					return nil, err
				}
				base.LocalRepresentation = &Representation{Enumerated: cl}
			}
			cl, ok := base.LocalRepresentation.Enumerated.(*Codelist)
			if !ok {
				return nil, ErrConsistency("dimension «%v» is not enumerated by a codelist", kv.ID)
			}
			if _, err := cl.SetDefault(stringValue(kv.Value)); err != nil {
				return nil, err
			}
		}
	}
	return dsd, nil
}
