/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// AttributeRelationship states what a data attribute's values attach to.
type AttributeRelationship interface {
	attributeRelationship()
}

// NoSpecifiedRelationship attaches attribute values to the whole data set.
type NoSpecifiedRelationship struct{}

func (NoSpecifiedRelationship) attributeRelationship() {}

// PrimaryMeasureRelationship attaches attribute values to individual
// observations.
type PrimaryMeasureRelationship struct{}

func (PrimaryMeasureRelationship) attributeRelationship() {}

// DimensionRelationship attaches attribute values to the partial keys formed
// by the listed dimensions.
type DimensionRelationship struct {
	Dimensions []DimensionComponent
	GroupKey   *GroupDimensionDescriptor
}

func (*DimensionRelationship) attributeRelationship() {}

// GroupRelationship attaches attribute values to group keys of the given
// group.
type GroupRelationship struct {
	GroupKey *GroupDimensionDescriptor
}

func (*GroupRelationship) attributeRelationship() {}

// DataAttribute qualifies data without identifying it.
type DataAttribute struct {
	Component

	RelatedTo   AttributeRelationship
	UsageStatus UsageStatus
}

func newDataAttribute(id string, cfg *artefactConfig) (*DataAttribute, error) {
	ident, err := makeIdentifiable(urn.Class_DataAttribute, id, cfg)
	if err != nil {
		return nil, err
	}
	return &DataAttribute{Component: Component{IdentifiableArtefact: ident}}, nil
}

func NewDataAttribute(id string, opts ...Option) (*DataAttribute, error) {
	return newDataAttribute(id, newConfig(opts))
}

// AttributeDescriptor collects the data attributes of a data structure
// definition.
type AttributeDescriptor = ComponentList[*DataAttribute]

// DefaultAttributeDescriptorID is the conventional id of the single attribute
// descriptor of a data structure definition.
const DefaultAttributeDescriptorID = "AttributeDescriptor"

func NewAttributeDescriptor(opts ...Option) (*AttributeDescriptor, error) {
	ident, err := makeIdentifiable(urn.Class_AttributeDescriptor, DefaultAttributeDescriptorID, newConfig(opts))
	if err != nil {
		return nil, err
	}
	ad := &AttributeDescriptor{IdentifiableArtefact: ident}
	ad.init(newDataAttribute)
	return ad, nil
}
