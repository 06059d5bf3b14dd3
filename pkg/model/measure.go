/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// PrimaryMeasure is the component the observation values are values of,
// conventionally identified by the concept OBS_VALUE.
type PrimaryMeasure struct {
	Component
}

func newPrimaryMeasure(id string, cfg *artefactConfig) (*PrimaryMeasure, error) {
	ident, err := makeIdentifiable(urn.Class_PrimaryMeasure, id, cfg)
	if err != nil {
		return nil, err
	}
	return &PrimaryMeasure{Component: Component{IdentifiableArtefact: ident}}, nil
}

func NewPrimaryMeasure(id string, opts ...Option) (*PrimaryMeasure, error) {
	return newPrimaryMeasure(id, newConfig(opts))
}

// MeasureDescriptor holds the measures of a data structure definition; under
// the 2.1 model there is exactly one, the primary measure.
type MeasureDescriptor = ComponentList[*PrimaryMeasure]

// DefaultMeasureDescriptorID is the conventional id of the single measure
// descriptor of a data structure definition.
const DefaultMeasureDescriptorID = "MeasureDescriptor"

func NewMeasureDescriptor(opts ...Option) (*MeasureDescriptor, error) {
	ident, err := makeIdentifiable(urn.Class_MeasureDescriptor, DefaultMeasureDescriptorID, newConfig(opts))
	if err != nil {
		return nil, err
	}
	md := &MeasureDescriptor{IdentifiableArtefact: ident}
	md.init(newPrimaryMeasure)
	return md, nil
}
