/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// StructureUsage links a maintained artefact to the structure it applies.
type StructureUsage struct {
	MaintainableArtefact

	Structure *DataStructureDefinition
}

func NewStructureUsage(id string, opts ...Option) (*StructureUsage, error) {
	m, err := makeMaintainable(urn.Class_StructureUsage, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &StructureUsage{MaintainableArtefact: m}, nil
}

// DataflowDefinition identifies a flow of data structured by one data
// structure definition. Content constraints may attach to it.
type DataflowDefinition struct {
	StructureUsage
}

func (*DataflowDefinition) constrainableArtefact() {}

func NewDataflowDefinition(id string, opts ...Option) (*DataflowDefinition, error) {
	m, err := makeMaintainable(urn.Class_DataflowDefinition, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &DataflowDefinition{StructureUsage: StructureUsage{MaintainableArtefact: m}}, nil
}

// ProvisionAgreement records that one data provider feeds one structure
// usage. Content constraints may attach to it.
type ProvisionAgreement struct {
	MaintainableArtefact

	StructureUsage *StructureUsage
	DataProvider   *DataProvider
}

func (*ProvisionAgreement) constrainableArtefact() {}

func NewProvisionAgreement(id string, opts ...Option) (*ProvisionAgreement, error) {
	m, err := makeMaintainable(urn.Class_ProvisionAgreement, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &ProvisionAgreement{MaintainableArtefact: m}, nil
}
