/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// ISOConceptReference points at a concept defined by ISO 11179.
type ISOConceptReference struct {
	AgencyID        string
	ConceptID       string
	ConceptSchemeID string
}

// Concept is a unit of statistical meaning, used to give semantics to
// structure components. CoreRepresentation, when set, is the default
// representation of any component whose meaning the concept supplies.
type Concept struct {
	NameableArtefact
	Item[Concept]

	CoreRepresentation *Representation
	ISOConcept         *ISOConceptReference
}

func conceptNode(c *Concept) *Item[Concept] { return &c.Item }

func newConcept(id string, cfg *artefactConfig) (*Concept, error) {
	n, err := makeNameable(urn.Class_Concept, id, cfg)
	if err != nil {
		return nil, err
	}
	c := &Concept{NameableArtefact: n}
	c.Item.init(c, conceptNode, id)
	return c, nil
}

func NewConcept(id string, opts ...Option) (*Concept, error) {
	return newConcept(id, newConfig(opts))
}

// ConceptScheme is a maintained scheme of Concepts.
type ConceptScheme = ItemScheme[Concept]

func NewConceptScheme(id string, opts ...Option) (*ConceptScheme, error) {
	m, err := makeMaintainable(urn.Class_ConceptScheme, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	cs := &ConceptScheme{MaintainableArtefact: m}
	cs.init(conceptNode, newConcept)
	return cs, nil
}
