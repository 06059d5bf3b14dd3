/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// Code is a language-independent value of a statistical classification, e.g.
// a country code or a unit of measure.
type Code struct {
	NameableArtefact
	Item[Code]
}

func codeNode(c *Code) *Item[Code] { return &c.Item }

func newCode(id string, cfg *artefactConfig) (*Code, error) {
	n, err := makeNameable(urn.Class_Code, id, cfg)
	if err != nil {
		return nil, err
	}
	c := &Code{NameableArtefact: n}
	c.Item.init(c, codeNode, id)
	return c, nil
}

func NewCode(id string, opts ...Option) (*Code, error) {
	return newCode(id, newConfig(opts))
}

// Codelist is a maintained scheme of Codes.
type Codelist = ItemScheme[Code]

func NewCodelist(id string, opts ...Option) (*Codelist, error) {
	m, err := makeMaintainable(urn.Class_Codelist, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	cl := &Codelist{MaintainableArtefact: m}
	cl.init(codeNode, newCode)
	return cl, nil
}
