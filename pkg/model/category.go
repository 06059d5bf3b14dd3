/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// Category is a node of a subject-matter taxonomy.
type Category struct {
	NameableArtefact
	Item[Category]
}

func categoryNode(c *Category) *Item[Category] { return &c.Item }

func newCategory(id string, cfg *artefactConfig) (*Category, error) {
	n, err := makeNameable(urn.Class_Category, id, cfg)
	if err != nil {
		return nil, err
	}
	c := &Category{NameableArtefact: n}
	c.Item.init(c, categoryNode, id)
	return c, nil
}

func NewCategory(id string, opts ...Option) (*Category, error) {
	return newCategory(id, newConfig(opts))
}

// CategoryScheme is a maintained taxonomy of Categories.
type CategoryScheme = ItemScheme[Category]

func NewCategoryScheme(id string, opts ...Option) (*CategoryScheme, error) {
	m, err := makeMaintainable(urn.Class_CategoryScheme, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	cs := &CategoryScheme{MaintainableArtefact: m}
	cs.init(categoryNode, newCategory)
	return cs, nil
}

// Categorisation files an identifiable artefact under a category.
type Categorisation struct {
	MaintainableArtefact

	Category *Category
	Artefact Identifiable
}

func NewCategorisation(id string, opts ...Option) (*Categorisation, error) {
	m, err := makeMaintainable(urn.Class_Categorisation, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Categorisation{MaintainableArtefact: m}, nil
}
