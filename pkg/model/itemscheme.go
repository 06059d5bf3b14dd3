/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "strings"

// ItemScheme is the maintained, versioned container shared by all item
// schemes (Codelist, ConceptScheme, CategoryScheme, the organisation
// schemes). The type parameter is the concrete item type.
//
// `node` and `factory` are fixed by the concrete scheme constructor
// (NewCodelist etc.): node maps an item to its embedded hierarchy node,
// factory builds a new item of the scheme's item class.
type ItemScheme[T any] struct {
	MaintainableArtefact

	// IsPartial reports that the scheme contains a subset of the full set of
	// items maintained under its identity.
	IsPartial bool

	items   map[string]*T
	order   []string
	node    func(*T) *Item[T]
	factory func(id string, cfg *artefactConfig) (*T, error)
}

func (sch *ItemScheme[T]) init(node func(*T) *Item[T], factory func(string, *artefactConfig) (*T, error)) {
	sch.items = make(map[string]*T)
	sch.node = node
	sch.factory = factory
}

// Items returns the items in the order they were appended.
func (sch *ItemScheme[T]) Items() []*T {
	out := make([]*T, len(sch.order))
	for i, id := range sch.order {
		out[i] = sch.items[id]
	}
	return out
}

// Len returns the number of items in the scheme.
func (sch *ItemScheme[T]) Len() int { return len(sch.order) }

// ItemIDs returns the item ids in the order they were appended.
func (sch *ItemScheme[T]) ItemIDs() []string {
	out := make([]string, len(sch.order))
	copy(out, sch.order)
	return out
}

// Item returns the item with the given id.
func (sch *ItemScheme[T]) Item(id string) (*T, error) {
	if item, ok := sch.items[id]; ok {
		return item, nil
	}
	return nil, ErrNotFound("item «%v» in %s «%v»", id, sch.class.TrimString(), sch.id)
}

// Append adds an item to the scheme. The item id must be unique within the
// scheme; the item must not already belong to another scheme.
func (sch *ItemScheme[T]) Append(item *T) error {
	n := sch.node(item)
	if n.scheme == sch {
		return nil
	}
	if n.scheme != nil {
		return ErrConsistency("item «%v» already belongs to %s «%v»", n.id, n.scheme.class.TrimString(), n.scheme.id)
	}
	if _, ok := sch.items[n.id]; ok {
		return ErrAlreadyExists("item «%v» in %s «%v»", n.id, sch.class.TrimString(), sch.id)
	}
	sch.items[n.id] = item
	sch.order = append(sch.order, n.id)
	n.scheme = sch
	return nil
}

// Extend appends several items, stopping at the first error.
func (sch *ItemScheme[T]) Extend(items ...*T) error {
	for _, item := range items {
		if err := sch.Append(item); err != nil {
			return err
		}
	}
	return nil
}

// SetDefault returns the item with the given id, creating and appending it
// first when absent. WithParentID may name an existing item of the scheme to
// link the new item under.
func (sch *ItemScheme[T]) SetDefault(id string, opts ...Option) (*T, error) {
	if item, ok := sch.items[id]; ok {
		return item, nil
	}
	cfg := newConfig(opts)
	cfg.parentOK = true
	item, err := sch.factory(id, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.parentID != "" {
		parent, err := sch.Item(cfg.parentID)
		if err != nil {
			return nil, err
		}
		sch.node(parent).AppendChild(item)
	}
	if err := sch.Append(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetHierarchical resolves either a plain item id or a dot-joined
// hierarchical id.
func (sch *ItemScheme[T]) GetHierarchical(id string) (*T, error) {
	if !strings.Contains(id, ".") {
		return sch.Item(id)
	}
	for _, itemID := range sch.order {
		item := sch.items[itemID]
		if sch.node(item).HierarchicalID() == id {
			return item, nil
		}
	}
	return nil, ErrNotFound("item «%v» in %s «%v»", id, sch.class.TrimString(), sch.id)
}

// Contains reports whether the item belongs to the scheme, either directly
// or within the subtree of any member item.
func (sch *ItemScheme[T]) Contains(item *T) bool {
	target := sch.node(item)
	if target.scheme == sch {
		return true
	}
	for _, id := range sch.order {
		if sch.node(sch.items[id]).hasDescendant(target) {
			return true
		}
	}
	return false
}

// ContainsID reports whether an item with the given id belongs to the scheme.
func (sch *ItemScheme[T]) ContainsID(id string) bool {
	_, ok := sch.items[id]
	return ok
}
