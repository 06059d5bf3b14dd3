/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

// Item is the hierarchy node embedded by every concrete item type (Code,
// Concept, Category, …). The type parameter is the embedding type itself, so
// navigation returns concrete items, never a bare node.
//
// The node keeps a back pointer to the embedding value and a `node` accessor
// that maps a concrete item to its embedded node; both are fixed by the
// concrete constructor (NewCode etc.) and never change afterwards.
type Item[T any] struct {
	self     *T
	node     func(*T) *Item[T]
	id       string
	parent   *Item[T]
	children []*Item[T]
	scheme   *ItemScheme[T]
}

func (it *Item[T]) init(self *T, node func(*T) *Item[T], id string) {
	it.self = self
	it.node = node
	it.id = id
}

// Parent returns the parent item, or nil for a top-level item.
func (it *Item[T]) Parent() *T {
	if it.parent == nil {
		return nil
	}
	return it.parent.self
}

// Children returns the child items in the order they were attached.
func (it *Item[T]) Children() []*T {
	out := make([]*T, len(it.children))
	for i, c := range it.children {
		out[i] = c.self
	}
	return out
}

// Scheme returns the item scheme the item belongs to, or nil. An item never
// appended directly reports the scheme of its nearest appended ancestor.
func (it *Item[T]) Scheme() *ItemScheme[T] {
	for n := it; n != nil; n = n.parent {
		if n.scheme != nil {
			return n.scheme
		}
	}
	return nil
}

// AppendChild links child under the item. Re-appending an existing child is a
// no-op; a child already linked elsewhere is re-parented.
func (it *Item[T]) AppendChild(child *T) {
	cn := it.node(child)
	if cn.parent == it {
		return
	}
	if cn.parent != nil {
		cn.parent.removeChild(cn)
	}
	it.children = append(it.children, cn)
	cn.parent = it
}

// SetParent links the item under parent; nil detaches it.
func (it *Item[T]) SetParent(parent *T) {
	if parent == nil {
		if it.parent != nil {
			it.parent.removeChild(it)
			it.parent = nil
		}
		return
	}
	it.node(parent).AppendChild(it.self)
}

func (it *Item[T]) removeChild(cn *Item[T]) {
	for i, c := range it.children {
		if c == cn {
			it.children = append(it.children[:i], it.children[i+1:]...)
			return
		}
	}
}

// Child returns the direct child with the given id.
func (it *Item[T]) Child(id string) (*T, error) {
	for _, c := range it.children {
		if c.id == id {
			return c.self, nil
		}
	}
	return nil, ErrItemNotFound(id)
}

func (it *Item[T]) hasDescendant(target *Item[T]) bool {
	for _, c := range it.children {
		if c == target || c.hasDescendant(target) {
			return true
		}
	}
	return false
}

// HierarchicalID is the dot-joined path of ids from the topmost ancestor down
// to the item itself.
func (it *Item[T]) HierarchicalID() string {
	if it.parent == nil {
		return it.id
	}
	return it.parent.HierarchicalID() + "." + it.id
}
