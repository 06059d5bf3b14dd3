/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

// Componenter is satisfied by every concrete component type (*Dimension,
// *DataAttribute, *PrimaryMeasure, …).
type Componenter interface {
	Identifiable
	ComponentBase() *Component
}

// Component ties a position in a structure to the concept giving it meaning
// and, optionally, to a local representation overriding the concept's core
// one.
type Component struct {
	IdentifiableArtefact

	ConceptIdentity     *Concept
	LocalRepresentation *Representation
}

func (c *Component) ComponentBase() *Component { return c }

// EffectiveRepresentation resolves the representation of the component: the
// local one when set, otherwise the core representation of the concept
// identity, otherwise nil.
func (c *Component) EffectiveRepresentation() *Representation {
	if c.LocalRepresentation != nil {
		return c.LocalRepresentation
	}
	if c.ConceptIdentity != nil {
		return c.ConceptIdentity.CoreRepresentation
	}
	return nil
}

// ContainsValue reports whether the value is valid against the first
// enumerated representation of the component, local before core. A component
// with no enumerated representation cannot judge values.
func (c *Component) ContainsValue(value string) (bool, error) {
	for _, r := range []*Representation{c.LocalRepresentation, c.coreRepresentation()} {
		if r.IsEnumerated() {
			return r.ContainsValue(value)
		}
	}
	return false, ErrUnsupported("component «%v» has no enumerated representation", c.id)
}

func (c *Component) coreRepresentation() *Representation {
	if c.ConceptIdentity == nil {
		return nil
	}
	return c.ConceptIdentity.CoreRepresentation
}

// orderedComponent is implemented by components that occupy an ordered
// position (the dimension kinds); ComponentList assigns the order on append
// when it is still unset.
type orderedComponent interface {
	Order() int
	SetOrder(int)
}

// ComponentList is the ordered, identifiable container shared by the
// component descriptors. The type parameter is the component type held;
// it may be a concrete pointer type or an interface such as
// DimensionComponent.
//
// `factory` builds a component of the list's default component class; it is
// fixed by the concrete descriptor constructor.
type ComponentList[C Componenter] struct {
	IdentifiableArtefact

	components []C
	autoOrder  int
	factory    func(id string, cfg *artefactConfig) (C, error)
}

func (cl *ComponentList[C]) init(factory func(string, *artefactConfig) (C, error)) {
	cl.autoOrder = 1
	cl.factory = factory
}

// Components returns the components in order of appending.
func (cl *ComponentList[C]) Components() []C {
	out := make([]C, len(cl.components))
	copy(out, cl.components)
	return out
}

// Len returns the number of components.
func (cl *ComponentList[C]) Len() int { return len(cl.components) }

// Get returns the component with the given id.
func (cl *ComponentList[C]) Get(id string) (C, error) {
	for _, c := range cl.components {
		if c.ID() == id {
			return c, nil
		}
	}
	var zero C
	return zero, ErrComponentNotFound(id)
}

// Append adds a component. An ordered component without an explicit order
// gets the next free position: the maximum of the running counter and the
// resulting length of the list.
func (cl *ComponentList[C]) Append(c C) error {
	for _, have := range cl.components {
		if have.ID() == c.ID() {
			return ErrAlreadyExists("component «%v» in «%v»", c.ID(), cl.id)
		}
	}
	if o, ok := any(c).(orderedComponent); ok && o.Order() == 0 {
		ord := len(cl.components) + 1
		if cl.autoOrder > ord {
			ord = cl.autoOrder
		}
		o.SetOrder(ord)
		cl.autoOrder = ord + 1
	}
	cl.components = append(cl.components, c)
	return nil
}

// Extend appends several components, stopping at the first error.
func (cl *ComponentList[C]) Extend(components ...C) error {
	for _, c := range components {
		if err := cl.Append(c); err != nil {
			return err
		}
	}
	return nil
}

// SetDefault returns the component with the given id, creating and appending
// a component of the list's default class when absent.
func (cl *ComponentList[C]) SetDefault(id string, opts ...Option) (C, error) {
	for _, c := range cl.components {
		if c.ID() == id {
			return c, nil
		}
	}
	var zero C
	c, err := cl.factory(id, newConfig(opts))
	if err != nil {
		return zero, err
	}
	if err := cl.Append(c); err != nil {
		return zero, err
	}
	return c, nil
}
