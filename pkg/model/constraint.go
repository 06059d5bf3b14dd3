/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// MemberValue is one selected value of a member selection.
type MemberValue struct {
	Value string

	// CascadeValues extends the selection to the children of the value in
	// the hierarchy of its scheme.
	CascadeValues bool
}

// MemberSelection picks a set of values of one component. With Included
// false, the selection denotes the complement of the listed values.
type MemberSelection struct {
	ValuesFor Componenter
	Included  bool
	Values    []MemberValue
}

// NewMemberSelection builds an inclusive selection of the given values.
func NewMemberSelection(valuesFor Componenter, values ...string) *MemberSelection {
	ms := &MemberSelection{ValuesFor: valuesFor, Included: true}
	for _, v := range values {
		ms.Values = append(ms.Values, MemberValue{Value: v})
	}
	return ms
}

// rawContains is plain set membership, ignoring Included.
func (ms *MemberSelection) rawContains(value string) bool {
	for _, mv := range ms.Values {
		if mv.Value == value {
			return true
		}
	}
	return false
}

// Contains reports whether the selection selects the value: membership in
// the listed values for an inclusive selection, absence for an exclusive
// one.
func (ms *MemberSelection) Contains(value string) bool {
	return ms.rawContains(value) == ms.Included
}

// CubeRegion is a slab of the cube: the cross product of one member
// selection per (some) dimensions. With Included false the region denotes
// the complement of that cross product.
type CubeRegion struct {
	Included bool
	Members  map[string]*MemberSelection
}

func NewCubeRegion(included bool) *CubeRegion {
	return &CubeRegion{Included: included, Members: make(map[string]*MemberSelection)}
}

// ContainsValue gives the region's verdict on a single key value: raw
// membership in the selection for its dimension, folded with the region's
// own Included flag. The Included flag of the member selection does not
// participate here; it only matters when the selection is queried on its
// own.
//
// Partial information cannot safely imply exclusion, so the verdict is
// permissive (true) when the region selects on more than one component, or
// when it does not select on the value's dimension at all. A full key is
// excluded by Contains even when every individual value passed here.
func (cr *CubeRegion) ContainsValue(kv KeyValue) bool {
	if len(cr.Members) > 1 {
		return true
	}
	ms, ok := cr.Members[kv.ID]
	if !ok {
		return true
	}
	return ms.rawContains(stringValue(kv.Value)) == cr.Included
}

// ContainsAttrib gives the region's verdict on a single attribute value,
// with the same permissive policy as ContainsValue.
func (cr *CubeRegion) ContainsAttrib(id string, av *AttributeValue) bool {
	return cr.ContainsValue(KV(id, av.Value))
}

// Contains reports whether the key passes every member selection of the
// region: for each selected dimension present in the key, raw membership
// folded with the region's Included flag. Selected dimensions absent from
// the key are not checked.
func (cr *CubeRegion) Contains(key *Key) bool {
	for id, ms := range cr.Members {
		kv, ok := key.Get(id)
		if !ok {
			continue
		}
		if ms.rawContains(stringValue(kv.Value)) != cr.Included {
			return false
		}
	}
	return true
}

// DataKey is one (partial) key explicitly listed by a data key set.
type DataKey struct {
	Included bool
	Values   []KeyValue
}

// Contains reports whether the data key's values all appear in the key,
// folded with Included.
func (dk *DataKey) Contains(key *Key) bool {
	all := true
	for _, kv := range dk.Values {
		have, ok := key.Get(kv.ID)
		if !ok || !have.Equal(kv) {
			all = false
			break
		}
	}
	return all == dk.Included
}

// DataKeySet enumerates keys wholesale instead of per-dimension.
type DataKeySet struct {
	Included bool
	Keys     []*DataKey
}

// Constraint is the common state of the constraint classes: an optional data
// key set and the role the constraint plays.
type Constraint struct {
	MaintainableArtefact

	Role            ConstraintRoleType
	DataContentKeys *DataKeySet
}

// Contains reports whether the key is listed by the constraint's explicit
// data key set, folded with the set's Included flag. A constraint without a
// key set cannot give a verdict.
func (c *Constraint) Contains(key *Key) (bool, error) {
	if c.DataContentKeys == nil {
		return false, ErrConsistency("constraint «%v» has no data key set", c.id)
	}
	match := false
	for _, dk := range c.DataContentKeys.Keys {
		if dk.Contains(key) {
			match = true
			break
		}
	}
	return match == c.DataContentKeys.Included, nil
}

// ContentConstraint restricts or describes the content of the constrainable
// artefacts it attaches to, as a list of cube regions.
type ContentConstraint struct {
	Constraint

	DataContentRegions []*CubeRegion
	ContentOf          []ConstrainableArtefact
}

func NewContentConstraint(id string, role ConstraintRoleType, opts ...Option) (*ContentConstraint, error) {
	m, err := makeMaintainable(urn.Class_ContentConstraint, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &ContentConstraint{Constraint: Constraint{MaintainableArtefact: m, Role: role}}, nil
}

// Contains reports whether the key passes every cube region of the
// constraint. A constraint without regions cannot give a verdict.
func (cc *ContentConstraint) Contains(key *Key) (bool, error) {
	if len(cc.DataContentRegions) == 0 {
		return false, ErrConsistency("constraint «%v» has no content regions", cc.id)
	}
	for _, cr := range cc.DataContentRegions {
		if !cr.Contains(key) {
			return false, nil
		}
	}
	return true, nil
}

// acceptsValue reports whether all regions pass the single key value.
func (cc *ContentConstraint) acceptsValue(kv KeyValue) bool {
	for _, cr := range cc.DataContentRegions {
		if !cr.ContainsValue(kv) {
			return false
		}
	}
	return true
}
