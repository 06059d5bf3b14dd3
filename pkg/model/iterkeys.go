/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

// KeyPlaceholder stands in for the values of a dimension the key enumeration
// cannot enumerate: one without an enumerated representation, or one the
// caller did not ask for.
const KeyPlaceholder = "*"

// KeyIterator enumerates the keys of the cube described by a DSD, in
// odometer order: the last dimension varies fastest. A fresh iterator is
// obtained from DataStructureDefinition.IterKeys; exhausting one does not
// preclude obtaining another.
type KeyIterator struct {
	describedBy *DimensionDescriptor
	constraint  *ContentConstraint
	candidates  [][]KeyValue
	idx         []int
	done        bool
}

// IterKeys returns an iterator over all keys of the cube. A non-nil
// constraint filters the keys twice: per dimension value while the candidate
// lists are built, and per assembled key. dims, when non-empty, restricts
// enumeration to the named dimensions; all others yield the placeholder
// value.
func (dsd *DataStructureDefinition) IterKeys(constraint *ContentConstraint, dims ...string) (*KeyIterator, error) {
	if constraint != nil && len(constraint.DataContentRegions) == 0 {
		return nil, ErrConsistency("constraint «%v» has no content regions", constraint.id)
	}

	wanted := func(id string) bool {
		if len(dims) == 0 {
			return true
		}
		for _, d := range dims {
			if d == id {
				return true
			}
		}
		return false
	}

	ordered := dsd.orderedDims()
	it := &KeyIterator{
		describedBy: dsd.Dimensions,
		constraint:  constraint,
		candidates:  make([][]KeyValue, len(ordered)),
		idx:         make([]int, len(ordered)),
	}
	for i, dim := range ordered {
		rep := dim.ComponentBase().EffectiveRepresentation()
		if !wanted(dim.ID()) || !rep.IsEnumerated() {
			it.candidates[i] = []KeyValue{{ID: dim.ID(), Value: KeyPlaceholder, ValueFor: dim}}
			continue
		}
		for _, code := range rep.Enumerated.ItemIDs() {
			kv := KeyValue{ID: dim.ID(), Value: code, ValueFor: dim}
			if constraint != nil && !constraint.acceptsValue(kv) {
				continue
			}
			it.candidates[i] = append(it.candidates[i], kv)
		}
		if len(it.candidates[i]) == 0 {
			// one dimension with no admissible value empties the cube
			it.done = true
		}
	}
	return it, nil
}

// IterKeys enumerates the keys of the DSD's cube that the constraint admits.
func (cc *ContentConstraint) IterKeys(dsd *DataStructureDefinition, dims ...string) (*KeyIterator, error) {
	return dsd.IterKeys(cc, dims...)
}

// Next returns the next key, or ok == false when the enumeration is
// exhausted.
func (it *KeyIterator) Next() (*Key, bool) {
	for !it.done {
		key := &Key{describedBy: it.describedBy}
		for i, c := range it.candidates {
			key.values = append(key.values, c[it.idx[i]])
		}
		it.advance()

		if it.constraint != nil {
			if ok, err := it.constraint.Contains(key); err != nil || !ok {
				continue
			}
		}
		return key, true
	}
	return nil, false
}

func (it *KeyIterator) advance() {
	for i := len(it.idx) - 1; i >= 0; i-- {
		it.idx[i]++
		if it.idx[i] < len(it.candidates[i]) {
			return
		}
		it.idx[i] = 0
	}
	it.done = true
}
