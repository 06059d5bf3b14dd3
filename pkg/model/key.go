/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"fmt"
	"strings"
)

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// KeyValue is the value of one dimension within a key.
type KeyValue struct {
	ID    string
	Value any

	// ValueFor, when set, is the dimension the value belongs to.
	ValueFor DimensionComponent
}

// KV is shorthand for building a KeyValue.
func KV(id string, value any) KeyValue {
	return KeyValue{ID: id, Value: value}
}

func (kv KeyValue) String() string {
	return kv.ID + "=" + stringValue(kv.Value)
}

// Equal compares id and the string form of the value.
func (kv KeyValue) Equal(other KeyValue) bool {
	return kv.ID == other.ID && stringValue(kv.Value) == stringValue(other.Value)
}

// Less orders key values by the string form of their values.
func (kv KeyValue) Less(other KeyValue) bool {
	return stringValue(kv.Value) < stringValue(other.Value)
}

// Key is an ordered collection of key values that, when complete, identifies
// a slice of a statistical cube down to a single observation.
type Key struct {
	values      []KeyValue
	attrib      map[string]*AttributeValue
	describedBy *DimensionDescriptor
}

// NewKey builds a key from the given values, in the given order.
func NewKey(kvs ...KeyValue) *Key {
	k := &Key{}
	for _, kv := range kvs {
		k.Set(kv)
	}
	return k
}

// NewKeyFor builds a key from the given values and immediately orders it by
// the descriptor's dimensions.
func NewKeyFor(dd *DimensionDescriptor, kvs ...KeyValue) *Key {
	return dd.OrderKey(NewKey(kvs...))
}

// Values returns the key values in order.
func (k *Key) Values() []KeyValue {
	out := make([]KeyValue, len(k.values))
	copy(out, k.values)
	return out
}

// Len returns the number of key values.
func (k *Key) Len() int { return len(k.values) }

// Get returns the key value for the given dimension id.
func (k *Key) Get(id string) (KeyValue, bool) {
	for _, kv := range k.values {
		if kv.ID == id {
			return kv, true
		}
	}
	return KeyValue{}, false
}

// Set stores a key value, replacing any existing value for the same id while
// keeping its position.
func (k *Key) Set(kv KeyValue) {
	for i, have := range k.values {
		if have.ID == kv.ID {
			k.values[i] = kv
			return
		}
	}
	k.values = append(k.values, kv)
}

// DescribedBy returns the dimension descriptor the key is ordered by, if any.
func (k *Key) DescribedBy() *DimensionDescriptor { return k.describedBy }

// ValueSequence returns just the values, in key order.
func (k *Key) ValueSequence() []any {
	out := make([]any, len(k.values))
	for i, kv := range k.values {
		out[i] = kv.Value
	}
	return out
}

// Order returns a copy of the key ordered by its dimension descriptor. A key
// not described by a descriptor cannot be ordered.
func (k *Key) Order() (*Key, error) {
	if k.describedBy == nil {
		return nil, ErrConsistency("key %s is not described by a dimension descriptor", k)
	}
	return k.describedBy.OrderKey(k), nil
}

// Union returns a new key holding the values of both keys; values of other
// win for shared ids, values for new ids are appended in other's order.
func (k *Key) Union(other *Key) *Key {
	out := k.Copy()
	for _, kv := range other.values {
		out.Set(kv)
	}
	for id, av := range other.attrib {
		out.SetAttrib(id, av)
	}
	return out
}

// Copy returns an independent copy of the key.
func (k *Key) Copy() *Key {
	out := &Key{describedBy: k.describedBy, attrib: k.cloneAttrib()}
	out.values = append(out.values, k.values...)
	return out
}

func (k *Key) cloneAttrib() map[string]*AttributeValue {
	if k.attrib == nil {
		return nil
	}
	out := make(map[string]*AttributeValue, len(k.attrib))
	for id, av := range k.attrib {
		out[id] = av
	}
	return out
}

// SetAttrib attaches an attribute value to the key.
func (k *Key) SetAttrib(id string, av *AttributeValue) {
	if k.attrib == nil {
		k.attrib = make(map[string]*AttributeValue)
	}
	k.attrib[id] = av
}

// Attrib returns a copy of the attribute values attached to the key.
func (k *Key) Attrib() map[string]*AttributeValue { return k.cloneAttrib() }

// Equal reports whether both keys hold the same values, regardless of order.
func (k *Key) Equal(other *Key) bool {
	if other == nil || len(k.values) != len(other.values) {
		return false
	}
	return k.Covers(other)
}

// Covers reports whether every value of partial appears, equal, in k.
func (k *Key) Covers(partial *Key) bool {
	for _, kv := range partial.values {
		have, ok := k.Get(kv.ID)
		if !ok || !have.Equal(kv) {
			return false
		}
	}
	return true
}

func (k *Key) String() string {
	parts := make([]string, len(k.values))
	for i, kv := range k.values {
		parts[i] = kv.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// SeriesKey is the partial key shared by all observations of one series.
type SeriesKey struct {
	Key

	groupKeys []*GroupKey
}

func NewSeriesKey(kvs ...KeyValue) *SeriesKey {
	return &SeriesKey{Key: *NewKey(kvs...)}
}

// GroupKeys returns the group keys the series has been associated with.
func (sk *SeriesKey) GroupKeys() []*GroupKey {
	out := make([]*GroupKey, len(sk.groupKeys))
	copy(out, sk.groupKeys)
	return out
}

// GroupAttrib returns the attribute values contributed by the associated
// group keys, merged in order of association.
func (sk *SeriesKey) GroupAttrib() map[string]*AttributeValue {
	out := make(map[string]*AttributeValue)
	for _, gk := range sk.groupKeys {
		for id, av := range gk.attrib {
			out[id] = av
		}
	}
	return out
}

func (sk *SeriesKey) associateGroup(gk *GroupKey) {
	for _, have := range sk.groupKeys {
		if have == gk {
			return
		}
	}
	sk.groupKeys = append(sk.groupKeys, gk)
}

// GroupKey is the partial key identifying a group of series.
type GroupKey struct {
	Key

	// ID of the group, i.e. of the group dimension descriptor.
	ID          string
	DescribedBy *GroupDimensionDescriptor
}

func NewGroupKey(id string, kvs ...KeyValue) *GroupKey {
	return &GroupKey{Key: *NewKey(kvs...), ID: id}
}
