/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

// AttributeValue is a value of a data attribute, attached to an observation,
// a key, or a whole data set.
type AttributeValue struct {
	Value     any
	ValueFor  *DataAttribute
	StartDate string
}

// Observation holds one datum: the value, the key (or key remainder)
// identifying it, and attribute values qualifying it.
type Observation struct {
	// Dimension holds the key values not already fixed by the series key;
	// for a flat data set, the full key.
	Dimension *Key
	Value     any
	ValueFor  *PrimaryMeasure

	seriesKey *SeriesKey
	attached  map[string]*AttributeValue
	merged    map[string]*AttributeValue
}

// NewObservation builds an unbound observation.
func NewObservation(dim *Key, value any) *Observation {
	return &Observation{Dimension: dim, Value: value}
}

// SeriesKey returns the series the observation is bound to, or nil.
func (o *Observation) SeriesKey() *SeriesKey { return o.seriesKey }

// Key is the full key of the observation: the series key extended by the
// observation's own dimension values.
func (o *Observation) Key() *Key {
	switch {
	case o.seriesKey == nil && o.Dimension == nil:
		return NewKey()
	case o.seriesKey == nil:
		return o.Dimension.Copy()
	case o.Dimension == nil:
		return o.seriesKey.Key.Copy()
	}
	return o.seriesKey.Key.Union(o.Dimension)
}

// AttachAttrib attaches an attribute value directly to the observation. A
// value inherited from the series or a group for the same id still wins in
// the effective view.
func (o *Observation) AttachAttrib(id string, av *AttributeValue) {
	if o.attached == nil {
		o.attached = make(map[string]*AttributeValue)
	}
	o.attached[id] = av
	if o.merged != nil {
		o.remergeAttrib()
	}
}

// AttachedAttrib returns only the attribute values attached directly to the
// observation.
func (o *Observation) AttachedAttrib() map[string]*AttributeValue {
	out := make(map[string]*AttributeValue, len(o.attached))
	for id, av := range o.attached {
		out[id] = av
	}
	return out
}

// Attrib returns the effective attribute values of the observation. For an
// observation in a data set this is the merged view: the observation's own
// attached values, overridden by series key values, overridden by the values
// of the series' group keys. For an unbound observation it equals
// AttachedAttrib.
func (o *Observation) Attrib() map[string]*AttributeValue {
	if o.merged == nil {
		return o.AttachedAttrib()
	}
	out := make(map[string]*AttributeValue, len(o.merged))
	for id, av := range o.merged {
		out[id] = av
	}
	return out
}

// mergeAttrib fixes the effective attribute view. Precedence, low to high:
// the observation itself, the series key, the given group keys.
func (o *Observation) mergeAttrib(groups []*GroupKey) {
	merged := make(map[string]*AttributeValue)
	for id, av := range o.attached {
		merged[id] = av
	}
	if o.seriesKey != nil {
		for id, av := range o.seriesKey.attrib {
			merged[id] = av
		}
	}
	for _, gk := range groups {
		for id, av := range gk.attrib {
			merged[id] = av
		}
	}
	o.merged = merged
}

// remergeAttrib recomputes the view with the groups of the bound series.
func (o *Observation) remergeAttrib() {
	var groups []*GroupKey
	if o.seriesKey != nil {
		groups = o.seriesKey.groupKeys
	}
	o.mergeAttrib(groups)
}

func (o *Observation) String() string {
	return o.Key().String() + ": " + stringValue(o.Value)
}
