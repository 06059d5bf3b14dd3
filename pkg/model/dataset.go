/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "sync"

// DataSet is an organised collection of observations sharing one structure.
//
// A data set is safe for concurrent use: every mutation funnels through a
// single guarded section, and reads return copies.
type DataSet struct {
	AnnotableArtefact

	Action    ActionType
	Kind      DataSetKind
	ValidFrom string

	DescribedBy  *DataflowDefinition
	StructuredBy *DataStructureDefinition

	mu     sync.Mutex
	attrib map[string]*AttributeValue
	obs    []*Observation
	series []*seriesEntry
	groups []*groupEntry
}

type seriesEntry struct {
	key *SeriesKey
	obs []*Observation
}

type groupEntry struct {
	key *GroupKey
	obs []*Observation
}

func NewDataSet(kind DataSetKind) *DataSet {
	return &DataSet{Kind: kind}
}

// mutate is the single entry point for state changes.
func (ds *DataSet) mutate(f func() error) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return f()
}

// AddObs adds observations, optionally binding them to a series. The series
// is registered and associated with the groups its key covers before any
// per-observation work, so a call with a series key and no observations still
// registers the series. An observation already bound to a different series is
// rejected; on any rejection the data set is left unchanged.
func (ds *DataSet) AddObs(seriesKey *SeriesKey, obs ...*Observation) error {
	return ds.mutate(func() error {
		for _, o := range obs {
			if seriesKey != nil && o.seriesKey != nil && o.seriesKey != seriesKey &&
				!o.seriesKey.Key.Equal(&seriesKey.Key) {
				return ErrConsistency(
					"observation %s is bound to series %s", o.Key(), &o.seriesKey.Key)
			}
		}
		var se *seriesEntry
		if seriesKey != nil {
			se = ds.registerSeries(seriesKey)
		}
		for _, o := range obs {
			ds.addObs(se, o)
		}
		return nil
	})
}

// registerSeries resolves the canonical entry for the series key and
// associates the series with every registered group its own key covers.
func (ds *DataSet) registerSeries(sk *SeriesKey) *seriesEntry {
	se := ds.seriesEntry(sk)
	for _, ge := range ds.groups {
		if se.key.Key.Covers(&ge.key.Key) {
			se.key.associateGroup(ge.key)
		}
	}
	return se
}

func (ds *DataSet) addObs(se *seriesEntry, o *Observation) {
	if se == nil && o.seriesKey != nil {
		se = ds.registerSeries(o.seriesKey)
	}
	if se != nil {
		o.seriesKey = se.key
		se.obs = append(se.obs, o)
	}
	ds.obs = append(ds.obs, o)

	// a group receives the observation when the combined key covers its key;
	// the series↔group association above considers the series key alone
	full := o.Key()
	for _, ge := range ds.groups {
		if full.Covers(&ge.key.Key) {
			ge.obs = append(ge.obs, o)
		}
	}
	o.remergeAttrib()
}

// seriesEntry returns the entry for an equal series key, creating one when
// absent; the first key seen for a series is the canonical one.
func (ds *DataSet) seriesEntry(sk *SeriesKey) *seriesEntry {
	for _, se := range ds.series {
		if se.key == sk || se.key.Key.Equal(&sk.Key) {
			return se
		}
	}
	se := &seriesEntry{key: sk}
	ds.series = append(ds.series, se)
	return se
}

// AddGroupKey registers a group key. Series and observations already present
// whose keys cover it are associated retroactively, and their effective
// attribute views are recomputed.
func (ds *DataSet) AddGroupKey(gk *GroupKey) {
	_ = ds.mutate(func() error {
		for _, ge := range ds.groups {
			if ge.key == gk {
				return nil
			}
		}
		ge := &groupEntry{key: gk}
		ds.groups = append(ds.groups, ge)
		for _, se := range ds.series {
			if se.key.Key.Covers(&gk.Key) {
				se.key.associateGroup(gk)
			}
		}
		for _, o := range ds.obs {
			if o.Key().Covers(&gk.Key) {
				ge.obs = append(ge.obs, o)
			}
			if o.seriesKey != nil && o.seriesKey.Key.Covers(&gk.Key) {
				o.remergeAttrib()
			}
		}
		return nil
	})
}

// SetAttrib attaches an attribute value to the data set as a whole.
func (ds *DataSet) SetAttrib(id string, av *AttributeValue) {
	_ = ds.mutate(func() error {
		if ds.attrib == nil {
			ds.attrib = make(map[string]*AttributeValue)
		}
		ds.attrib[id] = av
		return nil
	})
}

// Attrib returns a copy of the data set level attribute values.
func (ds *DataSet) Attrib() map[string]*AttributeValue {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	out := make(map[string]*AttributeValue, len(ds.attrib))
	for id, av := range ds.attrib {
		out[id] = av
	}
	return out
}

// Obs returns all observations in order of addition.
func (ds *DataSet) Obs() []*Observation {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	out := make([]*Observation, len(ds.obs))
	copy(out, ds.obs)
	return out
}

// Len returns the number of observations.
func (ds *DataSet) Len() int {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return len(ds.obs)
}

// SeriesKeys returns the canonical series keys in order of first use.
func (ds *DataSet) SeriesKeys() []*SeriesKey {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	out := make([]*SeriesKey, len(ds.series))
	for i, se := range ds.series {
		out[i] = se.key
	}
	return out
}

// SeriesObs returns the observations of the series with an equal key.
func (ds *DataSet) SeriesObs(sk *SeriesKey) []*Observation {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, se := range ds.series {
		if se.key == sk || se.key.Key.Equal(&sk.Key) {
			out := make([]*Observation, len(se.obs))
			copy(out, se.obs)
			return out
		}
	}
	return nil
}

// GroupKeys returns the registered group keys in order of registration.
func (ds *DataSet) GroupKeys() []*GroupKey {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	out := make([]*GroupKey, len(ds.groups))
	for i, ge := range ds.groups {
		out[i] = ge.key
	}
	return out
}

// GroupObs returns the observations associated with the group key.
func (ds *DataSet) GroupObs(gk *GroupKey) []*Observation {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	for _, ge := range ds.groups {
		if ge.key == gk {
			out := make([]*Observation, len(ge.obs))
			copy(out, ge.obs)
			return out
		}
	}
	return nil
}
