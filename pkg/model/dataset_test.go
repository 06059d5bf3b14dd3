/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_DataSet(t *testing.T) {

	require := require.New(t)

	ds := NewDataSet(DataSetKind_GenericTimeSeries)
	ds.Action = ActionType_Information

	sk := NewSeriesKey(KV("FREQ", "A"), KV("GEO", "DE"))

	o1 := NewObservation(NewKey(KV("TIME_PERIOD", "2020")), 1.5)
	o2 := NewObservation(NewKey(KV("TIME_PERIOD", "2021")), 1.7)
	require.NoError(ds.AddObs(sk, o1, o2))

	require.Equal(2, ds.Len())
	require.Equal([]*Observation{o1, o2}, ds.Obs())
	require.Equal([]*SeriesKey{sk}, ds.SeriesKeys())
	require.Equal([]*Observation{o1, o2}, ds.SeriesObs(sk))

	// the observation's full key combines series and observation dimensions

	require.Equal("(FREQ=A, GEO=DE, TIME_PERIOD=2020)", o1.Key().String())
	require.Equal(sk, o1.SeriesKey())

	// an equal series key is folded onto the canonical one

	o3 := NewObservation(NewKey(KV("TIME_PERIOD", "2022")), 1.9)
	require.NoError(ds.AddObs(NewSeriesKey(KV("FREQ", "A"), KV("GEO", "DE")), o3))
	require.Len(ds.SeriesKeys(), 1)
	require.Equal(sk, o3.SeriesKey())
}

func TestDataSet_RebindGuard(t *testing.T) {
	require := require.New(t)

	ds := NewDataSet(DataSetKind_Generic)

	sk1 := NewSeriesKey(KV("GEO", "DE"))
	sk2 := NewSeriesKey(KV("GEO", "FR"))

	o := NewObservation(NewKey(KV("TIME_PERIOD", "2020")), 1.0)
	require.NoError(ds.AddObs(sk1, o))

	// rebinding to a different series is a programming error…

	err := ds.AddObs(sk2, NewObservation(NewKey(KV("TIME_PERIOD", "2021")), 2.0), o)
	require.ErrorIs(err, ErrConsistencyError)

	// …and the committed state stays intact: nothing of the failed call landed

	require.Equal(1, ds.Len())
	require.Len(ds.SeriesKeys(), 1)

	// re-adding under the same (or an equal) series key is fine

	require.NoError(ds.AddObs(NewSeriesKey(KV("GEO", "DE")), o))
}

func TestDataSet_Groups(t *testing.T) {
	require := require.New(t)

	ds := NewDataSet(DataSetKind_Generic)

	gk := NewGroupKey("g1", KV("A", "1"))
	ds.AddGroupKey(gk)
	require.Equal([]*GroupKey{gk}, ds.GroupKeys())

	sk := NewSeriesKey(KV("A", "1"), KV("B", "2"))

	o1 := NewObservation(NewKey(KV("T", "2020")), 1.0)
	o2 := NewObservation(NewKey(KV("T", "2021")), 2.0)
	require.NoError(ds.AddObs(sk, o1, o2))

	// every observation added under the covered series appears in the group

	require.Equal([]*Observation{o1, o2}, ds.GroupObs(gk))
	require.Equal([]*GroupKey{gk}, sk.GroupKeys())

	// a series outside the group does not

	other := NewSeriesKey(KV("A", "9"), KV("B", "2"))
	o3 := NewObservation(NewKey(KV("T", "2020")), 3.0)
	require.NoError(ds.AddObs(other, o3))
	require.Len(ds.GroupObs(gk), 2)
	require.Empty(other.GroupKeys())
}

func TestDataSet_GroupKeyRetroactive(t *testing.T) {
	require := require.New(t)

	ds := NewDataSet(DataSetKind_Generic)

	sk := NewSeriesKey(KV("A", "1"))
	o := NewObservation(NewKey(KV("T", "2020")), 1.0)
	require.NoError(ds.AddObs(sk, o))

	gk := NewGroupKey("g1", KV("A", "1"))
	gk.SetAttrib("U", &AttributeValue{Value: "from-group"})
	ds.AddGroupKey(gk)

	// the existing series and observation were associated retroactively
	require.Equal([]*Observation{o}, ds.GroupObs(gk))
	require.Equal([]*GroupKey{gk}, sk.GroupKeys())
	require.Equal("from-group", o.Attrib()["U"].Value)
}

func TestObservation_AttribMerging(t *testing.T) {
	require := require.New(t)

	ds := NewDataSet(DataSetKind_Generic)

	gk := NewGroupKey("g1", KV("A", "1"))
	gk.SetAttrib("UNIT", &AttributeValue{Value: "group"})
	gk.SetAttrib("ONLY_GROUP", &AttributeValue{Value: "g"})
	ds.AddGroupKey(gk)

	sk := NewSeriesKey(KV("A", "1"), KV("B", "2"))
	sk.SetAttrib("UNIT", &AttributeValue{Value: "series"})
	sk.SetAttrib("ONLY_SERIES", &AttributeValue{Value: "s"})

	o := NewObservation(NewKey(KV("T", "2020")), 1.0)
	o.AttachAttrib("UNIT", &AttributeValue{Value: "obs"})
	require.NoError(ds.AddObs(sk, o))

	// precedence, low to high: observation, series, group

	attrib := o.Attrib()
	require.Equal("group", attrib["UNIT"].Value)
	require.Equal("s", attrib["ONLY_SERIES"].Value)
	require.Equal("g", attrib["ONLY_GROUP"].Value)

	// the merged view is a snapshot copy

	delete(attrib, "UNIT")
	require.Contains(o.Attrib(), "UNIT")

	// a value attached after the merge lands, unless outranked

	o.AttachAttrib("LATE", &AttributeValue{Value: "l"})
	require.Equal("l", o.Attrib()["LATE"].Value)

	o.AttachAttrib("UNIT", &AttributeValue{Value: "rewritten"})
	require.Equal("group", o.Attrib()["UNIT"].Value)

	// directly attached values are tracked separately

	require.Len(o.AttachedAttrib(), 2)
}

func TestDataSet_EmptySeriesRegistration(t *testing.T) {
	require := require.New(t)

	ds := NewDataSet(DataSetKind_Generic)

	gk := NewGroupKey("g1", KV("A", "1"))
	ds.AddGroupKey(gk)

	// a call without observations still registers the series and associates
	// it with the groups its key covers

	sk := NewSeriesKey(KV("A", "1"), KV("B", "2"))
	require.NoError(ds.AddObs(sk))

	require.Equal([]*SeriesKey{sk}, ds.SeriesKeys())
	require.Equal([]*GroupKey{gk}, sk.GroupKeys())
	require.Empty(ds.Obs())
	require.Empty(ds.SeriesObs(sk))
}

func TestDataSet_SeriesGroupAssociation(t *testing.T) {
	require := require.New(t)

	ds := NewDataSet(DataSetKind_Generic)

	// a group over an observation-level dimension only
	gk := NewGroupKey("g1", KV("T", "2020"))
	gk.SetAttrib("U", &AttributeValue{Value: "g"})
	ds.AddGroupKey(gk)

	sk := NewSeriesKey(KV("A", "1"))
	o := NewObservation(NewKey(KV("T", "2020")), 1.0)
	require.NoError(ds.AddObs(sk, o))

	// the combined key covers the group, so the observation lands there…

	require.Equal([]*Observation{o}, ds.GroupObs(gk))

	// …but the series key alone does not cover it: no series association, no
	// attribute flow into the observation

	require.Empty(sk.GroupKeys())
	require.Empty(o.Attrib())
}

func TestDataSet_Attrib(t *testing.T) {
	require := require.New(t)

	ds := NewDataSet(DataSetKind_Generic)
	ds.SetAttrib("SOURCE", &AttributeValue{Value: "registry"})

	require.Equal("registry", ds.Attrib()["SOURCE"].Value)

	// flat observations need no series key

	o := NewObservation(NewKey(KV("GEO", "DE"), KV("T", "2020")), 1.0)
	require.NoError(ds.AddObs(nil, o))
	require.Nil(o.SeriesKey())
	require.Empty(ds.SeriesKeys())
	require.Equal(1, ds.Len())
}
