/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"testing"

	requirepkg "github.com/stretchr/testify/require"
)

// testDSD builds a DSD with dimensions FREQ{A,M} and GEO{DE,FR,IT} and the
// data attribute UNIT.
func testDSD(t *testing.T) *DataStructureDefinition {
	t.Helper()
	require := requirepkg.New(t)

	dsd, err := NewDataStructureDefinition("TEST", WithVersion("1.0"))
	require.NoError(err)

	enumerate := func(id string, codes ...string) {
		cl, err := NewCodelist("CL_" + id)
		require.NoError(err)
		for _, c := range codes {
			_, err = cl.SetDefault(c)
			require.NoError(err)
		}
		dim, err := dsd.Dimensions.SetDefault(id)
		require.NoError(err)
		dim.ComponentBase().LocalRepresentation = &Representation{Enumerated: cl}
	}
	enumerate("FREQ", "A", "M")
	enumerate("GEO", "DE", "FR", "IT")

	_, err = dsd.Attributes.SetDefault("UNIT")
	require.NoError(err)

	return dsd
}

func TestBasicUsage_DataStructureDefinition(t *testing.T) {

	require := requirepkg.New(t)

	dsd := testDSD(t)

	// the descriptors carry their conventional ids

	require.Equal(DefaultDimensionDescriptorID, dsd.Dimensions.ID())
	require.Equal(DefaultAttributeDescriptorID, dsd.Attributes.ID())
	require.Equal(DefaultMeasureDescriptorID, dsd.Measures.ID())

	// dimension order was assigned automatically, in order of appending

	freq, err := dsd.Dimensions.Get("FREQ")
	require.NoError(err)
	require.Equal(1, freq.Order())

	geo, err := dsd.Dimensions.Get("GEO")
	require.NoError(err)
	require.Equal(2, geo.Order())

	// build a key; values naming an attribute attach as attribute values

	key, err := dsd.MakeKey(map[string]any{"GEO": "DE", "FREQ": "A", "UNIT": "kg"}, false)
	require.NoError(err)

	require.Equal("(FREQ=A, GEO=DE)", key.String())
	require.Equal("kg", key.Attrib()["UNIT"].Value)
}

func TestComponentList(t *testing.T) {
	require := requirepkg.New(t)

	dd, err := NewDimensionDescriptor()
	require.NoError(err)

	t.Run("auto order respects explicit assignments", func(t *testing.T) {
		require := requirepkg.New(t)

		d1, err := NewDimension("D1")
		require.NoError(err)
		d1.SetOrder(5)
		require.NoError(dd.Append(d1))
		require.Equal(5, d1.Order())

		// the next automatic value continues past the list length
		d2, err := NewDimension("D2")
		require.NoError(err)
		require.NoError(dd.Append(d2))
		require.Equal(2, d2.Order())
	})

	t.Run("duplicate id fails", func(t *testing.T) {
		require := requirepkg.New(t)

		dup, err := NewDimension("D1")
		require.NoError(err)
		require.ErrorIs(dd.Append(dup), ErrAlreadyExistsError)
		require.Equal(2, dd.Len())
	})

	t.Run("get and setdefault", func(t *testing.T) {
		require := requirepkg.New(t)

		_, err := dd.Get("absent")
		require.ErrorIs(err, ErrNotFoundError)

		d3, err := dd.SetDefault("D3")
		require.NoError(err)
		require.Equal(3, d3.Order())

		again, err := dd.SetDefault("D3")
		require.NoError(err)
		require.Equal(d3, again)
	})
}

func TestDataStructureDefinition_MakeKey(t *testing.T) {
	dsd := testDSD(t)

	t.Run("unknown dimension fails without extend", func(t *testing.T) {
		require := requirepkg.New(t)

		_, err := dsd.MakeKey(map[string]any{"FREQ": "A", "BAR": 2}, false)
		require.ErrorIs(err, ErrNotFoundError)
	})

	t.Run("extend creates the dimension", func(t *testing.T) {
		require := requirepkg.New(t)

		// the key holds only the supplied values
		key, err := dsd.MakeKey(map[string]any{"FREQ": "A", "BAR": 2}, true)
		require.NoError(err)
		require.Equal(2, key.Len())
		require.Equal("(FREQ=A, BAR=2)", key.String())

		bar, err := dsd.Dimensions.Get("BAR")
		require.NoError(err)
		require.Equal(3, bar.Order())
	})

	t.Run("series key", func(t *testing.T) {
		require := requirepkg.New(t)

		sk, err := dsd.MakeSeriesKey(map[string]any{"FREQ": "M"}, false)
		require.NoError(err)
		require.Equal("(FREQ=M)", sk.Key.String())
	})
}

func TestDataStructureDefinition_MakeGroupKey(t *testing.T) {
	dsd := testDSD(t)

	t.Run("anonymous group key", func(t *testing.T) {
		require := requirepkg.New(t)

		gk, err := dsd.MakeGroupKey("", map[string]any{"GEO": "DE"}, false)
		require.NoError(err)
		require.Nil(gk.DescribedBy)
		require.Empty(gk.ID)
		require.Equal("(GEO=DE)", gk.Key.String())
		require.Empty(dsd.Groups())
	})

	t.Run("unknown group fails without extend", func(t *testing.T) {
		require := requirepkg.New(t)

		_, err := dsd.MakeGroupKey("g1", map[string]any{"GEO": "DE"}, false)
		require.ErrorIs(err, ErrNotFoundError)
	})

	t.Run("extend creates the group descriptor", func(t *testing.T) {
		require := requirepkg.New(t)

		gk, err := dsd.MakeGroupKey("g1", map[string]any{"GEO": "DE", "NEW": "x"}, true)
		require.NoError(err)
		require.Equal("g1", gk.ID)

		g1, err := dsd.Group("g1")
		require.NoError(err)
		require.Equal(g1, gk.DescribedBy)

		// the new dimension was added both to the group and to the DSD
		fromGroup, err := g1.Get("NEW")
		require.NoError(err)
		fromDSD, err := dsd.Dimensions.Get("NEW")
		require.NoError(err)
		require.Equal(fromDSD, fromGroup)

		// duplicate group registration is rejected
		dup, err := NewGroupDimensionDescriptor("g1")
		require.NoError(err)
		require.ErrorIs(dsd.AddGroup(dup), ErrAlreadyExistsError)
	})

	t.Run("extend against an existing group adds to the DSD too", func(t *testing.T) {
		require := requirepkg.New(t)

		_, err := dsd.MakeGroupKey("g1", map[string]any{"GEO": "FR", "LATER": "x"}, true)
		require.NoError(err)

		fromDSD, err := dsd.Dimensions.Get("LATER")
		require.NoError(err)

		g1, err := dsd.Group("g1")
		require.NoError(err)
		fromGroup, err := g1.Get("LATER")
		require.NoError(err)
		require.Equal(fromDSD, fromGroup)
	})
}

func TestDataStructureDefinition_MakeConstraint(t *testing.T) {
	require := requirepkg.New(t)

	dsd := testDSD(t)

	cc, err := dsd.MakeConstraint(map[string][]string{"GEO": {"DE", "FR"}})
	require.NoError(err)
	require.Equal(ConstraintRoleType_Allowable, cc.Role)
	require.Len(cc.DataContentRegions, 1)
	require.Equal([]ConstrainableArtefact{dsd}, cc.ContentOf)

	ok, err := cc.Contains(NewKey(KV("FREQ", "A"), KV("GEO", "DE")))
	require.NoError(err)
	require.True(ok)

	ok, err = cc.Contains(NewKey(KV("FREQ", "A"), KV("GEO", "IT")))
	require.NoError(err)
	require.False(ok)

	_, err = dsd.MakeConstraint(map[string][]string{"NOT_A_DIM": {"x"}})
	require.ErrorIs(err, ErrNotFoundError)

	t.Run("values packed with + are split", func(t *testing.T) {
		require := requirepkg.New(t)

		cc, err := dsd.MakeConstraint(map[string][]string{"GEO": {"DE+FR"}})
		require.NoError(err)

		for code, want := range map[string]bool{"DE": true, "FR": true, "IT": false} {
			ok, err := cc.Contains(NewKey(KV("GEO", code)))
			require.NoError(err)
			require.Equal(want, ok, "GEO=%s", code)
		}
	})

	t.Run("the constraint enumerates its keys", func(t *testing.T) {
		require := requirepkg.New(t)

		cc, err := dsd.MakeConstraint(map[string][]string{"FREQ": {"A"}, "GEO": {"DE+FR"}})
		require.NoError(err)

		it, err := cc.IterKeys(dsd)
		require.NoError(err)
		n := 0
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			n++
		}
		require.Equal(2, n)
	})
}

func TestDimensionDescriptor_OrderKey(t *testing.T) {
	require := requirepkg.New(t)

	dsd := testDSD(t)

	key, err := dsd.MakeKey(map[string]any{"FREQ": "A", "GEO": "DE"}, false)
	require.NoError(err)

	t.Run("permutations order identically", func(t *testing.T) {
		require := requirepkg.New(t)

		scrambled := NewKey(KV("GEO", "DE"), KV("FREQ", "A"))
		ordered := dsd.Dimensions.OrderKey(scrambled)
		require.Equal(key.Values(), func() []KeyValue {
			// MakeKey fills ValueFor; align for comparison
			vs := ordered.Values()
			for i := range vs {
				dim, err := dsd.Dimensions.Get(vs[i].ID)
				require.NoError(err)
				vs[i].ValueFor = dim
			}
			return vs
		}())
	})

	t.Run("idempotent", func(t *testing.T) {
		require := requirepkg.New(t)

		once := dsd.Dimensions.OrderKey(key)
		twice := dsd.Dimensions.OrderKey(once)
		require.True(once.Equal(twice))
		require.Equal(once.Values(), twice.Values())
	})

	t.Run("unknown values are dropped", func(t *testing.T) {
		require := requirepkg.New(t)

		k := NewKey(KV("GEO", "DE"), KV("STRANGER", "x"))
		require.Equal("(GEO=DE)", dsd.Dimensions.OrderKey(k).String())
	})
}

func TestDimensionDescriptor_AssignOrder(t *testing.T) {
	require := requirepkg.New(t)

	dd, err := NewDimensionDescriptor()
	require.NoError(err)

	d1, err := dd.SetDefault("D1")
	require.NoError(err)
	d2, err := dd.SetDefault("D2")
	require.NoError(err)
	d2.SetOrder(10)

	dd.AssignOrder()
	require.Equal(1, d1.Order())
	require.Equal(2, d2.Order())
}

func TestDimensionDescriptor_FromKey(t *testing.T) {
	require := requirepkg.New(t)

	key := NewKey(KV("foo", 1), KV("bar", 2), KV("baz", 3))
	dd, err := NewDimensionDescriptorFromKey(key)
	require.NoError(err)
	require.Equal(3, dd.Len())

	// each dimension is enumerated by a one-code codelist
	foo, err := dd.Get("foo")
	require.NoError(err)
	rep := foo.ComponentBase().EffectiveRepresentation()
	require.True(rep.IsEnumerated())
	require.Equal([]string{"1"}, rep.Enumerated.ItemIDs())

	// ordering a permuted key restores the original value sequence
	ordered := dd.OrderKey(NewKey(KV("baz", 3), KV("bar", 2), KV("foo", 1)))
	require.Equal("(foo=1, bar=2, baz=3)", ordered.String())
}

func TestDSDFromKeys(t *testing.T) {
	require := requirepkg.New(t)

	dsd, err := NewDSDFromKeys("INFERRED",
		NewKey(KV("foo", 1), KV("bar", 2)),
		NewKey(KV("foo", 4), KV("bar", 5)),
	)
	require.NoError(err)

	require.Equal(2, dsd.Dimensions.Len())
	for _, id := range []string{"foo", "bar"} {
		dim, err := dsd.Dimensions.Get(id)
		require.NoError(err)
		require.Equal(2, dim.ComponentBase().EffectiveRepresentation().Enumerated.Len())
	}

	it, err := dsd.IterKeys(nil)
	require.NoError(err)
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	require.Equal(4, n)
}
