/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"testing"

	requirepkg "github.com/stretchr/testify/require"
)

func collectKeys(t *testing.T, it *KeyIterator) []*Key {
	t.Helper()
	var out []*Key
	for k, ok := it.Next(); ok; k, ok = it.Next() {
		out = append(out, k)
	}
	return out
}

func TestBasicUsage_IterKeys(t *testing.T) {

	require := requirepkg.New(t)

	dsd := testDSD(t) // FREQ{A,M} × GEO{DE,FR,IT}

	it, err := dsd.IterKeys(nil)
	require.NoError(err)

	keys := collectKeys(t, it)
	require.Len(keys, 2*3)

	// odometer order: the last dimension varies fastest
	require.Equal("(FREQ=A, GEO=DE)", keys[0].String())
	require.Equal("(FREQ=A, GEO=FR)", keys[1].String())
	require.Equal("(FREQ=M, GEO=IT)", keys[5].String())
}

func TestIterKeys_Constrained(t *testing.T) {
	require := requirepkg.New(t)

	dsd := testDSD(t)

	cc, err := dsd.MakeConstraint(map[string][]string{"GEO": {"DE", "FR"}})
	require.NoError(err)

	it, err := dsd.IterKeys(cc)
	require.NoError(err)

	keys := collectKeys(t, it)
	require.Len(keys, 2*2)
	for _, k := range keys {
		kv, ok := k.Get("GEO")
		require.True(ok)
		require.Contains([]string{"DE", "FR"}, stringValue(kv.Value))
	}
}

func TestIterKeys_DimsFilter(t *testing.T) {
	require := requirepkg.New(t)

	dsd := testDSD(t)

	it, err := dsd.IterKeys(nil, "FREQ")
	require.NoError(err)

	keys := collectKeys(t, it)
	require.Len(keys, 2)
	require.Equal("(FREQ=A, GEO=*)", keys[0].String())
	require.Equal("(FREQ=M, GEO=*)", keys[1].String())
}

func TestIterKeys_NonEnumerated(t *testing.T) {
	require := requirepkg.New(t)

	dsd := testDSD(t)

	// a dimension without an enumerated representation yields the placeholder
	_, err := dsd.Dimensions.SetDefault("TIME_PERIOD")
	require.NoError(err)

	it, err := dsd.IterKeys(nil)
	require.NoError(err)

	keys := collectKeys(t, it)
	require.Len(keys, 2*3)
	kv, ok := keys[0].Get("TIME_PERIOD")
	require.True(ok)
	require.Equal(KeyPlaceholder, kv.Value)
}

func TestIterKeys_Errors(t *testing.T) {
	require := requirepkg.New(t)

	dsd := testDSD(t)

	cc, err := NewContentConstraint("EMPTY", ConstraintRoleType_Allowable)
	require.NoError(err)

	_, err = dsd.IterKeys(cc)
	require.ErrorIs(err, ErrConsistencyError)
}

func TestIterKeys_Restartable(t *testing.T) {
	require := requirepkg.New(t)

	dsd := testDSD(t)

	first, err := dsd.IterKeys(nil)
	require.NoError(err)
	// consume the first iterator only partially
	_, ok := first.Next()
	require.True(ok)

	second, err := dsd.IterKeys(nil)
	require.NoError(err)
	require.Len(collectKeys(t, second), 6)

	// the first iterator was not rewound by the second
	require.Len(collectKeys(t, first), 5)
}

func TestIterKeys_DegenerateCubes(t *testing.T) {
	t.Run("no dimensions yields the single empty key", func(t *testing.T) {
		require := requirepkg.New(t)

		dsd, err := NewDataStructureDefinition("EMPTY")
		require.NoError(err)

		// the empty Cartesian product has one element
		it, err := dsd.IterKeys(nil)
		require.NoError(err)
		keys := collectKeys(t, it)
		require.Len(keys, 1)
		require.Equal(0, keys[0].Len())
	})

	t.Run("one dimension fully excluded empties the cube", func(t *testing.T) {
		require := requirepkg.New(t)

		dsd := testDSD(t)
		cc, err := dsd.MakeConstraint(map[string][]string{"GEO": {"XX"}})
		require.NoError(err)

		it, err := dsd.IterKeys(cc)
		require.NoError(err)
		require.Empty(collectKeys(t, it))
	})
}
