/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package urn

import (
	"testing"

	requirepkg "github.com/stretchr/testify/require"
)

func TestBasicUsage_URN(t *testing.T) {

	require := requirepkg.New(t)

	// Parse a full item URN

	u, err := Parse("urn:sdmx:org.sdmx.infomodel.codelist.Code=BAZ:FOO(1.2.3).BAR")
	require.NoError(err)
	require.Equal("codelist", u.Package)
	require.Equal(Class_Code, u.Class)
	require.Equal("BAZ", u.Agency)
	require.Equal("FOO", u.ID)
	require.Equal("1.2.3", u.Version)
	require.Equal("BAR", u.ItemID)

	// String inverts Parse

	require.Equal("urn:sdmx:org.sdmx.infomodel.codelist.Code=BAZ:FOO(1.2.3).BAR", u.String())

	// Make builds the same canonical form

	s, err := Make(Class_Code, "BAZ", "FOO", "1.2.3", "BAR", true)
	require.NoError(err)
	require.Equal(u.String(), s)
}

func TestURN_Parse(t *testing.T) {
	t.Run("maintainable without item id", func(t *testing.T) {
		require := requirepkg.New(t)

		u, err := Parse("urn:sdmx:org.sdmx.infomodel.codelist.Codelist=SDMX:CL_FREQ(2.0)")
		require.NoError(err)
		require.Equal(Class_Codelist, u.Class)
		require.Equal("SDMX", u.Agency)
		require.Equal("CL_FREQ", u.ID)
		require.Equal("2.0", u.Version)
		require.Empty(u.ItemID)
	})

	t.Run("agency and version are optional", func(t *testing.T) {
		require := requirepkg.New(t)

		u, err := Parse("urn:sdmx:org.sdmx.infomodel.codelist.Codelist=CL_FREQ")
		require.NoError(err)
		require.Empty(u.Agency)
		require.Empty(u.Version)
		require.Equal("CL_FREQ", u.ID)

		// String omits the empty segments, so the round trip is exact
		require.Equal("urn:sdmx:org.sdmx.infomodel.codelist.Codelist=CL_FREQ", u.String())
	})

	t.Run("package placeholder is resolved", func(t *testing.T) {
		require := requirepkg.New(t)

		u, err := Parse("urn:sdmx:org.sdmx.infomodel.package.Codelist=SDMX:CL_FREQ(2.0)")
		require.NoError(err)
		require.Equal("codelist", u.Package)
	})

	t.Run("memoized parse returns equal results", func(t *testing.T) {
		require := requirepkg.New(t)

		const v = "urn:sdmx:org.sdmx.infomodel.conceptscheme.Concept=SDMX:CROSS_DOMAIN_CONCEPTS(1.0).FREQ"
		u1, err := Parse(v)
		require.NoError(err)
		u2, err := Parse(v)
		require.NoError(err)
		require.Equal(u1, u2)
	})

	t.Run("errors", func(t *testing.T) {
		require := requirepkg.New(t)

		_, err := Parse("not a URN at all")
		require.ErrorIs(err, ErrInvalidURN)

		_, err = Parse("urn:sdmx:org.sdmx.infomodel.codelist.Nonsense=SDMX:X(1.0)")
		require.ErrorIs(err, ErrUnknownClass)

		require.Panics(func() { MustParse("not a URN at all") })
	})
}

func TestURN_Make(t *testing.T) {
	t.Run("strict mode requires a version", func(t *testing.T) {
		require := requirepkg.New(t)

		_, err := Make(Class_Codelist, "SDMX", "CL_FREQ", "", "", true)
		require.ErrorIs(err, ErrIncompleteURN)

		s, err := Make(Class_Codelist, "SDMX", "CL_FREQ", "", "", false)
		require.NoError(err)
		require.Equal("urn:sdmx:org.sdmx.infomodel.codelist.Codelist=SDMX:CL_FREQ", s)
	})

	t.Run("maintainer agency is always required", func(t *testing.T) {
		require := requirepkg.New(t)

		_, err := Make(Class_Codelist, "", "CL_FREQ", "1.0", "", false)
		require.ErrorIs(err, ErrIncompleteURN)
	})
}

func TestURN_ExpandShorten(t *testing.T) {
	require := requirepkg.New(t)

	const full = "urn:sdmx:org.sdmx.infomodel.codelist.Codelist=BAZ:FOO(1.2.3)"
	const short = "Codelist=BAZ:FOO(1.2.3)"

	require.Equal(full, Expand(short))
	require.Equal(full, Expand(full))
	require.Equal(short, Shorten(full))
	require.Equal(short, Shorten(short))

	// Values that are not URNs pass through unmodified
	require.Equal("FOO", Expand("FOO"))
	require.Equal("FOO", Shorten("FOO"))
}

func TestURN_Normalize(t *testing.T) {
	require := requirepkg.New(t)

	require.Equal(
		"urn:sdmx:org.sdmx.infomodel.datastructure.Dataflow=BAZ:FOO(1.2.3)",
		Normalize("urn:sdmx:org.sdmx.infomodel.datastructure.DataflowDefinition=BAZ:FOO(1.2.3)"))

	// Both spellings parse to the same class
	u, err := Parse("urn:sdmx:org.sdmx.infomodel.datastructure.Dataflow=BAZ:FOO(1.2.3)")
	require.NoError(err)
	require.Equal(Class_DataflowDefinition, u.Class)
}

func TestClass(t *testing.T) {
	require := requirepkg.New(t)

	for c := Class(1); c < Class_count; c++ {
		require.NotEmpty(c.TrimString())
		require.NotEmpty(PackageOf(c), "class %v has no package", c)
	}

	c, err := ClassFor("Codelist")
	require.NoError(err)
	require.Equal(Class_Codelist, c)

	_, err = ClassFor("Nonsense")
	require.ErrorIs(err, ErrUnknownClass)
}
