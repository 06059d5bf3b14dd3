/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

// FacetType bundles the constraining properties a facet may carry. Zero
// values mean "not constrained".
type FacetType struct {
	IsSequence   bool
	MinLength    int
	MaxLength    int
	MinValue     float64
	MaxValue     float64
	StartValue   float64
	EndValue     float64
	Interval     float64
	TimeInterval string
	Decimals     int
	Pattern      string
	StartTime    string
	EndTime      string
}

// Facet is one restriction on the values of a non-enumerated representation.
type Facet struct {
	Type      FacetType
	Value     string
	ValueType FacetValueType
}

// Enumeration is the view of an item scheme used when it enumerates the
// values of a representation. Every *ItemScheme satisfies it.
type Enumeration interface {
	Maintainable
	ContainsID(id string) bool
	ItemIDs() []string
	Len() int
}

// Representation describes the allowed values of a component or concept:
// either an enumeration (an item scheme) or a list of facets, not both.
type Representation struct {
	Enumerated    Enumeration
	NonEnumerated []Facet

	// SentinelValues are special values with a meaning outside the normal
	// value domain (SDMX 3.0), e.g. "not available".
	SentinelValues []string
}

// IsEnumerated reports whether the representation draws its values from an
// item scheme.
func (r *Representation) IsEnumerated() bool { return r != nil && r.Enumerated != nil }

// ContainsValue reports whether value is one of the enumerated values. A
// membership test is not defined for a non-enumerated representation.
func (r *Representation) ContainsValue(value string) (bool, error) {
	if !r.IsEnumerated() {
		return false, ErrUnsupported("membership test on a non-enumerated representation")
	}
	return r.Enumerated.ContainsID(value), nil
}
