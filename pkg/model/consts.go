/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "strings"

//go:generate stringer -type=ActionType -output=actiontype_string.go

// ActionType tells a receiving system what to do with a data set.
type ActionType int

const (
	ActionType_null ActionType = iota

	ActionType_Delete
	ActionType_Replace
	ActionType_Append
	ActionType_Information

	ActionType_count
)

func (a ActionType) TrimString() string {
	const pref = "ActionType_"
	return strings.TrimPrefix(a.String(), pref)
}

//go:generate stringer -type=UsageStatus -output=usagestatus_string.go

// UsageStatus qualifies whether a data attribute must be supplied.
type UsageStatus int

const (
	UsageStatus_null UsageStatus = iota

	UsageStatus_Mandatory
	UsageStatus_Conditional

	UsageStatus_count
)

func (u UsageStatus) TrimString() string {
	const pref = "UsageStatus_"
	return strings.TrimPrefix(u.String(), pref)
}

//go:generate stringer -type=ConstraintRoleType -output=constraintroletype_string.go

// ConstraintRoleType is the role a constraint plays: restricting the
// allowable content, or describing the actual content.
type ConstraintRoleType int

const (
	ConstraintRoleType_null ConstraintRoleType = iota

	ConstraintRoleType_Allowable
	ConstraintRoleType_Actual

	ConstraintRoleType_count
)

func (r ConstraintRoleType) TrimString() string {
	const pref = "ConstraintRoleType_"
	return strings.TrimPrefix(r.String(), pref)
}

//go:generate stringer -type=FacetValueType -output=facetvaluetype_string.go

// FacetValueType enumerates the value types a non-enumerated representation
// facet may declare.
//
// Three diagrams in the standard show this enumeration containing
// 'gregorianYearMonth' but not 'gregorianYear' or 'gregorianMonth'; the table
// of representation constructs does the opposite. Real-world registries use
// all three, so all three are included.
type FacetValueType int

const (
	FacetValueType_null FacetValueType = iota

	FacetValueType_String
	FacetValueType_BigInteger
	FacetValueType_Integer
	FacetValueType_Long
	FacetValueType_Short
	FacetValueType_Decimal
	FacetValueType_Float
	FacetValueType_Double
	FacetValueType_Boolean
	FacetValueType_URI
	FacetValueType_Count
	FacetValueType_InclusiveValueRange
	FacetValueType_Alpha
	FacetValueType_AlphaNumeric
	FacetValueType_Numeric
	FacetValueType_ExclusiveValueRange
	FacetValueType_Incremental
	FacetValueType_ObservationalTimePeriod
	FacetValueType_StandardTimePeriod
	FacetValueType_BasicTimePeriod
	FacetValueType_GregorianTimePeriod
	FacetValueType_GregorianYear
	FacetValueType_GregorianMonth
	FacetValueType_GregorianYearMonth
	FacetValueType_GregorianDay
	FacetValueType_ReportingTimePeriod
	FacetValueType_ReportingYear
	FacetValueType_ReportingSemester
	FacetValueType_ReportingTrimester
	FacetValueType_ReportingQuarter
	FacetValueType_ReportingMonth
	FacetValueType_ReportingWeek
	FacetValueType_ReportingDay
	FacetValueType_DateTime
	FacetValueType_TimeRange
	FacetValueType_Month
	FacetValueType_MonthDay
	FacetValueType_Day
	FacetValueType_Time
	FacetValueType_Duration
	FacetValueType_KeyValues
	FacetValueType_IdentifiableReference
	FacetValueType_DataSetReference

	FacetValueType_FakeLast
)

func (f FacetValueType) TrimString() string {
	const pref = "FacetValueType_"
	return strings.TrimPrefix(f.String(), pref)
}

//go:generate stringer -type=DataSetKind -output=datasetkind_string.go

// DataSetKind tags the wire flavor a data set was read from. The flavors add
// no behavior over the plain data set.
type DataSetKind int

const (
	DataSetKind_Generic DataSetKind = iota
	DataSetKind_StructureSpecific
	DataSetKind_GenericTimeSeries
	DataSetKind_StructureSpecificTimeSeries

	DataSetKind_count
)

func (k DataSetKind) TrimString() string {
	const pref = "DataSetKind_"
	return strings.TrimPrefix(k.String(), pref)
}
