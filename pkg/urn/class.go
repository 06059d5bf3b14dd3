/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package urn

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=Class -output=class_string.go

// Class enumerates the concrete entity classes of the information model that
// can own an SDMX identifier. The set is closed by the standard, so class
// lookup is a static registry rather than anything dynamic.
type Class int

const (
	Class_null Class = iota

	Class_Agency
	Class_AgencyScheme
	Class_AttributeDescriptor
	Class_Categorisation
	Class_Category
	Class_CategoryScheme
	Class_Code
	Class_Codelist
	Class_Concept
	Class_ConceptScheme
	Class_ContentConstraint
	Class_DataAttribute
	Class_DataConsumer
	Class_DataConsumerScheme
	Class_DataflowDefinition
	Class_DataProvider
	Class_DataProviderScheme
	Class_DataStructureDefinition
	Class_Dimension
	Class_DimensionDescriptor
	Class_GroupDimensionDescriptor
	Class_MeasureDescriptor
	Class_MeasureDimension
	Class_MetadataflowDefinition
	Class_MetadataStructureDefinition
	Class_PrimaryMeasure
	Class_ProvisionAgreement
	Class_StructureUsage
	Class_TimeDimension

	Class_count
)

// classPackages assigns each class to the SDMX-IM "package" used in the
// package position of its URNs.
var classPackages = map[Class]string{
	Class_Agency:             "base",
	Class_AgencyScheme:       "base",
	Class_DataConsumer:       "base",
	Class_DataConsumerScheme: "base",
	Class_DataProvider:       "base",
	Class_DataProviderScheme: "base",

	Class_Categorisation: "categoryscheme",
	Class_Category:       "categoryscheme",
	Class_CategoryScheme: "categoryscheme",

	Class_Code:     "codelist",
	Class_Codelist: "codelist",

	Class_Concept:       "conceptscheme",
	Class_ConceptScheme: "conceptscheme",

	Class_AttributeDescriptor:      "datastructure",
	Class_DataAttribute:            "datastructure",
	Class_DataflowDefinition:       "datastructure",
	Class_DataStructureDefinition:  "datastructure",
	Class_Dimension:                "datastructure",
	Class_DimensionDescriptor:      "datastructure",
	Class_GroupDimensionDescriptor: "datastructure",
	Class_MeasureDescriptor:        "datastructure",
	Class_MeasureDimension:         "datastructure",
	Class_PrimaryMeasure:           "datastructure",
	Class_StructureUsage:           "datastructure",
	Class_TimeDimension:            "datastructure",

	Class_MetadataflowDefinition:      "metadatastructure",
	Class_MetadataStructureDefinition: "metadatastructure",

	Class_ContentConstraint:  "registry",
	Class_ProvisionAgreement: "registry",
}

// classNames maps the class segment of a URN to a Class. Built once from the
// enumeration; also accepts the SDMX 3.0 spellings of the two flow classes.
var classNames = func() map[string]Class {
	m := make(map[string]Class, Class_count)
	for c := Class(1); c < Class_count; c++ {
		m[c.TrimString()] = c
	}
	m["Dataflow"] = Class_DataflowDefinition
	m["Metadataflow"] = Class_MetadataflowDefinition
	return m
}()

// ClassFor returns the Class named by the class segment of a URN.
func ClassFor(name string) (Class, error) {
	if c, ok := classNames[name]; ok {
		return c, nil
	}
	return Class_null, fmt.Errorf("%w: «%v»", ErrUnknownClass, name)
}

// PackageOf returns the SDMX-IM package the class belongs to.
func PackageOf(c Class) string {
	return classPackages[c]
}

// TrimString returns a short form of the class name, e.g. "Codelist" for
// Class_Codelist. This is the spelling used inside URNs.
func (c Class) TrimString() string {
	const pref = "Class_"
	return strings.TrimPrefix(c.String(), pref)
}
