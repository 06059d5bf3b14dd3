/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package urn

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Prefix is the leading text common to all SDMX URNs.
const Prefix = "urn:sdmx:org.sdmx.infomodel"

// PackagePlaceholder may appear in the package position of a partial URN;
// it is replaced by the package registered for the entity class.
const PackagePlaceholder = "package"

var (
	ErrInvalidURN    = errors.New("not a valid SDMX URN")
	ErrUnknownClass  = errors.New("unknown SDMX entity class")
	ErrIncompleteURN = errors.New("incomplete URN")
)

// pattern matches the URN grammar:
//
//	urn:sdmx:org.sdmx.infomodel.<package>.<class>=<agency>:<id>(<version>).<item-id>
//
// The agency (with its trailing colon), the parenthesized version and the
// item id are each optional.
var pattern = regexp.MustCompile(
	`^urn:sdmx:org\.sdmx\.infomodel` +
		`\.([^.]*)` + // package
		`\.([^=]*)=` + // class
		`(?:([^:]*):)?` + // agency
		`([^(]*)` + // id
		`(?:\(([\d.]*)\))?` + // version
		`(?:\.(.*))?$`) // item id

// URN is one parsed SDMX Uniform Resource Name, for example
// "urn:sdmx:org.sdmx.infomodel.codelist.Code=BAZ:FOO(1.2.3).BAR".
//
// The Agency ("BAZ") and Version ("1.2.3") always refer to a maintainable
// artefact. When ItemID is present the URN identifies a non-maintainable
// child (here the code "BAR") relative to its maintainable parent (the
// codelist "FOO" maintained by "BAZ").
type URN struct {
	Package string
	Class   Class
	Agency  string
	ID      string
	Version string
	ItemID  string
}

// Parse parses value as an SDMX URN. Results for well-formed values are
// memoized (see cache.go): codecs resolve the same reference URNs over and
// over while walking a message.
func Parse(value string) (URN, error) {
	if u, ok := parseCache.Get(value); ok {
		return u, nil
	}

	m := pattern.FindStringSubmatch(value)
	if m == nil {
		return URN{}, fmt.Errorf("%w: %v", ErrInvalidURN, value)
	}

	cls, err := ClassFor(m[2])
	if err != nil {
		return URN{}, fmt.Errorf("%w: %v", err, value)
	}

	pkg := m[1]
	if pkg == PackagePlaceholder {
		pkg = PackageOf(cls)
	}

	u := URN{
		Package: pkg,
		Class:   cls,
		Agency:  m[3],
		ID:      m[4],
		Version: m[5],
		ItemID:  m[6],
	}
	parseCache.Add(value, u)
	return u, nil
}

// MustParse is like Parse.
//
// # Panics:
//   - if value is not a valid SDMX URN
func MustParse(value string) URN {
	u, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return u
}

// String renders the URN in its canonical form. The agency and version
// segments are omitted when empty, so that String inverts Parse.
func (u URN) String() string {
	var b strings.Builder
	b.WriteString(Prefix)
	b.WriteByte('.')
	b.WriteString(u.Package)
	b.WriteByte('.')
	b.WriteString(u.Class.TrimString())
	b.WriteByte('=')
	if u.Agency != "" {
		b.WriteString(u.Agency)
		b.WriteByte(':')
	}
	b.WriteString(u.ID)
	if u.Version != "" {
		b.WriteString("(" + u.Version + ")")
	}
	if u.ItemID != "" {
		b.WriteString("." + u.ItemID)
	}
	return b.String()
}

// Make builds the canonical URN string for one entity.
//
// agency and id refer to the maintainable artefact; for a non-maintainable
// child, itemID carries the child's own identifier. An empty agency is an
// error; an empty version is an error only in strict mode.
func Make(class Class, agency, id, version, itemID string, strict bool) (string, error) {
	if agency == "" {
		return "", fmt.Errorf("%w: no maintainer agency for «%s»", ErrIncompleteURN, id)
	}
	if strict && version == "" {
		return "", fmt.Errorf("%w: no version for «%s»", ErrIncompleteURN, id)
	}
	u := URN{
		Package: PackageOf(class),
		Class:   class,
		Agency:  agency,
		ID:      id,
		Version: version,
		ItemID:  itemID,
	}
	return u.String(), nil
}

// Expand returns the full URN for value, which may be either a complete URN
// or its final part, e.g. "Codelist=BAZ:FOO(1.2.3)". A value that is neither
// is returned unmodified.
func Expand(value string) string {
	for _, candidate := range []string{value, Prefix + "." + PackagePlaceholder + "." + value} {
		if u, err := Parse(candidate); err == nil {
			return u.String()
		}
	}
	return value
}

// Shorten is the inverse of Expand: it strips the leading
// "urn:sdmx:org.sdmx.infomodel.<package>." text from a full URN. A value
// that is not a URN is returned unmodified.
func Shorten(value string) string {
	u, err := Parse(value)
	if err != nil {
		return value
	}
	full := u.String()
	return strings.TrimPrefix(full, Prefix+"."+u.Package+".")
}

// Normalize prefers the SDMX 3.0 "…Dataflow=…" spelling over the SDMX 2.1
// "…DataflowDefinition=…" one, without otherwise touching the value.
func Normalize(value string) string {
	return strings.ReplaceAll(value, "Definition=", "=")
}
