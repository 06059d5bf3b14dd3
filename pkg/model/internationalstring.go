/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
)

// DefaultLocale is the process-wide locale used when localized text is set
// or read without an explicit locale.
var DefaultLocale = language.English

// InternationalString is a piece of text localized to zero or more locales.
// Setting text for a locale that already has some overwrites it (last write
// wins per locale).
//
// The zero value is ready to use.
type InternationalString struct {
	text map[language.Tag]string
}

// Set stores text for the given locale.
func (is *InternationalString) Set(locale language.Tag, text string) {
	if is.text == nil {
		is.text = make(map[language.Tag]string)
	}
	is.text[locale] = text
}

// SetDefault stores text for DefaultLocale.
func (is *InternationalString) SetDefault(text string) {
	is.Set(DefaultLocale, text)
}

// Get returns the text for exactly the given locale.
func (is *InternationalString) Get(locale language.Tag) (string, bool) {
	s, ok := is.text[locale]
	return s, ok
}

// Localized returns the best available text: the requested locale (or
// DefaultLocale when none is given), then DefaultLocale, then any localization
// in deterministic (sorted tag) order, then "".
func (is *InternationalString) Localized(locale ...language.Tag) string {
	want := DefaultLocale
	if len(locale) > 0 {
		want = locale[0]
	}
	if s, ok := is.text[want]; ok {
		return s
	}
	if s, ok := is.text[DefaultLocale]; ok {
		return s
	}
	tags := maps.Keys(is.text)
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	for _, t := range tags {
		return is.text[t]
	}
	return ""
}

// Localizations returns a copy of all localizations.
func (is *InternationalString) Localizations() map[language.Tag]string {
	out := make(map[language.Tag]string, len(is.text))
	for k, v := range is.text {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether no localization is present.
func (is *InternationalString) IsEmpty() bool { return len(is.text) == 0 }

func (is *InternationalString) String() string { return is.Localized() }
