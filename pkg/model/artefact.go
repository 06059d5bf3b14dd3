/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import (
	"golang.org/x/text/language"

	"github.com/khaeru/sdmx/pkg/urn"
)

// The artefact hierarchy is layered as composable capabilities: each level
// embeds the previous one and adds exactly its own fields, and the matching
// interfaces below are what cross-referencing code accepts.

// Identifiable is the capability of carrying an SDMX identifier.
type Identifiable interface {
	ID() string
	URI() string
	URN() string
	Class() urn.Class
}

// Nameable adds localized name and description.
type Nameable interface {
	Identifiable
	Name() string
	Description() string
}

// Versionable adds a version string.
type Versionable interface {
	Nameable
	Version() string
}

// Maintainable adds finality, external-reference status and a maintainer.
type Maintainable interface {
	Versionable
	IsFinal() bool
	IsExternalReference() bool
	Maintainer() *Agency
}

// ConstrainableArtefact marks artefact types a constraint may attach to.
type ConstrainableArtefact interface {
	Identifiable
	constrainableArtefact()
}

// capLevel orders the capability levels so that construction can reject
// options that do not apply to the entity being built.
type capLevel int

const (
	capIdentifiable capLevel = iota + 1
	capNameable
	capVersionable
	capMaintainable
)

type localizedText struct {
	locale language.Tag
	text   string
}

type optionUse struct {
	name  string
	level capLevel
}

type artefactConfig struct {
	uri string
	urn string

	annotations  []*Annotation
	names        []localizedText
	descriptions []localizedText

	version   string
	validFrom string
	validTo   string

	isFinal             bool
	isExternalReference bool
	serviceURL          string
	structureURL        string
	maintainer          *Agency

	// consumed only by ItemScheme.SetDefault
	parentID string
	parentOK bool

	used []optionUse
}

// Option configures construction of an artefact. Options beyond the
// capability level of the entity being constructed are rejected.
type Option func(*artefactConfig)

func newConfig(opts []Option) *artefactConfig {
	cfg := &artefactConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *artefactConfig) use(name string, level capLevel) {
	cfg.used = append(cfg.used, optionUse{name, level})
}

func WithURI(uri string) Option {
	return func(cfg *artefactConfig) { cfg.uri = uri; cfg.use("uri", capIdentifiable) }
}

func WithURN(u string) Option {
	return func(cfg *artefactConfig) { cfg.urn = u; cfg.use("urn", capIdentifiable) }
}

func WithAnnotation(a *Annotation) Option {
	return func(cfg *artefactConfig) {
		cfg.annotations = append(cfg.annotations, a)
		cfg.use("annotation", capIdentifiable)
	}
}

// WithName sets the name for DefaultLocale.
func WithName(text string) Option {
	return WithLocalizedName(DefaultLocale, text)
}

func WithLocalizedName(locale language.Tag, text string) Option {
	return func(cfg *artefactConfig) {
		cfg.names = append(cfg.names, localizedText{locale, text})
		cfg.use("name", capNameable)
	}
}

// WithDescription sets the description for DefaultLocale.
func WithDescription(text string) Option {
	return WithLocalizedDescription(DefaultLocale, text)
}

func WithLocalizedDescription(locale language.Tag, text string) Option {
	return func(cfg *artefactConfig) {
		cfg.descriptions = append(cfg.descriptions, localizedText{locale, text})
		cfg.use("description", capNameable)
	}
}

func WithVersion(version string) Option {
	return func(cfg *artefactConfig) { cfg.version = version; cfg.use("version", capVersionable) }
}

func WithValidFrom(date string) Option {
	return func(cfg *artefactConfig) { cfg.validFrom = date; cfg.use("validFrom", capVersionable) }
}

func WithValidTo(date string) Option {
	return func(cfg *artefactConfig) { cfg.validTo = date; cfg.use("validTo", capVersionable) }
}

func WithFinal(isFinal bool) Option {
	return func(cfg *artefactConfig) { cfg.isFinal = isFinal; cfg.use("isFinal", capMaintainable) }
}

func WithExternalReference(external bool) Option {
	return func(cfg *artefactConfig) {
		cfg.isExternalReference = external
		cfg.use("isExternalReference", capMaintainable)
	}
}

func WithServiceURL(u string) Option {
	return func(cfg *artefactConfig) { cfg.serviceURL = u; cfg.use("serviceURL", capMaintainable) }
}

func WithStructureURL(u string) Option {
	return func(cfg *artefactConfig) { cfg.structureURL = u; cfg.use("structureURL", capMaintainable) }
}

func WithMaintainer(a *Agency) Option {
	return func(cfg *artefactConfig) { cfg.maintainer = a; cfg.use("maintainer", capMaintainable) }
}

// WithParentID names an existing item of the same scheme as the parent of
// the item being created. Only ItemScheme.SetDefault can resolve it.
func WithParentID(id string) Option {
	return func(cfg *artefactConfig) { cfg.parentID = id }
}

// IdentifiableArtefact is the concrete identifiable capability. The identity
// fields are immutable after construction; annotations stay mutable.
type IdentifiableArtefact struct {
	AnnotableArtefact
	class urn.Class
	id    string
	uri   string
	urn   string
}

func (a *IdentifiableArtefact) ID() string       { return a.id }
func (a *IdentifiableArtefact) URI() string      { return a.uri }
func (a *IdentifiableArtefact) URN() string      { return a.urn }
func (a *IdentifiableArtefact) Class() urn.Class { return a.class }
func (a *IdentifiableArtefact) String() string   { return a.id }

// Is reports whether the artefact's id equals id; supports the common
// compare-to-string idiom.
func (a *IdentifiableArtefact) Is(id string) bool { return a.id == id }

func makeIdentifiable(class urn.Class, id string, cfg *artefactConfig) (IdentifiableArtefact, error) {
	a, _, err := newIdentifiable(class, id, cfg, capIdentifiable)
	return a, err
}

// newIdentifiable builds the identifiable core shared by all higher levels,
// returning the parsed URN (when present) for their own agreement checks.
func newIdentifiable(class urn.Class, id string, cfg *artefactConfig, level capLevel) (IdentifiableArtefact, *urn.URN, error) {
	if id == "" {
		return IdentifiableArtefact{}, nil, ErrMissed("id of %s", class.TrimString())
	}
	for _, u := range cfg.used {
		if u.level > level {
			return IdentifiableArtefact{}, nil,
				ErrInvalid("option «%s» is not applicable to %s", u.name, class.TrimString())
		}
	}
	if cfg.parentID != "" && !cfg.parentOK {
		return IdentifiableArtefact{}, nil,
			ErrInvalid("option «parent» is only applicable inside an item scheme")
	}

	a := IdentifiableArtefact{
		class: class,
		id:    id,
		uri:   cfg.uri,
		urn:   cfg.urn,
	}
	a.annotations = append(a.annotations, cfg.annotations...)

	if cfg.urn == "" {
		return a, nil, nil
	}
	parsed, err := urn.Parse(cfg.urn)
	if err != nil {
		return IdentifiableArtefact{}, nil, ErrInvalid("urn of «%s»: %v", id, err)
	}
	embedded := parsed.ID
	if parsed.ItemID != "" {
		embedded = parsed.ItemID
	}
	if embedded != id {
		return IdentifiableArtefact{}, nil,
			ErrInvalid("id «%s» does not match URN «%s»", id, cfg.urn)
	}
	return a, &parsed, nil
}

// NameableArtefact adds localized name and description.
type NameableArtefact struct {
	IdentifiableArtefact
	name        InternationalString
	description InternationalString
}

// Name returns the name localized to DefaultLocale (with fallback).
func (a *NameableArtefact) Name() string { return a.name.Localized() }

// NameText gives access to all localizations of the name.
func (a *NameableArtefact) NameText() *InternationalString { return &a.name }

func (a *NameableArtefact) SetName(text string) { a.name.SetDefault(text) }

func (a *NameableArtefact) SetLocalizedName(locale language.Tag, text string) {
	a.name.Set(locale, text)
}

func (a *NameableArtefact) Description() string { return a.description.Localized() }

func (a *NameableArtefact) DescriptionText() *InternationalString { return &a.description }

func (a *NameableArtefact) SetDescription(text string) { a.description.SetDefault(text) }

func (a *NameableArtefact) SetLocalizedDescription(locale language.Tag, text string) {
	a.description.Set(locale, text)
}

func makeNameable(class urn.Class, id string, cfg *artefactConfig) (NameableArtefact, error) {
	a, _, err := newNameable(class, id, cfg, capNameable)
	return a, err
}

func newNameable(class urn.Class, id string, cfg *artefactConfig, level capLevel) (NameableArtefact, *urn.URN, error) {
	ident, parsed, err := newIdentifiable(class, id, cfg, level)
	if err != nil {
		return NameableArtefact{}, nil, err
	}
	a := NameableArtefact{IdentifiableArtefact: ident}
	for _, lt := range cfg.names {
		a.name.Set(lt.locale, lt.text)
	}
	for _, lt := range cfg.descriptions {
		a.description.Set(lt.locale, lt.text)
	}
	return a, parsed, nil
}

// VersionableArtefact adds a version following an agreed convention, and its
// validity window.
type VersionableArtefact struct {
	NameableArtefact
	version   string
	validFrom string
	validTo   string
}

func (a *VersionableArtefact) Version() string   { return a.version }
func (a *VersionableArtefact) ValidFrom() string { return a.validFrom }
func (a *VersionableArtefact) ValidTo() string   { return a.validTo }

func newVersionable(class urn.Class, id string, cfg *artefactConfig, level capLevel) (VersionableArtefact, *urn.URN, error) {
	n, parsed, err := newNameable(class, id, cfg, level)
	if err != nil {
		return VersionableArtefact{}, nil, err
	}
	a := VersionableArtefact{
		NameableArtefact: n,
		version:          cfg.version,
		validFrom:        cfg.validFrom,
		validTo:          cfg.validTo,
	}
	if parsed != nil {
		if a.version != "" && a.version != parsed.Version {
			return VersionableArtefact{}, nil,
				ErrInvalid("version «%s» does not match URN «%s»", a.version, cfg.urn)
		}
		if a.version == "" {
			a.version = parsed.Version
		}
	}
	return a, parsed, nil
}

// MaintainableArtefact adds maintenance state and the maintaining agency.
type MaintainableArtefact struct {
	VersionableArtefact
	isFinal             bool
	isExternalReference bool
	serviceURL          string
	structureURL        string
	maintainer          *Agency
}

// IsFinal reports whether the artefact is final; otherwise it is in a draft
// state.
func (a *MaintainableArtefact) IsFinal() bool { return a.isFinal }

// IsExternalReference reports whether the content of the artefact is held
// externally, i.e. not in the message it was referenced from.
func (a *MaintainableArtefact) IsExternalReference() bool { return a.isExternalReference }

func (a *MaintainableArtefact) ServiceURL() string   { return a.serviceURL }
func (a *MaintainableArtefact) StructureURL() string { return a.structureURL }
func (a *MaintainableArtefact) Maintainer() *Agency  { return a.maintainer }

// URNString produces the canonical URN of the artefact. It errors for an
// artefact without a maintainer and, in strict mode, without a version.
func (a *MaintainableArtefact) URNString(strict bool) (string, error) {
	agency := ""
	if a.maintainer != nil {
		agency = a.maintainer.ID()
	}
	return urn.Make(a.class, agency, a.id, a.version, "", strict)
}

func makeMaintainable(class urn.Class, id string, cfg *artefactConfig) (MaintainableArtefact, error) {
	v, parsed, err := newVersionable(class, id, cfg, capMaintainable)
	if err != nil {
		return MaintainableArtefact{}, err
	}
	a := MaintainableArtefact{
		VersionableArtefact: v,
		isFinal:             cfg.isFinal,
		isExternalReference: cfg.isExternalReference,
		serviceURL:          cfg.serviceURL,
		structureURL:        cfg.structureURL,
		maintainer:          cfg.maintainer,
	}
	if parsed != nil && parsed.Agency != "" {
		if a.maintainer != nil && a.maintainer.ID() != parsed.Agency {
			return MaintainableArtefact{},
				ErrInvalid("maintainer «%s» does not match URN «%s»", a.maintainer.ID(), cfg.urn)
		}
		if a.maintainer == nil {
			m, err := NewAgency(parsed.Agency)
			if err != nil {
				return MaintainableArtefact{}, err
			}
			a.maintainer = m
		}
	}
	return a, nil
}
