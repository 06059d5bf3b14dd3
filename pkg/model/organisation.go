/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

import "github.com/khaeru/sdmx/pkg/urn"

// Contact is a person or role responsible for an organisation's statistical
// business.
type Contact struct {
	Name           InternationalString
	OrgUnit        InternationalString
	Responsibility InternationalString
	Telephone      string
	Fax            []string
	X400           []string
	Email          []string
	URI            []string
}

// Organisation is the common state of the organisation item classes.
type Organisation struct {
	NameableArtefact

	Contacts []*Contact
}

// Agency maintains structural metadata artefacts.
type Agency struct {
	Organisation
	Item[Agency]
}

func agencyNode(a *Agency) *Item[Agency] { return &a.Item }

func newAgency(id string, cfg *artefactConfig) (*Agency, error) {
	n, err := makeNameable(urn.Class_Agency, id, cfg)
	if err != nil {
		return nil, err
	}
	a := &Agency{Organisation: Organisation{NameableArtefact: n}}
	a.Item.init(a, agencyNode, id)
	return a, nil
}

func NewAgency(id string, opts ...Option) (*Agency, error) {
	return newAgency(id, newConfig(opts))
}

// AgencyScheme is a maintained scheme of Agencies.
type AgencyScheme = ItemScheme[Agency]

func NewAgencyScheme(id string, opts ...Option) (*AgencyScheme, error) {
	m, err := makeMaintainable(urn.Class_AgencyScheme, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	as := &AgencyScheme{MaintainableArtefact: m}
	as.init(agencyNode, newAgency)
	return as, nil
}

// DataProvider supplies data, possibly under a provision agreement. Content
// constraints may attach to it.
type DataProvider struct {
	Organisation
	Item[DataProvider]
}

func (*DataProvider) constrainableArtefact() {}

func dataProviderNode(p *DataProvider) *Item[DataProvider] { return &p.Item }

func newDataProvider(id string, cfg *artefactConfig) (*DataProvider, error) {
	n, err := makeNameable(urn.Class_DataProvider, id, cfg)
	if err != nil {
		return nil, err
	}
	p := &DataProvider{Organisation: Organisation{NameableArtefact: n}}
	p.Item.init(p, dataProviderNode, id)
	return p, nil
}

func NewDataProvider(id string, opts ...Option) (*DataProvider, error) {
	return newDataProvider(id, newConfig(opts))
}

// DataProviderScheme is a maintained scheme of DataProviders.
type DataProviderScheme = ItemScheme[DataProvider]

func NewDataProviderScheme(id string, opts ...Option) (*DataProviderScheme, error) {
	m, err := makeMaintainable(urn.Class_DataProviderScheme, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	ps := &DataProviderScheme{MaintainableArtefact: m}
	ps.init(dataProviderNode, newDataProvider)
	return ps, nil
}

// DataConsumer receives data.
type DataConsumer struct {
	Organisation
	Item[DataConsumer]
}

func dataConsumerNode(c *DataConsumer) *Item[DataConsumer] { return &c.Item }

func newDataConsumer(id string, cfg *artefactConfig) (*DataConsumer, error) {
	n, err := makeNameable(urn.Class_DataConsumer, id, cfg)
	if err != nil {
		return nil, err
	}
	c := &DataConsumer{Organisation: Organisation{NameableArtefact: n}}
	c.Item.init(c, dataConsumerNode, id)
	return c, nil
}

func NewDataConsumer(id string, opts ...Option) (*DataConsumer, error) {
	return newDataConsumer(id, newConfig(opts))
}

// DataConsumerScheme is a maintained scheme of DataConsumers.
type DataConsumerScheme = ItemScheme[DataConsumer]

func NewDataConsumerScheme(id string, opts ...Option) (*DataConsumerScheme, error) {
	m, err := makeMaintainable(urn.Class_DataConsumerScheme, id, newConfig(opts))
	if err != nil {
		return nil, err
	}
	cs := &DataConsumerScheme{MaintainableArtefact: m}
	cs.init(dataConsumerNode, newDataConsumer)
	return cs, nil
}
