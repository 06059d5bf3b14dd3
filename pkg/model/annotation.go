/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package model

// Annotation carries non-normative commentary on any annotable artefact. The
// id can be used to disambiguate several annotations on one artefact.
type Annotation struct {
	ID    string
	Title string
	Type  string
	URL   string
	Text  InternationalString
}

// AnnotableArtefact is the root capability of the artefact hierarchy: it only
// collects annotations.
type AnnotableArtefact struct {
	annotations []*Annotation
}

// Annotations returns the annotations in the order they were attached.
func (a *AnnotableArtefact) Annotations() []*Annotation {
	return a.annotations
}

// Annotate attaches annotations.
func (a *AnnotableArtefact) Annotate(anns ...*Annotation) {
	a.annotations = append(a.annotations, anns...)
}

// Annotation returns the first annotation with the given id.
func (a *AnnotableArtefact) Annotation(id string) (*Annotation, error) {
	for _, ann := range a.annotations {
		if ann.ID == id {
			return ann, nil
		}
	}
	return nil, ErrNotFound("annotation «%v»", id)
}

// PopAnnotation removes and returns the first annotation with the given id.
func (a *AnnotableArtefact) PopAnnotation(id string) (*Annotation, error) {
	for i, ann := range a.annotations {
		if ann.ID == id {
			a.annotations = append(a.annotations[:i], a.annotations[i+1:]...)
			return ann, nil
		}
	}
	return nil, ErrNotFound("annotation «%v»", id)
}
