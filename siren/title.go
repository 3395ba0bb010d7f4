package siren

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ccbrown/siren-fu/catalog"
	"github.com/ccbrown/siren-fu/hypermedia"
)

// TitleResolver looks up titles in a message catalog.
//
// Codes are of the form "_<kind>.<key>.title" and are tried from most to least specific, ending
// with "_<kind>.default.title". For example, the codes for a field named "email" are:
//
//	_field.email.title
//	_field.default.title
type TitleResolver struct {
	Catalog catalog.Catalog
	Logger  logrus.FieldLogger
}

// Resolve returns the message for the first of the given codes that the catalog can resolve.
// If none can be resolved, the empty string is returned.
func (r *TitleResolver) Resolve(codes ...string) string {
	if r == nil || r.Catalog == nil {
		return ""
	}
	msg, err := r.Catalog.Message(codes)
	if err != nil {
		if !errors.Is(err, catalog.ErrNoSuchMessage) && r.Logger != nil {
			r.Logger.WithError(err).WithField("codes", codes).Warn("unable to look up title")
		}
		return ""
	}
	return msg
}

// EntityTitle returns the title for a resource, based on its type.
func (r *TitleResolver) EntityTitle(resource *hypermedia.Resource) string {
	return r.Resolve(titleCodes("entity", typeNames(resource)...)...)
}

// LinkTitle returns the title for a link with the given relation.
func (r *TitleResolver) LinkTitle(rel string) string {
	return r.Resolve(titleCodes("link", rel)...)
}

// ActionTitle returns the title for an action with the given name.
func (r *TitleResolver) ActionTitle(name string) string {
	return r.Resolve(titleCodes("action", name)...)
}

// FieldTitle returns the title for a field with the given name.
func (r *TitleResolver) FieldTitle(name string) string {
	return r.Resolve(titleCodes("field", name)...)
}

func titleCodes(kind string, keys ...string) []string {
	ret := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		if key != "" {
			ret = append(ret, "_"+kind+"."+key+".title")
		}
	}
	return append(ret, "_"+kind+".default.title")
}
