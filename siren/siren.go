// Package siren converts between hypermedia resources and Siren documents.
//
// Encoding walks a resource graph and produces a document: links become Siren links, non-GET
// affordances become actions, object and scalar content become properties, and nested resources
// become sub-entities. Decoding does the reverse, guided by a Shape that describes which kind of
// resource is expected at each level.
//
// Encoders and decoders hold no mutable state and may be used concurrently as long as the
// strategies they're configured with can be.
package siren

import (
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/siren-fu/catalog"
	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren/types"
)

// MediaType is the media type of Siren documents.
const MediaType = "application/vnd.siren+json"

// Map keys are sorted so that documents are deterministic even when properties contain maps.
var jsonConfig = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// EntityClassifier determines the classes of an entity.
type EntityClassifier func(resource *hypermedia.Resource) []string

// RelationProvider determines the relations of a sub-entity to its parent. The parent is nil for
// the root entity.
type RelationProvider func(resource, parent *hypermedia.Resource) []string

// ShapeResolver determines the shape of a sub-entity whose shape wasn't specified.
type ShapeResolver func(entity *types.Entity) (Shape, bool)

// Strategies bundles everything that encoders and decoders can be customized with. The zero
// value is usable.
type Strategies struct {
	Logger logrus.FieldLogger

	// Defaults to DefaultClassifier.
	Classifier EntityClassifier

	// Defaults to DefaultRelationProvider.
	RelationProvider RelationProvider

	// Used to look up titles. If nil, titles are only output if they're explicitly given.
	Catalog catalog.Catalog

	// Consulted in order before the default field types.
	FieldTypes []FieldTypeMapping

	// If true, content types that embed hypermedia.Single or hypermedia.List are encoded as the
	// embedded type. Any additional fields they have are lost, so by default this is an error.
	AllowCustomContent bool

	// If true, decoded actions are attached to the link with the same href. Actions without a
	// matching link, and all actions if this is false, are put in the resource's Actions.
	AttachActions bool

	// Used for nested entities when the shape doesn't specify one.
	ResolveShape ShapeResolver
}

func (s Strategies) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

func (s Strategies) navigationConverter() *NavigationConverter {
	logger := s.logger()
	return &NavigationConverter{
		Titles: &TitleResolver{
			Catalog: s.Catalog,
			Logger:  logger,
		},
		FieldTypes: NewFieldTypeMapper(s.FieldTypes...),
		Logger:     logger,
	}
}

// DefaultRelationProvider gives sub-entities the "item" relation.
func DefaultRelationProvider(resource, parent *hypermedia.Resource) []string {
	if parent != nil {
		return []string{"item"}
	}
	return nil
}

// DefaultClassifier classifies resources by the lower-cased name of their type.
func DefaultClassifier(resource *hypermedia.Resource) []string {
	names := typeNames(resource)
	if len(names) == 0 {
		return nil
	}
	return []string{strings.ToLower(names[len(names)-1])}
}

var propertiesType = reflect.TypeOf(&hypermedia.Properties{})

// typeNames returns the names of the resource's type, from most to least specific.
func typeNames(resource *hypermedia.Resource) []string {
	switch c := resource.Content.(type) {
	case hypermedia.Object:
		if c.Model == nil {
			return nil
		}
		t := reflect.TypeOf(c.Model)
		if t == propertiesType {
			return nil
		}
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Name() == "" {
			return nil
		} else if t.PkgPath() == "" {
			return []string{t.Name()}
		}
		return []string{t.PkgPath() + "." + t.Name(), t.Name()}
	case hypermedia.SingleContent:
		return []string{"Entity"}
	case hypermedia.ListContent:
		if resource.Page != nil {
			return []string{"Paged"}
		}
		return []string{"Collection"}
	}
	return []string{"Representation"}
}
