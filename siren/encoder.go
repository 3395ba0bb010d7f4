package siren

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren/types"
)

// ReservedPropertyKeys are never output as properties of object content.
var ReservedPropertyKeys = []string{"links", "entities"}

// Encoder converts resources to Siren documents.
type Encoder struct {
	// If given, documents are indented using this string.
	Indent string

	strategies       Strategies
	logger           logrus.FieldLogger
	classifier       EntityClassifier
	relationProvider RelationProvider
	navigation       *NavigationConverter
}

// NewEncoder creates an encoder.
func NewEncoder(strategies Strategies) *Encoder {
	ret := &Encoder{
		strategies:       strategies,
		logger:           strategies.logger(),
		classifier:       strategies.Classifier,
		relationProvider: strategies.RelationProvider,
		navigation:       strategies.navigationConverter(),
	}
	if ret.classifier == nil {
		ret.classifier = DefaultClassifier
	}
	if ret.relationProvider == nil {
		ret.relationProvider = DefaultRelationProvider
	}
	return ret
}

// Encode converts a resource to a document and serializes it.
func (e *Encoder) Encode(resource *hypermedia.Resource) ([]byte, error) {
	doc, err := e.EncodeDocument(resource)
	if err != nil {
		return nil, err
	}
	return MarshalDocument(doc, e.Indent)
}

// MarshalDocument serializes a document. If indent is given, the output is indented using it.
func MarshalDocument(doc *types.Entity, indent string) ([]byte, error) {
	var buf []byte
	var err error
	if indent != "" {
		buf, err = jsonConfig.MarshalIndent(doc, "", indent)
	} else {
		buf, err = jsonConfig.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to serialize document")
	}
	return buf, nil
}

// EncodeDocument converts a resource to a document.
func (e *Encoder) EncodeDocument(resource *hypermedia.Resource) (*types.Entity, error) {
	return e.encode("", resource, nil)
}

func (e *Encoder) encode(path string, resource, parent *hypermedia.Resource) (*types.Entity, error) {
	if resource == nil {
		return nil, &NoConverterError{
			Field:  path,
			Reason: "the resource is nil",
		}
	}

	ret := &types.Entity{
		Class: resource.Classes,
		Rel:   e.relationProvider(resource, parent),
		Title: resource.Title,
	}
	if len(ret.Class) == 0 {
		ret.Class = e.classifier(resource)
	}

	ret.Links, ret.Actions = e.navigation.ToWire(resource.Links, resource.Affordances())

	var children []*hypermedia.Resource

	switch content := resource.Content.(type) {
	case nil:
	case hypermedia.Scalar:
		ret.Properties = content.Value
	case hypermedia.Object:
		if content.Model == nil {
			return nil, &NoConverterError{
				Field:  path,
				Reason: "object content has no model",
			}
		}
		if properties := e.objectProperties(path, content.Model); properties.Len() > 0 {
			ret.Properties = properties
		}
	case hypermedia.Single:
		children = []*hypermedia.Resource{content.Resource}
	case *hypermedia.Single:
		children = []*hypermedia.Resource{content.Resource}
	case hypermedia.List:
		children = content.Resources
	case *hypermedia.List:
		children = content.Resources
	case hypermedia.SingleContent:
		if err := e.guard(path, content); err != nil {
			return nil, err
		}
		children = []*hypermedia.Resource{content.Child()}
	case hypermedia.ListContent:
		if err := e.guard(path, content); err != nil {
			return nil, err
		}
		children = content.Children()
	default:
		return nil, &NoConverterError{
			Field:  path,
			Reason: fmt.Sprintf("unsupported content type %T", content),
		}
	}

	if _, ok := resource.Content.(hypermedia.ListContent); ok && resource.Page != nil {
		ret.Properties = resource.Page
	}

	if len(children) > 0 {
		ret.Entities = make([]types.Entity, 0, len(children))
		for i, child := range children {
			entity, err := e.encode(indexPath(memberPath(path, "entities"), i), child, resource)
			if err != nil {
				return nil, err
			}
			ret.Entities = append(ret.Entities, *entity)
		}
	}

	if ret.Title == "" {
		ret.Title = e.navigation.Titles.EntityTitle(resource)
	}

	return ret, nil
}

func (e *Encoder) objectProperties(path string, model hypermedia.Model) *hypermedia.Properties {
	properties := model.Properties()
	reserved := false
	for _, key := range ReservedPropertyKeys {
		if _, ok := properties.Get(key); ok {
			e.logger.WithFields(logrus.Fields{
				"property": key,
				"path":     describeField(path),
			}).Debug("omitting reserved property")
			reserved = true
		}
	}
	if reserved {
		return properties.Without(ReservedPropertyKeys...)
	}
	return properties
}

func (e *Encoder) guard(path string, content hypermedia.Content) error {
	if e.strategies.AllowCustomContent {
		return nil
	}
	return &GuardViolationError{
		Field:       path,
		ContentType: fmt.Sprintf("%T", content),
	}
}
