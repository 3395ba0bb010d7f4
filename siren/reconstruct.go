package siren

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ccbrown/siren-fu/hypermedia"
)

// ModelReconstructor builds resources of a given shape from decoded content and properties.
//
// Each shape accepts a fixed set of properties: plain shapes accept whatever their model
// accepts, paged shapes accept page metadata, and all others accept none. Properties that
// aren't accepted are dropped.
type ModelReconstructor struct {
	Logger logrus.FieldLogger
}

// Build creates a resource. For plain shapes, content must be nil and the model is created by the
// shape. For scalar shapes, content must be scalar. For entity shapes, content must be single,
// scalar, or object content. For collection and paged shapes, content must be a list.
func (m *ModelReconstructor) Build(path string, shape Shape, links []hypermedia.Link, content hypermedia.Content, properties []rawProperty) (*hypermedia.Resource, error) {
	ret := &hypermedia.Resource{
		Links: links,
	}

	incompatible := func() error {
		return &IncompatibleShapeError{
			Field:  path,
			Shape:  shape.Kind,
			Reason: fmt.Sprintf("%v shapes cannot hold %v content", shape.Kind, contentKind(content)),
		}
	}

	switch shape.Kind {
	case PlainShape:
		if content != nil {
			return nil, incompatible()
		}
		model, err := m.newModel(path, shape)
		if err != nil {
			return nil, err
		}
		if err := m.apply(path, model, properties); err != nil {
			return nil, err
		}
		ret.Content = hypermedia.Object{Model: model}
	case ScalarShape:
		if _, ok := content.(hypermedia.Scalar); !ok {
			return nil, incompatible()
		}
		ret.Content = content
	case EntityShape:
		switch content.(type) {
		case hypermedia.Single, hypermedia.Scalar, hypermedia.Object:
		default:
			return nil, incompatible()
		}
		ret.Content = content
		m.drop(path, shape, properties)
	case CollectionShape, PagedShape:
		if _, ok := content.(hypermedia.List); !ok {
			return nil, incompatible()
		}
		ret.Content = content
		if shape.Kind == PagedShape && properties != nil {
			page := &pageMetadataModel{}
			if err := m.apply(path, page, properties); err != nil {
				return nil, err
			}
			ret.Page = &page.PageMetadata
		} else {
			m.drop(path, shape, properties)
		}
	default:
		return nil, &IncompatibleShapeError{
			Field:  path,
			Shape:  shape.Kind,
			Reason: "unknown shape kind",
		}
	}

	return ret, nil
}

func (m *ModelReconstructor) newModel(path string, shape Shape) (hypermedia.WritableModel, error) {
	if shape.NewModel == nil {
		return hypermedia.NewProperties(), nil
	}
	model := shape.NewModel()
	if model == nil {
		return nil, &NoConverterError{
			Field:  path,
			Reason: "the shape's model factory returned nil",
		}
	}
	return model, nil
}

func (m *ModelReconstructor) apply(path string, model hypermedia.WritableModel, properties []rawProperty) error {
	for _, property := range properties {
		ok, err := model.SetProperty(property.Name, property.Raw)
		if err != nil {
			expected := "a value accepted by the model"
			var valueErr *hypermedia.ValueError
			if errors.As(err, &valueErr) {
				expected = valueErr.JSONKind()
			}
			return &MalformedDocumentError{
				Field:    memberPath(memberPath(path, "properties"), property.Name),
				Found:    valueKind(property.Raw),
				Expected: expected,
				Cause:    err,
			}
		} else if !ok && m.Logger != nil {
			m.Logger.WithFields(logrus.Fields{
				"property": property.Name,
				"model":    fmt.Sprintf("%T", model),
			}).Debug("ignoring unknown property")
		}
	}
	return nil
}

func (m *ModelReconstructor) drop(path string, shape Shape, properties []rawProperty) {
	if len(properties) == 0 || m.Logger == nil {
		return
	}
	for _, property := range properties {
		m.Logger.WithFields(logrus.Fields{
			"property": property.Name,
			"shape":    shape.Kind.String(),
		}).Debug("ignoring property not accepted by shape")
	}
}

type pageMetadataModel struct {
	hypermedia.PageMetadata
}

func (p *pageMetadataModel) Properties() *hypermedia.Properties {
	return hypermedia.NewProperties().
		Set("size", p.Size).
		Set("totalElements", p.TotalElements).
		Set("totalPages", p.TotalPages).
		Set("number", p.Number)
}

func (p *pageMetadataModel) SetProperty(name string, raw []byte) (bool, error) {
	return hypermedia.Targets{
		"size":          &p.Size,
		"totalElements": &p.TotalElements,
		"totalPages":    &p.TotalPages,
		"number":        &p.Number,
	}.Set(name, raw)
}

func contentKind(content hypermedia.Content) string {
	switch content.(type) {
	case nil:
		return "no"
	case hypermedia.Scalar:
		return "scalar"
	case hypermedia.Object:
		return "object"
	case hypermedia.SingleContent:
		return "single"
	case hypermedia.ListContent:
		return "list"
	}
	return fmt.Sprintf("%T", content)
}
