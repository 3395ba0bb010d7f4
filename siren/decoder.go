package siren

import (
	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren/types"
)

// Decoder converts Siren documents to resources.
type Decoder struct {
	strategies    Strategies
	navigation    *NavigationConverter
	reconstructor *ModelReconstructor
}

// NewDecoder creates a decoder. Only the Logger, AttachActions, and ResolveShape strategies are
// relevant to decoding.
func NewDecoder(strategies Strategies) *Decoder {
	return &Decoder{
		strategies: strategies,
		navigation: strategies.navigationConverter(),
		reconstructor: &ModelReconstructor{
			Logger: strategies.logger(),
		},
	}
}

// Decode parses a document and converts it to a resource of the given shape.
func (d *Decoder) Decode(data []byte, shape Shape) (*hypermedia.Resource, error) {
	doc, err := ReadDocument(data)
	if err != nil {
		return nil, err
	}
	return d.DecodeDocument(doc, shape)
}

// DecodeDocument converts a document to a resource of the given shape.
//
// Classes, relations, and titles are presentation details and aren't restored.
func (d *Decoder) DecodeDocument(doc *types.Entity, shape Shape) (*hypermedia.Resource, error) {
	return d.decode("", doc, shape)
}

func (d *Decoder) decode(path string, doc *types.Entity, shape Shape) (*hypermedia.Resource, error) {
	links, actions := d.navigation.FromWire(doc.Links, doc.Actions)
	if d.strategies.AttachActions {
		actions = attachActions(links, actions)
	}

	raw, err := rawProperties(doc)
	if err != nil {
		return nil, err
	}
	propertiesPath := memberPath(path, "properties")

	var content hypermedia.Content
	var properties []rawProperty

	switch shape.Kind {
	case PlainShape:
		if len(doc.Entities) > 0 {
			return nil, d.unexpectedEntities(path, shape)
		}
		if properties, err = readProperties(propertiesPath, raw); err != nil {
			return nil, err
		}
	case ScalarShape:
		if len(doc.Entities) > 0 {
			return nil, d.unexpectedEntities(path, shape)
		}
		if content, err = scalarContent(propertiesPath, raw); err != nil {
			return nil, err
		}
	case EntityShape:
		if len(doc.Entities) > 1 {
			return nil, &IncompatibleShapeError{
				Field:  path,
				Shape:  shape.Kind,
				Reason: "entity shapes can only hold one sub-entity",
			}
		} else if len(doc.Entities) == 1 {
			childPath := indexPath(memberPath(path, "entities"), 0)
			child, err := d.decodeChild(childPath, &doc.Entities[0], shape)
			if err != nil {
				return nil, err
			}
			content = hypermedia.Single{Resource: child}
			if properties, err = readProperties(propertiesPath, raw); err != nil {
				properties = nil
			}
		} else if content, err = d.terminalContent(path, raw, shape); err != nil {
			return nil, err
		}
	case CollectionShape, PagedShape:
		children := make([]*hypermedia.Resource, 0, len(doc.Entities))
		for i := range doc.Entities {
			childPath := indexPath(memberPath(path, "entities"), i)
			child, err := d.decodeChild(childPath, &doc.Entities[i], shape)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		content = hypermedia.List{Resources: children}
		if properties, err = readProperties(propertiesPath, raw); err != nil {
			if shape.Kind == PagedShape {
				return nil, err
			}
			properties = nil
		}
	}

	ret, err := d.reconstructor.Build(path, shape, links, content, properties)
	if err != nil {
		return nil, err
	}
	ret.Actions = actions
	return ret, nil
}

// terminalContent decodes the properties of an entity without sub-entities as the content of an
// entity shape.
func (d *Decoder) terminalContent(path string, raw []byte, shape Shape) (hypermedia.Content, error) {
	propertiesPath := memberPath(path, "properties")
	if shape.Elem != nil && shape.Elem.Kind == PlainShape {
		properties, err := readProperties(propertiesPath, raw)
		if err != nil {
			return nil, err
		}
		resource, err := d.reconstructor.Build(path, *shape.Elem, nil, nil, properties)
		if err != nil {
			return nil, err
		}
		return resource.Content, nil
	}
	return scalarContent(propertiesPath, raw)
}

func (d *Decoder) decodeChild(path string, child *types.Entity, parent Shape) (*hypermedia.Resource, error) {
	if parent.Elem != nil {
		return d.decode(path, child, *parent.Elem)
	}
	if d.strategies.ResolveShape != nil {
		if shape, ok := d.strategies.ResolveShape(child); ok {
			return d.decode(path, child, shape)
		}
	}
	return nil, &NoConverterError{
		Field:   path,
		Classes: child.Class,
		Reason:  "no shape is known for the sub-entity",
	}
}

func (d *Decoder) unexpectedEntities(path string, shape Shape) error {
	return &IncompatibleShapeError{
		Field:  path,
		Shape:  shape.Kind,
		Reason: shape.Kind.String() + " shapes cannot hold sub-entities",
	}
}

func scalarContent(path string, raw []byte) (hypermedia.Content, error) {
	if raw == nil {
		return hypermedia.Scalar{}, nil
	}
	v, err := hypermedia.ParseValue(raw)
	if err != nil {
		return nil, &MalformedDocumentError{
			Field:    path,
			Found:    "invalid json",
			Expected: "a value",
			Cause:    err,
		}
	}
	return hypermedia.Scalar{Value: v}, nil
}
