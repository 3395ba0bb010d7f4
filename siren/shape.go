package siren

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren/types"
)

// ShapeKind is the kind of resource that a shape describes.
type ShapeKind int

const (
	// A resource with scalar content, taken from the entity's properties.
	ScalarShape ShapeKind = iota

	// A resource with object content, populated from the entity's properties.
	PlainShape

	// A resource wrapping the entity's single sub-entity. If the entity has no sub-entities, its
	// properties are used as terminal content instead.
	EntityShape

	// A resource wrapping all of the entity's sub-entities.
	CollectionShape

	// Like CollectionShape, but the entity's properties hold page metadata.
	PagedShape
)

func (k ShapeKind) String() string {
	switch k {
	case ScalarShape:
		return "scalar"
	case PlainShape:
		return "plain"
	case EntityShape:
		return "entity"
	case CollectionShape:
		return "collection"
	case PagedShape:
		return "paged"
	}
	return "unknown"
}

// Shape describes the resource that a document should be decoded into.
type Shape struct {
	Kind ShapeKind

	// For plain shapes, this creates the model that properties are applied to. If nil, a
	// *hypermedia.Properties is used.
	NewModel func() hypermedia.WritableModel

	// For entity, collection, and paged shapes, this is the shape of the sub-entities. If nil, the
	// decoder's ShapeResolver is used.
	Elem *Shape
}

// Scalar returns a shape for resources with scalar content.
func Scalar() Shape {
	return Shape{Kind: ScalarShape}
}

// Plain returns a shape for resources whose properties are applied to models created by
// newModel.
func Plain(newModel func() hypermedia.WritableModel) Shape {
	return Shape{
		Kind:     PlainShape,
		NewModel: newModel,
	}
}

// PlainOf returns a shape for resources whose properties are applied to a new *T.
func PlainOf[T any, PT interface {
	*T
	hypermedia.WritableModel
}]() Shape {
	return Plain(func() hypermedia.WritableModel {
		return PT(new(T))
	})
}

// EntityOf returns a shape for resources that wrap a single resource.
func EntityOf(elem Shape) Shape {
	return Shape{
		Kind: EntityShape,
		Elem: &elem,
	}
}

// CollectionOf returns a shape for collections of resources.
func CollectionOf(elem Shape) Shape {
	return Shape{
		Kind: CollectionShape,
		Elem: &elem,
	}
}

// PagedOf returns a shape for paged collections of resources.
func PagedOf(elem Shape) Shape {
	return Shape{
		Kind: PagedShape,
		Elem: &elem,
	}
}

// InferShape guesses a shape from the structure of an entity. Entities with sub-entities are
// treated as collections, paged if their properties look like page metadata. Element shapes are
// left unspecified, so decoders need a ShapeResolver such as InferShape itself. Entities with
// object properties are plain and all others are scalar.
//
// The result is a best effort. Applications that know what to expect should specify it.
func InferShape(entity *types.Entity) Shape {
	raw, _ := rawProperties(entity)
	if len(entity.Entities) > 0 {
		if isPageMetadata(raw) {
			return Shape{Kind: PagedShape}
		}
		return Shape{Kind: CollectionShape}
	}
	switch kind := valueKind(raw); kind {
	case "object", "nothing", "null":
		return Plain(nil)
	}
	return Scalar()
}

var pageMetadataKeys = []string{"size", "totalElements", "totalPages", "number"}

func isPageMetadata(raw []byte) bool {
	if valueKind(raw) != "object" {
		return false
	}
	for _, key := range pageMetadataKeys {
		if jsoniter.Get(raw, key).ValueType() != jsoniter.NumberValue {
			return false
		}
	}
	return true
}
