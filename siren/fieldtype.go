package siren

import (
	"io/fs"
	"mime/multipart"
	"net/url"
	"reflect"
	"time"

	"github.com/ccbrown/siren-fu/hypermedia"
)

// FieldTypeMapping maps application types to a Siren field type, e.g. "number".
type FieldTypeMapping struct {
	Matches   func(t reflect.Type) bool
	InputType string
}

// MapType maps types assignable to t. If t is an interface, this includes all types that
// implement it.
func MapType(t reflect.Type, inputType string) FieldTypeMapping {
	if t == nil {
		panic("field type mappings require a type")
	}
	return FieldTypeMapping{
		Matches: func(candidate reflect.Type) bool {
			return candidate.AssignableTo(t)
		},
		InputType: inputType,
	}
}

// MapTypeOf maps types assignable to T.
func MapTypeOf[T any](inputType string) FieldTypeMapping {
	return MapType(hypermedia.TypeOf[T](), inputType)
}

// MapKinds maps all types of the given kinds.
func MapKinds(inputType string, kinds ...reflect.Kind) FieldTypeMapping {
	return FieldTypeMapping{
		Matches: func(candidate reflect.Type) bool {
			for _, k := range kinds {
				if candidate.Kind() == k {
					return true
				}
			}
			return false
		},
		InputType: inputType,
	}
}

// DefaultFieldTypes are the mappings used when no override matches.
var DefaultFieldTypes = []FieldTypeMapping{
	MapTypeOf[hypermedia.Date]("date"),
	MapTypeOf[hypermedia.TimeOfDay]("time"),
	MapTypeOf[time.Time]("datetime-local"),
	MapTypeOf[hypermedia.YearMonth]("month"),
	MapTypeOf[fs.File]("file"),
	MapTypeOf[multipart.FileHeader]("file"),
	MapKinds("number",
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
	),
	MapTypeOf[url.URL]("url"),
}

// DefaultInputType is used for fields whose types aren't mapped.
const DefaultInputType = "text"

// FieldTypeMapper determines the Siren field types of affordance fields.
type FieldTypeMapper struct {
	overrides []FieldTypeMapping
}

// NewFieldTypeMapper creates a mapper that consults the given overrides before the defaults.
// Within the overrides and the defaults, the first matching mapping wins, so more specific
// mappings should come first.
func NewFieldTypeMapper(overrides ...FieldTypeMapping) *FieldTypeMapper {
	return &FieldTypeMapper{
		overrides: overrides,
	}
}

// Map returns the input type for t. Pointer types are also matched by their element types.
func (m *FieldTypeMapper) Map(t reflect.Type) string {
	if t == nil {
		return DefaultInputType
	}
	if m != nil {
		if inputType, ok := findFieldType(m.overrides, t); ok {
			return inputType
		}
	}
	if inputType, ok := findFieldType(DefaultFieldTypes, t); ok {
		return inputType
	}
	return DefaultInputType
}

func findFieldType(mappings []FieldTypeMapping, t reflect.Type) (string, bool) {
	for _, mapping := range mappings {
		if mapping.Matches(t) || (t.Kind() == reflect.Ptr && mapping.Matches(t.Elem())) {
			return mapping.InputType, true
		}
	}
	return "", false
}
