package hypermedia

import (
	"encoding"
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Type identifies an application-level value type.
type Type = reflect.Type

// TypeOf returns the Type for T. Unlike reflect.TypeOf, this works for interface types.
func TypeOf[T any]() Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Model is implemented by application types that can be represented as resource properties.
type Model interface {
	// Properties returns the model's properties in output order.
	Properties() *Properties
}

// WritableModel is a model that can be populated from decoded properties.
type WritableModel interface {
	Model

	// SetProperty assigns the JSON-encoded value to the member with the given name. If the model
	// has no such member, it must return false and no error. Unknown properties are never an
	// error so that property sets can evolve independently of their consumers.
	SetProperty(name string, raw []byte) (bool, error)
}

// Targets maps property names to pointers that decoded values should be written to. It's a
// convenient way to implement WritableModel:
//
//	func (p *Person) SetProperty(name string, raw []byte) (bool, error) {
//	    return hypermedia.Targets{"name": &p.Name, "age": &p.Age}.Set(name, raw)
//	}
type Targets map[string]any

// Set unmarshals raw into the target for the given name, if there is one. If raw can't be
// unmarshaled, the target is left unchanged and a *ValueError is returned.
func (t Targets) Set(name string, raw []byte) (bool, error) {
	target, ok := t[name]
	if !ok {
		return false, nil
	}
	dest := reflect.ValueOf(target)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return true, errors.Errorf("the target for property %v is not a non-nil pointer", name)
	}
	v := reflect.New(dest.Type().Elem())
	if err := jsoniter.Unmarshal(raw, v.Interface()); err != nil {
		return true, &ValueError{
			Property: name,
			Type:     dest.Type().Elem(),
			Cause:    err,
		}
	}
	dest.Elem().Set(v.Elem())
	return true, nil
}

// ValueError indicates that a property's value can't be assigned to its target.
type ValueError struct {
	Property string

	// The type of the target.
	Type Type

	Cause error
}

func (err *ValueError) Error() string {
	return fmt.Sprintf("unable to set property %v: %v", err.Property, err.Cause)
}

func (err *ValueError) Unwrap() error {
	return err.Cause
}

var textUnmarshalerType = TypeOf[encoding.TextUnmarshaler]()

// JSONKind returns the kind of JSON value that the target accepts, e.g. "number".
func (err *ValueError) JSONKind() string {
	return jsonKind(err.Type)
}

func jsonKind(t Type) string {
	if t.Implements(textUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return "string"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Ptr:
		return jsonKind(t.Elem())
	}
	return "value"
}
