package siren

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument is matched by errors caused by documents that don't have the expected
	// structure.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrIncompatibleShape is matched by errors caused by decoding a document into a shape that
	// can't represent it.
	ErrIncompatibleShape = errors.New("incompatible shape")

	// ErrNoConverterAvailable is matched by errors caused by nested content that no shape or
	// model is known for.
	ErrNoConverterAvailable = errors.New("no converter available")

	// ErrConfigurationGuard is matched by errors caused by encoding content that requires an
	// explicit opt-in.
	ErrConfigurationGuard = errors.New("configuration guard violation")
)

// MalformedDocumentError indicates that a member of a document has the wrong kind of value.
type MalformedDocumentError struct {
	// The path to the offending member, e.g. "entities[0].links[1].href".
	Field string

	// The kind of value that was found, e.g. "array".
	Found string

	// A description of what was expected, e.g. "object".
	Expected string

	// The underlying parser error, if any.
	Cause error
}

func (err *MalformedDocumentError) Error() string {
	if err.Cause != nil {
		return fmt.Sprintf("malformed document: %v must be %v, found %v: %v", describeField(err.Field), err.Expected, err.Found, err.Cause)
	}
	return fmt.Sprintf("malformed document: %v must be %v, found %v", describeField(err.Field), err.Expected, err.Found)
}

func (err *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

func (err *MalformedDocumentError) Unwrap() error {
	return err.Cause
}

// IncompatibleShapeError indicates that a document can't be decoded using the requested shape.
type IncompatibleShapeError struct {
	// The path to the offending entity. Empty for the root entity.
	Field string

	Shape  ShapeKind
	Reason string
}

func (err *IncompatibleShapeError) Error() string {
	if err.Field == "" {
		return fmt.Sprintf("incompatible shape: cannot decode document as %v: %v", err.Shape, err.Reason)
	}
	return fmt.Sprintf("incompatible shape: cannot decode %v as %v: %v", err.Field, err.Shape, err.Reason)
}

func (err *IncompatibleShapeError) Is(target error) bool {
	return target == ErrIncompatibleShape
}

// NoConverterError indicates that no shape or model is known for some content.
type NoConverterError struct {
	// The path to the offending entity or resource.
	Field string

	// The classes of the offending entity, if known.
	Classes []string

	Reason string
}

func (err *NoConverterError) Error() string {
	if len(err.Classes) > 0 {
		return fmt.Sprintf("no converter available for %v (class %v): %v", describeField(err.Field), err.Classes, err.Reason)
	}
	return fmt.Sprintf("no converter available for %v: %v", describeField(err.Field), err.Reason)
}

func (err *NoConverterError) Is(target error) bool {
	return target == ErrNoConverterAvailable
}

// GuardViolationError indicates that a resource uses a content type that must be explicitly
// allowed.
type GuardViolationError struct {
	// The path to the offending resource.
	Field string

	// The Go type of the content.
	ContentType string
}

func (err *GuardViolationError) Error() string {
	return fmt.Sprintf("configuration guard violation: %v has custom content type %v, which can only be encoded if custom content is allowed", describeField(err.Field), err.ContentType)
}

func (err *GuardViolationError) Is(target error) bool {
	return target == ErrConfigurationGuard
}

func describeField(field string) string {
	if field == "" {
		return "the root entity"
	}
	return field
}

func memberPath(path, member string) string {
	if path == "" {
		return member
	}
	return path + "." + member
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%v[%d]", path, i)
}
