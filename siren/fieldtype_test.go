package siren

import (
	"io/fs"
	"mime/multipart"
	"net/url"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ccbrown/siren-fu/hypermedia"
)

type emailAddress string

type stringer interface {
	String() string
}

func TestFieldTypeMapper(t *testing.T) {
	for name, tc := range map[string]struct {
		Overrides []FieldTypeMapping
		Type      reflect.Type
		Expected  string
	}{
		"String": {
			Type:     hypermedia.TypeOf[string](),
			Expected: "text",
		},
		"StringOverride": {
			Overrides: []FieldTypeMapping{MapTypeOf[string]("checkbox")},
			Type:      hypermedia.TypeOf[string](),
			Expected:  "checkbox",
		},
		"Int": {
			Type:     hypermedia.TypeOf[int](),
			Expected: "number",
		},
		"IntPointer": {
			Type:     hypermedia.TypeOf[*int](),
			Expected: "number",
		},
		"Float": {
			Type:     hypermedia.TypeOf[float32](),
			Expected: "number",
		},
		"Uint8": {
			Type:     hypermedia.TypeOf[uint8](),
			Expected: "number",
		},
		"NumberOverride": {
			Overrides: []FieldTypeMapping{MapKinds("range", reflect.Int)},
			Type:      hypermedia.TypeOf[int](),
			Expected:  "range",
		},
		"Date": {
			Type:     hypermedia.TypeOf[hypermedia.Date](),
			Expected: "date",
		},
		"TimeOfDay": {
			Type:     hypermedia.TypeOf[hypermedia.TimeOfDay](),
			Expected: "time",
		},
		"Time": {
			Type:     hypermedia.TypeOf[time.Time](),
			Expected: "datetime-local",
		},
		"TimePointer": {
			Type:     hypermedia.TypeOf[*time.Time](),
			Expected: "datetime-local",
		},
		"YearMonth": {
			Type:     hypermedia.TypeOf[hypermedia.YearMonth](),
			Expected: "month",
		},
		"File": {
			Type:     hypermedia.TypeOf[*os.File](),
			Expected: "file",
		},
		"FSFile": {
			Type:     hypermedia.TypeOf[fs.File](),
			Expected: "file",
		},
		"MultipartFile": {
			Type:     hypermedia.TypeOf[*multipart.FileHeader](),
			Expected: "file",
		},
		"URL": {
			Type:     hypermedia.TypeOf[*url.URL](),
			Expected: "url",
		},
		"NamedString": {
			Type:     hypermedia.TypeOf[emailAddress](),
			Expected: "text",
		},
		"NamedStringOverride": {
			Overrides: []FieldTypeMapping{MapTypeOf[emailAddress]("email")},
			Type:      hypermedia.TypeOf[emailAddress](),
			Expected:  "email",
		},
		"InterfaceOverride": {
			Overrides: []FieldTypeMapping{MapTypeOf[stringer]("color")},
			Type:      hypermedia.TypeOf[hypermedia.Date](),
			Expected:  "color",
		},
		"FirstOverrideWins": {
			Overrides: []FieldTypeMapping{
				MapKinds("number", reflect.Int),
				MapTypeOf[int]("range"),
			},
			Type:     hypermedia.TypeOf[int](),
			Expected: "number",
		},
		"Bool": {
			Type:     hypermedia.TypeOf[bool](),
			Expected: "text",
		},
		"Nil": {
			Expected: "text",
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, NewFieldTypeMapper(tc.Overrides...).Map(tc.Type))
		})
	}
}

func TestFieldTypeMapperNil(t *testing.T) {
	var m *FieldTypeMapper
	assert.Equal(t, "number", m.Map(hypermedia.TypeOf[int64]()))
}

func TestMapTypeNil(t *testing.T) {
	assert.Panics(t, func() {
		MapType(nil, "text")
	})
}
