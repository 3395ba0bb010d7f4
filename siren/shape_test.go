package siren

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren/types"
)

func TestInferShape(t *testing.T) {
	for name, tc := range map[string]struct {
		Entity   *types.Entity
		Expected ShapeKind
	}{
		"Empty": {
			Entity:   &types.Entity{},
			Expected: PlainShape,
		},
		"Object": {
			Entity:   &types.Entity{Properties: jsoniter.RawMessage(`{"name": "Dave"}`)},
			Expected: PlainShape,
		},
		"String": {
			Entity:   &types.Entity{Properties: jsoniter.RawMessage(`"Something"`)},
			Expected: ScalarShape,
		},
		"Array": {
			Entity:   &types.Entity{Properties: []int{1, 2}},
			Expected: ScalarShape,
		},
		"Collection": {
			Entity:   &types.Entity{Entities: []types.Entity{{}}},
			Expected: CollectionShape,
		},
		"CollectionWithProperties": {
			Entity: &types.Entity{
				Properties: jsoniter.RawMessage(`{"size": 10, "number": 0}`),
				Entities:   []types.Entity{{}},
			},
			Expected: CollectionShape,
		},
		"Paged": {
			Entity: &types.Entity{
				Properties: jsoniter.RawMessage(`{"size": 10, "totalElements": 11, "totalPages": 2, "number": 0}`),
				Entities:   []types.Entity{{}},
			},
			Expected: PagedShape,
		},
		"PagedMetadata": {
			Entity: &types.Entity{
				Properties: hypermedia.NewPageMetadata(10, 0, 11),
				Entities:   []types.Entity{{}},
			},
			Expected: PagedShape,
		},
	} {
		t.Run(name, func(t *testing.T) {
			shape := InferShape(tc.Entity)
			assert.Equal(t, tc.Expected, shape.Kind)
			assert.Nil(t, shape.NewModel)
			assert.Nil(t, shape.Elem)
		})
	}
}

func TestShapeConstructors(t *testing.T) {
	shape := PagedOf(EntityOf(CollectionOf(Scalar())))
	assert.Equal(t, PagedShape, shape.Kind)
	require.NotNil(t, shape.Elem)
	assert.Equal(t, EntityShape, shape.Elem.Kind)
	require.NotNil(t, shape.Elem.Elem)
	assert.Equal(t, CollectionShape, shape.Elem.Elem.Kind)
	require.NotNil(t, shape.Elem.Elem.Elem)
	assert.Equal(t, ScalarShape, shape.Elem.Elem.Elem.Kind)
	assert.Nil(t, shape.Elem.Elem.Elem.Elem)
}
