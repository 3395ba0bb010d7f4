package siren

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccbrown/siren-fu/catalog"
	"github.com/ccbrown/siren-fu/hypermedia"
)

func TestTitleResolver(t *testing.T) {
	for name, tc := range map[string]struct {
		Catalog  catalog.Map
		Expected string
	}{
		"Specific": {
			Catalog: catalog.Map{
				"_field.name.title":    "Name",
				"_field.default.title": "Field",
			},
			Expected: "Name",
		},
		"Default": {
			Catalog: catalog.Map{
				"_field.default.title": "Field",
			},
			Expected: "Field",
		},
		"None": {
			Catalog:  catalog.Map{},
			Expected: "",
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := &TitleResolver{Catalog: tc.Catalog}
			assert.Equal(t, tc.Expected, r.FieldTitle("name"))
			assert.Equal(t, tc.Expected, r.Resolve("_field.name.title", "_field.default.title"))
		})
	}
}

func TestTitleResolverCodes(t *testing.T) {
	var requested [][]string
	r := &TitleResolver{
		Catalog: catalog.Func(func(codes []string) (string, error) {
			requested = append(requested, codes)
			return "", catalog.ErrNoSuchMessage
		}),
	}

	assert.Empty(t, r.EntityTitle(personResource("1", "Dave", 42)))
	assert.Empty(t, r.EntityTitle(hypermedia.NewList(nil)))
	assert.Empty(t, r.LinkTitle("self"))
	assert.Empty(t, r.ActionTitle("update"))
	assert.Empty(t, r.FieldTitle("email"))

	assert.Equal(t, [][]string{
		{"_entity.github.com/ccbrown/siren-fu/siren.person.title", "_entity.person.title", "_entity.default.title"},
		{"_entity.Collection.title", "_entity.default.title"},
		{"_link.self.title", "_link.default.title"},
		{"_action.update.title", "_action.default.title"},
		{"_field.email.title", "_field.default.title"},
	}, requested)
}

func TestTitleResolverErrors(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	r := &TitleResolver{
		Catalog: catalog.Func(func(codes []string) (string, error) {
			return "", fmt.Errorf("the catalog is on fire")
		}),
		Logger: logger,
	}
	assert.Empty(t, r.LinkTitle("self"))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	hook.Reset()
	r.Catalog = catalog.Map{}
	assert.Empty(t, r.LinkTitle("self"))
	assert.Empty(t, hook.Entries)
}

func TestTitleResolverNil(t *testing.T) {
	var r *TitleResolver
	assert.Empty(t, r.LinkTitle("self"))
	assert.Empty(t, (&TitleResolver{}).LinkTitle("self"))
}
