package siren

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ccbrown/siren-fu/hypermedia"
	"github.com/ccbrown/siren-fu/siren/types"
)

// NavigationConverter converts between hypermedia links and affordances and Siren links and
// actions.
type NavigationConverter struct {
	Titles     *TitleResolver
	FieldTypes *FieldTypeMapper
	Logger     logrus.FieldLogger
}

// ToWire converts links and affordances to Siren links and actions. Each link becomes exactly one
// Siren link with its primary relation. Affordances become actions, except for GET affordances,
// which are plain navigation.
func (c *NavigationConverter) ToWire(links []hypermedia.Link, affordances []hypermedia.Affordance) ([]types.Link, []types.Action) {
	var wireLinks []types.Link
	if len(links) > 0 {
		wireLinks = make([]types.Link, 0, len(links))
	}
	for _, link := range links {
		rel := link.Rel()
		title := link.Title
		if title == "" {
			title = c.Titles.LinkTitle(rel)
		}
		wireLinks = append(wireLinks, types.Link{
			Rel:   []string{rel},
			Href:  link.Href,
			Title: title,
			Type:  link.MediaType,
		})
	}

	var wireActions []types.Action
	for _, affordance := range affordances {
		if affordance.Method == "" || affordance.Method == hypermedia.MethodGet {
			if c.Logger != nil {
				c.Logger.WithField("action", affordance.Name).Debug("omitting get affordance from actions")
			}
			continue
		}
		action := types.Action{
			Name:   affordance.Name,
			Method: string(affordance.Method),
			Href:   affordance.TargetHref,
			Title:  c.Titles.ActionTitle(affordance.Name),
			Type:   affordance.MediaType,
		}
		for _, field := range affordance.Fields {
			inputType := field.InputType
			if inputType == "" {
				inputType = c.FieldTypes.Map(field.ValueType)
			}
			action.Fields = append(action.Fields, types.Field{
				Name:  field.Name,
				Type:  inputType,
				Value: field.Value,
				Title: c.Titles.FieldTitle(field.Name),
			})
		}
		wireActions = append(wireActions, action)
	}

	return wireLinks, wireActions
}

// FromWire converts Siren links and actions to links and affordances.
//
// Actions aren't correlated with links. They're returned separately, in order.
func (c *NavigationConverter) FromWire(wireLinks []types.Link, wireActions []types.Action) ([]hypermedia.Link, []hypermedia.Affordance) {
	var links []hypermedia.Link
	for _, wireLink := range wireLinks {
		link := hypermedia.Link{
			Href:      wireLink.Href,
			Title:     wireLink.Title,
			MediaType: wireLink.Type,
		}
		if len(wireLink.Rel) > 0 {
			link.Relations = []string{wireLink.Rel[0]}
		}
		links = append(links, link)
	}

	var affordances []hypermedia.Affordance
	for _, action := range wireActions {
		method := hypermedia.Method(strings.ToUpper(action.Method))
		if method == "" {
			method = hypermedia.MethodGet
		}
		affordance := hypermedia.Affordance{
			Name:       action.Name,
			Method:     method,
			TargetHref: action.Href,
			MediaType:  action.Type,
		}
		for _, field := range action.Fields {
			affordance.Fields = append(affordance.Fields, hypermedia.Field{
				Name:      field.Name,
				InputType: field.Type,
				Value:     field.Value,
			})
		}
		affordances = append(affordances, affordance)
	}

	return links, affordances
}

// attachActions moves each affordance to the first link with the same href. Affordances without
// a matching link are returned.
func attachActions(links []hypermedia.Link, affordances []hypermedia.Affordance) []hypermedia.Affordance {
	var detached []hypermedia.Affordance
	for _, affordance := range affordances {
		attached := false
		for i := range links {
			if links[i].Href == affordance.TargetHref {
				affordance.TargetHref = ""
				links[i].Affordances = append(links[i].Affordances, affordance)
				attached = true
				break
			}
		}
		if !attached {
			detached = append(detached, affordance)
		}
	}
	return detached
}
