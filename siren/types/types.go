// Package types defines the Siren wire format. Member order matches the order in which members
// are written, so documents serialize deterministically.
package types

// An entity is a URI-addressable resource that has properties and actions associated with it. It
// may contain sub-entities and navigational links.
//
// Root entities and sub-entities share this representation. Sub-entities must have a rel.
type Entity struct {
	// Describes the nature of an entity's content based on the current representation.
	Class []string `json:"class,omitempty" msgpack:"class,omitempty"`

	// Defines the relationship of the sub-entity to its parent, per Web Linking (RFC5988) and
	// Link Relations. Only present for sub-entities.
	Rel []string `json:"rel,omitempty" msgpack:"rel,omitempty"`

	// A set of key-value pairs that describe the state of an entity. Typically this is an object,
	// but terminal values are also allowed.
	//
	// Decoded entities hold the raw JSON value here as a jsoniter.RawMessage.
	Properties any `json:"properties,omitempty" msgpack:"properties,omitempty"`

	// A collection of related sub-entities.
	Entities []Entity `json:"entities,omitempty" msgpack:"entities,omitempty"`

	// A collection of items that describe navigational links, distinct from entity
	// relationships.
	Links []Link `json:"links,omitempty" msgpack:"links,omitempty"`

	// A collection of action objects that show available behaviors an entity exposes.
	Actions []Action `json:"actions,omitempty" msgpack:"actions,omitempty"`

	// Descriptive text about the entity.
	Title string `json:"title,omitempty" msgpack:"title,omitempty"`
}

// Links represent navigational transitions.
type Link struct {
	// Defines the relationship of the link to its entity, per Web Linking (RFC5988) and Link
	// Relations. Required.
	Rel []string `json:"rel" msgpack:"rel"`

	// Describes aspects of the link based on the current representation.
	Class []string `json:"class,omitempty" msgpack:"class,omitempty"`

	// The URI of the linked resource. Required.
	Href string `json:"href" msgpack:"href"`

	// Text describing the nature of a link.
	Title string `json:"title,omitempty" msgpack:"title,omitempty"`

	// Defines media type of the linked resource, per Web Linking (RFC5988).
	Type string `json:"type,omitempty" msgpack:"type,omitempty"`
}

// Actions show available behaviors an entity exposes.
type Action struct {
	// A string that identifies the action to be performed. Action names must be unique within the
	// set of actions for an entity. Required.
	Name string `json:"name" msgpack:"name"`

	// Describes the nature of an action based on the current representation.
	Class []string `json:"class,omitempty" msgpack:"class,omitempty"`

	// An enumerated attribute mapping to a protocol method. For HTTP, these values may be GET,
	// PUT, POST, DELETE, or PATCH. If omitted, GET is assumed.
	Method string `json:"method,omitempty" msgpack:"method,omitempty"`

	// The URI of the action. Required.
	Href string `json:"href" msgpack:"href"`

	// Descriptive text about the action.
	Title string `json:"title,omitempty" msgpack:"title,omitempty"`

	// The encoding type for the request. When omitted and the fields attribute exists, the default
	// value is application/x-www-form-urlencoded.
	Type string `json:"type,omitempty" msgpack:"type,omitempty"`

	// A collection of fields.
	Fields []Field `json:"fields,omitempty" msgpack:"fields,omitempty"`
}

// Fields represent controls inside of actions.
type Field struct {
	// A name describing the control. Field names must be unique within the set of fields for an
	// action. Required.
	Name string `json:"name" msgpack:"name"`

	// Describes aspects of the field based on the current representation.
	Class []string `json:"class,omitempty" msgpack:"class,omitempty"`

	// The input type of the field. This may include any of the input types specified in HTML5.
	// When missing, the default value is text.
	Type string `json:"type,omitempty" msgpack:"type,omitempty"`

	// A value assigned to the field.
	Value any `json:"value,omitempty" msgpack:"value,omitempty"`

	// Textual annotation of a field. Clients may use this as a label.
	Title string `json:"title,omitempty" msgpack:"title,omitempty"`
}
