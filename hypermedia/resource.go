// Package hypermedia defines a format-independent model of REST responses: resources with links,
// affordances, and nested content.
package hypermedia

// Method is an HTTP method that an affordance can be invoked with.
type Method string

const (
	MethodGet    Method = "GET"
	MethodHead   Method = "HEAD"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// Resource is a single node of a hypermedia resource graph.
type Resource struct {
	// The resource's navigation links, in output order. Affordances are attached to the link they
	// operate on.
	Links []Link

	// The resource's content. This determines whether the resource is represented using properties
	// or nested resources. A nil content is equivalent to Scalar{}.
	Content Content

	// Present only for paged collections.
	Page *PageMetadata

	// If given, these override the classes that would otherwise be derived for the resource.
	Classes []string

	// If given, this overrides the title that would otherwise be looked up for the resource.
	Title string

	// Actions that are not tied to any of the resource's links. Decoders put actions here unless
	// they're configured to correlate them with links.
	Actions []Affordance
}

// Affordances returns the affordances of all of the resource's links followed by its detached
// actions.
func (r *Resource) Affordances() []Affordance {
	var ret []Affordance
	for _, link := range r.Links {
		for _, affordance := range link.Affordances {
			if affordance.TargetHref == "" {
				affordance.TargetHref = link.Href
			}
			ret = append(ret, affordance)
		}
	}
	return append(ret, r.Actions...)
}

// Link returns the first link with the given relation, or nil if there is none.
func (r *Resource) Link(rel string) *Link {
	for i := range r.Links {
		if r.Links[i].Rel() == rel {
			return &r.Links[i]
		}
	}
	return nil
}

// Link is a navigation link from a resource to another.
type Link struct {
	Href string

	// The link's relations. The first is the primary relation and must be present.
	Relations []string

	Title     string
	MediaType string

	// State-changing operations that can be performed on the link's target.
	Affordances []Affordance
}

// NewLink creates a link with the given target and relations.
func NewLink(href string, rel string, additionalRels ...string) Link {
	return Link{
		Href:      href,
		Relations: append([]string{rel}, additionalRels...),
	}
}

// Rel returns the link's primary relation.
func (l Link) Rel() string {
	if len(l.Relations) == 0 {
		return ""
	}
	return l.Relations[0]
}

// WithAffordance returns a copy of the link with the given affordance added.
func (l Link) WithAffordance(affordance Affordance) Link {
	l.Affordances = append(append([]Affordance(nil), l.Affordances...), affordance)
	return l
}

// Affordance is an operation that can be performed on a link's target.
type Affordance struct {
	Name   string
	Method Method

	// If empty, the href of the link that the affordance is attached to is used.
	TargetHref string

	// The media type of the request body.
	MediaType string

	Fields []Field
}

// Field is an input parameter of an affordance.
type Field struct {
	Name string

	// The application-level type of the field's value. This is typically obtained via TypeOf.
	ValueType Type

	// If given, this is used as the field's input type instead of the one derived from ValueType.
	InputType string

	// Informational only.
	Required bool

	// An optional default value.
	Value any
}

// PageMetadata describes a page of a paged collection.
type PageMetadata struct {
	Size          int64 `json:"size" msgpack:"size"`
	TotalElements int64 `json:"totalElements" msgpack:"totalElements"`
	TotalPages    int64 `json:"totalPages" msgpack:"totalPages"`
	Number        int64 `json:"number" msgpack:"number"`
}

// NewPageMetadata creates page metadata, computing the total number of pages from the page size
// and total number of elements.
func NewPageMetadata(size, number, totalElements int64) *PageMetadata {
	ret := &PageMetadata{
		Size:          size,
		Number:        number,
		TotalElements: totalElements,
	}
	if size > 0 {
		ret.TotalPages = totalElements / size
		if totalElements%size != 0 {
			ret.TotalPages++
		}
	}
	return ret
}
