package hypermedia

// Content is the payload of a resource. It is one of Scalar, Object, Single, or List.
//
// Applications may define their own content types by embedding Single or List, but encoders are
// free to reject them since any additional fields can't be represented.
type Content interface {
	isContent()
}

// Scalar content is a terminal value such as a string or number. Any JSON-serializable value is
// allowed.
type Scalar struct {
	Value any
}

func (Scalar) isContent() {}

// Object content is represented by named properties.
type Object struct {
	Model Model
}

func (Object) isContent() {}

// SingleContent is implemented by Single and any types that embed it.
type SingleContent interface {
	Content
	Child() *Resource
}

// Single content wraps exactly one nested resource.
type Single struct {
	Resource *Resource
}

func (Single) isContent() {}

// Child returns the wrapped resource.
func (c Single) Child() *Resource {
	return c.Resource
}

// ListContent is implemented by List and any types that embed it.
type ListContent interface {
	Content
	Children() []*Resource
}

// List content wraps an ordered list of nested resources.
type List struct {
	Resources []*Resource
}

func (List) isContent() {}

// Children returns the wrapped resources.
func (c List) Children() []*Resource {
	return c.Resources
}

// NewScalar creates a resource with scalar content.
func NewScalar(value any, links ...Link) *Resource {
	return &Resource{
		Content: Scalar{Value: value},
		Links:   links,
	}
}

// NewObject creates a resource whose content is represented by the model's properties.
func NewObject(model Model, links ...Link) *Resource {
	return &Resource{
		Content: Object{Model: model},
		Links:   links,
	}
}

// NewSingle creates a resource wrapping another resource.
func NewSingle(child *Resource, links ...Link) *Resource {
	return &Resource{
		Content: Single{Resource: child},
		Links:   links,
	}
}

// NewList creates a collection resource.
func NewList(children []*Resource, links ...Link) *Resource {
	return &Resource{
		Content: List{Resources: children},
		Links:   links,
	}
}

// NewPage creates a paged collection resource.
func NewPage(children []*Resource, page *PageMetadata, links ...Link) *Resource {
	return &Resource{
		Content: List{Resources: children},
		Page:    page,
		Links:   links,
	}
}
