// Package pagination splits collections into pages and builds the navigation links of paged
// resources.
package pagination

import (
	"github.com/ccbrown/siren-fu/hypermedia"
)

// Request describes a requested page. Page numbers are zero-based.
type Request struct {
	Size   int64
	Number int64
}

// Normalized returns a copy of the request with its size clamped to [1, maxSize] and a
// non-negative page number. If the size isn't positive, defaultSize is used.
func (r Request) Normalized(defaultSize, maxSize int64) Request {
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if maxSize > 0 && r.Size > maxSize {
		r.Size = maxSize
	}
	if r.Size <= 0 {
		r.Size = 1
	}
	if r.Number < 0 {
		r.Number = 0
	}
	return r
}

// PageInfo represents the information for the current page of results.
type PageInfo struct {
	HasPreviousPage bool
	HasNextPage     bool
}

// Info returns the page info for the given page.
func Info(page *hypermedia.PageMetadata) PageInfo {
	return PageInfo{
		HasPreviousPage: page.Number > 0 && page.TotalPages > 0,
		HasNextPage:     page.Number+1 < page.TotalPages,
	}
}

// ItemsToReturn returns the items that belong on the requested page along with the page's
// metadata. The request should be normalized. Requests beyond the last page yield no items.
func ItemsToReturn[T any](items []T, req Request) ([]T, *hypermedia.PageMetadata) {
	total := int64(len(items))
	page := hypermedia.NewPageMetadata(req.Size, req.Number, total)

	if req.Size <= 0 || req.Number < 0 || total == 0 || req.Number > (total-1)/req.Size {
		return nil, page
	}
	start := req.Size * req.Number
	end := total
	if req.Size < total-start {
		end = start + req.Size
	}
	return items[start:end], page
}

// HrefFunc returns the href of the page with the given number.
type HrefFunc func(number int64) string

// Links returns navigation links for a page: "self", then "first", "prev", "next", and "last"
// where they make sense.
func Links(page *hypermedia.PageMetadata, href HrefFunc) []hypermedia.Link {
	info := Info(page)
	ret := []hypermedia.Link{hypermedia.NewLink(href(page.Number), "self")}
	if info.HasPreviousPage {
		prev := page.Number - 1
		if prev > page.TotalPages-1 {
			prev = page.TotalPages - 1
		}
		ret = append(ret,
			hypermedia.NewLink(href(0), "first"),
			hypermedia.NewLink(href(prev), "prev"),
		)
	}
	if info.HasNextPage {
		ret = append(ret,
			hypermedia.NewLink(href(page.Number+1), "next"),
			hypermedia.NewLink(href(page.TotalPages-1), "last"),
		)
	}
	return ret
}

// NewResource creates a paged resource holding the requested page of items. Each item on the page
// is converted to a resource using f.
func NewResource[T any](items []T, req Request, href HrefFunc, f func(T) *hypermedia.Resource) *hypermedia.Resource {
	pageItems, page := ItemsToReturn(items, req)
	children := make([]*hypermedia.Resource, len(pageItems))
	for i, item := range pageItems {
		children[i] = f(item)
	}
	return hypermedia.NewPage(children, page, Links(page, href)...)
}
