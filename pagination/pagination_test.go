package pagination

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccbrown/siren-fu/hypermedia"
)

func TestRequest_Normalized(t *testing.T) {
	for name, tc := range map[string]struct {
		Request  Request
		Expected Request
	}{
		"Valid":       {Request{Size: 5, Number: 2}, Request{Size: 5, Number: 2}},
		"DefaultSize": {Request{Size: 0, Number: 1}, Request{Size: 20, Number: 1}},
		"MaxSize":     {Request{Size: 500, Number: 0}, Request{Size: 100, Number: 0}},
		"NegativePage": {
			Request:  Request{Size: -1, Number: -3},
			Expected: Request{Size: 20, Number: 0},
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.Request.Normalized(20, 100))
		})
	}

	assert.Equal(t, Request{Size: 1}, Request{}.Normalized(0, 0))
}

func TestItemsToReturn(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	for name, tc := range map[string]struct {
		Request  Request
		Items    []int
		Metadata hypermedia.PageMetadata
		Info     PageInfo
	}{
		"First": {
			Request:  Request{Size: 3, Number: 0},
			Items:    []int{0, 1, 2},
			Metadata: hypermedia.PageMetadata{Size: 3, Number: 0, TotalElements: 7, TotalPages: 3},
			Info:     PageInfo{HasNextPage: true},
		},
		"Middle": {
			Request:  Request{Size: 3, Number: 1},
			Items:    []int{3, 4, 5},
			Metadata: hypermedia.PageMetadata{Size: 3, Number: 1, TotalElements: 7, TotalPages: 3},
			Info:     PageInfo{HasPreviousPage: true, HasNextPage: true},
		},
		"Last": {
			Request:  Request{Size: 3, Number: 2},
			Items:    []int{6},
			Metadata: hypermedia.PageMetadata{Size: 3, Number: 2, TotalElements: 7, TotalPages: 3},
			Info:     PageInfo{HasPreviousPage: true},
		},
		"BeyondLast": {
			Request:  Request{Size: 3, Number: 5},
			Items:    nil,
			Metadata: hypermedia.PageMetadata{Size: 3, Number: 5, TotalElements: 7, TotalPages: 3},
			Info:     PageInfo{HasPreviousPage: true},
		},
		"FarBeyondLast": {
			Request:  Request{Size: 100, Number: math.MaxInt64 / 50},
			Items:    nil,
			Metadata: hypermedia.PageMetadata{Size: 100, Number: math.MaxInt64 / 50, TotalElements: 7, TotalPages: 1},
			Info:     PageInfo{HasPreviousPage: true},
		},
		"HugeSize": {
			Request:  Request{Size: math.MaxInt64, Number: 1},
			Items:    nil,
			Metadata: hypermedia.PageMetadata{Size: math.MaxInt64, Number: 1, TotalElements: 7, TotalPages: 1},
			Info:     PageInfo{HasPreviousPage: true},
		},
		"HugeSizeFirst": {
			Request:  Request{Size: math.MaxInt64, Number: 0},
			Items:    items,
			Metadata: hypermedia.PageMetadata{Size: math.MaxInt64, Number: 0, TotalElements: 7, TotalPages: 1},
		},
		"Everything": {
			Request:  Request{Size: 10, Number: 0},
			Items:    items,
			Metadata: hypermedia.PageMetadata{Size: 10, Number: 0, TotalElements: 7, TotalPages: 1},
		},
	} {
		t.Run(name, func(t *testing.T) {
			page, metadata := ItemsToReturn(items, tc.Request)
			assert.Equal(t, tc.Items, page)
			assert.Equal(t, tc.Metadata, *metadata)
			assert.Equal(t, tc.Info, Info(metadata))
		})
	}

	page, metadata := ItemsToReturn([]string(nil), Request{Size: 10})
	assert.Empty(t, page)
	assert.Equal(t, int64(0), metadata.TotalPages)
	assert.Equal(t, PageInfo{}, Info(metadata))
}

func href(number int64) string {
	return fmt.Sprintf("/people?page=%d", number)
}

func TestLinks(t *testing.T) {
	for name, tc := range map[string]struct {
		Page     *hypermedia.PageMetadata
		Expected []hypermedia.Link
	}{
		"Middle": {
			Page: hypermedia.NewPageMetadata(2, 1, 7),
			Expected: []hypermedia.Link{
				hypermedia.NewLink("/people?page=1", "self"),
				hypermedia.NewLink("/people?page=0", "first"),
				hypermedia.NewLink("/people?page=0", "prev"),
				hypermedia.NewLink("/people?page=2", "next"),
				hypermedia.NewLink("/people?page=3", "last"),
			},
		},
		"OnlyPage": {
			Page: hypermedia.NewPageMetadata(10, 0, 7),
			Expected: []hypermedia.Link{
				hypermedia.NewLink("/people?page=0", "self"),
			},
		},
		"BeyondLast": {
			Page: hypermedia.NewPageMetadata(3, 5, 7),
			Expected: []hypermedia.Link{
				hypermedia.NewLink("/people?page=5", "self"),
				hypermedia.NewLink("/people?page=0", "first"),
				hypermedia.NewLink("/people?page=2", "prev"),
			},
		},
		"EmptyCollection": {
			Page: hypermedia.NewPageMetadata(3, 2, 0),
			Expected: []hypermedia.Link{
				hypermedia.NewLink("/people?page=2", "self"),
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, Links(tc.Page, href))
		})
	}
}

func TestNewResource(t *testing.T) {
	resource := NewResource([]string{"a", "b", "c"}, Request{Size: 2, Number: 1}, href, func(s string) *hypermedia.Resource {
		return hypermedia.NewScalar(s)
	})
	assert.Equal(t, hypermedia.NewPage(
		[]*hypermedia.Resource{hypermedia.NewScalar("c")},
		&hypermedia.PageMetadata{Size: 2, Number: 1, TotalElements: 3, TotalPages: 2},
		hypermedia.NewLink("/people?page=1", "self"),
		hypermedia.NewLink("/people?page=0", "first"),
		hypermedia.NewLink("/people?page=0", "prev"),
	), resource)
}
