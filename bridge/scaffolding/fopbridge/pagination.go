// Package fopbridge provides support for query paging with unified response types.
package fopbridge

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/jrazmi/taskapi/core/scaffolding/fop"
)

// PageParam is the query parameter carrying the page number.
const PageParam = "page"

// PaginatedResponse is a page of records with its metadata.
type PaginatedResponse[T any] struct {
	Records  []T      `json:"records"`
	PageInfo PageInfo `json:"pageInfo"`
}

// PageInfo is the page metadata plus navigation links.
type PageInfo struct {
	fop.PageInfoNumber
	Links Links `json:"links"`
}

// Links point at neighbouring pages. Prev and Next are null at the ends.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Encode implements the encoder interface for the paginated response
func (p PaginatedResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(p)
	return data, "application/json; charset=utf-8", err
}

// NewPaginatedResponse builds the response for one page. Links are built
// from u, keeping every query parameter except the page number.
func NewPaginatedResponse[T any](u *url.URL, records []T, info fop.PageInfoNumber) PaginatedResponse[T] {
	if records == nil {
		records = []T{}
	}

	links := Links{
		First: pageLink(u, 1),
		Last:  pageLink(u, info.LastPage),
	}
	if info.HasPrev() {
		prev := pageLink(u, info.CurrentPage-1)
		links.Prev = &prev
	}
	if info.HasNext() {
		next := pageLink(u, info.CurrentPage+1)
		links.Next = &next
	}

	return PaginatedResponse[T]{
		Records: records,
		PageInfo: PageInfo{
			PageInfoNumber: info,
			Links:          links,
		},
	}
}

func pageLink(u *url.URL, page int) string {
	q := u.Query()
	q.Set(PageParam, strconv.Itoa(page))

	link := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return link.String()
}
