// Package fop provides filter, order and pagination support shared by the
// repositories and their stores.
package fop

import (
	"fmt"
	"strconv"
)

// DefaultPageSize is the number of records returned per page.
const DefaultPageSize = 10

// PageNumber is a 1-based page request of a fixed size.
type PageNumber struct {
	Number int
	Size   int
}

// NewPageNumber returns a page request, clamping number and size to at least 1.
func NewPageNumber(number, size int) PageNumber {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return PageNumber{Number: number, Size: size}
}

// ParsePageNumber parses the page query parameter. An empty value is the
// first page and values below 1 are clamped to 1; anything that is not an
// integer is an error.
func ParsePageNumber(page string, size int) (PageNumber, error) {
	number := 1
	if page != "" {
		var err error
		number, err = strconv.Atoi(page)
		if err != nil {
			return PageNumber{}, fmt.Errorf("page conversion: %w", err)
		}
	}

	return NewPageNumber(number, size), nil
}

// Offset is the number of rows skipped before this page.
func (p PageNumber) Offset() int {
	return (p.Number - 1) * p.Size
}

// Clamp moves the page back to the last page holding any of total rows.
func (p PageNumber) Clamp(total int) PageNumber {
	last := LastPage(total, p.Size)
	if p.Number > last {
		p.Number = last
	}
	return p
}

// LastPage is the number of the last page for total rows, never below 1.
func LastPage(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// PageInfoNumber describes one page of a page-number paginated result.
type PageInfoNumber struct {
	Total       int `json:"total"`
	PerPage     int `json:"perPage"`
	CurrentPage int `json:"currentPage"`
	LastPage    int `json:"lastPage"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NewPageInfoNumber builds page metadata for a page that returned count
// records out of total.
func NewPageInfoNumber(page PageNumber, total, count int) PageInfoNumber {
	info := PageInfoNumber{
		Total:       total,
		PerPage:     page.Size,
		CurrentPage: page.Number,
		LastPage:    LastPage(total, page.Size),
	}
	if count > 0 {
		info.From = page.Offset() + 1
		info.To = page.Offset() + count
	}
	return info
}

// HasPrev reports whether a page exists before the current one.
func (p PageInfoNumber) HasPrev() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a page exists after the current one.
func (p PageInfoNumber) HasNext() bool {
	return p.CurrentPage < p.LastPage
}
