package fop

import (
	"errors"
	"fmt"
	"strings"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

var directions = map[string]string{
	"ASC":  ASC,
	"DESC": DESC,
}

// ErrUnknownOrderField is returned for sort fields outside the allow-list.
var ErrUnknownOrderField = errors.New("unknown order field")

// By represents a field used to order by and direction.
type By struct {
	Field     string
	Direction string
}

// NewBy constructs a new By value with no checks.
func NewBy(field string, direction string) By {
	return By{
		Field:     field,
		Direction: direction,
	}
}

// ParseOrder parses an order string of the form "field" or
// "field,direction". fieldMappings is the allow-list: it maps the names
// clients may send to the store field names. An empty string yields
// defaultOrder.
func ParseOrder(fieldMappings map[string]string, orderBy string, defaultOrder By) (By, error) {
	if orderBy == "" {
		return defaultOrder, nil
	}

	orderParts := strings.Split(orderBy, ",")
	if len(orderParts) > 2 {
		return By{}, fmt.Errorf("invalid order %q: expected field or field,direction", orderBy)
	}

	fieldName := strings.TrimSpace(orderParts[0])
	orgFieldName, exists := fieldMappings[fieldName]
	if !exists {
		return By{}, fmt.Errorf("%w: %q", ErrUnknownOrderField, fieldName)
	}

	by := NewBy(orgFieldName, ASC)
	if len(orderParts) == 2 {
		dir, exists := directions[strings.ToUpper(strings.TrimSpace(orderParts[1]))]
		if !exists {
			return By{}, fmt.Errorf("unknown direction: %q", orderParts[1])
		}
		by.Direction = dir
	}

	return by, nil
}
