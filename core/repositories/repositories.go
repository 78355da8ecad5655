// Package repositories holds the contracts shared by every resource
// repository and its stores.
package repositories

import (
	"context"
	"errors"

	"github.com/jrazmi/taskapi/core/scaffolding/fop"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store is the CRUD contract a resource store implements. C is the record
// handed to Create, U the partial update applied by Update and F the list
// filter.
type Store[T any, ID comparable, C any, U any, F any] interface {
	Create(ctx context.Context, payload C) (T, error)
	Get(ctx context.Context, id ID) (T, error)
	List(ctx context.Context, filter F, orderBy fop.By, page fop.PageNumber) ([]T, error)
	Count(ctx context.Context, filter F) (int, error)
	Update(ctx context.Context, id ID, updates U) error
	Delete(ctx context.Context, id ID) error
}
