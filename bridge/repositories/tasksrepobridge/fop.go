package tasksrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/infrastructure/web"
)

// QueryParams are the raw list parameters.
type QueryParams struct {
	Page     string
	Sort     string
	Search   string
	Status   string
	Priority string
	Category string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Page:     q.Get("page"),
		Sort:     q.Get("sort"),
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Category: q.Get("category"),
	}
}

// FILTER
func parseFilter(qp QueryParams) (tasksrepo.QueryFilter, error) {
	filter := tasksrepo.QueryFilter{}

	if qp.Search != "" {
		filter.Search = &qp.Search
	}
	if qp.Category != "" {
		filter.Category = &qp.Category
	}

	if qp.Status != "" {
		status, err := tasksrepo.ParseStatus(qp.Status)
		if err != nil {
			return filter, fmt.Errorf("invalid status filter: %w", err)
		}
		filter.Status = &status
	}

	if qp.Priority != "" {
		priority, err := tasksrepo.ParsePriority(qp.Priority)
		if err != nil {
			return filter, fmt.Errorf("invalid priority filter: %w", err)
		}
		filter.Priority = &priority
	}

	return filter, nil
}

// PAGE
func parsePage(qp QueryParams) (fop.PageNumber, error) {
	page, err := fop.ParsePageNumber(qp.Page, fop.DefaultPageSize)
	if err != nil {
		return fop.PageNumber{}, fmt.Errorf("invalid page %q: must be a number", qp.Page)
	}
	return page, nil
}

// PATH
type queryPath struct {
	TaskID int
}

// parsePath reads the task id. An id that is not a number cannot exist.
func parsePath(r *http.Request) (queryPath, error) {
	raw := web.Param(r, "task_id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		return queryPath{}, fmt.Errorf("task %q not found", raw)
	}

	return queryPath{TaskID: id}, nil
}

// ORDER
var orderByFields = map[string]string{
	"id":          tasksrepo.OrderByID,
	"title":       tasksrepo.OrderByTitle,
	"due_date":    tasksrepo.OrderByDueDate,
	"create_date": tasksrepo.OrderByCreateDate,
	"priority":    tasksrepo.OrderByPriority,
	"status":      tasksrepo.OrderByStatus,
	"category":    tasksrepo.OrderByCategory,
}

func parseOrderBy(qp QueryParams) (fop.By, error) {
	orderBy, err := fop.ParseOrder(orderByFields, qp.Sort, tasksrepo.DefaultOrderBy)
	if err != nil {
		return fop.By{}, fmt.Errorf("invalid sort: %w", err)
	}
	return orderBy, nil
}
