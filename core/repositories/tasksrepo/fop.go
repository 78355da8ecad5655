package tasksrepo

import "github.com/jrazmi/taskapi/core/scaffolding/fop"

// QueryFilter holds the available fields a task query can be filtered on.
// Search is a case-sensitive substring of the title; the rest are exact.
type QueryFilter struct {
	Search   *string
	Status   *Status
	Priority *Priority
	Category *string
}

// Set of fields that tasks can be ordered by. The values are store column
// names.
const (
	OrderByID         = "id"
	OrderByTitle      = "title"
	OrderByDueDate    = "due_date"
	OrderByCreateDate = "create_date"
	OrderByPriority   = "priority"
	OrderByStatus     = "status"
	OrderByCategory   = "category"
)

// DefaultOrderBy keeps pages in insertion order.
var DefaultOrderBy = fop.NewBy(OrderByID, fop.ASC)

var orderable = map[string]bool{
	OrderByID:         true,
	OrderByTitle:      true,
	OrderByDueDate:    true,
	OrderByCreateDate: true,
	OrderByPriority:   true,
	OrderByStatus:     true,
	OrderByCategory:   true,
}

// IsOrderable reports whether field is in the sort allow-list.
func IsOrderable(field string) bool {
	return orderable[field]
}

// RankedValues returns the stored values of a field that sorts by rank
// instead of by text, lowest rank first. Priority runs low to high and
// status runs not done to done. Other text fields sort byte-wise.
func RankedValues(field string) ([]string, bool) {
	var values []string
	switch field {
	case OrderByPriority:
		for _, p := range Priorities() {
			values = append(values, p.String())
		}
	case OrderByStatus:
		for _, s := range Statuses() {
			values = append(values, s.String())
		}
	default:
		return nil, false
	}
	return values, true
}
