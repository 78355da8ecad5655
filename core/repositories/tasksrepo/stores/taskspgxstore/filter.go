package taskspgxstore

import (
	"bytes"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/core/scaffolding/fop"
	"github.com/jrazmi/taskapi/infrastructure/postgresdb"
)

func applyFilter(filter tasksrepo.QueryFilter, data pgx.NamedArgs, buf *bytes.Buffer) {
	var wc []string

	if filter.Search != nil {
		data["search"] = postgresdb.ContainsPattern(*filter.Search)
		wc = append(wc, `title LIKE @search ESCAPE '\'`)
	}

	if filter.Status != nil {
		data["status"] = filter.Status.String()
		wc = append(wc, "status = @status")
	}

	if filter.Priority != nil {
		data["priority"] = filter.Priority.String()
		wc = append(wc, "priority = @priority")
	}

	if filter.Category != nil {
		data["category"] = *filter.Category
		wc = append(wc, "category = @category")
	}

	postgresdb.AddWhereClause(buf, wc)
}

// applyOrder writes the ORDER BY clause. Enum columns sort by rank and text
// columns by byte value so results match the other stores.
func applyOrder(orderBy fop.By, buf *bytes.Buffer) error {
	var term string
	var err error

	if values, ok := tasksrepo.RankedValues(orderBy.Field); ok {
		term, err = postgresdb.RankTerm(orderBy.Field, values)
	} else {
		switch orderBy.Field {
		case tasksrepo.OrderByTitle, tasksrepo.OrderByCategory:
			term, err = postgresdb.BytewiseTerm(orderBy.Field)
		default:
			return postgresdb.AddOrderByClause(buf, orderBy.Field, tasksrepo.OrderByID, orderBy.Direction)
		}
	}
	if err != nil {
		return fmt.Errorf("order term: %w", err)
	}

	return postgresdb.AddOrderByTermClause(buf, term, tasksrepo.OrderByID, orderBy.Direction)
}

// applyUpdate writes the SET list for the fields present in ut. It reports
// false when there is nothing to set.
func applyUpdate(ut tasksrepo.UpdateTask, data pgx.NamedArgs, buf *bytes.Buffer) bool {
	var sets []string

	if ut.Title != nil {
		data["title"] = *ut.Title
		sets = append(sets, "title = @title")
	}

	if ut.Description != nil {
		data["description"] = *ut.Description
		sets = append(sets, "description = NULLIF(@description, '')")
	}

	if ut.DueDate != nil {
		data["due_date"] = *ut.DueDate
		sets = append(sets, "due_date = @due_date")
	}

	if ut.Priority != nil {
		data["priority"] = ut.Priority.String()
		sets = append(sets, "priority = @priority")
	}

	if ut.Category != nil {
		data["category"] = *ut.Category
		sets = append(sets, "category = @category")
	}

	if ut.Status != nil {
		data["status"] = ut.Status.String()
		sets = append(sets, "status = @status")
	}

	if len(sets) == 0 {
		return false
	}

	buf.WriteString(" SET ")
	for i, s := range sets {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s)
	}
	return true
}
