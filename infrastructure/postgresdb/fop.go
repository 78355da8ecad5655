package postgresdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// AddWhereClause appends the conditions joined with AND. Nothing is written
// when conds is empty.
func AddWhereClause(buf *bytes.Buffer, conds []string) {
	if len(conds) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(conds, " AND "))
}

// AddOrderByClause adds an ORDER BY clause to the query buffer. The primary
// key is appended as a tie breaker so paging is deterministic.
func AddOrderByClause(buf *bytes.Buffer, orderField, pkField, direction string) error {
	quotedOrderField, err := QuoteIdentifier(orderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	if orderField == pkField {
		pkField = ""
	}
	return AddOrderByTermClause(buf, quotedOrderField, pkField, direction)
}

// AddOrderByTermClause is AddOrderByClause for a term that is already safe
// SQL, such as one built by RankTerm or BytewiseTerm. An empty pkField
// skips the tie breaker.
func AddOrderByTermClause(buf *bytes.Buffer, term, pkField, direction string) error {
	switch direction {
	case ASC, DESC:
	default:
		return fmt.Errorf("invalid order direction: %q", direction)
	}

	fmt.Fprintf(buf, " ORDER BY %s %s", term, direction)

	if pkField != "" {
		quotedPKField, err := QuoteIdentifier(pkField)
		if err != nil {
			return fmt.Errorf("invalid pk field name: %w", err)
		}
		fmt.Fprintf(buf, ", %s %s", quotedPKField, direction)
	}

	return nil
}

// RankTerm orders column by the position of its value in values, starting
// at 1. Values not listed sort first.
//
//	RankTerm("priority", []string{"low", "high"})
//	// CASE "priority" WHEN 'low' THEN 1 WHEN 'high' THEN 2 ELSE 0 END
func RankTerm(column string, values []string) (string, error) {
	quoted, err := QuoteIdentifier(column)
	if err != nil {
		return "", fmt.Errorf("invalid rank column: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CASE %s", quoted)
	for i, v := range values {
		fmt.Fprintf(&b, " WHEN %s THEN %d", QuoteLiteral(v), i+1)
	}
	b.WriteString(" ELSE 0 END")

	return b.String(), nil
}

// BytewiseTerm orders a text column by byte value whatever the database
// collation is.
func BytewiseTerm(column string) (string, error) {
	quoted, err := QuoteIdentifier(column)
	if err != nil {
		return "", fmt.Errorf("invalid order column: %w", err)
	}
	return quoted + ` COLLATE "C"`, nil
}

// AddLimitClause adds LIMIT clause to the query buffer
func AddLimitClause(limit int, data pgx.NamedArgs, buf *bytes.Buffer) {
	buf.WriteString(" LIMIT @limit")
	data["limit"] = limit
}

// AddOffsetClause adds OFFSET clause to the query buffer
func AddOffsetClause(offset int, data pgx.NamedArgs, buf *bytes.Buffer) {
	buf.WriteString(" OFFSET @offset")
	data["offset"] = offset
}
