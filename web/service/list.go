// Package service implements the query and persistence layer of the portal.
// Services are constructed around an injected gorm handle so tests can run
// them against a throwaway database.
package service

import (
	"strings"

	"nouasseur-portal/web/entity"

	"gorm.io/gorm"
)

// ListQuery carries the pagination and filter inputs of a collection listing.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
	Category string
}

// normalized applies the page floor and the per-collection page size default.
// Invalid numeric inputs fall back to defaults rather than failing.
func (q ListQuery) normalized(defaultPageSize int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	return q
}

func (q ListQuery) offset() int {
	return (q.Page - 1) * q.PageSize
}

// paginate runs the count query and the page slice query against the scope
// produced by newScope, returning rows plus total-count metadata. A page past
// the end yields an empty row set with correct totals, not an error. The two
// queries are not one snapshot; totals can drift under concurrent writes.
func paginate[T any](q ListQuery, newScope func() *gorm.DB, order string) ([]T, *entity.Pagination, error) {
	var totalCount int64
	if err := newScope().Count(&totalCount).Error; err != nil {
		return nil, nil, err
	}

	var rows []T
	err := newScope().
		Order(order).
		Limit(q.PageSize).
		Offset(q.offset()).
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((totalCount + int64(q.PageSize) - 1) / int64(q.PageSize))
	return rows, &entity.Pagination{
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// applySearch adds a case-insensitive substring match OR-combined across the
// whitelisted text columns.
func applySearch(tx *gorm.DB, term string, columns []string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" {
		return tx
	}
	pattern := "%" + strings.ToLower(term) + "%"
	clauses := make([]string, 0, len(columns))
	vars := make([]any, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, "lower("+col+") LIKE ?")
		vars = append(vars, pattern)
	}
	return tx.Where(strings.Join(clauses, " OR "), vars...)
}
