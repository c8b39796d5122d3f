package persistence

import (
	"strings"

	"github.com/storekit/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies search, ordering and pagination to the query
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	query = applySearch(query, filter, searchColumns...)

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query
}

// applySearch applies the search term across the given columns
func applySearch(query *gorm.DB, filter shared.Filter, searchColumns ...string) *gorm.DB {
	if filter.Search == "" || len(searchColumns) == 0 {
		return query
	}

	pattern := "%" + filter.Search + "%"
	clause := make([]string, 0, len(searchColumns))
	args := make([]any, 0, len(searchColumns))
	for _, column := range searchColumns {
		clause = append(clause, column+" ILIKE ?")
		args = append(args, pattern)
	}
	return query.Where(strings.Join(clause, " OR "), args...)
}
