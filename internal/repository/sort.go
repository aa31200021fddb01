package repository

import "strings"

// orderBy resolves a caller-supplied sort key against a per-entity allow-list
// and returns a safe ORDER BY clause. Sort keys never reach SQL directly:
// unknown keys fall back to the entity default, and direction is reduced to
// ASC/DESC regardless of input.
func orderBy(cols map[string]string, sortBy, fallback, order string) string {
	col, ok := cols[sortBy]
	if !ok {
		col = cols[fallback]
	}
	dir := "ASC"
	if strings.EqualFold(order, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}
