package mapper

import "portal-service/internal/pkg/dto/responses"

// NewPagination computes page metadata for a bundle's total. An empty
// result set still reports a single page.
func NewPagination(total, page, pageSize int) *responses.Pagination {
	totalPages := 1
	if total > 0 && pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return &responses.Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
