package requests

type PaginationQuery struct {
	Page     int `json:"page" validate:"gte=1"`
	PageSize int `json:"page_size" validate:"gte=1,lte=50"`
}

func (q *PaginationQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
