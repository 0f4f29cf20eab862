package dtos

type PaginatedDTO[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func NewPaginatedDTO[T any](total int64, items []T) PaginatedDTO[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return PaginatedDTO[T]{
		Total: total,
		Items: items,
	}
}
