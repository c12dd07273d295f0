package handler

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalItems int64, page, limit int) PaginatedResponse[T] {
	if limit <= 0 {
		limit = 1
	}
	totalPages := int(totalItems / int64(limit))
	if totalItems%int64(limit) != 0 {
		totalPages++
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}

// Paginate slices one page out of items. Pages past the end are empty.
func Paginate[T any](items []T, page, limit int) PaginatedResponse[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	// Compare page counts before multiplying so huge pages cannot overflow.
	start := len(items)
	if page-1 <= len(items)/limit {
		start = min((page-1)*limit, len(items))
	}
	end := len(items)
	if limit < end-start {
		end = start + limit
	}

	data := make([]T, end-start)
	copy(data, items[start:end])
	return NewPaginatedResponse(data, int64(len(items)), page, limit)
}
