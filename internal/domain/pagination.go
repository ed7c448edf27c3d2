package domain

// PageMeta describes the window a PaginatedResult covers
type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	HasNextPage bool `json:"has_next_page"`
}

// PaginatedResult is one page of an arbitrary list
type PaginatedResult[T any] struct {
	Meta PageMeta `json:"meta"`
	Data []T      `json:"data"`
}

// EmptyPage is the result for a window with no rows. Its meta is zeroed
// regardless of the page that was requested, and Data is empty but never nil.
func EmptyPage[T any]() *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Meta: PageMeta{},
		Data: []T{},
	}
}

// IsEmpty reports whether the page carries no rows
func (p *PaginatedResult[T]) IsEmpty() bool {
	return len(p.Data) == 0
}
