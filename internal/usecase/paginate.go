package usecase

import (
	"context"
	"fmt"

	"github.com/voteagora/agora-cli/internal/domain"
)

// FetchWindow returns up to limit rows starting at offset
type FetchWindow[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// Paginate returns the given 1-based page. It asks fetch for one row more
// than the page size to learn whether a further page exists.
func Paginate[T any](ctx context.Context, fetch FetchWindow[T], page, pageSize int) (*domain.PaginatedResult[T], error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("%w: page %d, page size %d", domain.ErrInvalidPagination, page, pageSize)
	}
	return PaginateEx(ctx, fetch, pageSize, (page-1)*pageSize)
}

// PaginateEx returns the window of limit rows starting at offset.
// A window with no rows yields domain.EmptyPage.
func PaginateEx[T any](ctx context.Context, fetch FetchWindow[T], limit, offset int) (*domain.PaginatedResult[T], error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf("%w: limit %d, offset %d", domain.ErrInvalidPagination, limit, offset)
	}

	rows, err := fetch(ctx, offset, limit+1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return domain.EmptyPage[T](), nil
	}

	hasNext := len(rows) > limit
	if hasNext {
		rows = rows[:limit]
	}

	return &domain.PaginatedResult[T]{
		Meta: domain.PageMeta{
			CurrentPage: offset/limit + 1,
			PageSize:    limit,
			HasNextPage: hasNext,
		},
		Data: rows,
	}, nil
}

// SliceWindow adapts an in-memory list to a FetchWindow
func SliceWindow[T any](items []T) FetchWindow[T] {
	return func(_ context.Context, offset, limit int) ([]T, error) {
		if offset >= len(items) {
			return nil, nil
		}
		end := min(offset+limit, len(items))
		return items[offset:end], nil
	}
}
