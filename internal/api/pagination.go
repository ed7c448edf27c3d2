package api

import (
	"net/http"
	"strings"

	"github.com/spf13/cast"
	"github.com/voteagora/agora-cli/internal/domain"
)

const maxPageSize = 100

type listQuery struct {
	Filter   domain.ProposalSet
	Search   string
	Page     int
	PageSize int // 0 leaves the configured default
}

func parseListQuery(r *http.Request) (listQuery, error) {
	qs := r.URL.Query()

	set, ok := domain.ParseProposalSet(qs.Get("filter"))
	if !ok {
		return listQuery{}, errInvalidFilter
	}

	page := 1
	if v := qs.Get("page"); v != "" {
		n, err := cast.ToIntE(v)
		if err != nil || n < 1 {
			return listQuery{}, errInvalidPage
		}
		page = n
	}

	var pageSize int
	if v := qs.Get("page_size"); v != "" {
		n, err := cast.ToIntE(v)
		if err != nil || n < 1 {
			return listQuery{}, errInvalidPageSize
		}
		pageSize = min(n, maxPageSize)
	}

	return listQuery{
		Filter:   set,
		Search:   strings.TrimSpace(qs.Get("q")),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

var (
	errInvalidFilter   = &parseError{msg: "invalid filter, must be 'relevant' or 'everything'"}
	errInvalidPage     = &parseError{msg: "invalid page"}
	errInvalidPageSize = &parseError{msg: "invalid page_size"}
)

type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }
