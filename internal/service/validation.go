package service

import (
	"strconv"

	paginate "github.com/casao/gin-paginate"
	"github.com/casao/gin-paginate/internal/repository"
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// PageFromRange converts an inclusive "<start>-<end>" window into the
// limit/offset shape repositories understand. The middleware hands ranges
// through unvalidated, so this is where nonsense gets rejected.
func PageFromRange(r paginate.Range) (repository.Page, error) {
	var ferrs []FieldError
	start, errStart := strconv.Atoi(r.Start)
	end, errEnd := strconv.Atoi(r.End)
	switch {
	case errStart != nil || errEnd != nil:
		ferrs = append(ferrs, FieldError{Field: "range", Message: "must be <start>-<end> with numeric endpoints"})
	case start < 0:
		ferrs = append(ferrs, FieldError{Field: "range", Message: "start must be >= 0"})
	case end < start:
		ferrs = append(ferrs, FieldError{Field: "range", Message: "end must be >= start"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return repository.Page{}, err
	}
	return repository.Page{Limit: end - start + 1, Offset: start}, nil
}
