package domain

import (
	"fmt"
	"math"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest - запрос страницы. Нумерация страниц с нуля.
type PageRequest struct {
	Page int
	Size int
}

func NewPageRequest(page, size int) PageRequest {
	return PageRequest{Page: page, Size: size}
}

func (r PageRequest) Offset() int64 {
	return int64(r.Page) * int64(r.Size)
}

func (r PageRequest) Limit() int {
	return r.Size
}

func (r PageRequest) Validate() error {
	if r.Page < 0 {
		return NewBadRequestError("page must not be negative")
	}
	if r.Size < 1 || r.Size > MaxPageSize {
		return NewBadRequestError(fmt.Sprintf("size must be between 1 and %d", MaxPageSize))
	}
	// Offset() = Page*Size должен помещаться в int64
	if int64(r.Page) > math.MaxInt64/int64(r.Size) {
		return NewBadRequestError("page is too large")
	}
	return nil
}

// Page - страница результата вместе с общим количеством строк.
type Page[T any] struct {
	Content []T
	Total   int64
	Request PageRequest
}

func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	return &Page[T]{
		Content: content,
		Total:   total,
		Request: req,
	}
}

// NewPageFromCount вызывает count только тогда, когда total нельзя вычислить по самой странице:
// первая неполная страница или непустая неполная страница дальше по списку.
func NewPageFromCount[T any](content []T, req PageRequest, count func() (int64, error)) (*Page[T], error) {
	size := len(content)
	if req.Offset() == 0 {
		if req.Size > size {
			return NewPage(content, req, int64(size)), nil
		}
	} else if size != 0 && req.Size > size {
		return NewPage(content, req, req.Offset()+int64(size)), nil
	}

	total, err := count()
	if err != nil {
		return nil, err
	}
	return NewPage(content, req, total), nil
}

func (p *Page[T]) Number() int   { return p.Request.Page }
func (p *Page[T]) Size() int     { return p.Request.Size }
func (p *Page[T]) Offset() int64 { return p.Request.Offset() }
func (p *Page[T]) Limit() int    { return p.Request.Limit() }

func (p *Page[T]) TotalPages() int {
	if p.Request.Size == 0 {
		return 1
	}
	return int((p.Total + int64(p.Request.Size) - 1) / int64(p.Request.Size))
}

func (p *Page[T]) HasNext() bool {
	return p.Number()+1 < p.TotalPages()
}
