package domain

import (
	"math"
	"strings"
)

const (
	// Размер страницы, если клиент его не указал.
	DefaultPageSize = 10
	// MaxPageSize ограничивает размер одной страницы.
	MaxPageSize = 1000
)

// SortDirection задаёт направление сортировки.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// PageRequest описывает запрашиваемую страницу результатов.
// Пустой SortField означает порядок хранилища.
type PageRequest struct {
	Page          int
	PageSize      int
	SortDirection SortDirection
	SortField     string
}

// Normalize приводит параметры страницы к допустимым значениям.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	// Offset обязан помещаться в int.
	if maxPage := math.MaxInt / p.PageSize; p.Page > maxPage {
		p.Page = maxPage
	}
	switch SortDirection(strings.ToUpper(string(p.SortDirection))) {
	case SortDesc:
		p.SortDirection = SortDesc
	default:
		p.SortDirection = SortAsc
	}
	p.SortField = strings.TrimSpace(p.SortField)
	return p
}

// Offset возвращает смещение первой записи страницы.
func (p PageRequest) Offset() int {
	return p.Page * p.PageSize
}

// Page содержит страницу результатов поиска.
type Page[T any] struct {
	Items        []T
	Page         int
	PageSize     int
	TotalResults int
	TotalPages   int
}

// NewPage собирает страницу и считает количество страниц.
func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.PageSize > 0 {
		pages = (total + req.PageSize - 1) / req.PageSize
	}
	return Page[T]{
		Items:        items,
		Page:         req.Page,
		PageSize:     req.PageSize,
		TotalResults: total,
		TotalPages:   pages,
	}
}
