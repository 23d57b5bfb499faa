// Package pagination turns page/limit query inputs and a total item count into
// navigation metadata, and wraps a page of data together with it.
// Everything here is pure; values are safe to share across goroutines.
package pagination

import (
	"fmt"
	"math/bits"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 100
)

// Params is the computed pagination descriptor.
//
//	@Description	Pagination metadata of a list response.
type Params struct {
	Page       uint64 `json:"page" example:"2"`
	Limit      uint32 `json:"limit" example:"10"`
	Offset     uint64 `json:"offset" example:"10"`
	Total      uint64 `json:"total" example:"25"`
	TotalPages uint64 `json:"total_pages" example:"3"`
	HasNext    bool   `json:"has_next" example:"true"`
	HasPrev    bool   `json:"has_prev" example:"true"`
	HasFirst   bool   `json:"has_first" example:"true"`
	HasLast    bool   `json:"has_last" example:"true"`
} //	@name	Pagination

// FromQuery is the lenient entry point: missing values take defaults and
// out-of-range values are clamped, so it never fails.
func FromQuery(page, limit *uint32, total uint64) Params {
	p := uint64(DefaultPage)
	if page != nil && *page > 0 {
		p = uint64(*page)
	}
	l := uint32(DefaultLimit)
	if limit != nil {
		l = min(max(*limit, MinLimit), MaxLimit)
	}
	// (2^32-1) * 100 fits in 64 bits.
	return build(p, l, (p-1)*uint64(l), total)
}

// Strict rejects out-of-range input instead of clamping it. Missing values
// still take defaults. A page past the last page is rejected unless the set is empty.
func Strict(page, limit *int64, total uint64) (Params, error) {
	p := int64(DefaultPage)
	if page != nil {
		if *page <= 0 {
			return Params{}, invalidPage(*page)
		}
		p = *page
	}
	l := int64(DefaultLimit)
	if limit != nil {
		if *limit < MinLimit || *limit > MaxLimit {
			return Params{}, invalidLimit(*limit)
		}
		l = *limit
	}

	offset, err := Offset(uint64(p), uint32(l))
	if err != nil {
		return Params{}, err
	}
	out := build(uint64(p), uint32(l), offset, total)
	if out.TotalPages > 0 && out.Page > out.TotalPages {
		return Params{}, invalidParams("page %d exceeds total pages %d", out.Page, out.TotalPages)
	}
	return out, nil
}

// Offset returns (page-1)*limit, or ErrOverflow when the product does not fit in 64 bits.
func Offset(page uint64, limit uint32) (uint64, error) {
	if page == 0 {
		return 0, invalidPage(0)
	}
	hi, lo := bits.Mul64(page-1, uint64(limit))
	if hi != 0 {
		return 0, &Error{Kind: KindOverflow}
	}
	return lo, nil
}

// TotalPages is ceil(total/limit), zero for an empty set. limit must be > 0.
func TotalPages(total uint64, limit uint32) uint64 {
	l := uint64(limit)
	n := total / l
	if total%l != 0 {
		n++
	}
	return n
}

func build(page uint64, limit uint32, offset, total uint64) Params {
	totalPages := TotalPages(total, limit)
	return Params{
		Page:       page,
		Limit:      limit,
		Offset:     offset,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		HasFirst:   totalPages > 0,
		HasLast:    totalPages > 0,
	}
}

func pageURL(base string, page uint64, limit uint32) string {
	return fmt.Sprintf("%s?page=%d&limit=%d", base, page, limit)
}

// NextPageURL returns "" when there is no next page. base is used as is, without escaping.
func (p Params) NextPageURL(base string) string {
	if !p.HasNext {
		return ""
	}
	return pageURL(base, p.Page+1, p.Limit)
}

func (p Params) PrevPageURL(base string) string {
	if !p.HasPrev {
		return ""
	}
	return pageURL(base, p.Page-1, p.Limit)
}

func (p Params) FirstPageURL(base string) string {
	if !p.HasFirst {
		return ""
	}
	return pageURL(base, 1, p.Limit)
}

func (p Params) LastPageURL(base string) string {
	if !p.HasLast {
		return ""
	}
	return pageURL(base, p.TotalPages, p.Limit)
}

// CurrentPageURL ignores the navigation flags.
func (p Params) CurrentPageURL(base string) string {
	return pageURL(base, p.Page, p.Limit)
}

// Links bundles the navigation URLs; absent ones are omitted from JSON.
type Links struct {
	Self  string `json:"self" example:"/items?page=2&limit=10"`
	First string `json:"first,omitempty" example:"/items?page=1&limit=10"`
	Prev  string `json:"prev,omitempty" example:"/items?page=1&limit=10"`
	Next  string `json:"next,omitempty" example:"/items?page=3&limit=10"`
	Last  string `json:"last,omitempty" example:"/items?page=3&limit=10"`
} //	@name	PaginationLinks

func (p Params) Links(base string) Links {
	return Links{
		Self:  p.CurrentPageURL(base),
		First: p.FirstPageURL(base),
		Prev:  p.PrevPageURL(base),
		Next:  p.NextPageURL(base),
		Last:  p.LastPageURL(base),
	}
}
