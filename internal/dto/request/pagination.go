package request

import "math"

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	// MaxPage keeps (page-1)*per_page inside int on every platform.
	MaxPage = math.MaxInt / MaxPerPage
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// PageNumber is Page clamped to [1, MaxPage].
func (p PaginatedRequest) PageNumber() int {
	return min(max(p.Page, 1), MaxPage)
}

func (p PaginatedRequest) Offset() int {
	return (p.PageNumber() - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	return min(p.PerPage, MaxPerPage)
}
