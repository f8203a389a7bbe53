package request

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestOffset(t *testing.T) {
	tests := []struct {
		name       string
		req        PaginatedRequest
		wantLimit  int
		wantOffset int
	}{
		{"first page", PaginatedRequest{Page: 1, PerPage: 10}, 10, 0},
		{"third page", PaginatedRequest{Page: 3, PerPage: 20}, 20, 40},
		{"zero values", PaginatedRequest{}, DefaultPerPage, 0},
		{"per page capped", PaginatedRequest{Page: 2, PerPage: 500}, MaxPerPage, MaxPerPage},
		{"negative page", PaginatedRequest{Page: -4, PerPage: 10}, 10, 0},
		{"huge page", PaginatedRequest{Page: math.MaxInt, PerPage: 100}, 100, (MaxPage - 1) * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLimit, tt.req.Limit())
			assert.Equal(t, tt.wantOffset, tt.req.Offset())
			assert.GreaterOrEqual(t, tt.req.Offset(), 0)
		})
	}
}
