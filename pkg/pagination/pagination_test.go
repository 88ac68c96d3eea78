package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsParams(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", 0, 0, 1, 15},
		{"negative page", -3, 10, 1, 10},
		{"per page capped", 2, 500, 2, 100},
		{"valid untouched", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := &PaginationParams{Page: tt.page, PerPage: tt.perPage}
			params.Validate()
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPerPage, params.PerPage)
		})
	}
}

func TestOffset(t *testing.T) {
	params := &PaginationParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(4, 10, 35)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}
