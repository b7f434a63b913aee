package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		page         string
		pageSize     string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", page: "", pageSize: "", wantPage: 1, wantPageSize: 20},
		{name: "explicit values", page: "3", pageSize: "50", wantPage: 3, wantPageSize: 50},
		{name: "non-numeric falls back", page: "abc", pageSize: "xyz", wantPage: 1, wantPageSize: 20},
		{name: "zero values clamp to one", page: "0", pageSize: "0", wantPage: 1, wantPageSize: 1},
		{name: "negative page size clamps to one", page: "-2", pageSize: "-5", wantPage: 1, wantPageSize: 1},
		{name: "page size capped at max", page: "1", pageSize: "500", wantPage: 1, wantPageSize: 100},
		{name: "no upper bound on page", page: "9999", pageSize: "20", wantPage: 9999, wantPageSize: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestParamsWindow(t *testing.T) {
	p := Params{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())

	first := Params{Page: 1, PageSize: 7}
	assert.Equal(t, 0, first.Offset())
	assert.Equal(t, 7, first.Limit())
}
