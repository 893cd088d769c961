package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipTake(t *testing.T) {
	tests := []struct {
		name               string
		params             Params
		wantSkip, wantTake int
	}{
		{"first page", Params{Page: 1, Limit: 20}, 0, 20},
		{"second page", Params{Page: 2, Limit: 20}, 20, 20},
		{"deep page", Params{Page: 100, Limit: 50}, 4950, 50},
		{"limit one", Params{Page: 3, Limit: 1}, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, take := tt.params.SkipTake()
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantTake, take)
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		total     int64
		wantPages int
	}{
		{"empty result reports zero pages", Params{Page: 1, Limit: 20}, 0, 0},
		{"exact fit", Params{Page: 1, Limit: 20}, 20, 1},
		{"remainder rounds up", Params{Page: 3, Limit: 10}, 25, 3},
		{"single item", Params{Page: 1, Limit: 100}, 1, 1},
		{"one over", Params{Page: 1, Limit: 10}, 11, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.params, tt.total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.params.Page, meta.Page)
			assert.Equal(t, tt.params.Limit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"a", "b"}, Params{Page: 2, Limit: 2}, 5)

	assert.Equal(t, []string{"a", "b"}, page.Items)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, 2, page.Meta.Page)
}
