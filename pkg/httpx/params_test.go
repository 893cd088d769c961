package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/wheelshare/carpool-api/pkg/pagination"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "page=3&limit=50", pagination.Params{Page: 3, Limit: 50}},
		{"limit clamped to max", "page=1&limit=5000", pagination.Params{Page: 1, Limit: 100}},
		{"zero page falls back", "page=0", pagination.Params{Page: 1, Limit: 20}},
		{"negative limit falls back", "limit=-5", pagination.Params{Page: 1, Limit: 20}},
		{"garbage falls back", "page=abc&limit=xyz", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/travels?"+tt.query, nil)

			assert.Equal(t, tt.want, ParsePagination(c))
		})
	}
}
