package dto_test

import (
	"mallbook/shared/constant"
	"mallbook/shared/dto"
	"mallbook/shared/model"
	"mallbook/shared/timezone"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	is := assert.New(t)
	is.NoError(timezone.SetLocation("Asia/Jakarta"))

	source := model.Metadata{
		CreatedAt:  time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC),
		ModifiedAt: time.Date(2025, 3, 2, 1, 0, 0, 0, time.UTC),
		CreatedBy:  "admin-1",
		ModifiedBy: "manager-7",
	}

	var metadata dto.Metadata
	metadata.FromModel(source)

	is.Equal("2025-03-01T08:00:00+07:00", metadata.CreatedAt)
	is.Equal("2025-03-02T08:00:00+07:00", metadata.ModifiedAt)
	is.Equal("admin-1", metadata.CreatedBy)
	is.Equal("manager-7", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=booking_date&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "booking_date", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults when empty",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "no defaults when disabled",
		},
		{
			name:         "malformed numbers fall back",
			query:        "page=two&limit=-5",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "zero page falls back",
			query:        "page=0",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_by=name&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 4}.Offset())
}

func TestQueryParams_Sanitize(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:     "allowed column is qualified",
			params:   dto.QueryParams{SortBy: "booking_date", SortDir: dto.SortDirAsc},
			expected: dto.QueryParams{SortBy: "bookings.booking_date", SortDir: dto.SortDirAsc},
		},
		{
			name:     "unknown column falls back",
			params:   dto.QueryParams{SortBy: "password; drop table"},
			expected: dto.QueryParams{SortBy: "bookings.created_at", SortDir: constant.DefaultValueSortDir},
		},
		{
			name:     "already qualified",
			params:   dto.QueryParams{SortBy: "bookings.status", SortDir: dto.SortDirDesc},
			expected: dto.QueryParams{SortBy: "bookings.status", SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.Sanitize("bookings", "booking_date", "status")

			assert.Equal(t, tt.expected, params)
		})
	}
}
