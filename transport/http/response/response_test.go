package response_test

import (
	"errors"
	"fmt"
	"mallbook/shared/failure"
	"mallbook/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "classified failure keeps its message",
			err:      failure.Conflict("slot already booked"),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"slot already booked"}`,
		},
		{
			name:     "wrapped failure keeps its code",
			err:      fmt.Errorf("create booking: %w", failure.NotFound("service not found")),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"create booking: service not found"}`,
		},
		{
			name:     "unclassified error is masked",
			err:      errors.New("pq: relation \"bookings\" does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithJSONAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]any{"id": "b-1", "status": "pending"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"b-1","status":"pending"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
