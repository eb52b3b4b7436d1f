package utils

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"ai_tool_directory/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("load: %w", models.ErrProfileNotFound), models.CodeNoUserProfile},
		{fmt.Errorf("x: %w", models.ErrToolNotFound), models.CodeToolNotFound},
		{models.ErrInvalidRating, models.CodeInvalidParams},
		{models.ErrInvalidBehavior, models.CodeInvalidParams},
		{sql.ErrNoRows, models.CodeNoRecommendData},
		{errors.New("boom"), models.CodeRecommendGenError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.err, models.CodeRecommendGenError), tt.err.Error())
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleServiceError(rec, fmt.Errorf("load profile: %w", models.ErrProfileNotFound), models.CodeServerError)

	resp := decodeResponse(t, rec)
	assert.Equal(t, models.CodeNoUserProfile, resp.Code)
	assert.Equal(t, models.CodeMessages[models.CodeNoUserProfile], resp.Message)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestDecodeJSONBody(t *testing.T) {
	var req models.RatingRequest
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"tool_id":"notion","rating":4}`))
	assert.True(t, DecodeJSONBody(rec, r, &req))
	assert.Equal(t, 4, req.Rating)

	rec = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"tool_id":"notion","rating":7}`))
	assert.False(t, DecodeJSONBody(rec, r, &models.RatingRequest{}))
	resp := decodeResponse(t, rec)
	assert.Equal(t, models.CodeInvalidParams, resp.Code)
	assert.Equal(t, "rating must be at most 5", resp.Message)

	rec = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"tool_id":"notion","rating":4,"extra":1}`))
	assert.False(t, DecodeJSONBody(rec, r, &models.RatingRequest{}))
	assert.Equal(t, models.CodeInvalidParams, decodeResponse(t, rec).Code)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"coding", "customer-support"},
		NormalizeTags([]string{" Coding", "coding", "Customer  Support", ""}))
	assert.Equal(t, []string{"a", "b"}, DeduplicateSlice([]string{"a", " a ", "b", ""}))
}
