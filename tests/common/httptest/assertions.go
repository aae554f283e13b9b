//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// ConflictSpan is the detail.conflict object of a 409 response.
type ConflictSpan struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	ResourceID uuid.UUID `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// AssertConflictResponse checks for a 409 naming the span that blocked the request.
func AssertConflictResponse(t *testing.T, w *httptest.ResponseRecorder, wantID uuid.UUID, wantKind string) ConflictSpan {
	t.Helper()

	require.Equal(t, http.StatusConflict, w.Code, "Response: %s", w.Body.String())

	var body struct {
		Detail struct {
			Conflict ConflictSpan `json:"conflict"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode conflict response JSON: %s", w.Body.String())

	got := body.Detail.Conflict
	assert.Equal(t, wantID, got.ID, "conflicting span id")
	assert.Equal(t, wantKind, got.Kind, "conflicting span kind")
	assert.True(t, got.Start.Before(got.End), "conflicting span must be non-empty")
	return got
}
