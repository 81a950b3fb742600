package respond

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/catalogue-browser/internal/logging"
)

func TestJSON(t *testing.T) {
	testCases := []struct {
		name           string
		value          any
		expectedStatus int
		expectedLog    string
	}{
		{
			name:           "Encodes value",
			value:          map[string]int{"total": 3},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Logs values that cannot be encoded",
			value:          map[string]float64{"ratio": math.Inf(1)},
			expectedStatus: http.StatusOK,
			expectedLog:    `"msg":"encode_response_failed"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var buf bytes.Buffer
			ctx := logging.IntoContext(context.Background(), logging.NewWithWriter(&buf, "info"))
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
			rec := httptest.NewRecorder()

			// Act
			JSON(rec, req, tc.expectedStatus, tc.value)

			// Assert
			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tc.expectedLog == "" {
				assert.Empty(t, buf.String())
				assert.JSONEq(t, `{"total":3}`, rec.Body.String())
				return
			}
			assert.Contains(t, buf.String(), tc.expectedLog)
		})
	}
}

func TestError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Error(rec, req, http.StatusBadRequest, "unknown sort field")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "unknown sort field", resp.Error)
}

func TestPathParam(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		expected string
	}{
		{name: "Plain title", target: "/state/categories/Drinks", expected: "Drinks"},
		{name: "Escaped space and ampersand", target: "/state/categories/Home%20%26%20Garden", expected: "Home & Garden"},
		{name: "Escaped percent stays literal", target: "/state/categories/%2541", expected: "%41"},
		{name: "Escaped space only", target: "/state/categories/Home%20Garden", expected: "Home Garden"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var got string
			r := chi.NewRouter()
			r.Post("/state/categories/{title}", func(w http.ResponseWriter, r *http.Request) {
				got = PathParam(r, "title")
			})
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)

			// Act
			r.ServeHTTP(httptest.NewRecorder(), req)

			// Assert
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestPathParamFromSetPathValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/state/categories/x", nil)
	req.SetPathValue("title", "Fruits")

	assert.Equal(t, "Fruits", PathParam(req, "title"))
}
