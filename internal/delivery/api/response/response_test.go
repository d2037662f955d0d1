package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "baxpro/internal/domain/errors"
	"baxpro/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusNotFound, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", map[string]string{"field": "bad"}))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()
	err := HandleAppError(c, errors.WithStack(domainerrors.ErrAlertNotFound))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"ALERT_NOT_FOUND"`)
	assert.NotContains(t, rec.Body.String(), `"details"`)

	c, rec = newContext()
	plain := errors.New("boom")
	err = HandleAppError(c, plain)
	require.Error(t, err)
	assert.ErrorIs(t, err, plain)
	assert.Zero(t, rec.Body.Len())
}
