package echoServer

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/tajmin/level2-assingment3/util/apperr"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/missing-book", func(c echo.Context) error {
		return apperr.NotFound("Book not found")
	})
	e.GET("/invalid", func(c echo.Context) error {
		return apperr.Validation([]map[string]string{{"field": "isbn", "message": "ISBN must be at least 10 characters"}})
	})
	return e
}

func do(t *testing.T, e *echo.Echo, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandler_AppError(t *testing.T) {
	code, body := do(t, newTestServer(), "/missing-book")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Book not found", body["message"])
	require.Equal(t, map[string]any{}, body["error"])
}

func TestErrorHandler_ValidationDetail(t *testing.T) {
	code, body := do(t, newTestServer(), "/invalid")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Validation failed", body["message"])
	require.NotEmpty(t, body["error"])
}

func TestErrorHandler_UnmatchedRoute(t *testing.T) {
	code, body := do(t, newTestServer(), "/no/such/route")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Bad request: route Not found", body["message"])
}
