package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"blog-api/app/config"
	"blog-api/app/di"
	"blog-api/app/utils/logger"
)

// testConfig builds a configuration backed by a temp-file SQLite
// database that is removed when the test finishes
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Port:          "8000",
		Host:          "127.0.0.1",
		LogLevel:      "error",
		DatabaseURL:   "sqlite://" + filepath.Join(t.TempDir(), "blog_test.db"),
		AutoMigrate:   true,
		EnableMetrics: true,
	}
}

// newTestRouter builds the full application through the DI container
// and returns its router
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)

	container, err := di.NewContainer(testConfig(t), log)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Close())
	})

	return container.CreateRouter()
}

// doJSON performs an in-process request against the router
func doJSON(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeObject parses a JSON object response body
func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// decodeArray parses a JSON array response body
func decodeArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
