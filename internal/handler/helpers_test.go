package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/middleware"
	"github.com/noah-isme/eduverse-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testClock() time.Time {
	return time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)
}

// offlineDataService has no remote store, so every read is served from the fallback dataset.
func offlineDataService() *service.DataService {
	return service.NewDataService(service.DataServiceParams{
		Fallback: fallback.New(testClock()),
		Clock:    testClock,
	})
}

func newTestEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.WithResponseMeta(), middleware.ActingUser())
	return r
}

type envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta map[string]interface{} `json:"meta"`
}

func perform(t *testing.T, r http.Handler, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func teacherHeaders() map[string]string {
	return map[string]string{middleware.HeaderUserID: "u3", middleware.HeaderUserRole: "TEACHER"}
}

func studentHeaders() map[string]string {
	return map[string]string{middleware.HeaderUserID: "u1", middleware.HeaderUserRole: "STUDENT"}
}
