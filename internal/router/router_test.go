package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/fallback"
	"github.com/noah-isme/eduverse-api/internal/handler"
	"github.com/noah-isme/eduverse-api/internal/service"
	"github.com/noah-isme/eduverse-api/pkg/config"
)

func buildEngine(env string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	now := func() time.Time { return time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC) }
	metrics := service.NewMetricsService()
	data := service.NewDataService(service.DataServiceParams{Fallback: fallback.New(now()), Metrics: metrics, Clock: now})
	coach := service.NewCoachService(service.CoachServiceParams{Metrics: metrics, Clock: now})
	exports := service.NewExportService(service.ExportServiceParams{Data: data, Clock: now})

	return New(Options{Env: env, APIPrefix: "/api/v1", Metrics: metrics}, Handlers{
		Users:         handler.NewUserHandler(data, service.NewMoodService(nil, nil)),
		Tasks:         handler.NewTaskHandler(data),
		Habits:        handler.NewHabitHandler(data),
		Timetable:     handler.NewTimetableHandler(data),
		Export:        handler.NewExportHandler(exports),
		Messages:      handler.NewMessageHandler(data),
		Announcements: handler.NewAnnouncementHandler(data),
		Coach:         handler.NewCoachHandler(coach, data, nil),
		Metrics:       handler.NewMetricsHandler(metrics, nil, coach),
	})
}

func TestRouterServesPortalWithoutBackends(t *testing.T) {
	r := buildEngine(config.EnvDevelopment)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/tasks", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "fallback", w.Header().Get("X-Data-Source"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterCoachDegradesWithoutKey(t *testing.T) {
	r := buildEngine(config.EnvDevelopment)

	body, _ := json.Marshal(map[string]string{"concept": "Osmosis", "subject": "Biology"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/coach/explain", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), service.ExplainNotConfigured)
}

func TestRouterGatesTeacherRoutes(t *testing.T) {
	r := buildEngine(config.EnvDevelopment)

	body, _ := json.Marshal(map[string]string{"title": "Trip", "content": "Museum visit"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/announcements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u2")
	req.Header.Set("X-User-Role", "PARENT")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterHidesDocsInProduction(t *testing.T) {
	w := httptest.NewRecorder()
	buildEngine(config.EnvProduction).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	buildEngine(config.EnvDevelopment).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
