package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduverse-api/internal/models"
	"github.com/noah-isme/eduverse-api/internal/service"
)

func newUserHandler() *UserHandler {
	return NewUserHandler(offlineDataService(), service.NewMoodService(nil, nil))
}

func TestUserHandlerListServesFallback(t *testing.T) {
	h := newUserHandler()
	r := newTestEngine()
	r.GET("/users", h.List)

	w, env := perform(t, r, http.MethodGet, "/users", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fallback", env.Meta["source"])
	var users []models.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 4)
	assert.Equal(t, models.ProvenanceSeeded, users[0].Provenance)
}

func TestUserHandlerGet(t *testing.T) {
	h := newUserHandler()
	r := newTestEngine()
	r.GET("/users/:id", h.Get)

	w, env := perform(t, r, http.MethodGet, "/users/u3", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, models.RoleTeacher, user.Role)

	w, env = perform(t, r, http.MethodGet, "/users/nobody", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestUserHandlerMoodRoundTrip(t *testing.T) {
	h := newUserHandler()
	r := newTestEngine()
	r.GET("/users/:id/mood", h.GetMood)
	r.PUT("/users/:id/mood", h.SaveMood)

	_, env := perform(t, r, http.MethodGet, "/users/u1/mood", nil, nil)
	assert.JSONEq(t, `{"mood":null}`, string(env.Data))

	w, _ := perform(t, r, http.MethodPut, "/users/u1/mood", map[string]string{"mood": "SLEEPY"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = perform(t, r, http.MethodPut, "/users/u1/mood", map[string]string{"mood": "HAPPY"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = perform(t, r, http.MethodGet, "/users/u1/mood", nil, nil)
	assert.JSONEq(t, `{"mood":"HAPPY"}`, string(env.Data))
}

func TestUserHandlerAchievements(t *testing.T) {
	h := newUserHandler()
	r := newTestEngine()
	r.GET("/achievements", h.Achievements)

	_, env := perform(t, r, http.MethodGet, "/achievements", nil, nil)

	var achievements []models.Achievement
	require.NoError(t, json.Unmarshal(env.Data, &achievements))
	assert.Len(t, achievements, 4)
}
