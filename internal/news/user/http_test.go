// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/paperboy/internal/news/user"
	"github.com/taibuivan/paperboy/internal/platform/apperr"
)

type fakeRepository struct {
	users []*user.User
}

func (f *fakeRepository) List(_ context.Context) ([]*user.User, error) {
	return f.users, nil
}

func (f *fakeRepository) Get(_ context.Context, username string) (*user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperr.NotFound(fmt.Sprintf("%s not found!", username))
}

func newTestHandler(repo *fakeRepository) *user.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return user.NewHandler(user.NewService(repo, logger))
}

func serve(t *testing.T, h *user.Handler, target string) (int, map[string]any) {
	t.Helper()

	request := httptest.NewRequest("GET", target, nil)
	recorder := httptest.NewRecorder()

	h.Routes().ServeHTTP(recorder, request)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder.Code, decoded
}

/*
TestListUsers verifies the directory listing shape.
*/
func TestListUsers(t *testing.T) {
	repo := &fakeRepository{users: []*user.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/a.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/b.jpg"},
	}}
	h := newTestHandler(repo)

	status, body := serve(t, h, "/")

	assert.Equal(t, http.StatusOK, status)
	users := body["users"].([]any)
	require.Len(t, users, 2)
	first := users[0].(map[string]any)
	assert.Equal(t, "butter_bridge", first["username"])
	assert.Equal(t, "jonny", first["name"])
	assert.Equal(t, "https://example.com/a.jpg", first["avatar_url"])
}

/*
TestGetUser verifies the single-user fetch and the username-bearing 404 copy.
*/
func TestGetUser(t *testing.T) {
	repo := &fakeRepository{users: []*user.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/a.jpg"},
	}}
	h := newTestHandler(repo)

	status, body := serve(t, h, "/butter_bridge")
	assert.Equal(t, http.StatusOK, status)
	got := body["user"].(map[string]any)
	assert.Equal(t, "butter_bridge", got["username"])

	status, body = serve(t, h, "/ghost")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ghost not found!", body["message"])
}
