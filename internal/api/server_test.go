// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/paperboy/internal/api"
	"github.com/taibuivan/paperboy/internal/news/article"
	"github.com/taibuivan/paperboy/internal/news/comment"
	"github.com/taibuivan/paperboy/internal/news/topic"
	"github.com/taibuivan/paperboy/internal/news/user"
	"github.com/taibuivan/paperboy/internal/platform/apperr"
	"github.com/taibuivan/paperboy/internal/platform/config"
	"github.com/taibuivan/paperboy/internal/platform/listquery"
)

// # Stub Stores
// The routing tests only need the router to reach a handler; every store is
// an empty success.

type stubTopicRepo struct{}

func (stubTopicRepo) List(context.Context) ([]*topic.Topic, error) { return []*topic.Topic{}, nil }
func (stubTopicRepo) Get(_ context.Context, slug string) (*topic.Topic, error) {
	return nil, apperr.NotFound("Topic not found")
}
func (stubTopicRepo) Create(context.Context, *topic.Topic) error { return nil }

type stubUserRepo struct{}

func (stubUserRepo) List(context.Context) ([]*user.User, error) { return []*user.User{}, nil }
func (stubUserRepo) Get(_ context.Context, username string) (*user.User, error) {
	return nil, apperr.NotFound(username + " not found!")
}

type stubCommentRepo struct{}

func (stubCommentRepo) ListByArticle(context.Context, int, int, int) ([]*comment.Comment, error) {
	return []*comment.Comment{}, nil
}
func (stubCommentRepo) Insert(context.Context, *comment.Comment) error { return nil }
func (stubCommentRepo) UpdateVotes(context.Context, int, int) (*comment.Comment, error) {
	return nil, apperr.NotFound("Comment not found!")
}
func (stubCommentRepo) Delete(context.Context, int) error {
	return apperr.NotFound("Comment not found!")
}

type stubArticleRepo struct{}

func (stubArticleRepo) List(context.Context, article.Filter, listquery.Options) ([]*article.Article, int, error) {
	return []*article.Article{}, 0, nil
}
func (stubArticleRepo) Get(context.Context, int) (*article.Article, error) {
	return nil, apperr.NotFound("Article not found")
}
func (stubArticleRepo) Create(context.Context, *article.NewArticle) (int, error) { return 1, nil }
func (stubArticleRepo) UpdateVotes(context.Context, int, int) (*article.Article, error) {
	return nil, apperr.NotFound("Article not found")
}
func (stubArticleRepo) Delete(context.Context, int) error { return nil }

func newTestServer(t *testing.T, checkDatabase func() error) *api.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "8080", Environment: "development"}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: checkDatabase,
	}, logger)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Docs:      api.NewDocsHandler(),
		Topic:     topic.NewHandler(topic.NewService(stubTopicRepo{}, logger)),
		Article:   article.NewHandler(article.NewService(stubArticleRepo{}, stubCommentRepo{}, stubTopicRepo{}, logger)),
		Comment:   comment.NewHandler(comment.NewService(stubCommentRepo{}, logger)),
		User:      user.NewHandler(user.NewService(stubUserRepo{}, logger)),
	}

	return api.NewServer(cfg, logger, handlers)
}

func get(t *testing.T, server *api.Server, target string) (int, map[string]any) {
	t.Helper()

	request := httptest.NewRequest("GET", target, nil)
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, request)

	decoded := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder.Code, decoded
}

/*
TestServer_Routes verifies each resource group is mounted under /api.
*/
func TestServer_Routes(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		name   string
		target string
		key    string
	}{
		{"topics", "/api/topics", "topics"},
		{"articles", "/api/articles", "articles"},
		{"users", "/api/users", "users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, server, tt.target)
			assert.Equal(t, http.StatusOK, status)
			assert.Contains(t, body, tt.key)
		})
	}
}

/*
TestServer_NotFound verifies unknown paths return the JSON 404 payload rather
than the router's plain-text default.
*/
func TestServer_NotFound(t *testing.T) {
	server := newTestServer(t, nil)

	for _, target := range []string{"/nope", "/api/nope", "/api/topics/nested/nope"} {
		status, body := get(t, server, target)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Path not found", body["message"])
	}
}

/*
TestServer_Docs verifies GET /api describes the full endpoint surface.
*/
func TestServer_Docs(t *testing.T) {
	server := newTestServer(t, nil)

	status, body := get(t, server, "/api")
	assert.Equal(t, http.StatusOK, status)

	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, endpoints, "GET /api/articles")
	assert.Contains(t, endpoints, "PATCH /api/comments/{comment_id}")
	assert.Contains(t, endpoints, "GET /api/users/{username}")
}

/*
TestHealthEndpoints verifies the probes: /health is unconditional, /ready
reflects the database check.
*/
func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t, func() error { return nil })

	status, body := get(t, server, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = get(t, server, "/ready")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	degraded := newTestServer(t, func() error { return errors.New("connection refused") })
	status, body = get(t, degraded, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "degraded", body["status"])
}
