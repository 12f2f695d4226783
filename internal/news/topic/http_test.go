// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package topic_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/paperboy/internal/news/topic"
	"github.com/taibuivan/paperboy/internal/platform/apperr"
)

type fakeRepository struct {
	topics []*topic.Topic
}

func (f *fakeRepository) List(_ context.Context) ([]*topic.Topic, error) {
	return f.topics, nil
}

func (f *fakeRepository) Get(_ context.Context, slug string) (*topic.Topic, error) {
	for _, t := range f.topics {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, apperr.NotFound("Topic not found")
}

func (f *fakeRepository) Create(_ context.Context, t *topic.Topic) error {
	for _, existing := range f.topics {
		if existing.Slug == t.Slug {
			return apperr.Conflict(fmt.Sprintf("%s topic already exists!", t.Slug))
		}
	}
	f.topics = append(f.topics, t)
	return nil
}

func newTestHandler(repo *fakeRepository) *topic.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return topic.NewHandler(topic.NewService(repo, logger))
}

func serve(t *testing.T, h *topic.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()

	h.Routes().ServeHTTP(recorder, request)

	decoded := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder.Code, decoded
}

/*
TestListTopics verifies the catalogue listing shape.
*/
func TestListTopics(t *testing.T) {
	repo := &fakeRepository{topics: []*topic.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
	}}
	h := newTestHandler(repo)

	status, body := serve(t, h, "GET", "/", "")

	assert.Equal(t, http.StatusOK, status)
	topics := body["topics"].([]any)
	require.Len(t, topics, 2)
	first := topics[0].(map[string]any)
	assert.Equal(t, "mitch", first["slug"])
	assert.Equal(t, "The man, the Mitch, the legend", first["description"])
}

/*
TestCreateTopic verifies the 201 flow, duplicate rejection at 400 with the
contractual copy, and missing-field validation.
*/
func TestCreateTopic(t *testing.T) {
	repo := &fakeRepository{topics: []*topic.Topic{
		{Slug: "coding", Description: "code"},
	}}
	h := newTestHandler(repo)

	status, body := serve(t, h, "POST", "/", `{"slug":"gardening","description":"growing things"}`)
	assert.Equal(t, http.StatusCreated, status)
	got := body["topic"].(map[string]any)
	assert.Equal(t, "gardening", got["slug"])
	assert.Equal(t, "growing things", got["description"])

	// Duplicate slugs report 400, not 409.
	status, body = serve(t, h, "POST", "/", `{"slug":"coding","description":"again"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "coding topic already exists!", body["message"])

	tests := []struct {
		name    string
		payload string
	}{
		{"no_slug", `{"description":"d"}`},
		{"no_description", `{"slug":"s"}`},
		{"blank_slug", `{"slug":"  ","description":"d"}`},
		{"empty_object", `{}`},
		{"malformed_json", `{broken`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serve(t, h, "POST", "/", tt.payload)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "Invalid request! Missing information!", body["message"])
		})
	}
}
