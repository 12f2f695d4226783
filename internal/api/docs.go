// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package api — self-documentation endpoint.
package api

import (
	"net/http"

	"github.com/taibuivan/paperboy/internal/platform/constants"
	"github.com/taibuivan/paperboy/internal/platform/respond"
)

// EndpointDoc describes one endpoint of the API surface for GET /api.
type EndpointDoc struct {
	Description     string   `json:"description"`
	Queries         []string `json:"queries,omitempty"`
	ExampleRequest  any      `json:"exampleRequest,omitempty"`
	ExampleResponse any      `json:"exampleResponse,omitempty"`
}

// endpoints is the static description of every route the API serves.
// It is maintained by hand alongside the route registrations.
var endpoints = map[string]EndpointDoc{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
		ExampleResponse: map[string]any{
			"topics": []map[string]string{{"slug": "football", "description": "Footie!"}},
		},
	},
	"POST /api/topics": {
		Description:    "adds a new topic and serves it back",
		ExampleRequest: map[string]string{"slug": "gardening", "description": "growing things"},
		ExampleResponse: map[string]any{
			"topic": map[string]string{"slug": "gardening", "description": "growing things"},
		},
	},
	"GET /api/articles": {
		Description: "serves an array of all articles with their comment counts, plus the total count before pagination",
		Queries:     []string{"topic", "sort_by", "order", "limit", "p"},
		ExampleResponse: map[string]any{
			"articles": []map[string]any{{
				"author":          "weegembump",
				"title":           "Seafood substitutions are increasing",
				"article_id":      33,
				"topic":           "cooking",
				"created_at":      "2020-11-07T06:03:00.000Z",
				"votes":           0,
				"article_img_url": "https://images.pexels.com/photos/301599/pexels-photo-301599.jpeg?w=700&h=700",
				"comment_count":   6,
			}},
			"total_count": 37,
		},
	},
	"GET /api/articles/{article_id}": {
		Description: "serves a single article by id, comment count included",
	},
	"POST /api/articles": {
		Description:    "adds a new article and serves it back",
		ExampleRequest: map[string]string{"author": "butter_bridge", "title": "New horizons", "body": "Text...", "topic": "paper"},
	},
	"PATCH /api/articles/{article_id}": {
		Description:    "adjusts an article's votes by inc_votes and serves the updated article",
		ExampleRequest: map[string]int{"inc_votes": 1},
	},
	"DELETE /api/articles/{article_id}": {
		Description: "deletes an article and its comments, responds with no content",
	},
	"GET /api/articles/{article_id}/comments": {
		Description: "serves an array of comments for an article, newest first",
		Queries:     []string{"limit", "p"},
	},
	"POST /api/articles/{article_id}/comments": {
		Description:    "adds a comment to an article and serves it back",
		ExampleRequest: map[string]string{"username": "butter_bridge", "body": "Great read."},
	},
	"PATCH /api/comments/{comment_id}": {
		Description:    "adjusts a comment's votes by inc_votes and serves the updated comment",
		ExampleRequest: map[string]int{"inc_votes": -1},
	},
	"DELETE /api/comments/{comment_id}": {
		Description: "deletes a comment, responds with no content",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/{username}": {
		Description: "serves a single user by username",
	},
}

// NewDocsHandler returns the GET /api handler.
func NewDocsHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, respond.Envelope{constants.FieldEndpoints: endpoints})
	}
}
