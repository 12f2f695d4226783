// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/paperboy/internal/platform/apperr"
	requestutil "github.com/taibuivan/paperboy/internal/platform/request"
)

/*
TestDecodeIncVotes asserts the exact copy for every shape a vote-adjustment
body can take.
*/
func TestDecodeIncVotes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		delta   int
		message string
	}{
		{"positive_delta", `{"inc_votes": 1}`, 1, ""},
		{"negative_delta", `{"inc_votes": -100}`, -100, ""},
		{"fractional_value", `{"inc_votes": 1.5}`, 0, "1.5(inc_votes) is an invalid type (number)"},
		{"negative_fractional", `{"inc_votes": -0.5}`, 0, "-0.5(inc_votes) is an invalid type (number)"},
		{"string_value", `{"inc_votes": "cat"}`, 0, "cat(inc_votes) is an invalid type (number)"},
		{"boolean_value", `{"inc_votes": true}`, 0, "true(inc_votes) is an invalid type (number)"},
		{"field_absent", `{}`, 0, "Invalid request! Missing information!"},
		{"null_value", `{"inc_votes": null}`, 0, "Invalid request! Missing information!"},
		{"unreadable_body", `not json`, 0, "Invalid request! Missing information!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("PATCH", "/api/articles/1", strings.NewReader(tt.body))

			delta, err := requestutil.DecodeIncVotes(r)

			if tt.message == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.delta, delta)
				return
			}

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 400, ae.HTTPStatus)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

/*
TestDecodeJSON verifies decode failures collapse to the missing-input error.
*/
func TestDecodeJSON(t *testing.T) {
	var target struct {
		Slug string `json:"slug"`
	}

	r := httptest.NewRequest("POST", "/api/topics", strings.NewReader(`{"slug":"coding"}`))
	require.NoError(t, requestutil.DecodeJSON(r, &target))
	assert.Equal(t, "coding", target.Slug)

	r = httptest.NewRequest("POST", "/api/topics", strings.NewReader(`{broken`))
	err := requestutil.DecodeJSON(r, &target)
	require.Error(t, err)
	assert.Equal(t, "Invalid request! Missing information!", err.Error())
}
