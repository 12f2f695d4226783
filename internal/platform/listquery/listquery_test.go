// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listquery_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/paperboy/internal/platform/apperr"
	"github.com/taibuivan/paperboy/internal/platform/listquery"
)

var articleRules = listquery.Rules{
	Sortable:    []string{"author", "title", "article_id", "topic", "created_at", "votes", "comment_count"},
	DefaultSort: "created_at",
}

/*
TestParse_Defaults verifies the fallbacks applied when no parameters are sent.
*/
func TestParse_Defaults(t *testing.T) {
	opts, err := listquery.Parse(url.Values{}, articleRules)
	require.NoError(t, err)

	assert.Equal(t, "created_at", opts.SortBy)
	assert.Equal(t, listquery.OrderDesc, opts.Order)
	assert.Equal(t, listquery.DefaultLimit, opts.Limit)
	assert.Equal(t, listquery.DefaultPage, opts.Page)
	assert.Equal(t, 0, opts.Offset())
}

/*
TestParse_Valid covers accepted combinations of sort, order, and pagination.
*/
func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		sortBy string
		order  listquery.Order
		limit  int
		page   int
	}{
		{"sort_by_votes", "sort_by=votes", "votes", listquery.OrderDesc, 10, 1},
		{"sort_by_comment_count", "sort_by=comment_count", "comment_count", listquery.OrderDesc, 10, 1},
		{"order_asc", "order=asc", "created_at", listquery.OrderAsc, 10, 1},
		{"order_uppercase", "order=ASC", "created_at", listquery.OrderAsc, 10, 1},
		{"limit_and_page", "limit=5&p=2", "created_at", listquery.OrderDesc, 5, 2},
		{"combined", "sort_by=title&order=asc&limit=3&p=4", "title", listquery.OrderAsc, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			opts, err := listquery.Parse(values, articleRules)
			require.NoError(t, err)

			assert.Equal(t, tt.sortBy, opts.SortBy)
			assert.Equal(t, tt.order, opts.Order)
			assert.Equal(t, tt.limit, opts.Limit)
			assert.Equal(t, tt.page, opts.Page)
		})
	}
}

/*
TestParse_Invalid asserts the exact client-facing copy for rejected parameters.
*/
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"unknown_sort_column", "sort_by=banana", "banana is not a valid sort_by value"},
		{"injection_attempt", "sort_by=votes%3Bdrop+table", "votes;drop table is not a valid sort_by value"},
		{"unknown_order", "order=sideways", "sideways is not a valid order value"},
		{"non_numeric_limit", "limit=ten", "Bad request!"},
		{"non_numeric_page", "p=two", "Bad request!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = listquery.Parse(values, articleRules)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 400, ae.HTTPStatus)
			assert.Equal(t, tt.message, ae.Message)
		})
	}
}

/*
TestParse_NoSortableColumns verifies that endpoints without a sort whitelist
ignore sort_by and order entirely but still honor pagination.
*/
func TestParse_NoSortableColumns(t *testing.T) {
	values, err := url.ParseQuery("sort_by=anything&order=bogus&limit=2&p=3")
	require.NoError(t, err)

	opts, err := listquery.Parse(values, listquery.Rules{})
	require.NoError(t, err)

	assert.Empty(t, opts.SortBy)
	assert.Equal(t, listquery.OrderDesc, opts.Order)
	assert.Equal(t, 2, opts.Limit)
	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, 4, opts.Offset())
}

/*
TestOptions_Offset checks the page-to-offset arithmetic.
*/
func TestOptions_Offset(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		page   int
		offset int
	}{
		{"first_page", 10, 1, 0},
		{"second_page", 10, 2, 10},
		{"small_limit", 5, 3, 10},
		{"zero_page", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := listquery.Options{Limit: tt.limit, Page: tt.page}
			assert.Equal(t, tt.offset, opts.Offset())
		})
	}
}
