// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package listquery normalizes and validates the filter/sort/pagination
// query parameters shared by the API's list endpoints.
//
// # Overview
//
// Raw query parameters are loosely typed strings. This package turns them
// into an [Options] value that the store layer can interpolate into
// statement text safely: the sort column and direction only ever come out
// of the per-endpoint whitelist, and limit/offset only ever come out of
// integer parsing. Nothing user-controlled reaches SQL as free text.
//
// Validation short-circuits in a fixed order (sort_by, order, limit, p) so
// a request with several bad parameters reports the first one.
package listquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/paperboy/internal/platform/apperr"
)

// Order is a validated sort direction token.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Rules describes how a particular list endpoint accepts query parameters.
type Rules struct {
	// Sortable is the closed set of columns the endpoint may be ordered by.
	// An empty set means the endpoint exposes no sort parameters at all.
	Sortable []string
	// DefaultSort is the column used when sort_by is absent.
	DefaultSort string
}

// Options is the normalized outcome of parsing a list request.
//
// Every field is safe for direct interpolation into statement text: SortBy
// is drawn from [Rules.Sortable], Order from the two direction tokens, and
// Limit/Page from integer parsing.
type Options struct {
	SortBy string
	Order  Order
	Limit  int
	Page   int
}

// Offset returns the SQL OFFSET value derived from Page and Limit.
func (o Options) Offset() int {
	if o.Page <= 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// Parse validates the raw query parameters against the endpoint's rules.
//
// Absent or empty parameters fall back to defaults. A page beyond the data
// is not an error here or anywhere downstream; it simply yields an empty
// result set. Limit has no upper bound: large limits are permitted by
// design, not by accident.
func Parse(values url.Values, rules Rules) (Options, error) {
	options := Options{
		SortBy: rules.DefaultSort,
		Order:  OrderDesc,
		Limit:  DefaultLimit,
		Page:   DefaultPage,
	}

	if len(rules.Sortable) > 0 {
		if raw := values.Get("sort_by"); raw != "" {
			if !contains(rules.Sortable, raw) {
				return Options{}, apperr.BadRequest(raw + " is not a valid sort_by value")
			}
			options.SortBy = raw
		}

		if raw := values.Get("order"); raw != "" {
			switch strings.ToLower(raw) {
			case "asc":
				options.Order = OrderAsc
			case "desc":
				options.Order = OrderDesc
			default:
				return Options{}, apperr.BadRequest(raw + " is not a valid order value")
			}
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, apperr.BadRequest("Bad request!")
		}
		options.Limit = limit
	}

	if raw := values.Get("p"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, apperr.BadRequest("Bad request!")
		}
		options.Page = page
	}

	return options, nil
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
