// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/paperboy/internal/platform/dberr"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: dberr.ErrMissingInput if decoding fails, otherwise nil

An unreadable body and a body with absent required fields produce the same
client-facing copy, so decode failures reuse the missing-input error.
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return dberr.ErrMissingInput
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
NumericID retrieves a named URL parameter and validates that it is a decimal
integer.

Returns:
  - int: the parsed id
  - string: the raw parameter value, for error context
  - error: dberr.InvalidNumber with the contractual copy when non-numeric
*/
func NumericID(request *http.Request, name string) (int, string, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, raw, dberr.InvalidNumber(name, raw)
	}
	return id, raw, nil
}

/*
DecodeIncVotes reads a vote-adjustment body ({"inc_votes": n}) and returns
the delta.

The field is decoded loosely on purpose: a wrong-typed value must surface as
the contractual invalid-type error, not as a generic decode failure.

Returns:
  - int: the vote delta
  - error: dberr.ErrMissingInput when the field is absent or the body is
    unreadable; dberr.InvalidIncVotes when the value is not an integer
    (wrong type or fractional)
*/
func DecodeIncVotes(request *http.Request) (int, error) {
	var body struct {
		IncVotes any `json:"inc_votes"`
	}
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		return 0, dberr.ErrMissingInput
	}

	switch value := body.IncVotes.(type) {
	case nil:
		return 0, dberr.ErrMissingInput
	case float64:
		// JSON numbers decode as float64. A fractional delta must be
		// rejected, not truncated: votes move by exactly what was sent.
		if value != math.Trunc(value) {
			return 0, dberr.InvalidIncVotes(strconv.FormatFloat(value, 'f', -1, 64))
		}
		return int(value), nil
	case string:
		return 0, dberr.InvalidIncVotes(value)
	default:
		return 0, dberr.InvalidIncVotes(fmt.Sprintf("%v", value))
	}
}
