// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/paperboy/internal/platform/apperr"
	"github.com/taibuivan/paperboy/internal/platform/validate"
	"github.com/taibuivan/paperboy/pkg/pointer"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "slug", "coding", false},
		{"empty_string", "slug", "", true},
		{"whitespace_only", "slug", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				assert.Equal(t, []string{tt.field}, v.Missing())

				err := v.Err()
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, 400, ae.HTTPStatus)
				assert.Equal(t, "Invalid request! Missing information!", ae.Message)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_RequiredPtr tests nil-pointer and blank-pointee handling.
*/
func TestValidator_RequiredPtr(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		hasError bool
	}{
		{"nil_pointer", nil, true},
		{"blank_pointee", pointer.To(""), true},
		{"valid_pointee", pointer.To("butter_bridge"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.RequiredPtr("author", tt.value)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("author", "butter_bridge").
		Required("title", "Living in the shadow of a great man").
		Required("body", "I find this existence challenging").
		Required("topic", "mitch").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests that failures accumulate in check order but
collapse to the single contractual error.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("author", "").
		Required("title", "ok").
		Required("body", "").
		Err()

	require.Error(t, err)
	assert.Equal(t, []string{"author", "body"}, v.Missing())
	assert.Equal(t, "Invalid request! Missing information!", err.Error())
}
