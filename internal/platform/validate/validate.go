// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator for request body fields.
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers
// or storage. The API contract reports every missing-field failure with the
// same copy ("Invalid request! Missing information!") regardless of which
// field was absent, so the Validator tracks failures without per-field
// messages and collapses them into the single contractual error.
package validate

import (
	"strings"

	"github.com/taibuivan/paperboy/internal/platform/dberr"
	"github.com/taibuivan/paperboy/pkg/pointer"
)

// Validator collects missing-field failures via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	missing []string
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.missing = append(v.missing, field)
	}
	return v
}

// RequiredPtr fails if the pointer is nil or points at a blank string.
func (v *Validator) RequiredPtr(field string, value *string) *Validator {
	return v.Required(field, pointer.Val(value))
}

// HasErrors reports whether any required field was missing so far.
func (v *Validator) HasErrors() bool {
	return len(v.missing) > 0
}

// Missing returns the names of the fields that failed, in check order.
func (v *Validator) Missing() []string {
	return v.missing
}

// Err returns the contractual missing-input error if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.missing) == 0 {
		return nil
	}
	return dberr.ErrMissingInput
}
