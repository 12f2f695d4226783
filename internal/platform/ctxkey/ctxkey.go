// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the private key types used to store request-scoped
// values in [context.Context].
//
// Keys are an unexported type so no other package can collide with them;
// access goes through the helpers in ctxutil.
package ctxkey

type contextKey string

const (
	// KeyRequestID stores the per-request correlation ID.
	KeyRequestID contextKey = "request_id"

	// KeyLogger stores the request-scoped *slog.Logger.
	KeyLogger contextKey = "logger"
)
