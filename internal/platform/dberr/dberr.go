// Copyright (c) 2026 Paperboy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dberr bridges low-level PostgreSQL failures and the domain errors
defined in [apperr].

PostgreSQL reports structural failures by SQLSTATE code, not by semantic
intent: the same code (22P02, invalid text representation) can mean "bad
article id" or "bad vote delta" depending on what was being attempted. The
caller therefore attaches a [Context] describing the attempted operation,
and [Classify] combines the code, the error detail, and that context into
exactly one stable client-facing error.

The mapping is total: anything unrecognized degrades to a 500 without
leaking database internals.
*/
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/paperboy/internal/platform/apperr"
)

// ErrMissingInput is returned for not-null violations and for request bodies
// with absent required fields. Single source for the message copy.
var ErrMissingInput = apperr.BadRequest("Invalid request! Missing information!")

// Context carries the typed, caller-supplied fields the classifier needs to
// disambiguate a raw database failure.
//
// Each field holds the raw value that was being written or filtered on, or
// "" when the call site did not involve it. Values are kept as strings so
// the original user input survives verbatim into the error copy.
type Context struct {
	// ArticleID is the raw article id path parameter.
	ArticleID string
	// CommentID is the raw comment id path parameter.
	CommentID string
	// Username is the author value of a comment being inserted.
	Username string
	// Author is the author value of an article being inserted.
	Author string
	// Topic is the topic slug of an article being inserted or filtered on.
	Topic string
	// Slug is the slug of a topic being inserted.
	Slug string
	// IncVotes is the raw vote delta from a PATCH body.
	IncVotes string
	// NotFound is the client-facing message used when the query matched no
	// rows (e.g. "Article not found"). Copy differs per call site.
	NotFound string
}

// InvalidNumber builds the 400 error for a value that failed to cast to a
// numeric id column.
func InvalidNumber(field, value string) *apperr.AppError {
	return apperr.BadRequest(fmt.Sprintf("%s is an invalid %s (number)", value, field))
}

// InvalidIncVotes builds the 400 error for a non-numeric vote delta.
func InvalidIncVotes(value string) *apperr.AppError {
	return apperr.BadRequest(fmt.Sprintf("%s(inc_votes) is an invalid type (number)", value))
}

// Classify maps a raw database failure to a domain [apperr.AppError].
//
// It is a pure function over (err, ctx): no I/O, no mutation of err. Errors
// that are already classified pass through unchanged so services can layer
// their own not-found decisions on top of store calls.
func Classify(err error, ctx Context) error {
	if err == nil {
		return nil
	}

	// Passthrough for errors classified upstream (validator, resolver).
	if apperr.IsAppError(err) {
		return err
	}

	// Zero rows is not a database failure; the call site decides the copy.
	if errors.Is(err, pgx.ErrNoRows) {
		if ctx.NotFound != "" {
			return apperr.NotFound(ctx.NotFound)
		}
		return apperr.NotFound("Resource not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return classifyUnique(pgErr, ctx)
		case pgerrcode.ForeignKeyViolation:
			return classifyForeignKey(pgErr, ctx)
		case pgerrcode.InvalidTextRepresentation:
			return classifyBadCast(pgErr, ctx)
		case pgerrcode.NotNullViolation:
			return ErrMissingInput
		case pgerrcode.UndefinedColumn:
			return apperr.BadRequest("Bad request!")
		}
	}

	return apperr.Internal(err)
}

// classifyUnique handles 23505. The only unique constraint reachable through
// the API surface is the topic slug primary key.
func classifyUnique(pgErr *pgconn.PgError, ctx Context) error {
	if ctx.Slug != "" {
		return apperr.Conflict(fmt.Sprintf("%s topic already exists!", ctx.Slug))
	}
	return apperr.Internal(pgErr)
}

// classifyForeignKey handles 23503. The violated reference is identified from
// the constraint detail, then paired with the caller-supplied value.
//
// A missing parent maps to 404: the client named a resource that does not
// exist, it did not send a malformed request.
func classifyForeignKey(pgErr *pgconn.PgError, ctx Context) error {
	detail := pgErr.Detail + " " + pgErr.ConstraintName

	switch {
	case strings.Contains(detail, "article_id") && ctx.ArticleID != "":
		return apperr.NotFound(fmt.Sprintf("Couldn't find article_id %s!", ctx.ArticleID))
	case strings.Contains(detail, "author") && ctx.Username != "":
		return apperr.NotFound(fmt.Sprintf("Couldn't find username %s!", ctx.Username))
	case strings.Contains(detail, "author") && ctx.Author != "":
		return apperr.NotFound(fmt.Sprintf("Couldn't find author %s", ctx.Author))
	case strings.Contains(detail, "topic") && ctx.Topic != "":
		return apperr.NotFound(fmt.Sprintf("Couldn't find topic %s", ctx.Topic))
	}

	return apperr.Internal(pgErr)
}

// classifyBadCast handles 22P02. The vote delta takes precedence over path
// ids: a PATCH with a bad body should report the body field even though the
// statement also binds the id.
//
// In the current wiring the decode layer rejects non-numeric deltas before
// any statement runs, so the IncVotes branch is a backstop: it keeps the
// contractual copy if a store call ever binds the raw delta directly.
func classifyBadCast(pgErr *pgconn.PgError, ctx Context) error {
	switch {
	case ctx.IncVotes != "" && !isNumeric(ctx.IncVotes):
		return InvalidIncVotes(ctx.IncVotes)
	case ctx.ArticleID != "" && !isNumeric(ctx.ArticleID):
		return InvalidNumber("article_id", ctx.ArticleID)
	case ctx.CommentID != "" && !isNumeric(ctx.CommentID):
		return InvalidNumber("comment_id", ctx.CommentID)
	}
	return apperr.BadRequest("Bad request!")
}

// isNumeric reports whether s parses as a signed decimal integer.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && (r == '-' || r == '+') && len(s) > 1 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
