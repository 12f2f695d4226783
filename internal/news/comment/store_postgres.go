package comment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/paperboy/internal/platform/apperr"
	"github.com/taibuivan/paperboy/internal/platform/database/schema"
	"github.com/taibuivan/paperboy/internal/platform/dberr"
)

// notFoundMessage is the contractual copy for a missing comment.
const notFoundMessage = "Comment not found!"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByArticle returns one page of an article's comments, newest first.
//
// limit and offset arrive pre-validated as integers and are the only values
// interpolated into statement text; the article id is bound as a parameter.
func (repository *PostgresRepository) ListByArticle(ctx context.Context, articleID, limit, offset int) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT %d OFFSET %d
	`,
		schema.Comment.CommentID, schema.Comment.ArticleID, schema.Comment.Author,
		schema.Comment.Body, schema.Comment.Votes, schema.Comment.CreatedAt,
		schema.Comment.Table,
		schema.Comment.ArticleID,
		schema.Comment.CreatedAt,
		limit, offset,
	)

	rows, err := repository.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{ArticleID: strconv.Itoa(articleID)})
	}
	defer rows.Close()

	// Empty pages are a valid outcome and must serialize as [], not null.
	comments := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, dberr.Classify(err, dberr.Context{})
		}
		comments = append(comments, c)
	}

	return comments, nil
}

// Insert stores a new comment and hydrates the generated columns.
//
// Referential failures are classified with both candidate parents attached:
// the same foreign-key SQLSTATE means "no such article" or "no such user"
// depending on which constraint fired.
func (repository *PostgresRepository) Insert(ctx context.Context, c *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s
	`,
		schema.Comment.Table,
		schema.Comment.ArticleID, schema.Comment.Author, schema.Comment.Body,
		schema.Comment.CommentID, schema.Comment.Votes, schema.Comment.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query, c.ArticleID, c.Author, c.Body).
		Scan(&c.CommentID, &c.Votes, &c.CreatedAt)

	return dberr.Classify(err, dberr.Context{
		ArticleID: strconv.Itoa(c.ArticleID),
		Username:  c.Author,
	})
}

// UpdateVotes applies an atomic relative vote adjustment and returns the
// updated row. The store evaluates votes + delta in one statement so
// concurrent increments never lose updates.
func (repository *PostgresRepository) UpdateVotes(ctx context.Context, commentID, delta int) (*Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + $1
		WHERE %s = $2
		RETURNING %s, %s, %s, %s, %s, %s
	`,
		schema.Comment.Table,
		schema.Comment.Votes, schema.Comment.Votes,
		schema.Comment.CommentID,
		schema.Comment.CommentID, schema.Comment.ArticleID, schema.Comment.Author,
		schema.Comment.Body, schema.Comment.Votes, schema.Comment.CreatedAt,
	)

	c := &Comment{}
	err := repository.db.QueryRow(ctx, query, delta, commentID).
		Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{
			CommentID: strconv.Itoa(commentID),
			NotFound:  notFoundMessage,
		})
	}

	return c, nil
}

// Delete removes a comment by id. Zero affected rows means the comment never
// existed (or was already deleted) and maps to the contractual 404.
func (repository *PostgresRepository) Delete(ctx context.Context, commentID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Comment.Table, schema.Comment.CommentID,
	)

	cmd, err := repository.db.Exec(ctx, query, commentID)
	if err != nil {
		return dberr.Classify(err, dberr.Context{CommentID: strconv.Itoa(commentID)})
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(notFoundMessage)
	}
	return nil
}
