package article

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/paperboy/internal/platform/apperr"
	"github.com/taibuivan/paperboy/internal/platform/database/schema"
	"github.com/taibuivan/paperboy/internal/platform/dberr"
	"github.com/taibuivan/paperboy/internal/platform/listquery"
)

// notFoundMessage is the contractual copy for a missing article.
const notFoundMessage = "Article not found"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
List returns a filtered, sorted, paginated slice of articles and the total
count of articles matching the filter.

Description: the query leans on two PostgreSQL features the API contract
depends on:
  - LEFT JOIN + GROUP BY: articles with zero comments still appear, with a
    comment_count of 0, cast to int so list and detail views agree.
  - Window Function: COUNT(*) OVER() retrieves the pre-pagination total
    without a second round trip.

Safety invariant: the topic filter is bound as $1; the ORDER BY column and
direction and the LIMIT/OFFSET values are interpolated, but only ever from
the whitelist-validated [listquery.Options] — never from raw user input.

Parameters:
  - ctx: context.Context
  - f: Filter (optional topic slug)
  - opts: validated sort/order/limit/page

Returns:
  - []*Article: one page of articles, body omitted
  - int: total articles matching the filter (0 when the page is empty)
  - error: classified database failures
*/
func (repository *PostgresRepository) List(ctx context.Context, f Filter, opts listquery.Options) ([]*Article, int, error) {

	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			COUNT(c.%s)::int AS comment_count,
			COUNT(*) OVER() AS total_count
		FROM %s a
		LEFT JOIN %s c ON a.%s = c.%s
	`,
		schema.Article.Author,
		schema.Article.Title,
		schema.Article.ArticleID,
		schema.Article.Topic,
		schema.Article.CreatedAt,
		schema.Article.Votes,
		schema.Article.ArticleImgURL,
		schema.Comment.CommentID,
		schema.Article.Table,
		schema.Comment.Table,
		schema.Article.ArticleID, schema.Comment.ArticleID,
	))

	if f.Topic != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE a.%s = $1", schema.Article.Topic))
		args = append(args, f.Topic)
	}

	queryBuilder.WriteString(fmt.Sprintf(" GROUP BY a.%s", schema.Article.ArticleID))
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", orderColumn(opts.SortBy), opts.Order))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT %d OFFSET %d", opts.Limit, opts.Offset()))

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Classify(err, dberr.Context{Topic: f.Topic})
	}
	defer rows.Close()

	articles := make([]*Article, 0)
	var total int
	for rows.Next() {
		a := &Article{}
		if err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt,
			&a.Votes, &a.ArticleImgURL, &a.CommentCount, &total,
		); err != nil {
			return nil, 0, dberr.Classify(err, dberr.Context{})
		}
		articles = append(articles, a)
	}

	return articles, total, nil
}

// Get returns the full article projection, comment_count included.
func (repository *PostgresRepository) Get(ctx context.Context, articleID int) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			COUNT(c.%s)::int AS comment_count
		FROM %s a
		LEFT JOIN %s c ON a.%s = c.%s
		WHERE a.%s = $1
		GROUP BY a.%s
	`,
		schema.Article.ArticleID, schema.Article.Title, schema.Article.Topic,
		schema.Article.Author, schema.Article.Body, schema.Article.CreatedAt,
		schema.Article.Votes, schema.Article.ArticleImgURL,
		schema.Comment.CommentID,
		schema.Article.Table,
		schema.Comment.Table,
		schema.Article.ArticleID, schema.Comment.ArticleID,
		schema.Article.ArticleID,
		schema.Article.ArticleID,
	)

	a := &Article{}
	err := repository.db.QueryRow(ctx, query, articleID).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{
			ArticleID: strconv.Itoa(articleID),
			NotFound:  notFoundMessage,
		})
	}

	return a, nil
}

// Create inserts a new article and returns its generated id.
//
// The image URL column is appended only when the caller supplied one, so the
// table default applies otherwise.
func (repository *PostgresRepository) Create(ctx context.Context, input *NewArticle) (int, error) {
	columns := []string{
		schema.Article.Author, schema.Article.Title,
		schema.Article.Body, schema.Article.Topic,
	}
	args := []any{input.Author, input.Title, input.Body, input.Topic}

	if input.ArticleImgURL != nil {
		columns = append(columns, schema.Article.ArticleImgURL)
		args = append(args, *input.ArticleImgURL)
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		schema.Article.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		schema.Article.ArticleID,
	)

	var articleID int
	err := repository.db.QueryRow(ctx, query, args...).Scan(&articleID)
	if err != nil {
		return 0, dberr.Classify(err, dberr.Context{
			Author: input.Author,
			Topic:  input.Topic,
		})
	}

	return articleID, nil
}

// UpdateVotes applies an atomic relative vote adjustment and returns the
// updated row. The relative form (votes = votes + $1) is deliberate: an
// absolute overwrite would lose updates under concurrent increments.
func (repository *PostgresRepository) UpdateVotes(ctx context.Context, articleID, delta int) (*Article, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + $1
		WHERE %s = $2
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s
	`,
		schema.Article.Table,
		schema.Article.Votes, schema.Article.Votes,
		schema.Article.ArticleID,
		schema.Article.ArticleID, schema.Article.Title, schema.Article.Topic,
		schema.Article.Author, schema.Article.Body, schema.Article.CreatedAt,
		schema.Article.Votes, schema.Article.ArticleImgURL,
	)

	a := &Article{}
	err := repository.db.QueryRow(ctx, query, delta, articleID).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{
			ArticleID: strconv.Itoa(articleID),
			NotFound:  fmt.Sprintf("Couldn't find article_id %d!", articleID),
		})
	}

	return a, nil
}

// Delete removes an article by id. Dependent comments are removed by the
// ON DELETE CASCADE constraint on comments.article_id.
func (repository *PostgresRepository) Delete(ctx context.Context, articleID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Article.Table, schema.Article.ArticleID,
	)

	cmd, err := repository.db.Exec(ctx, query, articleID)
	if err != nil {
		return dberr.Classify(err, dberr.Context{ArticleID: strconv.Itoa(articleID)})
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(notFoundMessage)
	}
	return nil
}

// orderColumn maps a whitelisted sort token to its ORDER BY expression.
// comment_count is a select-list alias; everything else is a real column.
func orderColumn(sortBy string) string {
	if sortBy == "comment_count" {
		return "comment_count"
	}
	return "a." + sortBy
}
