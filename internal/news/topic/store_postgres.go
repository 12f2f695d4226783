package topic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/paperboy/internal/platform/database/schema"
	"github.com/taibuivan/paperboy/internal/platform/dberr"
)

// notFoundMessage is the contractual copy for a missing topic.
const notFoundMessage = "Topic not found"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s`,
		schema.Topic.Slug, schema.Topic.Description, schema.Topic.Table,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{})
	}
	defer rows.Close()

	topics := make([]*Topic, 0)
	for rows.Next() {
		t := &Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, dberr.Classify(err, dberr.Context{})
		}
		topics = append(topics, t)
	}

	return topics, nil
}

// Get is the existence lookup used by the articles listing when a topic
// filter is present. A missing row resolves to the 404 copy, letting the
// caller distinguish "unknown topic" from "topic with no articles".
func (repository *PostgresRepository) Get(ctx context.Context, slug string) (*Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Topic.Slug, schema.Topic.Description, schema.Topic.Table, schema.Topic.Slug,
	)

	t := &Topic{}
	err := repository.db.QueryRow(ctx, query, slug).Scan(&t.Slug, &t.Description)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{NotFound: notFoundMessage})
	}

	return t, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, t *Topic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s
	`,
		schema.Topic.Table,
		schema.Topic.Slug, schema.Topic.Description,
		schema.Topic.Slug, schema.Topic.Description,
	)

	err := repository.db.QueryRow(ctx, query, t.Slug, t.Description).Scan(&t.Slug, &t.Description)
	return dberr.Classify(err, dberr.Context{Slug: t.Slug})
}
