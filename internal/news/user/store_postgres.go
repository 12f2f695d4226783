package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/paperboy/internal/platform/database/schema"
	"github.com/taibuivan/paperboy/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s`,
		schema.User.Username, schema.User.Name, schema.User.AvatarURL, schema.User.Table,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{})
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, dberr.Classify(err, dberr.Context{})
		}
		users = append(users, u)
	}

	return users, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.User.Username, schema.User.Name, schema.User.AvatarURL,
		schema.User.Table, schema.User.Username,
	)

	u := &User{}
	err := repository.db.QueryRow(ctx, query, username).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		return nil, dberr.Classify(err, dberr.Context{
			NotFound: fmt.Sprintf("%s not found!", username),
		})
	}

	return u, nil
}
