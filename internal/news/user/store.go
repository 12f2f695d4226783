package user

import "context"

type Repository interface {
	List(ctx context.Context) ([]*User, error)
	Get(ctx context.Context, username string) (*User, error)
}
