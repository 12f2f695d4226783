package topic

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Topic, error)
	Get(ctx context.Context, slug string) (*Topic, error)
	Create(ctx context.Context, t *Topic) error
}
