package comment

import "context"

type Repository interface {
	ListByArticle(ctx context.Context, articleID, limit, offset int) ([]*Comment, error)
	Insert(ctx context.Context, c *Comment) error
	UpdateVotes(ctx context.Context, commentID, delta int) (*Comment, error)
	Delete(ctx context.Context, commentID int) error
}
