package article

import (
	"context"

	"github.com/taibuivan/paperboy/internal/news/comment"
	"github.com/taibuivan/paperboy/internal/news/topic"
	"github.com/taibuivan/paperboy/internal/platform/listquery"
)

type Repository interface {
	List(ctx context.Context, f Filter, opts listquery.Options) ([]*Article, int, error)
	Get(ctx context.Context, articleID int) (*Article, error)
	Create(ctx context.Context, input *NewArticle) (int, error)
	UpdateVotes(ctx context.Context, articleID, delta int) (*Article, error)
	Delete(ctx context.Context, articleID int) error
}

// CommentStore is the slice of the comment repository the article service
// needs for the nested /articles/{article_id}/comments routes.
type CommentStore interface {
	ListByArticle(ctx context.Context, articleID, limit, offset int) ([]*comment.Comment, error)
	Insert(ctx context.Context, c *comment.Comment) error
}

// TopicStore resolves topic existence for the filtered articles listing.
type TopicStore interface {
	Get(ctx context.Context, slug string) (*topic.Topic, error)
}
