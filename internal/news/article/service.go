package article

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/paperboy/internal/news/comment"
	"github.com/taibuivan/paperboy/internal/platform/listquery"
	"github.com/taibuivan/paperboy/internal/platform/validate"
)

type Service struct {
	repo     Repository
	comments CommentStore
	topics   TopicStore
	logger   *slog.Logger
}

func NewService(repo Repository, comments CommentStore, topics TopicStore, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		comments: comments,
		topics:   topics,
		logger:   logger,
	}
}

// List returns one page of articles plus the pre-pagination total.
//
// When a topic filter is present, the topic lookup and the listing run
// concurrently; an unknown topic must 404 even though the listing itself
// would merely come back empty, so the existence failure takes precedence.
func (service *Service) List(ctx context.Context, filter Filter, opts listquery.Options) ([]*Article, int, error) {
	if filter.Topic == "" {
		return service.repo.List(ctx, filter, opts)
	}

	var (
		articles []*Article
		total    int
		topicErr error
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if _, err := service.topics.Get(groupCtx, filter.Topic); err != nil {
			topicErr = err
			return err
		}
		return nil
	})

	group.Go(func() error {
		var err error
		articles, total, err = service.repo.List(groupCtx, filter, opts)
		return err
	})

	err := group.Wait()
	if topicErr != nil {
		return nil, 0, topicErr
	}
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (service *Service) Get(ctx context.Context, articleID int) (*Article, error) {
	return service.repo.Get(ctx, articleID)
}

// Create validates and inserts a new article, then re-reads the full
// projection so the response carries the derived comment count and the
// defaulted image URL. The re-read is sequential on purpose: it must observe
// the insert.
func (service *Service) Create(ctx context.Context, input *NewArticle) (*Article, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldAuthor, input.Author).
		Required(FieldTitle, input.Title).
		Required(FieldBody, input.Body).
		Required(FieldTopic, input.Topic)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	articleID, err := service.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	article, err := service.repo.Get(ctx, articleID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.Int("article_id", articleID),
		slog.String("author", input.Author),
		slog.String("topic", input.Topic),
	)
	return article, nil
}

func (service *Service) UpdateVotes(ctx context.Context, articleID, delta int) (*Article, error) {
	article, err := service.repo.UpdateVotes(ctx, articleID, delta)
	if err != nil {
		return nil, err
	}

	service.logger.Info("article_votes_updated",
		slog.Int("article_id", articleID),
		slog.Int("delta", delta),
	)
	return article, nil
}

func (service *Service) Delete(ctx context.Context, articleID int) error {
	if err := service.repo.Delete(ctx, articleID); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.Int("article_id", articleID))
	return nil
}

// ListComments returns one page of an article's comments, newest first.
//
// The parent lookup and the comment listing are issued concurrently and
// joined afterward: a missing article is a 404 while an existing article
// with no comments is an empty 200, and only the existence check can tell
// the two apart.
func (service *Service) ListComments(ctx context.Context, articleID int, opts listquery.Options) ([]*comment.Comment, error) {
	var (
		comments   []*comment.Comment
		articleErr error
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if _, err := service.repo.Get(groupCtx, articleID); err != nil {
			articleErr = err
			return err
		}
		return nil
	})

	group.Go(func() error {
		var err error
		comments, err = service.comments.ListByArticle(groupCtx, articleID, opts.Limit, opts.Offset())
		return err
	})

	err := group.Wait()
	if articleErr != nil {
		return nil, articleErr
	}
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// AddComment validates and inserts a comment under the given article.
// Unknown parents (article or username) surface from the store as 404s via
// foreign-key classification.
func (service *Service) AddComment(ctx context.Context, articleID int, input *NewComment) (*comment.Comment, error) {
	validator := &validate.Validator{}
	validator.
		Required(comment.FieldUsername, input.Username).
		Required(comment.FieldBody, input.Body)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	newComment := &comment.Comment{
		ArticleID: articleID,
		Author:    input.Username,
		Body:      input.Body,
	}
	if err := service.comments.Insert(ctx, newComment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.Int("article_id", articleID),
		slog.Int("comment_id", newComment.CommentID),
		slog.String("author", newComment.Author),
	)
	return newComment, nil
}
