package comment

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) UpdateVotes(ctx context.Context, commentID, delta int) (*Comment, error) {
	comment, err := service.repo.UpdateVotes(ctx, commentID, delta)
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment_votes_updated",
		slog.Int("comment_id", commentID),
		slog.Int("delta", delta),
	)
	return comment, nil
}

func (service *Service) Delete(ctx context.Context, commentID int) error {
	if err := service.repo.Delete(ctx, commentID); err != nil {
		return err
	}

	service.logger.Warn("comment_deleted", slog.Int("comment_id", commentID))
	return nil
}
