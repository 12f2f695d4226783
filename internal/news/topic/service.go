package topic

import (
	"context"
	"log/slog"

	"github.com/taibuivan/paperboy/internal/platform/validate"
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

func (service *Service) List(ctx context.Context) ([]*Topic, error) {
	return service.repo.List(ctx)
}

func (service *Service) Create(ctx context.Context, topic *Topic) error {
	validator := &validate.Validator{}
	validator.Required(FieldSlug, topic.Slug).Required(FieldDescription, topic.Description)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, topic); err != nil {
		return err
	}

	service.logger.Info("topic_created", slog.String("slug", topic.Slug))
	return nil
}
