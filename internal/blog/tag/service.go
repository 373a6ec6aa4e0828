package tag

import (
	"context"
	"log/slog"

	"github.com/hmtran/inkpost/internal/platform/validate"
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

func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.ListTags(context)
}

// TagsForPost returns the captions attached to a post.
//
// Deliberately an explicit repository call rather than a relation hanging
// off the Post entity; detail views ask for exactly what they render.
func (service *Service) TagsForPost(context context.Context, postID int64) ([]*Tag, error) {
	return service.repo.TagsForPost(context, postID)
}

func (service *Service) Create(context context.Context, caption string) (*Tag, error) {
	v := &validate.Validator{}
	err := v.
		Required("caption", caption).
		MaxLen("caption", caption, 50).
		Err()
	if err != nil {
		return nil, err
	}

	return service.repo.CreateTag(context, caption)
}
