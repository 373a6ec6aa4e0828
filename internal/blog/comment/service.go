package comment

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

// ListForPost returns a post's comments, oldest first.
func (service *Service) ListForPost(context context.Context, postID int64) ([]*Comment, error) {
	return service.repo.ListForPost(context, postID)
}

// CountForPost returns the number of comments on a post.
func (service *Service) CountForPost(context context.Context, postID int64) (int, error) {
	return service.repo.CountForPost(context, postID)
}

// Validate checks a submitted comment form.
//
// Returns nil when the form is valid, or a VALIDATION_ERROR [apperr.AppError]
// carrying one entry per failed field. The detail handler turns those
// entries into form errors rendered at HTTP 200 — validation failure is a
// recovered state, not an API error.
func (service *Service) Validate(input Input) error {
	v := &validate.Validator{}
	return v.
		Required("user_name", input.UserName).
		MaxLen("user_name", input.UserName, 120).
		Email("user_email", input.UserEmail).
		Required("text", input.Text).
		MaxLen("text", input.Text, 400).
		Err()
}

// Create validates and persists a new comment on the given post.
func (service *Service) Create(context context.Context, postID int64, input Input) (*Comment, error) {
	if err := service.Validate(input); err != nil {
		return nil, err
	}

	created, err := service.repo.CreateComment(context, &Comment{
		PostID:    postID,
		UserName:  input.UserName,
		UserEmail: input.UserEmail,
		Text:      input.Text,
	})
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("post_id", postID),
	)

	return created, nil
}

// Delete removes a comment administratively.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.DeleteComment(context, id); err != nil {
		return err
	}

	service.logger.Info("comment_deleted", slog.Int64("comment_id", id))
	return nil
}
