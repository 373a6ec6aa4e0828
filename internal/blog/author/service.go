package author

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

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

func (service *Service) GetAuthor(context context.Context, id int64) (*Author, error) {
	return service.repo.GetAuthorByID(context, id)
}

// CreateInput carries the fields of an administrative author creation.
type CreateInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (service *Service) Create(context context.Context, input CreateInput) (*Author, error) {
	v := &validate.Validator{}
	err := v.
		Required("first_name", input.FirstName).
		MaxLen("first_name", input.FirstName, 100).
		Required("last_name", input.LastName).
		MaxLen("last_name", input.LastName, 100).
		Email("email", input.Email).
		Err()
	if err != nil {
		return nil, err
	}

	return service.repo.CreateAuthor(context, &Author{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
}
