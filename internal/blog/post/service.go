package post

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hmtran/inkpost/internal/platform/constants"
	"github.com/hmtran/inkpost/internal/platform/dberr"
	"github.com/hmtran/inkpost/internal/platform/validate"
	"github.com/hmtran/inkpost/pkg/slug"
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

// ListRecent returns the newest posts for the landing page, capped at
// [constants.RecentPostLimit].
func (service *Service) ListRecent(context context.Context) ([]*Post, error) {
	return service.repo.ListPosts(context, constants.RecentPostLimit)
}

// ListAll returns every post, most recent first.
func (service *Service) ListAll(context context.Context) ([]*Post, error) {
	return service.repo.ListPosts(context, 0)
}

func (service *Service) GetBySlug(context context.Context, slug string) (*Post, error) {
	return service.repo.GetPostBySlug(context, slug)
}

// Exists reports whether a post with the given id is in storage.
func (service *Service) Exists(context context.Context, id int64) (bool, error) {
	_, err := service.repo.GetPostByID(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListByIDsPreservingOrder resolves ids to posts in the order given.
//
// Ids that no longer resolve to a stored post are silently dropped; the
// read-later list may reference posts that were deleted administratively.
func (service *Service) ListByIDsPreservingOrder(context context.Context, ids []int64) ([]*Post, error) {
	found, err := service.repo.ListPostsByIDs(context, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*Post, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	ordered := make([]*Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	return ordered, nil
}

// CreateInput carries the fields of an administrative post creation.
type CreateInput struct {
	Title    string  `json:"title"`
	Excerpt  string  `json:"excerpt"`
	Slug     string  `json:"slug"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
	AuthorID int64   `json:"author_id"`
	TagIDs   []int64 `json:"tag_ids"`
}

// Create validates and persists a new post.
//
// An empty slug is derived from the title. Slug collisions surface as a
// Conflict error from the storage layer's unique constraint.
func (service *Service) Create(context context.Context, input CreateInput) (*Post, error) {
	if strings.TrimSpace(input.Slug) == "" {
		input.Slug = slug.From(input.Title)
	}

	v := &validate.Validator{}
	err := v.
		Required("title", input.Title).
		MaxLen("title", input.Title, 150).
		Required("excerpt", input.Excerpt).
		MaxLen("excerpt", input.Excerpt, 300).
		Required("content", input.Content).
		Slug("slug", input.Slug).
		Custom("author_id", input.AuthorID <= 0, "A valid author is required").
		Err()
	if err != nil {
		return nil, err
	}

	created, err := service.repo.CreatePost(context, &Post{
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Slug:     input.Slug,
		Content:  input.Content,
		ImageURL: input.ImageURL,
		AuthorID: input.AuthorID,
	}, input.TagIDs)
	if err != nil {
		return nil, err
	}

	service.logger.Info("post_created",
		slog.Int64("post_id", created.ID),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

// Delete removes a post administratively. Comments and tag links go with
// it via ON DELETE CASCADE.
func (service *Service) Delete(context context.Context, slug string) error {
	if err := service.repo.DeletePostBySlug(context, slug); err != nil {
		return err
	}

	service.logger.Info("post_deleted", slog.String("slug", slug))
	return nil
}
