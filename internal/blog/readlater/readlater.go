/*
Package readlater implements the session-scoped bookmark list.

A visitor can toggle any post in and out of their personal "read later"
list. The list lives in the visitor's server-side session ([session.Store]),
so it needs no account and expires with the session.

# Invariants

  - The list never contains duplicate post ids.
  - Insertion order is preserved for display.
*/
package readlater

import (
	"context"
	"log/slog"
	"slices"

	"github.com/hmtran/inkpost/internal/blog/post"
	"github.com/hmtran/inkpost/internal/session"
	"github.com/hmtran/inkpost/pkg/slice"
)

// PostCatalog is the slice of the post service the bookmark logic needs.
type PostCatalog interface {
	Exists(context context.Context, id int64) (bool, error)
	ListByIDsPreservingOrder(context context.Context, ids []int64) ([]*post.Post, error)
}

type Service struct {
	sessions session.Store
	posts    PostCatalog
	logger   *slog.Logger
}

func NewService(sessions session.Store, posts PostCatalog, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		posts:    posts,
		logger:   logger,
	}
}

// Toggle flips the membership of postID in the visitor's read-later list.
//
// Present ids are removed; absent ids are appended only after verifying
// the post exists in storage. Toggling an id that does not refer to any
// stored post leaves the list untouched and reports no error — the
// caller redirects as if the operation succeeded.
func (service *Service) Toggle(ctx context.Context, token string, postID int64) error {
	storedIDs, err := service.sessions.GetStoredPosts(ctx, token)
	if err != nil {
		return err
	}

	if slices.Contains(storedIDs, postID) {
		// No duplicates are ever stored, so filtering removes exactly one entry.
		updated := slice.Filter(storedIDs, func(id int64) bool { return id != postID })
		if updated == nil {
			updated = []int64{}
		}
		return service.sessions.SetStoredPosts(ctx, token, updated)
	}

	exists, err := service.posts.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		// Silently degrade: an unknown id is dropped without surfacing an error.
		service.logger.Warn("read_later_unknown_post_ignored", slog.Int64("post_id", postID))
		return nil
	}

	return service.sessions.SetStoredPosts(ctx, token, append(storedIDs, postID))
}

// Contains reports whether postID is in the visitor's read-later list.
func (service *Service) Contains(ctx context.Context, token string, postID int64) (bool, error) {
	storedIDs, err := service.sessions.GetStoredPosts(ctx, token)
	if err != nil {
		return false, err
	}
	return slices.Contains(storedIDs, postID), nil
}

// List resolves the visitor's stored ids to posts, preserving insertion
// order. Ids whose post has since been deleted are silently dropped.
// The boolean reports whether the resolved list is non-empty.
func (service *Service) List(ctx context.Context, token string) ([]*post.Post, bool, error) {
	storedIDs, err := service.sessions.GetStoredPosts(ctx, token)
	if err != nil {
		return nil, false, err
	}

	posts, err := service.posts.ListByIDsPreservingOrder(ctx, storedIDs)
	if err != nil {
		return nil, false, err
	}

	return posts, len(posts) > 0, nil
}
