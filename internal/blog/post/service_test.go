package post_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtran/inkpost/internal/blog/post"
	"github.com/hmtran/inkpost/internal/platform/apperr"
)

func newTestServiceWith(repo *fakePostRepo) *post.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return post.NewService(repo, logger)
}

/*
TestService_ListByIDsPreservingOrder verifies ids resolve in the order
given, regardless of storage order, and that missing ids are dropped.
*/
func TestService_ListByIDsPreservingOrder(t *testing.T) {
	service := newTestServiceWith(seededPosts(4))

	posts, err := service.ListByIDsPreservingOrder(context.Background(), []int64{3, 1, 99, 2})
	require.NoError(t, err)

	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

/*
TestService_Exists distinguishes stored ids from unknown ones without
surfacing a not-found error.
*/
func TestService_Exists(t *testing.T) {
	service := newTestServiceWith(seededPosts(2))

	exists, err := service.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.Exists(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, exists)
}

/*
TestService_Create_DerivesSlug verifies an empty slug is generated from
the title.
*/
func TestService_Create_DerivesSlug(t *testing.T) {
	service := newTestServiceWith(&fakePostRepo{})

	created, err := service.Create(context.Background(), post.CreateInput{
		Title:    "Héllo, Wörld!",
		Excerpt:  "greeting",
		Content:  "body",
		AuthorID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", created.Slug)
}

/*
TestService_Create_Validation rejects incomplete input with field-level
details and persists nothing.
*/
func TestService_Create_Validation(t *testing.T) {
	repo := &fakePostRepo{}
	service := newTestServiceWith(repo)

	_, err := service.Create(context.Background(), post.CreateInput{
		Excerpt: "no title",
		Content: "body",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	fields := make([]string, 0, len(ae.Details))
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "author_id")
	assert.Empty(t, repo.posts)
}
