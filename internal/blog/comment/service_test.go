package comment_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtran/inkpost/internal/blog/comment"
	"github.com/hmtran/inkpost/internal/platform/apperr"
	"github.com/hmtran/inkpost/internal/platform/dberr"
)

// memoryRepo is an in-memory comment.Repository.
type memoryRepo struct {
	comments []*comment.Comment
}

func (m *memoryRepo) ListForPost(_ context.Context, postID int64) ([]*comment.Comment, error) {
	listed := make([]*comment.Comment, 0)
	for _, c := range m.comments {
		if c.PostID == postID {
			listed = append(listed, c)
		}
	}
	// Same ordering contract as the Postgres repository.
	sort.Slice(listed, func(i, j int) bool {
		if !listed[i].CreatedAt.Equal(listed[j].CreatedAt) {
			return listed[i].CreatedAt.Before(listed[j].CreatedAt)
		}
		return listed[i].ID < listed[j].ID
	})
	return listed, nil
}

func (m *memoryRepo) CountForPost(_ context.Context, postID int64) (int, error) {
	listed, _ := m.ListForPost(context.Background(), postID)
	return len(listed), nil
}

func (m *memoryRepo) CreateComment(_ context.Context, created *comment.Comment) (*comment.Comment, error) {
	created.ID = int64(len(m.comments) + 1)
	created.CreatedAt = time.Now()
	m.comments = append(m.comments, created)
	return created, nil
}

func (m *memoryRepo) DeleteComment(_ context.Context, id int64) error {
	for i, c := range m.comments {
		if c.ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newTestService() (*comment.Service, *memoryRepo) {
	repo := &memoryRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return comment.NewService(repo, logger), repo
}

/*
TestValidate exercises the comment form rules field by field.
*/
func TestValidate(t *testing.T) {
	service, _ := newTestService()

	valid := comment.Input{
		UserName:  "Minh",
		UserEmail: "minh@example.com",
		Text:      "Good write-up.",
	}

	tests := []struct {
		name       string
		mutate     func(input *comment.Input)
		wantField  string
	}{
		{"missing_name", func(i *comment.Input) { i.UserName = "" }, "user_name"},
		{"whitespace_name", func(i *comment.Input) { i.UserName = "   " }, "user_name"},
		{"name_too_long", func(i *comment.Input) { i.UserName = strings.Repeat("a", 121) }, "user_name"},
		{"missing_email", func(i *comment.Input) { i.UserEmail = "" }, "user_email"},
		{"invalid_email", func(i *comment.Input) { i.UserEmail = "not-an-email" }, "user_email"},
		{"missing_text", func(i *comment.Input) { i.Text = "" }, "text"},
		{"text_too_long", func(i *comment.Input) { i.Text = strings.Repeat("x", 401) }, "text"},
	}

	require.NoError(t, service.Validate(valid))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			err := service.Validate(input)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))

			ae := apperr.As(err)
			require.NotNil(t, ae)

			fields := make([]string, 0, len(ae.Details))
			for _, detail := range ae.Details {
				fields = append(fields, detail.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

/*
TestListForPost_OldestFirst verifies the listing order: created_at
ascending with id as the tiebreak.
*/
func TestListForPost_OldestFirst(t *testing.T) {
	service, repo := newTestService()

	base := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
	repo.comments = []*comment.Comment{
		{ID: 3, PostID: 7, Text: "third", CreatedAt: base.Add(time.Minute)},
		{ID: 2, PostID: 7, Text: "second", CreatedAt: base},
		{ID: 1, PostID: 7, Text: "first", CreatedAt: base},
		{ID: 4, PostID: 8, Text: "other post", CreatedAt: base},
	}

	listed, err := service.ListForPost(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, listed, 3)
	assert.Equal(t, "first", listed[0].Text)
	assert.Equal(t, "second", listed[1].Text)
	assert.Equal(t, "third", listed[2].Text)
}

/*
TestCountForPost counts only the given post's comments.
*/
func TestCountForPost(t *testing.T) {
	service, repo := newTestService()

	repo.comments = []*comment.Comment{
		{ID: 1, PostID: 7},
		{ID: 2, PostID: 7},
		{ID: 3, PostID: 8},
	}

	count, err := service.CountForPost(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

/*
TestCreate_PersistsValidComment verifies a valid submission is stored
against the right post.
*/
func TestCreate_PersistsValidComment(t *testing.T) {
	service, repo := newTestService()

	created, err := service.Create(context.Background(), 7, comment.Input{
		UserName:  "Minh",
		UserEmail: "minh@example.com",
		Text:      "Good write-up.",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(7), created.PostID)
	require.Len(t, repo.comments, 1)
}

/*
TestCreate_RejectsInvalidComment verifies nothing is persisted when
validation fails.
*/
func TestCreate_RejectsInvalidComment(t *testing.T) {
	service, repo := newTestService()

	_, err := service.Create(context.Background(), 7, comment.Input{
		UserEmail: "minh@example.com",
		Text:      "Good write-up.",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, repo.comments)
}
