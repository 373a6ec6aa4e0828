package post_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtran/inkpost/internal/blog/comment"
	"github.com/hmtran/inkpost/internal/blog/post"
	"github.com/hmtran/inkpost/internal/blog/tag"
	"github.com/hmtran/inkpost/internal/platform/dberr"
)

// # Fakes

// fakePostRepo is an in-memory post.Repository.
type fakePostRepo struct {
	posts []*post.Post
}

func (f *fakePostRepo) ListPosts(_ context.Context, limit int) ([]*post.Post, error) {
	listed := slices.Clone(f.posts)
	sort.Slice(listed, func(i, j int) bool {
		if !listed[i].CreatedAt.Equal(listed[j].CreatedAt) {
			return listed[i].CreatedAt.After(listed[j].CreatedAt)
		}
		return listed[i].ID > listed[j].ID
	})
	if limit > 0 && len(listed) > limit {
		listed = listed[:limit]
	}
	return listed, nil
}

func (f *fakePostRepo) ListPostsByIDs(_ context.Context, ids []int64) ([]*post.Post, error) {
	// Storage order, not request order; the service restores ordering.
	found := make([]*post.Post, 0, len(ids))
	for i := len(f.posts) - 1; i >= 0; i-- {
		if slices.Contains(ids, f.posts[i].ID) {
			found = append(found, f.posts[i])
		}
	}
	return found, nil
}

func (f *fakePostRepo) GetPostBySlug(_ context.Context, slug string) (*post.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakePostRepo) GetPostByID(_ context.Context, id int64) (*post.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakePostRepo) CreatePost(_ context.Context, created *post.Post, _ []int64) (*post.Post, error) {
	created.ID = int64(len(f.posts) + 1)
	created.CreatedAt = time.Now()
	f.posts = append(f.posts, created)
	return created, nil
}

func (f *fakePostRepo) DeletePostBySlug(_ context.Context, slug string) error {
	for i, p := range f.posts {
		if p.Slug == slug {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

// fakeTagRepo serves fixed tag assignments.
type fakeTagRepo struct {
	all    []*tag.Tag
	byPost map[int64][]*tag.Tag
}

func (f *fakeTagRepo) ListTags(_ context.Context) ([]*tag.Tag, error) {
	return f.all, nil
}

func (f *fakeTagRepo) TagsForPost(_ context.Context, postID int64) ([]*tag.Tag, error) {
	tags := f.byPost[postID]
	if tags == nil {
		tags = []*tag.Tag{}
	}
	return tags, nil
}

func (f *fakeTagRepo) CreateTag(_ context.Context, caption string) (*tag.Tag, error) {
	created := &tag.Tag{ID: int64(len(f.all) + 1), Caption: caption}
	f.all = append(f.all, created)
	return created, nil
}

// fakeCommentRepo is an in-memory comment.Repository.
type fakeCommentRepo struct {
	comments []*comment.Comment
}

func (f *fakeCommentRepo) ListForPost(_ context.Context, postID int64) ([]*comment.Comment, error) {
	listed := make([]*comment.Comment, 0)
	for _, c := range f.comments {
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

func (f *fakeCommentRepo) CountForPost(_ context.Context, postID int64) (int, error) {
	listed, _ := f.ListForPost(context.Background(), postID)
	return len(listed), nil
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, created *comment.Comment) (*comment.Comment, error) {
	created.ID = int64(len(f.comments) + 1)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}
	f.comments = append(f.comments, created)
	return created, nil
}

func (f *fakeCommentRepo) DeleteComment(_ context.Context, id int64) error {
	for i, c := range f.comments {
		if c.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

// stubBookmarks answers every membership check with a fixed value.
type stubBookmarks struct {
	saved bool
}

func (s *stubBookmarks) Contains(_ context.Context, _ string, _ int64) (bool, error) {
	return s.saved, nil
}

// # Test Harness

type harness struct {
	router   chi.Router
	posts    *fakePostRepo
	comments *fakeCommentRepo
}

func newHarness(posts *fakePostRepo, tags *fakeTagRepo, bookmarks *stubBookmarks) *harness {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	comments := &fakeCommentRepo{}

	handler := post.NewHandler(
		post.NewService(posts, logger),
		tag.NewService(tags, logger),
		comment.NewService(comments, logger),
		bookmarks,
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	return &harness{router: router, posts: posts, comments: comments}
}

func seededPosts(count int) *fakePostRepo {
	base := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakePostRepo{}
	for i := 1; i <= count; i++ {
		repo.posts = append(repo.posts, &post.Post{
			ID:        int64(i),
			Title:     "Post " + string(rune('A'+i-1)),
			Excerpt:   "excerpt",
			Slug:      "post-" + string(rune('a'+i-1)),
			Content:   "content",
			AuthorID:  1,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return repo
}

func (h *harness) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, request)
	return recorder
}

func (h *harness) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, request)
	return recorder
}

type listBody struct {
	Data struct {
		Posts []struct {
			ID   int64  `json:"id"`
			Slug string `json:"slug"`
		} `json:"posts"`
	} `json:"data"`
}

type detailBody struct {
	Data struct {
		Post struct {
			ID   int64  `json:"id"`
			Slug string `json:"slug"`
		} `json:"post"`
		PostTags []struct {
			Caption string `json:"caption"`
		} `json:"post_tags"`
		Comments []struct {
			UserName string `json:"user_name"`
			Text     string `json:"text"`
		} `json:"comments"`
		CommentCount int `json:"comment_count"`
		CommentForm  struct {
			Values comment.Input       `json:"values"`
			Errors map[string][]string `json:"errors"`
		} `json:"comment_form"`
		SavedForLater bool `json:"saved_for_later"`
	} `json:"data"`
}

// # Listing

/*
TestIndex_ShowsThreeMostRecentPosts verifies the landing page caps the
listing at three posts, newest first.
*/
func TestIndex_ShowsThreeMostRecentPosts(t *testing.T) {
	h := newHarness(seededPosts(5), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.get(t, "/")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	require.Len(t, body.Data.Posts, 3)
	assert.Equal(t, "post-e", body.Data.Posts[0].Slug)
	assert.Equal(t, "post-d", body.Data.Posts[1].Slug)
	assert.Equal(t, "post-c", body.Data.Posts[2].Slug)
}

/*
TestIndex_FewerThanThreePosts verifies a short catalog is shown whole.
*/
func TestIndex_FewerThanThreePosts(t *testing.T) {
	h := newHarness(seededPosts(2), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.get(t, "/")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Data.Posts, 2)
}

/*
TestListAll_ShowsEveryPost verifies /posts has no cap.
*/
func TestListAll_ShowsEveryPost(t *testing.T) {
	h := newHarness(seededPosts(5), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.get(t, "/posts")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	require.Len(t, body.Data.Posts, 5)
	assert.Equal(t, "post-e", body.Data.Posts[0].Slug)
	assert.Equal(t, "post-a", body.Data.Posts[4].Slug)
}

// # Detail

/*
TestDetail_AssemblesViewModel verifies the detail payload carries the
post, its tags, its comments, an empty form, and the bookmark flag.
*/
func TestDetail_AssemblesViewModel(t *testing.T) {
	posts := seededPosts(1)
	tags := &fakeTagRepo{byPost: map[int64][]*tag.Tag{
		1: {{ID: 1, Caption: "go"}, {ID: 2, Caption: "web"}},
	}}
	h := newHarness(posts, tags, &stubBookmarks{saved: true})

	_, err := h.comments.CreateComment(context.Background(), &comment.Comment{
		PostID: 1, UserName: "Minh", UserEmail: "minh@example.com", Text: "Nice post",
	})
	require.NoError(t, err)

	recorder := h.get(t, "/posts/post-a")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body detailBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, "post-a", body.Data.Post.Slug)
	require.Len(t, body.Data.PostTags, 2)
	assert.Equal(t, "go", body.Data.PostTags[0].Caption)
	require.Len(t, body.Data.Comments, 1)
	assert.Equal(t, "Nice post", body.Data.Comments[0].Text)
	assert.Equal(t, 1, body.Data.CommentCount)
	assert.True(t, body.Data.SavedForLater)
	assert.Empty(t, body.Data.CommentForm.Values.UserName)
	assert.Empty(t, body.Data.CommentForm.Errors)
}

/*
TestDetail_CommentsOldestFirst verifies comments come back oldest first,
with ids breaking the tie for comments sharing a timestamp.
*/
func TestDetail_CommentsOldestFirst(t *testing.T) {
	h := newHarness(seededPosts(1), &fakeTagRepo{}, &stubBookmarks{})

	base := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

	// Storage order is deliberately scrambled; only the ordering contract
	// can put these right.
	h.comments.comments = []*comment.Comment{
		{ID: 3, PostID: 1, UserName: "Chi", UserEmail: "chi@example.com", Text: "third", CreatedAt: base.Add(time.Hour)},
		{ID: 2, PostID: 1, UserName: "Binh", UserEmail: "binh@example.com", Text: "second", CreatedAt: base},
		{ID: 1, PostID: 1, UserName: "An", UserEmail: "an@example.com", Text: "first", CreatedAt: base},
	}

	recorder := h.get(t, "/posts/post-a")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body detailBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	require.Len(t, body.Data.Comments, 3)
	assert.Equal(t, "first", body.Data.Comments[0].Text)
	assert.Equal(t, "second", body.Data.Comments[1].Text)
	assert.Equal(t, "third", body.Data.Comments[2].Text)
	assert.Equal(t, 3, body.Data.CommentCount)
}

/*
TestDetail_UnknownSlug verifies an unknown slug answers 404.
*/
func TestDetail_UnknownSlug(t *testing.T) {
	h := newHarness(seededPosts(1), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.get(t, "/posts/no-such-post")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// # Comment Submission

/*
TestSubmitComment_Valid verifies a valid form persists the comment and
redirects back to the same detail page.
*/
func TestSubmitComment_Valid(t *testing.T) {
	h := newHarness(seededPosts(1), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.postForm(t, "/posts/post-a", url.Values{
		"user_name":  {"Minh"},
		"user_email": {"minh@example.com"},
		"text":       {"Great read."},
	})

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/posts/post-a", recorder.Header().Get("Location"))

	require.Len(t, h.comments.comments, 1)
	saved := h.comments.comments[0]
	assert.Equal(t, int64(1), saved.PostID)
	assert.Equal(t, "Minh", saved.UserName)
	assert.Equal(t, "Great read.", saved.Text)
}

/*
TestSubmitComment_Invalid verifies an invalid form re-renders the detail
context at 200 with field errors and the submitted values, and persists
nothing.
*/
func TestSubmitComment_Invalid(t *testing.T) {
	h := newHarness(seededPosts(1), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.postForm(t, "/posts/post-a", url.Values{
		"user_name":  {""},
		"user_email": {"minh@example.com"},
		"text":       {"Great read."},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var body detailBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Contains(t, body.Data.CommentForm.Errors, "user_name")
	assert.Equal(t, "minh@example.com", body.Data.CommentForm.Values.UserEmail)
	assert.Equal(t, "Great read.", body.Data.CommentForm.Values.Text)
	assert.Empty(t, h.comments.comments)
}

/*
TestSubmitComment_BadEmail verifies the email format rule surfaces as a
form error rather than an API error.
*/
func TestSubmitComment_BadEmail(t *testing.T) {
	h := newHarness(seededPosts(1), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.postForm(t, "/posts/post-a", url.Values{
		"user_name":  {"Minh"},
		"user_email": {"not-an-email"},
		"text":       {"Great read."},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var body detailBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body.Data.CommentForm.Errors, "user_email")
	assert.Empty(t, h.comments.comments)
}

/*
TestSubmitComment_UnknownSlug verifies a comment on a missing post is 404.
*/
func TestSubmitComment_UnknownSlug(t *testing.T) {
	h := newHarness(seededPosts(1), &fakeTagRepo{}, &stubBookmarks{})

	recorder := h.postForm(t, "/posts/no-such-post", url.Values{
		"user_name":  {"Minh"},
		"user_email": {"minh@example.com"},
		"text":       {"Great read."},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Empty(t, h.comments.comments)
}
