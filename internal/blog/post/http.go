/*
Package post implements the public blog surface: the landing page, the
all-posts listing, and the post detail page with its comment form.

The handler returns view-model JSON; template rendering is owned by the
frontend. Redirect semantics mirror a classic server-rendered blog so
that browser form posts behave correctly (POST-redirect-GET).
*/
package post

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmtran/inkpost/internal/blog/comment"
	"github.com/hmtran/inkpost/internal/blog/tag"
	"github.com/hmtran/inkpost/internal/platform/apperr"
	requestutil "github.com/hmtran/inkpost/internal/platform/request"
	"github.com/hmtran/inkpost/internal/platform/respond"
)

// BookmarkChecker reports whether a post is in the visitor's read-later
// list. Implemented by the readlater service; declared here to keep the
// dependency direction pointing away from this package.
type BookmarkChecker interface {
	Contains(ctx context.Context, token string, postID int64) (bool, error)
}

type Handler struct {
	posts     *Service
	tags      *tag.Service
	comments  *comment.Service
	bookmarks BookmarkChecker
}

func NewHandler(posts *Service, tags *tag.Service, comments *comment.Service, bookmarks BookmarkChecker) *Handler {
	return &Handler{
		posts:     posts,
		tags:      tags,
		comments:  comments,
		bookmarks: bookmarks,
	}
}

// RegisterRoutes mounts the public blog routes at the router root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.index)
	router.Get("/posts", handler.listAll)
	router.Get("/posts/{slug}", handler.detail)
	router.Post("/posts/{slug}", handler.submitComment)
}

// # View Models

type listResponse struct {
	Posts []*Post `json:"posts"`
}

// commentFormView mirrors the template layer's comment form: the values
// to re-render and per-field error messages when validation failed.
type commentFormView struct {
	Values comment.Input       `json:"values"`
	Errors map[string][]string `json:"errors,omitempty"`
}

type detailResponse struct {
	Post          *Post              `json:"post"`
	PostTags      []*tag.Tag         `json:"post_tags"`
	Comments      []*comment.Comment `json:"comments"`
	CommentCount  int                `json:"comment_count"`
	CommentForm   commentFormView    `json:"comment_form"`
	SavedForLater bool               `json:"saved_for_later"`
}

// # Handlers

// index handles GET / — the landing page with the most recent posts.
func (handler *Handler) index(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.posts.ListRecent(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listResponse{Posts: posts})
}

// listAll handles GET /posts — every post, most recent first.
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.posts.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listResponse{Posts: posts})
}

// detail handles GET /posts/{slug}.
//
// Unknown slugs return 404. Otherwise the response carries everything the
// detail template renders: the post, its tags, its comments (oldest
// first), an empty comment form, and the visitor's bookmark status.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	resolved, err := handler.posts.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.gather(request, resolved, comment.Input{})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

// submitComment handles POST /posts/{slug}.
//
// A valid submission persists the comment and redirects back to the same
// detail page so a reload cannot resubmit. An invalid submission
// re-renders the detail context at HTTP 200 with the submitted values and
// field-level errors; nothing is persisted.
func (handler *Handler) submitComment(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	resolved, err := handler.posts.GetBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	values, err := requestutil.FormValues(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	input := comment.Input{
		UserName:  values.Get("user_name"),
		UserEmail: values.Get("user_email"),
		Text:      values.Get("text"),
	}

	if _, err := handler.comments.Create(request.Context(), resolved.ID, input); err != nil {
		if !apperr.IsValidation(err) {
			respond.Error(writer, request, err)
			return
		}

		// Recovered locally: same detail context, submitted values, field errors.
		view, gatherErr := handler.gather(request, resolved, input)
		if gatherErr != nil {
			respond.Error(writer, request, gatherErr)
			return
		}
		view.CommentForm.Errors = fieldErrorMap(err)
		respond.OK(writer, view)
		return
	}

	respond.Redirect(writer, request, "/posts/"+slug)
}

// gather assembles the detail view model for an already-resolved post.
func (handler *Handler) gather(request *http.Request, resolved *Post, formValues comment.Input) (*detailResponse, error) {
	ctx := request.Context()

	postTags, err := handler.tags.TagsForPost(ctx, resolved.ID)
	if err != nil {
		return nil, err
	}

	comments, err := handler.comments.ListForPost(ctx, resolved.ID)
	if err != nil {
		return nil, err
	}

	// The count comes from storage, not len(comments), so the template can
	// show it even if the comment list is ever paginated.
	commentCount, err := handler.comments.CountForPost(ctx, resolved.ID)
	if err != nil {
		return nil, err
	}

	saved, err := handler.bookmarks.Contains(ctx, requestutil.SessionToken(request), resolved.ID)
	if err != nil {
		return nil, err
	}

	return &detailResponse{
		Post:          resolved,
		PostTags:      postTags,
		Comments:      comments,
		CommentCount:  commentCount,
		CommentForm:   commentFormView{Values: formValues},
		SavedForLater: saved,
	}, nil
}

// fieldErrorMap flattens apperr field details into a field→messages map.
func fieldErrorMap(err error) map[string][]string {
	ae := apperr.As(err)
	if ae == nil {
		return nil
	}

	errs := make(map[string][]string, len(ae.Details))
	for _, detail := range ae.Details {
		errs[detail.Field] = append(errs[detail.Field], detail.Message)
	}
	return errs
}
