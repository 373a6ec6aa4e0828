/*
Package admin exposes the content-management API.

Posts, tags, and authors enter the system here, and comments are removed
here; nothing on the public surface mutates those tables. Every route
except login requires an admin JWT issued by this package.
*/
package admin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hmtran/inkpost/internal/blog/author"
	"github.com/hmtran/inkpost/internal/blog/comment"
	"github.com/hmtran/inkpost/internal/blog/post"
	"github.com/hmtran/inkpost/internal/blog/tag"
	"github.com/hmtran/inkpost/internal/platform/apperr"
	"github.com/hmtran/inkpost/internal/platform/constants"
	"github.com/hmtran/inkpost/internal/platform/middleware"
	requestutil "github.com/hmtran/inkpost/internal/platform/request"
	"github.com/hmtran/inkpost/internal/platform/respond"
	"github.com/hmtran/inkpost/internal/platform/sec"
)

// Credentials holds the single administrative account, loaded from the
// environment. PasswordHash is bcrypt, never the plain password.
type Credentials struct {
	Username     string
	PasswordHash string
}

type Handler struct {
	tokens      *sec.TokenService
	credentials Credentials
	posts       *post.Service
	tags        *tag.Service
	authors     *author.Service
	comments    *comment.Service
}

func NewHandler(
	tokens *sec.TokenService,
	credentials Credentials,
	posts *post.Service,
	tags *tag.Service,
	authors *author.Service,
	comments *comment.Service,
) *Handler {
	return &Handler{
		tokens:      tokens,
		credentials: credentials,
		posts:       posts,
		tags:        tags,
		authors:     authors,
		comments:    comments,
	}
}

// Routes returns the admin router, mounted under /api/admin.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoint
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/posts", handler.createPost)
		r.Delete("/posts/{slug}", handler.deletePost)
		r.Get("/tags", handler.listTags)
		r.Post("/tags", handler.createTag)
		r.Get("/authors", handler.listAuthors)
		r.Post("/authors", handler.createAuthor)
		r.Delete("/comments/{id}", handler.deleteComment)
	})

	return router
}

// # Authentication

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// login handles POST /api/admin/login.
//
// The bcrypt comparison runs even for unknown usernames so that the
// response time does not reveal whether the username matched.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	passwordOK := sec.CheckPasswordHash(payload.Password, handler.credentials.PasswordHash)
	if payload.Username != handler.credentials.Username || !passwordOK {
		respond.Error(writer, request, apperr.Unauthorized("Invalid credentials"))
		return
	}

	token, err := handler.tokens.GenerateAccessToken(payload.Username, constants.AdminRole, constants.AdminTokenTTL)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.OK(writer, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(constants.AdminTokenTTL.Seconds()),
	})
}

// # Content Management

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input post.CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.posts.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	if err := handler.posts.Delete(request.Context(), slug); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.tags.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

type createTagRequest struct {
	Caption string `json:"caption"`
}

func (handler *Handler) createTag(writer http.ResponseWriter, request *http.Request) {
	var payload createTagRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.tags.Create(request.Context(), payload.Caption)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.authors.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input author.CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.authors.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := strconv.ParseInt(requestutil.Param(request, "id"), 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid comment id"))
		return
	}

	if err := handler.comments.Delete(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
