package readlater

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hmtran/inkpost/internal/blog/post"
	"github.com/hmtran/inkpost/internal/platform/ctxutil"
	requestutil "github.com/hmtran/inkpost/internal/platform/request"
	"github.com/hmtran/inkpost/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the read-later routes at the router root.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/read-later", handler.list)
	router.Post("/read-later", handler.toggle)
}

type listResponse struct {
	Posts   []*post.Post `json:"posts"`
	HasPost bool         `json:"has_post"`
}

// list handles GET /read-later — the visitor's bookmarked posts in the
// order they were stored.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.SessionToken(request)

	posts, hasPost, err := handler.service.List(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Posts: posts, HasPost: hasPost})
}

// toggle handles POST /read-later.
//
// The body carries a post_id whose membership in the read-later list is
// flipped. The response is always a redirect to the landing page: unknown
// and malformed ids degrade silently rather than failing the request.
func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	token := requestutil.SessionToken(request)

	values, err := requestutil.FormValues(request)
	if err != nil {
		respond.Redirect(writer, request, "/")
		return
	}

	postID, err := strconv.ParseInt(values.Get("post_id"), 10, 64)
	if err != nil {
		ctxutil.GetLogger(request.Context()).Warn("read_later_bad_post_id_ignored")
		respond.Redirect(writer, request, "/")
		return
	}

	if err := handler.service.Toggle(request.Context(), token, postID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/")
}
