package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/paperboy/internal/platform/constants"
	requestutil "github.com/taibuivan/paperboy/internal/platform/request"
	"github.com/taibuivan/paperboy/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Patch("/{comment_id}", handler.patchVotes)
	router.Delete("/{comment_id}", handler.deleteComment)

	return router
}

func (handler *Handler) patchVotes(writer http.ResponseWriter, request *http.Request) {
	commentID, _, err := requestutil.NumericID(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	delta, err := requestutil.DecodeIncVotes(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.UpdateVotes(request.Context(), commentID, delta)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldComment: comment})
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, _, err := requestutil.NumericID(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
