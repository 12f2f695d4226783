package topic

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

	router.Get("/", handler.listTopics)
	router.Post("/", handler.createTopic)

	return router
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldTopics: topics})
}

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var input Topic
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Envelope{constants.FieldTopic: input})
}
