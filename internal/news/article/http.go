package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/paperboy/internal/platform/constants"
	"github.com/taibuivan/paperboy/internal/platform/listquery"
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

	router.Get("/", handler.listArticles)
	router.Post("/", handler.createArticle)

	router.Get("/{article_id}", handler.getArticle)
	router.Patch("/{article_id}", handler.patchVotes)
	router.Delete("/{article_id}", handler.deleteArticle)

	router.Get("/{article_id}/comments", handler.listComments)
	router.Post("/{article_id}/comments", handler.postComment)

	return router
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	options, err := listquery.Parse(request.URL.Query(), ListRules)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Topic: request.URL.Query().Get("topic"),
	}

	articles, total, err := handler.service.List(request.Context(), filter, options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, respond.Envelope{
		constants.FieldArticles:   articles,
		constants.FieldTotalCount: total,
	})
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, _, err := requestutil.NumericID(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Get(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldArticle: article})
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input NewArticle
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Envelope{constants.FieldArticle: article})
}

func (handler *Handler) patchVotes(writer http.ResponseWriter, request *http.Request) {
	articleID, _, err := requestutil.NumericID(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	delta, err := requestutil.DecodeIncVotes(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.UpdateVotes(request.Context(), articleID, delta)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldArticle: article})
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, _, err := requestutil.NumericID(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), articleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	articleID, _, err := requestutil.NumericID(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	options, err := listquery.Parse(request.URL.Query(), CommentListRules)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListComments(request.Context(), articleID, options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldComments: comments})
}

func (handler *Handler) postComment(writer http.ResponseWriter, request *http.Request) {
	articleID, _, err := requestutil.NumericID(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input NewComment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.AddComment(request.Context(), articleID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Envelope{constants.FieldComment: comment})
}
