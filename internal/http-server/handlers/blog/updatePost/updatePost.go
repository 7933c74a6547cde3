package updatePost

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type PostRequest struct {
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content"`
	CoverImageURL string   `json:"cover_image_url"`
	Published     bool     `json:"published"`
	Images        []string `json:"images"`
}

type PostResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostUpdater
type PostUpdater interface {
	UpdatePost(p models.BlogPost, imageURLs []string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangePublisher
type ChangePublisher interface {
	TableChanged(table string)
}

func New(log *slog.Logger, posts PostUpdater, feed ChangePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.updatePost.New"

		log = log.With(slog.String("op", op))

		postIDStr := chi.URLParam(r, "id")
		if postIDStr == "" {
			log.Error("post id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("post id is required"))
			return
		}

		postID, err := strconv.Atoi(postIDStr)
		if err != nil {
			log.Error("invalid post id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid post id format"))
			return
		}

		log = log.With(slog.Int("post_id", postID))

		var req PostRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = posts.UpdatePost(models.BlogPost{
			ID:            postID,
			Title:         req.Title,
			Content:       req.Content,
			CoverImageURL: req.CoverImageURL,
			Published:     req.Published,
		}, req.Images)
		if err != nil {
			log.Error("failed to update post", sl.Err(err))

			if err.Error() == "post not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update post"))
			return
		}

		log.Info("post updated")

		feed.TableChanged("blog_posts")

		render.JSON(w, r, PostResponse{Response: response.OK()})
	}
}
