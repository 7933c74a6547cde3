package createPost

import (
	"errors"
	"log/slog"
	"net/http"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"

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
	PostID int `json:"post_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostCreator
type PostCreator interface {
	CreatePost(p models.BlogPost, imageURLs []string) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangePublisher
type ChangePublisher interface {
	TableChanged(table string)
}

func New(log *slog.Logger, posts PostCreator, feed ChangePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.createPost.New"

		log = log.With(slog.String("op", op))

		var req PostRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		postID, err := posts.CreatePost(models.BlogPost{
			Title:         req.Title,
			Content:       req.Content,
			CoverImageURL: req.CoverImageURL,
			Published:     req.Published,
		}, req.Images)
		if err != nil {
			log.Error("failed to create post", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create post"))
			return
		}

		log.Info("post created", slog.Int("id", postID))

		feed.TableChanged("blog_posts")

		render.JSON(w, r, PostResponse{
			Response: response.OK(),
			PostID:   postID,
		})
	}
}
