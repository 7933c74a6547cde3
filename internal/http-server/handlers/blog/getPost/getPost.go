package getPost

import (
	"log/slog"
	"net/http"
	"strconv"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type PostResponse struct {
	response.Response
	Post   *models.BlogPost       `json:"post"`
	Images []models.BlogPostImage `json:"images"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostGetter
type PostGetter interface {
	GetPost(id int) (*models.BlogPost, []models.BlogPostImage, error)
}

// New returns a single post with its ordered gallery. With publishedOnly
// set, drafts look like missing posts to the public.
func New(log *slog.Logger, posts PostGetter, publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.getPost.New"

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

		post, images, err := posts.GetPost(postID)
		if err != nil {
			log.Error("failed to get post", sl.Err(err))

			if err.Error() == "post not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get post"))
			return
		}

		if publishedOnly && !post.Published {
			log.Info("unpublished post requested")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("post not found"))
			return
		}

		log.Info("post retrieved successfully")

		render.JSON(w, r, PostResponse{
			Response: response.OK(),
			Post:     post,
			Images:   images,
		})
	}
}
