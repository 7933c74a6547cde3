package deletePost

import (
	"log/slog"
	"net/http"
	"strconv"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostDeleter
type PostDeleter interface {
	DeletePost(id int) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangePublisher
type ChangePublisher interface {
	TableChanged(table string)
}

func New(log *slog.Logger, posts PostDeleter, feed ChangePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.deletePost.New"

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

		if err = posts.DeletePost(postID); err != nil {
			log.Error("failed to delete post", sl.Err(err))

			if err.Error() == "post not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("post not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete post"))
			return
		}

		log.Info("post deleted", slog.Int("post_id", postID))

		feed.TableChanged("blog_posts")

		render.JSON(w, r, response.OK())
	}
}
