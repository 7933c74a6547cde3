package getAllPosts

import (
	"log/slog"
	"net/http"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"

	"github.com/go-chi/render"
)

type PostsResponse struct {
	response.Response
	Posts []models.BlogPost `json:"posts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PostsGetter
type PostsGetter interface {
	GetAllPosts(publishedOnly bool) ([]models.BlogPost, error)
}

// New lists blog posts. The public route passes publishedOnly=true; the
// admin route sees drafts too.
func New(log *slog.Logger, posts PostsGetter, publishedOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.getAllPosts.New"

		log = log.With(slog.String("op", op))

		list, err := posts.GetAllPosts(publishedOnly)
		if err != nil {
			log.Error("failed to get posts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get posts"))
			return
		}

		log.Info("posts retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, PostsResponse{
			Response: response.OK(),
			Posts:    list,
		})
	}
}
