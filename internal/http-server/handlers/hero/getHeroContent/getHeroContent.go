package getHeroContent

import (
	"log/slog"
	"net/http"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"
	"topgreen/internal/storage/postgres"

	"github.com/go-chi/render"
)

type HeroResponse struct {
	response.Response
	News     []models.HeroItem `json:"news"`
	Carousel []models.HeroItem `json:"carousel"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HeroGetter
type HeroGetter interface {
	GetHeroItems(kind string, activeOnly bool) ([]models.HeroItem, error)
}

// New returns the homepage promotional blocks, ordered by position. The
// public route passes activeOnly=true.
func New(log *slog.Logger, hero HeroGetter, activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hero.getHeroContent.New"

		log = log.With(slog.String("op", op))

		news, err := hero.GetHeroItems(postgres.HeroKindNews, activeOnly)
		if err != nil {
			log.Error("failed to get hero news", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get hero content"))
			return
		}

		carousel, err := hero.GetHeroItems(postgres.HeroKindCarousel, activeOnly)
		if err != nil {
			log.Error("failed to get hero carousel", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get hero content"))
			return
		}

		log.Info("hero content retrieved successfully",
			slog.Int("news", len(news)),
			slog.Int("carousel", len(carousel)),
		)

		render.JSON(w, r, HeroResponse{
			Response: response.OK(),
			News:     news,
			Carousel: carousel,
		})
	}
}
