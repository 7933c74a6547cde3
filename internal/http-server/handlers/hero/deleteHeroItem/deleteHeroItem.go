package deleteHeroItem

import (
	"log/slog"
	"net/http"
	"strconv"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HeroDeleter
type HeroDeleter interface {
	DeleteHeroItem(kind string, id int) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangePublisher
type ChangePublisher interface {
	TableChanged(table string)
}

func New(log *slog.Logger, hero HeroDeleter, feed ChangePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hero.deleteHeroItem.New"

		log = log.With(slog.String("op", op))

		kind := chi.URLParam(r, "kind")

		itemIDStr := chi.URLParam(r, "id")
		itemID, err := strconv.Atoi(itemIDStr)
		if err != nil {
			log.Error("invalid hero item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid hero item id format"))
			return
		}

		if err = hero.DeleteHeroItem(kind, itemID); err != nil {
			log.Error("failed to delete hero item", sl.Err(err))

			switch err.Error() {
			case "unknown hero kind":
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown hero kind"))
				return
			case "hero item not found":
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("hero item not found"))
				return
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete hero item"))
				return
			}
		}

		log.Info("hero item deleted", slog.String("kind", kind), slog.Int("id", itemID))

		feed.TableChanged("hero_" + kind)

		render.JSON(w, r, response.OK())
	}
}
