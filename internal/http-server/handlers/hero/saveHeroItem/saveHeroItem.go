package saveHeroItem

import (
	"errors"
	"log/slog"
	"net/http"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type HeroItemRequest struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	AltText  string `json:"alt_text"`
	ImageURL string `json:"image_url" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
	Active   bool   `json:"active"`
}

type HeroItemResponse struct {
	response.Response
	ItemID int `json:"item_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HeroSaver
type HeroSaver interface {
	SaveHeroItem(kind string, item models.HeroItem) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangePublisher
type ChangePublisher interface {
	TableChanged(table string)
}

// New inserts or updates a hero item under /admin/hero/{kind}, where
// kind is news or carousel. A zero ID means insert.
func New(log *slog.Logger, hero HeroSaver, feed ChangePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hero.saveHeroItem.New"

		log = log.With(slog.String("op", op))

		kind := chi.URLParam(r, "kind")

		var req HeroItemRequest

		err := render.DecodeJSON(r.Body, &req)
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

		itemID, err := hero.SaveHeroItem(kind, models.HeroItem{
			ID:       req.ID,
			Title:    req.Title,
			AltText:  req.AltText,
			ImageURL: req.ImageURL,
			Position: req.Position,
			Active:   req.Active,
		})
		if err != nil {
			log.Error("failed to save hero item", sl.Err(err))

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
				render.JSON(w, r, response.Error("failed to save hero item"))
				return
			}
		}

		log.Info("hero item saved", slog.String("kind", kind), slog.Int("id", itemID))

		feed.TableChanged("hero_" + kind)

		render.JSON(w, r, HeroItemResponse{
			Response: response.OK(),
			ItemID:   itemID,
		})
	}
}
