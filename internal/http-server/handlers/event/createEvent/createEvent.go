package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Date        string   `json:"event_date" validate:"required"`
	StartTime   string   `json:"start_time" validate:"required"`
	EndTime     string   `json:"end_time"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	Location    string   `json:"location"`
	Instructor  string   `json:"instructor"`
	ImageURL    string   `json:"image_url"`
	IsActive    bool     `json:"is_active"`
	IsFeatured  bool     `json:"is_featured"`
	Tags        []string `json:"tags"`
	Materials   []string `json:"materials"`
}

type EventResponse struct {
	response.Response
	EventID int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(e models.Event) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangePublisher
type ChangePublisher interface {
	TableChanged(table string)
}

func New(log *slog.Logger, event EventCreator, feed ChangePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

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

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			log.Error("invalid event date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event date format"))

			return
		}

		eventID, err := event.CreateEvent(models.Event{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Date:        date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Capacity:    req.Capacity,
			Price:       req.Price,
			Location:    req.Location,
			Instructor:  req.Instructor,
			ImageURL:    req.ImageURL,
			IsActive:    req.IsActive,
			IsFeatured:  req.IsFeatured,
			Tags:        req.Tags,
			Materials:   req.Materials,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", eventID))

		feed.TableChanged("events")

		responseOK(w, r, eventID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID int) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventID:  eventID,
	})
}
