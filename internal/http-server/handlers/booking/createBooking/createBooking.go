package createBooking

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/bookingid"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/lib/qr"
	"topgreen/internal/models"
	"topgreen/internal/notifier"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	CustomerName   string `json:"customer_name" validate:"required"`
	CustomerEmail  string `json:"customer_email" validate:"required,email"`
	CustomerPhone  string `json:"customer_phone" validate:"required"`
	Guests         int    `json:"number_of_guests" validate:"required,min=1"`
	SessionDate    string `json:"session_date" validate:"required"`
	SessionTime    string `json:"session_time"`
	SpecialRequest string `json:"special_request"`
}

type BookingResponse struct {
	response.Response
	BookingID        int    `json:"booking_id"`
	ConfirmationCode string `json:"confirmation_code"`
	ValidationCode   string `json:"validation_code"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	GetEvent(id int) (*models.Event, error)
	CreateBooking(b models.Booking) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, n notifier.BookingNotification) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ChangePublisher
type ChangePublisher interface {
	TableChanged(table string)
}

// New runs the booking submission flow: validate, generate a
// confirmation code, persist, then notify. The booking succeeds once the
// insert commits; notification and QR rendering are best-effort.
func New(log *slog.Logger, storage BookingSaver, notify Notifier, feed ChangePublisher, validationBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIDStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req BookingRequest

		err = render.DecodeJSON(r.Body, &req)
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

		sessionDate, err := time.Parse("2006-01-02", req.SessionDate)
		if err != nil {
			log.Error("invalid session date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid session date format"))
			return
		}

		event, err := storage.GetEvent(eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))

			if err.Error() == "event not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to book event"))
			return
		}

		if !event.IsActive {
			log.Error("event is not open for booking")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("event is not open for booking"))
			return
		}

		code := bookingid.Generate()
		validationCode, _ := bookingid.ValidationCode(code)

		bookingID, err := storage.CreateBooking(models.Booking{
			ConfirmationCode: code,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			EventID:          eventID,
			SessionDate:      sessionDate,
			SessionTime:      req.SessionTime,
			Guests:           req.Guests,
			SpecialRequest:   req.SpecialRequest,
			TotalPrice:       event.Price * float64(req.Guests),
			Status:           models.BookingStatusConfirmed,
		})
		if err != nil {
			log.Error("failed to book event", sl.Err(err))

			switch err.Error() {
			case "no available seats":
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available seats"))
				return
			case "event not found":
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book event"))
				return
			}
		}

		log.Info("event booked successfully",
			slog.Int("booking_id", bookingID),
			slog.String("confirmation_code", code),
		)

		// QR rendering failure does not fail the booking.
		var qrBase64 string
		if validationURL, err := qr.ValidationURL(validationBaseURL, qr.Payload{
			ConfirmationCode: code,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			EventID:          eventID,
			Guests:           req.Guests,
			IssuedAt:         time.Now().UTC(),
		}); err != nil {
			log.Error("failed to build validation url", sl.Err(err))
		} else if png, err := qr.Image(validationURL); err != nil {
			log.Error("failed to render qr image", sl.Err(err))
		} else {
			qrBase64 = base64.StdEncoding.EncodeToString(png)
		}

		// Notification is decoupled from persistence: a transient outage
		// must not lose the reservation.
		err = notify.SendBookingConfirmation(r.Context(), notifier.BookingNotification{
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			EventTitle:       event.Title,
			EventID:          eventID,
			SessionDate:      req.SessionDate,
			SessionTime:      req.SessionTime,
			Guests:           req.Guests,
			TotalPrice:       event.Price * float64(req.Guests),
			ConfirmationCode: code,
			ValidationCode:   validationCode,
			QRImageBase64:    qrBase64,
		})
		if err != nil {
			log.Error("failed to send booking notification", sl.Err(err))
		}

		feed.TableChanged("bookings")

		responseOK(w, r, bookingID, code, validationCode)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookingID int, code, validationCode string) {
	render.JSON(w, r, BookingResponse{
		Response:         response.OK(),
		BookingID:        bookingID,
		ConfirmationCode: code,
		ValidationCode:   validationCode,
	})
}
