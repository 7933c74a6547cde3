package validateBooking

import (
	"log/slog"
	"net/http"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/bookingid"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/models"

	"github.com/go-chi/render"
)

type ValidateResponse struct {
	response.Response
	Booking        *models.Booking `json:"booking"`
	ValidationCode string          `json:"validation_code"`
	IssuedOn       string          `json:"issued_on"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	GetBookingByCode(code string) (*models.Booking, error)
}

// New resolves a confirmation code at the venue door: shape check first,
// lookup second.
func New(log *slog.Logger, bookings BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.validateBooking.New"

		log = log.With(slog.String("op", op))

		code := r.URL.Query().Get("code")
		if code == "" {
			log.Error("confirmation code is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("confirmation code is required"))
			return
		}

		if !bookingid.IsValid(code) {
			log.Error("invalid confirmation code format", slog.String("code", code))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid confirmation code format"))
			return
		}

		booking, err := bookings.GetBookingByCode(code)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if err.Error() == "booking not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to validate booking"))
			return
		}

		validationCode, _ := bookingid.ValidationCode(code)

		var issuedOn string
		if d, ok := bookingid.Date(code); ok {
			issuedOn = d.Format("2006-01-02")
		}

		log.Info("booking validated", slog.String("code", code), slog.String("status", booking.Status))

		render.JSON(w, r, ValidateResponse{
			Response:       response.OK(),
			Booking:        booking,
			ValidationCode: validationCode,
			IssuedOn:       issuedOn,
		})
	}
}
