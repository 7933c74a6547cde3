package printTicket

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/bookingid"
	"topgreen/internal/lib/logger/sl"
	"topgreen/internal/lib/qr"
	"topgreen/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/phpdave11/gofpdf"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketSource
type TicketSource interface {
	GetBookingByCode(code string) (*models.Booking, error)
	GetEvent(id int) (*models.Event, error)
}

// New renders a printable PDF ticket with the embedded validation QR.
func New(log *slog.Logger, storage TicketSource, validationBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.printTicket.New"

		log = log.With(slog.String("op", op))

		code := chi.URLParam(r, "code")
		if !bookingid.IsValid(code) {
			log.Error("invalid confirmation code format", slog.String("code", code))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid confirmation code format"))
			return
		}

		booking, err := storage.GetBookingByCode(code)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			if err.Error() == "booking not found" {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to generate ticket"))
			return
		}

		event, err := storage.GetEvent(booking.EventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to generate ticket"))
			return
		}

		validationURL, err := qr.ValidationURL(validationBaseURL, qr.Payload{
			ConfirmationCode: booking.ConfirmationCode,
			CustomerName:     booking.CustomerName,
			CustomerEmail:    booking.CustomerEmail,
			EventID:          booking.EventID,
			Guests:           booking.Guests,
			IssuedAt:         booking.CreatedAt,
		})
		if err != nil {
			log.Error("failed to build validation url", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to generate ticket"))
			return
		}

		qrPNG, err := qr.Image(validationURL)
		if err != nil {
			log.Error("failed to render qr image", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to generate ticket"))
			return
		}

		validationCode, _ := bookingid.ValidationCode(code)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(40, 10, "Top of the Green - Booking Ticket")
		pdf.Ln(12)

		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 10, fmt.Sprintf("Event: %s", event.Title))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Name: %s", booking.CustomerName))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Session: %s %s", booking.SessionDate.Format("2006-01-02"), booking.SessionTime))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Guests: %d", booking.Guests))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Confirmation: %s", booking.ConfirmationCode))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Validation code: %s", validationCode))
		pdf.Ln(12)

		imageOpts := gofpdf.ImageOptions{ImageType: "png"}
		pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			log.Error("failed to generate pdf", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to generate ticket"))
			return
		}

		log.Info("ticket generated", slog.String("code", code))

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=ticket-"+validationCode+".pdf")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}
