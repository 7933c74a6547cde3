package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"topgreen/internal/http-server/handlers/booking/createBooking/mocks"
	"topgreen/internal/lib/bookingid"
	"topgreen/internal/lib/logger/handlers/slogdiscard"
	"topgreen/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://topofthegreen.com/validate-booking"

func activeEvent() *models.Event {
	return &models.Event{
		ID:       1,
		Title:    "Sunset Putting Clinic",
		Price:    25,
		Capacity: 20,
		IsActive: true,
	}
}

func validBody() string {
	return `{
		"customer_name": "Jamie Green",
		"customer_email": "jamie@example.com",
		"customer_phone": "+1 555 0101",
		"number_of_guests": 2,
		"session_date": "2025-11-04",
		"session_time": "15:30"
	}`
}

func newRouter(handler http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/events", func(r chi.Router) {
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/book", handler)
		})
	})
	return router
}

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     "1",
			requestBody: validBody(),
			mockSetup: func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {
				storage.On("GetEvent", 1).Return(activeEvent(), nil)
				storage.On("CreateBooking", mock.AnythingOfType("models.Booking")).Return(42, nil)
				notify.On("SendBookingConfirmation", mock.Anything, mock.AnythingOfType("notifier.BookingNotification")).Return(nil)
				feed.On("TableChanged", "bookings").Return()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, 42, resp.BookingID)
				assert.True(t, bookingid.IsValid(resp.ConfirmationCode))
				assert.Contains(t, resp.ConfirmationCode, resp.ValidationCode)
			},
		},
		{
			name:           "Missing event ID",
			eventID:        "",
			requestBody:    validBody(),
			mockSetup:      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"event id is required"}`,
		},
		{
			name:           "Invalid event ID format",
			eventID:        "invalid",
			requestBody:    validBody(),
			mockSetup:      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Invalid JSON",
			eventID:        "1",
			requestBody:    `invalid json`,
			mockSetup:      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:    "Missing email is rejected before any storage call",
			eventID: "1",
			requestBody: `{
				"customer_name": "Jamie Green",
				"customer_phone": "+1 555 0101",
				"number_of_guests": 2,
				"session_date": "2025-11-04"
			}`,
			mockSetup:      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "CustomerEmail")
			},
		},
		{
			name:    "Malformed email",
			eventID: "1",
			requestBody: `{
				"customer_name": "Jamie Green",
				"customer_email": "not-an-email",
				"customer_phone": "+1 555 0101",
				"number_of_guests": 2,
				"session_date": "2025-11-04"
			}`,
			mockSetup:      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "CustomerEmail is not a valid email")
			},
		},
		{
			name:    "Zero guests",
			eventID: "1",
			requestBody: `{
				"customer_name": "Jamie Green",
				"customer_email": "jamie@example.com",
				"customer_phone": "+1 555 0101",
				"number_of_guests": 0,
				"session_date": "2025-11-04"
			}`,
			mockSetup:      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Guests")
			},
		},
		{
			name:    "Invalid session date",
			eventID: "1",
			requestBody: `{
				"customer_name": "Jamie Green",
				"customer_email": "jamie@example.com",
				"customer_phone": "+1 555 0101",
				"number_of_guests": 2,
				"session_date": "04/11/2025"
			}`,
			mockSetup:      func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid session date format"}`,
		},
		{
			name:        "Event not found",
			eventID:     "99",
			requestBody: validBody(),
			mockSetup: func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {
				storage.On("GetEvent", 99).Return(nil, errors.New("event not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Inactive event",
			eventID:     "1",
			requestBody: validBody(),
			mockSetup: func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {
				ev := activeEvent()
				ev.IsActive = false
				storage.On("GetEvent", 1).Return(ev, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event is not open for booking"}`,
		},
		{
			name:        "No available seats",
			eventID:     "1",
			requestBody: validBody(),
			mockSetup: func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {
				storage.On("GetEvent", 1).Return(activeEvent(), nil)
				storage.On("CreateBooking", mock.AnythingOfType("models.Booking")).Return(0, errors.New("no available seats"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no available seats"}`,
		},
		{
			name:        "Persistence failure skips notification",
			eventID:     "1",
			requestBody: validBody(),
			mockSetup: func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {
				storage.On("GetEvent", 1).Return(activeEvent(), nil)
				storage.On("CreateBooking", mock.AnythingOfType("models.Booking")).Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to book event"}`,
		},
		{
			name:        "Notification failure still reports success",
			eventID:     "1",
			requestBody: validBody(),
			mockSetup: func(storage *mocks.BookingSaver, notify *mocks.Notifier, feed *mocks.ChangePublisher) {
				storage.On("GetEvent", 1).Return(activeEvent(), nil)
				storage.On("CreateBooking", mock.AnythingOfType("models.Booking")).Return(7, nil)
				notify.On("SendBookingConfirmation", mock.Anything, mock.AnythingOfType("notifier.BookingNotification")).
					Return(errors.New("notification endpoint returned status 502"))
				feed.On("TableChanged", "bookings").Return()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"booking_id":7`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			storageMock := mocks.NewBookingSaver(t)
			notifierMock := mocks.NewNotifier(t)
			feedMock := mocks.NewChangePublisher(t)
			tc.mockSetup(storageMock, notifierMock, feedMock)

			handler := New(logger, storageMock, notifierMock, feedMock, baseURL)

			url := "/events/" + tc.eventID + "/book"
			req, err := http.NewRequest("POST", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			newRouter(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestCreateBookingComputesTotalPrice(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	storageMock := mocks.NewBookingSaver(t)
	notifierMock := mocks.NewNotifier(t)
	feedMock := mocks.NewChangePublisher(t)

	storageMock.On("GetEvent", 1).Return(activeEvent(), nil)
	storageMock.On("CreateBooking", mock.MatchedBy(func(b models.Booking) bool {
		return b.TotalPrice == 50 &&
			b.Status == models.BookingStatusConfirmed &&
			b.Guests == 2 &&
			bookingid.IsValid(b.ConfirmationCode)
	})).Return(1, nil)
	notifierMock.On("SendBookingConfirmation", mock.Anything, mock.AnythingOfType("notifier.BookingNotification")).Return(nil)
	feedMock.On("TableChanged", "bookings").Return()

	handler := New(logger, storageMock, notifierMock, feedMock, baseURL)

	req, err := http.NewRequest("POST", "/events/1/book", bytes.NewBufferString(validBody()))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	newRouter(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
