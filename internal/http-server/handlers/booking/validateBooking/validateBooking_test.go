package validateBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"topgreen/internal/http-server/handlers/booking/validateBooking/mocks"
	"topgreen/internal/lib/logger/handlers/slogdiscard"
	"topgreen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(getter *mocks.BookingGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Valid confirmed booking",
			query: "?code=TG-20251104-153045-0192",
			mockSetup: func(getter *mocks.BookingGetter) {
				getter.On("GetBookingByCode", "TG-20251104-153045-0192").Return(&models.Booking{
					ID:               1,
					ConfirmationCode: "TG-20251104-153045-0192",
					CustomerName:     "Jamie Green",
					Status:           models.BookingStatusConfirmed,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"validation_code":"153045-0192"`)
				assert.Contains(t, body, `"issued_on":"2025-11-04"`)
			},
		},
		{
			name:           "Missing code",
			query:          "",
			mockSetup:      func(getter *mocks.BookingGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"confirmation code is required"}`,
		},
		{
			name:           "Malformed code",
			query:          "?code=TG-2025-99",
			mockSetup:      func(getter *mocks.BookingGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid confirmation code format"}`,
		},
		{
			name:  "Unknown code",
			query: "?code=TG-20251104-153045-0192",
			mockSetup: func(getter *mocks.BookingGetter) {
				getter.On("GetBookingByCode", "TG-20251104-153045-0192").Return(nil, errors.New("booking not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:  "Storage failure",
			query: "?code=TG-20251104-153045-0192",
			mockSetup: func(getter *mocks.BookingGetter) {
				getter.On("GetBookingByCode", "TG-20251104-153045-0192").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to validate booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getterMock := mocks.NewBookingGetter(t)
			tc.mockSetup(getterMock)

			handler := New(logger, getterMock)

			req, err := http.NewRequest("GET", "/bookings/validate"+tc.query, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
