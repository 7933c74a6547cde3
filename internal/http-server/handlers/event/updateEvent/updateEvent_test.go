package updateEvent_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"topgreen/internal/http-server/handlers/event/updateEvent"
	"topgreen/internal/http-server/handlers/event/updateEvent/mocks"
	"topgreen/internal/lib/logger/handlers/slogdiscard"
	"topgreen/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(updater *mocks.EventUpdater, feed *mocks.ChangePublisher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "5",
			requestBody: `{
				"title": "Short Game Clinic",
				"event_date": "2026-10-03",
				"start_time": "10:00",
				"capacity": 12,
				"is_active": true
			}`,
			mockSetup: func(updater *mocks.EventUpdater, feed *mocks.ChangePublisher) {
				updater.On("UpdateEvent", mock.MatchedBy(func(e models.Event) bool {
					return e.ID == 5 &&
						e.Title == "Short Game Clinic" &&
						e.Date.Equal(time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC))
				})).Return(nil).Once()
				feed.On("TableChanged", "events").Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "Missing title",
			eventID:        "5",
			requestBody:    `{"event_date": "2026-10-03", "start_time": "10:00"}`,
			mockSetup:      func(updater *mocks.EventUpdater, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Title is a required field",
		},
		{
			name:           "Negative capacity",
			eventID:        "5",
			requestBody:    `{"title": "Clinic", "event_date": "2026-10-03", "start_time": "10:00", "capacity": -1}`,
			mockSetup:      func(updater *mocks.EventUpdater, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Capacity is below the allowed minimum",
		},
		{
			name:           "Invalid event ID format",
			eventID:        "abc",
			requestBody:    `{"title": "Clinic", "event_date": "2026-10-03", "start_time": "10:00"}`,
			mockSetup:      func(updater *mocks.EventUpdater, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid event id format",
		},
		{
			name:        "Event not found",
			eventID:     "99",
			requestBody: `{"title": "Clinic", "event_date": "2026-10-03", "start_time": "10:00"}`,
			mockSetup: func(updater *mocks.EventUpdater, feed *mocks.ChangePublisher) {
				updater.On("UpdateEvent", mock.AnythingOfType("models.Event")).
					Return(errors.New("event not found")).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "event not found",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updaterMock := mocks.NewEventUpdater(t)
			feedMock := mocks.NewChangePublisher(t)
			tc.mockSetup(updaterMock, feedMock)

			router := chi.NewRouter()
			router.Put("/admin/events/{id}", updateEvent.New(logger, updaterMock, feedMock))

			req, err := http.NewRequest("PUT", "/admin/events/"+tc.eventID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}
