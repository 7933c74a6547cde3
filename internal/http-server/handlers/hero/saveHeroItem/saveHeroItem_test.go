package saveHeroItem_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"topgreen/internal/http-server/handlers/hero/saveHeroItem"
	"topgreen/internal/http-server/handlers/hero/saveHeroItem/mocks"
	"topgreen/internal/lib/logger/handlers/slogdiscard"
	"topgreen/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveHeroItemHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		kind           string
		requestBody    string
		mockSetup      func(saver *mocks.HeroSaver, feed *mocks.ChangePublisher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Insert news item",
			kind: "news",
			requestBody: `{
				"title": "Clubhouse reopens",
				"alt_text": "Clubhouse front entrance",
				"image_url": "/uploads/hero-news/front.jpg",
				"position": 1,
				"active": true
			}`,
			mockSetup: func(saver *mocks.HeroSaver, feed *mocks.ChangePublisher) {
				saver.On("SaveHeroItem", "news", mock.MatchedBy(func(item models.HeroItem) bool {
					return item.ID == 0 && item.ImageURL == "/uploads/hero-news/front.jpg" && item.Active
				})).Return(11, nil).Once()
				feed.On("TableChanged", "hero_news").Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"item_id":11`,
		},
		{
			name:        "Update carousel item",
			kind:        "carousel",
			requestBody: `{"id": 4, "image_url": "/uploads/hero-carousel/18th.jpg", "position": 2}`,
			mockSetup: func(saver *mocks.HeroSaver, feed *mocks.ChangePublisher) {
				saver.On("SaveHeroItem", "carousel", mock.MatchedBy(func(item models.HeroItem) bool {
					return item.ID == 4 && item.Position == 2
				})).Return(4, nil).Once()
				feed.On("TableChanged", "hero_carousel").Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"item_id":4`,
		},
		{
			name:           "Missing image URL",
			kind:           "news",
			requestBody:    `{"title": "No picture"}`,
			mockSetup:      func(saver *mocks.HeroSaver, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field ImageURL is a required field",
		},
		{
			name:           "Negative position",
			kind:           "news",
			requestBody:    `{"image_url": "/uploads/hero-news/a.jpg", "position": -1}`,
			mockSetup:      func(saver *mocks.HeroSaver, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Position is below the allowed minimum",
		},
		{
			name:        "Unknown kind",
			kind:        "banner",
			requestBody: `{"image_url": "/uploads/hero-news/a.jpg"}`,
			mockSetup: func(saver *mocks.HeroSaver, feed *mocks.ChangePublisher) {
				saver.On("SaveHeroItem", "banner", mock.AnythingOfType("models.HeroItem")).
					Return(0, errors.New("unknown hero kind")).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "unknown hero kind",
		},
		{
			name:        "Item not found",
			kind:        "news",
			requestBody: `{"id": 99, "image_url": "/uploads/hero-news/a.jpg"}`,
			mockSetup: func(saver *mocks.HeroSaver, feed *mocks.ChangePublisher) {
				saver.On("SaveHeroItem", "news", mock.AnythingOfType("models.HeroItem")).
					Return(0, errors.New("hero item not found")).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "hero item not found",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			saverMock := mocks.NewHeroSaver(t)
			feedMock := mocks.NewChangePublisher(t)
			tc.mockSetup(saverMock, feedMock)

			router := chi.NewRouter()
			router.Post("/admin/hero/{kind}", saveHeroItem.New(logger, saverMock, feedMock))

			req, err := http.NewRequest("POST", "/admin/hero/"+tc.kind, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}
