package createPost_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"topgreen/internal/http-server/handlers/blog/createPost"
	"topgreen/internal/http-server/handlers/blog/createPost/mocks"
	"topgreen/internal/lib/logger/handlers/slogdiscard"
	"topgreen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePostHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(posts *mocks.PostCreator, feed *mocks.ChangePublisher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success with gallery",
			requestBody: `{
				"title": "Spring Course Report",
				"content": "Greens are rolling true again.",
				"cover_image_url": "/uploads/blog/cover.jpg",
				"published": true,
				"images": ["/uploads/blog/one.jpg", "/uploads/blog/two.jpg"]
			}`,
			mockSetup: func(posts *mocks.PostCreator, feed *mocks.ChangePublisher) {
				posts.On("CreatePost",
					mock.MatchedBy(func(p models.BlogPost) bool {
						return p.Title == "Spring Course Report" && p.Published
					}),
					[]string{"/uploads/blog/one.jpg", "/uploads/blog/two.jpg"},
				).Return(3, nil).Once()
				feed.On("TableChanged", "blog_posts").Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"post_id":3`,
		},
		{
			name:        "Draft without images",
			requestBody: `{"title": "Notes from the range", "published": false}`,
			mockSetup: func(posts *mocks.PostCreator, feed *mocks.ChangePublisher) {
				posts.On("CreatePost",
					mock.MatchedBy(func(p models.BlogPost) bool {
						return p.Title == "Notes from the range" && !p.Published
					}),
					mock.Anything,
				).Return(4, nil).Once()
				feed.On("TableChanged", "blog_posts").Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"post_id":4`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"content": "orphan body"}`,
			mockSetup:      func(posts *mocks.PostCreator, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Title is a required field",
		},
		{
			name:        "Storage failure",
			requestBody: `{"title": "Spring Course Report"}`,
			mockSetup: func(posts *mocks.PostCreator, feed *mocks.ChangePublisher) {
				posts.On("CreatePost", mock.AnythingOfType("models.BlogPost"), mock.Anything).
					Return(0, errors.New("unexpected error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to create post",
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{{`,
			mockSetup:      func(posts *mocks.PostCreator, feed *mocks.ChangePublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "failed to decode request",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			postsMock := mocks.NewPostCreator(t)
			feedMock := mocks.NewChangePublisher(t)
			tc.mockSetup(postsMock, feedMock)

			handler := createPost.New(logger, postsMock, feedMock)

			req, err := http.NewRequest("POST", "/admin/blog", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}
