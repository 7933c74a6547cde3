package uploadImage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"topgreen/internal/filestore"
	"topgreen/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newRouter(handler http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/admin/uploads/{bucket}", handler)
	return router
}

func TestUploadImageHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	store := filestore.New(t.TempDir(), "/uploads", 1<<20)
	handler := New(logger, store)

	body, contentType := multipartBody(t, "clubhouse.png", "image/png", testPNG(t))

	req, err := http.NewRequest("POST", "/admin/uploads/events", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	rr := httptest.NewRecorder()
	newRouter(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"OK"`)
	assert.Contains(t, rr.Body.String(), "/uploads/events/")
}

func TestUploadImageRejections(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bucket         string
		filename       string
		contentType    string
		maxBytes       int64
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Unknown bucket",
			bucket:         "avatars",
			filename:       "a.png",
			contentType:    "image/png",
			maxBytes:       1 << 20,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid bucket",
		},
		{
			name:           "Wrong file type",
			bucket:         "blog",
			filename:       "doc.pdf",
			contentType:    "application/pdf",
			maxBytes:       1 << 20,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid file extension",
		},
		{
			name:           "Over size limit",
			bucket:         "blog",
			filename:       "big.png",
			contentType:    "image/png",
			maxBytes:       16,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedError:  "file size exceeds limit",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := filestore.New(t.TempDir(), "/uploads", tc.maxBytes)
			handler := New(logger, store)

			body, contentType := multipartBody(t, tc.filename, tc.contentType, testPNG(t))

			req, err := http.NewRequest("POST", "/admin/uploads/"+tc.bucket, body)
			require.NoError(t, err)
			req.Header.Set("Content-Type", contentType)

			rr := httptest.NewRecorder()
			newRouter(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedError)
		})
	}
}

func TestUploadImageMissingFile(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	store := filestore.New(t.TempDir(), "/uploads", 1<<20)
	handler := New(logger, store)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", "/admin/uploads/events", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	newRouter(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "image file is required")
}
