package uploadImage

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"topgreen/internal/filestore"
	"topgreen/internal/lib/api/response"
	"topgreen/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const maxMemory = 10 << 20

type UploadResponse struct {
	response.Response
	Image *filestore.SavedImage `json:"image"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageSaver
type ImageSaver interface {
	SaveImage(bucket, filename, contentType string, size int64, r io.Reader) (*filestore.SavedImage, error)
}

// New accepts a multipart image upload for one of the content buckets
// and responds with its public URL.
func New(log *slog.Logger, store ImageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.uploadImage.New"

		log = log.With(slog.String("op", op))

		bucket := chi.URLParam(r, "bucket")

		if err := r.ParseMultipartForm(maxMemory); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse upload"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			log.Error("image file is required", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("image file is required"))
			return
		}
		defer file.Close()

		saved, err := store.SaveImage(bucket, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			log.Error("failed to save image", sl.Err(err))

			switch {
			case errors.Is(err, filestore.ErrInvalidBucket),
				errors.Is(err, filestore.ErrInvalidExtension),
				errors.Is(err, filestore.ErrInvalidMIME):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			case errors.Is(err, filestore.ErrFileTooLarge):
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, response.Error(err.Error()))
				return
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to save image"))
				return
			}
		}

		log.Info("image uploaded",
			slog.String("bucket", bucket),
			slog.String("url", saved.URL),
		)

		render.JSON(w, r, UploadResponse{
			Response: response.OK(),
			Image:    saved,
		})
	}
}
