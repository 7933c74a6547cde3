package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Buckets mirror the content types of the site: one directory per kind of
// image.
const (
	BucketEvents       = "events"
	BucketBlog         = "blog"
	BucketHeroNews     = "hero-news"
	BucketHeroCarousel = "hero-carousel"
)

var (
	ErrInvalidBucket    = errors.New("invalid bucket")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

const (
	thumbWidth  = 320
	thumbHeight = 240
)

// ValidBucket reports whether name is one of the known upload buckets.
func ValidBucket(name string) bool {
	switch name {
	case BucketEvents, BucketBlog, BucketHeroNews, BucketHeroCarousel:
		return true
	}
	return false
}

// Store writes uploaded images under a per-bucket directory and serves
// them back through a public base URL.
type Store struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func New(dir, baseURL string, maxBytes int64) *Store {
	return &Store{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}
}

type SavedImage struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// SaveImage validates the upload before any write: bucket, extension,
// MIME type and size. On success the file lands under
// <dir>/<bucket>/<uuid><ext> and a thumbnail is derived next to it.
// Thumbnail failure is not fatal; the saved image stands on its own.
func (s *Store) SaveImage(bucket, filename, contentType string, size int64, r io.Reader) (*SavedImage, error) {
	if !ValidBucket(bucket) {
		return nil, ErrInvalidBucket
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, ErrInvalidExtension
	}

	if !allowedMIMEs[strings.ToLower(contentType)] {
		return nil, ErrInvalidMIME
	}

	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	dir := filepath.Join(s.dir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bucket dir: %w", err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	var src io.Reader = r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}

	if _, err = io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	saved := &SavedImage{
		URL: s.baseURL + path.Join("/", bucket, name),
	}

	if thumb, err := s.makeThumbnail(dst, dir, name); err == nil {
		saved.ThumbnailURL = s.baseURL + path.Join("/", bucket, thumb)
	}

	return saved, nil
}

func (s *Store) makeThumbnail(src, dir, name string) (string, error) {
	img, err := imaging.Open(src)
	if err != nil {
		return "", err
	}

	thumb := imaging.Thumbnail(img, thumbWidth, thumbHeight, imaging.Lanczos)

	thumbName := "thumb_" + strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	if err = imaging.Save(thumb, filepath.Join(dir, thumbName)); err != nil {
		return "", err
	}

	return thumbName, nil
}
