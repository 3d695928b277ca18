package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/thumbgallery/model"
	"github.com/thumbgallery/page"
)

// Service represents handler service.
type Service struct {
	repo        model.ThumbnailsRepository
	thumbPrefix string
}

// NewService returns new handler service. Thumbnail images are linked under
// thumbPrefix, which must end with a slash.
func NewService(repo model.ThumbnailsRepository, thumbPrefix string) *Service {
	return &Service{repo: repo, thumbPrefix: thumbPrefix}
}

// Page renders gallery of succeeded thumbnails.
func (s *Service) Page(w http.ResponseWriter, r *http.Request) {
	data, statusCode := func() ([]byte, int) {
		items, err := s.repo.OnlySucceeded(r.Context())
		if err != nil {
			return []byte(fmt.Sprintf("error getting thumbnails: %v", err)),
				http.StatusInternalServerError
		}
		paths := make([]string, 0, len(items))
		for _, item := range items {
			link := url.URL{Path: s.thumbPrefix + filepath.Base(item.ThumbPath)}
			paths = append(paths, link.EscapedPath())
		}
		buf := new(bytes.Buffer)
		if err := page.Render(buf, paths); err != nil {
			return []byte(fmt.Sprintf("error rendering page: %v", err)),
				http.StatusInternalServerError
		}
		return buf.Bytes(), http.StatusOK
	}()
	response(w, "text/html; charset=utf-8", data, statusCode)
}

// All returns all processing results.
func (s *Service) All(w http.ResponseWriter, r *http.Request) {
	data, statusCode := func() ([]byte, int) {
		items, err := s.repo.All(r.Context())
		if err != nil {
			return []byte(fmt.Sprintf("error getting thumbnails: %v", err)),
				http.StatusInternalServerError
		}
		return marshal(items)
	}()
	response(w, "application/json", data, statusCode)
}

// Failed returns only failed processing results.
func (s *Service) Failed(w http.ResponseWriter, r *http.Request) {
	data, statusCode := func() ([]byte, int) {
		items, err := s.repo.All(r.Context())
		if err != nil {
			return []byte(fmt.Sprintf("error getting thumbnails: %v", err)),
				http.StatusInternalServerError
		}
		failed := []model.ThumbnailResult{}
		for _, item := range items {
			if !item.OK {
				failed = append(failed, item)
			}
		}
		return marshal(failed)
	}()
	response(w, "application/json", data, statusCode)
}

func marshal(items []model.ThumbnailResult) ([]byte, int) {
	res, err := json.Marshal(items)
	if err != nil {
		return []byte(fmt.Sprintf("error during marshaling thumbnails: %v", err)),
			http.StatusInternalServerError
	}
	return res, http.StatusOK
}

func response(w http.ResponseWriter, contentType string, data []byte, statusCode int) {
	if statusCode != http.StatusOK {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Add("Content-Type", contentType)
	w.WriteHeader(statusCode)
	w.Write(data)
}
