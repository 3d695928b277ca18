package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/thumbgallery/model"
	"github.com/thumbgallery/web/downloader"
)

// Service describes catalog fetcher interface.
type Service interface {
	Fetch(context.Context, string) ([]string, error)
}

type impl struct {
	downloader downloader.Service
}

// New returns catalog fetcher using downloader.
func New(downloader downloader.Service) Service {
	return &impl{downloader: downloader}
}

// Fetch downloads the catalog and returns its image urls in order.
func (s *impl) Fetch(ctx context.Context, sourceURL string) ([]string, error) {
	b, err := s.downloader.Download(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCatalogFetchFailed, err)
	}
	return Parse(b), nil
}

// Parse splits catalog content into lines, whatever line ending is used,
// and drops blank ones.
func Parse(b []byte) []string {
	lines := strings.FieldsFunc(string(b), func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}
