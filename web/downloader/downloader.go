package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single download including reading the body.
const DefaultTimeout = 30 * time.Second

// Service describes downloader interface.
type Service interface {
	Download(context.Context, string) ([]byte, error)
}

type impl struct {
	client *http.Client
}

// New returns downloader implementation with the given timeout.
// Zero timeout means DefaultTimeout.
func New(timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &impl{client: &http.Client{Timeout: timeout}}
}

// Download downloads file and returns whole response body.
func (s *impl) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s failed with error: %w", url, err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading %s, status code is: %d", url, res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body for: %s failed with error: %w", url, err)
	}

	return b, nil
}
