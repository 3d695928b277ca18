package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thumbgallery/model"
	"github.com/thumbgallery/web/downloader"
)

// Reason tells which step of caching failed.
type Reason int

// Caching failure reasons.
const (
	ReasonFetch Reason = iota + 1
	ReasonEmptyBody
	ReasonWrite
)

func (r Reason) String() string {
	switch r {
	case ReasonFetch:
		return "fetch failed"
	case ReasonEmptyBody:
		return "empty body"
	case ReasonWrite:
		return "write failed"
	}
	return "unknown"
}

// Error is returned by EnsureCached. It matches model.ErrCacheWriteFailure.
type Error struct {
	Reason Reason
	URL    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unable to cache %s: %s", e.URL, e.Reason)
	}
	return fmt.Sprintf("unable to cache %s: %s: %v", e.URL, e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == model.ErrCacheWriteFailure }

// Service describes image cache interface.
type Service interface {
	EnsureCached(ctx context.Context, url, targetPath string) error
}

type impl struct {
	downloader downloader.Service
}

// New returns image cache storing downloads on the local filesystem.
func New(downloader downloader.Service) Service {
	return &impl{downloader: downloader}
}

// EnsureCached downloads url into targetPath unless a non-empty file is
// already there. A cached file is never refreshed.
func (s *impl) EnsureCached(ctx context.Context, url, targetPath string) error {
	if info, err := os.Stat(targetPath); err == nil && info.Mode().IsRegular() && info.Size() > 0 {
		return nil
	}

	b, err := s.downloader.Download(ctx, url)
	if err != nil {
		return &Error{Reason: ReasonFetch, URL: url, Err: err}
	}
	if len(b) == 0 {
		return &Error{Reason: ReasonEmptyBody, URL: url}
	}

	if err := writeFile(targetPath, b); err != nil {
		return &Error{Reason: ReasonWrite, URL: url, Err: err}
	}

	return nil
}

func writeFile(path string, b []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	_, err = f.Write(b)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
