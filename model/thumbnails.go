package model

import "context"

// Dimensions describes image size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// ImageRef describes where a catalog entry is cached and where its thumbnail goes.
type ImageRef struct {
	SourceURL string
	CachePath string
	ThumbPath string
}

// ThumbnailResult describes outcome of processing one catalog entry.
type ThumbnailResult struct {
	ID           int `json:",omitempty"`
	SourceURL    string
	ThumbPath    string `json:",omitempty"`
	PublishedURL string `json:",omitempty"`
	OK           bool
	Reason       string `json:",omitempty"`
}

// Result holds succeeded and failed entries, both in catalog order.
type Result struct {
	Succeeded []ThumbnailResult
	Failed    []ThumbnailResult
}

// SucceededPaths returns thumbnail paths of succeeded entries.
func (r Result) SucceededPaths() []string {
	paths := make([]string, 0, len(r.Succeeded))
	for _, s := range r.Succeeded {
		paths = append(paths, s.ThumbPath)
	}
	return paths
}

// FailedURLs returns source urls of failed entries.
func (r Result) FailedURLs() []string {
	urls := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		urls = append(urls, f.SourceURL)
	}
	return urls
}

// ThumbnailsRepository describes methods for storing processing results.
type ThumbnailsRepository interface {
	Save(context.Context, ThumbnailResult) (int, error)
	All(context.Context) ([]ThumbnailResult, error)
	OnlySucceeded(context.Context) ([]ThumbnailResult, error)
}
