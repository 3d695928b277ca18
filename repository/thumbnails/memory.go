package thumbnails

import (
	"context"
	"sync"

	"github.com/thumbgallery/model"
)

// MemRepo keeps results in memory, used when no database is configured.
type MemRepo struct {
	mu    sync.RWMutex
	items []model.ThumbnailResult
}

// NewMemRepo creates empty MemRepo.
func NewMemRepo() *MemRepo {
	return &MemRepo{}
}

// Save stores processing result, replacing the previous one of the same
// source url in place.
func (r *MemRepo) Save(_ context.Context, res model.ThumbnailResult) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.SourceURL == res.SourceURL {
			res.ID = item.ID
			r.items[i] = res
			return res.ID, nil
		}
	}
	res.ID = len(r.items) + 1
	r.items = append(r.items, res)
	return res.ID, nil
}

// All returns all results in insertion order.
func (r *MemRepo) All(_ context.Context) ([]model.ThumbnailResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.ThumbnailResult{}, r.items...), nil
}

// OnlySucceeded returns only results with a generated thumbnail.
func (r *MemRepo) OnlySucceeded(_ context.Context) ([]model.ThumbnailResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := []model.ThumbnailResult{}
	for _, item := range r.items {
		if item.OK {
			res = append(res, item)
		}
	}
	return res, nil
}
