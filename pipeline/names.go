package pipeline

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/thumbgallery/model"
)

const thumbExt = ".jpg"

// CacheFileName returns the last segment of the url path.
func CacheFileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidImageURL, err)
	}

	name := path.Base(u.Path)
	switch name {
	case "", ".", "..", "/":
		return "", fmt.Errorf("%w: %s has no file name", model.ErrInvalidImageURL, rawURL)
	}
	return name, nil
}

// ThumbFileName returns name with its extension replaced by .jpg, names
// already ending with .jpg in any case are kept.
func ThumbFileName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), thumbExt) {
		return name
	}
	return strings.TrimSuffix(name, path.Ext(name)) + thumbExt
}

// Ref resolves cache and thumbnail paths of the catalog url.
func (p *Pipeline) Ref(rawURL string) (model.ImageRef, error) {
	name, err := CacheFileName(rawURL)
	if err != nil {
		return model.ImageRef{}, err
	}
	return model.ImageRef{
		SourceURL: rawURL,
		CachePath: filepath.Join(p.cfg.CacheDir, name),
		ThumbPath: filepath.Join(p.cfg.ThumbDir, ThumbFileName(name)),
	}, nil
}
