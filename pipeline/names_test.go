package pipeline

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/thumbgallery/model"
)

func TestCacheFileName(t *testing.T) {
	type tc struct {
		url         string
		expected    string
		expectedErr bool
	}

	tcs := []tc{
		{url: "http://images/a/b/cat.png", expected: "cat.png"},
		{url: "http://images/cat.JPG?size=large#top", expected: "cat.JPG"},
		{url: "http://images/dir/", expected: "dir"},
		{url: "http://images/", expectedErr: true},
		{url: "http://images", expectedErr: true},
		{url: "http://images/%zz", expectedErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.url, func(t *testing.T) {
			got, err := CacheFileName(tc.url)
			if tc.expectedErr {
				if !errors.Is(err, model.ErrInvalidImageURL) {
					t.Fatalf("expected ErrInvalidImageURL but got: %v (%q)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.expected {
				t.Fatalf("expected name is: %q but got: %q", tc.expected, got)
			}
		})
	}
}

func TestThumbFileName(t *testing.T) {
	tcs := map[string]string{
		"cat.jpg":     "cat.jpg",
		"cat.JPG":     "cat.JPG",
		"cat.png":     "cat.jpg",
		"cat.jpeg":    "cat.jpg",
		"cat":         "cat.jpg",
		"cat.tar.png": "cat.tar.jpg",
	}
	for name, expected := range tcs {
		if got := ThumbFileName(name); got != expected {
			t.Fatalf("expected thumb name of %q is: %q but got: %q", name, expected, got)
		}
	}
}

func TestRef(t *testing.T) {
	p := New(Config{CacheDir: "cache", ThumbDir: "thumb"}, nil, nil, nil)
	ref, err := p.Ref("http://images/cat.png")
	if err != nil {
		t.Fatal(err)
	}
	expected := model.ImageRef{
		SourceURL: "http://images/cat.png",
		CachePath: filepath.Join("cache", "cat.png"),
		ThumbPath: filepath.Join("thumb", "cat.jpg"),
	}
	if ref != expected {
		t.Fatalf("expected ref is: %+v but got: %+v", expected, ref)
	}
}
