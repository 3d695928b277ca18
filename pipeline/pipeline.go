// Package pipeline runs catalog entries through caching and thumbnail
// generation and collects the results.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/thumbgallery/cache"
	"github.com/thumbgallery/catalog"
	"github.com/thumbgallery/model"
	"github.com/thumbgallery/thumbnail"
	"github.com/thumbgallery/web/uploader"
)

// DefaultCatalogURL is the catalog processed when none is configured.
const DefaultCatalogURL = "https://shopgate-static.s3.amazonaws.com/worktrail/backend/image_scaling/images.dat"

// Config of a run.
type Config struct {
	CatalogURL string
	CacheDir   string
	ThumbDir   string
	Size       model.Dimensions
	Quality    int
	// Workers limits how many entries are processed at once, values below 1 mean 1.
	Workers int
}

// DefaultConfig returns config with 600x600 thumbnails at quality 100.
func DefaultConfig() Config {
	return Config{
		CatalogURL: DefaultCatalogURL,
		CacheDir:   "./cache",
		ThumbDir:   "./thumb",
		Size:       model.Dimensions{Width: 600, Height: 600},
		Quality:    thumbnail.DefaultQuality,
		Workers:    1,
	}
}

// Pipeline processes a catalog.
type Pipeline struct {
	cfg       Config
	catalog   catalog.Service
	cache     cache.Service
	thumbs    thumbnail.Service
	publisher uploader.Service
	recorder  model.ThumbnailsRepository
	logger    log.Logger
}

// Option configures optional collaborators.
type Option func(*Pipeline)

// WithPublisher uploads every generated thumbnail.
func WithPublisher(u uploader.Service) Option {
	return func(p *Pipeline) { p.publisher = u }
}

// WithRecorder saves every result, in catalog order.
func WithRecorder(r model.ThumbnailsRepository) Option {
	return func(p *Pipeline) { p.recorder = r }
}

// WithLogger sets logger, nop logger is used otherwise.
func WithLogger(l log.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New returns new pipeline.
func New(cfg Config, catalog catalog.Service, cache cache.Service, thumbs thumbnail.Service, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:     cfg,
		catalog: catalog,
		cache:   cache,
		thumbs:  thumbs,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run prepares storage, fetches the catalog and processes every entry.
// Only storage and catalog errors are returned, failed entries end up in
// Result.Failed.
func (p *Pipeline) Run(ctx context.Context) (model.Result, error) {
	for _, dir := range []string{p.cfg.CacheDir, p.cfg.ThumbDir} {
		if err := cache.EnsureDirectory(dir); err != nil {
			return model.Result{}, err
		}
	}

	urls, err := p.catalog.Fetch(ctx, p.cfg.CatalogURL)
	if err != nil {
		return model.Result{}, err
	}
	level.Info(p.logger).Log("msg", "catalog fetched", "url", p.cfg.CatalogURL, "entries", len(urls))

	var res model.Result
	for _, item := range p.ProcessAll(ctx, urls) {
		if item.OK {
			res.Succeeded = append(res.Succeeded, item)
		} else {
			res.Failed = append(res.Failed, item)
		}
		p.record(ctx, item)
	}

	level.Info(p.logger).Log("msg", "catalog processed", "succeeded", len(res.Succeeded), "failed", len(res.Failed))
	return res, nil
}

// ProcessAll processes urls with at most Config.Workers at once and returns
// one result per url in the same order.
//
// A url whose thumbnail path is already taken by an earlier, different url
// fails with model.ErrDuplicateThumbnail instead of overwriting it. A url
// repeated verbatim is processed once and shares the first result.
func (p *Pipeline) ProcessAll(ctx context.Context, urls []string) []model.ThumbnailResult {
	results := make([]model.ThumbnailResult, len(urls))

	type owner struct {
		index int
		url   string
	}
	owners := make(map[string]owner, len(urls))
	sameAs := make(map[int]int)
	skip := make(map[int]bool)
	for i, u := range urls {
		ref, err := p.Ref(u)
		if err != nil {
			continue
		}
		o, ok := owners[ref.ThumbPath]
		if !ok {
			owners[ref.ThumbPath] = owner{index: i, url: u}
			continue
		}
		skip[i] = true
		if o.url == u {
			sameAs[i] = o.index
			continue
		}
		results[i] = p.fail(u, fmt.Errorf("%w: %s is already used by %s", model.ErrDuplicateThumbnail, ref.ThumbPath, o.url))
	}

	workers := p.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, u := range urls {
		if skip[i] {
			continue
		}
		i, u := i, u
		g.Go(func() error {
			results[i] = p.Process(ctx, u)
			return nil
		})
	}
	g.Wait()

	for i, first := range sameAs {
		results[i] = results[first]
	}

	return results
}

// Process caches url and generates its thumbnail. Errors never escape,
// they are reported in the result.
func (p *Pipeline) Process(ctx context.Context, rawURL string) model.ThumbnailResult {
	ref, err := p.Ref(rawURL)
	if err != nil {
		return p.fail(rawURL, err)
	}

	if err := p.cache.EnsureCached(ctx, ref.SourceURL, ref.CachePath); err != nil {
		return p.fail(rawURL, err)
	}

	if err := p.thumbs.Generate(ref.CachePath, ref.ThumbPath, p.cfg.Size, p.cfg.Quality); err != nil {
		return p.fail(rawURL, err)
	}

	res := model.ThumbnailResult{SourceURL: rawURL, ThumbPath: ref.ThumbPath, OK: true}
	if p.publisher != nil {
		res.PublishedURL = p.publish(ctx, ref)
	}

	level.Debug(p.logger).Log("msg", "thumbnail generated", "url", rawURL, "path", ref.ThumbPath)
	return res
}

func (p *Pipeline) fail(rawURL string, err error) model.ThumbnailResult {
	level.Error(p.logger).Log("msg", "image skipped", "url", rawURL, "err", err)
	return model.ThumbnailResult{SourceURL: rawURL, Reason: err.Error()}
}

// publish failures don't fail the entry, the local thumbnail exists.
func (p *Pipeline) publish(ctx context.Context, ref model.ImageRef) string {
	location, err := func() (string, error) {
		f, err := os.Open(ref.ThumbPath)
		if err != nil {
			return "", fmt.Errorf("opening thumbnail: %w", err)
		}
		defer f.Close()
		return p.publisher.Upload(ctx, filepath.Base(ref.ThumbPath), f)
	}()
	if err != nil {
		level.Warn(p.logger).Log("msg", "thumbnail not published", "url", ref.SourceURL, "err", err)
		return ""
	}
	return location
}

func (p *Pipeline) record(ctx context.Context, res model.ThumbnailResult) {
	if p.recorder == nil {
		return
	}
	if _, err := p.recorder.Save(ctx, res); err != nil {
		level.Warn(p.logger).Log("msg", "result not recorded", "url", res.SourceURL, "err", err)
	}
}
