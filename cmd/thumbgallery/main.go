package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/thumbgallery/cache"
	"github.com/thumbgallery/catalog"
	"github.com/thumbgallery/model"
	"github.com/thumbgallery/page"
	"github.com/thumbgallery/pipeline"
	"github.com/thumbgallery/repository/thumbnails"
	"github.com/thumbgallery/router"
	"github.com/thumbgallery/thumbnail"
	"github.com/thumbgallery/web/downloader"
	"github.com/thumbgallery/web/uploader"
)

type config struct {
	pipeline pipeline.Config
	timeout  time.Duration
	out      string
	addr     string
	s3Bucket string
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := run(logger, os.Args[1:]); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	cfg := config{pipeline: pipeline.DefaultConfig()}

	fs := flag.NewFlagSet("thumbgallery", flag.ContinueOnError)
	fs.StringVar(&cfg.pipeline.CatalogURL, "catalog", cfg.pipeline.CatalogURL, "Catalog URL, one image URL per line")
	fs.StringVar(&cfg.pipeline.CacheDir, "cache-dir", cfg.pipeline.CacheDir, "Directory for downloaded images")
	fs.StringVar(&cfg.pipeline.ThumbDir, "thumb-dir", cfg.pipeline.ThumbDir, "Directory for generated thumbnails")
	fs.IntVar(&cfg.pipeline.Size.Width, "width", cfg.pipeline.Size.Width, "Thumbnail width")
	fs.IntVar(&cfg.pipeline.Size.Height, "height", cfg.pipeline.Size.Height, "Thumbnail height")
	fs.IntVar(&cfg.pipeline.Quality, "quality", cfg.pipeline.Quality, "JPEG quality [0-100]")
	fs.IntVar(&cfg.pipeline.Workers, "workers", cfg.pipeline.Workers, "Images processed at once")
	fs.DurationVar(&cfg.timeout, "timeout", downloader.DefaultTimeout, "Timeout of a single download")
	fs.StringVar(&cfg.out, "out", "", "Write page to file instead of stdout")
	fs.StringVar(&cfg.addr, "addr", "", "Serve gallery on this address after processing")
	fs.StringVar(&cfg.s3Bucket, "s3-bucket", os.Getenv("S3_BUCKET"), "Publish thumbnails to this S3 bucket")
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.pipeline.Size.Width <= 0 || cfg.pipeline.Size.Height <= 0 {
		return config{}, fmt.Errorf("%w: size %dx%d", model.ErrInvalidTarget, cfg.pipeline.Size.Width, cfg.pipeline.Size.Height)
	}
	if cfg.pipeline.Quality < 0 || cfg.pipeline.Quality > 100 {
		return config{}, fmt.Errorf("%w: quality %d is not in range [0-100]", model.ErrInvalidTarget, cfg.pipeline.Quality)
	}
	return cfg, nil
}

func run(logger log.Logger, args []string) error {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	var repo model.ThumbnailsRepository = thumbnails.NewMemRepo()
	if os.Getenv("PGHOST") != "" {
		db, err := createDBsession(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		pgRepo := thumbnails.NewRepo(db)
		if err := pgRepo.Migrate(ctx); err != nil {
			return err
		}
		repo = pgRepo
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithRecorder(repo),
	}
	if cfg.s3Bucket != "" {
		sess, err := session.NewSession()
		if err != nil {
			return fmt.Errorf("error creating aws session: %w", err)
		}
		opts = append(opts, pipeline.WithPublisher(uploader.New(s3manager.NewUploader(sess), cfg.s3Bucket)))
	}

	dl := downloader.New(cfg.timeout)
	p := pipeline.New(cfg.pipeline, catalog.New(dl), cache.New(dl), thumbnail.New(), opts...)

	res, err := p.Run(ctx)
	if err != nil {
		return err
	}
	for _, f := range res.Failed {
		level.Warn(logger).Log("msg", "failed to load", "url", f.SourceURL, "reason", f.Reason)
	}

	if err := writePage(cfg.out, res.SucceededPaths()); err != nil {
		return err
	}

	if cfg.addr == "" {
		return nil
	}

	srv := &http.Server{
		Addr:    cfg.addr,
		Handler: router.New(repo, cfg.pipeline.ThumbDir),
	}
	defer srv.Close()

	level.Info(logger).Log("msg", "listening", "addr", cfg.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}

func writePage(out string, paths []string) (err error) {
	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create page: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("close page: %w", closeErr)
			}
		}()
		w = f
	}
	if err := page.Render(w, paths); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func createDBsession(ctx context.Context) (*sql.DB, error) {
	host := os.Getenv("PGHOST")
	port := os.Getenv("PGPORT")
	user := os.Getenv("PGUSER")
	password := os.Getenv("PGPASSWORD")
	dbname := os.Getenv("PGDBNAME")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s "+
		"password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error creating db connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to db: %w", err)
	}
	return db, nil
}
