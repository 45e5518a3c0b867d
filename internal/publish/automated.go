package publish

import (
	"context"
	"log/slog"
	"time"

	"reelpub/internal/catalog"
	"reelpub/internal/fileutil"
	"reelpub/internal/logging"
	"reelpub/internal/media/ffprobe"
	"reelpub/internal/services"
	"reelpub/internal/services/ytupload"
)

// Uploader is the subset of the upload client the automated publisher needs.
type Uploader interface {
	Upload(ctx context.Context, req ytupload.Request) (string, error)
}

// Prober inspects a media file before upload.
type Prober interface {
	Inspect(ctx context.Context, path string) (ffprobe.Result, error)
}

// Automated publishes through the external upload CLI.
type Automated struct {
	resolve  func(filename string) string
	uploader Uploader
	prober   Prober
	logger   *slog.Logger
}

// AutomatedOption configures an Automated publisher.
type AutomatedOption func(*Automated)

// WithProber enables the pre-upload ffprobe inspection.
func WithProber(p Prober) AutomatedOption {
	return func(a *Automated) { a.prober = p }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) AutomatedOption {
	return func(a *Automated) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAutomated returns a publisher that uploads files resolved by resolve.
func NewAutomated(resolve func(filename string) string, uploader Uploader, opts ...AutomatedOption) *Automated {
	a := &Automated{resolve: resolve, uploader: uploader, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.NewComponentLogger(a.logger, "publish")
	return a
}

// Publish uploads one entry.
func (a *Automated) Publish(ctx context.Context, entry catalog.AssetEntry) (Result, error) {
	logger := logging.WithContext(ctx, a.logger)
	path := a.resolve(entry.Filename)

	ok, err := fileutil.Exists(path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrAssetNotFound, "publish", "stat", path, err)
	}
	if !ok {
		return Result{}, services.Wrap(services.ErrAssetNotFound, "publish", "locate", path, nil)
	}

	if a.prober != nil {
		a.probe(ctx, logger, path)
	}

	logger.Info("uploading", logging.String("path", path), logging.String("title", entry.Title))
	id, err := a.uploader.Upload(ctx, ytupload.Request{
		FilePath:     path,
		Title:        entry.Title,
		Description:  entry.Description,
		Tags:         entry.Tags,
		CategoryCode: entry.Category.Code,
		Privacy:      entry.Visibility.String(),
	})
	if err != nil {
		return Result{}, err
	}
	logger.Info("uploaded", logging.String("video_id", id))
	return Result{Filename: entry.Filename, ExternalID: id}, nil
}

func (a *Automated) probe(ctx context.Context, logger *slog.Logger, path string) {
	result, err := a.prober.Inspect(ctx, path)
	if err != nil {
		logging.WarnWithContext(logger, "media probe failed", "probe_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check ffprobe is installed or disable uploader.probe"),
			logging.String(logging.FieldImpact, "upload continues without media details"),
		)
		return
	}
	logger.Info("media probed",
		logging.Duration("duration", time.Duration(result.DurationSeconds()*float64(time.Second)).Round(time.Second)),
		logging.String("resolution", result.Resolution()),
		logging.Int("video_streams", result.VideoStreamCount()),
		logging.Int("audio_streams", result.AudioStreamCount()),
	)
}
