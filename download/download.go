// Package download saves resolved videos locally, one at a time, falling back to the system browser.
package download

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/clipdrop/clipdrop/config"
	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/filesystem"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/network"
	"github.com/clipdrop/clipdrop/open"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/util"
	"github.com/clipdrop/clipdrop/where"
	"github.com/spf13/viper"
)

const (
	// DefaultDelay is the pause between two downloads of a batch.
	DefaultDelay = 500 * time.Millisecond

	// Extension of saved files.
	Extension = "mp4"
)

// ErrDownloadFailed wraps every reason the fetch-and-save path did not complete.
var ErrDownloadFailed = errors.New("download failed")

// Kind is how a download ended. Saved and OpenedExternally are both successes for the caller.
type Kind int

const (
	// Saved means the file was written to disk.
	Saved Kind = iota
	// OpenedExternally means the media URL was handed to the system browser.
	OpenedExternally
	// Interrupted means ctx ended first. Nothing was saved or opened.
	Interrupted
)

func (k Kind) String() string {
	switch k {
	case Saved:
		return "saved"
	case Interrupted:
		return "interrupted"
	default:
		return "opened externally"
	}
}

// Outcome describes one finished download.
type Outcome struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	// Path of the saved file when Kind is Saved.
	Path string `json:"path,omitempty"`
	// Err is why saving failed, when Kind is not Saved.
	Err error `json:"-"`
}

// Orchestrator fetches media files and paces batches.
type Orchestrator struct {
	Client *http.Client
	Dir    string
	Prefix string

	// Delay is the pause between batch items. Zero means DefaultDelay, negative means none.
	Delay time.Duration

	// Open hands a URL to the system. Defaults to open.Start.
	Open func(url string) error
	// Sleep waits between batch items. Tests replace it to observe the pacing.
	Sleep func(ctx context.Context, d time.Duration) error
}

// New returns an orchestrator configured from download.* settings.
func New() *Orchestrator {
	return &Orchestrator{
		Client: network.Client,
		Dir:    where.Downloads(),
		Prefix: viper.GetString(key.DownloadPrefix),
		Delay:  config.Pause(key.DownloadDelayMs),
		Open:   open.Start,
	}
}

func (o *Orchestrator) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return network.Client
}

func (o *Orchestrator) delay() time.Duration {
	return util.Pacing(o.Delay, DefaultDelay)
}

func (o *Orchestrator) sleep(ctx context.Context, d time.Duration) error {
	if o.Sleep != nil {
		return o.Sleep(ctx, d)
	}
	return util.Sleep(ctx, d)
}

// Path returns where a record is saved.
func (o *Orchestrator) Path(record *media.Record) string {
	name := util.SanitizeFilename(record.Filename(o.Prefix, Extension))
	return filepath.Join(o.Dir, name)
}

// One downloads a record's media. When fetching or saving fails, the media URL is opened
// in the system browser instead, unless ctx has ended. It never returns an error.
func (o *Orchestrator) One(ctx context.Context, record *media.Record) Outcome {
	outcome := Outcome{Index: record.Index, ID: record.ID}
	fields := log.Fields{"id": record.ID, "item": record.Index}

	path, err := o.save(ctx, record)
	if err == nil {
		log.With(fields).Infof("saved %s", path)
		outcome.Kind = Saved
		outcome.Path = path
		return outcome
	}

	if ctx.Err() != nil {
		log.With(fields).Infof("download interrupted: %v", err)
		outcome.Kind = Interrupted
		outcome.Err = err
		return outcome
	}

	log.With(fields).Warnf("file download failed, opening in browser: %v", err)
	outcome.Kind = OpenedExternally
	outcome.Err = err

	if o.Open != nil {
		if oerr := o.Open(record.Play); oerr != nil {
			log.With(fields).Errorf("open %s: %v", record.Play, oerr)
			outcome.Err = errors.Join(err, fmt.Errorf("open: %w", oerr))
		}
	}
	return outcome
}

// All downloads records in order with a pause between them. A fallback on one record
// never stops the batch.
func (o *Orchestrator) All(ctx context.Context, records []*media.Record, rep report.Reporter) []Outcome {
	rep = report.OrNop(rep)
	total := len(records)
	outcomes := make([]Outcome, 0, total)

	for i, record := range records {
		rep.OnProgress(i+1, total)
		rep.OnStatus(fmt.Sprintf("Downloading %d of %d", i+1, total), report.Primary)
		rep.OnItemStatus(record.Index, "Downloading")

		outcome := o.One(ctx, record)
		outcomes = append(outcomes, outcome)
		rep.OnItemStatus(record.Index, Describe(outcome))

		if outcome.Kind == Interrupted {
			rep.OnStatus("Downloads interrupted", report.Error)
			return outcomes
		}

		if i < total-1 {
			if err := o.sleep(ctx, o.delay()); err != nil {
				rep.OnStatus("Downloads interrupted", report.Error)
				return outcomes
			}
		}
	}

	if total > 0 {
		rep.OnStatus("All downloaded", report.Success)
	}
	return outcomes
}

// Describe renders an outcome the way item cards show it.
func Describe(outcome Outcome) string {
	switch outcome.Kind {
	case Saved:
		return "Downloaded"
	case Interrupted:
		return "Interrupted"
	default:
		return "Opened in browser"
	}
}

// save streams the media into a temporary file beside the target and renames it into place.
func (o *Orchestrator) save(ctx context.Context, record *media.Record) (path string, err error) {
	if record.Play == "" {
		return "", fmt.Errorf("%w: record %s has no media url", ErrDownloadFailed, record.ID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, record.Play, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := o.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %s", ErrDownloadFailed, resp.Status)
	}

	path = o.Path(record)
	written, err := filesystem.WriteAtomic(path, resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: write %s: %w", ErrDownloadFailed, path, err)
	}

	log.Debugf("saved %s (%d bytes)", path, written)
	return path, nil
}
