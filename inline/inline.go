// Package inline runs extraction without the TUI, for scripts and pipes.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/link"
	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/queue"
	"github.com/clipdrop/clipdrop/resolve"
	"github.com/clipdrop/clipdrop/session"
	"github.com/clipdrop/clipdrop/util"
	"github.com/spf13/viper"
)

// Run extracts links from options.Text, resolves them one by one and prints the result.
// Records are downloaded when options.Download is set or the confirmation agrees.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Runner == nil {
		options.Runner = queue.New(resolve.New(), session.New())
	}

	limit := viper.GetInt(key.ExtractMaxLinks)
	if limit < 1 {
		limit = link.MaxLinks
	}

	candidates, condition := link.ExtractN(options.Text, limit)
	if condition == link.Truncated {
		log.Warnf("more than %d links found, extra links were dropped", len(candidates))
	}

	items := options.Runner.Run(ctx, candidates, options.Reporter)
	if err := ctx.Err(); err != nil {
		return err
	}

	records := options.Runner.State.Records()
	if options.Filter.IsPresent() {
		var err error
		records, err = options.Filter.MustGet()(records)
		if err != nil {
			return err
		}
		items = keep(items, records)
	}

	outcomes := maybeDownload(ctx, options, records)

	if options.Json {
		return writeJson(options.Out, newOutput(candidates, condition, items, outcomes))
	}

	for _, record := range records {
		if _, err := fmt.Fprintln(options.Out, record.Play); err != nil {
			return err
		}
	}

	return nil
}

func maybeDownload(ctx context.Context, options *Options, records []*media.Record) []download.Outcome {
	if len(records) == 0 {
		return nil
	}

	wanted := options.Download
	if !wanted && options.Confirm.IsPresent() {
		wanted = options.Confirm.MustGet()(len(records))
	}

	if !wanted {
		return nil
	}

	if options.Downloader == nil {
		options.Downloader = download.New()
	}

	log.Infof("downloading %s", util.Quantify(len(records), "video", "videos"))
	return options.Downloader.All(ctx, records, options.Reporter)
}

// keep drops items whose record was filtered out. Failed items are always kept.
func keep(items []*media.Item, records []*media.Record) []*media.Item {
	selected := make(map[int]bool, len(records))
	for _, r := range records {
		selected[r.Index] = true
	}

	kept := make([]*media.Item, 0, len(items))
	for _, item := range items {
		if item.Status != media.Succeeded || selected[item.Index] {
			kept = append(kept, item)
		}
	}
	return kept
}
