// Package resolve turns a link into a media record through the external metadata API.
package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clipdrop/clipdrop/config"
	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/network"
	"github.com/clipdrop/clipdrop/util"
	"github.com/spf13/viper"
)

// Defaults used when a Resolver field is left zero.
const (
	DefaultEndpoint = "https://www.tikwm.com/api/"
	DefaultAttempts = 3
	DefaultTimeout  = 8 * time.Second
	DefaultBackoff  = time.Second

	// UnknownAuthor replaces a missing author name.
	UnknownAuthor = "Unknown Author"
)

// maxBody caps how much of a metadata response is read.
const maxBody = 4 << 20

// Resolver fetches metadata for one link at a time with a per-attempt deadline and a fixed back-off.
type Resolver struct {
	Client   *http.Client
	Endpoint string
	Attempts int
	Timeout  time.Duration

	// Backoff is the pause between attempts. Zero means DefaultBackoff, negative means none.
	Backoff time.Duration

	// Sleep waits between attempts. Tests replace it to observe or skip the back-off.
	Sleep func(ctx context.Context, d time.Duration) error
}

// New builds a Resolver from the current configuration.
func New() *Resolver {
	return &Resolver{
		Client:   network.API(),
		Endpoint: viper.GetString(key.ResolveEndpoint),
		Attempts: viper.GetInt(key.ResolveAttempts),
		Timeout:  config.Millis(key.ResolveTimeoutMs),
		Backoff:  config.Pause(key.ResolveBackoffMs),
	}
}

func (r *Resolver) attempts() int {
	if r.Attempts < 1 {
		return DefaultAttempts
	}
	return r.Attempts
}

func (r *Resolver) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

// backoff is DefaultBackoff for a zero Backoff and no pause for a negative one.
func (r *Resolver) backoff() time.Duration {
	return util.Pacing(r.Backoff, DefaultBackoff)
}

func (r *Resolver) sleep(ctx context.Context, d time.Duration) error {
	if r.Sleep != nil {
		return r.Sleep(ctx, d)
	}
	return util.Sleep(ctx, d)
}

func (r *Resolver) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return network.Client
}

// Resolve requests metadata for link, retrying failed attempts until the attempt budget is spent.
// index is the link's 1-based position and names untitled videos. onStatus, when set, is told
// about every attempt before it starts.
//
// The returned error is a *Error describing the last attempt, or the context's error if ctx ends.
func (r *Resolver) Resolve(ctx context.Context, link media.Link, index int, onStatus func(string)) (*media.Record, error) {
	total := r.attempts()

	var last *Error
	for attempt := 1; attempt <= total; attempt++ {
		if onStatus != nil {
			if attempt == 1 {
				onStatus("Fetching")
			} else {
				onStatus(fmt.Sprintf("Retrying (%d/%d)", attempt, total))
			}
		}

		record, err := r.attempt(ctx, link, index)
		if err == nil {
			return record, nil
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("resolve %s: %w", link, ctx.Err())
		}

		last = err
		log.With(log.Fields{
			"link":    link,
			"attempt": attempt,
			"kind":    err.Kind.String(),
		}).Warn(err.Error())

		if attempt < total {
			if err := r.sleep(ctx, r.backoff()); err != nil {
				return nil, fmt.Errorf("resolve %s: %w", link, err)
			}
		}
	}

	last.Attempts = total
	return nil, last
}

// attempt performs a single request bounded by the resolver's timeout.
// The attempt's context is cancelled before returning, releasing the connection.
func (r *Resolver) attempt(ctx context.Context, link media.Link, index int) (*media.Record, *Error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	fail := func(kind Kind, err error) *Error {
		if ctx.Err() == context.DeadlineExceeded {
			kind = Timeout
		}
		return &Error{Kind: kind, Link: link, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.requestURL(link), nil)
	if err != nil {
		return nil, fail(Transport, err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client().Do(req)
	if err != nil {
		return nil, fail(Transport, err)
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fail(Transport, fmt.Errorf("read body: %w", err))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fail(Transport, fmt.Errorf("decode body (status %d): %w", resp.StatusCode, err))
	}

	if env.Code != 0 || env.Data == nil {
		msg := strings.TrimSpace(env.Msg)
		if msg == "" {
			msg = "API returned failure"
		}
		return nil, &Error{
			Kind:    ApiRejected,
			Link:    link,
			Message: msg,
			Err:     errors.New(msg),
		}
	}

	return normalize(env.Data, link, index), nil
}

func (r *Resolver) requestURL(link media.Link) string {
	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "url=" + url.QueryEscape(string(link))
}

func normalize(p *payload, link media.Link, index int) *media.Record {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = fmt.Sprintf("Video %d", index)
	}

	author := UnknownAuthor
	if p.Author != nil && strings.TrimSpace(p.Author.Nickname) != "" {
		author = strings.TrimSpace(p.Author.Nickname)
	}

	return &media.Record{
		ID:     string(p.ID),
		Title:  title,
		Author: author,
		Cover:  p.Cover,
		Play:   p.Play,
		Source: link,
		Index:  index,
	}
}
