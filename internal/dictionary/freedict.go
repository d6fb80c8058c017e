package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

const defaultFreeDictURL = "https://api.dictionaryapi.dev/api/v2/entries"

var errUpstream = errors.New("freedict: upstream unavailable")

// FreeDict looks words up in the FreeDictionary API.
// A 200 means the word exists, a 404 means it does not; anything else is
// retried with backoff and finally reported as an error.
type FreeDict struct {
	baseURL    string
	attempts   uint
	delay      time.Duration
	httpClient *http.Client
}

// NewFreeDict creates a client for baseURL (the public API when empty).
func NewFreeDict(baseURL string, attempts uint) *FreeDict {
	if baseURL == "" {
		baseURL = defaultFreeDictURL
	}
	if attempts == 0 {
		attempts = 1
	}
	return &FreeDict{
		baseURL:    strings.TrimRight(baseURL, "/"),
		attempts:   attempts,
		delay:      200 * time.Millisecond,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup implements Lookuper.
func (d *FreeDict) Lookup(ctx context.Context, word, language string) (bool, error) {
	if word == "" {
		return false, nil
	}
	if language == "" {
		language = "en"
	}
	reqURL := d.baseURL + "/" + url.PathEscape(language) + "/" + url.PathEscape(word)

	found, err := retry.DoWithData(
		func() (bool, error) { return d.fetch(ctx, reqURL) },
		retry.Context(ctx),
		retry.Attempts(d.attempts),
		retry.Delay(d.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Str("word", word).Msg("freedict retry")
		}),
	)
	if err != nil {
		return false, fmt.Errorf("freedict: lookup %q: %w", word, err)
	}
	return found, nil
}

// fetch performs a single request. 4xx other than 404 is not retried.
func (d *FreeDict) fetch(ctx context.Context, reqURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, retry.Unrecoverable(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return false, fmt.Errorf("%w: status %d", errUpstream, resp.StatusCode)
	default:
		return false, retry.Unrecoverable(fmt.Errorf("freedict: unexpected status %d", resp.StatusCode))
	}
}
