package retrograde

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rshade/retrograde/internal/logging"
)

// DefaultEndpoint is the public Mercury retrograde status API.
const DefaultEndpoint = "https://mercuryretrogradeapi.com"

// maxResponseBytes caps how much of the response body is decoded.
const maxResponseBytes = 1 << 20

// Fetcher retrieves the raw status payload for a calendar date.
type Fetcher interface {
	Fetch(ctx context.Context, date string) (Response, error)
}

// HTTPFetcher fetches status payloads over HTTP.
type HTTPFetcher struct {
	// BaseURL is the status endpoint; the date is appended as a query parameter.
	BaseURL string
	// HTTPClient defaults to http.DefaultClient when nil.
	HTTPClient *http.Client
	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration
	// UserAgent is sent when non-empty.
	UserAgent string
}

// NewHTTPFetcher returns a fetcher for endpoint, falling back to DefaultEndpoint.
func NewHTTPFetcher(endpoint string, timeout time.Duration) *HTTPFetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HTTPFetcher{
		BaseURL:    endpoint,
		HTTPClient: http.DefaultClient,
		Timeout:    timeout,
	}
}

// Fetch issues GET <BaseURL>?date=<date> with Accept: application/json.
func (f *HTTPFetcher) Fetch(ctx context.Context, date string) (Response, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	target, err := f.requestURL(date)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	logger := logging.FromContext(ctx)
	logger.Debug().Str("url", target).Msg("requesting retrograde status")

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return DecodeResponse(io.LimitReader(resp.Body, maxResponseBytes))
}

func (f *HTTPFetcher) requestURL(date string) (string, error) {
	u, err := url.Parse(f.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing status endpoint %q: %w", f.BaseURL, err)
	}
	q := u.Query()
	q.Set("date", date)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
