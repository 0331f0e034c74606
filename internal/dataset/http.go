package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ Loader = (*HTTPLoader)(nil)

// HTTPLoader fetches the dataset document from a remote URL. This is the
// deployment mode where the dataset lives next to the static assets.
type HTTPLoader struct {
	url    string
	client *http.Client
}

// NewHTTPLoader creates a loader fetching the dataset from the given URL.
func NewHTTPLoader(url string, timeoutSec int) *HTTPLoader {
	return &HTTPLoader{
		url:    url,
		client: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// Load fetches and parses the remote dataset document.
func (l *HTTPLoader) Load(ctx context.Context) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("dataset request creation failed: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset fetch failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset fetch returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dataset response: %w", err)
	}
	return Parse(raw)
}
