package dataset

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
	"github.com/secmon-lab/threatlens/pkg/domain/model"
	"github.com/secmon-lab/threatlens/pkg/domain/types"
)

// maxErrorBody caps how much of a failed response body is kept in the error
const maxErrorBody = 512

// HTTPFetcher downloads workbooks with a single GET and no retries
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures HTTPFetcher behavior
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client = client
	}
}

// WithTimeout bounds each Fetch, including reading the body. Zero means no
// timeout. The HTTP client itself is left untouched.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// NewHTTPFetcher creates a fetcher. By default requests have no timeout.
func NewHTTPFetcher(opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ interfaces.DatasetFetcher = (*HTTPFetcher)(nil)

// Fetch issues GET url and returns the body. Transport failures and non-2xx
// responses are tagged model.ErrTagFetch. Once issued the request runs to
// completion even if ctx is cancelled, bounded only by the fetcher timeout.
func (f *HTTPFetcher) Fetch(ctx context.Context, url types.DatasetURL) ([]byte, error) {
	reqCtx := context.WithoutCancel(ctx)
	if f.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build dataset request",
			goerr.V("url", url),
			goerr.T(model.ErrTagFetch))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch dataset",
			goerr.V("url", url),
			goerr.V("timeout", f.timeout),
			goerr.T(model.ErrTagFetch))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dataset response",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagFetch))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(body)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, goerr.New("unexpected HTTP status fetching dataset",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", snippet),
			goerr.T(model.ErrTagFetch))
	}

	return body, nil
}
