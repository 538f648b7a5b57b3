package release

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/patrickmn/go-cache"
)

// ArtifactChecker verifies that an artifact exists at a URL.
type ArtifactChecker interface {
	Check(ctx context.Context, url string) error
}

// HTTPArtifactChecker performs HEAD requests against artifact repositories.
// Results are memoized per URL, so entries sharing a plugin version are
// checked only once per run.
type HTTPArtifactChecker struct {
	client *retryablehttp.Client
	seen   *cache.Cache
}

func NewHTTPArtifactChecker(timeout time.Duration) *HTTPArtifactChecker {
	client := retryablehttp.NewClient()
	client.Logger = nil
	// artifact availability is a hard precondition of index generation,
	// a missing artifact must fail the run rather than be retried
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = timeout
	return &HTTPArtifactChecker{
		client: client,
		seen:   cache.New(cache.NoExpiration, 0),
	}
}

func (c *HTTPArtifactChecker) Check(ctx context.Context, url string) error {
	if cached, ok := c.seen.Get(url); ok {
		if cached == nil {
			return nil
		}
		return cached.(error)
	}
	err := c.check(ctx, url)
	c.seen.Set(url, err, cache.NoExpiration)
	return err
}

func (c *HTTPArtifactChecker) check(ctx context.Context, url string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
