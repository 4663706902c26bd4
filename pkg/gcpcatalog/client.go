package gcpcatalog

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
)

const (
	defaultComputeBaseURL = "https://compute.googleapis.com/compute/v1"
	defaultBillingBaseURL = "https://cloudbilling.googleapis.com/v1"

	// Compute Engine service ID in the Cloud Billing Catalog.
	computeEngineServiceID = "6F81-5844-456A"

	// Safety guard against a collaborator that never stops paginating.
	maxPages = 50
)

// Client talks to the Compute Engine and Cloud Billing Catalog REST APIs.
// All list calls drain nextPageToken pagination before returning.
type Client struct {
	project    string
	httpClient *http.Client
	computeURL string
	billingURL string
}

// New builds a Client authenticated with Application Default Credentials.
func New(ctx context.Context, project string) (*Client, error) {
	httpClient, err := google.DefaultClient(ctx,
		"https://www.googleapis.com/auth/cloud-platform",
		"https://www.googleapis.com/auth/compute.readonly",
	)
	if err != nil {
		return nil, errors.Wrap(err, "finding GCP credentials")
	}
	httpClient.Timeout = 30 * time.Second

	return NewWithClient(project, httpClient), nil
}

// NewWithClient builds a Client around an existing *http.Client. Used by
// tests to point the Client at a local server.
func NewWithClient(project string, httpClient *http.Client) *Client {
	return &Client{
		project:    project,
		httpClient: httpClient,
		computeURL: defaultComputeBaseURL,
		billingURL: defaultBillingBaseURL,
	}
}

// SetBaseURLs overrides the API endpoints. Used by tests.
func (c *Client) SetBaseURLs(computeURL, billingURL string) {
	c.computeURL = computeURL
	c.billingURL = billingURL
}

// get performs a GET request with retry and exponential backoff. Retries up
// to 3 times on network errors, 429 and 5xx responses, honoring Retry-After.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	const maxRetries = 3
	backoff := 1 * time.Second

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "creating request for %s", url)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = errors.Wrapf(err, "GET %s", url)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = errors.Wrapf(err, "reading response from %s", url)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = errors.Errorf("GET %s: HTTP %d: %s", url, resp.StatusCode, string(body))
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if seconds, err := strconv.Atoi(ra); err == nil && seconds > 0 {
					backoff = time.Duration(seconds) * time.Second
				}
			}
			continue
		}

		return nil, errors.Errorf("GET %s: HTTP %d: %s", url, resp.StatusCode, string(body))
	}

	return nil, errors.Wrapf(lastErr, "GET %s failed after %d retries", url, maxRetries)
}
