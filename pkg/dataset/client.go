package dataset

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// retryAttempts bounds how often a remote dataset fetch is tried.
const retryAttempts = 3

// Client reads datasets from local files or http(s) URLs. Remote bodies are
// cached on disk (see cache.go).
type Client struct {
	httpClient *http.Client
	backoff    time.Duration
	noCache    bool
	// refresh skips cache reads but still writes fresh bodies back.
	refresh bool
}

// NewClient creates a new dataset client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		backoff: time.Second,
	}
}

// WithoutCache makes every remote read go to the network.
func (c *Client) WithoutCache() *Client {
	c.noCache = true
	return c
}

// refreshing returns a copy that always goes to the network and updates
// the cache with what it downloads.
func (c *Client) refreshing() *Client {
	cp := *c
	cp.refresh = true
	return &cp
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open returns a reader for a dataset source. Local paths are opened
// directly; URLs go through the disk cache and then the network.
func (c *Client) Open(source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, fmt.Errorf("no dataset source configured")
	}

	if !isRemote(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset %s: %w", source, err)
		}
		return f, nil
	}

	body, err := c.Fetch(source)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

// Fetch downloads a remote dataset, serving it from the cache when fresh.
func (c *Client) Fetch(url string) ([]byte, error) {
	if !c.noCache && !c.refresh {
		if cached, ok := readCache(url); ok {
			return cached, nil
		}
	}

	resp, err := c.getWithRetries(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body from %s: %w", url, err)
	}

	if !c.noCache {
		writeCache(url, body)
	}
	return body, nil
}

// getWithRetries tries a GET up to retryAttempts times, retrying on network
// errors and 502/503/504.
func (c *Client) getWithRetries(url string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt < retryAttempts; attempt++ {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "schedfinder/1.0")

		resp, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			lastErr = fmt.Errorf("failed to fetch %s: %w", url, err)
		case resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusGatewayTimeout:
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code %d when fetching %s", resp.StatusCode, url)
		case resp.StatusCode != http.StatusOK:
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
		default:
			return resp, nil
		}

		if attempt < retryAttempts-1 {
			time.Sleep(time.Duration(attempt+1) * c.backoff)
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", retryAttempts, lastErr)
}
