package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultMaxDocumentSize caps a downloaded gazette at 64 MB. A daily
// edition runs a few megabytes; anything larger is the wrong URL.
const DefaultMaxDocumentSize = 64 << 20

// DefaultTimeout bounds the whole download, connection included.
const DefaultTimeout = 60 * time.Second

// Downloader fetches gazette PDFs by URL.
type Downloader struct {
	client    HTTPClient
	maxSize   int64
	userAgent string
}

// NewDownloader creates a downloader with the given client. A nil client
// gets a timeout client with DefaultTimeout.
func NewDownloader(client HTTPClient) *Downloader {
	if client == nil {
		client = NewTimeoutHTTPClient(DefaultTimeout)
	}
	return &Downloader{
		client:    client,
		maxSize:   DefaultMaxDocumentSize,
		userAgent: "gazeta/0.1 (+https://github.com/coolbeans/gazeta)",
	}
}

// Download fetches the document at the given URL and returns its bytes.
// It rejects non-2xx responses, HTML error pages served in place of the
// PDF, and documents exceeding the size cap. These are the only
// user-visible failures of the tool; extraction itself never errors.
func (d *Downloader) Download(ctx context.Context, documentURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", documentURL, err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", documentURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download %s: unexpected status %s", documentURL, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		return nil, fmt.Errorf("download %s: got an HTML page instead of a PDF", documentURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", documentURL, err)
	}
	if int64(len(body)) > d.maxSize {
		return nil, fmt.Errorf("download %s: document exceeds %d byte limit", documentURL, d.maxSize)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("download %s: empty response body", documentURL)
	}
	return body, nil
}
