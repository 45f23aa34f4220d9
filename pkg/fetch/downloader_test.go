package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDownloadSuccess(t *testing.T) {
	content := []byte("%PDF-1.4 fake document body")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/pdf" {
			t.Errorf("Expected Accept header 'application/pdf', got %q", got)
		}
		if got := r.Header.Get("User-Agent"); !strings.HasPrefix(got, "gazeta/") {
			t.Errorf("Expected gazeta user agent, got %q", got)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(content)
	}))
	defer server.Close()

	downloader := NewDownloader(nil)
	body, err := downloader.Download(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected download to succeed, got %v", err)
	}
	if !bytes.Equal(body, content) {
		t.Errorf("Expected body %q, got %q", content, body)
	}
}

func TestDownloadRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewDownloader(nil).Download(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for a 404 response")
	}
	if !strings.Contains(err.Error(), "unexpected status") {
		t.Errorf("Expected status error, got %v", err)
	}
}

func TestDownloadRejectsHTMLPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html>archive index</html>"))
	}))
	defer server.Close()

	_, err := NewDownloader(nil).Download(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for an HTML response")
	}
	if !strings.Contains(err.Error(), "HTML") {
		t.Errorf("Expected HTML rejection, got %v", err)
	}
}

func TestDownloadRejectsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
	}))
	defer server.Close()

	_, err := NewDownloader(nil).Download(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for an empty body")
	}
}

func TestDownloadRejectsOversizeDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(bytes.Repeat([]byte("x"), 128))
	}))
	defer server.Close()

	downloader := NewDownloader(nil)
	downloader.maxSize = 64

	_, err := downloader.Download(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for an oversize document")
	}
	if !strings.Contains(err.Error(), "limit") {
		t.Errorf("Expected size limit error, got %v", err)
	}
}

func TestDownloadHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewDownloader(nil).Download(ctx, server.URL)
	if err == nil {
		t.Fatal("Expected an error when the context deadline passes")
	}
}

// errClient always fails, standing in for an unreachable archive.
type errClient struct{}

func (errClient) Do(req *http.Request) (*http.Response, error) {
	return nil, context.DeadlineExceeded
}

func TestDownloadWrapsClientError(t *testing.T) {
	downloader := NewDownloader(errClient{})

	_, err := downloader.Download(context.Background(), "http://exemplo.invalid/diario.pdf")
	if err == nil {
		t.Fatal("Expected the client error to surface")
	}
	if !strings.Contains(err.Error(), "exemplo.invalid") {
		t.Errorf("Expected the URL in the error, got %v", err)
	}
}
