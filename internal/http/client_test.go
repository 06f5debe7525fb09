package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient() *Client {
	return NewClient(5*time.Second, "test-agent", 0)
}

func TestClient_GetString(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	body, err := newTestClient().GetString(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if body != "hello" {
		t.Errorf("body = %q", body)
	}
	if gotAgent != "test-agent" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
}

func TestClient_Get_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := newTestClient().Get(context.Background(), srv.URL); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestClient_DownloadFile(t *testing.T) {
	payload := []byte("image bytes go here")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "0001.jpg")
	var lastWritten int64
	written, err := newTestClient().DownloadFile(context.Background(), srv.URL, dest, func(w, total int64) {
		lastWritten = w
	})
	if err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}
	if written != int64(len(payload)) {
		t.Errorf("written = %d, want %d", written, len(payload))
	}
	if lastWritten != int64(len(payload)) {
		t.Errorf("progress reported %d bytes, want %d", lastWritten, len(payload))
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("downloaded bytes differ from payload")
	}
}

func TestClient_DownloadFile_RemovesPartialOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Announce more bytes than sent, then cut the connection to
		// force an error mid-body.
		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("partial"))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		hj, ok := w.(http.Hijacker)
		if !ok {
			return
		}
		conn, _, _ := hj.Hijack()
		conn.Close()
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "0001.jpg")
	if _, err := newTestClient().DownloadFile(context.Background(), srv.URL, dest, nil); err == nil {
		t.Fatal("expected error from truncated body")
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("partial file should have been removed, stat err = %v", err)
	}
}

func TestClient_DownloadFile_NonSuccessDoesNotCreateFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "0001.jpg")
	if _, err := newTestClient().DownloadFile(context.Background(), srv.URL, dest, nil); err == nil {
		t.Fatal("expected error for 410 response")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("no file should exist after a non-2xx response")
	}
}

func TestClient_Pacing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, "test-agent", 50*time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.Get(ctx, srv.URL); err != nil {
			t.Fatalf("Get: %v", err)
		}
	}
	// First request is immediate; the next two wait ~50ms each.
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("three paced requests finished in %v, want >= ~100ms", elapsed)
	}
}
