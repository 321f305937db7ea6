package dataset

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestClient_OpenLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exams.json")
	if err := os.WriteFile(path, []byte(`[]`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	rc, err := NewClient().Open(path)
	if err != nil {
		t.Fatalf("unexpected error opening local file: %v", err)
	}
	defer rc.Close()

	body, _ := io.ReadAll(rc)
	if string(body) != "[]" {
		t.Errorf("expected [], got %q", body)
	}
}

func TestClient_OpenMissing(t *testing.T) {
	if _, err := NewClient().Open(""); err == nil {
		t.Errorf("expected an error for an empty source")
	}
	if _, err := NewClient().Open(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestClient_FetchUsesCache(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"monday":{"Schedule":[],"Special":[]}}`))
	}))
	defer server.Close()

	client := NewClient()
	for i := 0; i < 2; i++ {
		if _, err := client.Fetch(server.URL + "/schedule.json"); err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
	}

	if hits != 1 {
		t.Errorf("expected second fetch to be served from cache, server saw %d requests", hits)
	}
}

func TestClient_GetWithRetries_Success(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient()
	client.backoff = 0

	resp, err := client.getWithRetries(server.URL)
	if err != nil {
		t.Fatalf("expected retry to succeed on 3rd attempt, got error: %v", err)
	}
	defer resp.Body.Close()

	if attempts != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", attempts)
	}
}

func TestClient_GetWithRetries_NotFoundIsFinal(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient()
	client.backoff = 0

	if _, err := client.getWithRetries(server.URL); err == nil {
		t.Fatalf("expected 404 to fail")
	}
	if attempts != 1 {
		t.Errorf("expected a 404 not to be retried, got %d attempts", attempts)
	}
}
