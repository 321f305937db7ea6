package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// cacheDuration determines how long a downloaded dataset is kept before refreshing
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source"`
	Body      json.RawMessage `json:"body"`
}

// cacheName turns a URL into a safe file name, e.g.
// "https://host/data/nameMap.json" -> "host_data_nameMap.json.json".
func cacheName(url string) string {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		}
		return '_'
	}, trimmed)
	return safe + ".json"
}

func getCachePath(url string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".schedfinder_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, cacheName(url)), nil
}

// readCache checks if a valid, unexpired cache exists for this URL
func readCache(url string) ([]byte, bool) {
	path, err := getCachePath(url)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Source != url || time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Body, true
}

// writeCache saves a downloaded dataset to disk. Bodies that are not valid
// JSON are not cached.
func writeCache(url string, body []byte) {
	if !json.Valid(body) {
		return
	}

	path, err := getCachePath(url)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Source:    url,
		Body:      body,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}

// ClearCache removes every cached dataset.
func ClearCache() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not find user home directory: %w", err)
	}
	return os.RemoveAll(filepath.Join(homeDir, ".schedfinder_cache"))
}
