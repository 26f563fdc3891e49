package feed

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	publishedFileName = "last_published.txt"
	scheduleFileName  = "schedule.zip"

	// The provider stamps published.txt like "10/18/2024 11:02:30 AM".
	publishedTimeFormat = "01/02/2006 03:04:05 PM"
)

// Fetcher downloads the static schedule archive and tracks the feed's
// publish timestamp, keeping a local cache so unchanged feeds are not
// re-downloaded.
type Fetcher struct {
	source *Source
	client *http.Client
}

func NewFetcher(source *Source) *Fetcher {
	return &Fetcher{
		source: source,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

// SchedulePath is where the cached archive lives.
func (f *Fetcher) SchedulePath() string {
	return filepath.Join(f.source.CacheDirectory, scheduleFileName)
}

// RemotePublishTimestamp fetches the provider's current version marker.
func (f *Fetcher) RemotePublishTimestamp() (string, error) {
	resp, err := f.get("/raw/published.txt")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	timestamp := strings.TrimSpace(string(body))
	if _, err := time.Parse(publishedTimeFormat, timestamp); err != nil {
		return "", fmt.Errorf("unexpected published.txt contents %q: %w", timestamp, err)
	}

	return timestamp, nil
}

// CachedPublishTimestamp returns the publish timestamp of the archive on
// disk, if any.
func (f *Fetcher) CachedPublishTimestamp() (string, bool) {
	contents, err := os.ReadFile(filepath.Join(f.source.CacheDirectory, publishedFileName))
	if err != nil {
		return "", false
	}

	return strings.TrimSpace(string(contents)), true
}

// CurrentPublishTimestamp prefers the cached marker and falls back to
// the remote one.
func (f *Fetcher) CurrentPublishTimestamp() (string, error) {
	if cached, ok := f.CachedPublishTimestamp(); ok {
		return cached, nil
	}

	return f.RemotePublishTimestamp()
}

// Refresh makes sure the cached archive matches the provider's current
// publish timestamp, downloading it when stale or missing. It returns
// the archive path, its publish timestamp and whether a download
// happened.
func (f *Fetcher) Refresh(force bool) (string, string, bool, error) {
	remoteTimestamp, err := f.RemotePublishTimestamp()
	if err != nil {
		return "", "", false, fmt.Errorf("failed to check publish timestamp: %w", err)
	}

	cachedTimestamp, cached := f.CachedPublishTimestamp()
	if cached && cachedTimestamp == remoteTimestamp && !force {
		if _, err := os.Stat(f.SchedulePath()); err == nil {
			log.Debug().Str("publish_timestamp", cachedTimestamp).Msg("Schedule archive is current")
			return f.SchedulePath(), cachedTimestamp, false, nil
		}
	}

	log.Info().
		Str("cached", cachedTimestamp).
		Str("remote", remoteTimestamp).
		Msg("Downloading schedule archive")

	if err := f.downloadSchedule(); err != nil {
		return "", "", false, err
	}

	if err := os.WriteFile(filepath.Join(f.source.CacheDirectory, publishedFileName), []byte(remoteTimestamp), 0644); err != nil {
		return "", "", false, err
	}

	return f.SchedulePath(), remoteTimestamp, true, nil
}

func (f *Fetcher) downloadSchedule() error {
	if err := os.MkdirAll(f.source.CacheDirectory, 0755); err != nil {
		return err
	}

	resp, err := f.get("/raw/schedule.zip")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(f.source.CacheDirectory, "schedule-*.zip")
	if err != nil {
		return err
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return err
	}
	tmpFile.Close()

	// Rename so readers only ever see a complete archive
	return os.Rename(tmpFile.Name(), f.SchedulePath())
}

func (f *Fetcher) get(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", f.source.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	if f.source.Username != "" {
		req.SetBasicAuth(f.source.Username, f.source.Password)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("feed request %s returned status %d", path, resp.StatusCode)
	}

	return resp, nil
}
