package classmap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultURL is the upstream class mapping maintained alongside the Discord
// client builds.
const DefaultURL = "https://raw.githubusercontent.com/IBeSarah/DiscordClasses/main/discordclasses.json"

// Fetcher retrieves the upstream mapping. A single blocking GET, no retry,
// no backoff: the tools are run by hand and a failure is just reported.
type Fetcher struct {
	URL    string
	Client *http.Client
}

// NewFetcher creates a Fetcher for the given URL (DefaultURL when empty).
func NewFetcher(url string) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads and parses the mapping.
func (f *Fetcher) Fetch(ctx context.Context) (Mapping, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class mapping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch class mapping: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read class mapping response: %w", err)
	}
	return ParseMapping(data)
}

// LoadFile parses a mapping from a local JSON file, for offline runs.
func LoadFile(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseMapping(data)
}
