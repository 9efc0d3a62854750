package trainmapeva

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/theoremus-urban-solutions/trainmap-eva/utils"
)

// fetcher reads run inputs from local files or http(s) URLs
type fetcher struct {
	httpClient *http.Client
}

// newFetcher creates a fetcher; timeoutMS <= 0 disables the HTTP timeout
func newFetcher(timeoutMS int) *fetcher {
	c := &http.Client{}
	if timeoutMS > 0 {
		c.Timeout = time.Duration(timeoutMS) * time.Millisecond
	}
	return &fetcher{httpClient: c}
}

// fetch returns the raw bytes behind a URL or file path
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if !utils.IsRemote(urlOrPath) {
		return os.ReadFile(urlOrPath)
	}

	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

// Fetch reads a local file or downloads an http(s) URL
func Fetch(urlOrPath string, timeoutMS int) ([]byte, error) {
	return newFetcher(timeoutMS).fetch(urlOrPath)
}
