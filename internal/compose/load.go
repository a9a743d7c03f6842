package compose

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tplforge/tplforge/internal/git"
	"github.com/tplforge/tplforge/internal/log"
)

// Loader obtains compose document text from a local path, an HTTP(S) URL or
// a git repository, and parses it.
type Loader struct {
	timeout time.Duration
	logger  log.Logger
	client  *http.Client
}

// NewLoader creates a Loader with the given fetch timeout.
func NewLoader(timeout time.Duration, logger log.Logger) *Loader {
	return &Loader{
		timeout: timeout,
		logger:  logger,
		client:  &http.Client{Timeout: timeout},
	}
}

// Load resolves source, reads the document text and parses it. Sources
// ending in .git or using a git scheme are cloned; http:// and https://
// sources are fetched with a bounded timeout; anything else is a local
// file path.
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	text, err := l.readSource(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

func (l *Loader) readSource(ctx context.Context, source string) (string, error) {
	switch {
	case isGitSource(source):
		l.logger.Debug("Loading compose document from git repository", "url", source)
		return l.fetchGit(ctx, source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		l.logger.Debug("Fetching compose document", "url", source)
		return l.fetchHTTP(ctx, source)
	default:
		l.logger.Debug("Reading compose document", "path", source)
		return readFile(source)
	}
}

func isGitSource(source string) bool {
	return strings.HasSuffix(source, ".git") ||
		strings.HasPrefix(source, "git://") ||
		strings.HasPrefix(source, "ssh://") ||
		strings.HasPrefix(source, "git@")
}

func (l *Loader) fetchHTTP(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &fetchError{url: url, cause: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", &fetchError{url: url, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &fetchError{url: url, status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &fetchError{url: url, cause: err}
	}
	return string(body), nil
}

func (l *Loader) fetchGit(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	text, err := git.ComposeFileFromRepo(ctx, url, l.logger)
	if err != nil {
		return "", &fetchError{url: url, cause: err}
	}
	return text, nil
}

func readFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &notFoundError{path: path, cause: err}
		}
		return "", &readError{path: path, cause: err}
	}
	if info.IsDir() {
		return "", &readError{path: path, cause: fmt.Errorf("path is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &readError{path: path, cause: err}
	}
	return string(data), nil
}
