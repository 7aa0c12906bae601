// Package http provides the HTTP-download-backed implementation of
// salaw.DocumentStore. It owns the on-disk PDF cache: downloads are
// streamed to disk, validated (status, content type, size floor, magic
// bytes), and retried with exponential backoff before a resource is
// admitted to the available set.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mokoena/salaw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultDownloadTimeout is the per-request timeout for document downloads.
const DefaultDownloadTimeout = 30 * time.Second

// defaultUserAgent mirrors a desktop browser; the upstream host serves
// error pages to unknown clients.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const (
	// pdfMagic is the canonical PDF header.
	pdfMagic = "%PDF"

	// minFileSize is the smallest plausible PDF. Anything under this is a
	// truncated download or an error page.
	minFileSize = 2048

	// initConcurrency bounds parallel downloads during Init.
	initConcurrency = 4
)

// DefaultRetryDelays returns the backoff delays between download attempts:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Store implements salaw.DocumentStore at compile time.
var _ salaw.DocumentStore = (*Store)(nil)

// Store caches catalog documents in a local directory. The available set is
// read-mostly: many concurrent readers during request handling, a rare
// writer during Refresh.
type Store struct {
	dir       string
	catalog   salaw.Catalog
	client    *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
	userAgent string
	delays    []time.Duration

	mu        sync.RWMutex
	available map[string]salaw.Resource // keyed by Filename
}

// Option configures a Store.
type Option func(*Store)

// WithTimeout sets the per-download HTTP timeout.
// Defaults to DefaultDownloadTimeout (30s).
func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.client.Timeout = d
	}
}

// WithRetryDelays sets the backoff delays between download attempts; one
// attempt is made per delay, with delays[k] slept after failed attempt k.
// Useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *Store) {
		s.delays = delays
	}
}

// WithUserAgent overrides the User-Agent header sent on downloads.
func WithUserAgent(ua string) Option {
	return func(s *Store) {
		s.userAgent = ua
	}
}

// WithRateLimit sets the download rate limit in requests per second.
// Defaults to 1 rps with no bursting.
func WithRateLimit(rps float64) Option {
	return func(s *Store) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewStore creates a Store caching documents from catalog under dir.
func NewStore(dir string, catalog salaw.Catalog, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		dir:       dir,
		catalog:   catalog,
		client:    &http.Client{Timeout: DefaultDownloadTimeout},
		limiter:   rate.NewLimiter(1, 1),
		logger:    logger,
		userAgent: defaultUserAgent,
		delays:    DefaultRetryDelays(),
		available: make(map[string]salaw.Resource),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init validates or downloads every catalog entry once. Entries that cannot
// be acquired are logged and excluded; only an unusable cache directory is
// fatal.
func (s *Store) Init(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return salaw.Errorf(salaw.EINTERNAL, "create documents directory %q: %v", s.dir, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(initConcurrency)
	for i := range s.catalog {
		res := s.catalog[i]
		g.Go(func() error {
			if s.EnsureAvailable(gctx, &res) {
				s.logger.Info("document available", "name", res.Name)
			} else {
				s.logger.Error("document unavailable after retries", "name", res.Name, "url", res.SourceURL)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	got := len(s.Available())
	s.logger.Info("document store initialized", "available", got, "catalog", len(s.catalog))
	return nil
}

// EnsureAvailable reports whether a validated cached copy exists or could
// be produced. A valid existing file short-circuits the network entirely.
func (s *Store) EnsureAvailable(ctx context.Context, res *salaw.Resource) bool {
	path := filepath.Join(s.dir, res.Filename)

	if err := validateFile(path); err == nil {
		s.markAvailable(res)
		return true
	} else if !os.IsNotExist(err) {
		s.logger.Warn("removing invalid cached document", "name", res.Name, "reason", err)
		_ = os.Remove(path)
	}

	if s.download(ctx, res, path) {
		s.markAvailable(res)
		return true
	}
	return false
}

// download attempts the HTTP GET up to len(delays) times with exponential
// backoff. Any validation failure deletes the partial file and counts as a
// failed attempt.
func (s *Store) download(ctx context.Context, res *salaw.Resource, path string) bool {
	attempts := len(s.delays)
	for attempt := 0; attempt < attempts; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return false
		}

		err := s.downloadOnce(ctx, res, path)
		if err == nil {
			return true
		}
		s.logger.Warn("download attempt failed",
			"name", res.Name,
			"attempt", attempt+1,
			"error", err,
		)
		_ = os.Remove(path)

		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.delays[attempt]):
		}
	}
	s.logger.Error("download failed after retries", "name", res.Name, "attempts", attempts)
	return false
}

// downloadOnce performs a single GET, streams the body to disk, and
// validates the result.
func (s *Store) downloadOnce(ctx context.Context, res *salaw.Resource, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.SourceURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, res.SourceURL)
	}

	// Error pages served with a 200 status are the common failure mode
	// upstream; reject anything that does not claim to be a PDF or a
	// generic binary stream.
	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "pdf") && !strings.Contains(contentType, "octet-stream") {
		return fmt.Errorf("unexpected content type %q", contentType)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return validateFile(path)
}

// validateFile checks that the file at path is a plausible PDF: above the
// minimum size and starting with the canonical magic bytes.
func validateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() < minFileSize {
		return fmt.Errorf("file too small (%d bytes)", info.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return err
	}
	if string(header) != pdfMagic {
		return fmt.Errorf("not a valid PDF (bad header)")
	}
	return nil
}

func (s *Store) markAvailable(res *salaw.Resource) {
	s.mu.Lock()
	s.available[res.Filename] = *res
	s.mu.Unlock()
}

// Available returns a snapshot of the currently validated resources, in
// catalog order.
func (s *Store) Available() []salaw.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]salaw.Resource, 0, len(s.available))
	for _, res := range s.catalog {
		if _, ok := s.available[res.Filename]; ok {
			out = append(out, res)
		}
	}
	return out
}

// Statuses reports the cache state of every catalog entry.
func (s *Store) Statuses() []salaw.ResourceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]salaw.ResourceStatus, 0, len(s.catalog))
	for _, res := range s.catalog {
		st := salaw.ResourceStatus{Resource: res}
		if info, err := os.Stat(filepath.Join(s.dir, res.Filename)); err == nil {
			st.Size = info.Size()
		}
		_, st.Available = s.available[res.Filename]
		out = append(out, st)
	}
	return out
}

// Refresh deletes all cached PDF files and reruns the full
// validate-or-download pass from empty state.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.available = make(map[string]salaw.Resource)
	s.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(s.dir, "*.pdf"))
	if err != nil {
		return salaw.Errorf(salaw.EINTERNAL, "list cached documents: %v", err)
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			s.logger.Error("delete cached document", "path", path, "error", err)
		}
	}

	s.logger.Info("document cache cleared, reinitializing")
	return s.Init(ctx)
}

// Open returns a reader over the cached document bytes.
func (s *Store) Open(res *salaw.Resource) (io.ReadCloser, error) {
	s.mu.RLock()
	_, ok := s.available[res.Filename]
	s.mu.RUnlock()
	if !ok {
		return nil, salaw.Errorf(salaw.ENOTFOUND, "document %q not available", res.Name)
	}

	f, err := os.Open(filepath.Join(s.dir, res.Filename))
	if err != nil {
		return nil, salaw.Errorf(salaw.ENOTFOUND, "document %q not available: %v", res.Name, err)
	}
	return f, nil
}
