package fetcher

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/round_tripper_mock.go -package=mocks net/http RoundTripper

const _imagePrefix = "image/"

// HTTPFetcher handles downloading image data from HTTP/HTTPS URLs
type HTTPFetcher struct {
	logger    *zap.Logger
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewHTTPFetcher creates a new HTTP-based fetcher instance
func NewHTTPFetcher(logger *zap.Logger, cfg *config.AppConfig) *HTTPFetcher {
	return NewHTTPFetcherWithClient(logger, cfg, &http.Client{Timeout: cfg.FetchTimeout})
}

// NewHTTPFetcherWithClient creates a fetcher that sends requests through client
func NewHTTPFetcherWithClient(logger *zap.Logger, cfg *config.AppConfig, client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{
		logger:    logger,
		client:    client,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxImageBytes,
	}
}

// Fetch downloads image data from the given URL. No retries are made.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*domain.FetchResult, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, domain.Errorf(domain.KindInvalidInput, "URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.Errorf(domain.KindInvalidInput, "invalid URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domain.Errorf(domain.KindTransferError, "HTTP request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.Errorf(domain.KindRemoteError, "HTTP error from %s: %s", url, resp.Status)
	}

	values := resp.Header.Values("Content-Type")
	if len(values) == 0 {
		return nil, domain.Errorf(domain.KindProtocolViolation, "server at %s did not provide a Content-Type header", url)
	}
	if !isVisibleASCII(values[0]) {
		return nil, domain.Errorf(domain.KindProtocolViolation, "Content-Type from %s has invalid characters", url)
	}

	mediaType := strings.ToLower(values[0])
	if !strings.HasPrefix(mediaType, _imagePrefix) {
		return nil, domain.Errorf(domain.KindNotAnImage, "not an image: Content-Type was `%s`", mediaType)
	}

	// Read one byte past the limit so an oversized body is detected instead
	// of being silently truncated into a broken image
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, domain.Errorf(domain.KindTransferError, "failed to read response body from %s: %w", url, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, domain.Errorf(domain.KindTransferError, "response body from %s exceeds %d bytes", url, f.maxBytes)
	}

	f.logContentMismatch(url, mediaType, data)

	f.logger.Debug("Image fetched successfully",
		zap.Int("bytes", len(data)),
		zap.String("url", url),
		zap.String("contentType", mediaType))

	return &domain.FetchResult{Bytes: data, MediaType: mediaType}, nil
}

// logContentMismatch warns when the body does not look like what the server
// declared. The declared type stays authoritative.
func (f *HTTPFetcher) logContentMismatch(url, declared string, data []byte) {
	detected := mimetype.Detect(data)
	if strings.HasPrefix(detected.String(), _imagePrefix) {
		return
	}
	f.logger.Warn("Downloaded body does not look like an image",
		zap.String("url", url),
		zap.String("declared", declared),
		zap.String("detected", detected.String()))
}

// isVisibleASCII reports whether a header value can be decoded as text:
// printable ASCII plus horizontal tab.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
