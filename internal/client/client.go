package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/Belphemur/NewReleases/internal/apperrors"
	"github.com/Belphemur/NewReleases/internal/config"
	"github.com/Belphemur/NewReleases/internal/metrics"
	"github.com/Belphemur/NewReleases/internal/models"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultPageSize  = 100
	maxRetries       = 3
	baseRetryDelay   = 500 * time.Millisecond
	maxRetryDelay    = 2 * time.Second
	maxErrorBodySize = 512
)

// Library is the media server as seen by the release listing
type Library interface {
	// StreamRecentMovies streams every movie inside window, page by page.
	// The channel is closed when all items have been sent or the first
	// error (delivered as a StreamResult with Err set) has been sent.
	StreamRecentMovies(ctx context.Context, window models.ReleaseWindow) <-chan models.StreamResult[models.RawItem]

	// Ping checks that the media server answers.
	Ping(ctx context.Context) error

	// Close releases idle connections.
	Close() error
}

// client implements Library against the Emby REST API
type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userID     string
	pageSize   int
	userAgent  string
	retry      retrypolicy.RetryPolicy[[]byte]
}

// NewClient creates a media server client with proxy configuration if provided
func NewClient(cfg *config.Config) Library {
	return newClient(cfg, baseRetryDelay, maxRetryDelay)
}

func newClient(cfg *config.Config, retryDelay, retryMaxDelay time.Duration) *client {
	logger := config.GetLogger()
	timeout := config.ParseDuration(cfg.ClientTimeout, defaultTimeout)

	// Clone DefaultTransport to keep its pooling and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	pageSize := cfg.Emby.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newCompressionTransport(baseTransport),
		},
		baseURL:   strings.TrimRight(cfg.Emby.URL, "/"),
		apiKey:    cfg.Emby.APIKey,
		userID:    cfg.Emby.UserID,
		pageSize:  pageSize,
		userAgent: cfg.UserAgent,
		retry: retrypolicy.NewBuilder[[]byte]().
			HandleIf(isRetryable).
			WithMaxRetries(maxRetries).
			WithBackoff(retryDelay, retryMaxDelay).
			ReturnLastFailure().
			Build(),
	}
}

// isRetryable retries transport failures and 5xx answers, never cancellation
func isRetryable(_ []byte, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *apperrors.ErrUnexpectedStatus
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	var authErr *apperrors.ErrAuthFailed
	return !errors.As(err, &authErr)
}

// get performs an authenticated GET, retrying transient failures
func (c *client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return failsafe.NewExecutor[[]byte](c.retry).
		WithContext(ctx).
		Get(func() ([]byte, error) {
			return c.fetch(ctx, endpoint)
		})
}

func (c *client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	logger := config.GetLogger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("X-Emby-Token", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.LibraryRequestsTotal.WithLabelValues("error").Inc()
		logger.Warn().Err(err).Str("url", endpoint).Msg("Media server request failed")
		return nil, fmt.Errorf("failed to reach media server: %w", err)
	}
	defer resp.Body.Close()

	metrics.LibraryRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &apperrors.ErrAuthFailed{StatusCode: resp.StatusCode}
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		logger.Warn().
			Int("status", resp.StatusCode).
			Str("url", endpoint).
			Str("body", string(snippet)).
			Msg("Media server returned an error status")
		return nil, &apperrors.ErrUnexpectedStatus{StatusCode: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// Ping implements Library.Ping
func (c *client) Ping(ctx context.Context) error {
	body, err := c.get(ctx, "/System/Info/Public", nil)
	if err != nil {
		return err
	}

	var info systemInfoDTO
	if err := json.Unmarshal(body, &info); err != nil {
		return fmt.Errorf("failed to parse server info: %w", err)
	}
	logger := config.GetLogger()
	logger.Info().
		Str("server", info.ServerName).
		Str("version", info.Version).
		Msg("Connected to media server")
	return nil
}

// Close implements Library.Close
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
