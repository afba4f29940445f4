package rickmorty

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// CharacterFetcher defines the two read-only endpoints the app depends on.
// This interface is implemented by *Client and can be used for testing.
type CharacterFetcher interface {
	FetchCharacters(ctx context.Context, page int) (*CharacterPage, error)
	FetchCharacter(ctx context.Context, id int) (*Character, error)
}

// Ensure Client implements CharacterFetcher at compile time.
var _ CharacterFetcher = (*Client)(nil)

// Client talks to the Rick and Morty REST API.
type Client struct {
	baseURL   string
	http      *resty.Client
	limiter   ratelimit.Limiter
	logger    log.FieldLogger
	timeout   time.Duration
	userAgent string
	perSecond int
	maxImage  int64
}

const (
	DefaultBaseURL   = "https://rickandmortyapi.com/api/"
	defaultUserAgent = "morty/0.1"
	requestTimeout   = 10 * time.Second

	// DefaultMaxImageBytes caps a single FetchImage download.
	DefaultMaxImageBytes = 2 << 20
)

// ErrImageTooLarge is returned by FetchImage when the body exceeds the limit.
var ErrImageTooLarge = errors.New("image exceeds size limit")

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimit paces outgoing requests to perSecond. Zero or negative
// disables pacing.
func WithRateLimit(perSecond int) Option {
	return func(c *Client) {
		c.perSecond = perSecond
	}
}

// WithMaxImageBytes caps FetchImage bodies. Non-positive values keep the
// default.
func WithMaxImageBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxImage = n
		}
	}
}

// WithLogger routes request logging to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:   base,
		logger:    log.StandardLogger(),
		timeout:   requestTimeout,
		userAgent: defaultUserAgent,
		maxImage:  DefaultMaxImageBytes,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.limiter = ratelimit.NewUnlimited()
	if c.perSecond > 0 {
		c.limiter = ratelimit.New(c.perSecond)
	}

	c.http = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.userAgent)

	return c, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	if c == nil || c.http == nil {
		return nil
	}
	return c.http.Close()
}

// FetchCharacters retrieves one page of the character listing.
func (c *Client) FetchCharacters(ctx context.Context, page int) (*CharacterPage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if page <= 0 {
		return nil, fmt.Errorf("page must be positive, got %d", page)
	}

	req := c.http.R().SetQueryParam("page", strconv.Itoa(page))
	rel := "/character?page=" + strconv.Itoa(page)
	body, err := c.get(ctx, req, "/character", c.resolve(rel))
	if err != nil {
		return nil, err
	}
	payload, err := decodeCharacterPage(body)
	if err != nil {
		return nil, &DecodeError{Op: http.MethodGet, URL: c.resolve(rel), Err: err}
	}
	return &payload, nil
}

// FetchCharacter retrieves a single character by id.
func (c *Client) FetchCharacter(ctx context.Context, id int) (*Character, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return nil, fmt.Errorf("character id must be positive, got %d", id)
	}

	req := c.http.R().SetPathParam("id", strconv.Itoa(id))
	rel := "/character/" + strconv.Itoa(id)
	body, err := c.get(ctx, req, "/character/{id}", c.resolve(rel))
	if err != nil {
		return nil, err
	}
	payload, err := decodeCharacter(body)
	if err != nil {
		return nil, &DecodeError{Op: http.MethodGet, URL: c.resolve(rel), Err: err}
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, req *resty.Request, path, full string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, &NetworkError{Op: http.MethodGet, URL: full, Err: err}
	}

	c.limiter.Take()
	started := time.Now()

	resp, err := req.SetContext(ctx).Get(path)
	fields := log.Fields{
		"op":      http.MethodGet,
		"url":     full,
		"elapsed": time.Since(started).Round(time.Millisecond),
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		c.logger.WithFields(fields).Warnf("request failed: %v", err)
		return nil, &NetworkError{Op: http.MethodGet, URL: full, Err: err}
	}

	fields["status"] = resp.StatusCode()
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		c.logger.WithFields(fields).Warn("request returned non-success status")
		return nil, &NetworkError{
			Op:         http.MethodGet,
			URL:        full,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}

	c.logger.WithFields(fields).Debug("request completed")
	return resp.Bytes(), nil
}

// FetchImage downloads the raw bytes behind an absolute image URI. Images
// are served outside the API root, so the base URL does not apply.
func (c *Client) FetchImage(ctx context.Context, rawURL string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse image url %q: %w", rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("image url %q is not absolute", rawURL)
	}

	req := c.http.R().
		SetHeader("Accept", "image/*").
		SetResponseBodyLimit(c.maxImage)
	body, err := c.get(ctx, req, u.String(), u.String())
	if errors.Is(err, resty.ErrReadExceedsThresholdLimit) || (err == nil && int64(len(body)) > c.maxImage) {
		return nil, fmt.Errorf("%w: %s (limit %d bytes)", ErrImageTooLarge, u, c.maxImage)
	}
	return body, err
}

func (c *Client) resolve(rel string) string {
	return c.baseURL + rel
}

func parseBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}
