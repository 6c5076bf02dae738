package datafeed

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

	"github.com/tidwall/gjson"
)

const (
	pointerPath        = "data/latest.json"
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 8 * 1024 * 1024
)

var (
	// ErrMissingBaseURL indicates the data base URL was not provided.
	ErrMissingBaseURL = errors.New("datafeed: base URL is required")
	// ErrPointerNotFound indicates latest.json could not be fetched. The
	// message is user-facing: the page displays it verbatim.
	ErrPointerNotFound = errors.New("latest.json을 찾을 수 없습니다.")
)

// SnapshotError reports a non-success status while fetching the snapshot the
// pointer names. The message carries the attempted URL.
type SnapshotError struct {
	URL        string
	StatusCode int
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("데이터 파일을 불러오지 못했습니다: %s (HTTP %d)", e.URL, e.StatusCode)
}

// Client fetches the latest.json pointer and the snapshot it names.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	now        func() time.Time
}

// Option allows customizing the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClock overrides the clock used for the cache-busting token.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// NewClient builds a Client over the data base URL. The base URL should end
// with a slash when the site is hosted under a path prefix.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, ErrMissingBaseURL
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("datafeed: parse base URL: %w", err)
	}

	client := &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// FetchLatest retrieves and decodes the latest.json pointer record. Every
// call carries a fresh cache-busting token so a stale pointer is never served
// from an intermediate cache.
func (c *Client) FetchLatest(ctx context.Context) (*Pointer, error) {
	target, err := c.resolve(pointerPath)
	if err != nil {
		return nil, err
	}

	body, status, err := c.get(ctx, c.bust(target))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w (HTTP %d)", ErrPointerNotFound, status)
	}

	var p Pointer
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("latest.json 파싱 실패: %w", err)
	}
	return &p, nil
}

// FetchSnapshot retrieves the snapshot document the pointer names. rawURL may
// be relative (the collector writes "./data/{date}.json"); it resolves
// against the base URL. The body is returned verbatim after a validity check.
func (c *Client) FetchSnapshot(ctx context.Context, rawURL string) ([]byte, error) {
	if c == nil {
		return nil, errors.New("datafeed: client is nil")
	}

	target, err := c.resolve(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, err
	}
	attempted := target.String()

	body, status, err := c.get(ctx, c.bust(target))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &SnapshotError{URL: attempted, StatusCode: status}
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("데이터 파일 파싱 실패: %s", attempted)
	}
	return body, nil
}

// FetchDated retrieves a fixed-name dated snapshot directly, without the
// pointer indirection and without a cache-busting token.
func (c *Client) FetchDated(ctx context.Context, date string) ([]byte, error) {
	if c == nil {
		return nil, errors.New("datafeed: client is nil")
	}
	if strings.TrimSpace(date) == "" {
		return nil, errors.New("datafeed: date must not be empty")
	}

	target, err := c.resolve("data/" + date + ".json")
	if err != nil {
		return nil, err
	}

	body, status, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("datafeed: dated snapshot %s: HTTP %d", target.String(), status)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("datafeed: dated snapshot %s is not valid JSON", target.String())
	}
	return body, nil
}

func (c *Client) resolve(ref string) (*url.URL, error) {
	if c == nil || c.baseURL == nil {
		return nil, errors.New("datafeed: client is nil")
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("datafeed: parse snapshot URL: %w", err)
	}
	return c.baseURL.ResolveReference(parsed), nil
}

// bust appends the cache-busting token as the v query parameter.
func (c *Client) bust(u *url.URL) *url.URL {
	q := u.Query()
	q.Set("v", strconv.FormatInt(c.now().Unix(), 10))
	u.RawQuery = q.Encode()
	return u
}

func (c *Client) get(ctx context.Context, target *url.URL) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("datafeed: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("datafeed: execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("datafeed: read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
