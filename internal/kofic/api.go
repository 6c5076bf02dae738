package kofic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL     = "https://www.kobis.or.kr/kobisopenapi/webservice/rest"
	dailyBoxOfficePath = "/boxoffice/searchDailyBoxOfficeList.json"
	defaultHTTPTimeout = 30 * time.Second
	maxBodyBytes       = 8 * 1024 * 1024
)

var (
	// ErrMissingAPIKey indicates the KOFIC API key was not provided.
	ErrMissingAPIKey = errors.New("kofic: API key is required")
	// ErrEmptyTargetDt indicates the caller did not pass a target date.
	ErrEmptyTargetDt = errors.New("kofic: targetDt must not be empty")
)

// Client invokes the KOFIC open API.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
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

// NewClient builds a Client using the provided base URL and API key. An
// empty base URL falls back to the public KOFIC endpoint.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	trimmedURL := strings.TrimSpace(baseURL)
	if trimmedURL == "" {
		trimmedURL = defaultBaseURL
	}

	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, ErrMissingAPIKey
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return nil, fmt.Errorf("kofic: parse base URL: %w", err)
	}

	client := &Client{
		baseURL: parsedURL,
		apiKey:  trimmedKey,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// NewFromEnv constructs a Client using the KOFIC_BASE_URL and KOFIC_API_KEY
// environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	return NewClient(os.Getenv("KOFIC_BASE_URL"), os.Getenv("KOFIC_API_KEY"), opts...)
}

// UpstreamError captures non-200 responses from the KOFIC open API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("kofic: upstream %d", e.StatusCode)
}

// DailyBoxOffice fetches the daily box-office document for targetDt
// (YYYYMMDD) and returns the body verbatim, so the archive stores exactly
// what the upstream served.
func (c *Client) DailyBoxOffice(ctx context.Context, targetDt string) ([]byte, error) {
	if c == nil {
		return nil, errors.New("kofic: client is nil")
	}
	if ctx == nil {
		return nil, errors.New("kofic: context is nil")
	}
	trimmedDt := strings.TrimSpace(targetDt)
	if trimmedDt == "" {
		return nil, ErrEmptyTargetDt
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("targetDt", trimmedDt)

	endpoint := *c.baseURL
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + dailyBoxOfficePath
	endpoint.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("kofic: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kofic: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("kofic: read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("kofic: response is not valid JSON")
	}

	// The upstream reports key and parameter errors as a 200 with faultInfo.
	if fault := gjson.GetBytes(body, "faultInfo"); fault.Exists() {
		return nil, fmt.Errorf("kofic: fault %s: %s",
			fault.Get("errorCode").String(), fault.Get("message").String())
	}

	return body, nil
}
