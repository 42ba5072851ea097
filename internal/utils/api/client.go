package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second
)

// ClientOptions configure a Client
type ClientOptions struct {
	BaseURL    string
	Token      string
	UserAgent  string
	Accept     string
	Header     http.Header
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client is an authenticated JSON api client shared by the cloud packages
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	accept     string
	header     http.Header
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new api client
func NewClient(opts ClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	accept := opts.Accept
	if accept == "" {
		accept = MediaTypeApplicationJSON
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		token:      opts.Token,
		userAgent:  opts.UserAgent,
		accept:     accept,
		header:     opts.Header,
		httpClient: httpClient,
		logger:     logger,
	}
}

// BaseURL returns the client base url
func (c *Client) BaseURL() string { return c.baseURL }

// DoJSON sends the payload as a JSON request body
func (c *Client) DoJSON(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	options, err := JSONRequestOptions(payload)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, method, path, options)
}

// Do sends the request and returns the response regardless of its status code
// Callers are responsible for closing the response body
func (c *Client) Do(ctx context.Context, method, path string, options RequestOptions) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	for key, values := range options.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	requestID := uuid.New().String()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set(HeaderAccept, c.accept)
	if c.userAgent != "" {
		req.Header.Set(HeaderUserAgent, c.userAgent)
	}
	if c.token != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+c.token)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}
