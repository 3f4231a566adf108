// Package apiclient is the console's only path to the temple backend: a
// thin JSON client over the configured base URL and versioned path
// prefix, decoding every response through the uniform envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

type Options struct {
	BaseURL    string
	PathPrefix string
	Timeout    time.Duration
	// RetryCount bounds transport-level retries for GET requests.
	// Writes are never retried.
	RetryCount      uint64
	RequestIDHeader string
	Authorization   string
	Logger          *logrus.Logger
	HTTPClient      *http.Client
}

type Client struct {
	baseURL         *url.URL
	pathPrefix      string
	httpClient      *http.Client
	retryCount      uint64
	requestIDHeader string
	authorization   string
	log             *logrus.Logger
}

func New(opts Options) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(opts.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid api base url: %q", opts.BaseURL)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:         u,
		pathPrefix:      "/" + strings.Trim(opts.PathPrefix, "/"),
		httpClient:      httpClient,
		retryCount:      opts.RetryCount,
		requestIDHeader: opts.RequestIDHeader,
		authorization:   opts.Authorization,
		log:             opts.Logger,
	}, nil
}

// Get issues a GET and decodes the envelope. Transport failures and 5xx
// statuses are retried with constant backoff up to the configured
// count; envelope-level failures are not.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	if c.retryCount == 0 {
		return c.do(ctx, http.MethodGet, path, query, nil)
	}
	var env *Envelope
	backoff := retry.WithMaxRetries(c.retryCount, retry.NewConstant(250*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		env, err = c.do(ctx, http.MethodGet, path, query, nil)
		if err != nil && isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	return env, err
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, reqBody any) (*Envelope, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + c.pathPrefix + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.requestIDHeader != "" {
		req.Header.Set(c.requestIDHeader, uuid.NewString())
	}
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transportError{errors.Wrapf(err, "%s %s", method, u.Path)}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{errors.Wrap(err, "read response")}
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"method":   method,
			"path":     u.Path,
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
		}).Debug("backend request")
	}

	if resp.StatusCode >= 500 {
		return nil, &transportError{errors.Errorf("%s %s: status %d", method, u.Path, resp.StatusCode)}
	}

	env := &Envelope{}
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, env); err != nil {
			return nil, errors.Wrapf(err, "decode envelope (%s %s)", method, u.Path)
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		env.Success = false
		return env, env.Err(resp.StatusCode, strings.ToLower(method)+" "+path)
	}
	return env, nil
}

type transportError struct {
	error
}

func (e *transportError) Unwrap() error {
	return e.error
}

func isRetryable(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}
