// Package rewrite talks to the remote text-generation service that turns a
// news topic into a set of labeled reframings.
package rewrite

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/csheth/newsreframer/internal/config"
	"github.com/csheth/newsreframer/internal/logging"
)

// RewritePath is appended to the resolved base URL.
const RewritePath = "/api/rewrite"

// Client requests reframings for a topic.
type Client interface {
	Rewrite(ctx context.Context, topic string) (Result, error)
	// BaseURL reports the endpoint the next request will use.
	BaseURL() string
}

// Config describes how to build a Client.
type Config struct {
	Resolution config.Resolution
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// New builds an HTTP-backed Client.
func New(cfg Config) Client {
	return &httpClient{
		resolution: cfg.Resolution,
		client:     pickHTTPClient(cfg.HTTPClient),
		logger:     logging.Or(cfg.Logger),
	}
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// No client-side timeout; a request runs until the server settles it.
	return &http.Client{}
}

type httpClient struct {
	resolution config.Resolution
	client     *http.Client
	logger     *zap.Logger
}

func (c *httpClient) BaseURL() string {
	return c.resolution.Endpoint()
}

type rewriteRequest struct {
	Query string `json:"query"`
}

func (c *httpClient) Rewrite(ctx context.Context, topic string) (Result, error) {
	topic, err := ValidateTopic(topic)
	if err != nil {
		return Result{}, err
	}

	base := c.resolution.Endpoint()
	c.logger.Info("API base resolved",
		zap.String("base", base),
		zap.String("configured", c.resolution.Base),
		zap.String("source", c.resolution.Source),
	)

	buf, err := json.Marshal(rewriteRequest{Query: topic})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+RewritePath, bytes.NewReader(buf))
	if err != nil {
		return Result{}, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &NetworkError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	result, err := DecodeResult(body)
	if err != nil {
		return Result{}, &MalformedResponseError{Err: err}
	}
	return result, nil
}
