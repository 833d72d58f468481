package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseSize = 64 << 10

// Client submits contact forms to the relay API.
type Client struct {
	endpoint string
	http     *http.Client
	onStatus func(Status)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for submissions.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithStatusHook registers a function called on every status change,
// including the cleared and in-progress states.
func WithStatusHook(fn func(Status)) Option {
	return func(c *Client) {
		c.onStatus = fn
	}
}

// New creates a client for the site at baseURL, e.g. "https://example.com".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/contact",
		http:     &http.Client{Timeout: 30 * time.Second},
		onStatus: func(Status) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type response struct {
	Error string `json:"error"`
	OK    bool   `json:"ok"`
}

// Submit validates the form locally and posts it. It never returns an error:
// every outcome, including transport failures, maps to a Status.
func (c *Client) Submit(ctx context.Context, f Form) Status {
	c.onStatus(Status{OK: true})

	f, problem := Check(f)
	if problem != "" {
		return c.report(failure(problem))
	}

	c.onStatus(success(MessageSending))

	resp, err := c.post(ctx, f)
	if err != nil {
		return c.report(failure(MessageUnexpected))
	}

	if resp.status < 200 || resp.status > 299 || !resp.body.OK {
		msg := resp.body.Error
		if msg == "" {
			msg = MessageFailed
		}
		return c.report(failure(msg))
	}

	return c.report(success(MessageSent))
}

func (c *Client) report(s Status) Status {
	c.onStatus(s)
	return s
}

type result struct {
	body   response
	status int
}

func (c *Client) post(ctx context.Context, f Form) (*result, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	r := &result{status: resp.StatusCode}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&r.body); err != nil {
		return nil, err
	}
	return r, nil
}
