package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/aalvaropc/contrastly/internal/buildinfo"
)

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Truncated bool
	Duration  time.Duration
}

// Executor executes HTTP requests with timing.
type Executor struct {
	client  *http.Client
	timeout time.Duration
	maxBody int64
}

type ExecutorOption func(*Executor)

// WithTimeout sets the default timeout applied to requests.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBodyBytes caps the response body read. Zero disables the cap.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBody = n }
}

// NewExecutor builds an Executor with a default client and timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:  New(cfg),
		timeout: cfg.Timeout,
		maxBody: cfg.MaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewGetJSON builds a GET request asking for JSON.
func NewGetJSON(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	return req, nil
}

// Do executes the request and returns response data plus duration.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	if err != nil {
		return ResponseData{Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	if e.maxBody > 0 {
		r = io.LimitReader(resp.Body, e.maxBody+1)
	}

	body, err := io.ReadAll(r)
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Duration: duration}, err
	}

	truncated := false
	if e.maxBody > 0 && int64(len(body)) > e.maxBody {
		body = body[:e.maxBody]
		truncated = true
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Truncated: truncated,
		Duration:  duration,
	}, nil
}
