package httpclient

import (
	"net"
	"net/http"
	"time"
)

type Config struct {
	// Total timeout for the entire request. A context deadline can still override it.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int

	// MaxBodyBytes caps how much of a response body is read. Zero means no cap.
	MaxBodyBytes int64
}

// DefaultConfig is tuned for small metadata lookups; nothing in the tool
// downloads large payloads.
func DefaultConfig() Config {
	return Config{
		Timeout:             10 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      5 * time.Second,
		IdleConnTimeout:     30 * time.Second,
		MaxIdleConns:        4,
		MaxIdleConnsPerHost: 2,
		MaxBodyBytes:        1 << 20,
	}
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
