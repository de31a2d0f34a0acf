package client

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is Web browser User Agent sent on every platform request
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const (
	// RetryCount max automatic retries on transient server errors
	RetryCount = 5
	// RetryWaitTime initial backoff, doubled by resty up to RetryMaxWaitTime
	RetryWaitTime = 1 * time.Second
	// RetryMaxWaitTime ...
	RetryMaxWaitTime = 16 * time.Second
)

// New creates a resty client that transparently retries idempotent requests
// on connection failures and HTTP 500/502/503/504.
// Non-idempotent methods and other statuses surface immediately.
func New(log resty.Logger) *resty.Client {
	return resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(RetryCount).
		SetRetryWaitTime(RetryWaitTime).
		SetRetryMaxWaitTime(RetryMaxWaitTime).
		AddRetryCondition(RetryCondition).
		SetLogger(log)
}

// NewNoParseResponse creates a resty client with SetDoNotParseResponse option,
// used for streaming binary downloads.
func NewNoParseResponse(log resty.Logger) *resty.Client {
	return resty.New().
		SetTimeout(10 * time.Minute).
		SetHeader("User-Agent", UserAgent).
		SetDoNotParseResponse(true).
		SetLogger(log)
}

// RetryCondition implements the transport retry policy.
func RetryCondition(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil {
		return err != nil
	}
	if !isIdempotent(r.Request.Method) {
		return false
	}
	if err != nil {
		// connection failure
		return true
	}
	switch r.StatusCode() {
	case 500, 502, 503, 504:
		return true
	}
	return false
}

func isIdempotent(method string) bool {
	switch method {
	case resty.MethodGet, resty.MethodHead, resty.MethodOptions:
		return true
	}
	return false
}
