package httpclient

import (
	"context"
	"io"
)

// HTTPRequest represents an HTTP request
type HTTPRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    io.Reader
	Context context.Context

	// LogURL replaces URL in logs and errors when the URL carries a secret
	LogURL string
}

// displayURL is the URL as it may appear in logs and errors
func (r *HTTPRequest) displayURL() string {
	if r.LogURL != "" {
		return r.LogURL
	}
	return r.URL
}

// HTTPResponse represents an HTTP response
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// IsSuccess reports a 2xx status
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// BodySnippet returns at most n bytes of the body, for logs and error messages
func (r *HTTPResponse) BodySnippet(n int) string {
	if len(r.Body) <= n {
		return string(r.Body)
	}
	return string(r.Body[:n])
}
