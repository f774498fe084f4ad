// ABOUTME: Tests for the streaming HTTP client configuration
// ABOUTME: Checks timeouts, TLS floor, and proxy resolution from the environment

package http

import (
	"crypto/tls"
	"net/http"
	"testing"
)

func TestStreamingClient_NoOverallTimeout(t *testing.T) {
	t.Parallel()

	c := StreamingClient()
	if c.Timeout != 0 {
		t.Errorf("Timeout = %s, want 0 for unbounded streams", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport = %T, want *http.Transport", c.Transport)
	}
	if tr.ResponseHeaderTimeout == 0 || tr.TLSHandshakeTimeout == 0 {
		t.Error("header and handshake timeouts must be bounded")
	}
	if tr.TLSClientConfig == nil || tr.TLSClientConfig.MinVersion < tls.VersionTLS12 {
		t.Error("TLS 1.2 minimum not enforced")
	}
}

func TestStreamingTransport_Proxy(t *testing.T) {
	t.Setenv("HTTPS_PROXY", "http://proxy.test:3128")
	t.Setenv("NO_PROXY", "internal.test")

	tr := StreamingTransport()

	tests := []struct {
		url  string
		want string
	}{
		{"https://api.particle.io/v1/events", "http://proxy.test:3128"},
		{"https://internal.test/v1/events", ""},
	}
	for _, tt := range tests {
		req, err := http.NewRequest(http.MethodGet, tt.url, nil)
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		got, err := tr.Proxy(req)
		if err != nil {
			t.Fatalf("Proxy(%s): %v", tt.url, err)
		}
		gotStr := ""
		if got != nil {
			gotStr = got.String()
		}
		if gotStr != tt.want {
			t.Errorf("Proxy(%s) = %q, want %q", tt.url, gotStr, tt.want)
		}
	}
}
