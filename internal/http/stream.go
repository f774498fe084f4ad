// ABOUTME: HTTP client configuration for long-lived streaming responses
// ABOUTME: Bounded dial, TLS, and header timeouts; no overall timeout; proxy from environment

package http

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// StreamingTransport returns a transport for event streams. Proxy settings
// are read from HTTP_PROXY, HTTPS_PROXY, and NO_PROXY when it is called.
func StreamingTransport() *http.Transport {
	proxy := httpproxy.FromEnvironment().ProxyFunc()

	return &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			return proxy(req.URL)
		},
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       90 * time.Second,
	}
}

// StreamingClient returns a client without an overall timeout. Streams are
// ended by cancelling the request context or closing the body.
func StreamingClient() *http.Client {
	return &http.Client{Transport: StreamingTransport()}
}
