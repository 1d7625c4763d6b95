// Package network builds the HTTP client shared by the public IP
// fetcher and the DNS record updater.
package network

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// NewClient returns an HTTP client where connecting, the TLS
// handshake and waiting for response headers are each bounded
// by the timeout given, and a whole call including reading the
// response body is bounded by twice the timeout.
// Hostnames are resolved with the resolver given, and if the
// logger is not nil, requests and responses are logged at the
// debug level.
func NewClient(timeout time.Duration, resolver *net.Resolver,
	logger DebugLogger) *http.Client {
	transport := cleanhttp.DefaultPooledTransport()
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second, //nolint:gomnd
		Resolver:  resolver,
	}
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = timeout
	transport.ResponseHeaderTimeout = timeout
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	const connectAndRead = 2
	client := &http.Client{
		Transport: transport,
		Timeout:   connectAndRead * timeout,
	}
	if logger != nil {
		client.Transport = &loggingRoundTripper{
			proxied: transport,
			logger:  logger,
		}
	}
	return client
}
