// Package resolver builds the DNS resolver used by the HTTP client
// to resolve the Cloudflare API and public IP echo hostnames.
package resolver

import (
	"context"
	"net"
	"time"
)

// New returns a resolver sending its plaintext DNS queries over UDP
// to the address given. If the address is empty, the Go default
// resolver is returned.
func New(address string, timeout time.Duration) *net.Resolver {
	if address == "" {
		return net.DefaultResolver
	}

	dialer := net.Dialer{Timeout: timeout}
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			const protocol = "udp"
			return dialer.DialContext(ctx, protocol, address)
		},
	}
}
