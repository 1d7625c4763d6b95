package dns

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/qdm12/cfddns/pkg/failure"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

// IP returns the public IP address for the IP version given,
// querying the next provider over TLS on its server address
// of that IP version.
func (f *Fetcher) IP(ctx context.Context, version ipversion.IPVersion) (
	publicIP netip.Addr, err error) {
	provider := f.nextProvider()
	server := servers[provider]
	exchanger := f.exchangers[provider].ip4
	if version == ipversion.IP6 {
		exchanger = f.exchangers[provider].ip6
	}

	publicIPs, err := fetch(ctx, exchanger, server.address(version), server.question)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%s: %w", provider, err)
	}

	for _, ip := range publicIPs {
		if version.Matches(ip) {
			return ip, nil
		}
	}
	return netip.Addr{}, fmt.Errorf("%s: %w: %w: for %s",
		provider, failure.ErrMalformed, ErrIPNotFoundForVersion, version)
}

func (f *Fetcher) IP4(ctx context.Context) (publicIP netip.Addr, err error) {
	return f.IP(ctx, ipversion.IP4)
}

func (f *Fetcher) IP6(ctx context.Context) (publicIP netip.Addr, err error) {
	return f.IP(ctx, ipversion.IP6)
}
