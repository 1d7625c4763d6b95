// Package publicip obtains the public IP address of the machine
// for a given IP version, using echo HTTP endpoints, echo DNS
// servers over TLS, or both with the DNS servers as fallback.
package publicip

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/qdm12/cfddns/pkg/publicip/dns"
	"github.com/qdm12/cfddns/pkg/publicip/http"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

type ipFetcher interface {
	IP(ctx context.Context, version ipversion.IPVersion) (ip netip.Addr, err error)
}

type namedFetcher struct {
	name    string
	fetcher ipFetcher
}

// Fetcher queries its fetchers in order until one of them
// succeeds.
type Fetcher struct {
	fetchers []namedFetcher
}

var ErrNoFetchTypeSpecified = errors.New("at least one fetcher type must be specified")

// NewFetcher creates a fetcher using the HTTP fetcher first if
// enabled, and then the DNS fetcher if enabled.
func NewFetcher(dnsSettings DNSSettings, httpSettings HTTPSettings) (
	f *Fetcher, err error) {
	fetcher := &Fetcher{}

	if httpSettings.Enabled {
		subFetcher, err := http.New(httpSettings.Client, httpSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating HTTP fetcher: %w", err)
		}
		fetcher.fetchers = append(fetcher.fetchers, namedFetcher{name: "http", fetcher: subFetcher})
	}

	if dnsSettings.Enabled {
		subFetcher, err := dns.New(dnsSettings.Options...)
		if err != nil {
			return nil, fmt.Errorf("creating DNS fetcher: %w", err)
		}
		fetcher.fetchers = append(fetcher.fetchers, namedFetcher{name: "dns", fetcher: subFetcher})
	}

	if len(fetcher.fetchers) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFetchTypeSpecified)
	}

	return fetcher, nil
}

// IP returns the public IP address of the version given from the
// first fetcher succeeding. If all fetchers fail, the error returned
// joins the error of each fetcher.
func (f *Fetcher) IP(ctx context.Context, version ipversion.IPVersion) (
	ip netip.Addr, err error) {
	if len(f.fetchers) == 1 {
		return f.fetchers[0].fetcher.IP(ctx, version)
	}

	errs := make([]error, 0, len(f.fetchers))
	for _, named := range f.fetchers {
		ip, err = named.fetcher.IP(ctx, version)
		if err == nil {
			return ip, nil
		}
		errs = append(errs, fmt.Errorf("%s fetcher: %w", named.name, err))
		if ctx.Err() != nil {
			break
		}
	}
	return netip.Addr{}, errors.Join(errs...)
}
