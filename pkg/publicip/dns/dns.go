package dns

import (
	"crypto/tls"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"
)

// Fetcher obtains the public IP address of the machine by querying
// echo DNS servers over TLS, one provider after the other.
type Fetcher struct {
	providers []Provider
	// queries counts the queries sent to pick the next provider.
	queries    atomic.Uint32
	exchangers map[Provider]exchangers
}

// exchangers holds the TLS clients of a provider,
// one per IP version of the server address.
type exchangers struct {
	ip4 Exchanger
	ip6 Exchanger
}

func New(options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	fetcher := &Fetcher{
		providers:  settings.providers,
		exchangers: make(map[Provider]exchangers, len(settings.providers)),
	}

	for _, provider := range settings.providers {
		tlsName := servers[provider].tlsName
		fetcher.exchangers[provider] = exchangers{
			ip4: newTLSClient("tcp4-tls", tlsName, settings.timeout),
			ip6: newTLSClient("tcp6-tls", tlsName, settings.timeout),
		}
	}

	return fetcher, nil
}

func newTLSClient(network, tlsName string, timeout time.Duration) *dns.Client {
	return &dns.Client{
		Net:     network,
		Timeout: timeout,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: tlsName,
		},
	}
}

func (f *Fetcher) nextProvider() Provider {
	index := (f.queries.Add(1) - 1) % uint32(len(f.providers))
	return f.providers[index]
}
