package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/qdm12/cfddns/pkg/publicip"
	"github.com/qdm12/cfddns/pkg/publicip/dns"
	publichttp "github.com/qdm12/cfddns/pkg/publicip/http"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

const (
	fetcherHTTP = "http"
	fetcherDNS  = "dns"
	fetcherAll  = "all"
)

type PubIP struct {
	// Fetcher is the way to obtain the public IP address,
	// and can be "http", "dns" or "all". "all" queries the
	// echo HTTP URLs first and falls back on the DNS provider.
	Fetcher     string
	URL4        string
	URL6        string
	DNSProvider string
	DNSTimeout  time.Duration
}

func (p *PubIP) setDefaults() {
	p.Fetcher = gosettings.DefaultComparable(p.Fetcher, fetcherHTTP)
	p.URL4 = gosettings.DefaultComparable(p.URL4, publichttp.DefaultURL4)
	p.URL6 = gosettings.DefaultComparable(p.URL6, publichttp.DefaultURL6)
	p.DNSProvider = gosettings.DefaultComparable(p.DNSProvider, string(dns.Cloudflare))
	const defaultDNSTimeout = 5 * time.Second
	p.DNSTimeout = gosettings.DefaultComparable(p.DNSTimeout, defaultDNSTimeout)
}

func (p PubIP) Validate() (err error) {
	err = validate.IsOneOf(p.Fetcher, fetcherHTTP, fetcherDNS, fetcherAll)
	if err != nil {
		return fmt.Errorf("fetcher: %w", err)
	}

	if p.httpEnabled() {
		err = validateURL(p.URL4)
		if err != nil {
			return fmt.Errorf("IPv4 echo URL: %w", err)
		}
		err = validateURL(p.URL6)
		if err != nil {
			return fmt.Errorf("IPv6 echo URL: %w", err)
		}
	}

	if p.dnsEnabled() {
		err = dns.ValidateProvider(dns.Provider(p.DNSProvider))
		if err != nil {
			return fmt.Errorf("DNS provider: %w", err)
		}
		if p.DNSTimeout <= 0 {
			return fmt.Errorf("DNS timeout: %w: %s", ErrDNSTimeoutNotValid, p.DNSTimeout)
		}
	}

	return nil
}

func (p PubIP) httpEnabled() bool {
	return p.Fetcher == fetcherHTTP || p.Fetcher == fetcherAll
}

func (p PubIP) dnsEnabled() bool {
	return p.Fetcher == fetcherDNS || p.Fetcher == fetcherAll
}

var (
	ErrURLNotValid        = errors.New("URL is not valid")
	ErrDNSTimeoutNotValid = errors.New("DNS timeout must be positive")
)

func validateURL(rawURL string) (err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrURLNotValid, err)
	}

	err = validate.IsOneOf(u.Scheme, "http", "https")
	if err != nil {
		return fmt.Errorf("%w: scheme: %w", ErrURLNotValid, err)
	} else if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrURLNotValid, rawURL)
	}
	return nil
}

func (p PubIP) String() string {
	return p.toLinesNode().String()
}

func (p PubIP) toLinesNode() *gotree.Node {
	node := gotree.New("Public IP fetching")
	node.Appendf("Fetcher: %s", p.Fetcher)
	if p.httpEnabled() {
		node.Appendf("IPv4 URL: %s", p.URL4)
		node.Appendf("IPv6 URL: %s", p.URL6)
	}
	if p.dnsEnabled() {
		node.Appendf("DNS over TLS provider: %s", p.DNSProvider)
		node.Appendf("DNS timeout: %s", p.DNSTimeout)
	}
	return node
}

// ToFetcherSettings returns the settings for publicip.NewFetcher.
// It assumes the settings have been validated.
func (p PubIP) ToFetcherSettings(client *http.Client, retries uint16,
	logger publichttp.Debugger) (dnsSettings publicip.DNSSettings,
	httpSettings publicip.HTTPSettings) {
	dnsSettings = publicip.DNSSettings{
		Enabled: p.dnsEnabled(),
		Options: []dns.Option{
			dns.SetTimeout(p.DNSTimeout),
			dns.SetProviders(dns.Provider(p.DNSProvider)),
		},
	}
	httpSettings = publicip.HTTPSettings{
		Enabled: p.httpEnabled(),
		Client:  client,
		Options: p.ToHTTPOptions(retries, logger),
	}
	return dnsSettings, httpSettings
}

func (p PubIP) ToHTTPOptions(retries uint16,
	logger publichttp.Debugger) (options []publichttp.Option) {
	options = []publichttp.Option{
		publichttp.SetURL4(p.URL4),
		publichttp.SetURL6(p.URL6),
		publichttp.SetRetries(uint(retries)),
	}
	if logger != nil {
		options = append(options, publichttp.SetLogger(logger))
	}
	return options
}

func (p *PubIP) read(r *reader.Reader) (err error) {
	p.Fetcher = r.String("PUBLICIP_FETCHER")
	p.URL4 = r.String("IPV4_URL", reader.ForceLowercase(false))
	p.URL6 = r.String("IPV6_URL", reader.ForceLowercase(false))
	p.DNSProvider = r.String("PUBLICIP_DNS_PROVIDER")
	p.DNSTimeout, err = r.Duration("PUBLICIP_DNS_TIMEOUT")
	return err
}
