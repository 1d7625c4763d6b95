package dns

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/miekg/dns"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

// Provider is an echo DNS server answering with the
// public IP address of the client querying it.
type Provider string

const (
	Cloudflare Provider = "cloudflare"
	OpenDNS    Provider = "opendns"
)

func ListProviders() []Provider {
	return []Provider{
		Cloudflare,
		OpenDNS,
	}
}

var ErrUnknownProvider = errors.New("unknown public IP echo DNS provider")

func ValidateProvider(provider Provider) error {
	_, ok := servers[provider]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return nil
}

// server is a DNS over TLS server reached on its IPv4
// address to obtain the public IPv4 address, and on its
// IPv6 address to obtain the public IPv6 address.
type server struct {
	tlsName  string
	address4 netip.AddrPort
	address6 netip.AddrPort
	question dns.Question
}

const dnsOverTLSPort = 853

var servers = map[Provider]server{ //nolint:gochecknoglobals
	Cloudflare: {
		tlsName:  "cloudflare-dns.com",
		address4: netip.AddrPortFrom(netip.AddrFrom4([4]byte{1, 1, 1, 1}), dnsOverTLSPort),
		address6: netip.AddrPortFrom(netip.MustParseAddr("2606:4700:4700::1111"), dnsOverTLSPort),
		question: dns.Question{Name: "whoami.cloudflare.", Qtype: dns.TypeTXT, Qclass: dns.ClassCHAOS},
	},
	OpenDNS: {
		tlsName:  "dns.opendns.com",
		address4: netip.AddrPortFrom(netip.AddrFrom4([4]byte{208, 67, 222, 222}), dnsOverTLSPort),
		address6: netip.AddrPortFrom(netip.MustParseAddr("2620:119:35::35"), dnsOverTLSPort),
		// OpenDNS answers with an A or AAAA record depending
		// on the IP version of the server address queried.
		question: dns.Question{Name: "myip.opendns.com.", Qtype: dns.TypeANY, Qclass: dns.ClassINET},
	},
}

func (s server) address(version ipversion.IPVersion) netip.AddrPort {
	switch version {
	case ipversion.IP4:
		return s.address4
	case ipversion.IP6:
		return s.address6
	default:
		panic(fmt.Sprintf("IP version %s is not supported", version))
	}
}
