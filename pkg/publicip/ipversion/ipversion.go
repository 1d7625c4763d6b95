package ipversion

import (
	"errors"
	"fmt"
	"net/netip"
)

type IPVersion uint8

const (
	IP4 IPVersion = iota + 1
	IP6
)

func (v IPVersion) String() string {
	switch v {
	case IP4:
		return "ipv4"
	case IP6:
		return "ipv6"
	default:
		return "ip?"
	}
}

// RecordType returns the DNS record type holding
// addresses of this IP version.
func (v IPVersion) RecordType() string {
	switch v {
	case IP4:
		return "A"
	case IP6:
		return "AAAA"
	default:
		panic(fmt.Sprintf("IP version %d has no record type", v))
	}
}

// Matches returns true if the ip given is of the IP version.
func (v IPVersion) Matches(ip netip.Addr) bool {
	switch v {
	case IP4:
		return ip.Is4()
	case IP6:
		return ip.Is6()
	default:
		return false
	}
}

var ErrRecordTypeUnknown = errors.New("record type is unknown")

// FromRecordType returns the IP version matching the DNS record type,
// which is either A or AAAA.
func FromRecordType(recordType string) (version IPVersion, err error) {
	switch recordType {
	case "A":
		return IP4, nil
	case "AAAA":
		return IP6, nil
	default:
		return 0, fmt.Errorf("%w: %q must be one of A or AAAA",
			ErrRecordTypeUnknown, recordType)
	}
}
