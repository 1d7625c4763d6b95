package models

import (
	"fmt"
	"net/netip"

	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

// Record is a DNS record to keep pointing to the public IP address.
type Record struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	ZoneID   string `json:"zone_id"`
	RecordID string `json:"dns_id"`
	APIToken string `json:"-"`
	TTL      uint32 `json:"ttl"`
	Proxied  bool   `json:"proxied"`
}

// IPVersion returns the IP version of the record type,
// which must have been validated before.
func (r Record) IPVersion() ipversion.IPVersion {
	version, err := ipversion.FromRecordType(r.Type)
	if err != nil {
		panic(err)
	}
	return version
}

func (r Record) String() string {
	return fmt.Sprintf("%s record %s (zone %s)", r.Type, r.Name, r.ZoneID)
}

// GroupByFamily splits the records given into A and AAAA records,
// keeping their relative order.
func GroupByFamily(records []Record) (ipv4, ipv6 []Record) {
	for _, record := range records {
		switch record.IPVersion() {
		case ipversion.IP4:
			ipv4 = append(ipv4, record)
		case ipversion.IP6:
			ipv6 = append(ipv6, record)
		}
	}
	return ipv4, ipv6
}

// Outcome is the result of pushing an IP address to a record.
type Outcome struct {
	Record Record
	IP     netip.Addr
	// Err is nil on success.
	Err error
}

func (o Outcome) Success() bool {
	return o.Err == nil
}
