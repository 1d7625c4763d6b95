// Package change keeps the last public IP address observed for each
// IP version, to only push records when the address changes.
package change

import (
	"fmt"
	"net/netip"
	"sync"

	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

// Detector holds the last observed address of each IP version.
// An invalid netip.Addr means no address was observed yet.
// It is safe for concurrent use.
type Detector struct {
	mutex sync.Mutex
	ipv4  netip.Addr
	ipv6  netip.Addr
}

func New() *Detector {
	return &Detector{}
}

// HasChanged compares the candidate address with the last address
// observed for the IP version. If they differ, the candidate replaces
// it and changed is true. The previous address is always returned.
// The check and the replacement are atomic.
func (d *Detector) HasChanged(version ipversion.IPVersion, candidate netip.Addr) (
	changed bool, previous netip.Addr) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	slot := d.slot(version)
	previous = *slot
	if previous == candidate {
		return false, previous
	}
	*slot = candidate
	return true, previous
}

// Last returns the last address observed for the IP version,
// which is invalid if none was observed yet.
func (d *Detector) Last(version ipversion.IPVersion) netip.Addr {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return *d.slot(version)
}

func (d *Detector) slot(version ipversion.IPVersion) *netip.Addr {
	switch version {
	case ipversion.IP4:
		return &d.ipv4
	case ipversion.IP6:
		return &d.ipv6
	default:
		panic(fmt.Sprintf("IP version %s is not supported", version))
	}
}
