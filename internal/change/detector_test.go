package change

import (
	"net/netip"
	"sync"
	"testing"

	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
	"github.com/stretchr/testify/assert"
)

func Test_Detector_HasChanged(t *testing.T) {
	t.Parallel()

	detector := New()
	ipA := netip.AddrFrom4([4]byte{203, 0, 113, 7})
	ipB := netip.AddrFrom4([4]byte{203, 0, 113, 8})
	ip6 := netip.MustParseAddr("2001:db8::1")

	changed, previous := detector.HasChanged(ipversion.IP4, ipA)
	assert.True(t, changed)
	assert.Equal(t, netip.Addr{}, previous)

	changed, previous = detector.HasChanged(ipversion.IP4, ipA)
	assert.False(t, changed)
	assert.Equal(t, ipA, previous)

	changed, previous = detector.HasChanged(ipversion.IP4, ipB)
	assert.True(t, changed)
	assert.Equal(t, ipA, previous)

	// families are independent
	assert.Equal(t, netip.Addr{}, detector.Last(ipversion.IP6))
	changed, _ = detector.HasChanged(ipversion.IP6, ip6)
	assert.True(t, changed)
	assert.Equal(t, ipB, detector.Last(ipversion.IP4))
	assert.Equal(t, ip6, detector.Last(ipversion.IP6))
}

func Test_Detector_HasChanged_concurrent(t *testing.T) {
	t.Parallel()

	detector := New()
	ip := netip.AddrFrom4([4]byte{198, 51, 100, 1})

	const workers = 50
	changes := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			changed, _ := detector.HasChanged(ipversion.IP4, ip)
			changes <- changed
		}()
	}
	wg.Wait()
	close(changes)

	changedCount := 0
	for changed := range changes {
		if changed {
			changedCount++
		}
	}
	assert.Equal(t, 1, changedCount)
}
