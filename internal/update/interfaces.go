package update

import (
	"context"
	"net/netip"

	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . PublicIPFetcher,Pusher,ShoutrrrClient,Logger

type PublicIPFetcher interface {
	IP(ctx context.Context, version ipversion.IPVersion) (ip netip.Addr, err error)
}

type ChangeDetector interface {
	HasChanged(version ipversion.IPVersion, candidate netip.Addr) (
		changed bool, previous netip.Addr)
}

type Pusher interface {
	Push(ctx context.Context, record models.Record, ip netip.Addr) (outcome models.Outcome)
}

type ShoutrrrClient interface {
	Notify(message string)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
