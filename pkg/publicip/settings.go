package publicip

import (
	"net/http"

	"github.com/qdm12/cfddns/pkg/publicip/dns"
	iphttp "github.com/qdm12/cfddns/pkg/publicip/http"
)

// DNSSettings are the settings of the echo DNS over TLS fetcher,
// used as fallback if the HTTP fetcher is also enabled.
type DNSSettings struct {
	Enabled bool
	Options []dns.Option
}

// HTTPSettings are the settings of the echo HTTP fetcher,
// queried first if enabled.
type HTTPSettings struct {
	Enabled bool
	Client  *http.Client
	Options []iphttp.Option
}
