package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/qdm12/cfddns/pkg/failure"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

var (
	ErrIPMalformed       = errors.New("IP address malformed")
	ErrIPVersionMismatch = errors.New("IP address version mismatch")
)

func fetch(ctx context.Context, client *http.Client, url string,
	version ipversion.IPVersion) (publicIP netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return publicIP, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("User-Agent", "cfddns")

	response, err := client.Do(request)
	if err != nil {
		return publicIP, failure.WrapTransport(err)
	}
	defer response.Body.Close()

	err = failure.CheckStatus(response)
	if err != nil {
		return publicIP, fmt.Errorf("from %s: %w", url, err)
	}

	// An echo endpoint answers with a single address,
	// a larger body is malformed anyway.
	const maxBodySize = 1024
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return publicIP, failure.WrapTransport(fmt.Errorf("reading response body: %w", err))
	}

	s := strings.TrimSpace(string(b))
	publicIP, err = netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w: %w",
			failure.ErrMalformed, ErrIPMalformed, err)
	}

	if !version.Matches(publicIP) {
		return netip.Addr{}, fmt.Errorf("%w: %w: %s is not an %s address",
			failure.ErrMalformed, ErrIPVersionMismatch, publicIP, version)
	}

	return publicIP, nil
}
