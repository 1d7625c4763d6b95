package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Resolver contains settings for the DNS resolver
// used by the HTTP client.
type Resolver struct {
	// Address is the host:port of a plaintext DNS server.
	// It defaults to the empty string meaning the Go
	// default resolver is used.
	Address *string
	Timeout time.Duration
}

func (r *Resolver) setDefaults() {
	r.Address = gosettings.DefaultPointer(r.Address, "")
	const defaultTimeout = 5 * time.Second
	r.Timeout = gosettings.DefaultComparable(r.Timeout, defaultTimeout)
}

var (
	ErrResolverAddressHostEmpty = errors.New("address host is empty")
	ErrResolverAddressPortEmpty = errors.New("address port is empty")
	ErrResolverTimeoutTooLow    = errors.New("timeout is too low")
)

func (r Resolver) Validate() (err error) {
	if *r.Address != "" {
		host, port, err := net.SplitHostPort(*r.Address)
		if err != nil {
			return fmt.Errorf("splitting host and port from address: %w", err)
		}

		switch {
		case host == "":
			return fmt.Errorf("%w: in %s", ErrResolverAddressHostEmpty, *r.Address)
		case port == "":
			return fmt.Errorf("%w: in %s", ErrResolverAddressPortEmpty, *r.Address)
		}
	}

	const minTimeout = 10 * time.Millisecond
	if r.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrResolverTimeoutTooLow, r.Timeout, minTimeout)
	}

	return nil
}

func (r Resolver) toLinesNode() *gotree.Node {
	if *r.Address == "" {
		return gotree.New("Resolver: use Go default resolver")
	}

	node := gotree.New("Resolver")
	node.Appendf("Address: %s", *r.Address)
	node.Appendf("Timeout: %s", r.Timeout)
	return node
}

func (r *Resolver) read(reader *reader.Reader) (err error) {
	r.Address = reader.Get("RESOLVER_ADDRESS")
	r.Timeout, err = reader.Duration("RESOLVER_TIMEOUT")
	if err != nil {
		return err
	}
	return nil
}
