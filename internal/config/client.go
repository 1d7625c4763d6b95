package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Client struct {
	Timeout time.Duration
	// Retries is the number of transport retries for
	// public IP echo requests. Writes are never retried.
	Retries *uint16
}

func (c *Client) setDefaults() {
	const defaultTimeout = 5 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
	const defaultRetries = 3
	c.Retries = gosettings.DefaultPointer(c.Retries, defaultRetries)
}

var ErrTimeoutTooLow = errors.New("timeout is too low")

func (c Client) Validate() (err error) {
	const minTimeout = 100 * time.Millisecond
	if c.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrTimeoutTooLow, c.Timeout, minTimeout)
	}
	return nil
}

func (c Client) String() string {
	return c.toLinesNode().String()
}

func (c Client) toLinesNode() *gotree.Node {
	node := gotree.New("HTTP client")
	node.Appendf("Timeout: %s", c.Timeout)
	node.Appendf("Public IP retries: %d", *c.Retries)
	return node
}

func (c *Client) read(reader *reader.Reader) (err error) {
	c.Timeout, err = reader.Duration("HTTP_TIMEOUT")
	if err != nil {
		return err
	}

	c.Retries, err = reader.Uint16Ptr("HTTP_RETRIES")
	return err
}
