package shoutrrr

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/types"
)

type sender interface {
	Send(message string, params *types.Params) []error
}

// Client sends notifications to the Shoutrrr addresses configured.
// It is safe for concurrent use.
type Client struct {
	sendMutex    sync.Mutex
	sender       sender
	serviceNames []string
	logger       Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		addresses[i] = addDefaultTitle(address, settings.DefaultTitle)
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	serviceNames := make([]string, len(addresses))
	for i, address := range addresses {
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	return &Client{
		sender:       serviceRouter,
		serviceNames: serviceNames,
		logger:       settings.Logger,
	}, nil
}

// Notify sends the message to all the addresses, and logs
// each sending error without returning it.
func (c *Client) Notify(message string) {
	if len(c.serviceNames) == 0 {
		return
	}

	c.sendMutex.Lock()
	defer c.sendMutex.Unlock()
	errs := c.sender.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func addDefaultTitle(address, defaultTitle string) (updatedAddress string) {
	u, err := url.Parse(address)
	if err != nil {
		// address should already be validated
		panic(fmt.Sprintf("parsing address as url: %s", err))
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String()
}
