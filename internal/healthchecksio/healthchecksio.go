// Package healthchecksio pings a healthchecks.io compatible
// server with the outcome of each update cycle.
package healthchecksio

import (
	"context"
	"fmt"
	"net/http"

	"github.com/qdm12/cfddns/internal/provider/headers"
	"github.com/qdm12/cfddns/pkg/failure"
)

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		uuid:       uuid,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

func (c *Client) Ping(ctx context.Context, state State) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if state != Ok {
		url += "/" + string(state)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	headers.SetUserAgent(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", failure.WrapTransport(err))
	}
	defer response.Body.Close()

	err = failure.CheckStatus(response)
	if err != nil {
		return fmt.Errorf("pinging %s: %w", state, err)
	}

	return nil
}
