package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// IsClientMode returns true if the program is run to query the
// health server of another instance of the program.
func IsClientMode(args []string) bool {
	return len(args) > 1 && args[1] == "healthcheck"
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

var ErrUnhealthy = errors.New("unhealthy")

// Query sends an HTTP request to the health server of the other
// instance of the program listening on the address given.
func (c *Client) Query(ctx context.Context, address string) (err error) {
	url := "http://" + address
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("querying health server: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	const maxBodySize = 1 << 16
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %s: reading body: %w", ErrUnhealthy, response.Status, err)
	}

	var data report
	err = json.Unmarshal(b, &data)
	if err != nil || data.Error == "" {
		return fmt.Errorf("%w: %s: %s", ErrUnhealthy, response.Status, strings.TrimSpace(string(b)))
	}
	return fmt.Errorf("%w: %s", ErrUnhealthy, data.Error)
}
