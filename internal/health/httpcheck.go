package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/qdm12/cfddns/internal/provider/headers"
	"github.com/qdm12/cfddns/pkg/failure"
)

// CheckHTTP checks the Cloudflare API can be reached
// with the HTTP client given.
func CheckHTTP(ctx context.Context, client *http.Client, apiBaseURL string) (err error) {
	url := apiBaseURL + "/ips"
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	headers.SetUserAgent(request)

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("checking HTTPS connectivity: %w", failure.WrapTransport(err))
	}
	defer response.Body.Close()

	err = failure.CheckStatus(response)
	if err != nil {
		return fmt.Errorf("checking HTTPS connectivity: %w", err)
	}

	return nil
}
