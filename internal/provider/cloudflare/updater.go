// Package cloudflare pushes IP addresses to Cloudflare DNS records.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strings"

	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/internal/provider/errors"
	"github.com/qdm12/cfddns/internal/provider/headers"
	"github.com/qdm12/cfddns/pkg/failure"
)

const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// Updater overwrites the content of existing DNS records.
// Requests are never retried, since a write is not idempotent
// from the point of view of the remote API.
type Updater struct {
	client  *http.Client
	baseURL string
}

// New creates an updater sending requests to the base URL given,
// or to DefaultBaseURL if it is empty.
func New(client *http.Client, baseURL string) *Updater {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Updater{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Push sets the content of the record to the IP address given.
// Any failure is reported in the outcome returned.
func (u *Updater) Push(ctx context.Context, record models.Record,
	ip netip.Addr) (outcome models.Outcome) {
	return models.Outcome{
		Record: record,
		IP:     ip,
		Err:    u.push(ctx, record, ip),
	}
}

// See https://developers.cloudflare.com/api/operations/dns-records-for-a-zone-update-dns-record
func (u *Updater) push(ctx context.Context, record models.Record,
	ip netip.Addr) (err error) {
	endpoint := u.baseURL + "/zones/" + url.PathEscape(record.ZoneID) +
		"/dns_records/" + url.PathEscape(record.RecordID)

	requestData := struct {
		Type    string `json:"type"`    // A or AAAA depending on ip address given
		Name    string `json:"name"`    // DNS record name i.e. example.com
		TTL     uint32 `json:"ttl"`     // 1 means automatic
		Proxied bool   `json:"proxied"` // whether the record is receiving the performance and security benefits of Cloudflare
		Content string `json:"content"` // ip address
	}{
		Type:    record.Type,
		Name:    record.Name,
		TTL:     record.TTL,
		Proxied: record.Proxied,
		Content: ip.String(),
	}

	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	err = encoder.Encode(requestData)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrRequestEncode, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, buffer)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	setHeaders(request, record.APIToken)

	response, err := u.client.Do(request)
	if err != nil {
		return failure.WrapTransport(err)
	}
	defer response.Body.Close()

	err = failure.CheckStatus(response)
	if err != nil {
		return err
	}

	decoder := json.NewDecoder(response.Body)
	var parsedJSON struct {
		Success bool `json:"success"`
		Errors  []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
		Result struct {
			Content string `json:"content"`
		} `json:"result"`
	}
	err = decoder.Decode(&parsedJSON)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", failure.ErrMalformed,
			errors.ErrUnmarshalResponse, err)
	}

	if !parsedJSON.Success {
		messages := make([]string, len(parsedJSON.Errors))
		for i, e := range parsedJSON.Errors {
			messages[i] = fmt.Sprintf("error %d: %s", e.Code, e.Message)
		}
		return fmt.Errorf("%w: %w: %s", failure.ErrMalformed,
			errors.ErrUnsuccessful, strings.Join(messages, "; "))
	}

	if parsedJSON.Result.Content != "" {
		newIP, err := netip.ParseAddr(parsedJSON.Result.Content)
		if err != nil || newIP != ip {
			return fmt.Errorf("%w: %w: sent %s but received %q", failure.ErrMalformed,
				errors.ErrIPReceivedMismatch, ip, parsedJSON.Result.Content)
		}
	}

	return nil
}

func setHeaders(request *http.Request, token string) {
	headers.SetUserAgent(request)
	headers.SetContentType(request, "application/json")
	headers.SetAccept(request, "application/json")
	headers.SetAuthBearer(request, token)
}
