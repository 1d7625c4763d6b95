package cloudflare

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/internal/provider/errors"
)

// Resolver fills in the zone and record identifiers missing
// from records, using the Cloudflare API.
type Resolver struct {
	client  *http.Client
	baseURL string
}

func NewResolver(client *http.Client, baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Resolver{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Resolve returns the record with its zone ID and record ID set.
// Records having both identifiers set are returned as they are,
// without any API call.
func (r *Resolver) Resolve(ctx context.Context, record models.Record) (
	resolved models.Record, err error) {
	if record.ZoneID != "" && record.RecordID != "" {
		return record, nil
	}

	api, err := cloudflare.NewWithAPIToken(record.APIToken,
		cloudflare.HTTPClient(r.client), cloudflare.BaseURL(r.baseURL))
	if err != nil {
		return record, fmt.Errorf("creating Cloudflare API client: %w", err)
	}

	if record.ZoneID == "" {
		record.ZoneID, err = findZoneID(ctx, api, record.Name)
		if err != nil {
			return record, fmt.Errorf("finding zone ID for %s: %w", record.Name, err)
		}
	}

	if record.RecordID == "" {
		record.RecordID, err = findRecordID(ctx, api, record)
		if err != nil {
			return record, fmt.Errorf("finding record ID for %s: %w", record, err)
		}
	}

	return record, nil
}

// findZoneID returns the identifier of the zone with the longest
// name the record name is a subdomain of, searching all the
// pages of zones.
func findZoneID(ctx context.Context, api *cloudflare.API, name string) (
	zoneID string, err error) {
	response, err := api.ListZonesContext(ctx)
	if err != nil {
		return "", fmt.Errorf("listing zones: %w", err)
	}
	zones := response.Result

	name = strings.TrimSuffix(name, ".")
	longest := 0
	for _, zone := range zones {
		if (name == zone.Name || strings.HasSuffix(name, "."+zone.Name)) &&
			len(zone.Name) > longest {
			longest, zoneID = len(zone.Name), zone.ID
		}
	}

	if zoneID == "" {
		return "", fmt.Errorf("%w: amongst %d zones", errors.ErrZoneNotFound, len(zones))
	}
	return zoneID, nil
}

func findRecordID(ctx context.Context, api *cloudflare.API,
	record models.Record) (recordID string, err error) {
	records, _, err := api.ListDNSRecords(ctx, cloudflare.ZoneIdentifier(record.ZoneID),
		cloudflare.ListDNSRecordsParams{
			Type: record.Type,
			Name: record.Name,
		})
	if err != nil {
		return "", fmt.Errorf("listing DNS records: %w", err)
	}

	switch len(records) {
	case 0:
		return "", fmt.Errorf("%w", errors.ErrRecordIDNotFound)
	case 1:
		return records[0].ID, nil
	default:
		return "", fmt.Errorf("%w: %d records match", errors.ErrRecordIDsTooMany, len(records))
	}
}
