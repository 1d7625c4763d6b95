package params

import (
	"errors"
	"fmt"

	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

var (
	ErrNameEmpty     = errors.New("name is empty")
	ErrAPITokenEmpty = errors.New("API token is empty")
	ErrTTLNotValid   = errors.New("TTL is not valid")
)

// automaticTTL is the TTL value for Cloudflare to pick the TTL.
const automaticTTL = 1

func (f recordFields) toRecord() (record models.Record, err error) {
	_, err = ipversion.FromRecordType(f.Type)
	if err != nil {
		return record, err
	}

	switch {
	case f.Name == "":
		return record, fmt.Errorf("%w", ErrNameEmpty)
	case f.APIToken == "":
		return record, fmt.Errorf("%w: for %s", ErrAPITokenEmpty, f.Name)
	}

	ttl := f.TTL
	if ttl == 0 {
		ttl = automaticTTL
	}
	const minTTL, maxTTL = 30, 86400
	if ttl != automaticTTL && (ttl < minTTL || ttl > maxTTL) {
		return record, fmt.Errorf("%w: %d must be 1 for automatic or between %d and %d",
			ErrTTLNotValid, ttl, minTTL, maxTTL)
	}

	return models.Record{
		Type:     f.Type,
		Name:     f.Name,
		ZoneID:   f.ZoneID,
		RecordID: f.DNSID,
		APIToken: f.APIToken,
		TTL:      ttl,
		Proxied:  f.Proxied,
	}, nil
}
