package cloudflare

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/internal/provider/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultInfo = `"result_info":{"page":1,"per_page":50,"count":1,"total_count":1,"total_pages":1}`

func zonesPageBody(page, totalCount int, zones ...string) string {
	const perPage = 50
	totalPages := (totalCount + perPage - 1) / perPage
	return `{"success":true,"errors":[],"result":[` + strings.Join(zones, ",") + `],` +
		fmt.Sprintf(`"result_info":{"page":%d,"per_page":%d,"count":%d,"total_count":%d,"total_pages":%d}}`,
			page, perPage, len(zones), totalCount, totalPages)
}

func filler(n int) (zones []string) {
	zones = make([]string, n)
	for i := range zones {
		zones[i] = fmt.Sprintf(`{"id":"filler%d","name":"filler%d.example.com"}`, i, i)
	}
	return zones
}

func Test_Resolver_Resolve(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		record      models.Record
		zonesPages  map[string]string
		recordsBody string
		resolved    models.Record
		errWrapped  error
	}{
		"nothing to resolve": {
			record: models.Record{Name: "home.example.com", ZoneID: "z", RecordID: "r"},
			resolved: models.Record{Name: "home.example.com", ZoneID: "z", RecordID: "r",
				APIToken: "token"},
		},
		"record ID only": {
			record:      models.Record{Type: "A", Name: "home.example.com", ZoneID: "zone-id"},
			recordsBody: `{"success":true,"errors":[],"result":[{"id":"record-id"}],` + resultInfo + `}`,
			resolved: models.Record{Type: "A", Name: "home.example.com", ZoneID: "zone-id",
				RecordID: "record-id", APIToken: "token"},
		},
		"zone and record IDs": {
			record: models.Record{Type: "AAAA", Name: "home.sub.example.com"},
			zonesPages: map[string]string{"1": `{"success":true,"errors":[],"result":[` +
				`{"id":"other","name":"example.org"},` +
				`{"id":"parent","name":"example.com"},` +
				`{"id":"child","name":"sub.example.com"}],` + resultInfo + `}`},
			recordsBody: `{"success":true,"errors":[],"result":[{"id":"record-id"}],` + resultInfo + `}`,
			resolved: models.Record{Type: "AAAA", Name: "home.sub.example.com", ZoneID: "child",
				RecordID: "record-id", APIToken: "token"},
		},
		"zone not found": {
			record: models.Record{Type: "A", Name: "home.example.net"},
			zonesPages: map[string]string{"1": `{"success":true,"errors":[],"result":[` +
				`{"id":"parent","name":"example.com"}],` + resultInfo + `}`},
			errWrapped: errors.ErrZoneNotFound,
		},
		"zone on second page": {
			record: models.Record{Type: "A", Name: "home.example.net"},
			zonesPages: map[string]string{
				"1": zonesPageBody(1, 51, filler(50)...),
				"2": zonesPageBody(2, 51, `{"id":"net","name":"example.net"}`),
			},
			recordsBody: `{"success":true,"errors":[],"result":[{"id":"record-id"}],` + resultInfo + `}`,
			resolved: models.Record{Type: "A", Name: "home.example.net", ZoneID: "net",
				RecordID: "record-id", APIToken: "token"},
		},
		"record not found": {
			record:      models.Record{Type: "A", Name: "home.example.com", ZoneID: "zone-id"},
			recordsBody: `{"success":true,"errors":[],"result":[],` + resultInfo + `}`,
			errWrapped:  errors.ErrRecordIDNotFound,
		},
		"too many records": {
			record: models.Record{Type: "A", Name: "home.example.com", ZoneID: "zone-id"},
			recordsBody: `{"success":true,"errors":[],"result":[{"id":"a"},{"id":"b"}],` +
				resultInfo + `}`,
			errWrapped: errors.ErrRecordIDsTooMany,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				switch {
				case r.URL.Path == "/zones":
					page := r.URL.Query().Get("page")
					if page == "" {
						page = "1"
					}
					body, ok := testCase.zonesPages[page]
					if !assert.True(t, ok, "unexpected zones page %q", page) {
						w.WriteHeader(http.StatusNotFound)
						return
					}
					_, _ = w.Write([]byte(body))
				case strings.HasPrefix(r.URL.Path, "/zones/") &&
					strings.HasSuffix(r.URL.Path, "/dns_records"):
					assert.Equal(t, testCase.record.Name, r.URL.Query().Get("name"))
					assert.Equal(t, testCase.record.Type, r.URL.Query().Get("type"))
					_, _ = w.Write([]byte(testCase.recordsBody))
				default:
					t.Errorf("unexpected request path %s", r.URL.Path)
					w.WriteHeader(http.StatusNotFound)
				}
			}))
			t.Cleanup(server.Close)

			resolver := NewResolver(server.Client(), server.URL)

			record := testCase.record
			record.APIToken = "token"
			resolved, err := resolver.Resolve(context.Background(), record)

			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.resolved, resolved)
		})
	}
}
