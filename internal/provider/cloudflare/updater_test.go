package cloudflare

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/internal/provider/errors"
	"github.com/qdm12/cfddns/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Updater_Push(t *testing.T) {
	t.Parallel()

	record := models.Record{
		Type:     "A",
		Name:     "home.example.com",
		ZoneID:   "zone-id",
		RecordID: "record-id",
		APIToken: "token",
		TTL:      120,
		Proxied:  true,
	}
	ip := netip.AddrFrom4([4]byte{203, 0, 113, 7})

	testCases := map[string]struct {
		status     int
		body       string
		kind       failure.Kind
		errWrapped error
		errMessage string
	}{
		"success": {
			status: http.StatusOK,
			body:   `{"success":true,"errors":[],"result":{"id":"record-id","content":"203.0.113.7"}}`,
		},
		"success without result content": {
			status: http.StatusOK,
			body:   `{"success":true,"errors":[]}`,
		},
		"bad status": {
			status:     http.StatusForbidden,
			body:       `{"success":false,"errors":[{"code":9109,"message":"Invalid access token"}]}`,
			kind:       failure.BadStatus,
			errWrapped: failure.ErrBadHTTPStatus,
			errMessage: `bad HTTP status: 403: {"success":false,"errors":[{"code":9109,"message":"Invalid access token"}]}`,
		},
		"not JSON": {
			status:     http.StatusOK,
			body:       `<html></html>`,
			kind:       failure.Malformed,
			errWrapped: errors.ErrUnmarshalResponse,
			errMessage: "malformed response: cannot unmarshal update response: " +
				"invalid character '<' looking for beginning of value",
		},
		"unsuccessful": {
			status:     http.StatusOK,
			body:       `{"success":false,"errors":[{"code":1004,"message":"DNS Validation Error"}]}`,
			kind:       failure.Malformed,
			errWrapped: errors.ErrUnsuccessful,
			errMessage: "malformed response: unsuccessful response: error 1004: DNS Validation Error",
		},
		"content mismatch": {
			status:     http.StatusOK,
			body:       `{"success":true,"errors":[],"result":{"content":"203.0.113.8"}}`,
			kind:       failure.Malformed,
			errWrapped: errors.ErrIPReceivedMismatch,
			errMessage: `malformed response: mismatching IP address received: ` +
				`sent 203.0.113.7 but received "203.0.113.8"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/zones/zone-id/dns_records/record-id", r.URL.Path)
				assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body map[string]any
				err := json.NewDecoder(r.Body).Decode(&body)
				require.NoError(t, err)
				expectedBody := map[string]any{
					"type":    "A",
					"name":    "home.example.com",
					"ttl":     float64(120),
					"proxied": true,
					"content": "203.0.113.7",
				}
				assert.Equal(t, expectedBody, body)

				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(testCase.body))
			}))
			t.Cleanup(server.Close)

			updater := New(server.Client(), server.URL+"/")

			outcome := updater.Push(context.Background(), record, ip)

			assert.Equal(t, record, outcome.Record)
			assert.Equal(t, ip, outcome.IP)
			assert.Equal(t, testCase.kind, failure.Classify(outcome.Err))
			if testCase.errMessage == "" {
				assert.True(t, outcome.Success())
				return
			}
			assert.False(t, outcome.Success())
			assert.ErrorIs(t, outcome.Err, testCase.errWrapped)
			assert.EqualError(t, outcome.Err, testCase.errMessage)
		})
	}
}

func Test_Updater_Push_connectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	client := server.Client()
	server.Close()

	updater := New(client, baseURL)

	outcome := updater.Push(context.Background(), models.Record{Type: "A"},
		netip.AddrFrom4([4]byte{203, 0, 113, 7}))

	assert.Equal(t, failure.Connect, failure.Classify(outcome.Err))
}
