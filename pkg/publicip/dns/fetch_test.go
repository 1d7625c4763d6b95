package dns

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/qdm12/cfddns/pkg/failure"
	"github.com/qdm12/cfddns/pkg/publicip/dns/mock_dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_fetch(t *testing.T) {
	t.Parallel()

	address := netip.MustParseAddrPort("192.0.2.53:853")
	question := dns.Question{Name: "record.", Qtype: dns.TypeTXT, Qclass: dns.ClassNONE}

	expectedMessage := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode: dns.OpcodeQuery,
		},
		Question: []dns.Question{question},
	}

	txtHeader := dns.RR_Header{Rrtype: dns.TypeTXT}

	testCases := map[string]struct {
		response    *dns.Msg
		exchangeErr error
		publicIPs   []netip.Addr
		kind        failure.Kind
		errMessage  string
	}{
		"TXT answer": {
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.TXT{Hdr: txtHeader, Txt: []string{"55.55.55.55"}},
				},
			},
			publicIPs: []netip.Addr{netip.AddrFrom4([4]byte{55, 55, 55, 55})},
		},
		"A and AAAA answers": {
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.A{A: net.IPv4(198, 51, 100, 2)},
					&dns.NS{Ns: "ns.example.com."},
					&dns.AAAA{AAAA: net.ParseIP("2001:db8::2")},
				},
			},
			publicIPs: []netip.Addr{
				netip.AddrFrom4([4]byte{198, 51, 100, 2}),
				netip.MustParseAddr("2001:db8::2"),
			},
		},
		"exchange error": {
			exchangeErr: errors.New("dummy"),
			kind:        failure.Transport,
			errMessage:  "transport error: dummy",
		},
		"exchange timeout": {
			exchangeErr: &net.OpError{Op: "read", Net: "tcp", Err: timeoutError{}},
			kind:        failure.Timeout,
			errMessage:  "timed out: read tcp: i/o timeout",
		},
		"no answer": {
			response:   &dns.Msg{},
			kind:       failure.Malformed,
			errMessage: "malformed response: response answer not received",
		},
		"no address answer": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.NS{Ns: "ns.example.com."}},
			},
			kind:       failure.Malformed,
			errMessage: "malformed response: response answer not received",
		},
		"empty A answer": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.A{Hdr: dns.RR_Header{Rrtype: dns.TypeA}}},
			},
			kind:       failure.Malformed,
			errMessage: "malformed response: A answer: IP address malformed: <nil>",
		},
		"no TXT record": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.TXT{Hdr: txtHeader}},
			},
			kind:       failure.Malformed,
			errMessage: "malformed response: TXT answer: record is empty",
		},
		"too many TXT record": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.TXT{
					Hdr: txtHeader,
					Txt: []string{"a", "b"},
				}},
			},
			kind: failure.Malformed,
			errMessage: "malformed response: TXT answer: " +
				"too many TXT records: 2 instead of 1",
		},
		"invalid IP address": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.TXT{
					Hdr: txtHeader,
					Txt: []string{"invalid"},
				}},
			},
			kind: failure.Malformed,
			errMessage: `malformed response: TXT answer: ` +
				`IP address malformed: ParseAddr("invalid"): unable to parse IP`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()

			exchanger := mock_dns.NewMockExchanger(ctrl)
			exchanger.EXPECT().
				ExchangeContext(ctx, expectedMessage, "192.0.2.53:853").
				Return(testCase.response, time.Millisecond, testCase.exchangeErr)

			publicIPs, err := fetch(ctx, exchanger, address, question)

			assert.Equal(t, testCase.kind, failure.Classify(err))
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.publicIPs, publicIPs)
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func Test_Fetcher_IP(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	exchanger4 := mock_dns.NewMockExchanger(ctrl)
	exchanger4.EXPECT().
		ExchangeContext(ctx, gomock.Any(), "208.67.222.222:853").
		Return(&dns.Msg{
			Answer: []dns.RR{
				&dns.A{A: net.IPv4(198, 51, 100, 2)},
			},
		}, time.Millisecond, nil)

	exchanger6 := mock_dns.NewMockExchanger(ctrl)
	exchanger6.EXPECT().
		ExchangeContext(ctx, gomock.Any(), "[2620:119:35::35]:853").
		Return(&dns.Msg{
			Answer: []dns.RR{
				&dns.A{A: net.IPv4(198, 51, 100, 2)},
			},
		}, time.Millisecond, nil)

	fetcher := &Fetcher{
		providers: []Provider{OpenDNS},
		exchangers: map[Provider]exchangers{
			OpenDNS: {ip4: exchanger4, ip6: exchanger6},
		},
	}

	publicIP, err := fetcher.IP4(ctx)
	assert.NoError(t, err)
	assert.Equal(t, netip.AddrFrom4([4]byte{198, 51, 100, 2}), publicIP)

	publicIP, err = fetcher.IP6(ctx)
	assert.ErrorIs(t, err, ErrIPNotFoundForVersion)
	assert.Equal(t, failure.Malformed, failure.Classify(err))
	assert.EqualError(t, err, "opendns: malformed response: "+
		"IP addresses found but not for IP version: for ipv6")
	assert.Equal(t, netip.Addr{}, publicIP)
}

func Test_Fetcher_nextProvider(t *testing.T) {
	t.Parallel()

	fetcher := &Fetcher{providers: []Provider{Cloudflare, OpenDNS}}

	providers := make([]Provider, 3)
	for i := range providers {
		providers[i] = fetcher.nextProvider()
	}

	assert.Equal(t, []Provider{Cloudflare, OpenDNS, Cloudflare}, providers)
}

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options    []Option
		providers  []Provider
		errWrapped error
		errMessage string
	}{
		"defaults": {
			providers: []Provider{Cloudflare, OpenDNS},
		},
		"duplicate providers": {
			options:   []Option{SetProviders(OpenDNS, OpenDNS), SetTimeout(time.Second)},
			providers: []Provider{OpenDNS},
		},
		"unknown provider": {
			options:    []Option{SetProviders(Provider("google"))},
			errWrapped: ErrUnknownProvider,
			errMessage: "unknown public IP echo DNS provider: google",
		},
		"zero timeout": {
			options:    []Option{SetTimeout(0)},
			errWrapped: ErrTimeoutNotValid,
			errMessage: "timeout is not valid: 0s must be positive",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fetcher, err := New(testCase.options...)

			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.providers, fetcher.providers)
			for _, provider := range testCase.providers {
				assert.NotNil(t, fetcher.exchangers[provider].ip4)
				assert.NotNil(t, fetcher.exchangers[provider].ip6)
			}
		})
	}
}
