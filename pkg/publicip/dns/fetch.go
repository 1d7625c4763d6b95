package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/miekg/dns"
	"github.com/qdm12/cfddns/pkg/failure"
)

var (
	ErrAnswerNotReceived    = errors.New("response answer not received")
	ErrRecordEmpty          = errors.New("record is empty")
	ErrTooManyTXTRecords    = errors.New("too many TXT records")
	ErrIPMalformed          = errors.New("IP address malformed")
	ErrIPNotFoundForVersion = errors.New("IP addresses found but not for IP version")
)

// fetch queries the server address given with the question given,
// and returns the IP addresses found in the A, AAAA and TXT answers.
func fetch(ctx context.Context, exchanger Exchanger, address netip.AddrPort,
	question dns.Question) (publicIPs []netip.Addr, err error) {
	request := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode: dns.OpcodeQuery,
		},
		Question: []dns.Question{question},
	}

	response, _, err := exchanger.ExchangeContext(ctx, request, address.String())
	if err != nil {
		return nil, failure.WrapTransport(err)
	}

	publicIPs = make([]netip.Addr, 0, len(response.Answer))
	for _, answer := range response.Answer {
		publicIP, ok, err := parseAnswer(answer)
		if err != nil {
			return nil, fmt.Errorf("%w: %s answer: %w", failure.ErrMalformed,
				dns.TypeToString[answer.Header().Rrtype], err)
		} else if ok {
			publicIPs = append(publicIPs, publicIP)
		}
	}

	if len(publicIPs) == 0 {
		return nil, fmt.Errorf("%w: %w", failure.ErrMalformed, ErrAnswerNotReceived)
	}

	return publicIPs, nil
}

// parseAnswer returns ok as false for answer types
// not holding an IP address.
func parseAnswer(answer dns.RR) (publicIP netip.Addr, ok bool, err error) {
	var ip net.IP
	switch typedAnswer := answer.(type) {
	case *dns.TXT:
		publicIP, err = parseTXT(typedAnswer)
		return publicIP, err == nil, err
	case *dns.A:
		ip = typedAnswer.A
	case *dns.AAAA:
		ip = typedAnswer.AAAA
	default:
		return netip.Addr{}, false, nil
	}

	publicIP, ok = netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, false, fmt.Errorf("%w: %v", ErrIPMalformed, ip)
	}
	return publicIP.Unmap(), true, nil
}

func parseTXT(answer *dns.TXT) (publicIP netip.Addr, err error) {
	switch len(answer.Txt) {
	case 0:
		return netip.Addr{}, ErrRecordEmpty
	case 1:
	default:
		return netip.Addr{}, fmt.Errorf("%w: %d instead of 1",
			ErrTooManyTXTRecords, len(answer.Txt))
	}

	publicIP, err = netip.ParseAddr(answer.Txt[0])
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrIPMalformed, err)
	}

	return publicIP, nil
}
