package http

import (
	"context"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
)

// Fetcher obtains the public IP address of the machine by querying
// an echo HTTP endpoint for each IP version.
type Fetcher struct {
	client *http.Client
	url4   string
	url6   string
}

// New creates a fetcher using the client given as underlying client.
// Idempotent GET requests are retried on transport errors only,
// and responses with a bad status code are never retried.
func New(client *http.Client, options ...Option) (f *Fetcher, err error) {
	settings := newDefaultSettings()
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, err
		}
	}

	retryClient := &retryablehttp.Client{
		HTTPClient:   client,
		RetryWaitMin: settings.retryWaitMin,
		RetryWaitMax: settings.retryWaitMax,
		RetryMax:     int(settings.retries),
		CheckRetry:   checkRetry,
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}
	if settings.logger != nil {
		retryClient.Logger = &leveledLogger{debugger: settings.logger}
	}

	return &Fetcher{
		client: retryClient.StandardClient(),
		url4:   settings.url4,
		url6:   settings.url6,
	}, nil
}

// IP returns the public IP address for the IP version given.
func (f *Fetcher) IP(ctx context.Context, version ipversion.IPVersion) (
	publicIP netip.Addr, err error) {
	switch version {
	case ipversion.IP4:
		return f.IP4(ctx)
	case ipversion.IP6:
		return f.IP6(ctx)
	default:
		panic(fmt.Sprintf("IP version %s is not supported", version))
	}
}

func (f *Fetcher) IP4(ctx context.Context) (publicIP netip.Addr, err error) {
	return fetch(ctx, f.client, f.url4, ipversion.IP4)
}

func (f *Fetcher) IP6(ctx context.Context) (publicIP netip.Addr, err error) {
	return fetch(ctx, f.client, f.url6, ipversion.IP6)
}

// checkRetry only retries on transport errors, as long as the
// request context is not done.
func checkRetry(ctx context.Context, _ *http.Response, err error) (
	retry bool, checkErr error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return err != nil, nil
}

type leveledLogger struct {
	debugger Debugger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log(msg, keysAndValues)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log(msg, keysAndValues)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(msg, keysAndValues)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(msg, keysAndValues)
}

func (l *leveledLogger) log(msg string, keysAndValues []interface{}) {
	const pairSize = 2
	for i := 0; i+1 < len(keysAndValues); i += pairSize {
		msg += fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.debugger.Debug(msg)
}

