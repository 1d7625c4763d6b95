package http

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

type settings struct {
	url4         string
	url6         string
	retries      uint
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	logger       Debugger
}

const (
	DefaultURL4 = "https://ipv4.icanhazip.com/"
	DefaultURL6 = "https://ipv6.icanhazip.com/"
)

func newDefaultSettings() settings {
	const (
		defaultRetries      = 3
		defaultRetryWaitMin = 250 * time.Millisecond
		defaultRetryWaitMax = 2 * time.Second
	)
	return settings{
		url4:         DefaultURL4,
		url6:         DefaultURL6,
		retries:      defaultRetries,
		retryWaitMin: defaultRetryWaitMin,
		retryWaitMax: defaultRetryWaitMax,
	}
}

type Option func(s *settings) error

var ErrURLNotValid = errors.New("URL is not valid")

func SetURL4(rawURL string) Option {
	return func(s *settings) (err error) {
		err = validateURL(rawURL)
		if err != nil {
			return fmt.Errorf("IPv4 echo URL: %w", err)
		}
		s.url4 = rawURL
		return nil
	}
}

func SetURL6(rawURL string) Option {
	return func(s *settings) (err error) {
		err = validateURL(rawURL)
		if err != nil {
			return fmt.Errorf("IPv6 echo URL: %w", err)
		}
		s.url6 = rawURL
		return nil
	}
}

// SetRetries sets the number of retries done on transport errors,
// in addition to the first attempt.
func SetRetries(retries uint) Option {
	return func(s *settings) (err error) {
		s.retries = retries
		return nil
	}
}

// SetLogger sets a logger to log retry attempts at the debug level.
func SetLogger(logger Debugger) Option {
	return func(s *settings) (err error) {
		s.logger = logger
		return nil
	}
}

func validateURL(rawURL string) (err error) {
	u, err := url.Parse(rawURL)
	switch {
	case err != nil:
		return fmt.Errorf("%w: %w", ErrURLNotValid, err)
	case u.Scheme != "https" && u.Scheme != "http":
		return fmt.Errorf("%w: scheme %q is not http or https", ErrURLNotValid, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%w: host is empty", ErrURLNotValid)
	}
	return nil
}
