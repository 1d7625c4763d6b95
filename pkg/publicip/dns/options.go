package dns

import (
	"errors"
	"fmt"
	"time"
)

type settings struct {
	providers []Provider
	timeout   time.Duration
}

func newDefaultSettings() settings {
	const defaultTimeout = 5 * time.Second
	return settings{
		providers: ListProviders(),
		timeout:   defaultTimeout,
	}
}

type Option func(s *settings) error

// SetProviders sets the providers to query in turn,
// ignoring duplicates.
func SetProviders(first Provider, providers ...Provider) Option {
	return func(s *settings) (err error) {
		providers = append([]Provider{first}, providers...)
		unique := make([]Provider, 0, len(providers))
		seen := make(map[Provider]struct{}, len(providers))
		for _, provider := range providers {
			err = ValidateProvider(provider)
			if err != nil {
				return err
			}
			if _, ok := seen[provider]; ok {
				continue
			}
			seen[provider] = struct{}{}
			unique = append(unique, provider)
		}
		s.providers = unique
		return nil
	}
}

var ErrTimeoutNotValid = errors.New("timeout is not valid")

// SetTimeout sets the timeout of each DNS exchange,
// which must be positive.
func SetTimeout(timeout time.Duration) Option {
	return func(s *settings) (err error) {
		if timeout <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrTimeoutNotValid, timeout)
		}
		s.timeout = timeout
		return nil
	}
}
