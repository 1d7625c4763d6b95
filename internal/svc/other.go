//go:build !windows

package svc

import "errors"

func isHostService() (bool, error) {
	return false, nil
}

var ErrServiceNotSupported = errors.New("service mode is not supported on this platform")

func runService(string, Capability, Logger) error {
	return ErrServiceNotSupported
}
