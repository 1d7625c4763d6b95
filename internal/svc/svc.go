// Package svc runs the program under the control of the host:
// the Windows service control manager when running as a Windows
// service, or the console with interrupt signals otherwise.
package svc

import (
	"context"
	"errors"
	"fmt"
)

// Capability is what the host can control.
type Capability interface {
	Start(ctx context.Context) (runError <-chan error, err error)
	Stop() error
	Pause() error
	Resume() error
}

type Service interface {
	Start(ctx context.Context) (runError <-chan error, err error)
	Stop() error
}

type Pauser interface {
	Pause() error
	Resume() error
}

// Compose returns a capability starting and stopping the service
// given, and pausing and resuming using the pauser given.
func Compose(service Service, pauser Pauser) Capability {
	return &composed{Service: service, Pauser: pauser}
}

type composed struct {
	Service
	Pauser
}

type Logger interface {
	Info(s string)
	Warn(s string)
}

// Run runs the capability until it fails or the host asks it to
// stop. In the console, the host asking to stop is the context
// given being canceled, typically on an interrupt signal.
func Run(ctx context.Context, name string, capability Capability,
	logger Logger) (err error) {
	isService, err := isHostService()
	if err != nil {
		return fmt.Errorf("detecting service mode: %w", err)
	}

	if isService {
		logger.Info("running as service " + name)
		return runService(name, capability, logger)
	}

	return runConsole(ctx, capability)
}

var ErrRunFailed = errors.New("run failed")

func runConsole(ctx context.Context, capability Capability) (err error) {
	runError, err := capability.Start(ctx)
	if err != nil {
		return fmt.Errorf("starting: %w", err)
	}

	select {
	case <-ctx.Done():
		err = capability.Stop()
		if err != nil {
			return fmt.Errorf("stopping: %w", err)
		}
		return nil
	case err = <-runError:
		stopErr := capability.Stop()
		if stopErr != nil {
			return fmt.Errorf("%w: %w; stopping: %w", ErrRunFailed, err, stopErr)
		}
		return fmt.Errorf("%w: %w", ErrRunFailed, err)
	}
}
