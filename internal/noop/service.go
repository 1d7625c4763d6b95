// Package noop provides a service doing nothing, used in place
// of an optional service which is disabled.
package noop

import (
	"context"
	"fmt"
	"sync"

	"github.com/qdm12/goservices"
)

// Service stands in for a disabled service in a services
// sequence, logging it is disabled when started.
type Service struct {
	name   string
	reason string
	logger Infoer

	startStopMutex sync.Mutex
	running        bool
}

// New creates a service named name, disabled for the reason given,
// for example "no listening address set".
func New(name, reason string, logger Infoer) *Service {
	return &Service{
		name:   name,
		reason: reason,
		logger: logger,
	}
}

func (s *Service) String() string {
	return s.name + " (disabled)"
}

// Start logs the service is disabled and returns a nil run
// error channel since the service never fails.
func (s *Service) Start(context.Context) (runError <-chan error, err error) {
	s.startStopMutex.Lock()
	defer s.startStopMutex.Unlock()
	if s.running {
		return nil, fmt.Errorf("%s: %w", s.name, goservices.ErrAlreadyStarted)
	}
	s.running = true
	s.logger.Info(s.name + " disabled: " + s.reason)
	return nil, nil //nolint:nilnil
}

func (s *Service) Stop() (err error) {
	s.startStopMutex.Lock()
	defer s.startStopMutex.Unlock()
	if !s.running {
		return fmt.Errorf("%s: %w", s.name, goservices.ErrAlreadyStopped)
	}
	s.running = false
	return nil
}
