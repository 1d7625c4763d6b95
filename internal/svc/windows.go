//go:build windows

package svc

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/svc"
)

func isHostService() (bool, error) {
	return svc.IsWindowsService()
}

func runService(name string, capability Capability, logger Logger) error {
	handler := &handler{
		capability: capability,
		logger:     logger,
	}
	err := svc.Run(name, handler)
	if err != nil {
		return fmt.Errorf("running service %s: %w", name, err)
	}
	return handler.err
}

type handler struct {
	capability Capability
	logger     Logger
	err        error
}

// Execute is called by the service control manager in its own goroutine,
// and must not return before the service is stopped.
func (h *handler) Execute(_ []string, requests <-chan svc.ChangeRequest,
	changes chan<- svc.Status) (serviceSpecific bool, exitCode uint32) {
	const accepted = svc.AcceptStop | svc.AcceptShutdown | svc.AcceptPauseAndContinue
	changes <- svc.Status{State: svc.StartPending}

	runError, err := h.capability.Start(context.Background())
	if err != nil {
		h.err = fmt.Errorf("starting: %w", err)
		changes <- svc.Status{State: svc.StopPending}
		return true, 1
	}
	changes <- svc.Status{State: svc.Running, Accepts: accepted}

	for {
		select {
		case err := <-runError:
			h.err = fmt.Errorf("%w: %w", ErrRunFailed, err)
			changes <- svc.Status{State: svc.StopPending}
			_ = h.capability.Stop()
			return true, 1
		case request := <-requests:
			switch request.Cmd {
			case svc.Interrogate:
				changes <- request.CurrentStatus
			case svc.Stop, svc.Shutdown:
				changes <- svc.Status{State: svc.StopPending}
				err := h.capability.Stop()
				if err != nil {
					h.err = fmt.Errorf("stopping: %w", err)
					return true, 1
				}
				return false, 0
			case svc.Pause:
				changes <- svc.Status{State: svc.PausePending, Accepts: accepted}
				err := h.capability.Pause()
				if err != nil {
					h.logger.Warn("pausing: " + err.Error())
				}
				changes <- svc.Status{State: svc.Paused, Accepts: accepted}
			case svc.Continue:
				changes <- svc.Status{State: svc.ContinuePending, Accepts: accepted}
				err := h.capability.Resume()
				if err != nil {
					h.logger.Warn("resuming: " + err.Error())
				}
				changes <- svc.Status{State: svc.Running, Accepts: accepted}
			default:
				h.logger.Warn(fmt.Sprintf("unexpected service control request #%d", request.Cmd))
			}
		}
	}
}
