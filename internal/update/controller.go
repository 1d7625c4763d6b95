package update

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/qdm12/cfddns/internal/control"
	"github.com/qdm12/cfddns/internal/models"
)

type CycleRunner interface {
	RunBoth(ctx context.Context, ipv4Records, ipv6Records []models.Record) (results Results)
}

// Controller runs update cycles for both IP versions, either once
// or periodically until stopped. It can be paused and resumed, and
// implements the goservices Service interface.
type Controller struct {
	// Injected fields
	cycle   CycleRunner
	ipv4    []models.Record
	ipv6    []models.Record
	period  time.Duration
	signal  *control.Signal
	logger  Logger
	timeNow func() time.Time

	// Internal fields
	startStopMutex sync.Mutex
	started        bool
	done           <-chan struct{}
	force          chan chan<- forceResult
	statusMutex    sync.RWMutex
	status         Status
}

type forceResult struct {
	results Results
	err     error
}

// Status is the status of the controller at a point in time.
type Status struct {
	State     control.State
	LastCycle time.Time
	Results   Results
}

// NewController creates a controller for the records given,
// waiting period between the end of a cycle and the start
// of the next one.
func NewController(cycle CycleRunner, records []models.Record,
	period time.Duration, signal *control.Signal, logger Logger,
	timeNow func() time.Time) *Controller {
	ipv4, ipv6 := models.GroupByFamily(records)
	return &Controller{
		cycle:   cycle,
		ipv4:    ipv4,
		ipv6:    ipv6,
		period:  period,
		signal:  signal,
		logger:  logger,
		timeNow: timeNow,
		force:   make(chan chan<- forceResult),
	}
}

func (c *Controller) String() string {
	return "updater"
}

// Once runs a single cycle for both IP versions and returns.
func (c *Controller) Once(ctx context.Context) (results Results) {
	return c.runCycle(ctx)
}

var (
	ErrAlreadyStarted = errors.New("updater already started")
	ErrNotRunning     = errors.New("updater is not running")
	ErrPaused         = errors.New("updater is paused")
	ErrStopped        = errors.New("updater is stopped")
)

// Start launches the update loop in a goroutine. The run error
// channel returned never receives an error, since no cycle error
// stops the loop.
func (c *Controller) Start(ctx context.Context) (runError <-chan error, startErr error) {
	c.startStopMutex.Lock()
	defer c.startStopMutex.Unlock()

	switch {
	case c.started:
		return nil, fmt.Errorf("%w", ErrAlreadyStarted)
	case c.signal.Get() == control.Stop:
		return nil, fmt.Errorf("%w", ErrStopped)
	}

	ready := make(chan struct{})
	done := make(chan struct{})
	c.done = done
	c.started = true
	go c.run(ready, done)

	select {
	case <-ready:
	case <-ctx.Done():
		c.signal.Set(control.Stop)
		<-done
		return nil, ctx.Err()
	}
	return make(chan error), nil
}

// Stop sets the control signal to Stop and waits for the loop to exit.
// An update cycle in progress is not interrupted and runs to completion
// before Stop returns. Once stopped, the controller cannot be restarted.
func (c *Controller) Stop() (err error) {
	c.startStopMutex.Lock()
	defer c.startStopMutex.Unlock()
	c.signal.Set(control.Stop)
	if c.started {
		<-c.done
	}
	return nil
}

// Pause prevents the next cycles from running until Resume is called.
// It does not interrupt an update cycle in progress.
func (c *Controller) Pause() error {
	if !c.signal.Set(control.Pause) {
		return fmt.Errorf("pausing: %w", ErrStopped)
	}
	c.logger.Info("paused")
	return nil
}

func (c *Controller) Resume() error {
	if !c.signal.Set(control.Run) {
		return fmt.Errorf("resuming: %w", ErrStopped)
	}
	c.logger.Info("resumed")
	return nil
}

// ForceUpdate runs a cycle within the update loop, without waiting
// for the period to elapse, and returns its results.
func (c *Controller) ForceUpdate(ctx context.Context) (results Results, err error) {
	c.startStopMutex.Lock()
	started, done := c.started, c.done
	c.startStopMutex.Unlock()
	if !started {
		return results, fmt.Errorf("%w", ErrNotRunning)
	}

	resultCh := make(chan forceResult, 1)
	select {
	case c.force <- resultCh:
	case <-done:
		return results, fmt.Errorf("%w", ErrStopped)
	case <-ctx.Done():
		return results, ctx.Err()
	}

	select {
	case result := <-resultCh:
		return result.results, result.err
	case <-ctx.Done():
		return results, ctx.Err()
	}
}

// Status returns the current state and the results of the last cycle.
func (c *Controller) Status() (status Status) {
	c.statusMutex.RLock()
	status = c.status
	c.statusMutex.RUnlock()
	status.State = c.signal.Get()
	return status
}

func (c *Controller) runCycle(ctx context.Context) (results Results) {
	results = c.cycle.RunBoth(ctx, c.ipv4, c.ipv6)
	c.statusMutex.Lock()
	c.status.LastCycle = c.timeNow()
	c.status.Results = results
	c.statusMutex.Unlock()
	return results
}
