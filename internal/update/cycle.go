package update

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/pkg/failure"
	"github.com/qdm12/cfddns/pkg/publicip/ipversion"
	"golang.org/x/sync/errgroup"
)

// Cycle obtains the public IP address of an IP version and,
// only if it changed, pushes it to every record of that version.
type Cycle struct {
	fetcher     PublicIPFetcher
	detector    ChangeDetector
	pusher      Pusher
	notifier    ShoutrrrClient
	logger      Logger
	concurrency int
}

// NewCycle creates a cycle pushing to at most concurrency records
// at the same time, or to all records at once if concurrency is 0.
func NewCycle(fetcher PublicIPFetcher, detector ChangeDetector, pusher Pusher,
	notifier ShoutrrrClient, logger Logger, concurrency uint16) *Cycle {
	return &Cycle{
		fetcher:     fetcher,
		detector:    detector,
		pusher:      pusher,
		notifier:    notifier,
		logger:      logger,
		concurrency: int(concurrency),
	}
}

// Result is the result of a cycle for one IP version.
type Result struct {
	Version ipversion.IPVersion
	// IP is the public IP address obtained, and is
	// invalid if there is no record or if Err is set.
	IP      netip.Addr
	Changed bool
	// Err is the error obtaining the public IP address.
	Err      error
	Outcomes []models.Outcome
}

// Results holds the results of both IP versions.
type Results struct {
	IPv4 Result
	IPv6 Result
}

var ErrRecordUpdateFailed = errors.New("record update failed")

// Err returns the first error of the results, obtaining
// a public IP address or updating a record, or nil if
// every step succeeded.
func (r Results) Err() (err error) {
	for _, result := range []Result{r.IPv4, r.IPv6} {
		if result.Err != nil {
			return fmt.Errorf("obtaining public %s address: %w", result.Version, result.Err)
		}

		for _, outcome := range result.Outcomes {
			if !outcome.Success() {
				return fmt.Errorf("%w: %s: %w", ErrRecordUpdateFailed,
					outcome.Record, outcome.Err)
			}
		}
	}
	return nil
}

// RunOnce runs a cycle for the IP version given. All the records
// given must be of that IP version. It always completes: errors
// are logged and returned in the result, and one record failing
// does not affect other records.
func (c *Cycle) RunOnce(ctx context.Context, version ipversion.IPVersion,
	records []models.Record) (result Result) {
	result.Version = version
	if len(records) == 0 {
		return result
	}

	ip, err := c.fetcher.IP(ctx, version)
	if err != nil {
		result.Err = err
		c.logger.Error(fmt.Sprintf("obtaining public %s address: %s (%s)",
			version, err, failure.Classify(err)))
		return result
	}
	result.IP = ip

	changed, previous := c.detector.HasChanged(version, ip)
	if !changed {
		c.logger.Debug(fmt.Sprintf("public %s address %s is unchanged", version, ip))
		return result
	}
	result.Changed = true

	if previous.IsValid() {
		c.logger.Info(fmt.Sprintf("public %s address changed from %s to %s",
			version, previous, ip))
	} else {
		c.logger.Info(fmt.Sprintf("public %s address is %s", version, ip))
	}

	result.Outcomes = c.pushAll(ctx, records, ip)
	return result
}

// RunBoth runs the cycles of both IP versions concurrently,
// and waits for both of them to complete.
func (c *Cycle) RunBoth(ctx context.Context,
	ipv4Records, ipv6Records []models.Record) (results Results) {
	group := new(errgroup.Group)
	group.Go(func() error {
		results.IPv4 = c.RunOnce(ctx, ipversion.IP4, ipv4Records)
		return nil
	})
	group.Go(func() error {
		results.IPv6 = c.RunOnce(ctx, ipversion.IP6, ipv6Records)
		return nil
	})
	_ = group.Wait()
	return results
}

func (c *Cycle) pushAll(ctx context.Context, records []models.Record,
	ip netip.Addr) (outcomes []models.Outcome) {
	outcomes = make([]models.Outcome, len(records))
	group := new(errgroup.Group)
	if c.concurrency > 0 {
		group.SetLimit(c.concurrency)
	}

	for i, record := range records {
		i, record := i, record
		// Goroutines never return an error, so that every
		// push runs regardless of the others failing.
		group.Go(func() error {
			outcome := c.pusher.Push(ctx, record, ip)
			c.report(outcome)
			outcomes[i] = outcome
			return nil
		})
	}

	_ = group.Wait()
	return outcomes
}

func (c *Cycle) report(outcome models.Outcome) {
	if outcome.Success() {
		message := fmt.Sprintf("%s set to %s", outcome.Record, outcome.IP)
		c.logger.Info(message)
		c.notifier.Notify(message)
		return
	}

	message := fmt.Sprintf("updating %s to %s: %s (%s)", outcome.Record,
		outcome.IP, outcome.Err, failure.Classify(outcome.Err))
	c.logger.Error(message)
	c.notifier.Notify(message)
}
