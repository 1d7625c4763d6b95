package healthchecksio

import (
	"context"

	"github.com/qdm12/cfddns/internal/models"
	"github.com/qdm12/cfddns/internal/update"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . CycleRunner,Warner

type CycleRunner interface {
	RunBoth(ctx context.Context, ipv4Records, ipv6Records []models.Record) (
		results update.Results)
}

type Warner interface {
	Warn(message string)
}

// PingingCycle runs the cycle it wraps and pings the
// healthchecks.io server with its outcome.
type PingingCycle struct {
	cycle  CycleRunner
	client *Client
	logger Warner
}

func WrapCycle(cycle CycleRunner, client *Client, logger Warner) *PingingCycle {
	return &PingingCycle{
		cycle:  cycle,
		client: client,
		logger: logger,
	}
}

func (p *PingingCycle) RunBoth(ctx context.Context,
	ipv4Records, ipv6Records []models.Record) (results update.Results) {
	results = p.cycle.RunBoth(ctx, ipv4Records, ipv6Records)

	state := Ok
	if results.Err() != nil {
		state = Fail
	}

	err := p.client.Ping(ctx, state)
	if err != nil {
		p.logger.Warn("pinging healthchecks.io: " + err.Error())
	}

	return results
}
