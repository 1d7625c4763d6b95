package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Update struct {
	Period time.Duration
	// MultiThread false restricts the Go scheduler to a single
	// operating system thread running Go code.
	MultiThread *bool
	// Concurrency is the maximum number of record updates
	// running at the same time within a cycle, 0 meaning no limit.
	Concurrency *uint16
}

func (u *Update) setDefaults() {
	const defaultPeriod = time.Minute
	u.Period = gosettings.DefaultComparable(u.Period, defaultPeriod)
	u.MultiThread = gosettings.DefaultPointer(u.MultiThread, false)
	u.Concurrency = gosettings.DefaultPointer(u.Concurrency, 0)
}

var ErrPeriodTooShort = errors.New("period is too short")

func (u Update) Validate() (err error) {
	const minPeriod = time.Second
	if u.Period < minPeriod {
		return fmt.Errorf("%w: %s must be at least %s",
			ErrPeriodTooShort, u.Period, minPeriod)
	}
	return nil
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	node := gotree.New("Update")
	node.Appendf("Period: %s", u.Period)
	node.Appendf("Multi threaded: %s", gosettings.BoolToYesNo(u.MultiThread))
	if *u.Concurrency == 0 {
		node.Appendf("Concurrency: unlimited")
	} else {
		node.Appendf("Concurrency: %d", *u.Concurrency)
	}
	return node
}

func (u *Update) read(reader *reader.Reader, warner Warner) (err error) {
	u.Period, err = readUpdatePeriod(reader, warner)
	if err != nil {
		return err
	}

	u.MultiThread, err = reader.BoolPtr("MULTI_THREAD")
	if err != nil {
		return err
	}

	u.Concurrency, err = reader.Uint16Ptr("UPDATE_CONCURRENCY")
	return err
}

func readUpdatePeriod(r *reader.Reader, warner Warner) (period time.Duration, err error) {
	// Retro-compatibility: DELAY variable name
	delayStringPtr := r.Get("DELAY")
	if delayStringPtr != nil {
		handleDeprecated(warner, "DELAY", "PERIOD")
		return parseSecondsOrDuration(*delayStringPtr)
	}

	return r.Duration("PERIOD")
}

// parseSecondsOrDuration parses s as an integer number of
// seconds or, failing that, as a Go duration string.
func parseSecondsOrDuration(s string) (period time.Duration, err error) {
	seconds, err := strconv.ParseUint(s, 10, 64)
	if err == nil {
		return secondsToPeriod(seconds)
	}
	return time.ParseDuration(s)
}

var ErrDelayNotValid = errors.New("delay is not valid")

// secondsToPeriod converts a delay in seconds to a period,
// and errors for a zero delay or one overflowing time.Duration.
func secondsToPeriod(seconds uint64) (period time.Duration, err error) {
	const maxSeconds = uint64(math.MaxInt64 / int64(time.Second))
	switch {
	case seconds == 0:
		return 0, fmt.Errorf("%w: must be at least 1 second", ErrDelayNotValid)
	case seconds > maxSeconds:
		return 0, fmt.Errorf("%w: %d seconds must be at most %d seconds",
			ErrDelayNotValid, seconds, maxSeconds)
	}
	return time.Duration(seconds) * time.Second, nil
}
