package health

import (
	"time"

	"github.com/qdm12/cfddns/internal/update"
)

// report is the health report of the last update cycle.
type report struct {
	Healthy   bool          `json:"healthy"`
	Error     string        `json:"error,omitempty"`
	LastCycle *time.Time    `json:"last_cycle,omitempty"`
	IPv4      *familyReport `json:"ipv4,omitempty"`
	IPv6      *familyReport `json:"ipv6,omitempty"`
}

type familyReport struct {
	IP      string `json:"ip,omitempty"`
	Records int    `json:"records"`
	Failed  int    `json:"failed"`
	Error   string `json:"error,omitempty"`
}

// newReport builds the report of the status given, healthy
// if no cycle ran yet or if the last cycle fully succeeded.
func newReport(status update.Status) (r report) {
	r.Healthy = true
	err := status.Results.Err()
	if err != nil {
		r.Healthy = false
		r.Error = err.Error()
	}

	if !status.LastCycle.IsZero() {
		lastCycle := status.LastCycle.UTC()
		r.LastCycle = &lastCycle
	}

	r.IPv4 = newFamilyReport(status.Results.IPv4)
	r.IPv6 = newFamilyReport(status.Results.IPv6)
	return r
}

// newFamilyReport returns nil if the IP family had
// nothing to do during the cycle.
func newFamilyReport(result update.Result) *familyReport {
	if !result.IP.IsValid() && result.Err == nil && len(result.Outcomes) == 0 {
		return nil
	}

	r := &familyReport{
		Records: len(result.Outcomes),
	}
	if result.IP.IsValid() {
		r.IP = result.IP.String()
	}
	if result.Err != nil {
		r.Error = result.Err.Error()
	}
	for _, outcome := range result.Outcomes {
		if !outcome.Success() {
			r.Failed++
		}
	}
	return r
}
