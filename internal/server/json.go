package server

import (
	"time"

	"github.com/qdm12/cfddns/internal/update"
)

type statusJSON struct {
	State     string      `json:"state"`
	LastCycle *time.Time  `json:"last_cycle,omitempty"`
	IPv4      *resultJSON `json:"ipv4,omitempty"`
	IPv6      *resultJSON `json:"ipv6,omitempty"`
}

type resultJSON struct {
	IP      string        `json:"ip,omitempty"`
	Changed bool          `json:"changed"`
	Error   string        `json:"error,omitempty"`
	Records []outcomeJSON `json:"records"`
}

type outcomeJSON struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func toStatusJSON(status update.Status) (data statusJSON) {
	data.State = status.State.String()
	if !status.LastCycle.IsZero() {
		lastCycle := status.LastCycle.UTC()
		data.LastCycle = &lastCycle
	}
	data.IPv4 = toResultJSON(status.Results.IPv4)
	data.IPv6 = toResultJSON(status.Results.IPv6)
	return data
}

// toResultJSON returns nil if the result is empty, which is
// the case when no record exists for its IP version.
func toResultJSON(result update.Result) *resultJSON {
	if !result.IP.IsValid() && result.Err == nil {
		return nil
	}

	data := &resultJSON{
		Changed: result.Changed,
		Records: make([]outcomeJSON, len(result.Outcomes)),
	}
	if result.IP.IsValid() {
		data.IP = result.IP.String()
	}
	if result.Err != nil {
		data.Error = result.Err.Error()
	}

	for i, outcome := range result.Outcomes {
		data.Records[i] = outcomeJSON{
			Type:    outcome.Record.Type,
			Name:    outcome.Record.Name,
			Success: outcome.Success(),
		}
		if outcome.Err != nil {
			data.Records[i].Error = outcome.Err.Error()
		}
	}
	return data
}
