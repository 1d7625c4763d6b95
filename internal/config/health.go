package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/qdm12/cfddns/internal/health"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

// Health contains settings for the health server
// and the healthchecks.io pings.
type Health struct {
	// ServerAddress is the listening address of the health server.
	// The empty string disables the health server.
	ServerAddress *string
	// HealthchecksioBaseURL is the base URL of the healthchecks.io
	// compatible server.
	HealthchecksioBaseURL string
	// HealthchecksioUUID is the check UUID. The empty string
	// disables pinging.
	HealthchecksioUUID *string
}

func (h *Health) setDefaults() {
	defaultAddress := ""
	if health.InContainer() {
		defaultAddress = "127.0.0.1:9999"
	}
	h.ServerAddress = gosettings.DefaultPointer(h.ServerAddress, defaultAddress)
	h.HealthchecksioBaseURL = gosettings.DefaultComparable(h.HealthchecksioBaseURL,
		"https://hc-ping.com")
	h.HealthchecksioUUID = gosettings.DefaultPointer(h.HealthchecksioUUID, "")
}

func (h Health) Validate() (err error) {
	if *h.ServerAddress != "" {
		err = validate.ListeningAddress(*h.ServerAddress, os.Getuid())
		if err != nil {
			return fmt.Errorf("server listening address: %w", err)
		}
	}

	if *h.HealthchecksioUUID != "" {
		err = validateURL(h.HealthchecksioBaseURL)
		if err != nil {
			return fmt.Errorf("healthchecks.io base URL: %w", err)
		}
	}

	return nil
}

func (h Health) toLinesNode() *gotree.Node {
	node := gotree.New("Health")
	if *h.ServerAddress == "" {
		node.Appendf("Server: disabled")
	} else {
		node.Appendf("Server listening address: %s", *h.ServerAddress)
	}
	if *h.HealthchecksioUUID != "" {
		node.Appendf("Healthchecks.io base URL: %s", h.HealthchecksioBaseURL)
		node.Appendf("Healthchecks.io UUID: %s", *h.HealthchecksioUUID)
	}
	return node
}

func (h *Health) read(r *reader.Reader) {
	h.ServerAddress = r.Get("HEALTH_SERVER_ADDRESS")
	h.HealthchecksioBaseURL = r.String("HEALTH_HEALTHCHECKSIO_BASE_URL",
		reader.ForceLowercase(false))
	h.HealthchecksioUUID = r.Get("HEALTH_HEALTHCHECKSIO_UUID")
}

var ErrHealthServerDisabled = errors.New("health server is disabled")

// ReadHealthServerAddress reads the listening address of the
// health server of the program instance to query.
func ReadHealthServerAddress(r *reader.Reader) (address string, err error) {
	var health Health
	health.read(r)
	health.setDefaults()
	err = health.Validate()
	if err != nil {
		return "", fmt.Errorf("health settings: %w", err)
	} else if *health.ServerAddress == "" {
		return "", fmt.Errorf("%w", ErrHealthServerDisabled)
	}
	return *health.ServerAddress, nil
}
