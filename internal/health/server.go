// Package health implements the health server reporting the
// outcome of the last update cycle, and its client used as
// container healthcheck.
package health

import (
	"time"

	"github.com/qdm12/goservices/httpserver"
)

// NewServer creates the health server listening on the address
// given, answering 200 if the last update cycle succeeded and
// 500 otherwise, both with a JSON report.
func NewServer(address string, statusGetter StatusGetter, logger Logger) (
	server *httpserver.Server, err error) {
	name := "health"
	const timeout = time.Second
	return httpserver.New(httpserver.Settings{
		Handler:           newHandler(statusGetter, logger),
		Name:              &name,
		Address:           &address,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		Logger:            logger,
	})
}
