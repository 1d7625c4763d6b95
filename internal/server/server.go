// Package server implements the local control HTTP server,
// to query the updater status, pause, resume and force an update.
package server

import (
	"github.com/qdm12/goservices/httpserver"
)

func New(address string, controller Controller, logger Logger) (
	server *httpserver.Server, err error) {
	name := "control server"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(controller, logger),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
