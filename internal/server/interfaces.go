package server

import (
	"context"

	"github.com/qdm12/cfddns/internal/update"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Controller

type Controller interface {
	Status() (status update.Status)
	Pause() error
	Resume() error
	ForceUpdate(ctx context.Context) (results update.Results, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
