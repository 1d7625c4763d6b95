package health

import "github.com/qdm12/cfddns/internal/update"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . StatusGetter,Logger

type StatusGetter interface {
	Status() (status update.Status)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
