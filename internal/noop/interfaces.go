package noop

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Infoer

type Infoer interface {
	Info(message string)
}
