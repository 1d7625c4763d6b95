package params

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Warner

type Warner interface {
	Warnf(format string, args ...any)
}
