package http

type Debugger interface {
	Debug(s string)
}
