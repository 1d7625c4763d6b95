package config

type Warner interface {
	Warnf(format string, a ...interface{})
}

func handleDeprecated(warner Warner, oldKey, newKey string) {
	warner.Warnf("environment variable %s is deprecated, please use %s instead",
		oldKey, newKey)
}
