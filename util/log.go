package util

import "github.com/hauke96/sigolo/v2"

// LogFatalBug logs and exits. Only use it for states the code must never reach.
func LogFatalBug(format string, args ...interface{}) {
	sigolo.Fatalb(1, format+" - This is a bug, please report it.", args...)
}
