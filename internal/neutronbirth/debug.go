package neutronbirth

// DebugLog prints through the sugared logger when Debug is set.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Sugar.Debugf(format, args...)
}
