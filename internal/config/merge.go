package config

// Merge returns base with every field that is set in override replacing
// the base value. Neither argument is modified.
func Merge(base, override *Config) *Config {
	out := *base
	out.Debug.Categories = copyCategories(base.Debug.Categories)
	if override == nil {
		return &out
	}

	out.Log.File = firstNonEmpty(override.Log.File, out.Log.File)
	out.Log.Level = firstNonEmpty(override.Log.Level, out.Log.Level)
	out.Log.Facility = firstNonEmpty(override.Log.Facility, out.Log.Facility)
	out.Log.Stdout = mergeBool(out.Log.Stdout, override.Log.Stdout)
	out.Log.Syslog = mergeBool(out.Log.Syslog, override.Log.Syslog)
	out.Log.RecordPriority = mergeBool(out.Log.RecordPriority, override.Log.RecordPriority)

	// An explicit empty list disables every category, so only nil falls
	// through to the base.
	if override.Debug.Categories != nil {
		out.Debug.Categories = copyCategories(override.Debug.Categories)
	}

	out.VTY.Socket = firstNonEmpty(override.VTY.Socket, out.VTY.Socket)
	out.VTY.RunningConfig = firstNonEmpty(override.VTY.RunningConfig, out.VTY.RunningConfig)
	return &out
}

// copyCategories copies c without aliasing it. nil stays nil and an empty
// list stays empty.
func copyCategories(c []string) []string {
	if c == nil {
		return nil
	}
	return append([]string{}, c...)
}

func mergeBool(base, override *bool) *bool {
	if override != nil {
		return boolPtr(*override)
	}
	if base != nil {
		return boolPtr(*base)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
