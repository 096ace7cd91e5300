package config

// MergeLocal merges per-directory overrides into a global config.
// Returns global unchanged if local is nil.
func MergeLocal(global Config, local *LocalConfig) Config {
	if local == nil {
		return global
	}

	merged := global

	if local.Unicode != "" {
		merged.Unicode = local.Unicode
	}

	// Theme fields replace individually so a local file can tweak one color.
	mergeString(&merged.Theme.Name, local.Theme.Name)
	mergeString(&merged.Theme.Mode, local.Theme.Mode)
	mergeString(&merged.Theme.Primary, local.Theme.Primary)
	mergeString(&merged.Theme.Accent, local.Theme.Accent)
	mergeString(&merged.Theme.Success, local.Theme.Success)
	mergeString(&merged.Theme.Error, local.Theme.Error)
	mergeString(&merged.Theme.Warning, local.Theme.Warning)

	mergeString(&merged.Spinner.Style, local.Spinner.Style)
	if local.Spinner.Interval != nil {
		merged.Spinner.Interval = *local.Spinner.Interval
	}
	if local.Spinner.Timeout != nil {
		merged.Spinner.Timeout = *local.Spinner.Timeout
	}

	return merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
