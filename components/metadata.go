package components

// SettingDescriptor describes an editable motion setting for UI sliders.
type SettingDescriptor struct {
	ID    string  // Unique identifier
	Label string  // Display name
	Min   float64 // Slider minimum
	Max   float64 // Slider maximum
	Bins  int     // Slider snap positions (0 = continuous)
}

// Setting IDs.
const (
	SettingAmplitude  = "amplitude"
	SettingPeriod     = "period"
	SettingSpinPeriod = "spin_period"
)

// LevitaterSettingDescriptors returns slider metadata for Levitater settings.
func LevitaterSettingDescriptors() []SettingDescriptor {
	return []SettingDescriptor{
		{ID: SettingAmplitude, Label: "Amplitude", Min: 0, Max: 5, Bins: 50},
		{ID: SettingPeriod, Label: "Period (s)", Min: 0, Max: 10, Bins: 40},
	}
}

// SpinnerSettingDescriptors returns slider metadata for Spinner settings.
func SpinnerSettingDescriptors() []SettingDescriptor {
	return []SettingDescriptor{
		{ID: SettingSpinPeriod, Label: "Spin period (s)", Min: 0, Max: 10, Bins: 40},
	}
}

// SettingValue reads the current value of a setting from a levitater or spinner.
// Returns false if the setting does not apply.
func SettingValue(id string, lev *Levitater, spin *Spinner) (float64, bool) {
	switch id {
	case SettingAmplitude:
		if lev != nil {
			return lev.Settings().Amplitude, true
		}
	case SettingPeriod:
		if lev != nil {
			return lev.Settings().Period, true
		}
	case SettingSpinPeriod:
		if spin != nil {
			return spin.Settings().Period, true
		}
	}
	return 0, false
}
