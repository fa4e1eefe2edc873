package entities

// Setting keys used by the settings store.
const (
	SettingBestInSlotOnly = "bis_only"
	SettingExclusions     = "exclusions"
	SettingLocationPrefix = "location."
)

// LocationSettingKey returns the settings key for a location toggle.
func LocationSettingKey(locationKey string) string {
	return SettingLocationPrefix + locationKey
}

// Settings is a snapshot of every user toggle.
type Settings struct {
	// Locations maps a location key to its enabled flag.
	// Locations missing from the map are enabled.
	Locations      map[string]bool
	BestInSlotOnly bool
	ExclusionText  string
}

// LocationEnabled reports the flag for a location key.
func (s Settings) LocationEnabled(key string) bool {
	enabled, ok := s.Locations[key]
	if !ok {
		return true
	}
	return enabled
}
