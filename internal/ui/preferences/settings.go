package preferences

// Settings defines editable user preferences. Phase durations are fixed by
// the Pomodoro technique and deliberately not part of this surface.
type Settings struct {
	SoundEnabled bool
	Volume       float64
	DarkMode     bool
}

// DefaultSettings returns default settings for FocusRing.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       0.8,
		DarkMode:     true,
	}
}
