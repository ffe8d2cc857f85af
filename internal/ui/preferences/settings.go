package preferences

// Settings defines editable user preferences. Only appearance and
// peripherals are configurable; the breathing timings are fixed constants.
type Settings struct {
	WindowOpacity float64
	Fullscreen    bool
	ShowCaptions  bool
	ChimeEnabled  bool
	Autostart     bool
}

// DefaultSettings returns default settings for BreathBox.
func DefaultSettings() Settings {
	return Settings{
		WindowOpacity: 0.9,
		Fullscreen:    false,
		ShowCaptions:  true,
		ChimeEnabled:  true,
		Autostart:     false,
	}
}
