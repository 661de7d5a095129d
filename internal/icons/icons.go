package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder     string
	Music      string
	Play       string
	Pause      string
	Previous   string
	Next       string
	VolumeOff  string
	VolumeLow  string
	VolumeHigh string
	Error      string
}

var (
	nerdIcons = Icons{
		Folder:     " ", // nf-fa-folder
		Music:      " ", // nf-fa-music
		Play:       "",  // nf-fa-play
		Pause:      "",  // nf-fa-pause
		Previous:   "",  // nf-fa-step_backward
		Next:       "",  // nf-fa-step_forward
		VolumeOff:  "",  // nf-fa-volume_off
		VolumeLow:  "",  // nf-fa-volume_down
		VolumeHigh: "",  // nf-fa-volume_up
		Error:      "",  // nf-fa-warning
	}

	unicodeIcons = Icons{
		Folder:     "📁 ",
		Music:      "🎵 ",
		Play:       "▶",
		Pause:      "⏸",
		Previous:   "⏮",
		Next:       "⏭",
		VolumeOff:  "🔇",
		VolumeLow:  "🔉",
		VolumeHigh: "🔊",
		Error:      "⚠",
	}

	noneIcons = Icons{
		Folder:     "/",
		Music:      "",
		Play:       ">",
		Pause:      "||",
		Previous:   "|<",
		Next:       ">|",
		VolumeOff:  "vol:off",
		VolumeLow:  "vol:",
		VolumeHigh: "vol:",
		Error:      "!",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatDir formats a folder name with the appropriate icon.
// For "none" style the indicator is a suffix ("/").
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatTrack formats a track name with the music icon.
func FormatTrack(name string) string {
	return current.Music + name
}

// Play returns the play icon.
func Play() string {
	return current.Play
}

// Pause returns the pause icon.
func Pause() string {
	return current.Pause
}

// Previous returns the previous-track icon.
func Previous() string {
	return current.Previous
}

// Next returns the next-track icon.
func Next() string {
	return current.Next
}

// Error returns the error indicator.
func Error() string {
	return current.Error
}

// Volume returns the icon for a volume level in [0,1]:
// off at zero, low below one half, high otherwise.
func Volume(level float64) string {
	switch {
	case level <= 0:
		return current.VolumeOff
	case level < 0.5:
		return current.VolumeLow
	default:
		return current.VolumeHigh
	}
}
