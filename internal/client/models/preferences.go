package models

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences are UI settings persisted on the client.
type Preferences struct {
	Theme    Theme  `json:"theme"`
	Language string `json:"language"`
}

// DefaultPreferences returns the settings used before anything is stored.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: "en"}
}
