package models

// Theme is the UI theme preference stored on the profile.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Profile is the server-owned user profile.
type Profile struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	DisplayName  *string `json:"displayName"`
	AvatarURL    *string `json:"avatarUrl"`
	WallpaperURL *string `json:"wallpaperUrl"`
	Theme        Theme   `json:"theme"`
}

// ProfileUpdate is a partial profile mutation; nil fields are omitted from
// the request so the server only touches what was sent.
type ProfileUpdate struct {
	DisplayName  *string `json:"displayName,omitempty"`
	Email        *string `json:"email,omitempty"`
	AvatarURL    *string `json:"avatarUrl,omitempty"`
	WallpaperURL *string `json:"wallpaperUrl,omitempty"`
	Theme        *Theme  `json:"theme,omitempty"`
	Password     *string `json:"password,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Email == nil && u.AvatarURL == nil &&
		u.WallpaperURL == nil && u.Theme == nil && u.Password == nil
}
