package models

// FolderCategory scopes a folder to one of the two organizable surfaces.
type FolderCategory string

const (
	FolderCategoryGames FolderCategory = "games"
	FolderCategoryFiles FolderCategory = "files"
)

// FolderDescriptor is a client-owned grouping entity, persisted locally.
// Deleting a folder never touches its members; their folderId dangles and
// resolves back to "unassigned".
type FolderDescriptor struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Icon     string         `json:"icon"`
	Color    string         `json:"color"`
	Category FolderCategory `json:"category"`
}

// Platform is a bookmarked platform tile. Slice order is the display and
// persisted order; there is no separate priority field.
type Platform struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	FolderID    string `json:"folderId,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Gradient    string `json:"gradient,omitempty"`
}

// Game is a bookmarked game tile.
type Game struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url,omitempty"`
	FolderID string `json:"folderId,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Gradient string `json:"gradient,omitempty"`
}

// UserData is the server-side snapshot of the two mirrored collections.
// Saves overwrite the whole snapshot; there is no merge.
type UserData struct {
	Platforms []Platform `json:"platforms"`
	Games     []Game     `json:"games"`
}
