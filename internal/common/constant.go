package common

// Header names used by the backend functions. The auth, files and
// user-data services read X-Auth-Token; the profile service reads
// X-Session-Token. Both carry the same session token.
const (
	AuthTokenHeaderName    = "X-Auth-Token"
	SessionTokenHeaderName = "X-Session-Token"
)

// Keys under which client state is persisted in the local key-value store.
// All values are plain JSON with no versioning; a schema change requires
// manual cleanup.
const (
	KeyAuthToken          = "auth_token"
	KeyPlatforms          = "platforms"
	KeyGames              = "games"
	KeyFolders            = "folders"
	KeyFileFolders        = "file_folders"
	KeyActivityLogEnabled = "activity_log_enabled"
)
