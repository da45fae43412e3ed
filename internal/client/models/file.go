package models

// FileRecord is the server-owned metadata entry for an uploaded file.
// Records are never mutated client-side; the list is replaced wholesale
// on reload. IDs are unique within a user's file set.
type FileRecord struct {
	ID               int64  `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
	FileSize         int64  `json:"file_size"`
	FileURL          string `json:"file_url"`
	MimeType         string `json:"mime_type"`
	CreatedAt        string `json:"created_at"`
}
