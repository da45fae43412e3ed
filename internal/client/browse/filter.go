// Package browse implements the file browser behaviors: filtering,
// preview resolution and the delayed-delete countdown.
package browse

import (
	"strings"

	"github.com/dmitrijs2005/homeboard/internal/client/filetype"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
)

// Filter narrows a file listing. Zero-value fields are inactive: an
// empty query matches everything, a nil Types selection disables type
// filtering (a non-nil empty selection matches nothing), and an empty
// FolderID disables folder scoping.
type Filter struct {
	Query    string
	Types    filetype.Selection
	FolderID string
}

// Apply returns the records passing every active criterion, preserving
// input order. folderOf resolves a file's folder assignment ("" means
// unassigned); it is only consulted when FolderID is set.
func (f Filter) Apply(files []models.FileRecord, folderOf func(int64) string) []models.FileRecord {
	query := strings.ToLower(f.Query)
	var out []models.FileRecord
	for _, file := range files {
		if query != "" && !strings.Contains(strings.ToLower(file.OriginalFilename), query) {
			continue
		}
		if f.Types != nil && !f.Types.Matches(file.MimeType, file.OriginalFilename) {
			continue
		}
		if f.FolderID != "" && folderOf != nil && folderOf(file.ID) != f.FolderID {
			continue
		}
		out = append(out, file)
	}
	return out
}
