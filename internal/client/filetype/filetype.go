// Package filetype classifies file records into the browser's type
// taxonomy and implements the multi-select type filter.
package filetype

import (
	"path/filepath"
	"strings"
)

// Category ids. These are stable identifiers used in filter selections;
// display names live with the presentation layer.
const (
	Shortcut    = "shortcut"
	Database    = "database"
	Image       = "image"
	Word        = "word"
	PowerPoint  = "powerpoint"
	Publisher   = "publisher"
	Text        = "text"
	Spreadsheet = "spreadsheet"
	Archive     = "archive"
	Video       = "video"
	Audio       = "audio"
	PDF         = "pdf"
)

// Category groups filename extensions under one filterable id.
type Category struct {
	ID         string
	Extensions []string
}

// categories is the fixed taxonomy, in display order.
var categories = []Category{
	{Shortcut, []string{".lnk", ".url"}},
	{Database, []string{".accdb", ".mdb"}},
	{Image, []string{".bmp", ".jpg", ".jpeg", ".png", ".gif", ".webp"}},
	{Word, []string{".doc", ".docx"}},
	{PowerPoint, []string{".ppt", ".pptx"}},
	{Publisher, []string{".pub"}},
	{Text, []string{".txt"}},
	{Spreadsheet, []string{".xls", ".xlsx", ".csv"}},
	{Archive, []string{".zip", ".rar", ".7z", ".tar", ".gz"}},
	{Video, []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg", ".3gp", ".ogv", ".ts", ".vob"}},
	{Audio, []string{".mp3", ".wav", ".flac", ".m4a", ".ogg"}},
	{PDF, []string{".pdf"}},
}

var extensionIndex = func() map[string]string {
	idx := make(map[string]string)
	for _, c := range categories {
		for _, ext := range c.Extensions {
			idx[ext] = c.ID
		}
	}
	return idx
}()

// Categories returns the taxonomy in display order. The slice is shared;
// callers must not mutate it.
func Categories() []Category { return categories }

// Categorize maps a record to a category id. The MIME type is consulted
// first (prefix for the media families, keywords for document formats),
// then the filename extension. Returns "" when nothing matches.
func Categorize(mimeType, filename string) string {
	m := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(m, "image/"):
		return Image
	case strings.HasPrefix(m, "video/"):
		return Video
	case strings.HasPrefix(m, "audio/"):
		return Audio
	case strings.Contains(m, "pdf"):
		return PDF
	case strings.Contains(m, "zip"), strings.Contains(m, "rar"), strings.Contains(m, "7z"):
		return Archive
	case strings.Contains(m, "presentation"), strings.Contains(m, "powerpoint"):
		return PowerPoint
	case strings.Contains(m, "spreadsheet"), strings.Contains(m, "excel"):
		return Spreadsheet
	case strings.Contains(m, "word"), strings.Contains(m, "document"):
		return Word
	}
	return extensionIndex[strings.ToLower(filepath.Ext(filename))]
}

// Selection is a set of category ids checked in the type filter.
//
// An empty selection matches nothing and a complete selection matches
// everything, including records no category claims. Only a partial
// selection filters by category.
type Selection map[string]struct{}

// NewSelection builds a selection from ids; unknown ids are kept (they
// simply never match).
func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// FullSelection selects every category.
func FullSelection() Selection {
	s := make(Selection, len(categories))
	for _, c := range categories {
		s[c.ID] = struct{}{}
	}
	return s
}

// Toggle flips one id in or out of the selection.
func (s Selection) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Full reports whether every category is selected.
func (s Selection) Full() bool {
	for _, c := range categories {
		if _, ok := s[c.ID]; !ok {
			return false
		}
	}
	return true
}

// Matches reports whether a record with the given MIME type and filename
// passes the filter.
func (s Selection) Matches(mimeType, filename string) bool {
	if len(s) == 0 {
		return false
	}
	if s.Full() {
		return true
	}
	_, ok := s[Categorize(mimeType, filename)]
	return ok
}
