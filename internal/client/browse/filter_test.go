package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homeboard/internal/client/filetype"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
)

var testFiles = []models.FileRecord{
	{ID: 1, OriginalFilename: "Dota Replay.mp4", MimeType: "video/mp4"},
	{ID: 2, OriginalFilename: "report.pdf", MimeType: "application/pdf"},
	{ID: 3, OriginalFilename: "photo.png", MimeType: "image/png"},
	{ID: 4, OriginalFilename: "unknown.xyz", MimeType: ""},
}

func names(files []models.FileRecord) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.OriginalFilename
	}
	return out
}

func TestFilter_ZeroValueMatchesAll(t *testing.T) {
	got := Filter{}.Apply(testFiles, nil)
	assert.Len(t, got, len(testFiles))
}

func TestFilter_QueryCaseInsensitive(t *testing.T) {
	got := Filter{Query: "dota"}.Apply(testFiles, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Dota Replay.mp4", got[0].OriginalFilename)

	assert.Empty(t, Filter{Query: "nothing"}.Apply(testFiles, nil))
}

func TestFilter_EmptySelectionMatchesNothing(t *testing.T) {
	got := Filter{Types: filetype.NewSelection()}.Apply(testFiles, nil)
	assert.Empty(t, got)
}

func TestFilter_FullSelectionMatchesAll(t *testing.T) {
	got := Filter{Types: filetype.FullSelection()}.Apply(testFiles, nil)
	assert.Len(t, got, len(testFiles), "full selection includes records outside the taxonomy")
}

func TestFilter_PartialSelection(t *testing.T) {
	got := Filter{Types: filetype.NewSelection(filetype.Video, filetype.PDF)}.Apply(testFiles, nil)
	assert.Equal(t, []string{"Dota Replay.mp4", "report.pdf"}, names(got))
}

func TestFilter_FolderScope(t *testing.T) {
	folderOf := func(id int64) string {
		if id == 2 {
			return "docs"
		}
		return ""
	}
	got := Filter{FolderID: "docs"}.Apply(testFiles, folderOf)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilter_CriteriaCombine(t *testing.T) {
	got := Filter{
		Query: "re",
		Types: filetype.NewSelection(filetype.PDF),
	}.Apply(testFiles, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "report.pdf", got[0].OriginalFilename)
}
