package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMIME_DeclaredTypeWins(t *testing.T) {
	assert.Equal(t, "image/png", ResolveMIME("shot.png", "image/png"))
	assert.Equal(t, "text/plain", ResolveMIME("movie.mp4", "text/plain"))
}

func TestResolveMIME_InfersVideoAndPresentation(t *testing.T) {
	assert.Equal(t, "video/mp4", ResolveMIME("movie.MP4", ""))
	assert.Equal(t, "video/x-matroska", ResolveMIME("movie.mkv", "application/octet-stream"))
	assert.Equal(t, "application/vnd.ms-powerpoint", ResolveMIME("deck.ppt", ""))
}

// Image extensions are intentionally not in the table: a .jpg with no
// declared type falls through unchanged.
func TestResolveMIME_ImageExtensionGap(t *testing.T) {
	assert.Equal(t, "", ResolveMIME("photo.jpg", ""))
	assert.Equal(t, "application/octet-stream", ResolveMIME("photo.jpg", "application/octet-stream"))
}

func TestResolveMIME_UnknownExtension(t *testing.T) {
	assert.Equal(t, "", ResolveMIME("data.bin", ""))
}
