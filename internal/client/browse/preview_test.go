package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/homeboard/internal/client/models"
)

func TestResolvePreview(t *testing.T) {
	tests := []struct {
		name     string
		mime     string
		wantKind PreviewKind
	}{
		{"image inline", "image/png", PreviewImage},
		{"video inline", "video/mp4", PreviewVideo},
		{"audio inline", "audio/mpeg", PreviewAudio},
		{"pdf frame", "application/pdf", PreviewPDF},
		{"archive generic", "application/zip", PreviewGeneric},
		{"empty generic", "", PreviewGeneric},
		// x-pdf is not the exact pdf type; unlike the type filter the
		// preview only embeds application/pdf
		{"nonstandard pdf generic", "application/x-pdf", PreviewGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolvePreview(models.FileRecord{MimeType: tt.mime, FileURL: "http://cdn/x"})
			assert.Equal(t, tt.wantKind, p.Kind)
			assert.Equal(t, "http://cdn/x", p.URL)
		})
	}
}

func TestResolvePreview_PresentationUsesOfficeViewer(t *testing.T) {
	p := ResolvePreview(models.FileRecord{
		MimeType: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		FileURL:  "http://cdn/deck file.pptx",
	})
	assert.Equal(t, PreviewPresentation, p.Kind)
	assert.Equal(t, "https://view.officeapps.live.com/op/embed.aspx?src=http%3A%2F%2Fcdn%2Fdeck+file.pptx", p.URL)
}
