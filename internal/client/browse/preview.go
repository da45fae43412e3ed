package browse

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/homeboard/internal/client/models"
)

// PreviewKind tells the presentation layer how a file can be shown.
type PreviewKind string

const (
	PreviewImage        PreviewKind = "image"
	PreviewVideo        PreviewKind = "video"
	PreviewAudio        PreviewKind = "audio"
	PreviewPDF          PreviewKind = "pdf"
	PreviewPresentation PreviewKind = "presentation"
	PreviewGeneric      PreviewKind = "generic"
)

const officeViewerBase = "https://view.officeapps.live.com/op/embed.aspx?src="

// Preview is a resolved preview target. URL is the file URL itself, or
// the office viewer wrapper for presentations.
type Preview struct {
	Kind PreviewKind
	URL  string
}

// ResolvePreview decides how a record is previewed. Images, video and
// audio render inline, PDF in an embedded frame, presentations through
// the public office viewer (only meaningful when the file URL is
// publicly fetchable), everything else is download-only.
func ResolvePreview(f models.FileRecord) Preview {
	m := strings.ToLower(f.MimeType)
	switch {
	case strings.HasPrefix(m, "image/"):
		return Preview{Kind: PreviewImage, URL: f.FileURL}
	case strings.HasPrefix(m, "video/"):
		return Preview{Kind: PreviewVideo, URL: f.FileURL}
	case strings.HasPrefix(m, "audio/"):
		return Preview{Kind: PreviewAudio, URL: f.FileURL}
	case m == "application/pdf":
		return Preview{Kind: PreviewPDF, URL: f.FileURL}
	case strings.Contains(m, "presentation"), strings.Contains(m, "powerpoint"):
		return Preview{Kind: PreviewPresentation, URL: officeViewerBase + url.QueryEscape(f.FileURL)}
	}
	return Preview{Kind: PreviewGeneric, URL: f.FileURL}
}
