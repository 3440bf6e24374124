package domain

import "strings"

// MediaKind is the type of exercise media a client wants to upload.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Accepts reports whether contentType is a MIME type of this kind, e.g. "video/mp4"
// for MediaVideo.
func (k MediaKind) Accepts(contentType string) bool {
	switch k {
	case MediaImage, MediaVideo:
		return strings.HasPrefix(strings.ToLower(contentType), string(k)+"/")
	default:
		return false
	}
}

// MediaUpload is handed back to a client that will PUT a file directly to object
// storage and then reference PublicURL from an exercise.
type MediaUpload struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	PublicURL string `json:"publicUrl"`
}
