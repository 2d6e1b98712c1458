package constants

import "strings"

// MediaKind is the closed set of upload types the extractor dispatch understands.
type MediaKind string

const (
	MediaPDF         MediaKind = "PDF"
	MediaAudio       MediaKind = "AUDIO"
	MediaUnsupported MediaKind = "UNSUPPORTED"
)

// MediaKinds holds the allowed values for the media_kind field in IngestJob.
var MediaKinds = []string{string(MediaPDF), string(MediaAudio)}

// DetectMedia classifies a declared MIME type into one of the supported media
// kinds. Parameters after ";" (e.g. "audio/webm;codecs=opus") are ignored.
func DetectMedia(declared string) MediaKind {
	mt := strings.ToLower(strings.TrimSpace(declared))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch {
	case mt == "application/pdf" || mt == "application/x-pdf":
		return MediaPDF
	case strings.HasPrefix(mt, "audio/"):
		return MediaAudio
	case mt == "application/ogg":
		return MediaAudio
	default:
		return MediaUnsupported
	}
}
