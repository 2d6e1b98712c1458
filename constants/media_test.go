package constants

import "testing"

func TestDetectMedia(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		want     MediaKind
	}{
		{"pdf", "application/pdf", MediaPDF},
		{"pdf alternate", "application/x-pdf", MediaPDF},
		{"pdf uppercase", "Application/PDF", MediaPDF},
		{"mp3", "audio/mpeg", MediaAudio},
		{"wav", "audio/wav", MediaAudio},
		{"webm with codec params", "audio/webm;codecs=opus", MediaAudio},
		{"ogg container", "application/ogg", MediaAudio},
		{"plain text", "text/plain", MediaUnsupported},
		{"image", "image/png", MediaUnsupported},
		{"empty", "", MediaUnsupported},
		{"garbage", "not-a-mime-type", MediaUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMedia(tt.declared); got != tt.want {
				t.Errorf("DetectMedia(%q) = %v, want %v", tt.declared, got, tt.want)
			}
		})
	}
}
