package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Blockify0/collabnotes-ai/internal/common"
)

type fakeExtractor struct {
	calls  int
	result Result
	err    error
}

func (f *fakeExtractor) Extract(_ context.Context, _ Upload) (Result, error) {
	f.calls++
	return f.result, f.err
}

type fakeTranscriber struct {
	calls    int
	filename string
	text     string
	err      error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, filename string, _ []byte) (string, error) {
	f.calls++
	f.filename = filename
	return f.text, f.err
}

func TestDispatcherRoutesByDeclaredType(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		wantPDF   int
		wantAudio int
	}{
		{"pdf", "application/pdf", 1, 0},
		{"pdf with params", "application/pdf; charset=binary", 1, 0},
		{"legacy pdf", "application/x-pdf", 1, 0},
		{"mp3", "audio/mpeg", 0, 1},
		{"wav", "audio/wav", 0, 1},
		{"ogg container", "application/ogg", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfEx := &fakeExtractor{result: Result{Text: "from pdf"}}
			audioEx := &fakeExtractor{result: Result{Text: "from audio"}}
			d := NewDispatcher(pdfEx, audioEx, nil)

			_, err := d.Extract(context.Background(), Upload{
				Filename:  "upload",
				MediaType: tt.mediaType,
				Data:      []byte("payload"),
			})
			require.NoError(t, err)
			require.Equal(t, tt.wantPDF, pdfEx.calls)
			require.Equal(t, tt.wantAudio, audioEx.calls)
		})
	}
}

func TestDispatcherRejectsUnsupportedType(t *testing.T) {
	pdfEx := &fakeExtractor{}
	audioEx := &fakeExtractor{}
	d := NewDispatcher(pdfEx, audioEx, nil)

	_, err := d.Extract(context.Background(), Upload{
		Filename:  "photo.png",
		MediaType: "image/png",
		Data:      []byte{1, 2, 3},
	})
	require.Error(t, err)

	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, common.KindUnsupportedMedia, apiErr.Kind)
	require.Contains(t, apiErr.Message, "image/png")
	require.Zero(t, pdfEx.calls)
	require.Zero(t, audioEx.calls)
}

func TestAudioExtractorForwardsWholeFile(t *testing.T) {
	tr := &fakeTranscriber{text: "  hello from the meeting  "}
	a := NewAudioExtractor(tr, nil)

	res, err := a.Extract(context.Background(), Upload{
		Filename:  "standup.mp3",
		MediaType: "audio/mpeg",
		Data:      []byte("mp3 bytes"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, tr.calls)
	require.Equal(t, "standup.mp3", tr.filename)
	require.Equal(t, "hello from the meeting", res.Text)
	require.Equal(t, 1, res.Units)
	require.Equal(t, "whisper", res.Method)
}

func TestAudioExtractorRejectsEmptyTranscript(t *testing.T) {
	a := NewAudioExtractor(&fakeTranscriber{text: "   "}, nil)

	_, err := a.Extract(context.Background(), Upload{Filename: "silence.wav", MediaType: "audio/wav"})
	require.Error(t, err)

	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, common.KindExtractionEmpty, apiErr.Kind)
}

func TestAudioExtractorPropagatesTranscriberError(t *testing.T) {
	upstream := common.UpstreamRateLimited("OpenAI API rate limit exceeded", nil)
	a := NewAudioExtractor(&fakeTranscriber{err: upstream}, nil)

	_, err := a.Extract(context.Background(), Upload{Filename: "talk.m4a", MediaType: "audio/mp4"})
	require.ErrorIs(t, err, upstream)
}
