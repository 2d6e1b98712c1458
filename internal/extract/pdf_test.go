package extract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAssemblePreservesPageOrder(t *testing.T) {
	const pages = 8

	// Later pages finish first, so any completion-order bug would reverse
	// the output.
	texts, err := assemble(context.Background(), pages, 4, func(i int) (string, error) {
		time.Sleep(time.Duration(pages-i) * 5 * time.Millisecond)
		return fmt.Sprintf("p%d", i), nil
	})
	require.NoError(t, err)
	require.Len(t, texts, pages)
	for i := 1; i <= pages; i++ {
		require.Equal(t, fmt.Sprintf("p%d", i), texts[i-1])
	}
}

func TestAssembleSequentialLimit(t *testing.T) {
	texts, err := assemble(context.Background(), 3, 1, func(i int) (string, error) {
		return fmt.Sprintf("p%d", i), nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2", "p3"}, texts)
}

func TestAssembleFailingPageFailsDocument(t *testing.T) {
	boom := errors.New("truncated stream")
	_, err := assemble(context.Background(), 5, 4, func(i int) (string, error) {
		if i == 3 {
			return "", boom
		}
		return "ok", nil
	})
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "page 3")
}

func TestAssembleCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := assemble(ctx, 4, 2, func(i int) (string, error) {
		return "ok", nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPDFExtractorRejectsGarbage(t *testing.T) {
	e := NewPDFExtractor(PDFConfig{}, nil)

	_, err := e.Extract(context.Background(), Upload{
		Filename:  "notes.pdf",
		MediaType: "application/pdf",
		Data:      []byte("this is not a pdf"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse pdf")
}
