package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Blockify0/collabnotes-ai/internal/common"
)

func TestNormalizeJoinsInOrder(t *testing.T) {
	got, err := Normalize([]string{"page one", "page two", "page three"})
	require.NoError(t, err)
	require.Equal(t, "page one\npage two\npage three", got)
}

func TestNormalizeTrimsEachUnit(t *testing.T) {
	got, err := Normalize([]string{"  hello ", "world  \n"})
	require.NoError(t, err)
	require.Equal(t, "hello\nworld", got)
}

func TestNormalizeSingleNewlineBetweenPages(t *testing.T) {
	// Extracted page text usually ends in a newline; the separator must not
	// become a blank line.
	got, err := Normalize([]string{"page 1 text \n", "page 2 text\n"})
	require.NoError(t, err)
	require.Equal(t, "page 1 text\npage 2 text", got)
}

func TestNormalizeSkipsEmptyUnits(t *testing.T) {
	got, err := Normalize([]string{"page 1", "", "  \n", "page 4"})
	require.NoError(t, err)
	require.Equal(t, "page 1\npage 4", got)
}

func TestNormalizeRejectsWhitespaceOnly(t *testing.T) {
	tests := []struct {
		name  string
		units []string
	}{
		{"no units", nil},
		{"single empty", []string{""}},
		{"all whitespace pages", []string{"   ", "\n\t", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.units)
			require.Error(t, err)

			var apiErr *common.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, common.KindExtractionEmpty, apiErr.Kind)
		})
	}
}
