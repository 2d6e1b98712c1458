package extract

import (
	"strings"

	"github.com/Blockify0/collabnotes-ai/internal/common"
)

// Normalize joins per-unit texts with a single newline between units and
// rejects results with no usable text. Each unit is trimmed first: extracted
// page text tends to carry trailing newlines that would otherwise turn the
// separator into a blank line. A scanned PDF with no text layer reaches here
// as all-whitespace pages and must fail, not come back as an empty 200.
func Normalize(units []string) (string, error) {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u = strings.TrimSpace(u); u != "" {
			parts = append(parts, u)
		}
	}
	text := strings.Join(parts, "\n")
	if text == "" {
		return "", common.ExtractionEmpty("no text could be extracted")
	}
	return text, nil
}
