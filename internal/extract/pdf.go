package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"
)

// PDFConfig controls the in-process paged text extraction.
type PDFConfig struct {
	// MaxConcurrency bounds concurrent per-page extraction.
	// <= 1 means sequential.
	MaxConcurrency int
}

// PDFExtractor decodes the uploaded bytes as a paged document and extracts
// the text layer page by page.
type PDFExtractor struct {
	cfg PDFConfig
	log *slog.Logger
}

func NewPDFExtractor(cfg PDFConfig, logger *slog.Logger) *PDFExtractor {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{cfg: cfg, log: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, up Upload) (Result, error) {
	start := time.Now()

	r, err := readPDF(up.Data)
	if err != nil {
		e.log.Error("extract.pdf.parse_failed", "filename", up.Filename, "bytes", len(up.Data), "error", err)
		return Result{}, err
	}

	n := r.NumPage()
	warns := make([]string, n)
	texts, err := assemble(ctx, n, e.cfg.MaxConcurrency, func(i int) (string, error) {
		p := r.Page(i)
		if p.V.IsNull() {
			warns[i-1] = fmt.Sprintf("page %d has no content", i)
			return "", nil
		}
		return pageText(p)
	})
	if err != nil {
		e.log.Error("extract.pdf.page_failed", "filename", up.Filename, "pages", n, "error", err)
		return Result{}, err
	}

	text, err := Normalize(texts)
	if err != nil {
		e.log.Warn("extract.pdf.empty", "filename", up.Filename, "pages", n)
		return Result{}, err
	}

	var warnings []string
	for _, w := range warns {
		if w != "" {
			warnings = append(warnings, w)
		}
	}

	e.log.Info("extract.pdf.ok",
		"filename", up.Filename,
		"pages", n,
		"bytes", len(text),
		"warnings", len(warnings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Text:     text,
		Units:    n,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warnings,
	}, nil
}

// assemble runs pageFn for pages 1..n and returns the texts in page order.
// Results go into an index-addressed buffer, so completion order never
// affects concatenation order. A failing page fails the whole document.
func assemble(ctx context.Context, n, limit int, pageFn func(i int) (string, error)) ([]string, error) {
	out := make([]string, n)
	g, ctx := errgroup.WithContext(ctx)
	if limit > 1 {
		g.SetLimit(limit)
	} else {
		g.SetLimit(1)
	}
	for i := 1; i <= n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			txt, err := pageFn(i)
			if err != nil {
				return fmt.Errorf("page %d: %w", i, err)
			}
			out[i-1] = txt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// The pdf package panics on some malformed inputs, so both entry points are
// fenced with recover and report a plain error instead.
func readPDF(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("parse pdf: %v", p)
		}
	}()
	r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}
	return r, nil
}

func pageText(p pdf.Page) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract page text: %v", r)
		}
	}()
	return p.GetPlainText(nil)
}
