package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Blockify0/collabnotes-ai/internal/repository"
)

// Service is a tiny façade over the job repository that produces XLSX bytes
// for ledger exports.
type Service struct {
	jobs   repository.IngestJobRepository
	logger *slog.Logger
}

func NewService(jobs repository.IngestJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) with the most recent
// ledger rows, newest first.
func (s *Service) ExportJobsXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	jobs, err := s.jobs.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Started At",
		"Kind",
		"Media Type",
		"Input Bytes",
		"Units",
		"Status",
		"Error Kind",
		"Error Message",
		"Duration (ms)",
		"Request ID",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, j := range jobs {
		values := []any{
			j.StartedAt.UTC().Format(time.RFC3339),
			j.Kind,
			j.MediaType,
			j.InputBytes,
			j.Units,
			j.Status,
			strOrEmpty(j.ErrorKind),
			strOrEmpty(j.ErrorMessage),
			j.DurationMS,
			j.RequestID,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.jobs.ok",
		"rows", len(jobs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
