package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Blockify0/collabnotes-ai/constants"
	"github.com/Blockify0/collabnotes-ai/internal/entity"
)

type fixedJobRepo struct {
	jobs []*entity.IngestJob
}

func (f *fixedJobRepo) Start(context.Context, string, string, int64, string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (f *fixedJobRepo) FinishSuccess(context.Context, uuid.UUID, int, time.Duration) error {
	return nil
}

func (f *fixedJobRepo) FinishFailure(context.Context, uuid.UUID, string, string, time.Duration) error {
	return nil
}

func (f *fixedJobRepo) List(context.Context, int) ([]*entity.IngestJob, error) {
	return f.jobs, nil
}

func TestExportJobsXLSX(t *testing.T) {
	errKind := "UPSTREAM_RATE_LIMITED"
	errMsg := "OpenAI API rate limit exceeded"
	repo := &fixedJobRepo{jobs: []*entity.IngestJob{
		{
			ID:         uuid.New(),
			Kind:       constants.JobKindExtractPDF,
			MediaType:  "application/pdf",
			InputBytes: 2048,
			Units:      3,
			Status:     string(constants.JobStatusOK),
			RequestID:  "req-1",
			StartedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
			DurationMS: 410,
		},
		{
			ID:           uuid.New(),
			Kind:         constants.JobKindSummarize,
			MediaType:    "text/plain",
			InputBytes:   512,
			Status:       string(constants.JobStatusFailed),
			ErrorKind:    &errKind,
			ErrorMessage: &errMsg,
			RequestID:    "req-2",
			StartedAt:    time.Date(2026, 8, 30, 12, 5, 0, 0, time.UTC),
			DurationMS:   95,
		},
	}}

	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportJobsXLSX(context.Background(), 100)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "Started At", rows[0][0])
	require.Equal(t, "Kind", rows[0][1])

	require.Equal(t, constants.JobKindExtractPDF, rows[1][1])
	require.Equal(t, "application/pdf", rows[1][2])
	require.Equal(t, string(constants.JobStatusOK), rows[1][5])

	require.Equal(t, constants.JobKindSummarize, rows[2][1])
	require.Equal(t, errKind, rows[2][6])
	require.Equal(t, errMsg, rows[2][7])
}

func TestExportJobsXLSXEmptyLedger(t *testing.T) {
	svc := NewService(&fixedJobRepo{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := svc.ExportJobsXLSX(context.Background(), 100)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
