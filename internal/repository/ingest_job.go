package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Blockify0/collabnotes-ai/constants"
	"github.com/Blockify0/collabnotes-ai/gen/ent"
	"github.com/Blockify0/collabnotes-ai/gen/ent/ingestjob"
	"github.com/Blockify0/collabnotes-ai/internal/entity"
)

// IngestJobRepository records per-request metadata. It never stores extracted
// text or summaries; those stay request-scoped.
type IngestJobRepository interface {
	Start(ctx context.Context, kind, mediaType string, inputBytes int64, requestID string) (uuid.UUID, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID, units int, elapsed time.Duration) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, errKind, message string, elapsed time.Duration) error
	List(ctx context.Context, limit int) ([]*entity.IngestJob, error)
}

type ingestJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewIngestJobRepository(entc *ent.Client, log *slog.Logger) IngestJobRepository {
	return &ingestJobRepo{ent: entc, log: log}
}

func (r *ingestJobRepo) Start(ctx context.Context, kind, mediaType string, inputBytes int64, requestID string) (uuid.UUID, error) {
	job, err := r.ent.IngestJob.
		Create().
		SetKind(kind).
		SetMediaType(mediaType).
		SetInputBytes(inputBytes).
		SetStatus(string(constants.JobStatusRunning)).
		SetRequestID(requestID).
		Save(ctx)
	if err != nil {
		r.log.Error("ingest_job start failed", "kind", kind, "err", err)
		return uuid.Nil, err
	}
	r.log.Info("ingest_job started", "job_id", job.ID, "kind", kind, "input_bytes", inputBytes)
	return job.ID, nil
}

func (r *ingestJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, units int, elapsed time.Duration) error {
	err := r.ent.IngestJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusOK)).
		SetUnits(units).
		SetFinishedAt(time.Now()).
		SetDurationMs(elapsed.Milliseconds()).
		Exec(ctx)
	if err != nil {
		r.log.Error("ingest_job finish failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *ingestJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, errKind, message string, elapsed time.Duration) error {
	err := r.ent.IngestJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorKind(errKind).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		SetDurationMs(elapsed.Milliseconds()).
		Exec(ctx)
	if err != nil {
		r.log.Error("ingest_job fail-update failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *ingestJobRepo) List(ctx context.Context, limit int) ([]*entity.IngestJob, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.ent.IngestJob.
		Query().
		Order(ent.Desc(ingestjob.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("ingest_job list failed", "err", err)
		return nil, err
	}
	out := make([]*entity.IngestJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, toIngestJob(row))
	}
	return out, nil
}

func toIngestJob(e *ent.IngestJob) *entity.IngestJob {
	return &entity.IngestJob{
		ID:           e.ID,
		Kind:         e.Kind,
		MediaType:    e.MediaType,
		InputBytes:   e.InputBytes,
		Units:        e.Units,
		Status:       e.Status,
		ErrorKind:    e.ErrorKind,
		ErrorMessage: e.ErrorMessage,
		RequestID:    e.RequestID,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
		DurationMS:   e.DurationMs,
	}
}
