package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Blockify0/collabnotes-ai/internal/entity"
)

// nopIngestJobRepo keeps the service fully stateless when no database is
// configured: every write is a no-op and the job list is empty.
type nopIngestJobRepo struct{}

func NewNopIngestJobRepository() IngestJobRepository {
	return nopIngestJobRepo{}
}

func (nopIngestJobRepo) Start(context.Context, string, string, int64, string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (nopIngestJobRepo) FinishSuccess(context.Context, uuid.UUID, int, time.Duration) error {
	return nil
}

func (nopIngestJobRepo) FinishFailure(context.Context, uuid.UUID, string, string, time.Duration) error {
	return nil
}

func (nopIngestJobRepo) List(context.Context, int) ([]*entity.IngestJob, error) {
	return nil, nil
}
