package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/Blockify0/collabnotes-ai/constants"
	"github.com/Blockify0/collabnotes-ai/db/ent/schema/utils"
)

// IngestJob is the per-request ledger row: metadata only, never the
// extracted text or the generated summary.
type IngestJob struct{ ent.Schema }

func (IngestJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingest_job"},
	}
}

func (IngestJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.JobKinds...)),
		field.String("media_type").Optional(),
		field.Int64("input_bytes"),
		field.Int("units").Optional(),
		field.String("status").NotEmpty(),
		field.String("error_kind").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("request_id").Optional(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.Int64("duration_ms").Optional(),
	}
}

func (IngestJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
		index.Fields("status"),
		index.Fields("kind"),
	}
}
