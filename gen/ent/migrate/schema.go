// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IngestJobColumns holds the columns for the "ingest_job" table.
	IngestJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "media_type", Type: field.TypeString, Nullable: true},
		{Name: "input_bytes", Type: field.TypeInt64},
		{Name: "units", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
	}
	// IngestJobTable holds the schema information for the "ingest_job" table.
	IngestJobTable = &schema.Table{
		Name:       "ingest_job",
		Columns:    IngestJobColumns,
		PrimaryKey: []*schema.Column{IngestJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestjob_started_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobColumns[9]},
			},
			{
				Name:    "ingestjob_status",
				Unique:  false,
				Columns: []*schema.Column{IngestJobColumns[5]},
			},
			{
				Name:    "ingestjob_kind",
				Unique:  false,
				Columns: []*schema.Column{IngestJobColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IngestJobTable,
	}
)

func init() {
	IngestJobTable.Annotation = &entsql.Annotation{
		Table: "ingest_job",
	}
}
