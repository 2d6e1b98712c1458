// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Blockify0/collabnotes-ai/db/ent/schema"
	"github.com/Blockify0/collabnotes-ai/gen/ent/ingestjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	ingestjobFields := schema.IngestJob{}.Fields()
	_ = ingestjobFields
	// ingestjobDescKind is the schema descriptor for kind field.
	ingestjobDescKind := ingestjobFields[1].Descriptor()
	// ingestjob.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	ingestjob.KindValidator = func() func(string) error {
		validators := ingestjobDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ingestjobDescStatus is the schema descriptor for status field.
	ingestjobDescStatus := ingestjobFields[5].Descriptor()
	// ingestjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ingestjob.StatusValidator = ingestjobDescStatus.Validators[0].(func(string) error)
	// ingestjobDescStartedAt is the schema descriptor for started_at field.
	ingestjobDescStartedAt := ingestjobFields[9].Descriptor()
	// ingestjob.DefaultStartedAt holds the default value on creation for the started_at field.
	ingestjob.DefaultStartedAt = ingestjobDescStartedAt.Default.(func() time.Time)
	// ingestjobDescID is the schema descriptor for id field.
	ingestjobDescID := ingestjobFields[0].Descriptor()
	// ingestjob.DefaultID holds the default value on creation for the id field.
	ingestjob.DefaultID = ingestjobDescID.Default.(func() uuid.UUID)
}
