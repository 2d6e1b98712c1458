// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// IngestJob is the predicate function for ingestjob builders.
type IngestJob func(*sql.Selector)
