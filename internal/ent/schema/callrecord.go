package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CallRecord holds the schema definition for one tool invocation attempt.
// Records are append-only: rows are never updated or deleted while the
// owning context lives.
type CallRecord struct{ ent.Schema }

// Fields of the CallRecord.
func (CallRecord) Fields() []ent.Field {
	return []ent.Field{
		// External stable ID; uniqueness makes double-append impossible.
		field.String("call_id").NotEmpty().Unique(),
		// Invocation context (e.g. one conversation thread).
		field.String("context_id").NotEmpty(),
		// Monotonic sequence per context, assigned at append time.
		field.Int64("seq").NonNegative(),
		field.String("caller_id").NotEmpty(),
		field.String("tool").NotEmpty(),
		// JSON columns; compatible with Postgres (JSONB) and SQLite (TEXT/BLOB).
		field.JSON("arguments", map[string]any{}).Optional(),
		field.JSON("result", map[string]any{}).Optional(),
		field.JSON("error", map[string]any{}).Optional(),
		field.Time("started_at").SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
		field.Time("ended_at").SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
		field.Time("created_at").Default(time.Now).Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

// Indexes of the CallRecord.
func (CallRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("context_id", "seq").Unique(),
		index.Fields("context_id"),
		index.Fields("caller_id"),
	}
}
