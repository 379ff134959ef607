// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CallRecordsColumns holds the columns for the "call_records" table.
	CallRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "context_id", Type: field.TypeString},
		{Name: "seq", Type: field.TypeInt64},
		{Name: "caller_id", Type: field.TypeString},
		{Name: "tool", Type: field.TypeString},
		{Name: "arguments", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
		{Name: "ended_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
	}
	// CallRecordsTable holds the schema information for the "call_records" table.
	CallRecordsTable = &schema.Table{
		Name:       "call_records",
		Columns:    CallRecordsColumns,
		PrimaryKey: []*schema.Column{CallRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "callrecord_context_id_seq",
				Unique:  true,
				Columns: []*schema.Column{CallRecordsColumns[2], CallRecordsColumns[3]},
			},
			{
				Name:    "callrecord_context_id",
				Unique:  false,
				Columns: []*schema.Column{CallRecordsColumns[2]},
			},
			{
				Name:    "callrecord_caller_id",
				Unique:  false,
				Columns: []*schema.Column{CallRecordsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CallRecordsTable,
	}
)

func init() {
}
