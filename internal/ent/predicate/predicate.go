// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CallRecord is the predicate function for callrecord builders.
type CallRecord func(*sql.Selector)
