// Code generated by ent, DO NOT EDIT.

package callrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wilhg/toolgate/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldID, id))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallID, v))
}

// ContextID applies equality check predicate on the "context_id" field. It's identical to ContextIDEQ.
func ContextID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldContextID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldSeq, v))
}

// CallerID applies equality check predicate on the "caller_id" field. It's identical to CallerIDEQ.
func CallerID(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallerID, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTool, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldCallID, v))
}

// ContextIDEQ applies the EQ predicate on the "context_id" field.
func ContextIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldContextID, v))
}

// ContextIDNEQ applies the NEQ predicate on the "context_id" field.
func ContextIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldContextID, v))
}

// ContextIDIn applies the In predicate on the "context_id" field.
func ContextIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldContextID, vs...))
}

// ContextIDNotIn applies the NotIn predicate on the "context_id" field.
func ContextIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldContextID, vs...))
}

// ContextIDGT applies the GT predicate on the "context_id" field.
func ContextIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldContextID, v))
}

// ContextIDGTE applies the GTE predicate on the "context_id" field.
func ContextIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldContextID, v))
}

// ContextIDLT applies the LT predicate on the "context_id" field.
func ContextIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldContextID, v))
}

// ContextIDLTE applies the LTE predicate on the "context_id" field.
func ContextIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldContextID, v))
}

// ContextIDContains applies the Contains predicate on the "context_id" field.
func ContextIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldContextID, v))
}

// ContextIDHasPrefix applies the HasPrefix predicate on the "context_id" field.
func ContextIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldContextID, v))
}

// ContextIDHasSuffix applies the HasSuffix predicate on the "context_id" field.
func ContextIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldContextID, v))
}

// ContextIDEqualFold applies the EqualFold predicate on the "context_id" field.
func ContextIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldContextID, v))
}

// ContextIDContainsFold applies the ContainsFold predicate on the "context_id" field.
func ContextIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldContextID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldSeq, v))
}

// CallerIDEQ applies the EQ predicate on the "caller_id" field.
func CallerIDEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCallerID, v))
}

// CallerIDNEQ applies the NEQ predicate on the "caller_id" field.
func CallerIDNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCallerID, v))
}

// CallerIDIn applies the In predicate on the "caller_id" field.
func CallerIDIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCallerID, vs...))
}

// CallerIDNotIn applies the NotIn predicate on the "caller_id" field.
func CallerIDNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCallerID, vs...))
}

// CallerIDGT applies the GT predicate on the "caller_id" field.
func CallerIDGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCallerID, v))
}

// CallerIDGTE applies the GTE predicate on the "caller_id" field.
func CallerIDGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCallerID, v))
}

// CallerIDLT applies the LT predicate on the "caller_id" field.
func CallerIDLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCallerID, v))
}

// CallerIDLTE applies the LTE predicate on the "caller_id" field.
func CallerIDLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCallerID, v))
}

// CallerIDContains applies the Contains predicate on the "caller_id" field.
func CallerIDContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldCallerID, v))
}

// CallerIDHasPrefix applies the HasPrefix predicate on the "caller_id" field.
func CallerIDHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldCallerID, v))
}

// CallerIDHasSuffix applies the HasSuffix predicate on the "caller_id" field.
func CallerIDHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldCallerID, v))
}

// CallerIDEqualFold applies the EqualFold predicate on the "caller_id" field.
func CallerIDEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldCallerID, v))
}

// CallerIDContainsFold applies the ContainsFold predicate on the "caller_id" field.
func CallerIDContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldCallerID, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldHasSuffix(FieldTool, v))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldContainsFold(FieldTool, v))
}

// ArgumentsIsNil applies the IsNil predicate on the "arguments" field.
func ArgumentsIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldArguments))
}

// ArgumentsNotNil applies the NotNil predicate on the "arguments" field.
func ArgumentsNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldArguments))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldResult))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotNull(FieldError))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldEndedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CallRecord {
	return predicate.CallRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CallRecord) predicate.CallRecord {
	return predicate.CallRecord(sql.NotPredicates(p))
}
