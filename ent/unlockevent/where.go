// Code generated by ent, DO NOT EDIT.

package unlockevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lidra0530/petskills/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSkillID, v))
}

// OverallProgress applies equality check predicate on the "overall_progress" field. It's identical to OverallProgressEQ.
func OverallProgress(v float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldOverallProgress, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// OverallProgressEQ applies the EQ predicate on the "overall_progress" field.
func OverallProgressEQ(v float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldOverallProgress, v))
}

// OverallProgressNEQ applies the NEQ predicate on the "overall_progress" field.
func OverallProgressNEQ(v float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldOverallProgress, v))
}

// OverallProgressIn applies the In predicate on the "overall_progress" field.
func OverallProgressIn(vs ...float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldOverallProgress, vs...))
}

// OverallProgressNotIn applies the NotIn predicate on the "overall_progress" field.
func OverallProgressNotIn(vs ...float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldOverallProgress, vs...))
}

// OverallProgressGT applies the GT predicate on the "overall_progress" field.
func OverallProgressGT(v float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldOverallProgress, v))
}

// OverallProgressGTE applies the GTE predicate on the "overall_progress" field.
func OverallProgressGTE(v float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldOverallProgress, v))
}

// OverallProgressLT applies the LT predicate on the "overall_progress" field.
func OverallProgressLT(v float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldOverallProgress, v))
}

// OverallProgressLTE applies the LTE predicate on the "overall_progress" field.
func OverallProgressLTE(v float64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldOverallProgress, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnlockEvent) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnlockEvent) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnlockEvent) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.NotPredicates(p))
}
