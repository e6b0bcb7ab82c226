package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnlockEvent records a successful skill unlock.
type UnlockEvent struct {
	ent.Schema
}

func (UnlockEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (UnlockEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").NotEmpty(),
		field.Float("overall_progress"),
		field.String("session_id").Optional(),
	}
}

func (UnlockEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
