package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records one interaction with the pet. The interaction log
// is replayed to rebuild the history portion of a pet snapshot, which
// interaction-count unlock conditions read.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("interaction_type").NotEmpty(),
		field.Int("intensity"),
		field.Int("duration_mins"),
		field.String("session_id").Optional(),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("interaction_type"),
	}
}
