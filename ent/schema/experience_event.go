package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExperienceEvent records an experience grant applied to a skill.
type ExperienceEvent struct {
	ent.Schema
}

func (ExperienceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExperienceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").NotEmpty(),
		field.Int("amount"),
		field.Int("level").Positive().Comment("Skill level after the grant"),
		field.Bool("leveled_up"),
		field.String("interaction_type").Optional(),
		field.String("session_id").Optional(),
	}
}

func (ExperienceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
