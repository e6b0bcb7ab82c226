// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lidra0530/petskills/ent/experienceevent"
	"github.com/lidra0530/petskills/ent/interactionevent"
	"github.com/lidra0530/petskills/ent/masteryevent"
	"github.com/lidra0530/petskills/ent/schema"
	"github.com/lidra0530/petskills/ent/snapshot"
	"github.com/lidra0530/petskills/ent/unlockevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	experienceeventMixin := schema.ExperienceEvent{}.Mixin()
	experienceeventMixinFields0 := experienceeventMixin[0].Fields()
	_ = experienceeventMixinFields0
	experienceeventFields := schema.ExperienceEvent{}.Fields()
	_ = experienceeventFields
	// experienceeventDescTimestamp is the schema descriptor for timestamp field.
	experienceeventDescTimestamp := experienceeventMixinFields0[1].Descriptor()
	// experienceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	experienceevent.DefaultTimestamp = experienceeventDescTimestamp.Default.(func() time.Time)
	// experienceeventDescSkillID is the schema descriptor for skill_id field.
	experienceeventDescSkillID := experienceeventFields[0].Descriptor()
	// experienceevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	experienceevent.SkillIDValidator = experienceeventDescSkillID.Validators[0].(func(string) error)
	// experienceeventDescLevel is the schema descriptor for level field.
	experienceeventDescLevel := experienceeventFields[2].Descriptor()
	// experienceevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	experienceevent.LevelValidator = experienceeventDescLevel.Validators[0].(func(int) error)
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescInteractionType is the schema descriptor for interaction_type field.
	interactioneventDescInteractionType := interactioneventFields[0].Descriptor()
	// interactionevent.InteractionTypeValidator is a validator for the "interaction_type" field. It is called by the builders before save.
	interactionevent.InteractionTypeValidator = interactioneventDescInteractionType.Validators[0].(func(string) error)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[0].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	// masteryeventDescLevel is the schema descriptor for level field.
	masteryeventDescLevel := masteryeventFields[1].Descriptor()
	// masteryevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	masteryevent.LevelValidator = masteryeventDescLevel.Validators[0].(func(int) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	unlockeventMixin := schema.UnlockEvent{}.Mixin()
	unlockeventMixinFields0 := unlockeventMixin[0].Fields()
	_ = unlockeventMixinFields0
	unlockeventFields := schema.UnlockEvent{}.Fields()
	_ = unlockeventFields
	// unlockeventDescTimestamp is the schema descriptor for timestamp field.
	unlockeventDescTimestamp := unlockeventMixinFields0[1].Descriptor()
	// unlockevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	unlockevent.DefaultTimestamp = unlockeventDescTimestamp.Default.(func() time.Time)
	// unlockeventDescSkillID is the schema descriptor for skill_id field.
	unlockeventDescSkillID := unlockeventFields[0].Descriptor()
	// unlockevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	unlockevent.SkillIDValidator = unlockeventDescSkillID.Validators[0].(func(string) error)
}
