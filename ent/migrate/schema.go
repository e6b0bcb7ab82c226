// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExperienceEventsColumns holds the columns for the "experience_events" table.
	ExperienceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "level", Type: field.TypeInt},
		{Name: "leveled_up", Type: field.TypeBool},
		{Name: "interaction_type", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ExperienceEventsTable holds the schema information for the "experience_events" table.
	ExperienceEventsTable = &schema.Table{
		Name:       "experience_events",
		Columns:    ExperienceEventsColumns,
		PrimaryKey: []*schema.Column{ExperienceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "experienceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExperienceEventsColumns[1]},
			},
			{
				Name:    "experienceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExperienceEventsColumns[2]},
			},
			{
				Name:    "experienceevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ExperienceEventsColumns[3]},
			},
		},
	}
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "interaction_type", Type: field.TypeString},
		{Name: "intensity", Type: field.TypeInt},
		{Name: "duration_mins", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_interaction_type",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// UnlockEventsColumns holds the columns for the "unlock_events" table.
	UnlockEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "overall_progress", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// UnlockEventsTable holds the schema information for the "unlock_events" table.
	UnlockEventsTable = &schema.Table{
		Name:       "unlock_events",
		Columns:    UnlockEventsColumns,
		PrimaryKey: []*schema.Column{UnlockEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unlockevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[1]},
			},
			{
				Name:    "unlockevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[2]},
			},
			{
				Name:    "unlockevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExperienceEventsTable,
		InteractionEventsTable,
		MasteryEventsTable,
		SnapshotsTable,
		UnlockEventsTable,
	}
)

func init() {
}
