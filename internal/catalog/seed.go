package catalog

// Default returns the built-in skill catalog. It panics if the seed data is
// structurally invalid, which can only happen through a programming error.
func Default() *Catalog {
	c, err := New(defaultSkills())
	if err != nil {
		panic("catalog: invalid built-in skill set: " + err.Error())
	}
	return c
}

// defaultSkills is the built-in progression tree: every skill type and rarity
// is represented, with prerequisite chains deepening toward the legendary
// skills.
func defaultSkills() []SkillDefinition {
	return []SkillDefinition{
		// Communication
		{
			ID:                   "basic_communication",
			Name:                 "Basic Communication",
			Description:          "Simple chatter: greetings, reactions, and short replies.",
			Icon:                 "💬",
			Type:                 TypeCommunication,
			Rarity:               RarityCommon,
			MaxLevel:             10,
			ExperienceMultiplier: 1.0,
			Effects: []SkillEffect{
				{Type: EffectConversationModifier, Target: "vocabulary", Modifier: 0.1, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "active_listening",
			Name:                 "Active Listening",
			Description:          "The pet picks up on what you said earlier and follows up.",
			Icon:                 "👂",
			Type:                 TypeCommunication,
			Rarity:               RarityUncommon,
			MaxLevel:             10,
			ExperienceMultiplier: 1.1,
			UnlockConditions: []Condition{
				SkillPrerequisiteCondition{SkillID: "basic_communication", Level: 3},
				InteractionCountCondition{Count: 20, InteractionType: "chat"},
			},
			Effects: []SkillEffect{
				{Type: EffectStatBoost, Target: "affection", Modifier: 2, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "storytelling",
			Name:                 "Storytelling",
			Description:          "Spins little tales about its day and the places it imagines.",
			Icon:                 "📖",
			Type:                 TypeCommunication,
			Rarity:               RarityRare,
			MaxLevel:             15,
			ExperienceMultiplier: 1.2,
			UnlockConditions: []Condition{
				CombinedCondition{Mode: CombineAll, Children: []Condition{
					SkillPrerequisiteCondition{SkillID: "active_listening", Level: 5},
					PersonalityTraitCondition{Trait: "openness", Value: 0.6},
				}},
			},
			Effects: []SkillEffect{
				{Type: EffectConversationModifier, Target: "narrative", Modifier: 0.3, Duration: PermanentDuration},
				{Type: EffectStatBoost, Target: "happiness", Modifier: 3, Duration: 60},
			},
		},

		// Learning
		{
			ID:                   "quick_learner",
			Name:                 "Quick Learner",
			Description:          "Picks up new tricks after only a few repetitions.",
			Icon:                 "⚡",
			Type:                 TypeLearning,
			Rarity:               RarityCommon,
			MaxLevel:             10,
			ExperienceMultiplier: 1.0,
			UnlockConditions: []Condition{
				LevelCondition{Level: 2},
			},
			Effects: []SkillEffect{
				{Type: EffectPassiveBonus, Target: "experience_gain", Modifier: 0.05, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "scholar",
			Name:                 "Scholar",
			Description:          "Retains lessons across sessions and asks to be taught more.",
			Icon:                 "🎓",
			Type:                 TypeLearning,
			Rarity:               RarityRare,
			MaxLevel:             15,
			ExperienceMultiplier: 1.25,
			UnlockConditions: []Condition{
				CombinedCondition{Mode: CombineAll, Children: []Condition{
					SkillPrerequisiteCondition{SkillID: "quick_learner", Level: 6},
					StatThresholdCondition{Stat: "intelligence", Value: 50},
					InteractionCountCondition{Count: 30, InteractionType: "teach"},
				}},
			},
			Effects: []SkillEffect{
				{Type: EffectPassiveBonus, Target: "experience_gain", Modifier: 0.1, Duration: PermanentDuration},
			},
		},

		// Creativity
		{
			ID:                   "creative_spark",
			Name:                 "Creative Spark",
			Description:          "Invents games and surprising answers out of nowhere.",
			Icon:                 "✨",
			Type:                 TypeCreativity,
			Rarity:               RarityUncommon,
			MaxLevel:             10,
			ExperienceMultiplier: 1.1,
			UnlockConditions: []Condition{
				PersonalityTraitCondition{Trait: "openness", Value: 0.5},
			},
			Effects: []SkillEffect{
				{Type: EffectConversationModifier, Target: "imagination", Modifier: 0.2, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "dream_weaver",
			Name:                 "Dream Weaver",
			Description:          "Composes elaborate dreamscapes and retells them on waking.",
			Icon:                 "🌙",
			Type:                 TypeCreativity,
			Rarity:               RarityEpic,
			MaxLevel:             20,
			ExperienceMultiplier: 1.5,
			UnlockConditions: []Condition{
				CombinedCondition{Mode: CombineAll, Children: []Condition{
					SkillPrerequisiteCondition{SkillID: "creative_spark", Level: 8},
					SkillPrerequisiteCondition{SkillID: "storytelling", Level: 10},
					AchievementCondition{AchievementID: "first_masterpiece"},
				}},
			},
			Effects: []SkillEffect{
				{Type: EffectSpecialAction, Target: "dream_recital", Modifier: 1, Duration: PermanentDuration},
				{Type: EffectStatBoost, Target: "happiness", Modifier: 5, Duration: 120},
			},
		},

		// Exploration
		{
			ID:                   "curious_explorer",
			Name:                 "Curious Explorer",
			Description:          "Pokes its nose into every corner of its world.",
			Icon:                 "🧭",
			Type:                 TypeExploration,
			Rarity:               RarityCommon,
			MaxLevel:             8,
			ExperienceMultiplier: 1.0,
			UnlockConditions: []Condition{
				InteractionCountCondition{Count: 5, InteractionType: "explore"},
			},
			Effects: []SkillEffect{
				{Type: EffectStatBoost, Target: "curiosity", Modifier: 2, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "trailblazer",
			Name:                 "Trailblazer",
			Description:          "Finds routes and hidden spots nobody showed it.",
			Icon:                 "🗺️",
			Type:                 TypeExploration,
			Rarity:               RarityRare,
			MaxLevel:             12,
			ExperienceMultiplier: 1.3,
			UnlockConditions: []Condition{
				SkillPrerequisiteCondition{SkillID: "curious_explorer", Level: 4},
				StatThresholdCondition{Stat: "energy", Value: 60},
			},
			Effects: []SkillEffect{
				{Type: EffectSpecialAction, Target: "scouting", Modifier: 1, Duration: PermanentDuration},
			},
		},

		// Emotional
		{
			ID:                   "gentle_heart",
			Name:                 "Gentle Heart",
			Description:          "Notices when you're down and stays close.",
			Icon:                 "💗",
			Type:                 TypeEmotional,
			Rarity:               RarityCommon,
			MaxLevel:             8,
			ExperienceMultiplier: 1.0,
			UnlockConditions: []Condition{
				InteractionCountCondition{Count: 5, InteractionType: "comfort"},
			},
			Effects: []SkillEffect{
				{Type: EffectStatBoost, Target: "affection", Modifier: 1, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "empathy",
			Name:                 "Empathy",
			Description:          "Mirrors your mood and adjusts how it responds.",
			Icon:                 "🫂",
			Type:                 TypeEmotional,
			Rarity:               RarityUncommon,
			MaxLevel:             12,
			ExperienceMultiplier: 1.15,
			UnlockConditions: []Condition{
				SkillPrerequisiteCondition{SkillID: "gentle_heart", Level: 4},
				PersonalityTraitCondition{Trait: "agreeableness", Value: 0.5},
			},
			Effects: []SkillEffect{
				{Type: EffectConversationModifier, Target: "emotional_tone", Modifier: 0.25, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "soul_bond",
			Name:                 "Soul Bond",
			Description:          "A deep, settled attachment that changes everything it does.",
			Icon:                 "🔗",
			Type:                 TypeEmotional,
			Rarity:               RarityLegendary,
			MaxLevel:             25,
			ExperienceMultiplier: 2.0,
			UnlockConditions: []Condition{
				CombinedCondition{Mode: CombineAll, Children: []Condition{
					SkillPrerequisiteCondition{SkillID: "empathy", Level: 10},
					StatThresholdCondition{Stat: "affection", Value: 90},
					TimeBasedCondition{Days: 30},
					AchievementCondition{AchievementID: "trusted_companion"},
				}},
			},
			Effects: []SkillEffect{
				{Type: EffectPassiveBonus, Target: "affection_decay", Modifier: -0.5, Duration: PermanentDuration},
				{Type: EffectSpecialAction, Target: "reunion_greeting", Modifier: 1, Duration: PermanentDuration},
			},
		},

		// Social
		{
			ID:                   "social_butterfly",
			Name:                 "Social Butterfly",
			Description:          "Lights up around other pets and their people.",
			Icon:                 "🦋",
			Type:                 TypeSocial,
			Rarity:               RarityUncommon,
			MaxLevel:             10,
			ExperienceMultiplier: 1.1,
			UnlockConditions: []Condition{
				CombinedCondition{Mode: CombineAny, Children: []Condition{
					InteractionCountCondition{Count: 10, InteractionType: "group_play"},
					PersonalityTraitCondition{Trait: "extraversion", Value: 0.7},
				}},
			},
			Effects: []SkillEffect{
				{Type: EffectStatBoost, Target: "happiness", Modifier: 2, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "party_host",
			Name:                 "Party Host",
			Description:          "Organizes group play and keeps everyone involved.",
			Icon:                 "🎉",
			Type:                 TypeSocial,
			Rarity:               RarityEpic,
			MaxLevel:             18,
			ExperienceMultiplier: 1.4,
			UnlockConditions: []Condition{
				CombinedCondition{Mode: CombineAll, Children: []Condition{
					SkillPrerequisiteCondition{SkillID: "social_butterfly", Level: 7},
					LevelCondition{Level: 15},
				}},
			},
			Effects: []SkillEffect{
				{Type: EffectSpecialAction, Target: "host_gathering", Modifier: 1, Duration: PermanentDuration},
			},
		},

		// Physical
		{
			ID:                   "playful_spirit",
			Name:                 "Playful Spirit",
			Description:          "Always ready for a romp; never tires of fetch.",
			Icon:                 "🎾",
			Type:                 TypePhysical,
			Rarity:               RarityCommon,
			MaxLevel:             10,
			ExperienceMultiplier: 1.0,
			UnlockConditions: []Condition{
				InteractionCountCondition{Count: 10, InteractionType: "play"},
			},
			Effects: []SkillEffect{
				{Type: EffectStatBoost, Target: "energy", Modifier: 2, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "acrobatics",
			Name:                 "Acrobatics",
			Description:          "Flips, rolls, and improbable mid-air catches.",
			Icon:                 "🤸",
			Type:                 TypePhysical,
			Rarity:               RarityUncommon,
			MaxLevel:             12,
			ExperienceMultiplier: 1.1,
			UnlockConditions: []Condition{
				SkillPrerequisiteCondition{SkillID: "playful_spirit", Level: 5},
				StatThresholdCondition{Stat: "energy", Value: 70},
			},
			Effects: []SkillEffect{
				{Type: EffectSpecialAction, Target: "trick_show", Modifier: 1, Duration: PermanentDuration},
			},
		},

		// Cognitive
		{
			ID:                   "puzzle_solver",
			Name:                 "Puzzle Solver",
			Description:          "Works simple puzzles through without hints.",
			Icon:                 "🧩",
			Type:                 TypeCognitive,
			Rarity:               RarityCommon,
			MaxLevel:             10,
			ExperienceMultiplier: 1.0,
			UnlockConditions: []Condition{
				StatThresholdCondition{Stat: "intelligence", Value: 30},
			},
			Effects: []SkillEffect{
				{Type: EffectStatBoost, Target: "intelligence", Modifier: 1, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "strategist",
			Name:                 "Strategist",
			Description:          "Plans ahead in games instead of reacting move by move.",
			Icon:                 "♟️",
			Type:                 TypeCognitive,
			Rarity:               RarityRare,
			MaxLevel:             15,
			ExperienceMultiplier: 1.3,
			UnlockConditions: []Condition{
				SkillPrerequisiteCondition{SkillID: "puzzle_solver", Level: 6},
				LevelCondition{Level: 10},
			},
			Effects: []SkillEffect{
				{Type: EffectPassiveBonus, Target: "puzzle_speed", Modifier: 0.2, Duration: PermanentDuration},
			},
		},
		{
			ID:                   "mind_palace",
			Name:                 "Mind Palace",
			Description:          "Total recall: everything you've ever shown it, organized.",
			Icon:                 "🏛️",
			Type:                 TypeCognitive,
			Rarity:               RarityLegendary,
			MaxLevel:             30,
			ExperienceMultiplier: 1.8,
			UnlockConditions: []Condition{
				CombinedCondition{Mode: CombineAll, Children: []Condition{
					SkillPrerequisiteCondition{SkillID: "strategist", Level: 12},
					StatThresholdCondition{Stat: "intelligence", Value: 95},
					TimeBasedCondition{Days: 60},
				}},
			},
			Effects: []SkillEffect{
				{Type: EffectPassiveBonus, Target: "memory_recall", Modifier: 1.0, Duration: PermanentDuration},
				{Type: EffectSpecialAction, Target: "perfect_recall", Modifier: 1, Duration: PermanentDuration},
			},
		},
	}
}
