package pet

import "github.com/lidra0530/petskills/internal/catalog"

// ApplyEffects folds permanent stat-boost effects into the pet's stats.
// Timed effects and non-stat effect types are interpreted by the caller at
// interaction time; only permanent boosts change the persisted state.
func (s *Snapshot) ApplyEffects(effects []catalog.SkillEffect) {
	for _, e := range effects {
		if e.Type != catalog.EffectStatBoost || !e.Permanent() {
			continue
		}
		if e.Target == catalog.EffectTargetAllStats {
			for name := range s.Stats {
				s.Stats[name] += e.Modifier
			}
			continue
		}
		s.Stats[e.Target] += e.Modifier
	}
}
