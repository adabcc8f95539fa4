package state

import "github.com/MyelinBots/yoriai-go/internal/catalog"

// Derived read helpers. These never change state.

// QuestComplete reports whether all three daily tasks are satisfied.
func (s Snapshot) QuestComplete() bool {
	return s.TodaysProgress.QACompleted > 0 &&
		s.TodaysProgress.MinigameCompleted &&
		s.TodaysProgress.WorkGenerated
}

// CanGenerate reports whether the day's creative step is unlocked: at least
// one answered question or a finished mini-game.
func (s Snapshot) CanGenerate() bool {
	return s.TodaysProgress.QACompleted > 0 || s.TodaysProgress.MinigameCompleted
}

// TraitScore returns the score for one trait of the closed set.
func (s Snapshot) TraitScore(tag catalog.Trait) (int, bool) {
	if s.Persona == nil {
		return 0, false
	}
	for _, sc := range s.Persona.Scores {
		if sc.Tag == tag {
			return sc.Value, true
		}
	}
	return 0, false
}

// WorkByID returns a copy of the work, or false if unknown.
func (s Snapshot) WorkByID(workID string) (Work, bool) {
	for _, w := range s.Works {
		if w.WorkID == workID {
			return w, true
		}
	}
	return Work{}, false
}

// HasBadge reports whether the clone holds the badge.
func (s Snapshot) HasBadge(badge string) bool {
	if s.Clone == nil {
		return false
	}
	for _, b := range s.Clone.TitleBadges {
		if b == badge {
			return true
		}
	}
	return false
}

// Ready reports whether all seeded references are present; the presentation
// layer shows a loading state until then.
func (s Snapshot) Ready() bool {
	return s.User != nil && s.Persona != nil && s.Clone != nil
}
