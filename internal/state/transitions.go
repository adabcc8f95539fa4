package state

import (
	"time"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
)

// Transitions are pure: each takes the receiver snapshot by value and
// returns a new snapshot, copying any sub-structure it changes. None of
// them read a clock; callers that want timestamps pass them in.

func (s Snapshot) SetUser(u User) Snapshot {
	s.User = &u
	return s
}

func (s Snapshot) SetTheme(theme catalog.Theme) Snapshot {
	s.CurrentTheme = theme
	return s
}

func (s Snapshot) SetLoading(loading bool) Snapshot {
	s.Loading = loading
	return s
}

// InitPersona installs a persona if none exists yet. No-op otherwise.
func (s Snapshot) InitPersona(p PersonaVector) Snapshot {
	if s.Persona != nil {
		return s
	}
	s.Persona = &p
	return s
}

// InitClone installs a clone profile if none exists yet. No-op otherwise.
func (s Snapshot) InitClone(c CloneProfile) Snapshot {
	if s.Clone != nil {
		return s
	}
	s.Clone = &c
	return s
}

// UpdatePersonaTrait adds delta to one trait, truncating at the [-100, 100]
// boundary. No-op if no persona is present or the trait is unknown.
func (s Snapshot) UpdatePersonaTrait(tag catalog.Trait, delta int, at time.Time) Snapshot {
	if s.Persona == nil {
		return s
	}
	p := *s.Persona
	p.Scores = make([]TraitScore, len(s.Persona.Scores))
	copy(p.Scores, s.Persona.Scores)
	for i := range p.Scores {
		if p.Scores[i].Tag == tag {
			p.Scores[i].Value = ClampTrait(p.Scores[i].Value + delta)
			p.LastUpdated = at
		}
	}
	s.Persona = &p
	return s
}

// CompleteQA records how many questions were answered this cycle. Submitting
// the same sheet again lands on the same count.
func (s Snapshot) CompleteQA(answers []QAAnswer) Snapshot {
	s.TodaysProgress.QACompleted = len(answers)
	return s
}

func (s Snapshot) CompleteMinigame(_ MiniGameLog) Snapshot {
	s.TodaysProgress.MinigameCompleted = true
	return s
}

// GenerateWork prepends the work so the list stays newest-first.
func (s Snapshot) GenerateWork(w Work) Snapshot {
	works := make([]Work, 0, len(s.Works)+1)
	works = append(works, w)
	works = append(works, s.Works...)
	s.Works = works
	s.TodaysProgress.WorkGenerated = true
	return s
}

// UpdateCloneAppearance shallow-merges the given look; empty fields keep
// their prior value. No-op if no clone is present.
func (s Snapshot) UpdateCloneAppearance(look catalog.Look, at time.Time) Snapshot {
	if s.Clone == nil {
		return s
	}
	c := *s.Clone
	if look.Hair != "" {
		c.Look.Hair = look.Hair
	}
	if look.Eye != "" {
		c.Look.Eye = look.Eye
	}
	if look.Acc != "" {
		c.Look.Acc = look.Acc
	}
	if look.Mood != "" {
		c.Look.Mood = look.Mood
	}
	if look.Style != "" {
		c.Look.Style = look.Style
	}
	c.LastUpdated = at
	s.Clone = &c
	return s
}

// AddExperience raises experience and recomputes level as the max of the
// stored level and the level curve. Levels never regress.
func (s Snapshot) AddExperience(delta int) Snapshot {
	if s.Clone == nil || delta <= 0 {
		return s
	}
	c := *s.Clone
	c.Experience += delta
	if lvl := LevelForExperience(c.Experience); lvl > c.Level {
		c.Level = lvl
	}
	s.Clone = &c
	return s
}

// AwardBadge appends the badge if not already held. Awarding a held badge
// is a silent no-op; insertion order is preserved for display.
func (s Snapshot) AwardBadge(badge string) Snapshot {
	if s.Clone == nil {
		return s
	}
	for _, b := range s.Clone.TitleBadges {
		if b == badge {
			return s
		}
	}
	c := *s.Clone
	c.TitleBadges = make([]string, 0, len(s.Clone.TitleBadges)+1)
	c.TitleBadges = append(c.TitleBadges, s.Clone.TitleBadges...)
	c.TitleBadges = append(c.TitleBadges, badge)
	s.Clone = &c
	return s
}

// LikeWork increments the likes of one work. Unknown IDs leave the list
// untouched.
func (s Snapshot) LikeWork(workID string) Snapshot {
	for i := range s.Works {
		if s.Works[i].WorkID == workID {
			works := make([]Work, len(s.Works))
			copy(works, s.Works)
			works[i].Stats.Likes++
			s.Works = works
			return s
		}
	}
	return s
}

// ResetDailyProgress wipes all three daily fields. There is no partial
// reset variant; trigger policy is the caller's concern.
func (s Snapshot) ResetDailyProgress() Snapshot {
	s.TodaysProgress = DailyProgress{}
	return s
}

func (s Snapshot) AddCollaborationPoints(n int) Snapshot {
	s.CollaborationPoints += n
	if s.CollaborationPoints < 0 {
		s.CollaborationPoints = 0
	}
	return s
}

// SpendCollaborationPoints subtracts, clamped at a floor of 0.
func (s Snapshot) SpendCollaborationPoints(n int) Snapshot {
	return s.AddCollaborationPoints(-n)
}
