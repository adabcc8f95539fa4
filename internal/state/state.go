package state

import (
	"time"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
)

type AnonymityLevel string

const (
	AnonymityHigh   AnonymityLevel = "high"
	AnonymityMedium AnonymityLevel = "medium"
	AnonymityLow    AnonymityLevel = "low"
)

type User struct {
	UserID     string
	Nickname   string
	Anonymity  AnonymityLevel
	CreatedAt  time.Time
	LastActive time.Time
}

type TraitScore struct {
	Tag   catalog.Trait
	Value int
}

// PersonaVector holds one score per trait of the closed set, in catalog order.
type PersonaVector struct {
	UserID      string
	Scores      []TraitScore
	LastUpdated time.Time
}

// CloneProfile is the gamified avatar bound 1:1 to a user. It holds no copy
// of the persona; the snapshot's PersonaVector is the single source of truth.
type CloneProfile struct {
	CloneID     string
	OwnerID     string
	Look        catalog.Look
	TitleBadges []string
	Level       int
	Experience  int
	CreatedAt   time.Time
	LastUpdated time.Time
}

type DailyProgress struct {
	QACompleted       int
	MinigameCompleted bool
	WorkGenerated     bool
}

type WorkScript struct {
	Tsukami string
	Tenkai  string
	Ochi    string
}

type WorkLyrics struct {
	AMelody []string
	Chorus  []string
}

type OGMeta struct {
	Title string
	Desc  string
	Image string
}

type WorkStats struct {
	Plays    int
	Likes    int
	Comments int
	Shares   int
}

// Work is a generated artifact. Exactly one of Script or Lyrics is set,
// keyed by Theme.
type Work struct {
	WorkID    string
	Theme     catalog.Theme
	PairingID string
	Script    *WorkScript
	Lyrics    *WorkLyrics
	OGMeta    OGMeta
	Stats     WorkStats
	CreatedAt time.Time
}

type QAAnswer struct {
	QuestionID string
	Type       catalog.QuestionType
	Payload    string
	Timestamp  time.Time
}

type MiniGameStep struct {
	Step     int
	Choice   string
	RTMillis int
}

type MiniGameLog struct {
	GameID    string
	GameType  string // "drama" or "rhythm"
	Decisions []MiniGameStep
	Timestamp time.Time
}

// Snapshot is the canonical state document. Transitions never mutate a
// snapshot in place; each produces a new one.
type Snapshot struct {
	User                *User
	Persona             *PersonaVector
	Clone               *CloneProfile
	CurrentTheme        catalog.Theme
	TodaysProgress      DailyProgress
	Works               []Work
	Loading             bool
	CollaborationPoints int
}

// Seed is the initial-state contract. All reference fields are optional;
// the app renders a loading state while any are absent.
type Seed struct {
	User    *User
	Persona *PersonaVector
	Clone   *CloneProfile
	Works   []Work
	Points  int
}

func NewSnapshot(seed Seed) Snapshot {
	works := make([]Work, len(seed.Works))
	copy(works, seed.Works)
	return Snapshot{
		User:                seed.User,
		Persona:             seed.Persona,
		Clone:               seed.Clone,
		CurrentTheme:        catalog.ThemeManzai,
		Works:               works,
		CollaborationPoints: seed.Points,
	}
}

// NewPersonaVector returns a persona with baseline zero scores, one entry
// per trait of the closed ordered set.
func NewPersonaVector(userID string) PersonaVector {
	traits := catalog.Traits()
	scores := make([]TraitScore, len(traits))
	for i, tag := range traits {
		scores[i] = TraitScore{Tag: tag}
	}
	return PersonaVector{UserID: userID, Scores: scores}
}

// NewCloneProfile returns a level-1 clone with zero experience.
func NewCloneProfile(cloneID, ownerID string, look catalog.Look) CloneProfile {
	return CloneProfile{
		CloneID: cloneID,
		OwnerID: ownerID,
		Look:    look,
		Level:   1,
	}
}

// ClampTrait truncates a trait score at the [-100, 100] boundary.
func ClampTrait(value int) int {
	if value > 100 {
		return 100
	}
	if value < -100 {
		return -100
	}
	return value
}

// LevelForExperience is the derived level curve. Stored levels never follow
// it downward; see AddExperience.
func LevelForExperience(exp int) int {
	return exp/1000 + 1
}
