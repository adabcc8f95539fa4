package session

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
	"github.com/MyelinBots/yoriai-go/internal/services/classifier"
	"github.com/MyelinBots/yoriai-go/internal/services/generator"
	"github.com/MyelinBots/yoriai-go/internal/state"
)

// Experience rates per flow.
const (
	xpOnboarding  = 100
	xpQA          = 50
	xpMinigame    = 75
	xpGenerate    = 100
	xpCollaborate = 150
)

// Badges awarded by flows.
const (
	BadgeRookie     = "新人コメディアン"
	BadgeThinker    = "思考の探求者"
	BadgeGameMaster = "ゲームマスター"
	BadgeGoodSense  = "センス抜群"
	BadgeCreator    = "クリエイター"
	BadgeCollab     = "コラボマスター"
)

const tagBoost = 20

var (
	ErrNicknameRequired = errors.New("nickname must be 1-10 characters")
	ErrTagCount         = errors.New("select 2-3 persona tags")
	ErrUnknownPartner   = errors.New("unknown collaboration partner")
)

// Service drives the compound user flows against the store. It owns all
// input validation; the store itself never re-validates.
type Service interface {
	CompleteOnboarding(nickname string, anonymity state.AnonymityLevel, tags []catalog.Trait, look catalog.Look) error
	SubmitAnswers(answers []state.QAAnswer)
	FinishMinigame(log state.MiniGameLog, score int)
	GenerateSolo(now time.Time) state.Work
	Collaborate(partnerID string, now time.Time) (state.Work, error)
}

type ServiceImpl struct {
	store   state.Store
	catalog *catalog.Catalog
	answers classifier.Classifier
	choices classifier.Classifier
	gen     generator.Generator
	clock   func() time.Time
}

func New(store state.Store, cat *catalog.Catalog, answers, choices classifier.Classifier, gen generator.Generator) *ServiceImpl {
	return &ServiceImpl{
		store:   store,
		catalog: cat,
		answers: answers,
		choices: choices,
		gen:     gen,
		clock:   time.Now,
	}
}

// CompleteOnboarding installs the user, a baseline persona boosted by the
// selected tags, and a clone with the chosen look.
func (s *ServiceImpl) CompleteOnboarding(nickname string, anonymity state.AnonymityLevel, tags []catalog.Trait, look catalog.Look) error {
	if n := utf8.RuneCountInString(nickname); n < 1 || n > 10 {
		return ErrNicknameRequired
	}
	if len(tags) < 2 || len(tags) > 3 {
		return ErrTagCount
	}

	now := s.clock()
	userID := "user_" + uuid.NewString()
	s.store.SetUser(state.User{
		UserID:     userID,
		Nickname:   nickname,
		Anonymity:  anonymity,
		CreatedAt:  now,
		LastActive: now,
	})
	s.store.InitPersona(state.NewPersonaVector(userID))
	clone := state.NewCloneProfile("clone_"+uuid.NewString(), userID, look)
	clone.CreatedAt = now
	s.store.InitClone(clone)

	for _, tag := range tags {
		s.store.UpdatePersonaTrait(tag, tagBoost)
	}
	s.store.UpdateCloneAppearance(look)
	s.store.AddExperience(xpOnboarding)
	s.store.AwardBadge(BadgeRookie)
	return nil
}

// SubmitAnswers nudges the persona from the answer texts, then records the
// completed sheet. The first sheet of a cycle earns a badge.
func (s *ServiceImpl) SubmitAnswers(answers []state.QAAnswer) {
	first := s.store.Snapshot().TodaysProgress.QACompleted == 0
	for _, a := range answers {
		for _, n := range s.answers.Classify(a.Payload) {
			s.store.UpdatePersonaTrait(n.Trait, n.Delta)
		}
	}
	s.store.CompleteQA(answers)
	s.store.AddExperience(xpQA)
	if first {
		s.store.AwardBadge(BadgeThinker)
	}
}

// FinishMinigame nudges the persona from the game log and marks the daily
// task done. Drama choices go through the choice classifier; the rhythm
// game nudges fixed traits by score.
func (s *ServiceImpl) FinishMinigame(log state.MiniGameLog, score int) {
	if log.GameType == "drama" {
		for _, d := range log.Decisions {
			for _, n := range s.choices.Classify(d.Choice) {
				s.store.UpdatePersonaTrait(n.Trait, n.Delta)
			}
		}
	} else {
		s.store.UpdatePersonaTrait(catalog.TraitHumor, 20)
		if score >= 150 {
			s.store.UpdatePersonaTrait(catalog.TraitLogic, 10)
		}
	}

	s.store.CompleteMinigame(log)
	s.store.AddExperience(xpMinigame)
	switch {
	case score >= 200:
		s.store.AwardBadge(BadgeGameMaster)
	case score >= 100:
		s.store.AwardBadge(BadgeGoodSense)
	}
}

// GenerateSolo creates today's solo work and records it.
func (s *ServiceImpl) GenerateSolo(now time.Time) state.Work {
	theme := s.catalog.ThemeOfDay(now)
	w := s.gen.Generate(theme, s.nickname())
	s.store.GenerateWork(w)
	s.store.AddExperience(xpGenerate)
	s.store.AwardBadge(BadgeCreator)
	return w
}

// Collaborate creates a styled two-clone work with a roster partner.
func (s *ServiceImpl) Collaborate(partnerID string, now time.Time) (state.Work, error) {
	partner := s.catalog.PartnerByID(partnerID)
	if partner == nil {
		return state.Work{}, ErrUnknownPartner
	}
	theme := s.catalog.ThemeOfDay(now)
	w := s.gen.Collaborate(theme, s.nickname(), *partner)
	s.store.GenerateWork(w)
	s.store.AddExperience(xpCollaborate)
	s.store.AwardBadge(BadgeCollab)
	return w, nil
}

func (s *ServiceImpl) nickname() string {
	if u := s.store.Snapshot().User; u != nil {
		return u.Nickname
	}
	return ""
}
