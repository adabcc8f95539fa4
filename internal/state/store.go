package state

import (
	"sync"
	"time"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
)

// Store holds the current snapshot and applies one transition at a time.
// It is injected at the composition root; there is no package-level instance.
type Store interface {
	Snapshot() Snapshot

	SetUser(u User)
	SetTheme(theme catalog.Theme)
	SetLoading(loading bool)
	InitPersona(p PersonaVector)
	InitClone(c CloneProfile)
	UpdatePersonaTrait(tag catalog.Trait, delta int)
	CompleteQA(answers []QAAnswer)
	CompleteMinigame(log MiniGameLog)
	GenerateWork(w Work)
	UpdateCloneAppearance(look catalog.Look)
	AddExperience(delta int)
	AwardBadge(badge string)
	LikeWork(workID string)
	ResetDailyProgress()
	AddCollaborationPoints(n int)
	SpendCollaborationPoints(n int)
}

type StoreImpl struct {
	mu       sync.RWMutex
	snapshot Snapshot
	clock    func() time.Time
}

func NewStore(seed Seed) *StoreImpl {
	return NewStoreWithClock(seed, time.Now)
}

func NewStoreWithClock(seed Seed, clock func() time.Time) *StoreImpl {
	return &StoreImpl{
		snapshot: NewSnapshot(seed),
		clock:    clock,
	}
}

// Snapshot returns the current state document. The copy shares slices with
// the stored snapshot, which is safe because transitions copy before write.
func (st *StoreImpl) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snapshot
}

func (st *StoreImpl) apply(fn func(Snapshot) Snapshot) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.snapshot = fn(st.snapshot)
}

func (st *StoreImpl) SetUser(u User) {
	st.apply(func(s Snapshot) Snapshot { return s.SetUser(u) })
}

func (st *StoreImpl) SetTheme(theme catalog.Theme) {
	st.apply(func(s Snapshot) Snapshot { return s.SetTheme(theme) })
}

func (st *StoreImpl) SetLoading(loading bool) {
	st.apply(func(s Snapshot) Snapshot { return s.SetLoading(loading) })
}

func (st *StoreImpl) InitPersona(p PersonaVector) {
	st.apply(func(s Snapshot) Snapshot { return s.InitPersona(p) })
}

func (st *StoreImpl) InitClone(c CloneProfile) {
	st.apply(func(s Snapshot) Snapshot { return s.InitClone(c) })
}

func (st *StoreImpl) UpdatePersonaTrait(tag catalog.Trait, delta int) {
	at := st.clock()
	st.apply(func(s Snapshot) Snapshot { return s.UpdatePersonaTrait(tag, delta, at) })
}

func (st *StoreImpl) CompleteQA(answers []QAAnswer) {
	st.apply(func(s Snapshot) Snapshot { return s.CompleteQA(answers) })
}

func (st *StoreImpl) CompleteMinigame(log MiniGameLog) {
	st.apply(func(s Snapshot) Snapshot { return s.CompleteMinigame(log) })
}

func (st *StoreImpl) GenerateWork(w Work) {
	st.apply(func(s Snapshot) Snapshot { return s.GenerateWork(w) })
}

func (st *StoreImpl) UpdateCloneAppearance(look catalog.Look) {
	at := st.clock()
	st.apply(func(s Snapshot) Snapshot { return s.UpdateCloneAppearance(look, at) })
}

func (st *StoreImpl) AddExperience(delta int) {
	st.apply(func(s Snapshot) Snapshot { return s.AddExperience(delta) })
}

func (st *StoreImpl) AwardBadge(badge string) {
	st.apply(func(s Snapshot) Snapshot { return s.AwardBadge(badge) })
}

func (st *StoreImpl) LikeWork(workID string) {
	st.apply(func(s Snapshot) Snapshot { return s.LikeWork(workID) })
}

func (st *StoreImpl) ResetDailyProgress() {
	st.apply(func(s Snapshot) Snapshot { return s.ResetDailyProgress() })
}

func (st *StoreImpl) AddCollaborationPoints(n int) {
	st.apply(func(s Snapshot) Snapshot { return s.AddCollaborationPoints(n) })
}

func (st *StoreImpl) SpendCollaborationPoints(n int) {
	st.apply(func(s Snapshot) Snapshot { return s.SpendCollaborationPoints(n) })
}
