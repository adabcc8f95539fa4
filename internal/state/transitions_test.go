package state

import (
	"reflect"
	"testing"
	"time"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
)

var testTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func personaWith(t *testing.T, tag catalog.Trait, value int) *PersonaVector {
	t.Helper()
	p := NewPersonaVector("user_test")
	for i := range p.Scores {
		if p.Scores[i].Tag == tag {
			p.Scores[i].Value = value
		}
	}
	return &p
}

func traitValue(t *testing.T, s Snapshot, tag catalog.Trait) int {
	t.Helper()
	v, ok := s.TraitScore(tag)
	if !ok {
		t.Fatalf("trait %s not found", tag)
	}
	return v
}

func TestClampTrait(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{-150, -100},
		{-100, -100},
		{0, 0},
		{100, 100},
		{110, 100},
	}

	for _, tt := range tests {
		got := ClampTrait(tt.input)
		if got != tt.want {
			t.Errorf("ClampTrait(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestUpdatePersonaTrait_ClampsAtBoundary(t *testing.T) {
	s := NewSnapshot(Seed{Persona: personaWith(t, catalog.TraitHumor, 90)})

	s = s.UpdatePersonaTrait(catalog.TraitHumor, 20, testTime)
	if got := traitValue(t, s, catalog.TraitHumor); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}

	s = s.UpdatePersonaTrait(catalog.TraitHumor, -250, testTime)
	if got := traitValue(t, s, catalog.TraitHumor); got != -100 {
		t.Errorf("expected clamp to -100, got %d", got)
	}
}

func TestUpdatePersonaTrait_NoPersona(t *testing.T) {
	s := NewSnapshot(Seed{})
	got := s.UpdatePersonaTrait(catalog.TraitHumor, 20, testTime)
	if got.Persona != nil {
		t.Error("no-op expected when persona is absent")
	}
}

func TestUpdatePersonaTrait_DoesNotMutatePrior(t *testing.T) {
	s := NewSnapshot(Seed{Persona: personaWith(t, catalog.TraitLogic, 10)})
	next := s.UpdatePersonaTrait(catalog.TraitLogic, 5, testTime)

	if got := traitValue(t, s, catalog.TraitLogic); got != 10 {
		t.Errorf("prior snapshot mutated: got %d, want 10", got)
	}
	if got := traitValue(t, next, catalog.TraitLogic); got != 15 {
		t.Errorf("new snapshot: got %d, want 15", got)
	}
}

func TestAddExperience_LevelNeverRegresses(t *testing.T) {
	clone := NewCloneProfile("clone_1", "user_test", catalog.Look{})
	clone.Experience = 1250
	clone.Level = 2
	s := NewSnapshot(Seed{Clone: &clone})

	s = s.AddExperience(0)
	if s.Clone.Level != 2 {
		t.Errorf("level changed on zero delta: got %d", s.Clone.Level)
	}

	// A stored level above the curve must survive a recompute.
	high := NewCloneProfile("clone_2", "user_test", catalog.Look{})
	high.Experience = 1250
	high.Level = 5
	s2 := NewSnapshot(Seed{Clone: &high}).AddExperience(100)
	if s2.Clone.Level != 5 {
		t.Errorf("stored level regressed: got %d, want 5", s2.Clone.Level)
	}
	if s2.Clone.Experience != 1350 {
		t.Errorf("experience: got %d, want 1350", s2.Clone.Experience)
	}
}

func TestAddExperience_LevelsUp(t *testing.T) {
	clone := NewCloneProfile("clone_1", "user_test", catalog.Look{})
	s := NewSnapshot(Seed{Clone: &clone})

	s = s.AddExperience(999)
	if s.Clone.Level != 1 {
		t.Errorf("level at 999 XP: got %d, want 1", s.Clone.Level)
	}
	s = s.AddExperience(1)
	if s.Clone.Level != 2 {
		t.Errorf("level at 1000 XP: got %d, want 2", s.Clone.Level)
	}
}

func TestAwardBadge_Idempotent(t *testing.T) {
	clone := NewCloneProfile("clone_1", "user_test", catalog.Look{})
	s := NewSnapshot(Seed{Clone: &clone})

	s = s.AwardBadge("X")
	s = s.AwardBadge("X")

	count := 0
	for _, b := range s.Clone.TitleBadges {
		if b == "X" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("badge X held %d times, want 1", count)
	}
}

func TestAwardBadge_PreservesInsertionOrder(t *testing.T) {
	clone := NewCloneProfile("clone_1", "user_test", catalog.Look{})
	s := NewSnapshot(Seed{Clone: &clone})

	s = s.AwardBadge("first").AwardBadge("second").AwardBadge("first")
	want := []string{"first", "second"}
	if !reflect.DeepEqual(s.Clone.TitleBadges, want) {
		t.Errorf("badges = %v, want %v", s.Clone.TitleBadges, want)
	}
}

func TestGenerateWork_NewestFirst(t *testing.T) {
	s := NewSnapshot(Seed{})
	a := Work{WorkID: "A", Theme: catalog.ThemeManzai}
	b := Work{WorkID: "B", Theme: catalog.ThemeLoveSong}

	s = s.GenerateWork(a)
	s = s.GenerateWork(b)

	if len(s.Works) != 2 || s.Works[0].WorkID != "B" || s.Works[1].WorkID != "A" {
		t.Errorf("unexpected order: %v", s.Works)
	}
	if !s.TodaysProgress.WorkGenerated {
		t.Error("workGenerated should be set")
	}
}

func TestResetDailyProgress_Complete(t *testing.T) {
	s := NewSnapshot(Seed{})
	s = s.CompleteQA([]QAAnswer{{QuestionID: "q1"}, {QuestionID: "q2"}})
	s = s.CompleteMinigame(MiniGameLog{GameID: "g1"})
	s = s.GenerateWork(Work{WorkID: "w1"})

	s = s.ResetDailyProgress()
	if s.TodaysProgress != (DailyProgress{}) {
		t.Errorf("reset left %+v", s.TodaysProgress)
	}
}

func TestCompleteQA_Idempotent(t *testing.T) {
	answers := []QAAnswer{{QuestionID: "q1"}, {QuestionID: "q2"}, {QuestionID: "q3"}}
	s := NewSnapshot(Seed{}).CompleteQA(answers).CompleteQA(answers)
	if s.TodaysProgress.QACompleted != 3 {
		t.Errorf("qaCompleted = %d, want 3", s.TodaysProgress.QACompleted)
	}
}

func TestLikeWork_UnknownIDIsNoOp(t *testing.T) {
	s := NewSnapshot(Seed{Works: []Work{
		{WorkID: "w1", Stats: WorkStats{Likes: 3}},
		{WorkID: "w2", Stats: WorkStats{Likes: 7}},
	}})

	next := s.LikeWork("nonexistent_id")
	if !reflect.DeepEqual(next.Works, s.Works) {
		t.Errorf("works changed: %v vs %v", next.Works, s.Works)
	}
}

func TestLikeWork_Increments(t *testing.T) {
	s := NewSnapshot(Seed{Works: []Work{{WorkID: "w1", Stats: WorkStats{Likes: 3}}}})

	next := s.LikeWork("w1")
	if next.Works[0].Stats.Likes != 4 {
		t.Errorf("likes = %d, want 4", next.Works[0].Stats.Likes)
	}
	if s.Works[0].Stats.Likes != 3 {
		t.Error("prior snapshot mutated")
	}
}

func TestCollaborationPoints_Floor(t *testing.T) {
	s := NewSnapshot(Seed{Points: 2})
	s = s.SpendCollaborationPoints(5)
	if s.CollaborationPoints != 0 {
		t.Errorf("points = %d, want 0", s.CollaborationPoints)
	}

	s = s.AddCollaborationPoints(7)
	if s.CollaborationPoints != 7 {
		t.Errorf("points = %d, want 7", s.CollaborationPoints)
	}
}

func TestUpdateCloneAppearance_PartialMerge(t *testing.T) {
	clone := NewCloneProfile("clone_1", "user_test", catalog.Look{
		Hair: "黒髪ロング", Eye: "優しい茶色", Mood: "にっこり",
	})
	s := NewSnapshot(Seed{Clone: &clone})

	s = s.UpdateCloneAppearance(catalog.Look{Hair: "金髪ボブ"}, testTime)
	if s.Clone.Look.Hair != "金髪ボブ" {
		t.Errorf("hair = %q", s.Clone.Look.Hair)
	}
	if s.Clone.Look.Eye != "優しい茶色" || s.Clone.Look.Mood != "にっこり" {
		t.Errorf("unspecified fields changed: %+v", s.Clone.Look)
	}
}

func TestOnboardingScenario(t *testing.T) {
	s := NewSnapshot(Seed{})

	s = s.SetUser(User{Nickname: "Taro", Anonymity: AnonymityMedium})
	p := NewPersonaVector("user_taro")
	s = s.InitPersona(p)
	s = s.UpdatePersonaTrait(catalog.TraitHumor, 20, testTime)
	s = s.UpdatePersonaTrait(catalog.TraitHumor, 20, testTime)

	if s.User == nil || s.User.Nickname != "Taro" {
		t.Fatalf("user = %+v", s.User)
	}
	if got := traitValue(t, s, catalog.TraitHumor); got != 40 {
		t.Errorf("ユーモア = %d, want 40", got)
	}
}

func TestInitPersona_NoOverwrite(t *testing.T) {
	s := NewSnapshot(Seed{Persona: personaWith(t, catalog.TraitLogic, 42)})
	s = s.InitPersona(NewPersonaVector("user_other"))
	if got := traitValue(t, s, catalog.TraitLogic); got != 42 {
		t.Errorf("existing persona replaced, 論理 = %d", got)
	}
}

func TestNewPersonaVector_ClosedOrderedTraitSet(t *testing.T) {
	p := NewPersonaVector("u")
	traits := catalog.Traits()
	if len(p.Scores) != len(traits) {
		t.Fatalf("scores = %d, want %d", len(p.Scores), len(traits))
	}
	for i, tag := range traits {
		if p.Scores[i].Tag != tag {
			t.Errorf("score %d = %s, want %s", i, p.Scores[i].Tag, tag)
		}
		if p.Scores[i].Value != 0 {
			t.Errorf("baseline %s = %d, want 0", tag, p.Scores[i].Value)
		}
	}
}

func TestSetThemeAndLoading(t *testing.T) {
	s := NewSnapshot(Seed{})
	s = s.SetTheme(catalog.ThemeLoveSong).SetLoading(true)
	if s.CurrentTheme != catalog.ThemeLoveSong || !s.Loading {
		t.Errorf("theme=%s loading=%v", s.CurrentTheme, s.Loading)
	}
}

func TestQuestComplete(t *testing.T) {
	s := NewSnapshot(Seed{})
	if s.QuestComplete() {
		t.Error("fresh snapshot should not be complete")
	}
	s = s.CompleteQA([]QAAnswer{{QuestionID: "q1"}})
	s = s.CompleteMinigame(MiniGameLog{})
	if s.QuestComplete() {
		t.Error("two of three tasks should not be complete")
	}
	s = s.GenerateWork(Work{WorkID: "w"})
	if !s.QuestComplete() {
		t.Error("all three tasks done, quest should be complete")
	}
}

func TestCanGenerate(t *testing.T) {
	s := NewSnapshot(Seed{})
	if s.CanGenerate() {
		t.Error("nothing done yet")
	}
	if !s.CompleteMinigame(MiniGameLog{}).CanGenerate() {
		t.Error("minigame alone should unlock generation")
	}
	if !s.CompleteQA([]QAAnswer{{}}).CanGenerate() {
		t.Error("answers alone should unlock generation")
	}
}
