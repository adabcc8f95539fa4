package classifier

import (
	"testing"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
)

func TestAnswerClassifier_Lexicon(t *testing.T) {
	c := NewAnswerClassifier()

	tests := []struct {
		text  string
		trait catalog.Trait
		delta int
	}{
		{"論理", catalog.TraitLogic, 15},
		{"スピード", catalog.TraitLogic, 15},
		{"温かさ", catalog.TraitEmpathy, 15},
		{"新しいことに挑戦したい", catalog.TraitAdventure, 10},
		{"とにかく笑いが大事", catalog.TraitHumor, 20},
		{"愛を伝えたい", catalog.TraitRomance, 15},
	}

	for _, tt := range tests {
		nudges := c.Classify(tt.text)
		if len(nudges) != 1 {
			t.Errorf("Classify(%q) = %v, want one nudge", tt.text, nudges)
			continue
		}
		if nudges[0].Trait != tt.trait || nudges[0].Delta != tt.delta {
			t.Errorf("Classify(%q) = %+v, want (%s, %d)", tt.text, nudges[0], tt.trait, tt.delta)
		}
	}
}

func TestAnswerClassifier_MultipleNudges(t *testing.T) {
	c := NewAnswerClassifier()

	nudges := c.Classify("ユーモアとロマンの両方")
	if len(nudges) != 2 {
		t.Fatalf("got %d nudges, want 2: %v", len(nudges), nudges)
	}
	if nudges[0].Trait != catalog.TraitHumor || nudges[1].Trait != catalog.TraitRomance {
		t.Errorf("unexpected nudges: %v", nudges)
	}
}

func TestAnswerClassifier_NoMatch(t *testing.T) {
	c := NewAnswerClassifier()
	if nudges := c.Classify("無言"); len(nudges) != 0 {
		t.Errorf("expected no nudges, got %v", nudges)
	}
}

func TestAnswerClassifier_OneNudgePerRule(t *testing.T) {
	c := NewAnswerClassifier()
	// Both keywords of the logic rule present; still a single nudge.
	nudges := c.Classify("論理とスピード")
	if len(nudges) != 1 || nudges[0].Trait != catalog.TraitLogic {
		t.Errorf("got %v, want one logic nudge", nudges)
	}
}

func TestChoiceClassifier_Lexicon(t *testing.T) {
	c := NewChoiceClassifier()

	tests := []struct {
		text  string
		trait catalog.Trait
		delta int
	}{
		{"早めに到着して周りを見渡す", catalog.TraitConservative, 10},
		{"事前に調べた店を提案", catalog.TraitConservative, 10},
		{"相手に選んでもらう", catalog.TraitEmpathy, 15},
		{"近くの店を適当に", catalog.TraitAdventure, 12},
	}

	for _, tt := range tests {
		nudges := c.Classify(tt.text)
		found := false
		for _, n := range nudges {
			if n.Trait == tt.trait && n.Delta == tt.delta {
				found = true
			}
		}
		if !found {
			t.Errorf("Classify(%q) = %v, want a (%s, %d) nudge", tt.text, nudges, tt.trait, tt.delta)
		}
	}
}

func TestChoiceClassifier_NeutralChoice(t *testing.T) {
	c := NewChoiceClassifier()
	if nudges := c.Classify("カフェで待つ"); len(nudges) != 0 {
		t.Errorf("expected no nudges, got %v", nudges)
	}
}
