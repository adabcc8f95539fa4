package classifier

import (
	"strings"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
)

//go:generate mockgen -source=classifier.go -destination=mocks/classifier_mock.go -package=mocks

// Nudge is one incremental trait adjustment.
type Nudge struct {
	Trait catalog.Trait
	Delta int
}

// Classifier maps free-text (an answer, a game choice) to trait nudges.
// A text may trigger zero, one, or several nudges. The keyword matcher
// below is the scripted default; the interface exists so a real classifier
// can replace it without touching the store.
type Classifier interface {
	Classify(text string) []Nudge
}

type rule struct {
	keywords []string
	trait    catalog.Trait
	delta    int
}

type KeywordClassifier struct {
	rules []rule
}

// NewAnswerClassifier matches Q&A answer text.
func NewAnswerClassifier() *KeywordClassifier {
	return &KeywordClassifier{rules: []rule{
		{keywords: []string{"論理", "スピード"}, trait: catalog.TraitLogic, delta: 15},
		{keywords: []string{"温かさ", "共感"}, trait: catalog.TraitEmpathy, delta: 15},
		{keywords: []string{"冒険", "新しい"}, trait: catalog.TraitAdventure, delta: 10},
		{keywords: []string{"ユーモア", "笑い"}, trait: catalog.TraitHumor, delta: 20},
		{keywords: []string{"ロマン", "愛"}, trait: catalog.TraitRomance, delta: 15},
	}}
}

// NewChoiceClassifier matches drama mini-game choices.
func NewChoiceClassifier() *KeywordClassifier {
	return &KeywordClassifier{rules: []rule{
		{keywords: []string{"早めに", "事前に"}, trait: catalog.TraitConservative, delta: 10},
		{keywords: []string{"相手に", "選んでもらう"}, trait: catalog.TraitEmpathy, delta: 15},
		{keywords: []string{"適当に", "近くの"}, trait: catalog.TraitAdventure, delta: 12},
	}}
}

func (c *KeywordClassifier) Classify(text string) []Nudge {
	var nudges []Nudge
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				nudges = append(nudges, Nudge{Trait: r.trait, Delta: r.delta})
				break
			}
		}
	}
	return nudges
}
