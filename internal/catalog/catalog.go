package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Trait is one of the six persona axes. The set is closed and ordered.
type Trait string

const (
	TraitEmpathy      Trait = "共感"
	TraitLogic        Trait = "論理"
	TraitAdventure    Trait = "冒険"
	TraitConservative Trait = "保守"
	TraitHumor        Trait = "ユーモア"
	TraitRomance      Trait = "ロマン"
)

// Traits returns the closed trait set in display order.
func Traits() []Trait {
	return []Trait{
		TraitEmpathy,
		TraitLogic,
		TraitAdventure,
		TraitConservative,
		TraitHumor,
		TraitRomance,
	}
}

type Theme string

const (
	ThemeManzai   Theme = "漫才"
	ThemeLoveSong Theme = "ラブソング"
)

type QuestionType string

const (
	QuestionChoice QuestionType = "choice"
	QuestionText   QuestionType = "text"
)

type DailyTheme struct {
	Theme    Theme  `yaml:"theme"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type Question struct {
	ID      string       `yaml:"id"`
	Theme   Theme        `yaml:"theme"`
	Label   string       `yaml:"label"`
	Choices []string     `yaml:"choices"`
	Type    QuestionType `yaml:"type"`
}

// Look is one appearance selection per axis. Empty fields mean "not chosen".
type Look struct {
	Hair  string `yaml:"hair,omitempty"`
	Eye   string `yaml:"eye,omitempty"`
	Acc   string `yaml:"acc,omitempty"`
	Mood  string `yaml:"mood,omitempty"`
	Style string `yaml:"style,omitempty"`
}

// AppearanceOptions holds the five independent appearance axes.
type AppearanceOptions struct {
	Hair  []string `yaml:"hair"`
	Eye   []string `yaml:"eye"`
	Acc   []string `yaml:"acc"`
	Mood  []string `yaml:"mood"`
	Style []string `yaml:"style"`
}

// Partner is a static collaboration partner. Compatibility is a fixed
// display number, not computed.
type Partner struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Style         string   `yaml:"style"`
	Compatibility int      `yaml:"compatibility"`
	Look          Look     `yaml:"look"`
	Specialty     []string `yaml:"specialty"`
}

type DramaStep struct {
	Step      int      `yaml:"step"`
	Situation string   `yaml:"situation"`
	Choices   []string `yaml:"choices"`
}

type DramaScenario struct {
	Title string      `yaml:"title"`
	Steps []DramaStep `yaml:"steps"`
}

type RhythmBeat struct {
	TimeMs    int    `yaml:"time_ms"`
	Type      string `yaml:"type"`
	Intensity string `yaml:"intensity"`
}

// Catalog is the read-only reference data the rest of the app is seeded from.
type Catalog struct {
	Themes        []DailyTheme         `yaml:"themes"`
	Questions     map[Theme][]Question `yaml:"questions"`
	Appearance    AppearanceOptions    `yaml:"appearance"`
	Badges        []string             `yaml:"badges"`
	Partners      []Partner            `yaml:"partners"`
	DramaScenario DramaScenario        `yaml:"drama_scenario"`
	RhythmBeats   []RhythmBeat         `yaml:"rhythm_beats"`
}

const dayMillis = 86400000

// DayBucket returns the day index of t since the Unix epoch.
func DayBucket(t time.Time) int64 {
	return t.UnixMilli() / dayMillis
}

// DayThemeIndex maps a point in time to an index into a rotation of size n.
// Readers recompute this; it is never stored.
func DayThemeIndex(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	return int(DayBucket(t) % int64(n))
}

// ThemeOfDay picks today's theme from the rotation.
func (c *Catalog) ThemeOfDay(now time.Time) DailyTheme {
	return c.Themes[DayThemeIndex(now, len(c.Themes))]
}

// QuestionsFor returns the deck for a theme, nil if the theme has none.
func (c *Catalog) QuestionsFor(theme Theme) []Question {
	return c.Questions[theme]
}

// PartnerByID returns the roster entry or nil.
func (c *Catalog) PartnerByID(id string) *Partner {
	for i := range c.Partners {
		if c.Partners[i].ID == id {
			return &c.Partners[i]
		}
	}
	return nil
}

// Load reads a YAML catalog from path. Sections left empty in the file fall
// back to the built-in defaults, so a file can override just one table.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	loaded := Catalog{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := Default()
	if len(loaded.Themes) > 0 {
		c.Themes = loaded.Themes
	}
	if len(loaded.Questions) > 0 {
		c.Questions = loaded.Questions
	}
	if len(loaded.Appearance.Hair) > 0 {
		c.Appearance = loaded.Appearance
	}
	if len(loaded.Badges) > 0 {
		c.Badges = loaded.Badges
	}
	if len(loaded.Partners) > 0 {
		c.Partners = loaded.Partners
	}
	if len(loaded.DramaScenario.Steps) > 0 {
		c.DramaScenario = loaded.DramaScenario
	}
	if len(loaded.RhythmBeats) > 0 {
		c.RhythmBeats = loaded.RhythmBeats
	}
	return c, nil
}
