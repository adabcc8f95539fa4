package generator

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MyelinBots/yoriai-go/internal/catalog"
	"github.com/MyelinBots/yoriai-go/internal/state"
)

// Generator produces canned works from templates. No model calls anywhere;
// the output is fully determined by the theme and style hint.
type Generator interface {
	Generate(theme catalog.DailyTheme, nickname string) state.Work
	Collaborate(theme catalog.DailyTheme, nickname string, partner catalog.Partner) state.Work
}

type TemplateGenerator struct {
	clock func() time.Time
}

func New() *TemplateGenerator {
	return &TemplateGenerator{clock: time.Now}
}

func NewWithClock(clock func() time.Time) *TemplateGenerator {
	return &TemplateGenerator{clock: clock}
}

// Generate builds a solo work for today's theme: a three-part sketch for
// 漫才, a verse/chorus lyric sheet otherwise.
func (g *TemplateGenerator) Generate(theme catalog.DailyTheme, nickname string) state.Work {
	now := g.clock()
	w := state.Work{
		WorkID:    "work_" + uuid.NewString(),
		Theme:     theme.Theme,
		PairingID: "pair_" + uuid.NewString(),
		OGMeta: state.OGMeta{
			Title: fmt.Sprintf("%s - %s", theme.Title, theme.Theme),
			Desc:  fmt.Sprintf("%sのクローンが生成したオリジナル%s", nickname, theme.Theme),
			Image: fmt.Sprintf("/api/og/%d", now.UnixMilli()),
		},
		CreatedAt: now,
	}
	if theme.Theme == catalog.ThemeManzai {
		w.Script = manzaiScript(theme.Title)
	} else {
		w.Lyrics = loveLyrics(theme.Title)
	}
	return w
}

// Collaborate builds a two-clone work flavored by the partner's style.
func (g *TemplateGenerator) Collaborate(theme catalog.DailyTheme, nickname string, partner catalog.Partner) state.Work {
	now := g.clock()
	w := state.Work{
		WorkID:    "collab_" + uuid.NewString(),
		Theme:     theme.Theme,
		PairingID: fmt.Sprintf("pair_%s_%s", partner.ID, uuid.NewString()),
		OGMeta: state.OGMeta{
			Title: fmt.Sprintf("%sとのコラボ%s", partner.Name, theme.Theme),
			Desc:  fmt.Sprintf("%sのクローンと%sの共同創作", nickname, partner.Name),
			Image: fmt.Sprintf("/api/og/collab_%d", now.UnixMilli()),
		},
		CreatedAt: now,
	}
	if theme.Theme == catalog.ThemeManzai {
		w.Script = collabScript(partner.Style)
	} else {
		w.Lyrics = collabLyrics(partner.Style)
	}
	return w
}

func manzaiScript(title string) *state.WorkScript {
	return &state.WorkScript{
		Tsukami: fmt.Sprintf("A「%sについて話しましょう」 B「おっ、いいテーマですね！」", title),
		Tenkai:  "A「実は昨日体験したんですよ...」 B「え、どんな？」 A「まさかの展開で...」 B「気になります！」",
		Ochi:    fmt.Sprintf("A「結局、%sって奥が深いんですよ」 B「確かに！...って、それオチですか？」 A「はい、すみません」", title),
	}
}

func loveLyrics(title string) *state.WorkLyrics {
	return &state.WorkLyrics{
		AMelody: []string{
			fmt.Sprintf("%sの中で", title),
			"君を思い出してる",
			"あの日の約束",
			"今も胸に響いて",
		},
		Chorus: []string{
			"時は過ぎても",
			"変わらない想い",
			"君への愛を",
			"歌い続けよう",
		},
	}
}

const (
	styleRomantic = "ロマンティック"
	styleCool     = "クールツッコミ"
)

func collabScript(style string) *state.WorkScript {
	switch style {
	case styleRomantic:
		return &state.WorkScript{
			Tsukami: "A「恋愛について語りましょう」 B「素敵なテーマですね♪」",
			Tenkai:  "A「実は昨日告白されたんです」 B「わあ！ロマンティック！どんな？」 A「『君の瞳に星が...』って」 B「素敵〜！」",
			Ochi:    "A「『君の瞳に星が見える...コンタクトだね』って言われました」 B「それロマンティックじゃない！」",
		}
	default:
		// Unscripted styles fall back to the cool-tsukkomi set.
		return &state.WorkScript{
			Tsukami: "A「最近のデート事情、どうですか？」 B「分析してみましょうか」",
			Tenkai:  "A「みんな完璧を求めすぎですよね」 B「確かに。統計的にも...」 A「私なんて昨日のデート、完璧でした！」 B「具体的には？」",
			Ochi:    "A「時間通り、身だしなみ完璧、話題も準備万端...」 B「で、相手は？」 A「来ませんでした」 B「完璧に一人でしたね」",
		}
	}
}

func collabLyrics(style string) *state.WorkLyrics {
	opening := "静かな夜に"
	if style == styleRomantic {
		opening = "星降る夜に"
	}
	return &state.WorkLyrics{
		AMelody: []string{
			opening,
			"二人で歩いた道",
			"今も心に響く",
			"あの日の約束",
		},
		Chorus: []string{
			"離れていても",
			"心はひとつ",
			"二人で紡いだ",
			"この歌とともに",
		},
	}
}
