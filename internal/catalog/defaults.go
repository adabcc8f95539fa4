package catalog

// Default returns the built-in reference data.
func Default() *Catalog {
	return &Catalog{
		Themes: []DailyTheme{
			{Theme: ThemeManzai, Title: "初デートの失敗談", Subtitle: "笑いに変える恋愛あるある"},
			{Theme: ThemeLoveSong, Title: "雨の日の記憶", Subtitle: "濡れた心を歌に込めて"},
			{Theme: ThemeManzai, Title: "家族の不思議", Subtitle: "身近すぎて気づかない面白さ"},
			{Theme: ThemeLoveSong, Title: "星空の約束", Subtitle: "永遠を願う二人の想い"},
		},
		Questions: map[Theme][]Question{
			ThemeManzai: {
				{
					ID:      "q1",
					Theme:   ThemeManzai,
					Label:   "初デートで絶対NGは？",
					Choices: []string{"遅刻", "無言", "割り勘拒否", "スマホばかり見る"},
					Type:    QuestionChoice,
				},
				{
					ID:      "q2",
					Theme:   ThemeManzai,
					Label:   "ツッコミで大事なのは？",
					Choices: []string{"論理", "温かさ", "スピード", "声の大きさ"},
					Type:    QuestionChoice,
				},
				{
					ID:    "q3",
					Theme: ThemeManzai,
					Label: "あなたの恋愛失敗談を一言で教えて！",
					Type:  QuestionText,
				},
			},
			ThemeLoveSong: {
				{
					ID:      "ql1",
					Theme:   ThemeLoveSong,
					Label:   "雨の日の思い出といえば？",
					Choices: []string{"静かな喫茶店", "二人の傘", "窓辺の読書", "映画館デート"},
					Type:    QuestionChoice,
				},
				{
					ID:      "ql2",
					Theme:   ThemeLoveSong,
					Label:   "愛を表現するなら？",
					Choices: []string{"言葉で伝える", "行動で示す", "歌で歌う", "手紙を書く"},
					Type:    QuestionChoice,
				},
				{
					ID:    "ql3",
					Theme: ThemeLoveSong,
					Label: "大切な人に贈りたい一言",
					Type:  QuestionText,
				},
			},
		},
		Appearance: AppearanceOptions{
			Hair:  []string{"黒髪ロング", "茶色ショート", "金髪ボブ", "ピンクツイン", "シルバーカール"},
			Eye:   []string{"優しい茶色", "鋭い黒", "澄んだ青", "神秘的な紫", "温かい緑"},
			Acc:   []string{"丸メガネ", "サングラス", "帽子", "イヤリング", "ネックレス"},
			Mood:  []string{"にっこり", "クール", "元気", "おっとり", "いたずらっ子"},
			Style: []string{"カジュアル", "フォーマル", "ボヘミアン", "スポーティ", "ゴシック"},
		},
		Badges: []string{
			"新人コメディアン",
			"センス抜群",
			"ハートフル作家",
			"リズムマスター",
			"感動プロデューサー",
			"笑いの天才",
			"恋愛マエストロ",
			"クリエイター",
			"人気者",
			"バイラルスター",
		},
		Partners: []Partner{
			{
				ID:            "partner1",
				Name:          "ユミコ",
				Style:         "ロマンティック",
				Compatibility: 92,
				Look:          Look{Hair: "金髪ボブ", Eye: "澄んだ青", Mood: "おっとり", Style: "ボヘミアン"},
				Specialty:     []string{"感情表現", "詩的表現", "メロディ作り"},
			},
			{
				ID:            "partner2",
				Name:          "タクヤ",
				Style:         "クールツッコミ",
				Compatibility: 87,
				Look:          Look{Hair: "黒髪ロング", Eye: "鋭い黒", Mood: "クール", Style: "フォーマル"},
				Specialty:     []string{"論理構築", "鋭いツッコミ", "テンポ調整"},
			},
			{
				ID:            "partner3",
				Name:          "アイカ",
				Style:         "キュート",
				Compatibility: 78,
				Look:          Look{Hair: "ピンクツイン", Eye: "温かい緑", Mood: "元気", Style: "カジュアル"},
				Specialty:     []string{"ユーモア", "親しみやすさ", "エネルギー"},
			},
			{
				ID:            "partner4",
				Name:          "リョウ",
				Style:         "アーティスト",
				Compatibility: 95,
				Look:          Look{Hair: "シルバーカール", Eye: "神秘的な紫", Mood: "いたずらっ子", Style: "ゴシック"},
				Specialty:     []string{"創造性", "独創性", "サプライズ要素"},
			},
		},
		DramaScenario: DramaScenario{
			Title: "初デートシミュレーション",
			Steps: []DramaStep{
				{
					Step:      1,
					Situation: "待ち合わせ場所に到着！相手はまだ来ていません。",
					Choices:   []string{"早めに到着して周りを見渡す", "カフェで待つ", "スマホをいじって時間をつぶす"},
				},
				{
					Step:      2,
					Situation: "相手が到着！第一声は？",
					Choices:   []string{"「お疲れさま！」", "「今日はありがとう！」", "「遅くない？」"},
				},
				{
					Step:      3,
					Situation: "食事の場所を決めることに。あなたは？",
					Choices:   []string{"相手に選んでもらう", "事前に調べた店を提案", "近くの店を適当に"},
				},
			},
		},
		RhythmBeats: []RhythmBeat{
			{TimeMs: 1000, Type: "love", Intensity: "gentle"},
			{TimeMs: 2000, Type: "excitement", Intensity: "medium"},
			{TimeMs: 3000, Type: "tenderness", Intensity: "soft"},
			{TimeMs: 4000, Type: "passion", Intensity: "strong"},
		},
	}
}
