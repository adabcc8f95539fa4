package timer

import (
	"context"
	"time"
)

// Stage is one step of a fake "generation in progress" sequence. The
// sequence is presentation theater only; the store sees nothing until the
// caller issues its final transition after playback.
type Stage struct {
	Percent int
	Message string
}

// CreationStages mirrors the staged progress shown during collaboration.
func CreationStages() []Stage {
	return []Stage{
		{Percent: 20, Message: "アイデア出し中..."},
		{Percent: 40, Message: "構成を決定中..."},
		{Percent: 60, Message: "細部を調整中..."},
		{Percent: 80, Message: "最終チェック中..."},
		{Percent: 100, Message: "完成!"},
	}
}

// PlayStages emits each stage after one interval, in order. It stops early
// if the context is cancelled and reports whether playback finished.
func PlayStages(ctx context.Context, interval time.Duration, stages []Stage, emit func(Stage)) bool {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(interval):
			emit(st)
		}
	}
	return true
}
