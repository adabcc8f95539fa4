package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MyelinBots/yoriai-go/config"
	"github.com/MyelinBots/yoriai-go/internal/catalog"
	"github.com/MyelinBots/yoriai-go/internal/healthcheck"
	"github.com/MyelinBots/yoriai-go/internal/services/classifier"
	"github.com/MyelinBots/yoriai-go/internal/services/generator"
	"github.com/MyelinBots/yoriai-go/internal/services/session"
	"github.com/MyelinBots/yoriai-go/internal/services/timer"
	"github.com/MyelinBots/yoriai-go/internal/state"
)

// StartApp wires the catalog, store and services together and plays one
// scripted session. With watch=true it then stays up, firing the daily
// reset when the day bucket rolls over.
func StartApp(watch bool) error {
	cfg := config.LoadConfigOrPanic()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Starting %s %s\n", cfg.AppConfig.APPName, cfg.AppConfig.Version)
	healthcheck.StartHealthcheck(ctx, cfg.AppConfig)

	cat := catalog.Default()
	if cfg.CatalogConfig.Path != "" {
		loaded, err := catalog.Load(cfg.CatalogConfig.Path)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}

	store := state.NewStore(state.Seed{Points: cfg.GameConfig.InitialCollaborationPoints})
	svc := session.New(
		store,
		cat,
		classifier.NewAnswerClassifier(),
		classifier.NewChoiceClassifier(),
		generator.New(),
	)

	if err := runDemoSession(ctx, store, svc, cat); err != nil {
		return err
	}

	if !watch {
		return nil
	}

	interval := time.Duration(cfg.GameConfig.ResetCheckSeconds) * time.Second
	lastBucket := catalog.DayBucket(time.Now())
	rt := timer.NewRepeatedTimer(interval, func() {
		if bucket := catalog.DayBucket(time.Now()); bucket != lastBucket {
			lastBucket = bucket
			store.ResetDailyProgress()
			fmt.Println("daily progress reset")
		}
	})
	defer rt.Stop()

	<-ctx.Done()
	return nil
}

// runDemoSession walks the full daily loop once: onboarding, Q&A,
// mini-game, solo generation, then a collaboration.
func runDemoSession(ctx context.Context, store state.Store, svc session.Service, cat *catalog.Catalog) error {
	now := time.Now()
	today := cat.ThemeOfDay(now)
	store.SetTheme(today.Theme)
	fmt.Printf("Today's theme: %s「%s」\n", today.Theme, today.Title)

	err := svc.CompleteOnboarding(
		"ショウゴ",
		state.AnonymityMedium,
		[]catalog.Trait{catalog.TraitHumor, catalog.TraitAdventure, catalog.TraitRomance},
		catalog.Look{
			Hair:  cat.Appearance.Hair[0],
			Eye:   cat.Appearance.Eye[0],
			Acc:   cat.Appearance.Acc[0],
			Mood:  cat.Appearance.Mood[0],
			Style: cat.Appearance.Style[0],
		},
	)
	if err != nil {
		return fmt.Errorf("onboarding: %w", err)
	}

	var answers []state.QAAnswer
	for _, q := range cat.QuestionsFor(today.Theme) {
		payload := "笑いに変えるのが一番"
		if q.Type == catalog.QuestionChoice {
			payload = q.Choices[0]
		}
		answers = append(answers, state.QAAnswer{
			QuestionID: q.ID,
			Type:       q.Type,
			Payload:    payload,
			Timestamp:  now,
		})
	}
	svc.SubmitAnswers(answers)

	var decisions []state.MiniGameStep
	for _, step := range cat.DramaScenario.Steps {
		decisions = append(decisions, state.MiniGameStep{
			Step:   step.Step,
			Choice: step.Choices[0],
		})
	}
	svc.FinishMinigame(state.MiniGameLog{
		GameID:    "game_demo",
		GameType:  "drama",
		Decisions: decisions,
		Timestamp: now,
	}, 120)

	// Staged progress is UI theater; the store only sees the final call.
	store.SetLoading(true)
	timer.PlayStages(ctx, 200*time.Millisecond, timer.CreationStages(), func(st timer.Stage) {
		fmt.Printf("  %3d%% %s\n", st.Percent, st.Message)
	})
	solo := svc.GenerateSolo(now)
	store.SetLoading(false)
	fmt.Printf("Generated %s (%s)\n", solo.OGMeta.Title, solo.WorkID)

	collab, err := svc.Collaborate(cat.Partners[0].ID, now)
	if err != nil {
		return fmt.Errorf("collaborate: %w", err)
	}
	store.LikeWork(collab.WorkID)
	store.SpendCollaborationPoints(5)
	store.AddCollaborationPoints(3)

	snap := store.Snapshot()
	fmt.Printf("Quest complete: %v\n", snap.QuestComplete())
	fmt.Printf("Clone level %d (%d XP), badges: %v\n",
		snap.Clone.Level, snap.Clone.Experience, snap.Clone.TitleBadges)
	for _, sc := range snap.Persona.Scores {
		fmt.Printf("  %s: %+d\n", sc.Tag, sc.Value)
	}
	fmt.Printf("Works: %d, collaboration points: %d\n", len(snap.Works), snap.CollaborationPoints)
	return nil
}
