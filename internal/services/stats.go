package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/aura-backend/internal/logger"
	"github.com/yungbote/aura-backend/internal/repos"
	"github.com/yungbote/aura-backend/internal/types"
)

// stressTrendWindow is how many recent entries the trend keeps.
const stressTrendWindow = 7

type StreakSnapshot struct {
	Daily    int `json:"daily"`
	Journal  int `json:"journal"`
	Exercise int `json:"exercise"`
}

type StressPoint struct {
	Date   string  `json:"date"`
	Stress float64 `json:"stress"`
}

type StatsOverview struct {
	Streaks          StreakSnapshot
	MoodDistribution map[string]int
	StressTrends     []StressPoint
}

type StatsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
	RecordExercise(ctx context.Context) (*StreakSnapshot, error)
}

type statsService struct {
	log          *logger.Logger
	journalRepo  repos.JournalRepo
	appStatsRepo repos.AppStatsRepo
}

func NewStatsService(log *logger.Logger, journalRepo repos.JournalRepo, appStatsRepo repos.AppStatsRepo) StatsService {
	serviceLog := log.With("service", "StatsService")
	return &statsService{
		log:          serviceLog,
		journalRepo:  journalRepo,
		appStatsRepo: appStatsRepo,
	}
}

func (ss *statsService) Overview(ctx context.Context) (*StatsOverview, error) {
	stats, err := ss.appStatsRepo.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load app stats: %w", err)
	}

	entries, err := ss.journalRepo.ListChronological(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load journal entries: %w", err)
	}

	return &StatsOverview{
		Streaks: StreakSnapshot{
			Daily:    stats.DailyStreak,
			Journal:  stats.JournalStreak,
			Exercise: stats.ExerciseStreak,
		},
		MoodDistribution: moodDistribution(entries),
		StressTrends:     stressTrend(entries),
	}, nil
}

func (ss *statsService) RecordExercise(ctx context.Context) (*StreakSnapshot, error) {
	if err := ss.appStatsRepo.IncrementExerciseStreak(ctx, nil, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("increment exercise streak: %w", err)
	}
	stats, err := ss.appStatsRepo.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load app stats: %w", err)
	}
	return &StreakSnapshot{
		Daily:    stats.DailyStreak,
		Journal:  stats.JournalStreak,
		Exercise: stats.ExerciseStreak,
	}, nil
}

// moodDistribution counts entries by their stored composite "Category glyph"
// label.
func moodDistribution(entries []*types.JournalEntry) map[string]int {
	distribution := map[string]int{}
	for _, entry := range entries {
		distribution[entry.Emotion]++
	}
	return distribution
}

// stressTrend maps entries to day-bucketed points and keeps only the most
// recent stressTrendWindow, preserving chronological order.
func stressTrend(entries []*types.JournalEntry) []StressPoint {
	points := make([]StressPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, StressPoint{
			Date:   entry.CreatedAt.Format("2006-01-02"),
			Stress: entry.StressScore,
		})
	}
	if len(points) > stressTrendWindow {
		points = points[len(points)-stressTrendWindow:]
	}
	return points
}
