package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/aura-backend/internal/repos"
	"github.com/yungbote/aura-backend/internal/types"
)

func TestMoodDistributionCountsCompositeLabels(t *testing.T) {
	entries := []*types.JournalEntry{
		{Emotion: "Happy 😊"},
		{Emotion: "Happy 😊"},
		{Emotion: "Anxious 😰"},
	}
	got := moodDistribution(entries)
	require.Equal(t, map[string]int{"Happy 😊": 2, "Anxious 😰": 1}, got)
}

func TestStressTrendKeepsMostRecentSeven(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := make([]*types.JournalEntry, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, &types.JournalEntry{
			StressScore: float64(i * 10),
			CreatedAt:   base.AddDate(0, 0, i),
		})
	}

	points := stressTrend(entries)
	require.Len(t, points, 7)
	// entries 3..9 survive, original chronological order intact
	require.Equal(t, 30.0, points[0].Stress)
	require.Equal(t, "2026-03-04", points[0].Date)
	require.Equal(t, 90.0, points[6].Stress)
	require.Equal(t, "2026-03-10", points[6].Date)
}

func TestStressTrendShortInput(t *testing.T) {
	entries := []*types.JournalEntry{
		{StressScore: 30, CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	points := stressTrend(entries)
	require.Len(t, points, 1)
	require.Equal(t, "2026-03-01", points[0].Date)
}

func TestStatsOverview(t *testing.T) {
	theDB, log := setupTestDB(t)
	journalRepo := repos.NewJournalRepo(theDB, log)
	appStatsRepo := repos.NewAppStatsRepo(theDB, log)
	svc := NewStatsService(log, journalRepo, appStatsRepo)
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := journalRepo.Create(ctx, nil, &types.JournalEntry{
			Content:     fmt.Sprintf("entry %d", i),
			Emotion:     "Calm 😌",
			StressScore: 30,
			CreatedAt:   base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
		require.NoError(t, appStatsRepo.IncrementJournalStreak(ctx, nil, base.AddDate(0, 0, i)))
	}

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, overview.Streaks.Daily)
	require.Equal(t, 3, overview.Streaks.Journal)
	require.Equal(t, 0, overview.Streaks.Exercise)
	require.Equal(t, map[string]int{"Calm 😌": 3}, overview.MoodDistribution)
	require.Len(t, overview.StressTrends, 3)
	require.Equal(t, "2026-04-01", overview.StressTrends[0].Date)
}

func TestRecordExercise(t *testing.T) {
	theDB, log := setupTestDB(t)
	journalRepo := repos.NewJournalRepo(theDB, log)
	appStatsRepo := repos.NewAppStatsRepo(theDB, log)
	svc := NewStatsService(log, journalRepo, appStatsRepo)

	streaks, err := svc.RecordExercise(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, streaks.Exercise)
	require.Equal(t, 0, streaks.Journal)
}
