package repos

import (
  "context"
  "sync"
  "testing"
  "time"
  "github.com/stretchr/testify/require"
)

func TestAppStatsSeedsDefaults(t *testing.T) {
  theDB, log := setupTestDB(t)
  repo := NewAppStatsRepo(theDB, log)

  stats, err := repo.Get(context.Background(), nil)
  require.NoError(t, err)
  require.Equal(t, 1, stats.DailyStreak)
  require.Equal(t, 0, stats.JournalStreak)
  require.Equal(t, 0, stats.ExerciseStreak)
  require.Nil(t, stats.LastJournalDate)

  // second read returns the same singleton, not a second row
  again, err := repo.Get(context.Background(), nil)
  require.NoError(t, err)
  require.Equal(t, stats.ID, again.ID)
}

func TestAppStatsIncrementJournalStreak(t *testing.T) {
  theDB, log := setupTestDB(t)
  repo := NewAppStatsRepo(theDB, log)
  ctx := context.Background()

  now := time.Now().UTC().Truncate(time.Second)
  require.NoError(t, repo.IncrementJournalStreak(ctx, nil, now))

  stats, err := repo.Get(ctx, nil)
  require.NoError(t, err)
  require.Equal(t, 1, stats.JournalStreak)
  require.NotNil(t, stats.LastJournalDate)
}

// N concurrent increments must land as exactly N; the UPDATE-with-expression
// cannot lose writes the way load-then-save would.
func TestAppStatsConcurrentIncrements(t *testing.T) {
  theDB, log := setupTestDB(t)
  repo := NewAppStatsRepo(theDB, log)
  ctx := context.Background()

  _, err := repo.Get(ctx, nil)
  require.NoError(t, err)

  const n = 20
  var wg sync.WaitGroup
  errs := make(chan error, n)
  for i := 0; i < n; i++ {
    wg.Add(1)
    go func() {
      defer wg.Done()
      errs <- repo.IncrementJournalStreak(ctx, nil, time.Now().UTC())
    }()
  }
  wg.Wait()
  close(errs)
  for err := range errs {
    require.NoError(t, err)
  }

  stats, err := repo.Get(ctx, nil)
  require.NoError(t, err)
  require.Equal(t, n, stats.JournalStreak)
}

func TestAppStatsIncrementExerciseStreak(t *testing.T) {
  theDB, log := setupTestDB(t)
  repo := NewAppStatsRepo(theDB, log)
  ctx := context.Background()

  require.NoError(t, repo.IncrementExerciseStreak(ctx, nil, time.Now().UTC()))
  require.NoError(t, repo.IncrementExerciseStreak(ctx, nil, time.Now().UTC()))

  stats, err := repo.Get(ctx, nil)
  require.NoError(t, err)
  require.Equal(t, 2, stats.ExerciseStreak)
  require.Equal(t, 0, stats.JournalStreak)
  require.NotNil(t, stats.LastExerciseDate)
}
