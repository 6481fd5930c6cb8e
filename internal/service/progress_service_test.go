package service

import (
	"testing"
	"time"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/repository/memory"
	"codestreak_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressService() *ProgressService {
	return NewProgressService(memory.NewProgressStore())
}

func TestRecordCompletionFirstEver(t *testing.T) {
	svc := newProgressService()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	streak, err := svc.RecordCompletion("u1", "q1", "Easy", now)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	summary, err := svc.GetProgress("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalSolved)
	assert.Equal(t, 1, summary.CurrentStreak)
	assert.Equal(t, 1, summary.Stats.Easy)
}

func TestRecordCompletionConsecutiveDays(t *testing.T) {
	svc := newProgressService()
	day1 := time.Date(2026, 3, 10, 22, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day2.AddDate(0, 0, 1)

	_, err := svc.RecordCompletion("u1", "q1", "Easy", day1)
	require.NoError(t, err)

	streak, err := svc.RecordCompletion("u1", "q2", "Medium", day2)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)

	streak, err = svc.RecordCompletion("u1", "q3", "Hard", day3)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestRecordCompletionSameDayKeepsStreak(t *testing.T) {
	svc := newProgressService()
	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	evening := morning.Add(10 * time.Hour)

	_, err := svc.RecordCompletion("u1", "q1", "Easy", morning)
	require.NoError(t, err)

	// 同一天第二题：记录增加，连击不变
	streak, err := svc.RecordCompletion("u1", "q2", "Hard", evening)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	summary, err := svc.GetProgress("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSolved)
}

func TestRecordCompletionGapResetsStreak(t *testing.T) {
	svc := newProgressService()
	day1 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	day4 := day1.AddDate(0, 0, 3)

	_, err := svc.RecordCompletion("u1", "q1", "Easy", day1)
	require.NoError(t, err)

	streak, err := svc.RecordCompletion("u1", "q2", "Easy", day4)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestRecordCompletionSameQuestionSameDayIdempotent(t *testing.T) {
	svc := newProgressService()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	_, err := svc.RecordCompletion("u1", "q1", "Easy", now)
	require.NoError(t, err)

	streak, err := svc.RecordCompletion("u1", "q1", "Easy", now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	summary, err := svc.GetProgress("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalSolved)
	assert.Len(t, summary.CompletedQuestions, 1)
}

func TestRecordCompletionSameQuestionNextDayCounts(t *testing.T) {
	svc := newProgressService()
	day1 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	_, err := svc.RecordCompletion("u1", "q1", "Easy", day1)
	require.NoError(t, err)

	// 次日重刷同一题：算新完成
	streak, err := svc.RecordCompletion("u1", "q1", "Easy", day2)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)

	summary, err := svc.GetProgress("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSolved)
}

func TestRecordCompletionDefaultsDifficulty(t *testing.T) {
	svc := newProgressService()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	_, err := svc.RecordCompletion("u1", "q1", "  ", now)
	require.NoError(t, err)

	summary, err := svc.GetProgress("u1")
	require.NoError(t, err)
	assert.Equal(t, DefaultDifficulty, summary.CompletedQuestions[0].Difficulty)
	assert.Equal(t, 1, summary.Stats.Choice)
}

func TestRecordCompletionValidation(t *testing.T) {
	svc := newProgressService()
	now := time.Now()

	_, err := svc.RecordCompletion("", "q1", "Easy", now)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = svc.RecordCompletion("u1", "   ", "Easy", now)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestGetProgressUnknownUserReturnsZeroValues(t *testing.T) {
	svc := newProgressService()

	summary, err := svc.GetProgress("nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CurrentStreak)
	assert.Equal(t, 0, summary.TotalSolved)
	assert.NotNil(t, summary.CompletedQuestions)
	assert.Empty(t, summary.CompletedQuestions)
	assert.Equal(t, model.DifficultyStats{}, summary.Stats)
}

func TestGetProgressStatsAreDerived(t *testing.T) {
	svc := newProgressService()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	completions := []struct {
		question   string
		difficulty string
	}{
		{"q1", "Hard"},
		{"q2", "hard"},
		{"q3", "MEDIUM"},
		{"q4", "easy"},
		{"q5", "quiz"},
		{"q6", ""},
	}
	for i, c := range completions {
		_, err := svc.RecordCompletion("u1", c.question, c.difficulty, day.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	summary, err := svc.GetProgress("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Stats.Hard)
	assert.Equal(t, 1, summary.Stats.Medium)
	assert.Equal(t, 1, summary.Stats.Easy)
	assert.Equal(t, 2, summary.Stats.Choice)
	assert.Equal(t, 6, summary.TotalSolved)
}

func TestProgressIsolatedPerUser(t *testing.T) {
	svc := newProgressService()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	_, err := svc.RecordCompletion("u1", "q1", "Easy", now)
	require.NoError(t, err)

	summary, err := svc.GetProgress("u2")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalSolved)
}
