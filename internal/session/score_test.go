package session

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmvnavigator/dmvnav/internal/bank"
)

func TestOverall_Empty(t *testing.T) {
	score := Overall(New(), &bank.Bank{})
	assert.Equal(t, OverallScore{}, score)
	assert.Zero(t, score.Percentage)
	assert.False(t, score.Passed)
}

func TestOverall_NoAnswers(t *testing.T) {
	b := testBank(t)
	score := Overall(startFull(t, b), b)

	assert.Equal(t, 5, score.Total)
	assert.Equal(t, 5, score.Unanswered)
	assert.Zero(t, score.Correct)
	assert.Zero(t, score.Percentage)
}

func TestOverall_PassThreshold(t *testing.T) {
	b := testBank(t)
	state := startFull(t, b)

	for id := 1; id <= 4; id++ {
		require.NoError(t, SubmitAnswer(state, b, id, 1))
	}
	score := Overall(state, b)
	assert.InDelta(t, 80.0, score.Percentage, 1e-9)
	assert.True(t, score.Passed, "exactly 80%% passes")

	require.NoError(t, SubmitAnswer(state, b, 4, 0))
	score = Overall(state, b)
	assert.InDelta(t, 60.0, score.Percentage, 1e-9)
	assert.False(t, score.Passed)
	assert.Equal(t, 3, score.Correct)
	assert.Equal(t, 1, score.Incorrect)
	assert.Equal(t, 1, score.Unanswered)
}

func TestSingleCategoryScenario(t *testing.T) {
	b := testBank(t)
	state, err := Start(b, SingleCategory("B"), testOptions(7))
	require.NoError(t, err)

	first, ok := CurrentQuestion(state, b)
	require.True(t, ok)
	require.NoError(t, SubmitAnswer(state, b, first.ID, 0)) // wrong
	require.NoError(t, Advance(state, b))

	second, ok := CurrentQuestion(state, b)
	require.True(t, ok)
	require.NoError(t, SubmitAnswer(state, b, second.ID, 1)) // right
	require.NoError(t, Advance(state, b))

	overall := Overall(state, b)
	assert.Equal(t, 1, overall.Correct)
	assert.Equal(t, overall.Total-2, overall.Unanswered)

	cats := ByCategory(state, b)
	assert.InDelta(t, 50.0, cats["B"].Percentage, 1e-9)
	assert.Equal(t, CategoryScore{Category: "A", Total: 3}, cats["A"])
}

func TestByCategory_AnsweredDenominator(t *testing.T) {
	b := testBank(t)
	state := startFull(t, b)

	// One correct answer out of three questions in A.
	require.NoError(t, SubmitAnswer(state, b, 1, 1))

	cats := ByCategory(state, b)
	assert.Equal(t, 3, cats["A"].Total)
	assert.Equal(t, 1, cats["A"].Answered)
	assert.InDelta(t, 100.0, cats["A"].Percentage, 1e-9)

	// The overall score uses the bank size instead.
	assert.InDelta(t, 20.0, Overall(state, b).Percentage, 1e-9)
}

func TestCategoryReport_Order(t *testing.T) {
	b := testBank(t)
	report := CategoryReport(startFull(t, b), b)
	require.Len(t, report, 2)
	assert.Equal(t, "A", report[0].Category)
	assert.Equal(t, "B", report[1].Category)
}

func TestOverall_SumInvariantUnderRandomWalk(t *testing.T) {
	b := testBank(t)
	rng := rand.New(rand.NewPCG(11, 13))

	for trial := 0; trial < 50; trial++ {
		state := startFull(t, b)
		for step := 0; step < 40 && state.Phase == PhaseInProgress; step++ {
			switch rng.IntN(4) {
			case 0:
				if q, ok := CurrentQuestion(state, b); ok {
					require.NoError(t, SubmitAnswer(state, b, q.ID, rng.IntN(4)))
				}
			case 1:
				require.NoError(t, Advance(state, b))
			case 2:
				require.NoError(t, Retreat(state))
			case 3:
				require.NoError(t, SubmitAnswer(state, b, 1+rng.IntN(5), rng.IntN(4)))
			}

			s := Overall(state, b)
			require.Equal(t, s.Total, s.Correct+s.Incorrect+s.Unanswered)
		}
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		pct  float64
		want Rating
	}{
		{100, RatingPass},
		{80, RatingPass},
		{79.9, RatingReview},
		{60, RatingReview},
		{59.9, RatingStudy},
		{0, RatingStudy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rate(tt.pct), "Rate(%v)", tt.pct)
	}
	assert.Equal(t, "Review", RatingReview.DisplayName())
}
