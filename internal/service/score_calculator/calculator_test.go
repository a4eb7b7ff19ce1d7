package score_calculator

import (
	"testing"

	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ScoreCalculatorSuite struct {
	suite.Suite
}

func correct() Outcome {
	return Outcome{IsCorrect: true}
}

func (s *ScoreCalculatorSuite) TestComputePoints(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		difficulty model.Difficulty
		timeLimit  int
		timeTaken  float64
		rank       int
		outcome    Outcome
		mods       model.Modifiers
		expected   int
	}{
		{
			name:       "easy answered fast and first",
			difficulty: model.DifficultyEasy, timeLimit: 20, timeTaken: 5, rank: 1,
			outcome: correct(), expected: 14,
		},
		{
			name:       "hard answered on the buzzer third",
			difficulty: model.DifficultyHard, timeLimit: 50, timeTaken: 50, rank: 3,
			outcome: correct(), expected: 21,
		},
		{
			name:       "medium second half time",
			difficulty: model.DifficultyMedium, timeLimit: 30, timeTaken: 15, rank: 2,
			outcome: correct(), expected: 19,
		},
		{
			name:       "rank past third gets no speed bonus",
			difficulty: model.DifficultyEasy, timeLimit: 20, timeTaken: 20, rank: 4,
			outcome: correct(), expected: 10,
		},
		{
			name:       "unknown difficulty falls back to ten",
			difficulty: "legendary", timeLimit: 30, timeTaken: 30, rank: 5,
			outcome: correct(), expected: 10,
		},
		{
			name:       "difficulty is case insensitive",
			difficulty: "HARD", timeLimit: 50, timeTaken: 50, rank: 0,
			outcome: correct(), expected: 20,
		},
		{
			name:       "overtime answer gets no time bonus",
			difficulty: model.DifficultyEasy, timeLimit: 20, timeTaken: 40, rank: 1,
			outcome: correct(), expected: 12,
		},
		{
			name:       "negative time is clamped",
			difficulty: model.DifficultyEasy, timeLimit: 20, timeTaken: -10, rank: 0,
			outcome: correct(), expected: 13,
		},
		{
			name:       "zero time limit disables time bonus",
			difficulty: model.DifficultyEasy, timeLimit: 0, timeTaken: 0, rank: 1,
			outcome: correct(), expected: 12,
		},
		{
			name:       "hard near the buzzer third",
			difficulty: model.DifficultyHard, timeLimit: 50, timeTaken: 47.5, rank: 3,
			outcome: correct(), expected: 21,
		},
		{
			name:       "double points applied before rounding",
			difficulty: model.DifficultyHard, timeLimit: 50, timeTaken: 47.5, rank: 3,
			outcome: correct(), mods: model.Modifiers{DoublePoints: true}, expected: 43,
		},
		{
			name:       "shield does not change a correct answer",
			difficulty: model.DifficultyEasy, timeLimit: 20, timeTaken: 5, rank: 1,
			outcome: correct(), mods: model.Modifiers{Shield: true}, expected: 14,
		},
		{
			name:       "wrong but attempted scores zero",
			difficulty: model.DifficultyHard, timeLimit: 50, timeTaken: 10, rank: 1,
			outcome: Outcome{}, expected: 0,
		},
		{
			name:       "timeout is penalised",
			difficulty: model.DifficultyHard, timeLimit: 50, timeTaken: 50, rank: 2,
			outcome: Outcome{TimedOut: true}, expected: TimeoutPenalty,
		},
		{
			name:       "shield suppresses the timeout penalty",
			difficulty: model.DifficultyHard, timeLimit: 50, timeTaken: 50, rank: 2,
			outcome: Outcome{TimedOut: true}, mods: model.Modifiers{Shield: true}, expected: 0,
		},
		{
			name:       "double points never doubles the penalty",
			difficulty: model.DifficultyEasy, timeLimit: 20, timeTaken: 20, rank: 1,
			outcome: Outcome{TimedOut: true}, mods: model.Modifiers{DoublePoints: true}, expected: TimeoutPenalty,
		},
		{
			name:       "skipped question scores zero",
			difficulty: model.DifficultyEasy, timeLimit: 20, timeTaken: 1, rank: 1,
			outcome: correct(), mods: model.Modifiers{Skip: true}, expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			actual := ComputePoints(tc.difficulty, tc.timeLimit, tc.timeTaken, tc.rank, tc.outcome, tc.mods)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func (s *ScoreCalculatorSuite) TestComputePointsIsDeterministic(t provider.T) {
	first := ComputePoints(model.DifficultyMedium, 35, 12.5, 2, correct(), model.Modifiers{})
	for range 100 {
		assert.Equal(t, first, ComputePoints(model.DifficultyMedium, 35, 12.5, 2, correct(), model.Modifiers{}))
	}
}

func (s *ScoreCalculatorSuite) TestTimeLimit(t provider.T) {
	assert.Equal(t, 20, TimeLimit(model.DifficultyEasy))
	assert.Equal(t, 35, TimeLimit(model.DifficultyMedium))
	assert.Equal(t, 50, TimeLimit(model.DifficultyHard))
	assert.Equal(t, 30, TimeLimit(""))
	assert.Equal(t, 30, TimeLimit("unknown"))
}

func TestScoreCalculatorSuite(t *testing.T) {
	suite.RunSuite(t, new(ScoreCalculatorSuite))
}
