package score_calculator

import (
	"math"
	"strings"

	"github.com/humanbelnik/flowquest/core/internal/model"
)

// Penalty for a timed out or empty answer. A wrong answer that was actually
// attempted scores 0.
const TimeoutPenalty = -5

const (
	maxTimeBonus      = 0.3
	doublePointsRatio = 2
	defaultBasePoints = 10
	defaultTimeLimit  = 30
)

var basePoints = map[model.Difficulty]int{
	model.DifficultyEasy:   10,
	model.DifficultyMedium: 15,
	model.DifficultyHard:   20,
}

var timeLimits = map[model.Difficulty]int{
	model.DifficultyEasy:   20,
	model.DifficultyMedium: 35,
	model.DifficultyHard:   50,
}

// Only the first three responders get a rank bonus.
var speedBonus = map[int]float64{
	1: 0.20,
	2: 0.10,
	3: 0.05,
}

type Outcome struct {
	IsCorrect bool
	TimedOut  bool
}

func BasePoints(difficulty model.Difficulty) int {
	if p, ok := basePoints[normalize(difficulty)]; ok {
		return p
	}
	return defaultBasePoints
}

// TimeLimit returns the answer window in seconds for a difficulty.
func TimeLimit(difficulty model.Difficulty) int {
	if l, ok := timeLimits[normalize(difficulty)]; ok {
		return l
	}
	return defaultTimeLimit
}

func ComputePoints(
	difficulty model.Difficulty,
	timeLimit int,
	timeTaken float64,
	rank int,
	outcome Outcome,
	mods model.Modifiers,
) int {
	if mods.Skip {
		return 0
	}
	if !outcome.IsCorrect {
		if outcome.TimedOut && !mods.Shield {
			return TimeoutPenalty
		}
		return 0
	}

	multiplier := 1 + timeBonus(timeLimit, timeTaken) + speedBonus[rank]
	points := float64(BasePoints(difficulty)) * multiplier
	if mods.DoublePoints {
		points *= doublePointsRatio
	}
	return int(math.Round(points))
}

func timeBonus(timeLimit int, timeTaken float64) float64 {
	if timeLimit <= 0 {
		return 0
	}
	limit := float64(timeLimit)
	taken := math.Min(math.Max(timeTaken, 0), limit)
	return math.Max(0, (limit-taken)/limit) * maxTimeBonus
}

func normalize(d model.Difficulty) model.Difficulty {
	return strings.ToLower(strings.TrimSpace(d))
}
