package usecase_game

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/humanbelnik/flowquest/core/internal/service/score_calculator"
	usecase_ledger "github.com/humanbelnik/flowquest/core/internal/usecase/ledger"
)

// SubmitAnswer records one player's answer to the open question. The
// answer that completes the question advances the turn.
func (u *Usecase) SubmitAnswer(ctx context.Context, principal model.Principal, req AnswerRequest) (AnswerResult, error) {
	player, err := u.owned(ctx, principal, req.PlayerID)
	if err != nil {
		return AnswerResult{}, err
	}
	inst, err := u.questions.InstanceByID(ctx, req.QuestionID)
	if err != nil {
		return AnswerResult{}, wrap(err)
	}
	if inst.RoomID != player.RoomID {
		return AnswerResult{}, model.ErrForbidden
	}
	room, err := u.room(ctx, player.RoomID)
	if err != nil {
		return AnswerResult{}, err
	}
	if err := inProgress(room); err != nil {
		return AnswerResult{}, err
	}

	if !room.Phase.IsOpenFor(inst.ID) {
		answered, err := u.ledger.HasAnswered(ctx, inst.ID, player.ID)
		if err != nil {
			return AnswerResult{}, err
		}
		if answered {
			return AnswerResult{}, model.ErrAlreadyAnswered
		}
		return AnswerResult{}, model.ErrQuestionClosed
	}

	planned, err := u.powerups.Validate(ctx, player.ID, req.PowerUpIDs)
	if err != nil {
		return AnswerResult{}, err
	}
	attempt, err := u.ledger.Record(ctx, usecase_ledger.Submission{
		Instance:  inst,
		PlayerID:  player.ID,
		Answer:    req.Answer,
		TimeTaken: req.TimeTaken,
		ExtraTime: planned.ExtraTime,
		Skipped:   planned.Skip,
	})
	if err != nil {
		return AnswerResult{}, err
	}
	mods, err := u.powerups.Consume(ctx, player.ID, attempt.ID, req.PowerUpIDs)
	if err != nil {
		return AnswerResult{}, err
	}

	receipt, err := u.ledger.Count(ctx, attempt, func(rank int) int {
		return score_calculator.ComputePoints(
			inst.Question.Difficulty,
			inst.TimeLimit+mods.ExtraTime,
			attempt.TimeTaken,
			rank,
			score_calculator.Outcome{IsCorrect: attempt.IsCorrect, TimedOut: attempt.TimedOut},
			mods,
		)
	})
	if err != nil {
		return AnswerResult{}, err
	}
	u.recordOutcome(receipt.Attempt, mods)

	res := AnswerResult{
		IsCorrect:     receipt.Attempt.IsCorrect,
		TimedOut:      receipt.Attempt.TimedOut,
		Points:        receipt.Attempt.Points,
		Rank:          receipt.Attempt.Rank,
		Answered:      receipt.Answered,
		Total:         receipt.Total,
		AllAnswered:   receipt.AllAnswered,
		CorrectAnswer: inst.Question.CorrectAnswer,
		Explanation:   inst.Question.Explanation,
		Modifiers:     mods,
	}
	u.notify(ctx, room.ID, model.EventAnswerRecorded, map[string]any{
		"player_id":    player.ID,
		"question_id":  inst.ID,
		"rank":         res.Rank,
		"points":       res.Points,
		"answered":     res.Answered,
		"total":        res.Total,
		"all_answered": res.AllAnswered,
	})

	if receipt.Completed {
		turn, err := u.turns.AdvanceTurn(ctx, room.ID, inst.ID)
		if err != nil {
			// The answer stands; the host can still advance by hand.
			u.logger.Error("failed to advance turn after last answer", "room_id", room.ID, "question_id", inst.ID, "err", err)
			return res, nil
		}
		res.Turn = &turn
		u.notifyTurn(ctx, room.ID, turn)
	}
	return res, nil
}

func (u *Usecase) recordOutcome(a model.AnswerAttempt, mods model.Modifiers) {
	if u.metrics == nil {
		return
	}
	switch {
	case mods.Skip:
		u.metrics.Answer("skipped")
	case a.TimedOut:
		u.metrics.Answer("timeout")
	case a.IsCorrect:
		u.metrics.Answer("correct")
	default:
		u.metrics.Answer("wrong")
	}
}

// UseHint spends a hint on the open question and returns the options left
// after wrong ones are struck out.
func (u *Usecase) UseHint(ctx context.Context, principal model.Principal, playerID, powerupID uuid.UUID) (HintResult, error) {
	player, err := u.owned(ctx, principal, playerID)
	if err != nil {
		return HintResult{}, err
	}
	room, err := u.room(ctx, player.RoomID)
	if err != nil {
		return HintResult{}, err
	}
	if err := inProgress(room); err != nil {
		return HintResult{}, err
	}
	if room.Phase.Kind != model.PhaseAwaitingAnswers || room.Phase.QuestionID == nil {
		return HintResult{}, model.ErrQuestionClosed
	}
	inst, err := u.questions.InstanceByID(ctx, *room.Phase.QuestionID)
	if err != nil {
		return HintResult{}, wrap(err)
	}

	pp, err := u.powerups.Take(ctx, player.ID, powerupID, model.PowerUpHint)
	if err != nil {
		return HintResult{}, err
	}
	return HintResult{
		QuestionID: inst.ID,
		Options:    u.strike(inst.Question, pp.PowerUp.EffectValue),
	}, nil
}

// strike removes up to n wrong options, keeping at least one of them.
func (u *Usecase) strike(q model.Question, n int) []string {
	if n <= 0 {
		n = 1
	}
	var wrong []int
	for i, opt := range q.Options {
		if !answerMatches(opt, q.CorrectAnswer) {
			wrong = append(wrong, i)
		}
	}
	n = min(n, len(wrong)-1)
	if n <= 0 {
		return q.Options
	}

	struck := make(map[int]bool, n)
	start := u.pick(len(wrong))
	for i := range n {
		struck[wrong[(start+i)%len(wrong)]] = true
	}

	left := make([]string, 0, len(q.Options)-n)
	for i, opt := range q.Options {
		if !struck[i] {
			left = append(left, opt)
		}
	}
	return left
}

// Advance is the host's way out of a stuck turn, for example when a player
// never answers.
func (u *Usecase) Advance(ctx context.Context, principal model.Principal, roomID uuid.UUID, expectedVersion int64) (model.TurnResult, error) {
	if !principal.Valid() {
		return model.TurnResult{}, model.ErrUnauthorized
	}
	room, err := u.room(ctx, roomID)
	if err != nil {
		return model.TurnResult{}, err
	}
	if !room.IsHost(principal.UserID) {
		return model.TurnResult{}, model.ErrForbidden
	}
	turn, err := u.turns.AdvanceAt(ctx, roomID, expectedVersion)
	if err != nil {
		return model.TurnResult{}, err
	}
	if !turn.Advanced {
		return turn, model.ErrConcurrencyConflict
	}
	u.notifyTurn(ctx, roomID, turn)
	return turn, nil
}

func answerMatches(given, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(correct))
}
