package usecase_turn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

//go:generate mockery --name=TurnRepository --output=./mocks/repository --filename=repository.go
type TurnRepository interface {
	RoomByID(ctx context.Context, roomID uuid.UUID) (model.Room, error)
	// Players in join order.
	PlayersByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Player, error)
	// Applies tr in one transaction. Returns false without writing when the
	// trigger was already claimed or the room version moved on.
	ApplyTurn(ctx context.Context, tr model.TurnTransition) (bool, error)
	// ApplyTurn that also zeroes every player's score and position.
	ResetRoom(ctx context.Context, tr model.TurnTransition) (bool, error)
}

type Metrics interface {
	Turn(advanced bool)
	GameCompleted()
}

type Controller struct {
	repo    TurnRepository
	metrics Metrics
	logger  *slog.Logger
}

type Option func(*Controller)

func WithMetrics(m Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

func New(repo TurnRepository, opts ...Option) *Controller {
	c := &Controller{
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// casAttempts bounds re-reads for writers that must eventually apply.
const casAttempts = 3

// Next is the pure turn transition for a room of n players.
func Next(cur model.TurnState, n int, trigger uuid.UUID) model.TurnState {
	next := cur
	next.Version = cur.Version + 1
	next.PlayerIndex = (cur.PlayerIndex + 1) % n
	if next.PlayerIndex == 0 {
		next.Round = cur.Round + 1
	}

	switch {
	case next.Round >= model.RoundCeiling:
		next.Status = model.StatusCompleted
		next.Phase = model.Completed()
	case trigger != uuid.Nil:
		next.Phase = model.ShowingResults(trigger)
	default:
		next.Phase = model.AwaitingMove()
	}
	return next
}

// AdvanceTurn moves the room to the next player. trigger is the question
// instance whose completion caused the advance, or uuid.Nil. Concurrent or
// repeated calls for the same trigger advance at most once.
func (c *Controller) AdvanceTurn(ctx context.Context, roomID, trigger uuid.UUID) (model.TurnResult, error) {
	return c.advance(ctx, roomID, trigger, nil)
}

// AdvanceAt advances the room only if its state is still at expectedVersion.
// An open question is closed as if it had been completed.
func (c *Controller) AdvanceAt(ctx context.Context, roomID uuid.UUID, expectedVersion int64) (model.TurnResult, error) {
	return c.advance(ctx, roomID, uuid.Nil, &expectedVersion)
}

func (c *Controller) advance(ctx context.Context, roomID, trigger uuid.UUID, expected *int64) (model.TurnResult, error) {
	room, players, err := c.load(ctx, roomID)
	if err != nil {
		return model.TurnResult{}, err
	}
	switch room.Status {
	case model.StatusCompleted:
		return model.TurnResult{}, model.ErrGameAlreadyCompleted
	case model.StatusWaiting:
		return model.TurnResult{}, model.ErrGameNotStarted
	}
	if len(players) == 0 {
		return model.TurnResult{}, fmt.Errorf("%w: room %s has no players", model.ErrGameNotStarted, roomID)
	}

	cur := model.TurnStateOf(room)
	if expected != nil {
		if *expected != cur.Version {
			return c.unchanged(cur, players), nil
		}
		if cur.Phase.Kind == model.PhaseAwaitingAnswers && cur.Phase.QuestionID != nil {
			trigger = *cur.Phase.QuestionID
		}
	} else if trigger != uuid.Nil && !cur.Phase.IsOpenFor(trigger) {
		// The question was closed by an earlier advance.
		return c.unchanged(cur, players), nil
	}

	next := Next(cur, len(players), trigger)
	applied, err := c.repo.ApplyTurn(ctx, model.TurnTransition{
		RoomID:          roomID,
		Trigger:         trigger,
		ExpectedVersion: cur.Version,
		Next:            next,
	})
	if err != nil {
		return model.TurnResult{}, errors.Join(model.ErrInternal, err)
	}
	if !applied {
		c.logger.Debug("turn already advanced", "room_id", roomID, "trigger", trigger, "version", cur.Version)
		return c.unchanged(cur, players), nil
	}

	result := model.TurnResult{
		State:     next,
		Advanced:  true,
		Completed: next.Status == model.StatusCompleted,
		Standings: Standings(players),
	}
	if c.metrics != nil {
		c.metrics.Turn(true)
	}
	if result.Completed {
		winner := result.Standings[0]
		result.Winner = &winner
		if c.metrics != nil {
			c.metrics.GameCompleted()
		}
		c.logger.Info("game completed", "room_id", roomID, "winner", winner.PlayerID, "score", winner.Score)
	}
	return result, nil
}

func (c *Controller) unchanged(cur model.TurnState, players []model.Player) model.TurnResult {
	if c.metrics != nil {
		c.metrics.Turn(false)
	}
	return model.TurnResult{
		State:     cur,
		Completed: cur.Status == model.StatusCompleted,
		Standings: Standings(players),
	}
}

// StartGame moves a waiting room into its first turn.
func (c *Controller) StartGame(ctx context.Context, roomID uuid.UUID) (model.TurnState, error) {
	room, players, err := c.load(ctx, roomID)
	if err != nil {
		return model.TurnState{}, err
	}
	if room.Status != model.StatusWaiting {
		return model.TurnState{}, fmt.Errorf("%w: room is %s", model.ErrForbidden, room.Status)
	}
	if len(players) == 0 {
		return model.TurnState{}, fmt.Errorf("%w: room %s has no players", model.ErrGameNotStarted, roomID)
	}

	cur := model.TurnStateOf(room)
	next := model.TurnState{
		Status:  model.StatusInProgress,
		Phase:   model.AwaitingMove(),
		Version: cur.Version + 1,
	}
	if err := c.write(ctx, roomID, cur.Version, next, c.repo.ApplyTurn); err != nil {
		return model.TurnState{}, err
	}
	return next, nil
}

// BeginQuestion opens instanceID for answers. It fails with
// ErrConcurrencyConflict when the room moved past expectedVersion.
func (c *Controller) BeginQuestion(ctx context.Context, roomID, instanceID uuid.UUID, expectedVersion int64) (model.TurnState, error) {
	room, err := c.room(ctx, roomID)
	if err != nil {
		return model.TurnState{}, err
	}
	cur := model.TurnStateOf(room)
	if cur.Status != model.StatusInProgress {
		return model.TurnState{}, model.ErrGameNotStarted
	}
	if cur.Version != expectedVersion || !cur.Phase.AcceptsMove() {
		return model.TurnState{}, model.ErrConcurrencyConflict
	}

	next := cur
	next.Phase = model.AwaitingAnswers(instanceID)
	next.Version = cur.Version + 1
	if err := c.write(ctx, roomID, cur.Version, next, c.repo.ApplyTurn); err != nil {
		return model.TurnState{}, err
	}
	return next, nil
}

// ResetGame returns the room to the lobby with zeroed scores and positions.
func (c *Controller) ResetGame(ctx context.Context, roomID uuid.UUID) (model.TurnState, error) {
	for range casAttempts {
		room, err := c.room(ctx, roomID)
		if err != nil {
			return model.TurnState{}, err
		}
		next := model.TurnState{
			Status:  model.StatusWaiting,
			Phase:   model.AwaitingMove(),
			Version: room.Version + 1,
		}
		err = c.write(ctx, roomID, room.Version, next, c.repo.ResetRoom)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, model.ErrConcurrencyConflict) {
			return model.TurnState{}, err
		}
	}
	return model.TurnState{}, model.ErrConcurrencyConflict
}

// PlayerLeft keeps the current player index inside the shrunk player list.
func (c *Controller) PlayerLeft(ctx context.Context, roomID uuid.UUID) (model.TurnState, error) {
	for range casAttempts {
		room, players, err := c.load(ctx, roomID)
		if err != nil {
			return model.TurnState{}, err
		}
		cur := model.TurnStateOf(room)
		if len(players) == 0 || cur.PlayerIndex < len(players) {
			return cur, nil
		}

		next := cur
		next.PlayerIndex = cur.PlayerIndex % len(players)
		next.Version = cur.Version + 1
		err = c.write(ctx, roomID, cur.Version, next, c.repo.ApplyTurn)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, model.ErrConcurrencyConflict) {
			return model.TurnState{}, err
		}
	}
	return model.TurnState{}, model.ErrConcurrencyConflict
}

func (c *Controller) write(
	ctx context.Context,
	roomID uuid.UUID,
	expected int64,
	next model.TurnState,
	apply func(context.Context, model.TurnTransition) (bool, error),
) error {
	applied, err := apply(ctx, model.TurnTransition{
		RoomID:          roomID,
		ExpectedVersion: expected,
		Next:            next,
	})
	if err != nil {
		return errors.Join(model.ErrInternal, err)
	}
	if !applied {
		return model.ErrConcurrencyConflict
	}
	return nil
}

func (c *Controller) room(ctx context.Context, roomID uuid.UUID) (model.Room, error) {
	room, err := c.repo.RoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Room{}, model.ErrNotFound
		}
		return model.Room{}, errors.Join(model.ErrInternal, err)
	}
	return room, nil
}

func (c *Controller) load(ctx context.Context, roomID uuid.UUID) (model.Room, []model.Player, error) {
	room, err := c.room(ctx, roomID)
	if err != nil {
		return model.Room{}, nil, err
	}
	players, err := c.repo.PlayersByRoom(ctx, roomID)
	if err != nil {
		return model.Room{}, nil, errors.Join(model.ErrInternal, err)
	}
	return room, players, nil
}

// Standings ranks players by score, ties going to the earlier joiner.
func Standings(players []model.Player) []model.Standing {
	sorted := make([]model.Player, len(players))
	copy(sorted, players)
	model.SortByStanding(sorted)

	out := make([]model.Standing, len(sorted))
	for i, p := range sorted {
		out[i] = model.Standing{
			PlayerID: p.ID,
			UserID:   p.UserID,
			Score:    p.Score,
			JoinSeq:  p.JoinSeq,
			Place:    i + 1,
		}
	}
	return out
}
