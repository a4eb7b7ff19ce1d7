package usecase_game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/humanbelnik/flowquest/core/internal/service/move_validator"
	"github.com/humanbelnik/flowquest/core/internal/service/score_calculator"
)

// Move handles a scanned board tile for the acting player. A powerup tile
// ends the turn and grants a powerup, any other tile opens a question for
// the whole room. The position is stored only after the turn is claimed or
// the question is open.
func (u *Usecase) Move(ctx context.Context, principal model.Principal, playerID uuid.UUID, tile model.Tile) (MoveResult, error) {
	res, err := u.move(ctx, principal, playerID, tile)
	if u.metrics != nil {
		switch {
		case err == nil:
			u.metrics.Move(res.Tile.Kind)
		default:
			u.metrics.Move("rejected")
		}
	}
	return res, err
}

func (u *Usecase) move(ctx context.Context, principal model.Principal, playerID uuid.UUID, tile model.Tile) (MoveResult, error) {
	player, err := u.owned(ctx, principal, playerID)
	if err != nil {
		return MoveResult{}, err
	}
	room, err := u.room(ctx, player.RoomID)
	if err != nil {
		return MoveResult{}, err
	}
	if err := inProgress(room); err != nil {
		return MoveResult{}, err
	}
	if !room.Phase.AcceptsMove() {
		return MoveResult{}, fmt.Errorf("%w: answers are still being collected", model.ErrWrongPhase)
	}

	players, err := u.repo.PlayersByRoom(ctx, room.ID)
	if err != nil {
		return MoveResult{}, wrap(err)
	}
	if room.CurrentPlayerIndex >= len(players) || players[room.CurrentPlayerIndex].ID != player.ID {
		return MoveResult{}, model.ErrNotYourTurn
	}

	tile, err = model.NewTile(&tile.Position, tile.Kind)
	if err != nil {
		return MoveResult{}, err
	}
	distance, err := move_validator.Validate(player.Position, tile.Position, model.BoardSize)
	if err != nil {
		return MoveResult{}, err
	}
	moved := player
	moved.Position = tile.Position
	res := MoveResult{
		Player:   NewPlayerView(moved),
		Distance: distance,
		Tile:     tile,
	}

	if tile.Kind == model.TilePowerUp {
		held, err := u.powerups.List(ctx, player.ID, false)
		if err != nil {
			return MoveResult{}, err
		}
		if len(held) < model.InventoryCap {
			return u.collect(ctx, room, moved, res)
		}
		u.logger.Info("inventory full, asking a question instead", "player_id", player.ID)
		res.Tile.Kind = model.TileQuestion
	}

	inst, err := u.ask(ctx, room, len(players))
	if err != nil {
		return MoveResult{}, err
	}
	if err := u.repo.UpdatePosition(ctx, player.ID, tile.Position); err != nil {
		return MoveResult{}, wrap(err)
	}
	view := NewQuestionView(inst, false)
	res.Question = &view
	u.notify(ctx, room.ID, model.EventPlayerMoved, res.Player)
	u.notify(ctx, room.ID, model.EventQuestionAsked, view)
	return res, nil
}

// collect ends the turn on a powerup tile. The turn is claimed at the room
// version the move was validated against, so only one of two concurrent
// scans gets past AdvanceAt and moves the player.
func (u *Usecase) collect(ctx context.Context, room model.Room, player model.Player, res MoveResult) (MoveResult, error) {
	turn, err := u.turns.AdvanceAt(ctx, room.ID, room.Version)
	if err != nil {
		return MoveResult{}, err
	}
	if !turn.Advanced {
		return MoveResult{}, model.ErrConcurrencyConflict
	}
	if err := u.repo.UpdatePosition(ctx, player.ID, player.Position); err != nil {
		return MoveResult{}, wrap(err)
	}
	res.Turn = &turn
	u.notify(ctx, room.ID, model.EventPlayerMoved, res.Player)

	granted, err := u.powerups.Grant(ctx, player.ID)
	switch {
	case err == nil:
		res.PowerUp = &granted
		u.notify(ctx, room.ID, model.EventPowerUpGranted, map[string]any{
			"player_id": player.ID,
			"powerup":   granted.PowerUp,
		})
	case errors.Is(err, model.ErrInventoryFull):
		u.logger.Info("inventory filled up before the grant", "player_id", player.ID)
	default:
		return MoveResult{}, err
	}
	u.notifyTurn(ctx, room.ID, turn)
	return res, nil
}

// ask opens a new question instance for every player in the room.
func (u *Usecase) ask(ctx context.Context, room model.Room, eligible int) (model.QuestionInstance, error) {
	q, err := u.questions.PickQuestion(ctx, room.ID, false)
	if errors.Is(err, model.ErrNotFound) {
		q, err = u.questions.PickQuestion(ctx, room.ID, true)
	}
	if err != nil {
		return model.QuestionInstance{}, wrap(err)
	}

	inst := model.QuestionInstance{
		ID:            uuid.New(),
		RoomID:        room.ID,
		Question:      q,
		Round:         room.CurrentRound,
		TimeLimit:     score_calculator.TimeLimit(q.Difficulty),
		TotalEligible: eligible,
		AskedAt:       u.now(),
	}
	if err := u.questions.CreateInstance(ctx, inst); err != nil {
		return model.QuestionInstance{}, wrap(err)
	}
	if _, err := u.turns.BeginQuestion(ctx, room.ID, inst.ID, room.Version); err != nil {
		return model.QuestionInstance{}, err
	}
	return inst, nil
}
