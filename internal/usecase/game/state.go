package usecase_game

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	usecase_turn "github.com/humanbelnik/flowquest/core/internal/usecase/turn"
)

// State is the room as seen by one of its members.
func (u *Usecase) State(ctx context.Context, principal model.Principal, roomID uuid.UUID) (GameState, error) {
	if !principal.Valid() {
		return GameState{}, model.ErrUnauthorized
	}
	room, err := u.room(ctx, roomID)
	if err != nil {
		return GameState{}, err
	}
	if _, err := u.repo.PlayerByUser(ctx, roomID, principal.UserID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return GameState{}, model.ErrForbidden
		}
		return GameState{}, wrap(err)
	}
	players, err := u.repo.PlayersByRoom(ctx, roomID)
	if err != nil {
		return GameState{}, wrap(err)
	}

	state := GameState{
		Room:      NewRoomView(room),
		Standings: usecase_turn.Standings(players),
	}
	if room.Status == model.StatusInProgress && room.CurrentPlayerIndex < len(players) {
		current := NewPlayerView(players[room.CurrentPlayerIndex])
		state.CurrentPlayer = &current
	}

	byScore := make([]model.Player, len(players))
	copy(byScore, players)
	model.SortByStanding(byScore)
	state.Players = NewPlayerViews(byScore)

	if room.Phase.QuestionID != nil {
		inst, err := u.questions.InstanceByID(ctx, *room.Phase.QuestionID)
		if err != nil {
			return GameState{}, wrap(err)
		}
		view := NewQuestionView(inst, room.Phase.Kind == model.PhaseShowingResults)
		state.Question = &view
	}
	return state, nil
}

// Inventory lists the caller's unused powerups.
func (u *Usecase) Inventory(ctx context.Context, principal model.Principal, playerID uuid.UUID) ([]model.PlayerPowerUp, error) {
	player, err := u.owned(ctx, principal, playerID)
	if err != nil {
		return nil, err
	}
	return u.powerups.List(ctx, player.ID, false)
}

func randIntn(n int) int {
	return rand.Intn(n)
}
