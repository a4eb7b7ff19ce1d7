package integrationtest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	infra_memory "github.com/humanbelnik/flowquest/core/internal/infra/memory"
	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/humanbelnik/flowquest/core/internal/service/move_validator"
	usecase_game "github.com/humanbelnik/flowquest/core/internal/usecase/game"
	usecase_ledger "github.com/humanbelnik/flowquest/core/internal/usecase/ledger"
	usecase_powerup "github.com/humanbelnik/flowquest/core/internal/usecase/powerup"
	usecase_room "github.com/humanbelnik/flowquest/core/internal/usecase/room"
	usecase_turn "github.com/humanbelnik/flowquest/core/internal/usecase/turn"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type GameFlowSuite struct {
	suite.Suite
}

type recorder struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recorder) Notify(_ context.Context, _ uuid.UUID, e model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) count(t model.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ctx    context.Context
	store  *infra_memory.Store
	events *recorder
	rooms  *usecase_room.Usecase
	game   *usecase_game.Usecase
}

func newWorld() *world {
	store := infra_memory.New()
	events := &recorder{}
	turns := usecase_turn.New(store)
	return &world{
		ctx:    context.Background(),
		store:  store,
		events: events,
		rooms:  usecase_room.New(store, turns, events),
		game: usecase_game.New(
			store,
			store,
			usecase_ledger.New(store),
			usecase_powerup.New(store),
			turns,
			events,
		),
	}
}

type seat struct {
	principal model.Principal
	playerID  uuid.UUID
}

// lobby starts a game with n seats in join order.
func (w *world) lobby(t provider.T, n int) (uuid.UUID, []seat) {
	host := model.Principal{UserID: uuid.New(), Name: "host"}
	created, err := w.rooms.Create(w.ctx, host)
	require.NoError(t, err)
	seats := []seat{{principal: host, playerID: created.Player.ID}}

	for i := 1; i < n; i++ {
		guest := model.Principal{UserID: uuid.New()}
		joined, err := w.rooms.Join(w.ctx, guest, created.Room.Code)
		require.NoError(t, err)
		seats = append(seats, seat{principal: guest, playerID: joined.Player.ID})
	}

	_, err = w.rooms.Start(w.ctx, host, created.Room.ID)
	require.NoError(t, err)
	return created.Room.ID, seats
}

// ask moves the current player one step onto a question tile.
func (w *world) ask(t provider.T, roomID uuid.UUID, seats []seat) (model.QuestionInstance, usecase_game.MoveResult) {
	room, err := w.store.RoomByID(w.ctx, roomID)
	require.NoError(t, err)
	mover := seats[room.CurrentPlayerIndex]
	player, err := w.store.PlayerByID(w.ctx, mover.playerID)
	require.NoError(t, err)

	target := move_validator.Wrap(player.Position, 1, model.BoardSize)
	res, err := w.game.Move(w.ctx, mover.principal, mover.playerID, model.Tile{Position: target, Kind: model.TileQuestion})
	require.NoError(t, err)
	require.NotNil(t, res.Question)

	inst, err := w.store.InstanceByID(w.ctx, res.Question.ID)
	require.NoError(t, err)
	return inst, res
}

func (s *GameFlowSuite) TestTwoPlayersPlayTenRounds(t provider.T) {
	w := newWorld()
	roomID, seats := w.lobby(t, 2)
	var last model.TurnResult

	for turn := 0; turn < 2*model.RoundCeiling; turn++ {
		inst, _ := w.ask(t, roomID, seats)

		first, err := w.game.SubmitAnswer(w.ctx, seats[0].principal, usecase_game.AnswerRequest{
			PlayerID: seats[0].playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer, TimeTaken: 3,
		})
		require.NoError(t, err)
		assert.True(t, first.IsCorrect)
		assert.Equal(t, 1, first.Rank)
		assert.Nil(t, first.Turn)

		second, err := w.game.SubmitAnswer(w.ctx, seats[1].principal, usecase_game.AnswerRequest{
			PlayerID: seats[1].playerID, QuestionID: inst.ID, Answer: "definitely not it", TimeTaken: 4,
		})
		require.NoError(t, err)
		assert.False(t, second.IsCorrect)
		assert.Equal(t, 2, second.Rank)
		assert.Zero(t, second.Points)
		require.NotNil(t, second.Turn)
		require.True(t, second.Turn.Advanced)
		last = *second.Turn

		_, err = w.game.SubmitAnswer(w.ctx, seats[1].principal, usecase_game.AnswerRequest{
			PlayerID: seats[1].playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer,
		})
		assert.ErrorIs(t, err, model.ErrAlreadyAnswered)
	}

	require.True(t, last.Completed)
	require.NotNil(t, last.Winner)
	assert.Equal(t, seats[0].playerID, last.Winner.PlayerID)
	assert.Equal(t, model.StatusCompleted, last.State.Status)
	assert.Equal(t, model.RoundCeiling, last.State.Round)
	assert.Equal(t, 1, w.events.count(model.EventGameCompleted))
	assert.Equal(t, 2*model.RoundCeiling, w.events.count(model.EventQuestionAsked))

	state, err := w.game.State(w.ctx, seats[1].principal, roomID)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseCompleted, state.Room.Phase.Kind)
	assert.Nil(t, state.CurrentPlayer)
	assert.Equal(t, seats[0].playerID, state.Standings[0].PlayerID)
	assert.Positive(t, state.Standings[0].Score)
	assert.Zero(t, state.Standings[1].Score)

	_, err = w.game.Move(w.ctx, seats[0].principal, seats[0].playerID, model.Tile{Position: 3})
	assert.ErrorIs(t, err, model.ErrGameAlreadyCompleted)
}

func (s *GameFlowSuite) TestConcurrentAnswersAdvanceOnce(t provider.T) {
	w := newWorld()
	roomID, seats := w.lobby(t, 6)
	inst, _ := w.ask(t, roomID, seats)

	results := make([]usecase_game.AnswerResult, len(seats))
	var wg sync.WaitGroup
	for i, s := range seats {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := w.game.SubmitAnswer(w.ctx, s.principal, usecase_game.AnswerRequest{
				PlayerID: s.playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer, TimeTaken: 2,
			})
			assert.NoError(t, err)
			results[i] = res
		}()
	}
	wg.Wait()

	ranks := make(map[int]bool)
	advanced := 0
	for _, res := range results {
		ranks[res.Rank] = true
		if res.Turn != nil && res.Turn.Advanced {
			advanced++
		}
	}
	assert.Len(t, ranks, len(seats))
	assert.Equal(t, 1, advanced)
	assert.Equal(t, 1, w.events.count(model.EventTurnAdvanced))

	room, err := w.store.RoomByID(w.ctx, roomID)
	require.NoError(t, err)
	assert.Equal(t, 1, room.CurrentPlayerIndex)
	assert.Equal(t, model.PhaseShowingResults, room.Phase.Kind)
}

func (s *GameFlowSuite) TestHostUnsticksRoundAndLateAnswerIsClosed(t provider.T) {
	w := newWorld()
	roomID, seats := w.lobby(t, 3)
	inst, _ := w.ask(t, roomID, seats)

	_, err := w.game.SubmitAnswer(w.ctx, seats[0].principal, usecase_game.AnswerRequest{
		PlayerID: seats[0].playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer, TimeTaken: 1,
	})
	require.NoError(t, err)

	room, err := w.store.RoomByID(w.ctx, roomID)
	require.NoError(t, err)
	_, err = w.game.Advance(w.ctx, seats[1].principal, roomID, room.Version)
	assert.ErrorIs(t, err, model.ErrForbidden)

	res, err := w.game.Advance(w.ctx, seats[0].principal, roomID, room.Version)
	require.NoError(t, err)
	assert.True(t, res.Advanced)
	assert.Equal(t, 1, res.State.PlayerIndex)

	_, err = w.game.Advance(w.ctx, seats[0].principal, roomID, room.Version)
	assert.ErrorIs(t, err, model.ErrConcurrencyConflict)

	_, err = w.game.SubmitAnswer(w.ctx, seats[2].principal, usecase_game.AnswerRequest{
		PlayerID: seats[2].playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer,
	})
	assert.ErrorIs(t, err, model.ErrQuestionClosed)

	_, err = w.game.SubmitAnswer(w.ctx, seats[0].principal, usecase_game.AnswerRequest{
		PlayerID: seats[0].playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer,
	})
	assert.ErrorIs(t, err, model.ErrAlreadyAnswered)
}

func (s *GameFlowSuite) TestPowerUpTilePassesTurnAndPowersAnswer(t provider.T) {
	w := newWorld()
	roomID, seats := w.lobby(t, 2)

	res, err := w.game.Move(w.ctx, seats[0].principal, seats[0].playerID, model.Tile{Position: 3, Kind: model.TilePowerUp})
	require.NoError(t, err)
	require.NotNil(t, res.PowerUp)
	require.NotNil(t, res.Turn)
	assert.Equal(t, 1, res.Turn.State.PlayerIndex)

	_, err = w.game.Move(w.ctx, seats[0].principal, seats[0].playerID, model.Tile{Position: 4})
	assert.ErrorIs(t, err, model.ErrNotYourTurn)

	inventory, err := w.game.Inventory(w.ctx, seats[0].principal, seats[0].playerID)
	require.NoError(t, err)
	require.Len(t, inventory, 1)

	inst, _ := w.ask(t, roomID, seats)
	if inventory[0].PowerUp.Kind == model.PowerUpHint {
		hint, err := w.game.UseHint(w.ctx, seats[0].principal, seats[0].playerID, inventory[0].ID)
		require.NoError(t, err)
		assert.Contains(t, hint.Options, inst.Question.CorrectAnswer)
		assert.Less(t, len(hint.Options), len(inst.Question.Options))
		return
	}

	answer, err := w.game.SubmitAnswer(w.ctx, seats[0].principal, usecase_game.AnswerRequest{
		PlayerID:   seats[0].playerID,
		QuestionID: inst.ID,
		Answer:     inst.Question.CorrectAnswer,
		TimeTaken:  2,
		PowerUpIDs: []uuid.UUID{inventory[0].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, model.ModifiersOf(inventory), answer.Modifiers)

	left, err := w.game.Inventory(w.ctx, seats[0].principal, seats[0].playerID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

// slowRoster widens the window between reading the room and claiming the turn.
type slowRoster struct {
	*infra_memory.Store
}

func (r slowRoster) PlayersByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Player, error) {
	time.Sleep(20 * time.Millisecond)
	return r.Store.PlayersByRoom(ctx, roomID)
}

func (s *GameFlowSuite) TestDoublePowerUpScanGrantsOnce(t provider.T) {
	w := newWorld()
	w.game = usecase_game.New(
		slowRoster{w.store},
		w.store,
		usecase_ledger.New(w.store),
		usecase_powerup.New(w.store),
		usecase_turn.New(w.store),
		w.events,
	)
	_, seats := w.lobby(t, 2)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = w.game.Move(w.ctx, seats[0].principal, seats[0].playerID, model.Tile{Position: 3, Kind: model.TilePowerUp})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		// A scan that loads the room after the winner finished is out of turn.
		assert.True(t, errors.Is(err, model.ErrConcurrencyConflict) || errors.Is(err, model.ErrNotYourTurn), err)
	}
	assert.Equal(t, 1, succeeded)

	inventory, err := w.game.Inventory(w.ctx, seats[0].principal, seats[0].playerID)
	require.NoError(t, err)
	assert.Len(t, inventory, 1)
	assert.Equal(t, 1, w.events.count(model.EventPowerUpGranted))
	assert.Equal(t, 1, w.events.count(model.EventTurnAdvanced))

	player, err := w.store.PlayerByID(w.ctx, seats[0].playerID)
	require.NoError(t, err)
	assert.Equal(t, 3, player.Position)
}

func (s *GameFlowSuite) TestAnswerAfterCompletion(t provider.T) {
	w := newWorld()
	roomID, seats := w.lobby(t, 2)

	for turn := 0; turn < 2*model.RoundCeiling-1; turn++ {
		inst, _ := w.ask(t, roomID, seats)
		for _, s := range seats {
			_, err := w.game.SubmitAnswer(w.ctx, s.principal, usecase_game.AnswerRequest{
				PlayerID: s.playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer, TimeTaken: 3,
			})
			require.NoError(t, err)
		}
	}

	inst, _ := w.ask(t, roomID, seats)
	room, err := w.store.RoomByID(w.ctx, roomID)
	require.NoError(t, err)
	res, err := w.game.Advance(w.ctx, seats[0].principal, roomID, room.Version)
	require.NoError(t, err)
	require.True(t, res.Completed)

	_, err = w.game.SubmitAnswer(w.ctx, seats[1].principal, usecase_game.AnswerRequest{
		PlayerID: seats[1].playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer, TimeTaken: 3,
	})
	assert.ErrorIs(t, err, model.ErrGameAlreadyCompleted)

	_, err = w.game.UseHint(w.ctx, seats[1].principal, seats[1].playerID, uuid.New())
	assert.ErrorIs(t, err, model.ErrGameAlreadyCompleted)
}

func (s *GameFlowSuite) TestResetAndLeave(t provider.T) {
	w := newWorld()
	roomID, seats := w.lobby(t, 3)
	inst, _ := w.ask(t, roomID, seats)
	_, err := w.game.SubmitAnswer(w.ctx, seats[0].principal, usecase_game.AnswerRequest{
		PlayerID: seats[0].playerID, QuestionID: inst.ID, Answer: inst.Question.CorrectAnswer, TimeTaken: 1,
	})
	require.NoError(t, err)

	state, err := w.rooms.Reset(w.ctx, seats[0].principal, roomID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusWaiting, state.Status)

	players, err := w.store.PlayersByRoom(w.ctx, roomID)
	require.NoError(t, err)
	for _, p := range players {
		assert.Zero(t, p.Score)
		assert.Zero(t, p.Position)
	}

	for i, s := range seats {
		closed, err := w.rooms.Leave(w.ctx, s.principal, roomID)
		require.NoError(t, err)
		assert.Equal(t, i == len(seats)-1, closed)
	}
	room, err := w.store.RoomByID(w.ctx, roomID)
	require.NoError(t, err)
	assert.False(t, room.Active)

	_, err = w.rooms.Join(w.ctx, model.Principal{UserID: uuid.New()}, room.Code)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestGameFlowSuite(t *testing.T) {
	suite.RunSuite(t, new(GameFlowSuite))
}
