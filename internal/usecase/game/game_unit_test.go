package usecase_game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	usecase_ledger "github.com/humanbelnik/flowquest/core/internal/usecase/ledger"
	ledger_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/game/mocks/ledger"
	notifier_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/game/mocks/notifier"
	powerup_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/game/mocks/powerup"
	question_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/game/mocks/question"
	repo_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/game/mocks/repository"
	turn_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/game/mocks/turn"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseGameUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	repo      *repo_mocks.GameRepository
	questions *question_mocks.QuestionRepository
	ledger    *ledger_mocks.Ledger
	powerups  *powerup_mocks.PowerUps
	turns     *turn_mocks.Turns
	notifier  *notifier_mocks.Notifier
	ctx       context.Context

	principal model.Principal
	player    model.Player
	other     model.Player
	room      model.Room
}

func initResources(t provider.T) *resources {
	r := &resources{
		repo:      repo_mocks.NewGameRepository(t),
		questions: question_mocks.NewQuestionRepository(t),
		ledger:    ledger_mocks.NewLedger(t),
		powerups:  powerup_mocks.NewPowerUps(t),
		turns:     turn_mocks.NewTurns(t),
		notifier:  notifier_mocks.NewNotifier(t),
		ctx:       context.Background(),
		principal: model.Principal{UserID: uuid.New()},
	}
	r.usecase = New(r.repo, r.questions, r.ledger, r.powerups, r.turns, r.notifier)
	r.usecase.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	r.usecase.pick = func(int) int { return 0 }
	r.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	r.room = model.Room{
		ID:      uuid.New(),
		Code:    "123456",
		HostID:  r.principal.UserID,
		Active:  true,
		Status:  model.StatusInProgress,
		Phase:   model.AwaitingMove(),
		Version: 3,
	}
	r.player = model.Player{ID: uuid.New(), RoomID: r.room.ID, UserID: r.principal.UserID, JoinSeq: 1}
	r.other = model.Player{ID: uuid.New(), RoomID: r.room.ID, UserID: uuid.New(), JoinSeq: 2}
	return r
}

func validQuestion() model.Question {
	return model.Question{
		ID:            uuid.New(),
		Text:          "Capital of France?",
		Options:       []string{"Berlin", "Paris", "Rome", "Madrid"},
		CorrectAnswer: "Paris",
		Difficulty:    model.DifficultyEasy,
		Explanation:   "Paris has been the capital since 508.",
	}
}

func (r *resources) expectTurnLookup() {
	r.repo.On("PlayerByID", r.ctx, r.player.ID).Return(r.player, nil).Once()
	r.repo.On("RoomByID", r.ctx, r.room.ID).Return(r.room, nil).Once()
}

func (s *UsecaseGameUnitSuite) TestMove(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		tile          model.Tile
		prepare       func(r *resources)
		setupMocks    func(r *resources)
		expectedError error
		check         func(t provider.T, r *resources, res MoveResult)
	}{
		{
			name: "Should open a question",
			tile: model.Tile{Position: 4, Kind: model.TileQuestion},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.questions.On("PickQuestion", r.ctx, r.room.ID, false).Return(validQuestion(), nil).Once()
				r.questions.On("CreateInstance", r.ctx, mock.MatchedBy(func(inst model.QuestionInstance) bool {
					return inst.TotalEligible == 2 && inst.TimeLimit == 20 && inst.RoomID == r.room.ID
				})).Return(nil).Once()
				r.turns.On("BeginQuestion", r.ctx, r.room.ID, mock.AnythingOfType("uuid.UUID"), int64(3)).
					Return(model.TurnState{}, nil).Once()
				r.repo.On("UpdatePosition", r.ctx, r.player.ID, 4).Return(nil).Once()
			},
			check: func(t provider.T, r *resources, res MoveResult) {
				require.NotNil(t, res.Question)
				assert.Empty(t, res.Question.CorrectAnswer)
				assert.Equal(t, 3, res.Distance)
				assert.Equal(t, 4, res.Player.Position)
				assert.Nil(t, res.PowerUp)
			},
		},
		{
			name: "Should repeat questions once the pool is exhausted",
			tile: model.Tile{Position: 2},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.questions.On("PickQuestion", r.ctx, r.room.ID, false).Return(model.Question{}, model.ErrNotFound).Once()
				r.questions.On("PickQuestion", r.ctx, r.room.ID, true).Return(validQuestion(), nil).Once()
				r.questions.On("CreateInstance", r.ctx, mock.AnythingOfType("model.QuestionInstance")).Return(nil).Once()
				r.turns.On("BeginQuestion", r.ctx, r.room.ID, mock.AnythingOfType("uuid.UUID"), int64(3)).
					Return(model.TurnState{}, nil).Once()
				r.repo.On("UpdatePosition", r.ctx, r.player.ID, 2).Return(nil).Once()
			},
			check: func(t provider.T, r *resources, res MoveResult) {
				assert.NotNil(t, res.Question)
			},
		},
		{
			name: "Should grant powerup and pass the turn",
			tile: model.Tile{Position: 6, Kind: model.TilePowerUp},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.powerups.On("List", r.ctx, r.player.ID, false).Return([]model.PlayerPowerUp{}, nil).Once()
				r.turns.On("AdvanceAt", r.ctx, r.room.ID, int64(3)).
					Return(model.TurnResult{Advanced: true, State: model.TurnState{PlayerIndex: 1}}, nil).Once()
				r.repo.On("UpdatePosition", r.ctx, r.player.ID, 6).Return(nil).Once()
				r.powerups.On("Grant", r.ctx, r.player.ID).
					Return(model.PlayerPowerUp{ID: uuid.New(), PowerUp: model.PowerUp{Kind: model.PowerUpShield}}, nil).Once()
			},
			check: func(t provider.T, r *resources, res MoveResult) {
				require.NotNil(t, res.PowerUp)
				require.NotNil(t, res.Turn)
				assert.True(t, res.Turn.Advanced)
				assert.Nil(t, res.Question)
			},
		},
		{
			name: "Should fall back to a question when inventory is full",
			tile: model.Tile{Position: 6, Kind: model.TilePowerUp},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.powerups.On("List", r.ctx, r.player.ID, false).
					Return(make([]model.PlayerPowerUp, model.InventoryCap), nil).Once()
				r.questions.On("PickQuestion", r.ctx, r.room.ID, false).Return(validQuestion(), nil).Once()
				r.questions.On("CreateInstance", r.ctx, mock.AnythingOfType("model.QuestionInstance")).Return(nil).Once()
				r.turns.On("BeginQuestion", r.ctx, r.room.ID, mock.AnythingOfType("uuid.UUID"), int64(3)).
					Return(model.TurnState{}, nil).Once()
				r.repo.On("UpdatePosition", r.ctx, r.player.ID, 6).Return(nil).Once()
			},
			check: func(t provider.T, r *resources, res MoveResult) {
				assert.NotNil(t, res.Question)
				assert.Equal(t, model.TileQuestion, res.Tile.Kind)
				r.powerups.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything)
			},
		},
		{
			name: "Should pass the turn when inventory fills up before the grant",
			tile: model.Tile{Position: 6, Kind: model.TilePowerUp},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.powerups.On("List", r.ctx, r.player.ID, false).Return([]model.PlayerPowerUp{}, nil).Once()
				r.turns.On("AdvanceAt", r.ctx, r.room.ID, int64(3)).
					Return(model.TurnResult{Advanced: true, State: model.TurnState{PlayerIndex: 1}}, nil).Once()
				r.repo.On("UpdatePosition", r.ctx, r.player.ID, 6).Return(nil).Once()
				r.powerups.On("Grant", r.ctx, r.player.ID).Return(model.PlayerPowerUp{}, model.ErrInventoryFull).Once()
			},
			check: func(t provider.T, r *resources, res MoveResult) {
				assert.Nil(t, res.PowerUp)
				assert.Nil(t, res.Question)
				require.NotNil(t, res.Turn)
			},
		},
		{
			name: "Should not grant when another scan claimed the turn",
			tile: model.Tile{Position: 6, Kind: model.TilePowerUp},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.powerups.On("List", r.ctx, r.player.ID, false).Return([]model.PlayerPowerUp{}, nil).Once()
				r.turns.On("AdvanceAt", r.ctx, r.room.ID, int64(3)).Return(model.TurnResult{Advanced: false}, nil).Once()
			},
			expectedError: model.ErrConcurrencyConflict,
			check: func(t provider.T, r *resources, res MoveResult) {
				r.powerups.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything)
			},
		},
		{
			name: "Should keep the player in place when the question cannot open",
			tile: model.Tile{Position: 4, Kind: model.TileQuestion},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.questions.On("PickQuestion", r.ctx, r.room.ID, false).Return(validQuestion(), nil).Once()
				r.questions.On("CreateInstance", r.ctx, mock.AnythingOfType("model.QuestionInstance")).Return(nil).Once()
				r.turns.On("BeginQuestion", r.ctx, r.room.ID, mock.AnythingOfType("uuid.UUID"), int64(3)).
					Return(model.TurnState{}, model.ErrConcurrencyConflict).Once()
			},
			expectedError: model.ErrConcurrencyConflict,
		},
		{
			name: "Should keep the player in place when no question is left",
			tile: model.Tile{Position: 4, Kind: model.TileQuestion},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
				r.questions.On("PickQuestion", r.ctx, r.room.ID, false).Return(model.Question{}, model.ErrNotFound).Once()
				r.questions.On("PickQuestion", r.ctx, r.room.ID, true).Return(model.Question{}, model.ErrNotFound).Once()
			},
			expectedError: model.ErrNotFound,
		},
		{
			name: "Should refuse out of turn move",
			tile: model.Tile{Position: 3},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.other, r.player}, nil).Once()
			},
			expectedError: model.ErrNotYourTurn,
		},
		{
			name: "Should refuse a move longer than a die roll",
			tile: model.Tile{Position: 8},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
			},
			expectedError: model.ErrInvalidMove,
		},
		{
			name: "Should refuse tile without position",
			tile: model.Tile{},
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
				r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
			},
			expectedError: model.ErrInvalidTile,
		},
		{
			name:    "Should refuse move while answers are collected",
			tile:    model.Tile{Position: 3},
			prepare: func(r *resources) { r.room.Phase = model.AwaitingAnswers(uuid.New()) },
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
			},
			expectedError: model.ErrWrongPhase,
		},
		{
			name:    "Should refuse move in finished game",
			tile:    model.Tile{Position: 3},
			prepare: func(r *resources) { r.room.Status = model.StatusCompleted },
			setupMocks: func(r *resources) {
				r.expectTurnLookup()
			},
			expectedError: model.ErrGameAlreadyCompleted,
		},
		{
			name:    "Should refuse someone else's player",
			tile:    model.Tile{Position: 3},
			prepare: func(r *resources) { r.player.UserID = uuid.New() },
			setupMocks: func(r *resources) {
				r.repo.On("PlayerByID", r.ctx, r.player.ID).Return(r.player, nil).Once()
			},
			expectedError: model.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			if tc.prepare != nil {
				tc.prepare(r)
			}
			tc.setupMocks(r)

			res, err := r.usecase.Move(r.ctx, r.principal, r.player.ID, tc.tile)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				r.repo.AssertNotCalled(t, "UpdatePosition", mock.Anything, mock.Anything, mock.Anything)
				if tc.check != nil {
					tc.check(t, r, res)
				}
				return
			}
			require.NoError(t, err)
			tc.check(t, r, res)
		})
	}
}

func (s *UsecaseGameUnitSuite) TestSubmitAnswer(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		phase         func(inst model.QuestionInstance) model.Phase
		setupMocks    func(r *resources, inst model.QuestionInstance)
		expectedError error
		check         func(t provider.T, res AnswerResult)
	}{
		{
			name:  "Should score first correct answer",
			phase: func(inst model.QuestionInstance) model.Phase { return model.AwaitingAnswers(inst.ID) },
			setupMocks: func(r *resources, inst model.QuestionInstance) {
				attempt := model.AnswerAttempt{ID: uuid.New(), PlayerID: r.player.ID, IsCorrect: true, TimeTaken: 5}
				r.powerups.On("Validate", r.ctx, r.player.ID, []uuid.UUID(nil)).Return(model.Modifiers{}, nil).Once()
				r.ledger.On("Record", r.ctx, mock.MatchedBy(func(sub usecase_ledger.Submission) bool {
					return sub.Instance.ID == inst.ID && sub.Answer == "Paris"
				})).Return(attempt, nil).Once()
				r.powerups.On("Consume", r.ctx, r.player.ID, attempt.ID, []uuid.UUID(nil)).Return(model.Modifiers{}, nil).Once()
				r.ledger.On("Count", r.ctx, attempt, mock.Anything).
					Return(func(_ context.Context, a model.AnswerAttempt, score func(int) int) (model.Receipt, error) {
						a.Rank, a.Points = 1, score(1)
						return model.Receipt{Attempt: a, Answered: 1, Total: 2}, nil
					}).Once()
			},
			check: func(t provider.T, res AnswerResult) {
				assert.True(t, res.IsCorrect)
				assert.Equal(t, 14, res.Points)
				assert.Equal(t, 1, res.Rank)
				assert.Equal(t, "Paris", res.CorrectAnswer)
				assert.Nil(t, res.Turn)
			},
		},
		{
			name:  "Should advance turn on last answer",
			phase: func(inst model.QuestionInstance) model.Phase { return model.AwaitingAnswers(inst.ID) },
			setupMocks: func(r *resources, inst model.QuestionInstance) {
				attempt := model.AnswerAttempt{ID: uuid.New(), TimedOut: true, TimeTaken: 20}
				r.powerups.On("Validate", r.ctx, r.player.ID, []uuid.UUID(nil)).Return(model.Modifiers{}, nil).Once()
				r.ledger.On("Record", r.ctx, mock.AnythingOfType("usecase_ledger.Submission")).Return(attempt, nil).Once()
				r.powerups.On("Consume", r.ctx, r.player.ID, attempt.ID, []uuid.UUID(nil)).Return(model.Modifiers{}, nil).Once()
				r.ledger.On("Count", r.ctx, attempt, mock.Anything).
					Return(func(_ context.Context, a model.AnswerAttempt, score func(int) int) (model.Receipt, error) {
						a.Rank, a.Points = 2, score(2)
						return model.Receipt{Attempt: a, Answered: 2, Total: 2, AllAnswered: true, Completed: true}, nil
					}).Once()
				r.turns.On("AdvanceTurn", r.ctx, r.room.ID, inst.ID).
					Return(model.TurnResult{Advanced: true}, nil).Once()
			},
			check: func(t provider.T, res AnswerResult) {
				assert.Equal(t, -5, res.Points)
				assert.True(t, res.AllAnswered)
				require.NotNil(t, res.Turn)
				assert.True(t, res.Turn.Advanced)
			},
		},
		{
			name:  "Should keep the answer when advancing fails",
			phase: func(inst model.QuestionInstance) model.Phase { return model.AwaitingAnswers(inst.ID) },
			setupMocks: func(r *resources, inst model.QuestionInstance) {
				attempt := model.AnswerAttempt{ID: uuid.New()}
				r.powerups.On("Validate", r.ctx, r.player.ID, []uuid.UUID(nil)).Return(model.Modifiers{}, nil).Once()
				r.ledger.On("Record", r.ctx, mock.AnythingOfType("usecase_ledger.Submission")).Return(attempt, nil).Once()
				r.powerups.On("Consume", r.ctx, r.player.ID, attempt.ID, []uuid.UUID(nil)).Return(model.Modifiers{}, nil).Once()
				r.ledger.On("Count", r.ctx, attempt, mock.Anything).
					Return(model.Receipt{Attempt: attempt, Answered: 2, Total: 2, AllAnswered: true, Completed: true}, nil).Once()
				r.turns.On("AdvanceTurn", r.ctx, r.room.ID, inst.ID).
					Return(model.TurnResult{}, errors.New("db gone")).Once()
			},
			check: func(t provider.T, res AnswerResult) {
				assert.Nil(t, res.Turn)
			},
		},
		{
			name:  "Should report duplicate after the question closed",
			phase: func(inst model.QuestionInstance) model.Phase { return model.ShowingResults(inst.ID) },
			setupMocks: func(r *resources, inst model.QuestionInstance) {
				r.ledger.On("HasAnswered", r.ctx, inst.ID, r.player.ID).Return(true, nil).Once()
			},
			expectedError: model.ErrAlreadyAnswered,
		},
		{
			name:  "Should refuse late answer to a closed question",
			phase: func(inst model.QuestionInstance) model.Phase { return model.AwaitingMove() },
			setupMocks: func(r *resources, inst model.QuestionInstance) {
				r.ledger.On("HasAnswered", r.ctx, inst.ID, r.player.ID).Return(false, nil).Once()
			},
			expectedError: model.ErrQuestionClosed,
		},
		{
			name:  "Should refuse unknown powerup",
			phase: func(inst model.QuestionInstance) model.Phase { return model.AwaitingAnswers(inst.ID) },
			setupMocks: func(r *resources, inst model.QuestionInstance) {
				r.powerups.On("Validate", r.ctx, r.player.ID, []uuid.UUID(nil)).Return(model.Modifiers{}, model.ErrNotFound).Once()
			},
			expectedError: model.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			inst := model.QuestionInstance{
				ID:            uuid.New(),
				RoomID:        r.room.ID,
				Question:      validQuestion(),
				TimeLimit:     20,
				TotalEligible: 2,
			}
			r.room.Phase = tc.phase(inst)
			r.expectTurnLookup()
			r.questions.On("InstanceByID", r.ctx, inst.ID).Return(inst, nil).Once()
			tc.setupMocks(r, inst)

			res, err := r.usecase.SubmitAnswer(r.ctx, r.principal, AnswerRequest{
				PlayerID:   r.player.ID,
				QuestionID: inst.ID,
				Answer:     "Paris",
				TimeTaken:  5,
			})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			tc.check(t, res)
		})
	}
}

func (s *UsecaseGameUnitSuite) TestSubmitAnswerForeignQuestion(t provider.T) {
	r := initResources(t)
	inst := model.QuestionInstance{ID: uuid.New(), RoomID: uuid.New()}
	r.repo.On("PlayerByID", r.ctx, r.player.ID).Return(r.player, nil).Once()
	r.questions.On("InstanceByID", r.ctx, inst.ID).Return(inst, nil).Once()

	_, err := r.usecase.SubmitAnswer(r.ctx, r.principal, AnswerRequest{PlayerID: r.player.ID, QuestionID: inst.ID})

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func (s *UsecaseGameUnitSuite) TestSubmitAnswerAfterCompletion(t provider.T) {
	r := initResources(t)
	inst := model.QuestionInstance{ID: uuid.New(), RoomID: r.room.ID, Question: validQuestion()}
	r.room.Status = model.StatusCompleted
	r.room.Phase = model.Completed()
	r.expectTurnLookup()
	r.questions.On("InstanceByID", r.ctx, inst.ID).Return(inst, nil).Once()

	_, err := r.usecase.SubmitAnswer(r.ctx, r.principal, AnswerRequest{PlayerID: r.player.ID, QuestionID: inst.ID, Answer: "Paris"})

	assert.ErrorIs(t, err, model.ErrGameAlreadyCompleted)
	r.ledger.AssertNotCalled(t, "HasAnswered", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UsecaseGameUnitSuite) TestUseHintAfterCompletion(t provider.T) {
	r := initResources(t)
	r.room.Status = model.StatusCompleted
	r.room.Phase = model.Completed()
	r.expectTurnLookup()

	_, err := r.usecase.UseHint(r.ctx, r.principal, r.player.ID, uuid.New())

	assert.ErrorIs(t, err, model.ErrGameAlreadyCompleted)
	r.powerups.AssertNotCalled(t, "Take", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UsecaseGameUnitSuite) TestUseHint(t provider.T) {
	r := initResources(t)
	inst := model.QuestionInstance{ID: uuid.New(), RoomID: r.room.ID, Question: validQuestion()}
	r.room.Phase = model.AwaitingAnswers(inst.ID)
	hintID := uuid.New()
	r.expectTurnLookup()
	r.questions.On("InstanceByID", r.ctx, inst.ID).Return(inst, nil).Once()
	r.powerups.On("Take", r.ctx, r.player.ID, hintID, model.PowerUpHint).
		Return(model.PlayerPowerUp{ID: hintID, PowerUp: model.PowerUp{Kind: model.PowerUpHint, EffectValue: 2}}, nil).Once()

	res, err := r.usecase.UseHint(r.ctx, r.principal, r.player.ID, hintID)

	require.NoError(t, err)
	assert.Equal(t, []string{"Paris", "Madrid"}, res.Options)
}

func (s *UsecaseGameUnitSuite) TestStrikeKeepsOneWrongOption(t provider.T) {
	r := initResources(t)
	q := model.Question{Options: []string{"yes", "no"}, CorrectAnswer: "yes"}

	assert.Equal(t, []string{"yes", "no"}, r.usecase.strike(q, 5))
}

func (s *UsecaseGameUnitSuite) TestAdvance(t provider.T) {
	t.Parallel()

	t.Run("Should advance as host", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("RoomByID", r.ctx, r.room.ID).Return(r.room, nil).Once()
		r.turns.On("AdvanceAt", r.ctx, r.room.ID, int64(3)).Return(model.TurnResult{Advanced: true}, nil).Once()

		res, err := r.usecase.Advance(r.ctx, r.principal, r.room.ID, 3)

		require.NoError(t, err)
		assert.True(t, res.Advanced)
	})

	t.Run("Should report stale version", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("RoomByID", r.ctx, r.room.ID).Return(r.room, nil).Once()
		r.turns.On("AdvanceAt", r.ctx, r.room.ID, int64(2)).Return(model.TurnResult{}, nil).Once()

		_, err := r.usecase.Advance(r.ctx, r.principal, r.room.ID, 2)

		assert.ErrorIs(t, err, model.ErrConcurrencyConflict)
	})

	t.Run("Should refuse non host", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.room.HostID = uuid.New()
		r.repo.On("RoomByID", r.ctx, r.room.ID).Return(r.room, nil).Once()

		_, err := r.usecase.Advance(r.ctx, r.principal, r.room.ID, 3)

		assert.ErrorIs(t, err, model.ErrForbidden)
	})
}

func (s *UsecaseGameUnitSuite) TestState(t provider.T) {
	t.Parallel()

	t.Run("Should hide answer while collecting", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		inst := model.QuestionInstance{ID: uuid.New(), RoomID: r.room.ID, Question: validQuestion()}
		r.room.Phase = model.AwaitingAnswers(inst.ID)
		r.other.Score = 30
		r.repo.On("RoomByID", r.ctx, r.room.ID).Return(r.room, nil).Once()
		r.repo.On("PlayerByUser", r.ctx, r.room.ID, r.principal.UserID).Return(r.player, nil).Once()
		r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player, r.other}, nil).Once()
		r.questions.On("InstanceByID", r.ctx, inst.ID).Return(inst, nil).Once()

		state, err := r.usecase.State(r.ctx, r.principal, r.room.ID)

		require.NoError(t, err)
		require.NotNil(t, state.Question)
		assert.Empty(t, state.Question.CorrectAnswer)
		require.NotNil(t, state.CurrentPlayer)
		assert.Equal(t, r.player.ID, state.CurrentPlayer.ID)
		assert.Equal(t, r.other.ID, state.Players[0].ID)
		assert.Equal(t, r.other.ID, state.Standings[0].PlayerID)
	})

	t.Run("Should reveal answer when showing results", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		inst := model.QuestionInstance{ID: uuid.New(), RoomID: r.room.ID, Question: validQuestion()}
		r.room.Phase = model.ShowingResults(inst.ID)
		r.repo.On("RoomByID", r.ctx, r.room.ID).Return(r.room, nil).Once()
		r.repo.On("PlayerByUser", r.ctx, r.room.ID, r.principal.UserID).Return(r.player, nil).Once()
		r.repo.On("PlayersByRoom", r.ctx, r.room.ID).Return([]model.Player{r.player}, nil).Once()
		r.questions.On("InstanceByID", r.ctx, inst.ID).Return(inst, nil).Once()

		state, err := r.usecase.State(r.ctx, r.principal, r.room.ID)

		require.NoError(t, err)
		assert.Equal(t, "Paris", state.Question.CorrectAnswer)
	})

	t.Run("Should refuse outsiders", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("RoomByID", r.ctx, r.room.ID).Return(r.room, nil).Once()
		r.repo.On("PlayerByUser", r.ctx, r.room.ID, r.principal.UserID).Return(model.Player{}, model.ErrNotFound).Once()

		_, err := r.usecase.State(r.ctx, r.principal, r.room.ID)

		assert.ErrorIs(t, err, model.ErrForbidden)
	})
}

func TestUsecaseGameUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseGameUnitSuite))
}
