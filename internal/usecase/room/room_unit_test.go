package usecase_room

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	notifier_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/room/mocks/notifier"
	repo_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/room/mocks/repository"
	turn_mocks "github.com/humanbelnik/flowquest/core/internal/usecase/room/mocks/turn"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	roomRepo *repo_mocks.RoomRepository
	turns    *turn_mocks.TurnController
	notifier *notifier_mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	roomRepo := repo_mocks.NewRoomRepository(t)
	turns := turn_mocks.NewTurnController(t)
	notifier := notifier_mocks.NewNotifier(t)

	return &resources{
		usecase:  New(roomRepo, turns, notifier),
		roomRepo: roomRepo,
		turns:    turns,
		notifier: notifier,
		ctx:      context.Background(),
	}
}

func validPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Name: "guest"}
}

func validRoom(hostID uuid.UUID) model.Room {
	return model.Room{
		ID:     uuid.New(),
		Code:   "123456",
		HostID: hostID,
		Active: true,
		Status: model.StatusWaiting,
		Phase:  model.AwaitingMove(),
	}
}

func (suite *UsecaseRoomUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should create room with host as first player",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateRoom", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Player")).
					Return(model.Player{ID: uuid.New(), JoinSeq: 1}, nil).Once()
			},
		},
		{
			name: "Should retry code conflict",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateRoom", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Player")).
					Return(model.Player{}, model.ErrCodeConflict).Twice()
				r.roomRepo.On("CreateRoom", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Player")).
					Return(model.Player{ID: uuid.New(), JoinSeq: 1}, nil).Once()
			},
		},
		{
			name: "Should give up after three conflicts",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateRoom", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Player")).
					Return(model.Player{}, model.ErrCodeConflict).Times(3)
			},
			expectedError: model.ErrRoomsUnavailable,
		},
		{
			name: "Should wrap store failure",
			setupMocks: func(r *resources) {
				r.roomRepo.On("CreateRoom", r.ctx, mock.AnythingOfType("model.Room"), mock.AnythingOfType("model.Player")).
					Return(model.Player{}, errors.New("db down")).Once()
			},
			expectedError: model.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)
			principal := validPrincipal()

			lobby, err := r.usecase.Create(r.ctx, principal)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, lobby.Room.Code, model.RoomCodeLen)
			assert.NotEqual(t, byte('0'), lobby.Room.Code[0])
			assert.Equal(t, principal.UserID, lobby.Room.HostID)
			assert.Equal(t, model.StatusWaiting, lobby.Room.Status)
			assert.Len(t, lobby.Players, 1)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestCreateRequiresPrincipal(t provider.T) {
	r := initResources(t)

	_, err := r.usecase.Create(r.ctx, model.Principal{})

	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func (suite *UsecaseRoomUnitSuite) TestJoin(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		status        model.RoomStatus
		setupMocks    func(r *resources, room model.Room, principal model.Principal)
		expectedError error
	}{
		{
			name:   "Should join waiting room",
			status: model.StatusWaiting,
			setupMocks: func(r *resources, room model.Room, principal model.Principal) {
				r.roomRepo.On("PlayerByUser", r.ctx, room.ID, principal.UserID).Return(model.Player{}, model.ErrNotFound).Once()
				r.roomRepo.On("AddPlayer", r.ctx, mock.MatchedBy(func(p model.Player) bool {
					return p.UserID == principal.UserID && p.RoomID == room.ID
				})).Return(model.Player{ID: uuid.New(), JoinSeq: 2}, nil).Once()
				r.roomRepo.On("PlayersByRoom", r.ctx, room.ID).Return([]model.Player{{}, {}}, nil).Once()
				r.notifier.On("Notify", r.ctx, room.ID, mock.MatchedBy(func(e model.Event) bool {
					return e.Type == model.EventLobbyUpdate
				})).Return(nil).Once()
			},
		},
		{
			name:   "Should return existing membership on rejoin",
			status: model.StatusInProgress,
			setupMocks: func(r *resources, room model.Room, principal model.Principal) {
				r.roomRepo.On("PlayerByUser", r.ctx, room.ID, principal.UserID).Return(model.Player{ID: uuid.New(), JoinSeq: 1}, nil).Once()
				r.roomRepo.On("PlayersByRoom", r.ctx, room.ID).Return([]model.Player{{}}, nil).Once()
				r.notifier.On("Notify", r.ctx, room.ID, mock.Anything).Return(errors.New("nobody listens")).Once()
			},
		},
		{
			name:   "Should refuse new player after start",
			status: model.StatusInProgress,
			setupMocks: func(r *resources, room model.Room, principal model.Principal) {
				r.roomRepo.On("PlayerByUser", r.ctx, room.ID, principal.UserID).Return(model.Player{}, model.ErrNotFound).Once()
			},
			expectedError: model.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			principal := validPrincipal()
			room := validRoom(uuid.New())
			room.Status = tc.status
			r.roomRepo.On("RoomByCode", r.ctx, room.Code).Return(room, nil).Once()
			tc.setupMocks(r, room, principal)

			lobby, err := r.usecase.Join(r.ctx, principal, " "+room.Code+" ")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, room.ID, lobby.Room.ID)
			assert.NotEqual(t, uuid.Nil, lobby.Player.ID)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestJoinUnknownCode(t provider.T) {
	r := initResources(t)
	r.roomRepo.On("RoomByCode", r.ctx, "000000").Return(model.Room{}, model.ErrNotFound).Once()

	_, err := r.usecase.Join(r.ctx, validPrincipal(), "000000")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func (suite *UsecaseRoomUnitSuite) TestStart(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		asHost        bool
		setupMocks    func(r *resources, room model.Room)
		expectedError error
	}{
		{
			name:   "Should start as host",
			asHost: true,
			setupMocks: func(r *resources, room model.Room) {
				r.turns.On("StartGame", r.ctx, room.ID).
					Return(model.TurnState{Status: model.StatusInProgress, Phase: model.AwaitingMove()}, nil).Once()
				r.notifier.On("Notify", r.ctx, room.ID, mock.MatchedBy(func(e model.Event) bool {
					return e.Type == model.EventGameStarted
				})).Return(nil).Once()
			},
		},
		{
			name:          "Should refuse non host",
			setupMocks:    func(r *resources, room model.Room) {},
			expectedError: model.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			principal := validPrincipal()
			hostID := uuid.New()
			if tc.asHost {
				hostID = principal.UserID
			}
			room := validRoom(hostID)
			r.roomRepo.On("RoomByID", r.ctx, room.ID).Return(room, nil).Once()
			tc.setupMocks(r, room)

			state, err := r.usecase.Start(r.ctx, principal, room.ID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.StatusInProgress, state.Status)
		})
	}
}

func (suite *UsecaseRoomUnitSuite) TestReset(t provider.T) {
	r := initResources(t)
	principal := validPrincipal()
	room := validRoom(principal.UserID)
	r.roomRepo.On("RoomByID", r.ctx, room.ID).Return(room, nil).Once()
	r.turns.On("ResetGame", r.ctx, room.ID).Return(model.TurnState{Status: model.StatusWaiting}, nil).Once()
	r.notifier.On("Notify", r.ctx, room.ID, mock.MatchedBy(func(e model.Event) bool {
		return e.Type == model.EventGameReset
	})).Return(nil).Once()

	state, err := r.usecase.Reset(r.ctx, principal, room.ID)

	require.NoError(t, err)
	assert.Equal(t, model.StatusWaiting, state.Status)
}

func (suite *UsecaseRoomUnitSuite) TestLeave(t provider.T) {
	t.Parallel()

	t.Run("Should close room when last player leaves", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		principal := validPrincipal()
		roomID := uuid.New()
		r.roomRepo.On("RemovePlayer", r.ctx, roomID, principal.UserID).Return(0, nil).Once()
		r.roomRepo.On("DeactivateRoom", r.ctx, roomID).Return(nil).Once()

		closed, err := r.usecase.Leave(r.ctx, principal, roomID)

		require.NoError(t, err)
		assert.True(t, closed)
	})

	t.Run("Should normalise turn when others remain", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		principal := validPrincipal()
		roomID := uuid.New()
		r.roomRepo.On("RemovePlayer", r.ctx, roomID, principal.UserID).Return(2, nil).Once()
		r.turns.On("PlayerLeft", r.ctx, roomID).Return(model.TurnState{}, nil).Once()
		r.roomRepo.On("PlayersByRoom", r.ctx, roomID).Return([]model.Player{{}, {}}, nil).Once()
		r.notifier.On("Notify", r.ctx, roomID, mock.Anything).Return(nil).Once()

		closed, err := r.usecase.Leave(r.ctx, principal, roomID)

		require.NoError(t, err)
		assert.False(t, closed)
	})

	t.Run("Should report unknown membership", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		principal := validPrincipal()
		roomID := uuid.New()
		r.roomRepo.On("RemovePlayer", r.ctx, roomID, principal.UserID).Return(0, model.ErrNotFound).Once()

		_, err := r.usecase.Leave(r.ctx, principal, roomID)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func (suite *UsecaseRoomUnitSuite) TestMembership(t provider.T) {
	r := initResources(t)
	principal := validPrincipal()
	roomID := uuid.New()
	r.roomRepo.On("PlayerByUser", r.ctx, roomID, principal.UserID).Return(model.Player{}, model.ErrNotFound).Once()

	_, err := r.usecase.Membership(r.ctx, principal, roomID)

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestUsecaseRoomUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}
