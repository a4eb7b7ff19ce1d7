package usecase_room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

//go:generate mockery --name=RoomRepository --output=./mocks/repository --filename=repository.go
type RoomRepository interface {
	// Inserts the room and its host as the first player. Returns
	// model.ErrCodeConflict when an active room already uses the code.
	CreateRoom(ctx context.Context, room model.Room, host model.Player) (model.Player, error)
	RoomByID(ctx context.Context, roomID uuid.UUID) (model.Room, error)
	// Only active rooms are matched.
	RoomByCode(ctx context.Context, code string) (model.Room, error)
	// Assigns JoinSeq. Returns the existing membership if the user already joined.
	AddPlayer(ctx context.Context, p model.Player) (model.Player, error)
	PlayerByUser(ctx context.Context, roomID, userID uuid.UUID) (model.Player, error)
	PlayersByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Player, error)
	// Returns how many players are left.
	RemovePlayer(ctx context.Context, roomID, userID uuid.UUID) (int, error)
	DeactivateRoom(ctx context.Context, roomID uuid.UUID) error
}

//go:generate mockery --name=TurnController --output=./mocks/turn --filename=turn.go
type TurnController interface {
	StartGame(ctx context.Context, roomID uuid.UUID) (model.TurnState, error)
	ResetGame(ctx context.Context, roomID uuid.UUID) (model.TurnState, error)
	PlayerLeft(ctx context.Context, roomID uuid.UUID) (model.TurnState, error)
}

//go:generate mockery --name=Notifier --output=./mocks/notifier --filename=notifier.go
type Notifier interface {
	Notify(ctx context.Context, roomID uuid.UUID, event model.Event) error
}

type Usecase struct {
	RoomRepository RoomRepository
	Turns          TurnController
	Notifier       Notifier

	logger *slog.Logger
	now    func() time.Time
}

func New(
	RoomRepository RoomRepository,
	Turns TurnController,
	Notifier Notifier,
) *Usecase {
	return &Usecase{
		RoomRepository: RoomRepository,
		Turns:          Turns,
		Notifier:       Notifier,
		logger:         slog.Default(),
		now:            time.Now,
	}
}

type Lobby struct {
	Room    model.Room
	Player  model.Player
	Players []model.Player
}

// Create opens a waiting room hosted by the caller, who joins as the first player.
func (u *Usecase) Create(ctx context.Context, principal model.Principal) (Lobby, error) {
	if !principal.Valid() {
		return Lobby{}, model.ErrUnauthorized
	}
	room, host, err := u.createRoomLobby(ctx, principal.UserID)
	if err != nil {
		return Lobby{}, err
	}
	return Lobby{Room: room, Player: host, Players: []model.Player{host}}, nil
}

// Assuming that codes can conflict.
// Retrying...
func (u *Usecase) createRoomLobby(ctx context.Context, hostID uuid.UUID) (model.Room, model.Player, error) {
	var retries = 3
	for retries > 0 {
		now := u.now()
		room := model.Room{
			ID:        uuid.New(),
			Code:      u.buildRoomCode(),
			HostID:    hostID,
			Active:    true,
			Status:    model.StatusWaiting,
			Phase:     model.AwaitingMove(),
			CreatedAt: now,
		}
		host, err := u.RoomRepository.CreateRoom(ctx, room, model.Player{
			ID:       uuid.New(),
			RoomID:   room.ID,
			UserID:   hostID,
			JoinedAt: now,
		})
		if err != nil {
			if errors.Is(err, model.ErrCodeConflict) {
				retries--
				continue
			}
			return model.Room{}, model.Player{}, errors.Join(model.ErrInternal, err)
		}
		return room, host, nil
	}
	return model.Room{}, model.Player{}, model.ErrRoomsUnavailable
}

func (u *Usecase) buildRoomCode() string {
	var builder strings.Builder
	builder.Grow(model.RoomCodeLen)

	// No leading zero so the code reads as a 6-digit number.
	builder.WriteByte(byte(rand.Intn(9)) + '1')
	for range model.RoomCodeLen - 1 {
		builder.WriteByte(byte(rand.Intn(10)) + '0')
	}

	return builder.String()
}

// Join adds the caller to a waiting room. Joining twice returns the
// existing membership.
func (u *Usecase) Join(ctx context.Context, principal model.Principal, code string) (Lobby, error) {
	if !principal.Valid() {
		return Lobby{}, model.ErrUnauthorized
	}
	room, err := u.RoomRepository.RoomByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return Lobby{}, wrap(err)
	}

	player, err := u.RoomRepository.PlayerByUser(ctx, room.ID, principal.UserID)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrNotFound):
		if room.Status != model.StatusWaiting {
			return Lobby{}, fmt.Errorf("%w: game already started", model.ErrForbidden)
		}
		player, err = u.RoomRepository.AddPlayer(ctx, model.Player{
			ID:       uuid.New(),
			RoomID:   room.ID,
			UserID:   principal.UserID,
			JoinedAt: u.now(),
		})
		if err != nil {
			return Lobby{}, wrap(err)
		}
	default:
		return Lobby{}, wrap(err)
	}

	players, err := u.RoomRepository.PlayersByRoom(ctx, room.ID)
	if err != nil {
		return Lobby{}, wrap(err)
	}
	u.notify(ctx, room.ID, model.EventLobbyUpdate, map[string]any{"players": players})
	return Lobby{Room: room, Player: player, Players: players}, nil
}

// Start is host only.
func (u *Usecase) Start(ctx context.Context, principal model.Principal, roomID uuid.UUID) (model.TurnState, error) {
	if _, err := u.hostedRoom(ctx, principal, roomID); err != nil {
		return model.TurnState{}, err
	}
	state, err := u.Turns.StartGame(ctx, roomID)
	if err != nil {
		return model.TurnState{}, err
	}
	u.notify(ctx, roomID, model.EventGameStarted, state)
	return state, nil
}

// Reset is host only.
func (u *Usecase) Reset(ctx context.Context, principal model.Principal, roomID uuid.UUID) (model.TurnState, error) {
	if _, err := u.hostedRoom(ctx, principal, roomID); err != nil {
		return model.TurnState{}, err
	}
	state, err := u.Turns.ResetGame(ctx, roomID)
	if err != nil {
		return model.TurnState{}, err
	}
	u.notify(ctx, roomID, model.EventGameReset, state)
	return state, nil
}

// Leave removes the caller from the room. The last player out closes it.
func (u *Usecase) Leave(ctx context.Context, principal model.Principal, roomID uuid.UUID) (closed bool, err error) {
	if !principal.Valid() {
		return false, model.ErrUnauthorized
	}
	remaining, err := u.RoomRepository.RemovePlayer(ctx, roomID, principal.UserID)
	if err != nil {
		return false, wrap(err)
	}

	if remaining == 0 {
		if err := u.RoomRepository.DeactivateRoom(ctx, roomID); err != nil {
			// Membership is already gone.
			u.logger.Error("failed to deactivate empty room", "room_id", roomID, "err", err)
		}
		return true, nil
	}

	if _, err := u.Turns.PlayerLeft(ctx, roomID); err != nil {
		u.logger.Error("failed to normalise turn after leave", "room_id", roomID, "err", err)
	}
	players, err := u.RoomRepository.PlayersByRoom(ctx, roomID)
	if err == nil {
		u.notify(ctx, roomID, model.EventLobbyUpdate, map[string]any{"players": players})
	}
	return false, nil
}

// Membership returns the caller's player in the room.
func (u *Usecase) Membership(ctx context.Context, principal model.Principal, roomID uuid.UUID) (model.Player, error) {
	if !principal.Valid() {
		return model.Player{}, model.ErrUnauthorized
	}
	player, err := u.RoomRepository.PlayerByUser(ctx, roomID, principal.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Player{}, fmt.Errorf("%w: not a member of room %s", model.ErrForbidden, roomID)
		}
		return model.Player{}, wrap(err)
	}
	return player, nil
}

func (u *Usecase) hostedRoom(ctx context.Context, principal model.Principal, roomID uuid.UUID) (model.Room, error) {
	if !principal.Valid() {
		return model.Room{}, model.ErrUnauthorized
	}
	room, err := u.RoomRepository.RoomByID(ctx, roomID)
	if err != nil {
		return model.Room{}, wrap(err)
	}
	if !room.IsHost(principal.UserID) {
		return model.Room{}, fmt.Errorf("%w: only the host can do that", model.ErrForbidden)
	}
	return room, nil
}

func (u *Usecase) notify(ctx context.Context, roomID uuid.UUID, t model.EventType, payload any) {
	if u.Notifier == nil {
		return
	}
	if err := u.Notifier.Notify(ctx, roomID, model.NewEvent(t, payload)); err != nil {
		u.logger.Warn("notify failed", "room_id", roomID, "event", t, "err", err)
	}
}

func wrap(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	return errors.Join(model.ErrInternal, err)
}
