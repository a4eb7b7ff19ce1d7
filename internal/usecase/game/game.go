package usecase_game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	usecase_ledger "github.com/humanbelnik/flowquest/core/internal/usecase/ledger"
)

//go:generate mockery --name=GameRepository --output=./mocks/repository --filename=repository.go
type GameRepository interface {
	RoomByID(ctx context.Context, roomID uuid.UUID) (model.Room, error)
	PlayerByID(ctx context.Context, playerID uuid.UUID) (model.Player, error)
	PlayerByUser(ctx context.Context, roomID, userID uuid.UUID) (model.Player, error)
	// Players in join order.
	PlayersByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Player, error)
	UpdatePosition(ctx context.Context, playerID uuid.UUID, position int) error
}

//go:generate mockery --name=QuestionRepository --output=./mocks/question --filename=question.go
type QuestionRepository interface {
	// Random question. Unless allowRepeat is set, questions already asked in
	// the room are skipped and model.ErrNotFound means the pool is exhausted.
	PickQuestion(ctx context.Context, roomID uuid.UUID, allowRepeat bool) (model.Question, error)
	CreateInstance(ctx context.Context, inst model.QuestionInstance) error
	InstanceByID(ctx context.Context, instanceID uuid.UUID) (model.QuestionInstance, error)
}

//go:generate mockery --name=Ledger --output=./mocks/ledger --filename=ledger.go
type Ledger interface {
	Record(ctx context.Context, sub usecase_ledger.Submission) (model.AnswerAttempt, error)
	Count(ctx context.Context, attempt model.AnswerAttempt, score model.ScoreFunc) (model.Receipt, error)
	HasAnswered(ctx context.Context, instanceID, playerID uuid.UUID) (bool, error)
}

//go:generate mockery --name=PowerUps --output=./mocks/powerup --filename=powerup.go
type PowerUps interface {
	Grant(ctx context.Context, playerID uuid.UUID) (model.PlayerPowerUp, error)
	List(ctx context.Context, playerID uuid.UUID, includeUsed bool) ([]model.PlayerPowerUp, error)
	Validate(ctx context.Context, playerID uuid.UUID, ids []uuid.UUID) (model.Modifiers, error)
	Consume(ctx context.Context, playerID, attemptID uuid.UUID, ids []uuid.UUID) (model.Modifiers, error)
	Take(ctx context.Context, playerID, powerupID uuid.UUID, kind model.PowerUpKind) (model.PlayerPowerUp, error)
}

//go:generate mockery --name=Turns --output=./mocks/turn --filename=turn.go
type Turns interface {
	AdvanceTurn(ctx context.Context, roomID, trigger uuid.UUID) (model.TurnResult, error)
	AdvanceAt(ctx context.Context, roomID uuid.UUID, expectedVersion int64) (model.TurnResult, error)
	BeginQuestion(ctx context.Context, roomID, instanceID uuid.UUID, expectedVersion int64) (model.TurnState, error)
}

//go:generate mockery --name=Notifier --output=./mocks/notifier --filename=notifier.go
type Notifier interface {
	Notify(ctx context.Context, roomID uuid.UUID, event model.Event) error
}

type Metrics interface {
	Move(result string)
	Answer(outcome string)
	NotifyFailure()
}

type Usecase struct {
	repo      GameRepository
	questions QuestionRepository
	ledger    Ledger
	powerups  PowerUps
	turns     Turns
	notifier  Notifier
	metrics   Metrics

	logger *slog.Logger
	now    func() time.Time
	pick   func(n int) int
}

type Option func(*Usecase)

func WithMetrics(m Metrics) Option {
	return func(u *Usecase) {
		u.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = l
	}
}

func New(
	repo GameRepository,
	questions QuestionRepository,
	ledger Ledger,
	powerups PowerUps,
	turns Turns,
	notifier Notifier,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		repo:      repo,
		questions: questions,
		ledger:    ledger,
		powerups:  powerups,
		turns:     turns,
		notifier:  notifier,
		logger:    slog.Default(),
		now:       time.Now,
		pick:      randIntn,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// owned loads the player and checks it belongs to the caller.
func (u *Usecase) owned(ctx context.Context, principal model.Principal, playerID uuid.UUID) (model.Player, error) {
	if !principal.Valid() {
		return model.Player{}, model.ErrUnauthorized
	}
	player, err := u.repo.PlayerByID(ctx, playerID)
	if err != nil {
		return model.Player{}, wrap(err)
	}
	if player.UserID != principal.UserID {
		return model.Player{}, model.ErrForbidden
	}
	return player, nil
}

func (u *Usecase) room(ctx context.Context, roomID uuid.UUID) (model.Room, error) {
	room, err := u.repo.RoomByID(ctx, roomID)
	if err != nil {
		return model.Room{}, wrap(err)
	}
	return room, nil
}

func inProgress(room model.Room) error {
	switch room.Status {
	case model.StatusInProgress:
		return nil
	case model.StatusCompleted:
		return model.ErrGameAlreadyCompleted
	default:
		return model.ErrGameNotStarted
	}
}

func (u *Usecase) notify(ctx context.Context, roomID uuid.UUID, t model.EventType, payload any) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, roomID, model.NewEvent(t, payload)); err != nil {
		if u.metrics != nil {
			u.metrics.NotifyFailure()
		}
		u.logger.Warn("notify failed", "room_id", roomID, "event", t, "err", err)
	}
}

// notifyTurn publishes the outcome of a turn transition.
func (u *Usecase) notifyTurn(ctx context.Context, roomID uuid.UUID, res model.TurnResult) {
	if !res.Advanced {
		return
	}
	if res.Completed {
		u.notify(ctx, roomID, model.EventGameCompleted, GameOver{Winner: res.Winner, Standings: res.Standings})
		return
	}
	u.notify(ctx, roomID, model.EventTurnAdvanced, res.State)
}

func wrap(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	return errors.Join(model.ErrInternal, err)
}
