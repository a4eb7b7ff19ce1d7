package usecase_ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

//go:generate mockery --name=AttemptRepository --output=./mocks/repository --filename=repository.go
type AttemptRepository interface {
	// Returns model.ErrAlreadyAnswered when the (instance, player) pair exists.
	InsertAttempt(ctx context.Context, a model.AnswerAttempt) error
	AttemptByPlayer(ctx context.Context, instanceID, playerID uuid.UUID) (model.AnswerAttempt, error)
	// Atomically increments the instance counter, ranks the attempt with the
	// new count, prices it with score and adds the points to the player.
	// An already ranked attempt is returned untouched with Assigned=false.
	CountAttempt(ctx context.Context, attemptID uuid.UUID, score model.ScoreFunc) (model.AnswerCount, error)
}

type Metrics interface {
	LedgerRetry()
}

type Submission struct {
	Instance  model.QuestionInstance
	PlayerID  uuid.UUID
	Answer    string
	TimeTaken float64
	// Seconds granted by extra_time powerups on top of the instance limit.
	ExtraTime int
	Skipped   bool
}

type Ledger struct {
	repo    AttemptRepository
	metrics Metrics
	logger  *slog.Logger

	retries int
	backoff time.Duration
	grace   time.Duration
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
}

type Option func(*Ledger)

func WithRetries(n int, backoff time.Duration) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.retries = n
		}
		if backoff > 0 {
			l.backoff = backoff
		}
	}
}

func WithGrace(grace time.Duration) Option {
	return func(l *Ledger) {
		if grace >= 0 {
			l.grace = grace
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func WithMetrics(m Metrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

func New(repo AttemptRepository, opts ...Option) *Ledger {
	l := &Ledger{
		repo:    repo,
		logger:  slog.Default(),
		retries: 3,
		backoff: 20 * time.Millisecond,
		grace:   5 * time.Second,
		now:     time.Now,
		sleep:   sleepCtx,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordAnswer is Record followed by Count.
func (l *Ledger) RecordAnswer(ctx context.Context, sub Submission, score func(model.AnswerAttempt, int) int) (model.Receipt, error) {
	attempt, err := l.Record(ctx, sub)
	if err != nil {
		return model.Receipt{}, err
	}
	return l.Count(ctx, attempt, func(rank int) int { return score(attempt, rank) })
}

// Record stores the attempt once per (question instance, player). An attempt
// left unranked by an interrupted earlier call is returned as is so the
// caller can finish counting it.
func (l *Ledger) Record(ctx context.Context, sub Submission) (model.AnswerAttempt, error) {
	existing, err := l.existing(ctx, sub.Instance.ID, sub.PlayerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.AnswerAttempt{}, err
	}

	attempt := l.evaluate(sub)
	err = l.retry(ctx, "insert attempt", func() error {
		return l.repo.InsertAttempt(ctx, attempt)
	})
	switch {
	case err == nil:
		return attempt, nil
	case errors.Is(err, model.ErrAlreadyAnswered):
		// Lost an insert race against the same player.
		return l.existing(ctx, sub.Instance.ID, sub.PlayerID)
	default:
		return model.AnswerAttempt{}, err
	}
}

// Count runs the counting step for a recorded attempt. Only the call that
// assigns the rank gets a receipt; replays get ErrAlreadyAnswered.
func (l *Ledger) Count(ctx context.Context, attempt model.AnswerAttempt, score model.ScoreFunc) (model.Receipt, error) {
	var count model.AnswerCount
	err := l.retry(ctx, "count attempt", func() error {
		var err error
		count, err = l.repo.CountAttempt(ctx, attempt.ID, score)
		return err
	})
	if err != nil {
		return model.Receipt{}, err
	}
	if !count.Assigned {
		return model.Receipt{}, model.ErrAlreadyAnswered
	}

	attempt.Rank = count.Rank
	attempt.Points = count.Points
	return model.Receipt{
		Attempt:     attempt,
		Answered:    count.Answered,
		Total:       count.Total,
		AllAnswered: count.Answered >= count.Total,
		Completed:   count.Answered == count.Total,
	}, nil
}

func (l *Ledger) HasAnswered(ctx context.Context, instanceID, playerID uuid.UUID) (bool, error) {
	attempt, err := l.repo.AttemptByPlayer(ctx, instanceID, playerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, errors.Join(model.ErrInternal, err)
	}
	return attempt.Ranked(), nil
}

func (l *Ledger) existing(ctx context.Context, instanceID, playerID uuid.UUID) (model.AnswerAttempt, error) {
	attempt, err := l.repo.AttemptByPlayer(ctx, instanceID, playerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.AnswerAttempt{}, model.ErrNotFound
		}
		return model.AnswerAttempt{}, errors.Join(model.ErrInternal, err)
	}
	if attempt.Ranked() {
		return model.AnswerAttempt{}, model.ErrAlreadyAnswered
	}
	return attempt, nil
}

// evaluate grades the answer against server time. Reported time is trusted
// only inside the window; past limit+grace the answer counts as a timeout.
func (l *Ledger) evaluate(sub Submission) model.AnswerAttempt {
	inst := sub.Instance
	limit := float64(inst.TimeLimit + sub.ExtraTime)
	taken := math.Min(math.Max(sub.TimeTaken, 0), limit)

	answer := strings.TrimSpace(sub.Answer)
	timedOut := answer == ""
	if !inst.AskedAt.IsZero() {
		elapsed := l.now().Sub(inst.AskedAt)
		if elapsed > time.Duration(limit*float64(time.Second))+l.grace {
			timedOut = true
			taken = limit
		}
	}

	return model.AnswerAttempt{
		ID:                 uuid.New(),
		QuestionInstanceID: inst.ID,
		PlayerID:           sub.PlayerID,
		Answer:             answer,
		IsCorrect:          !timedOut && answerMatches(answer, inst.Question.CorrectAnswer),
		TimedOut:           timedOut,
		Skipped:            sub.Skipped,
		TimeTaken:          taken,
		CreatedAt:          l.now(),
	}
}

func answerMatches(given, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(correct))
}

func (l *Ledger) retry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= l.retries; attempt++ {
		if err = fn(); err == nil || !errors.Is(err, model.ErrTransient) {
			return err
		}
		if l.metrics != nil {
			l.metrics.LedgerRetry()
		}
		l.logger.Warn("transient ledger failure", "op", op, "attempt", attempt, "err", err)
		if attempt == l.retries {
			break
		}
		if serr := l.sleep(ctx, l.jitter()); serr != nil {
			return errors.Join(model.ErrConcurrencyConflict, serr)
		}
	}
	return fmt.Errorf("%w: %s gave up after %d attempts: %w", model.ErrConcurrencyConflict, op, l.retries, err)
}

// jitter picks a delay in [backoff, 3*backoff).
func (l *Ledger) jitter() time.Duration {
	return l.backoff + time.Duration(rand.Int63n(int64(2*l.backoff)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
