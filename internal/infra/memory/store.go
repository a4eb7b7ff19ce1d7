package infra_memory

import (
	"context"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

// Store keeps the whole game in process memory behind a single lock. It
// satisfies every repository the usecases need and is used for local runs
// and tests.
type Store struct {
	mu sync.Mutex

	rooms     map[uuid.UUID]model.Room
	players   map[uuid.UUID]model.Player
	joinSeq   int64
	questions []model.Question
	// room id -> question ids already asked
	asked     map[uuid.UUID]map[uuid.UUID]bool
	instances map[uuid.UUID]model.QuestionInstance
	attempts  map[uuid.UUID]model.AnswerAttempt
	// instance id -> player id -> attempt id
	byPlayer map[uuid.UUID]map[uuid.UUID]uuid.UUID
	// trigger ids already consumed by a turn transition
	claimed  map[uuid.UUID]bool
	catalog  []model.PowerUp
	powerups map[uuid.UUID][]model.PlayerPowerUp
	sessions map[string]session

	now  func() time.Time
	pick func(n int) int
}

type session struct {
	value   string
	expires time.Time
}

type Option func(*Store)

func WithQuestions(qs []model.Question) Option {
	return func(s *Store) {
		s.questions = qs
	}
}

func WithCatalog(c []model.PowerUp) Option {
	return func(s *Store) {
		s.catalog = c
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithPicker(pick func(n int) int) Option {
	return func(s *Store) {
		s.pick = pick
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		rooms:     make(map[uuid.UUID]model.Room),
		players:   make(map[uuid.UUID]model.Player),
		questions: DefaultQuestions(),
		asked:     make(map[uuid.UUID]map[uuid.UUID]bool),
		instances: make(map[uuid.UUID]model.QuestionInstance),
		attempts:  make(map[uuid.UUID]model.AnswerAttempt),
		byPlayer:  make(map[uuid.UUID]map[uuid.UUID]uuid.UUID),
		claimed:   make(map[uuid.UUID]bool),
		catalog:   DefaultCatalog(),
		powerups:  make(map[uuid.UUID][]model.PlayerPowerUp),
		sessions:  make(map[string]session),
		now:       time.Now,
		pick:      rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rooms and players

func (s *Store) CreateRoom(_ context.Context, room model.Room, host model.Player) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.Active && r.Code == room.Code {
			return model.Player{}, model.ErrCodeConflict
		}
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = s.now()
	}
	s.rooms[room.ID] = room
	return s.addPlayer(host), nil
}

func (s *Store) RoomByID(_ context.Context, roomID uuid.UUID) (model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return model.Room{}, model.ErrNotFound
	}
	return room, nil
}

func (s *Store) RoomByCode(_ context.Context, code string) (model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.Active && r.Code == code {
			return r, nil
		}
	}
	return model.Room{}, model.ErrNotFound
}

func (s *Store) DeactivateRoom(_ context.Context, roomID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return model.ErrNotFound
	}
	room.Active = false
	room.Version++
	s.rooms[roomID] = room
	return nil
}

func (s *Store) AddPlayer(_ context.Context, p model.Player) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[p.RoomID]; !ok {
		return model.Player{}, model.ErrNotFound
	}
	if existing, ok := s.playerByUser(p.RoomID, p.UserID); ok {
		return existing, nil
	}
	return s.addPlayer(p), nil
}

func (s *Store) addPlayer(p model.Player) model.Player {
	s.joinSeq++
	p.JoinSeq = s.joinSeq
	if p.JoinedAt.IsZero() {
		p.JoinedAt = s.now()
	}
	s.players[p.ID] = p
	return p
}

func (s *Store) PlayerByID(_ context.Context, playerID uuid.UUID) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return model.Player{}, model.ErrNotFound
	}
	return p, nil
}

func (s *Store) PlayerByUser(_ context.Context, roomID, userID uuid.UUID) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playerByUser(roomID, userID)
	if !ok {
		return model.Player{}, model.ErrNotFound
	}
	return p, nil
}

func (s *Store) playerByUser(roomID, userID uuid.UUID) (model.Player, bool) {
	for _, p := range s.players {
		if p.RoomID == roomID && p.UserID == userID {
			return p, true
		}
	}
	return model.Player{}, false
}

func (s *Store) PlayersByRoom(_ context.Context, roomID uuid.UUID) ([]model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.roomPlayers(roomID), nil
}

func (s *Store) roomPlayers(roomID uuid.UUID) []model.Player {
	out := make([]model.Player, 0)
	for _, p := range s.players {
		if p.RoomID == roomID {
			out = append(out, p)
		}
	}
	model.SortByJoinOrder(out)
	return out
}

func (s *Store) RemovePlayer(_ context.Context, roomID, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playerByUser(roomID, userID)
	if !ok {
		return 0, model.ErrNotFound
	}
	delete(s.players, p.ID)
	return len(s.roomPlayers(roomID)), nil
}

func (s *Store) UpdatePosition(_ context.Context, playerID uuid.UUID, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerID]
	if !ok {
		return model.ErrNotFound
	}
	p.Position = position
	s.players[playerID] = p
	return nil
}

// Turn state

func (s *Store) ApplyTurn(_ context.Context, tr model.TurnTransition) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.transition(tr)
	return ok, nil
}

func (s *Store) ResetRoom(_ context.Context, tr model.TurnTransition) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.transition(tr)
	if !ok {
		return false, nil
	}
	for id, p := range s.players {
		if p.RoomID == room.ID {
			p.Score, p.Position = 0, 0
			s.players[id] = p
		}
	}
	delete(s.asked, room.ID)
	return true, nil
}

// transition claims the trigger and applies the version guarded update.
// The caller holds the lock.
func (s *Store) transition(tr model.TurnTransition) (model.Room, bool) {
	room, ok := s.rooms[tr.RoomID]
	if !ok || room.Version != tr.ExpectedVersion {
		return model.Room{}, false
	}
	if tr.Trigger != uuid.Nil {
		if s.claimed[tr.Trigger] {
			return model.Room{}, false
		}
		s.claimed[tr.Trigger] = true
		if inst, ok := s.instances[tr.Trigger]; ok {
			inst.TurnAdvanced = true
			s.instances[tr.Trigger] = inst
		}
	}

	room.Status = tr.Next.Status
	room.CurrentRound = tr.Next.Round
	room.CurrentPlayerIndex = tr.Next.PlayerIndex
	room.Phase = tr.Next.Phase
	room.Version = tr.Next.Version
	s.rooms[room.ID] = room
	return room, true
}

// Questions

func (s *Store) PickQuestion(_ context.Context, roomID uuid.UUID, allowRepeat bool) (model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool := s.questions
	if !allowRepeat {
		pool = make([]model.Question, 0, len(s.questions))
		for _, q := range s.questions {
			if !s.asked[roomID][q.ID] {
				pool = append(pool, q)
			}
		}
	}
	if len(pool) == 0 {
		return model.Question{}, model.ErrNotFound
	}
	return pool[s.pick(len(pool))], nil
}

func (s *Store) CreateInstance(_ context.Context, inst model.QuestionInstance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.instances[inst.ID]; ok {
		return model.ErrCodeConflict
	}
	s.instances[inst.ID] = inst
	if s.asked[inst.RoomID] == nil {
		s.asked[inst.RoomID] = make(map[uuid.UUID]bool)
	}
	s.asked[inst.RoomID][inst.Question.ID] = true
	return nil
}

func (s *Store) InstanceByID(_ context.Context, instanceID uuid.UUID) (model.QuestionInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[instanceID]
	if !ok {
		return model.QuestionInstance{}, model.ErrNotFound
	}
	return inst, nil
}

// Attempts

func (s *Store) InsertAttempt(_ context.Context, a model.AnswerAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.instances[a.QuestionInstanceID]; !ok {
		return model.ErrNotFound
	}
	if _, ok := s.byPlayer[a.QuestionInstanceID][a.PlayerID]; ok {
		return model.ErrAlreadyAnswered
	}
	if s.byPlayer[a.QuestionInstanceID] == nil {
		s.byPlayer[a.QuestionInstanceID] = make(map[uuid.UUID]uuid.UUID)
	}
	s.byPlayer[a.QuestionInstanceID][a.PlayerID] = a.ID
	s.attempts[a.ID] = a
	return nil
}

func (s *Store) AttemptByPlayer(_ context.Context, instanceID, playerID uuid.UUID) (model.AnswerAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byPlayer[instanceID][playerID]
	if !ok {
		return model.AnswerAttempt{}, model.ErrNotFound
	}
	return s.attempts[id], nil
}

func (s *Store) CountAttempt(_ context.Context, attemptID uuid.UUID, score model.ScoreFunc) (model.AnswerCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptID]
	if !ok {
		return model.AnswerCount{}, model.ErrNotFound
	}
	inst, ok := s.instances[a.QuestionInstanceID]
	if !ok {
		return model.AnswerCount{}, model.ErrNotFound
	}
	count := model.AnswerCount{
		Rank:     a.Rank,
		Points:   a.Points,
		Answered: inst.PlayersAnswered,
		Total:    inst.TotalEligible,
	}
	if a.Ranked() {
		return count, nil
	}

	inst.PlayersAnswered++
	inst.AllAnswered = inst.PlayersAnswered >= inst.TotalEligible
	a.Rank = inst.PlayersAnswered
	a.Points = score(a.Rank)
	s.instances[inst.ID] = inst
	s.attempts[a.ID] = a

	if p, ok := s.players[a.PlayerID]; ok {
		p.Score += a.Points
		s.players[p.ID] = p
	}

	count.Rank = a.Rank
	count.Points = a.Points
	count.Answered = inst.PlayersAnswered
	count.Assigned = true
	return count, nil
}

// Powerups

func (s *Store) Catalog(context.Context) ([]model.PowerUp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.catalog), nil
}

func (s *Store) Inventory(_ context.Context, playerID uuid.UUID) ([]model.PlayerPowerUp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.powerups[playerID]), nil
}

func (s *Store) GrantPowerUp(_ context.Context, pp model.PlayerPowerUp, limit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unused := 0
	for _, held := range s.powerups[pp.PlayerID] {
		if !held.Used {
			unused++
		}
	}
	if unused >= limit {
		return model.ErrInventoryFull
	}
	s.powerups[pp.PlayerID] = append(s.powerups[pp.PlayerID], pp)
	return nil
}

func (s *Store) ConsumePowerUps(_ context.Context, playerID, attemptID uuid.UUID, ids []uuid.UUID, at time.Time) ([]model.PlayerPowerUp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := s.powerups[playerID]
	var spent []model.PlayerPowerUp
	for i := range held {
		if !held[i].Used && slices.Contains(ids, held[i].ID) {
			used, bound := at, attemptID
			held[i].Used = true
			held[i].UsedAt = &used
			held[i].AttemptID = &bound
		}
		if held[i].AttemptID != nil && *held[i].AttemptID == attemptID {
			spent = append(spent, held[i])
		}
	}
	return spent, nil
}

// Sessions

func (s *Store) Set(key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[key] = session{value: value, expires: s.now().Add(ttl)}
	return nil
}

// Get returns an empty value for unknown or expired keys.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok {
		return "", nil
	}
	if !s.now().Before(sess.expires) {
		delete(s.sessions, key)
		return "", nil
	}
	return sess.value, nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, key)
	return nil
}
