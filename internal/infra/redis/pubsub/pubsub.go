package infra_redis_pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

// Client is the part of *redis.Client the fan-out needs.
type Client interface {
	Publish(channel string, message interface{}) *redis.IntCmd
	Subscribe(channels ...string) *redis.PubSub
}

// Envelope is what travels over the channel: the room and the already
// encoded event, so subscribers forward the bytes untouched.
type Envelope struct {
	RoomID uuid.UUID       `json:"room_id"`
	Event  json.RawMessage `json:"event"`
}

// DeliverFunc hands an event to the websocket clients of this instance.
type DeliverFunc func(roomID uuid.UUID, event []byte)

// Fanout publishes room events to every instance. Each instance, the
// publisher included, delivers them locally from Run.
type Fanout struct {
	client  Client
	channel string
	logger  *slog.Logger
}

func New(client Client, channel string) *Fanout {
	return &Fanout{
		client:  client,
		channel: channel,
		logger:  slog.Default(),
	}
}

func (f *Fanout) Notify(ctx context.Context, roomID uuid.UUID, event model.Event) error {
	msg, err := Encode(roomID, event)
	if err != nil {
		return err
	}
	if err := f.client.Publish(f.channel, msg).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Run blocks until ctx is done or the subscription is closed.
func (f *Fanout) Run(ctx context.Context, deliver DeliverFunc) error {
	sub := f.client.Subscribe(f.channel)
	defer sub.Close()

	if _, err := sub.Receive(); err != nil {
		return fmt.Errorf("subscribe %s: %w", f.channel, err)
	}
	f.logger.Info("subscribed", "channel", f.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			f.dispatch([]byte(msg.Payload), deliver)
		}
	}
}

func (f *Fanout) dispatch(payload []byte, deliver DeliverFunc) {
	env, err := Decode(payload)
	if err != nil {
		f.logger.Warn("dropping malformed event", "channel", f.channel, "err", err)
		return
	}
	deliver(env.RoomID, env.Event)
}

func Encode(roomID uuid.UUID, event model.Event) ([]byte, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event.Type, err)
	}
	return json.Marshal(Envelope{RoomID: roomID, Event: raw})
}

func Decode(payload []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Envelope{}, err
	}
	if env.RoomID == uuid.Nil || len(env.Event) == 0 {
		return Envelope{}, fmt.Errorf("envelope without room or event")
	}
	return env, nil
}
