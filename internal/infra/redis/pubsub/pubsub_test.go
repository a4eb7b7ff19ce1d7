package infra_redis_pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	channel string
	sent    []byte
	err     error
}

func (c *fakeClient) Publish(channel string, message interface{}) *redis.IntCmd {
	c.channel = channel
	c.sent, _ = message.([]byte)
	if c.err != nil {
		return redis.NewIntResult(0, c.err)
	}
	return redis.NewIntResult(1, nil)
}

func (c *fakeClient) Subscribe(channels ...string) *redis.PubSub {
	panic("not used")
}

type PubSubSuite struct {
	suite.Suite
}

func (s *PubSubSuite) TestNotifyPublishesEnvelope(t provider.T) {
	t.Parallel()
	client := &fakeClient{}
	fanout := New(client, "flowquest:events")
	roomID := uuid.New()

	err := fanout.Notify(context.Background(), roomID, model.NewEvent(model.EventTurnAdvanced, model.TurnState{Round: 2}))
	require.NoError(t, err)
	assert.Equal(t, "flowquest:events", client.channel)

	env, err := Decode(client.sent)
	require.NoError(t, err)
	assert.Equal(t, roomID, env.RoomID)

	var event struct {
		Type    string          `json:"type"`
		Payload model.TurnState `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(env.Event, &event))
	assert.Equal(t, model.EventTurnAdvanced, event.Type)
	assert.Equal(t, 2, event.Payload.Round)
}

func (s *PubSubSuite) TestNotifyPropagatesPublishError(t provider.T) {
	t.Parallel()
	down := errors.New("connection refused")
	fanout := New(&fakeClient{err: down}, "events")

	err := fanout.Notify(context.Background(), uuid.New(), model.NewEvent(model.EventGameReset, nil))
	assert.ErrorIs(t, err, down)
}

func (s *PubSubSuite) TestDispatch(t provider.T) {
	t.Parallel()
	fanout := New(&fakeClient{}, "events")
	roomID := uuid.New()
	good, err := Encode(roomID, model.NewEvent(model.EventLobbyUpdate, map[string]int{"players": 3}))
	require.NoError(t, err)

	var got []uuid.UUID
	deliver := func(id uuid.UUID, event []byte) {
		got = append(got, id)
		assert.Contains(t, string(event), model.EventLobbyUpdate)
	}

	fanout.dispatch(good, deliver)
	fanout.dispatch([]byte("not json"), deliver)
	fanout.dispatch([]byte(`{"room_id":"00000000-0000-0000-0000-000000000000","event":{}}`), deliver)

	assert.Equal(t, []uuid.UUID{roomID}, got)
}

func TestPubSubSuite(t *testing.T) {
	suite.RunSuite(t, new(PubSubSuite))
}
