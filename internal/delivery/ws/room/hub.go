package ws_room

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	RoomID uuid.UUID
	UserID uuid.UUID
}

func NewClient(conn *websocket.Conn, roomID, userID uuid.UUID) *Client {
	return &Client{
		Conn:   conn,
		Send:   make(chan []byte, sendBuffer),
		RoomID: roomID,
		UserID: userID,
	}
}

type Hub struct {
	mu sync.Mutex

	// Keep track of sets of Clients within each room
	rooms map[uuid.UUID]map[*Client]bool

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		rooms:  make(map[uuid.UUID]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.RoomID]; !ok {
		h.rooms[client.RoomID] = make(map[*Client]bool)
	}
	h.rooms[client.RoomID][client] = true

	h.logger.Info("client registered", "room_id", client.RoomID, "user_id", client.UserID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.drop(client) {
		h.logger.Info("client unregistered", "room_id", client.RoomID, "user_id", client.UserID)
	}
}

// drop closes Send at most once. Callers hold mu.
func (h *Hub) drop(client *Client) bool {
	room, ok := h.rooms[client.RoomID]
	if !ok || !room[client] {
		return false
	}
	delete(room, client)
	close(client.Send)
	if len(room) == 0 {
		delete(h.rooms, client.RoomID)
	}
	return true
}

// Notify delivers to the clients connected to this instance.
func (h *Hub) Notify(_ context.Context, roomID uuid.UUID, event model.Event) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	h.Broadcast(roomID, raw)
	return nil
}

// Broadcast disconnects clients whose send buffer is full.
func (h *Hub) Broadcast(roomID uuid.UUID, message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[roomID] {
		select {
		case client.Send <- message:
		default:
			h.logger.Warn("dropping slow client", "room_id", roomID, "user_id", client.UserID)
			h.drop(client)
		}
	}
}

func (h *Hub) Clients(roomID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomID])
}

// StartClientReading only services control frames; clients talk over HTTP.
func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(512)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket closed", "room_id", client.RoomID, "err", err)
			}
			return
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
