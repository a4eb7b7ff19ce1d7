package model

import "time"

type EventType = string

const (
	EventLobbyUpdate    EventType = "LOBBY_UPDATE"
	EventGameStarted    EventType = "GAME_STARTED"
	EventPlayerMoved    EventType = "PLAYER_MOVED"
	EventPowerUpGranted EventType = "POWERUP_GRANTED"
	EventQuestionAsked  EventType = "QUESTION_ASKED"
	EventAnswerRecorded EventType = "ANSWER_RECORDED"
	EventTurnAdvanced   EventType = "TURN_ADVANCED"
	EventGameCompleted  EventType = "GAME_COMPLETED"
	EventGameReset      EventType = "GAME_RESET"
	EventError          EventType = "ERROR"
)

type Event struct {
	Type      EventType `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp int64     `json:"timestamp"`
}

func NewEvent(t EventType, payload any) Event {
	return Event{
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}
