package model

import (
	"time"

	"github.com/google/uuid"
)

type PowerUpKind = string

const (
	PowerUpExtraTime    PowerUpKind = "extra_time"
	PowerUpSkipQuestion PowerUpKind = "skip_question"
	PowerUpDoublePoints PowerUpKind = "double_points"
	PowerUpHint         PowerUpKind = "hint"
	PowerUpShield       PowerUpKind = "shield"
)

const InventoryCap = 3

type PowerUp struct {
	ID          uuid.UUID   `json:"id"`
	Kind        PowerUpKind `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	EffectValue int         `json:"effect_value"`
}

type PlayerPowerUp struct {
	ID       uuid.UUID `json:"id"`
	PlayerID uuid.UUID `json:"player_id"`
	PowerUp  PowerUp   `json:"powerup"`
	Used     bool      `json:"used"`
	// Attempt the powerup was spent on.
	AttemptID  *uuid.UUID `json:"-"`
	ObtainedAt time.Time  `json:"obtained_at"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
}

// Modifiers alter how a single answer is scored.
type Modifiers struct {
	DoublePoints bool `json:"double_points"`
	Shield       bool `json:"shield"`
	Skip         bool `json:"skip"`
	Hint         bool `json:"hint"`
	// Seconds added to the question time limit.
	ExtraTime int `json:"extra_time"`
}

func ModifiersOf(used []PlayerPowerUp) Modifiers {
	var m Modifiers
	for _, pp := range used {
		switch pp.PowerUp.Kind {
		case PowerUpDoublePoints:
			m.DoublePoints = true
		case PowerUpShield:
			m.Shield = true
		case PowerUpSkipQuestion:
			m.Skip = true
		case PowerUpHint:
			m.Hint = true
		case PowerUpExtraTime:
			m.ExtraTime += pp.PowerUp.EffectValue
		}
	}
	return m
}
