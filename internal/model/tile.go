package model

import (
	"encoding/json"
	"fmt"
)

type TileKind = string

const (
	TileQuestion TileKind = "question"
	TilePowerUp  TileKind = "powerup"
)

// Tile is the payload encoded on a printed board tile.
type Tile struct {
	Position    int      `json:"position"`
	Kind        TileKind `json:"type"`
	Description string   `json:"description,omitempty"`
}

// ParseTile decodes a scanned tile payload. Printed tiles carry the kind under
// "type"; "kind" is accepted as well.
func ParseTile(raw []byte) (Tile, error) {
	var payload struct {
		Position *int   `json:"position"`
		Type     string `json:"type"`
		Kind     string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Tile{}, fmt.Errorf("%w: %w", ErrInvalidTile, err)
	}
	kind := payload.Type
	if kind == "" {
		kind = payload.Kind
	}
	return NewTile(payload.Position, kind)
}

func NewTile(position *int, kind string) (Tile, error) {
	if position == nil || *position < 1 || *position > BoardSize {
		return Tile{}, fmt.Errorf("%w: no usable position", ErrInvalidTile)
	}
	switch kind {
	case TileQuestion, TilePowerUp:
	case "":
		kind = KindAt(*position)
	default:
		return Tile{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidTile, kind)
	}
	return Tile{Position: *position, Kind: kind}, nil
}

// KindAt is the fixed layout of the printed board.
func KindAt(position int) TileKind {
	if (position*12345)%100 > 50 {
		return TileQuestion
	}
	return TilePowerUp
}

// BoardTile is the tile printed at position.
func BoardTile(position int) Tile {
	kind := KindAt(position)
	label := "Question"
	if kind == TilePowerUp {
		label = "Powerup"
	}
	return Tile{
		Position:    position,
		Kind:        kind,
		Description: fmt.Sprintf("%s Tile %d", label, position),
	}
}

// Payload is the JSON encoded into the tile's QR code.
func (t Tile) Payload() ([]byte, error) {
	return json.Marshal(t)
}
