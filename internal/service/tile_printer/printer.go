package tile_printer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/skip2/go-qrcode"
)

// Printed tiles are scanned by phone cameras off a table, so they use the
// highest error correction level.
const DefaultSize = 500

func PNG(tile model.Tile, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	payload, err := tile.Payload()
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(payload), qrcode.Highest, size)
}

func FileName(tile model.Tile) string {
	return fmt.Sprintf("tile-%02d-%s.png", tile.Position, tile.Kind)
}

func info(tile model.Tile, payload []byte) string {
	label := "Question"
	if tile.Kind == model.TilePowerUp {
		label = "Powerup"
	}
	return strings.Join([]string{
		fmt.Sprintf("Position: %d", tile.Position),
		"Type: " + label,
		"QR Data: " + string(payload),
		"File: " + FileName(tile),
	}, "\n")
}

// WriteBoard writes a PNG and an info sheet for every board position and
// returns the PNG paths in board order.
func WriteBoard(dir string, size int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, model.BoardSize)
	for pos := 1; pos <= model.BoardSize; pos++ {
		tile := model.BoardTile(pos)
		png, err := PNG(tile, size)
		if err != nil {
			return paths, fmt.Errorf("tile %d: %w", pos, err)
		}
		payload, _ := tile.Payload()

		path := filepath.Join(dir, FileName(tile))
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return paths, err
		}
		infoPath := filepath.Join(dir, fmt.Sprintf("tile-%02d-info.txt", pos))
		if err := os.WriteFile(infoPath, []byte(info(tile, payload)), 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
