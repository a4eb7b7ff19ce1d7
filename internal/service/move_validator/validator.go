package move_validator

import "github.com/humanbelnik/flowquest/core/internal/model"

const (
	minStep = 1
	// Single six-sided die.
	maxStep = 6
)

// Validate checks that proposed is a legal 1-6 step advance from previous on
// a circular board and returns the distance travelled. A previous position of
// 0 means the player has not entered the board yet and counts as cell 1.
func Validate(previous, proposed, boardSize int) (int, error) {
	if boardSize <= 0 {
		boardSize = model.BoardSize
	}
	from := previous
	if from == 0 {
		from = 1
	}

	distance := proposed - from
	if distance < 0 {
		distance += boardSize
	}

	if proposed < 1 || proposed > boardSize || distance < minStep || distance > maxStep {
		return 0, &model.InvalidMoveError{
			From:     from,
			To:       proposed,
			Distance: distance,
		}
	}
	return distance, nil
}

// Wrap maps an effective position plus a step back onto the board.
func Wrap(from, step, boardSize int) int {
	if from == 0 {
		from = 1
	}
	return (from-1+step)%boardSize + 1
}
