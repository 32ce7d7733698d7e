package match

import (
	"time"

	"checkers/internal/checkers"
)

// Match is one game hosted by a Manager.
type Match struct {
	ID        string
	State     *checkers.GameState
	Starting  checkers.Color
	Moves     []checkers.Move // applied moves, oldest first
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *Match) IsOver() bool {
	return m.State.Status().IsOver()
}

// Mover returns the color that played ply i of Moves.
func (m *Match) Mover(i int) checkers.Color {
	if i%2 == 0 {
		return m.Starting
	}
	return m.Starting.Opponent()
}
