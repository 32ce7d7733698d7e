package match

import (
	"math/rand/v2"

	"checkers/internal/checkers"
)

// Outcome summarises one random playout.
type Outcome struct {
	Status checkers.Status
	Plies  int
	Capped bool // stopped at the ply limit while still in progress
}

// PlayRandom plays uniformly random legal moves from board until the game ends
// or maxPlies moves have been made. board is modified in place.
func PlayRandom(rng *rand.Rand, board *checkers.Board, starting checkers.Color, maxPlies int) Outcome {
	g := checkers.NewGameState(board, starting)
	g.UpdateStatus()

	plies := 0
	for !g.Status().IsOver() && plies < maxPlies {
		moves := g.LegalMoves()
		mv := moves[rng.IntN(len(moves))]
		if err := g.ApplyMove(mv); err != nil {
			// moves come straight from the generator
			panic("selfplay: " + err.Error())
		}
		plies++
	}
	return Outcome{
		Status: g.Status(),
		Plies:  plies,
		Capped: !g.Status().IsOver(),
	}
}

// Tally counts playout results by status.
type Tally struct {
	RedWins   int
	BlackWins int
	Draws     int
	Capped    int
	Plies     int
}

func (t *Tally) Add(o Outcome) {
	t.Plies += o.Plies
	switch {
	case o.Capped:
		t.Capped++
	case o.Status == checkers.RedWins:
		t.RedWins++
	case o.Status == checkers.BlackWins:
		t.BlackWins++
	case o.Status == checkers.Draw:
		t.Draws++
	}
}
