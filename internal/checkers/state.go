package checkers

import "fmt"

// GameState owns a board for one game and tracks whose turn it is.
type GameState struct {
	board   *Board
	current Color
	status  Status
}

// NewGameState takes ownership of b. The status starts as InProgress; call
// UpdateStatus to evaluate a position that may already be decided.
func NewGameState(b *Board, starting Color) *GameState {
	return &GameState{
		board:   b,
		current: starting,
		status:  InProgress,
	}
}

func (g *GameState) Board() *Board        { return g.board }
func (g *GameState) CurrentPlayer() Color { return g.current }
func (g *GameState) Status() Status       { return g.status }

// LegalMoves is recomputed on every call.
func (g *GameState) LegalMoves() []Move {
	return GenerateLegalMoves(g.board, g.current)
}

// TryApplyMove plays the legal move whose path equals path.
func (g *GameState) TryApplyMove(path []Position) (Move, error) {
	if g.status.IsOver() {
		return Move{}, ErrGameOver
	}
	for _, mv := range g.LegalMoves() {
		if mv.MatchesPath(path) {
			return mv, g.ApplyMove(mv)
		}
	}
	return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, formatPath(path, "-"))
}

// ApplyMove plays mv, which must come from LegalMoves. It crowns a man that ends
// on its promotion row, passes the turn and recomputes the status.
func (g *GameState) ApplyMove(mv Move) error {
	if g.status.IsOver() {
		return ErrGameOver
	}
	pc := g.board.Piece(mv.From)
	if pc == NoPiece {
		return fmt.Errorf("%w: %s", ErrNoPiece, mv.From)
	}
	if pc.Color() != g.current {
		return fmt.Errorf("%w: %s belongs to %s", ErrIllegalMove, mv.From, pc.Color())
	}
	if !mv.To.IsValid() || !mv.To.IsDark() {
		return fmt.Errorf("%w: destination %s", ErrIllegalMove, mv.To)
	}
	for _, c := range mv.Captured {
		if !c.IsValid() {
			return fmt.Errorf("%w: captured square %d,%d", ErrOutOfRange, c.Row, c.Col)
		}
	}

	g.board.Squares[mv.From.index()] = NoPiece
	for _, c := range mv.Captured {
		g.board.Squares[c.index()] = NoPiece
	}
	if !pc.IsKing() && mv.To.Row == promotionRow(pc.Color()) {
		pc = pc.Promote()
	}
	g.board.Squares[mv.To.index()] = pc

	g.current = g.current.Opponent()
	g.UpdateStatus()
	return nil
}

// UpdateStatus decides the game from the board alone: a side with no pieces
// loses, and so does the side to move when it has no legal move.
func (g *GameState) UpdateStatus() {
	if g.board.CountPieces(Red) == 0 {
		g.status = BlackWins
		return
	}
	if g.board.CountPieces(Black) == 0 {
		g.status = RedWins
		return
	}
	if len(GenerateLegalMoves(g.board, g.current)) == 0 {
		g.status = winFor(g.current.Opponent())
		return
	}
	g.status = InProgress
}
