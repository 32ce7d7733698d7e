package checkers

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// directions returns the diagonals a piece may step or jump along: all four for
// a king, the two forward ones for a man. Men never capture backward.
func directions(pc Piece) [][2]int {
	if pc.IsKing() {
		return diagonalDirs[:]
	}
	dr := forward(pc.Color())
	return [][2]int{{dr, -1}, {dr, 1}}
}

// GenerateLegalMoves returns every legal move for player, in board order.
// If any piece can capture, only captures are returned.
func GenerateLegalMoves(b *Board, player Color) []Move {
	var captures []Move
	for pos, pc := range b.Pieces(player) {
		genCaptures(b, pos, pc, &captures)
	}
	if len(captures) > 0 {
		return captures
	}

	var moves []Move
	for pos, pc := range b.Pieces(player) {
		genSimpleMoves(b, pos, pc, &moves)
	}
	return moves
}

func genSimpleMoves(b *Board, from Position, pc Piece, moves *[]Move) {
	for _, d := range directions(pc) {
		to := from.offset(d[0], d[1])
		if !to.IsValid() || !to.IsDark() {
			continue
		}
		if b.Squares[to.index()] != NoPiece {
			continue
		}
		*moves = append(*moves, Move{From: from, To: to, Path: []Position{from, to}})
	}
}

// genCaptures appends every capture chain that starts at from.
func genCaptures(b *Board, from Position, pc Piece, moves *[]Move) {
	walkJumps(*b, from, pc, []Position{from}, nil, moves)
}

// walkJumps extends the chain ending at `at`. path and captured belong to the
// caller; every branch appends to its own copy, so siblings never share state.
func walkJumps(b Board, at Position, pc Piece, path, captured []Position, moves *[]Move) {
	jumped := false
	for _, d := range directions(pc) {
		mid := at.offset(d[0], d[1])
		landing := at.offset(2*d[0], 2*d[1])
		if !mid.IsValid() || !landing.IsValid() || !landing.IsDark() {
			continue
		}
		victim := b.Squares[mid.index()]
		if victim == NoPiece || victim.Color() == pc.Color() {
			continue
		}
		if b.Squares[landing.index()] != NoPiece {
			continue
		}
		jumped = true

		next := b
		next.Squares[at.index()] = NoPiece
		next.Squares[mid.index()] = NoPiece
		next.Squares[landing.index()] = pc

		nextPath := append(path[:len(path):len(path)], landing)
		nextCaptured := append(captured[:len(captured):len(captured)], mid)

		// A man crowned mid-chain ends the turn there.
		if !pc.IsKing() && landing.Row == promotionRow(pc.Color()) {
			*moves = append(*moves, newMove(nextPath, nextCaptured))
			continue
		}
		walkJumps(next, landing, pc, nextPath, nextCaptured, moves)
	}

	if !jumped && len(captured) > 0 {
		*moves = append(*moves, newMove(path, captured))
	}
}
