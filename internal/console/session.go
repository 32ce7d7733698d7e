package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"checkers/internal/checkers"
	"checkers/internal/match"
)

const helpText = `Commands:
  <n>        play move number n from the list
  c3-d4      play a simple move by path
  c3xe5xg7   play a capture by path
  moves      list legal moves
  history    show the moves played so far
  new        abandon this game and start over
  help       show this text
  q, quit    leave
`

// BoardFunc returns a fresh board for a new game.
type BoardFunc func() (*checkers.Board, error)

// Session runs one interactive game on line-oriented input.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	matches  *match.Manager
	log      *zap.SugaredLogger
	newBoard BoardFunc
	starting checkers.Color

	cur *match.Match
}

func NewSession(in io.Reader, out io.Writer, matches *match.Manager, log *zap.SugaredLogger,
	newBoard BoardFunc, starting checkers.Color) *Session {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		matches:  matches,
		log:      log,
		newBoard: newBoard,
		starting: starting,
	}
}

// Match returns the game currently being played, or nil before Run.
func (s *Session) Match() *match.Match {
	return s.cur
}

// Run plays until the game ends, the user quits or input runs out.
func (s *Session) Run() error {
	if err := s.startMatch(); err != nil {
		return err
	}
	s.show()
	for {
		if s.cur.IsOver() {
			s.printResult()
			return nil
		}
		fmt.Fprintf(s.out, "%s> ", s.cur.State.CurrentPlayer())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			s.log.Debugw("input closed", "match_id", s.cur.ID)
			return nil
		}
		quit, err := s.handle(strings.TrimSpace(s.in.Text()))
		if err != nil {
			return err
		}
		if quit {
			s.log.Debugw("session quit", "match_id", s.cur.ID)
			return nil
		}
	}
}

func (s *Session) startMatch() error {
	b, err := s.newBoard()
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	s.cur = s.matches.NewMatch(b, s.starting)
	return nil
}

func (s *Session) handle(line string) (quit bool, err error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return false, nil
	case "moves":
		s.printMoves()
		return false, nil
	case "history":
		s.printHistory()
		return false, nil
	case "new":
		if err := s.matches.Abandon(s.cur.ID); err != nil {
			return false, err
		}
		if err := s.startMatch(); err != nil {
			return false, err
		}
		s.show()
		return false, nil
	}
	return false, s.play(line)
}

// play applies a move given as a list index or a path. Input mistakes are
// reported to the user and are not errors.
func (s *Session) play(line string) error {
	var path []checkers.Position
	if n, err := strconv.Atoi(line); err == nil {
		moves := s.cur.State.LegalMoves()
		if n < 1 || n > len(moves) {
			fmt.Fprintf(s.out, "no move %d; pick 1-%d\n", n, len(moves))
			return nil
		}
		path = moves[n-1].Path
	} else {
		path, err = checkers.ParsePath(line)
		if err != nil {
			fmt.Fprintf(s.out, "cannot read %q, type help for commands\n", line)
			return nil
		}
	}

	mv, err := s.matches.Play(s.cur.ID, path)
	switch {
	case errors.Is(err, checkers.ErrIllegalMove):
		fmt.Fprintf(s.out, "illegal move %q\n", line)
		if captures := s.cur.State.LegalMoves(); len(captures) > 0 && captures[0].IsCapture() {
			fmt.Fprintln(s.out, "a capture is available and must be taken")
		}
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(s.out, "%s played %s\n", s.cur.Mover(len(s.cur.Moves)-1), mv)
	s.show()
	return nil
}

func (s *Session) show() {
	fmt.Fprintln(s.out)
	RenderBoard(s.out, s.cur.State.Board())
	fmt.Fprintf(s.out, "Turn: %s   Status: %s\n", s.cur.State.CurrentPlayer(), s.cur.State.Status())
	if !s.cur.IsOver() {
		s.printMoves()
	}
}

func (s *Session) printMoves() {
	for i, mv := range s.cur.State.LegalMoves() {
		fmt.Fprintf(s.out, "  %2d. %s\n", i+1, mv)
	}
}

func (s *Session) printHistory() {
	if len(s.cur.Moves) == 0 {
		fmt.Fprintln(s.out, "no moves yet")
		return
	}
	for i, mv := range s.cur.Moves {
		fmt.Fprintf(s.out, "  %2d. %-5s %s\n", i+1, s.cur.Mover(i), mv)
	}
}

func (s *Session) printResult() {
	st := s.cur.State.Status()
	if w := st.Winner(); w != checkers.NoColor {
		fmt.Fprintf(s.out, "Game over: %s wins after %d moves.\n", w, len(s.cur.Moves))
		return
	}
	fmt.Fprintf(s.out, "Game over: %s.\n", st)
}
