package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"checkers/internal/checkers"
	"checkers/internal/console"
	"checkers/internal/match"
)

func (a *app) play(c *cli.Context) error {
	in := c.App.Reader
	if in == nil {
		in = os.Stdin
	}
	return a.runSession(in, c.App.Writer)
}

func (a *app) runSession(in io.Reader, out io.Writer) error {
	s := console.NewSession(in, out, match.NewManager(a.logger), a.logger,
		a.cfg.InitialBoard, a.cfg.StartingColor())
	if err := s.Run(); err != nil {
		a.logger.Errorw("session failed", zap.Error(err))
		return err
	}
	return nil
}

// moves prints a position and its legal moves.
func (a *app) moves(c *cli.Context) error {
	board, err := a.cfg.InitialBoard()
	if diagram := c.String("position"); diagram != "" {
		board, err = checkers.DecodeBoard(diagram)
	}
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	player := a.cfg.StartingColor()
	if name := c.String("player"); name != "" {
		if player, err = checkers.ParseColor(name); err != nil {
			return cli.Exit(err.Error(), 2)
		}
	}

	g := checkers.NewGameState(board, player)
	g.UpdateStatus()

	w := c.App.Writer
	console.RenderBoard(w, board)
	fmt.Fprintln(w, "Position:", g.Encode())
	fmt.Fprintln(w, "Status:", g.Status())
	moves := g.LegalMoves()
	fmt.Fprintf(w, "Legal moves for %s: %d\n", player, len(moves))
	for _, mv := range moves {
		fmt.Fprintln(w, " ", mv)
	}
	return nil
}

func (a *app) selfplay(c *cli.Context) error {
	games := c.Int("games")
	if games <= 0 {
		return cli.Exit("--games must be positive", 2)
	}
	maxPlies := a.cfg.SelfplayMaxPlies
	if c.IsSet("max-plies") {
		maxPlies = c.Int("max-plies")
	}
	if maxPlies <= 0 {
		return cli.Exit("--max-plies must be positive", 2)
	}
	seed := c.Uint64("seed")
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var tally match.Tally
	start := time.Now()
	for i := 0; i < games; i++ {
		board, err := a.cfg.InitialBoard()
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		out := match.PlayRandom(rng, board, a.cfg.StartingColor(), maxPlies)
		tally.Add(out)
		a.logger.Debugw("selfplay game",
			"game", i+1,
			"status", out.Status.String(),
			"plies", out.Plies,
			"capped", out.Capped,
		)
	}
	elapsed := time.Since(start)

	w := c.App.Writer
	fmt.Fprintf(w, "games: %d  seed: %d  max plies: %d\n", games, seed, maxPlies)
	fmt.Fprintf(w, "red wins: %d  black wins: %d  draws: %d  capped: %d\n",
		tally.RedWins, tally.BlackWins, tally.Draws, tally.Capped)
	fmt.Fprintf(w, "average plies: %.1f  time: %v\n", float64(tally.Plies)/float64(games), elapsed.Round(time.Millisecond))
	return nil
}
