package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"checkers/internal/config"
)

// app holds what Before sets up for the commands.
type app struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
}

func newApp() *cli.App {
	a := &app{}
	return &cli.App{
		Name:  "checkers",
		Usage: "play and inspect 8x8 checkers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (.env, yaml, json, toml)",
				EnvVars: []string{"CHECKERS_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override LOG_LEVEL (debug, info, warn, error)",
			},
		},
		Before: a.setup,
		After:  a.teardown,
		Action: a.play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play a game in the terminal",
				Action: a.play,
			},
			{
				Name:  "moves",
				Usage: "print the legal moves of a position",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "position", Aliases: []string{"p"}, Usage: "board diagram, default from config"},
					&cli.StringFlag{Name: "player", Usage: "side to move, default from config"},
				},
				Action: a.moves,
			},
			{
				Name:  "selfplay",
				Usage: "play random games and report the results",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Value: 10, Usage: "number of games"},
					&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "random seed"},
					&cli.IntFlag{Name: "max-plies", Usage: "ply cap per game, default SELFPLAY_MAX_PLIES"},
				},
				Action: a.selfplay,
			},
		},
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Setup(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("configuration: %v", err), 2)
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("logger: %v", err), 2)
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debugw("configuration loaded",
		"starting_player", cfg.StartingPlayer,
		"custom_position", cfg.Position != "",
		"max_plies", cfg.SelfplayMaxPlies,
	)
	return nil
}

func (a *app) teardown(c *cli.Context) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
