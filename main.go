package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"chessmind/src/ai"
	"chessmind/src/logx"
	"chessmind/src/render"
	"chessmind/src/rules"
	clic "chessmind/ui/cli"
)

func positionFromFlag(fen string) (*rules.Position, error) {
	if fen == "" {
		return rules.StartingPosition(), nil
	}
	return rules.FromFEN(fen)
}

func selectorFromFlags(c *cli.Command, log logx.Logger) (*ai.Selector, error) {
	seed := c.String("seed")
	if seed == "" {
		return ai.NewSelector(log), nil
	}
	n, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q", seed)
	}
	return ai.NewSelectorWithRand(rand.New(rand.NewSource(n)), log), nil
}

func main() {
	var log logx.Logger = logx.Nop()

	fenFlag := &cli.StringFlag{
		Name:  "fen",
		Usage: "position in FEN format (default: starting position)",
	}
	difficultyFlag := &cli.StringFlag{
		Name:  "difficulty",
		Value: "medium",
		Usage: "easy, medium or hard",
	}
	seedFlag := &cli.StringFlag{
		Name:  "seed",
		Usage: "seed for the move shuffle (default: system entropy)",
	}

	cmd := &cli.Command{
		Name:  "chessmind",
		Usage: "difficulty-tiered chess opponent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if lvl := c.String("log-level"); lvl != "" {
				log = logx.New(logx.LevelByString(lvl))
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play against the engine in the terminal",
				Flags: []cli.Flag{
					fenFlag,
					difficultyFlag,
					seedFlag,
					&cli.StringFlag{
						Name:  "delay-ms",
						Value: "600",
						Usage: "pacing delay before the opponent replies",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					pos, err := positionFromFlag(c.String("fen"))
					if err != nil {
						return err
					}
					diff, err := ai.ParseDifficulty(c.String("difficulty"))
					if err != nil {
						return err
					}
					sel, err := selectorFromFlags(c, log)
					if err != nil {
						return err
					}
					delayMs, err := strconv.Atoi(c.String("delay-ms"))
					if err != nil || delayMs < 0 {
						return fmt.Errorf("invalid delay-ms %q", c.String("delay-ms"))
					}
					sched := ai.NewScheduler(sel, time.Duration(delayMs)*time.Millisecond, log)
					return clic.New(pos, sched, diff).Run()
				},
			},
			{
				Name:  "bestmove",
				Usage: "print the engine's move for a position",
				Flags: []cli.Flag{fenFlag, difficultyFlag, seedFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					pos, err := positionFromFlag(c.String("fen"))
					if err != nil {
						return err
					}
					diff, err := ai.ParseDifficulty(c.String("difficulty"))
					if err != nil {
						return err
					}
					sel, err := selectorFromFlags(c, log)
					if err != nil {
						return err
					}
					mv := sel.SelectMove(pos, diff)
					if mv == nil {
						fmt.Println("(none)")
						return nil
					}
					fmt.Printf("%s (%s)\n", pos.EncodeSAN(mv), mv)
					return nil
				},
			},
			{
				Name:  "eval",
				Usage: "print the static evaluation of a position in centipawns",
				Flags: []cli.Flag{fenFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					pos, err := positionFromFlag(c.String("fen"))
					if err != nil {
						return err
					}
					fmt.Println(ai.Evaluate(pos))
					return nil
				},
			},
			{
				Name:  "img",
				Usage: "render a position snapshot to a PNG file",
				Flags: []cli.Flag{
					fenFlag,
					&cli.StringFlag{
						Name:  "out",
						Value: "board.png",
						Usage: "output path",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					pos, err := positionFromFlag(c.String("fen"))
					if err != nil {
						return err
					}
					return render.SavePNG(pos, c.String("out"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
