// Command atarigo is a thin host shell around the bot driver, kept
// separate from the core so it can exercise bot.Bot end to end.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ninekoh/atarigo/bot"
	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
)

var levelNames = map[string]bot.Level{
	"joke":   bot.JOKE,
	"easy":   bot.EASY,
	"medium": bot.MEDIUM,
	"hard":   bot.HARD,
	"crazy":  bot.CRAZY,
	"demon":  bot.DEMON,
}

func parseLevel(s string) (bot.Level, error) {
	l, ok := levelNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atarigo",
		Short: "Play and inspect the atari-go engine from the command line",
	}
	root.AddCommand(newSelfplayCmd(), newMoveCmd(), newShowCmd())
	return root
}

// parseSetupMove parses one "B:row,col" or "W:row,col" token from the
// --setup flag.
func parseSetupMove(tok string) (group.Color, geometry.Position, error) {
	colorPart, posPart, ok := strings.Cut(tok, ":")
	if !ok {
		return 0, geometry.Position{}, fmt.Errorf("malformed setup move %q, want COLOR:row,col", tok)
	}
	var color group.Color
	switch strings.ToUpper(colorPart) {
	case "B":
		color = group.Black
	case "W":
		color = group.White
	default:
		return 0, geometry.Position{}, fmt.Errorf("unknown color %q in setup move %q", colorPart, tok)
	}
	rowStr, colStr, ok := strings.Cut(posPart, ",")
	if !ok {
		return 0, geometry.Position{}, fmt.Errorf("malformed coordinates in setup move %q, want row,col", tok)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return 0, geometry.Position{}, fmt.Errorf("bad row in setup move %q: %w", tok, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return 0, geometry.Position{}, fmt.Errorf("bad col in setup move %q: %w", tok, err)
	}
	return color, geometry.Position{Row: row, Col: col}, nil
}

func newMoveCmd() *cobra.Command {
	var levelName string
	var colorName string
	var setup string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Query the bot for a single move against an optional setup position",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(levelName)
			if err != nil {
				return err
			}

			var color group.Color
			switch strings.ToLower(colorName) {
			case "black":
				color = group.Black
			case "white":
				color = group.White
			default:
				return fmt.Errorf("unknown color %q, want black|white", colorName)
			}

			b, err := bot.NewBot(level, color)
			if err != nil {
				return err
			}
			defer b.Destroy()

			if setup != "" {
				for _, tok := range strings.Fields(setup) {
					setupColor, pos, err := parseSetupMove(tok)
					if err != nil {
						return err
					}
					if !b.Play(setupColor, pos) {
						return fmt.Errorf("illegal setup move %q", tok)
					}
				}
			}

			move := b.GetMove()
			switch move.Outcome {
			case bot.Resign:
				fmt.Printf("%s resigns\n", color)
			case bot.Pass:
				fmt.Printf("%s passes\n", color)
			case bot.Place:
				fmt.Printf("%s plays %d,%d\n", color, move.Pos.Row, move.Pos.Col)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&levelName, "level", "easy", "difficulty preset (joke|easy|medium|hard|crazy|demon)")
	cmd.Flags().StringVar(&colorName, "color", "black", "color to move (black|white)")
	cmd.Flags().StringVar(&setup, "setup", "", `space-separated prior moves, e.g. "B:2,2 W:3,3", applied before querying`)
	return cmd
}

func newSelfplayCmd() *cobra.Command {
	var levelName string
	var moveCount int

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play Black against White for a fixed number of moves and print the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(levelName)
			if err != nil {
				return err
			}

			black, err := bot.NewBot(level, group.Black)
			if err != nil {
				return err
			}
			defer black.Destroy()
			white, err := bot.NewBot(level, group.White)
			if err != nil {
				return err
			}
			defer white.Destroy()

			side := group.Black
			for i := 0; i < moveCount; i++ {
				mover, other := black, white
				if side == group.White {
					mover, other = white, black
				}

				move := mover.GetMove()
				switch move.Outcome {
				case bot.Resign:
					fmt.Printf("%s resigns\n", side)
					return nil
				case bot.Place:
					other.Play(side, move.Pos)
				case bot.Pass:
					fmt.Printf("%s passes\n", side)
				}
				side = side.Opponent()
			}
			fmt.Println(black.Board().String())
			return nil
		},
	}
	cmd.Flags().StringVar(&levelName, "level", "easy", "difficulty preset (joke|easy|medium|hard|crazy|demon)")
	cmd.Flags().IntVar(&moveCount, "moves", 20, "number of plies to play")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print an empty board using the reference serialization",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(board.New().String())
			return nil
		},
	}
}
