package bot

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ninekoh/atarigo/internal/board"
	"github.com/ninekoh/atarigo/internal/geometry"
	"github.com/ninekoh/atarigo/internal/group"
	"github.com/ninekoh/atarigo/internal/readers"
	"github.com/ninekoh/atarigo/internal/rollout"
	"github.com/ninekoh/atarigo/internal/search"
)

// ErrBadHandle marks a host-supplied bot reference the core never issued.
// The core itself never constructs or observes this value; it exists for
// a future host-facing handle table.
var ErrBadHandle = errors.New("bot: bad handle")

// Outcome tags the kind of decision GetMove returns.
type Outcome int

const (
	Place Outcome = iota
	Resign
	Pass
)

// Move is the tagged value GetMove returns: either a placement, a
// resignation, or a pass.
type Move struct {
	Outcome Outcome
	Color   group.Color
	Pos     geometry.Position
}

// Bot drives one side of a game using a fixed-priority reader pipeline,
// following robot.go's Config/NewRobot/NewConfiguredRobot field-defaulting
// shape.
type Bot struct {
	board  *board.Board
	color  group.Color
	cfg    Config
	rand   *rand.Rand
	log    *zap.Logger
	closed bool
}

// NewBot returns a Bot for color using the built-in preset for level.
func NewBot(level Level, color group.Color) (*Bot, error) {
	cfg, err := configFor(level)
	if err != nil {
		return nil, err
	}
	return newBot(cfg, color), nil
}

// NewBotFromFile is like NewBot, but loads a TOML document of field
// overrides from path and applies them on top of level's preset.
func NewBotFromFile(path string, level Level, color group.Color) (*Bot, error) {
	base, err := configFor(level)
	if err != nil {
		return nil, err
	}
	cfg, err := loadOverrides(path, base)
	if err != nil {
		return nil, err
	}
	return newBot(cfg, color), nil
}

func newBot(cfg Config, color group.Color) *Bot {
	logger, _ := zap.NewProduction()
	return &Bot{
		board: board.New(),
		color: color,
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		log:   logger,
	}
}

// Board returns the bot's internal board, for callers that need to
// render or inspect position state (e.g. a host shell's "show" command).
func (b *Bot) Board() *board.Board {
	return b.board
}

// Play applies move to the bot's internal board. Rejects illegal
// placements.
func (b *Bot) Play(color group.Color, pos geometry.Position) bool {
	ok := b.board.PlaceStone(color, pos)
	if !ok && b.log != nil {
		b.log.Debug("rejected illegal placement", zap.Int("row", pos.Row), zap.Int("col", pos.Col))
	}
	return ok
}

// GetMove runs the fixed-priority reader pipeline and returns the
// resulting Move.
func (b *Bot) GetMove() Move {
	bd := b.board

	if c := readers.Capture(bd, b.color); len(c.Moves) > 0 {
		b.logReader("capture", len(c.Moves))
		return b.place(c.Moves[b.rand.Intn(len(c.Moves))])
	}

	ac := readers.AntiCapture(bd, b.color, b.cfg.CanResign)
	if ac.MustResign {
		b.logReader("anti-capture", -1)
		return b.resign()
	}
	if len(ac.Moves) > 0 {
		b.logReader("anti-capture", len(ac.Moves))
		return b.place(ac.Moves[b.rand.Intn(len(ac.Moves))])
	}

	if move, ok := readers.Ladder(bd, b.color, b.cfg.LadderDepth); ok {
		b.logReader("ladder", 1)
		return b.place(move)
	}

	al := readers.AntiLadder(bd, b.color, b.cfg.AntiLadderDepth, b.cfg.AntiLadderNear, b.cfg.CanResign)
	if al.MustResign {
		b.logReader("anti-ladder", -1)
		return b.resign()
	}
	if len(al.Moves) > 0 {
		b.logReader("anti-ladder", len(al.Moves))
		return b.place(al.Moves[b.rand.Intn(len(al.Moves))])
	}

	if b.cfg.MinimaxDepth > 0 {
		opts := search.Options{
			Depth:         b.cfg.MinimaxDepth,
			LadderDepth:   b.cfg.LadderDepth,
			MinimaxLadder: b.cfg.MinimaxLadder,
			Rand:          b.rand,
			Log:           b.log,
		}
		if move, ok := search.Move(bd, b.color, opts); ok {
			b.logReader("minimax", 1)
			return b.place(move)
		}
		if b.cfg.CanResign {
			b.logReader("minimax", -1)
			return b.resign()
		}
	}

	if b.cfg.MCTSVisits > 0 {
		if move, ok := rollout.Move(bd, b.color, rollout.Options{Visits: b.cfg.MCTSVisits, Rand: b.rand, Log: b.log}); ok {
			b.logReader("rollout", 1)
			return b.place(move)
		}
		b.logReader("rollout", 0)
		return Move{Outcome: Pass, Color: b.color}
	}

	b.logReader("pass", 0)
	return Move{Outcome: Pass, Color: b.color}
}

// logReader emits a Debug-level record of which reader decided the move
// and how many candidates it offered. count is -1 for a must-resign
// signal and 0 for "no move, falling through" (including a final pass).
func (b *Bot) logReader(name string, count int) {
	if b.log == nil {
		return
	}
	b.log.Debug("reader decision", zap.String("reader", name), zap.Int("candidates", count))
}

func (b *Bot) place(pos geometry.Position) Move {
	b.board.PlaceStone(b.color, pos)
	return Move{Outcome: Place, Color: b.color, Pos: pos}
}

func (b *Bot) resign() Move {
	if b.log != nil {
		b.log.Info("resigning", zap.Stringer("color", b.color))
	}
	return Move{Outcome: Resign, Color: b.color}
}

// Destroy releases the bot's resources. Calling any method on b after
// Destroy is the caller's error: handle validity is the host's
// responsibility, not the core's.
func (b *Bot) Destroy() {
	if b.closed {
		return
	}
	b.closed = true
	if b.log != nil {
		_ = b.log.Sync()
	}
}
