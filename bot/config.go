// Package bot implements the fixed-priority move-selection driver and
// its level-preset table.
package bot

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Level names one of the six built-in difficulty presets.
type Level int

const (
	JOKE Level = iota
	EASY
	MEDIUM
	HARD
	CRAZY
	DEMON
)

// Config holds every tunable a Bot's move selection pipeline consults.
// A zero depth/visit count disables that stage of the pipeline entirely.
type Config struct {
	MCTSVisits      int
	LadderDepth     int
	AntiLadderDepth int
	MinimaxDepth    int
	AntiLadderNear  bool
	CanResign       bool
	MinimaxLadder   bool
}

// presets is the plain in-package configuration map for each difficulty
// level; deliberately just data rather than an external config system.
var presets = map[Level]Config{
	JOKE:   {MCTSVisits: 5},
	EASY:   {MCTSVisits: 50, MinimaxDepth: 1, LadderDepth: 4, AntiLadderDepth: 4},
	MEDIUM: {MCTSVisits: 100, MinimaxDepth: 1, LadderDepth: 6, AntiLadderDepth: 6},
	HARD: {
		MCTSVisits: 100, MinimaxDepth: 1, LadderDepth: 6, AntiLadderDepth: 6,
		AntiLadderNear: true, CanResign: true,
	},
	CRAZY: {
		MCTSVisits: 250, MinimaxDepth: 1, LadderDepth: 10, AntiLadderDepth: 10,
		AntiLadderNear: true, CanResign: true, MinimaxLadder: true,
	},
	DEMON: {
		MCTSVisits: 500, MinimaxDepth: 2, LadderDepth: 10, AntiLadderDepth: 10,
		AntiLadderNear: true, CanResign: true,
	},
}

// ErrUnknownLevel is returned when a Level outside the six presets is requested.
var ErrUnknownLevel = errors.New("bot: unknown level")

// configFor resolves level against the preset table.
func configFor(level Level) (Config, error) {
	cfg, ok := presets[level]
	if !ok {
		return Config{}, errors.Wrapf(ErrUnknownLevel, "level %d", level)
	}
	return cfg, nil
}

// loadOverrides reads a TOML document of field overrides from path and
// applies them on top of base (e.g. shrinking mcts_visits for fast tests
// without touching the built-in presets).
func loadOverrides(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "bot: open config overrides")
	}
	defer f.Close()

	overrides := struct {
		MCTSVisits      *int  `toml:"mcts_visits"`
		LadderDepth     *int  `toml:"ladder_depth"`
		AntiLadderDepth *int  `toml:"anti_ladder_depth"`
		MinimaxDepth    *int  `toml:"minimax_depth"`
		AntiLadderNear  *bool `toml:"anti_ladder_nearest"`
		CanResign       *bool `toml:"can_resign"`
		MinimaxLadder   *bool `toml:"minimax_ladder"`
	}{}
	if _, err := toml.NewDecoder(f).Decode(&overrides); err != nil {
		return Config{}, errors.Wrap(err, "bot: decode config overrides")
	}

	cfg := base
	if overrides.MCTSVisits != nil {
		cfg.MCTSVisits = *overrides.MCTSVisits
	}
	if overrides.LadderDepth != nil {
		cfg.LadderDepth = *overrides.LadderDepth
	}
	if overrides.AntiLadderDepth != nil {
		cfg.AntiLadderDepth = *overrides.AntiLadderDepth
	}
	if overrides.MinimaxDepth != nil {
		cfg.MinimaxDepth = *overrides.MinimaxDepth
	}
	if overrides.AntiLadderNear != nil {
		cfg.AntiLadderNear = *overrides.AntiLadderNear
	}
	if overrides.CanResign != nil {
		cfg.CanResign = *overrides.CanResign
	}
	if overrides.MinimaxLadder != nil {
		cfg.MinimaxLadder = *overrides.MinimaxLadder
	}
	return cfg, nil
}
