package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/game"
)

type Game struct {
	Board game.Params `yaml:"board"`
	Seed  *uint64     `yaml:"seed"`
}

func Default() *Game {
	return &Game{
		Board: game.Params{Rows: 9, Cols: 9, MineCount: 10},
	}
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Load reads the YAML file at path on top of [Default] and then applies
// MINES_* env overrides. A missing file is not an error.
func Load(path string) (*Game, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Board.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func lookupInt(key string, dst *int) error {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(str)
	if err != nil {
		return fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	*dst = v
	return nil
}

func (c *Game) loadEnv() error {
	if err := lookupInt("MINES_ROWS", &c.Board.Rows); err != nil {
		return err
	}
	if err := lookupInt("MINES_COLS", &c.Board.Cols); err != nil {
		return err
	}
	if err := lookupInt("MINES_COUNT", &c.Board.MineCount); err != nil {
		return err
	}

	seedStr, ok := os.LookupEnv("MINES_SEED")
	if ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert MINES_SEED to uint64: %w", err)
		}
		c.Seed = &seed
	}

	return nil
}
