package main

import (
	"context"
	"errors"
	"flag"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/shell"
	"github.com/vancomm/minesweeper/internal/solver"
)

var (
	configPath string
	seed       *uint64
)

func init() {
	const (
		defaultConfigPath = "minesweeper.yaml"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.Func("seed", "mine placement seed (random when unset)", seedFlag(&seed))
}

// seedFlag stores the parsed value in *dst so that an explicit 0 differs
// from an absent flag.
func seedFlag(dst **uint64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func createRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func setupLogging() *slog.Logger {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
		solver.Log.SetLevel(logrus.DebugLevel)
		solver.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
		solver.Log.SetLevel(logrus.InfoLevel)
		solver.Log.SetFormatter(&logrus.JSONFormatter{})
	}
	solver.Log.SetOutput(os.Stderr)
	game.Log = logger
	return logger
}

func main() {
	flag.Parse()

	logger := setupLogging()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("unable to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if seed != nil {
		cfg.Seed = seed
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	sh := shell.New(
		logger, os.Stdin, os.Stdout,
		cfg.Board, game.Shuffle(createRand(cfg.Seed)),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sh.Run(gCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("exit reason", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
