package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/console"
	"github.com/vancomm/minefield/internal/mines"
)

var (
	log = logrus.New()

	rows, columns, mineCount int
	seed                     uint64
	seedSet                  bool
)

func init() {
	flag.IntVar(&rows, "rows", 0, "board rows (overrides MINEFIELD_ROWS)")
	flag.IntVar(&columns, "columns", 0, "board columns (overrides MINEFIELD_COLUMNS)")
	flag.IntVar(&mineCount, "mines", -1, "mine count (overrides MINEFIELD_MINES)")
	flag.Uint64Var(&seed, "seed", 0, "random seed, 0 for a random one (overrides MINEFIELD_SEED when given)")
}

// parseFlags also records whether -seed was given, since 0 is a valid
// override meaning "random".
func parseFlags() {
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
}

func applyFlags(cfg *config.Config) {
	if rows > 0 {
		cfg.Rows = rows
	}
	if columns > 0 {
		cfg.Columns = columns
	}
	if mineCount >= 0 {
		cfg.Mines = mineCount
	}
	if seedSet {
		cfg.Seed = seed
	}
}

func setupLogging(cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.Development {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	mines.Log = log

	if cfg.LogFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// readLines feeds stdin to the session. It cannot be cancelled and is left
// behind when main returns.
func readLines() <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			log.WithError(err).Error("unable to read input")
		}
	}()
	return lines
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	parseFlags()

	cfg, err := config.Load(os.Environ())
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	applyFlags(cfg)

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	session, err := console.NewSession(
		cfg.Params(), createRand(cfg.Seed), log, os.Stdout,
	)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	err = session.Run(ctx, readLines())
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
