package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/ballpit/internal/config"
	"github.com/tomz197/ballpit/internal/loop"
	"github.com/tomz197/ballpit/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ballpit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetEnv(config.EnvConfigPath, ""))
	if err != nil {
		return err
	}

	logger, closeLog, err := config.OpenLogger(
		config.GetEnv(config.EnvLogPath, ""),
		config.GetEnv(config.EnvLogLevel, ""),
	)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	seed := cfg.Bodies.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "bodies", cfg.Bodies.Count, "strategy", cfg.Collision.Strategy, "seed", seed)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	err = loop.Run(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Config: cfg,
		Rand:   world.NewRand(seed, 1),
		Logger: logger,
	})
	if err != nil {
		logger.Error("loop stopped", "err", err)
		return err
	}
	logger.Info("stopped")
	return nil
}
