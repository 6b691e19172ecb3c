package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathblitz/internal/answer"
	"github.com/abhisek/mathblitz/internal/app"
	"github.com/abhisek/mathblitz/internal/config"
	"github.com/abhisek/mathblitz/internal/logging"
)

// loadConfig merges the config file and environment with any flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("answer-mode") {
		cfg.AnswerMode, _ = flags.GetString("answer-mode")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// newRand returns a PCG source for seed, or a clock-seeded one for 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// runApp loads configuration, builds the logger, and launches the TUI.
func runApp(cmd *cobra.Command, start *app.Start) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	mode, err := answer.ParseMode(cfg.AnswerMode)
	if err != nil {
		return err
	}

	logger.Info("mathblitz starting",
		zap.String("version", version),
		zap.String("answer_mode", string(mode)),
		zap.Uint64("seed", cfg.Seed),
	)

	return app.Run(app.Options{
		Rand:       newRand(cfg.Seed),
		AnswerMode: mode,
		Logger:     logger,
		Splash:     true,
		Start:      start,
	})
}
