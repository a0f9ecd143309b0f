package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"snake-classic/audio"
	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/store"
	"snake-classic/terminal"
	"snake-classic/ui"
)

const dialTimeout = 3 * time.Second

func main() {
	early := bufferEarlyLogs()
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	if cfg, err = parseFlags(cfg, os.Args[1:]); err != nil {
		fatal(err)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	flushEarlyLogs(early)

	if err := run(cfg); err != nil {
		fatal(err)
	}
}

func run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scores, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer scores.Close()

	g := game.NewGame(game.Options{
		Seed:                cfg.Seed,
		HighScore:           store.LoadHighScore(ctx, scores),
		SpeedLevel:          cfg.SpeedLevel,
		ResetSpeedOnRestart: cfg.ResetSpeed,
	})

	persister := store.NewPersister(scores)
	persister.Start(ctx)
	defer persister.Close()
	g.AddListener(persister)

	if cfg.Sound {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("[APP] [WARN] sound disabled: %v", err)
		} else {
			defer player.Close()
			g.AddListener(player)
		}
	}

	session := game.NewSession(g)
	defer session.Close()

	log.Printf("[APP] [INFO] starting %s frontend, store=%s speed=%d high=%d",
		cfg.Frontend, cfg.Store, cfg.SpeedLevel, g.GetHighScore())

	switch cfg.Frontend {
	case config.FrontendTerminal:
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		return terminal.Run(session, screen)
	default:
		ui.Run(session)
		return nil
	}
}

// parseFlags overrides cfg with command-line flags
func parseFlags(cfg config.Config, args []string) (config.Config, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "frontend to use: raylib or terminal")
	speed := fs.Int("speed", cfg.SpeedLevel, "initial speed level, 1 (slow) to 10 (fast)")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "high score store: file, redis or memory")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory of the file store")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 = time based")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to "+logDir+"/"+logFileName)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, errors.Wrap(err, "parsing flags")
	}
	cfg.SpeedLevel = int(types.ClampSpeedLevel(*speed))
	return cfg, cfg.Validate()
}

func openStore(ctx context.Context, cfg config.Config) (store.HighScoreStore, error) {
	switch cfg.Store {
	case config.StoreRedis:
		dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		rs, err := store.DialRedis(dialCtx, cfg.RedisAddr, cfg.RedisDB, types.HighScoreKey)
		if err != nil {
			return nil, err
		}
		return rs, nil
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	default:
		fs, err := store.NewFileStore(cfg.DataDir, types.HighScoreKey)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}
}

func fatal(err error) {
	log.Printf("[APP] [FATAL] %v", err)
	fmt.Fprintf(os.Stderr, "[APP] [FATAL] %v\n", err)
	os.Exit(1)
}
