package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/uttt-engine/internal/config"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
	"github.com/rocketscienceinc/uttt-engine/internal/render"
	"github.com/rocketscienceinc/uttt-engine/internal/repository"
	"github.com/rocketscienceinc/uttt-engine/internal/repository/storage"
	"github.com/rocketscienceinc/uttt-engine/internal/service"
	"github.com/rocketscienceinc/uttt-engine/internal/usecase"
)

// RunApp - plays the configured match and prints the outcome.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// engine settings are only fully checked on construction, so build each once before any game starts
	for _, engineConf := range []config.Engine{conf.Match.PlayerX, conf.Match.PlayerO} {
		if _, err := service.New(engineConf); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	var statsRepo repository.StatsRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		statsRepo = repository.NewStatsRepository(redisStorage, conf.Redis.TTL)
	}

	matchManager := usecase.NewMatchManager(logger, statsRepo, service.New)

	summary, err := matchManager.RunMatch(ctx, conf.Match)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	renderer := render.New(os.Stdout)

	if conf.Match.PrintBoard {
		for i, result := range summary.Results {
			if err = printResult(renderer, i, result); err != nil {
				return err
			}
		}
	}

	if err = renderer.Standings(summary.Standings); err != nil {
		return err
	}

	allTime, err := matchManager.Standings(ctx, summary.Standings.PlayerX, summary.Standings.PlayerO)
	if err != nil {
		return fmt.Errorf("could not read standings: %w", err)
	}

	if allTime != nil {
		fmt.Fprint(os.Stdout, "all time: ")

		return renderer.Standings(*allTime)
	}

	return nil
}

func printResult(renderer *render.Renderer, index int, result *entity.MatchResult) error {
	fmt.Fprintf(os.Stdout, "game %d (%s): %s after %d moves in %s\n",
		index+1, result.ID, result.Status, result.Moves, result.Duration.Round(time.Millisecond))

	if err := renderer.Board(result.Board, result.LastMove); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout)

	if err := renderer.Macro(entity.MacroOutcome(result.Board)); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout)

	return nil
}
