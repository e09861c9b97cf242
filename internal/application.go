package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	recordRepo, closeArchive, err := initArchive(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeArchive()

	statsRepo, closeStats, err := initStats(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStats()

	game, err := newGame(conf)
	if err != nil {
		return fmt.Errorf("could not set up game: %w", err)
	}

	humanMark := entity.PlayerX
	if conf.PlayerMark == entity.PlayerO {
		humanMark = entity.PlayerO
	}

	renderer := console.NewRenderer(os.Stdout)
	reader := console.NewReader(os.Stdin)

	if statsRepo != nil {
		printSummary(ctx, log, statsRepo, renderer)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // not used for security
	bot := service.NewBotService(rng)
	gameplay := service.NewGamePlayService(logger, reader, renderer, bot, humanMark)

	log.Info("Starting game", "difficulty", game.Difficulty.String(), "player_mark", humanMark)

	if err = gameplay.Play(ctx, game); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Game interrupted")
			return nil
		}
		return fmt.Errorf("game loop failed: %w", err)
	}

	archiveGame(ctx, log, recordRepo, game)
	recordResult(ctx, log, statsRepo, game, humanMark)

	return nil
}

// newGame - builds the initial game state, either empty or restored from
// the configured snapshot with the current mark inferred.
func newGame(conf *config.Config) (*entity.Game, error) {
	difficulty := entity.ParseDifficulty(conf.Difficulty)

	if conf.StartPosition == "" {
		return entity.NewGame(difficulty), nil
	}

	game, err := entity.NewGameFromSnapshot(conf.StartPosition, difficulty)
	if err != nil {
		return nil, fmt.Errorf("invalid start position: %w", err)
	}

	// A restored board may already be terminal.
	tictactoe.UpdateStatus(game)

	return game, nil
}

// initArchive - connects the finished-games archive when a Redis host is
// configured; the game runs without it otherwise.
func initArchive(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.RecordRepository, func(), error) {
	addr := conf.Redis.GetRedisAddr()
	if addr == "" {
		log.Info("Game archive disabled: no redis host configured")
		return nil, func() {}, nil
	}

	redisStorage, err := storage.New(ctx, addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFunc := func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}

	return repository.NewRecordRepository(redisStorage.Connection), closeFunc, nil
}

// initStats - opens the lifetime results store when a path is configured.
func initStats(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.StatsRepository, func(), error) {
	if conf.SQLiteStoragePath == "" {
		log.Info("Lifetime results disabled: no sqlite path configured")
		return nil, func() {}, nil
	}

	sqliteStorage, err := storage.NewSQLite(conf.SQLiteStoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
	}

	closeFunc := func() {
		if closeErr := sqliteStorage.Close(); closeErr != nil {
			log.Error("could not close sqlite storage", "error", closeErr)
		}
	}

	return repository.NewStatsRepository(sqliteStorage.Connection), closeFunc, nil
}

func printSummary(ctx context.Context, log *slog.Logger, statsRepo repository.StatsRepository, renderer *console.Renderer) {
	summary, err := statsRepo.Summary(ctx)
	if err != nil {
		log.Error("failed to load results summary", "error", err)
		return
	}

	renderer.Printf("Lifetime record: %d wins, %d losses, %d draws\n", summary.Wins, summary.Losses, summary.Draws)
}

// archiveGame - stores the finished game; archive failures are logged and
// never affect the game outcome.
func archiveGame(ctx context.Context, log *slog.Logger, recordRepo repository.RecordRepository, game *entity.Game) {
	if recordRepo == nil {
		return
	}

	record := &repository.GameRecord{
		ID:         uuid.NewString(),
		Board:      game.Snapshot(),
		Winner:     game.Winner,
		Difficulty: game.Difficulty.String(),
		FinishedAt: time.Now().UTC(),
	}

	if err := recordRepo.Save(ctx, record); err != nil {
		log.Error("failed to archive game", "error", err)
		return
	}

	log.Info("Game archived", "record_id", record.ID)
}

func recordResult(ctx context.Context, log *slog.Logger, statsRepo repository.StatsRepository, game *entity.Game, humanMark string) {
	if statsRepo == nil {
		return
	}

	result := repository.ResultDraw
	switch game.Winner {
	case humanMark:
		result = repository.ResultWin
	case tictactoe.ToggleMark(humanMark):
		result = repository.ResultLoss
	}

	if err := statsRepo.RecordResult(ctx, game.Difficulty.String(), result); err != nil {
		log.Error("failed to record game result", "error", err)
	}
}
