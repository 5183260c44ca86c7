package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/emberhollow/realmd/internal/engine"
	"github.com/emberhollow/realmd/internal/handlers/ws"
	"github.com/emberhollow/realmd/internal/orchestrators/session"
	"github.com/emberhollow/realmd/internal/orchestrators/world"
	"github.com/emberhollow/realmd/internal/pkg/idgen"
	"github.com/emberhollow/realmd/internal/redis"
	characterrepo "github.com/emberhollow/realmd/internal/repositories/character"
	inventoryrepo "github.com/emberhollow/realmd/internal/repositories/inventory"
	userrepo "github.com/emberhollow/realmd/internal/repositories/user"
	"github.com/emberhollow/realmd/internal/tuning"
)

// serverEnv holds configuration read from the environment.
type serverEnv struct {
	Port        int    `env:"REALMD_PORT" envDefault:"8080"`
	RedisAddr   string `env:"REALMD_REDIS_ADDR" envDefault:"localhost:6379"`
	TokenSecret string `env:"REALMD_TOKEN_SECRET,required"`
	TuningPath  string `env:"REALMD_TUNING_PATH"`
	LogLevel    string `env:"REALMD_LOG_LEVEL" envDefault:"info"`
}

var (
	flagPort   int
	flagTuning string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the websocket server",
	Long:  `Start the realm session server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&flagPort, "port", 0, "listen port (overrides REALMD_PORT)")
	serverCmd.Flags().StringVar(&flagTuning, "tuning", "", "tuning YAML path (overrides REALMD_TUNING_PATH)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := env.ParseAs[serverEnv]()
	if err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if flagPort != 0 {
		cfg.Port = flagPort
	}
	if flagTuning != "" {
		cfg.TuningPath = flagTuning
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	constants := tuning.Default()
	if cfg.TuningPath != "" {
		constants, err = tuning.Load(cfg.TuningPath)
		if err != nil {
			return fmt.Errorf("failed to load tuning: %w", err)
		}
	}

	redisClient, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}
	inventoryRepo, err := inventoryrepo.NewRedis(&inventoryrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create inventory repository: %w", err)
	}
	userRepo, err := userrepo.NewRedis(&userrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}

	movement, err := engine.New(&engine.Config{Movement: constants.Movement})
	if err != nil {
		return fmt.Errorf("failed to create movement engine: %w", err)
	}

	hub := ws.NewHub()

	registry, err := world.New(&world.Config{
		Tuning:    constants.World,
		Scheduler: world.NewTimerScheduler(),
		Notifier:  hub,
	})
	if err != nil {
		return fmt.Errorf("failed to create world registry: %w", err)
	}
	registry.Populate(ctx)

	sessions, err := session.New(&session.Config{
		CharacterRepo: characterRepo,
		InventoryRepo: inventoryRepo,
		Engine:        movement,
		World:         registry,
		Notifier:      hub,
		PickupRadius:  constants.World.PickupRadius,
	})
	if err != nil {
		return fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	verifier, err := ws.NewJWTVerifier([]byte(cfg.TokenSecret))
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %w", err)
	}

	handler, err := ws.New(&ws.Config{
		Sessions:    sessions,
		Verifier:    verifier,
		UserRepo:    userRepo,
		Hub:         hub,
		IDGenerator: idgen.NewUUID("sess"),
	})
	if err != nil {
		return fmt.Errorf("failed to create websocket handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := redisClient.Ping(r.Context()).Err(); err != nil {
			http.Error(w, "redis unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close")
			_ = srv.Close()
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
