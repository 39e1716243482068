package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/auth"
	"github.com/KirkDiggler/paranormal-api/internal/config"
	dicehandlers "github.com/KirkDiggler/paranormal-api/internal/handlers/api/v1alpha1"
	paranormalhandlers "github.com/KirkDiggler/paranormal-api/internal/handlers/paranormal/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/catalog"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/character"
	"github.com/KirkDiggler/paranormal-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/idgen"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/logging"
	redisclient "github.com/KirkDiggler/paranormal-api/internal/redis"
	catalogrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/catalog"
	characterrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/character"
	dicesession "github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session"
)

const redisPingTimeout = 5 * time.Second

var configFile string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Paranormal API gRPC server with the character, dice and catalog services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().String("redis", "localhost:6379", "Redis endpoint")
	serverCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	serverCmd.Flags().String("seed-dir", "data/catalog", "Directory holding the catalog seed files")
	serverCmd.Flags().Bool("seed-on-start", true, "Load the catalog seed files on start")
}

// loadConfig layers defaults, the config file, PARANORMAL_* env and changed flags
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.New()

	bindings := map[string]string{
		"grpc.port":             "port",
		"redis.endpoint":        "redis",
		"logging.level":         "log-level",
		"catalog.seed_dir":      "seed-dir",
		"catalog.seed_on_start": "seed-on-start",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return config.Config{}, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	return config.Load(v, configFile)
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		File:           cfg.Logging.File,
		FileMaxSizeMB:  cfg.Logging.FileMaxSizeMB,
		FileMaxBackups: cfg.Logging.FileMaxBackups,
		FileMaxAgeDays: cfg.Logging.FileMaxAgeDays,
	})
	defer func() {
		_ = logger.Close() // nolint:errcheck // safe to ignore on shutdown
	}()
	slog.SetDefault(logger.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	client, err := newRedisClient(cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore on shutdown
	}()
	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		return err
	}

	srv, healthServer, err := buildServer(ctx, cfg, client)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "addr", cfg.GRPC.Addr())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GRPC.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func newRedisClient(cfg config.RedisConfig) (redisclient.Client, error) {
	opts := &redisclient.Options{
		PoolSize:   cfg.PoolSize,
		MaxRetries: cfg.MaxRetries,
		UseTLS:     cfg.UseTLS,
		Password:   cfg.Password,
		DB:         cfg.DB,
	}
	if len(cfg.ClusterEndpoints) > 0 {
		return redisclient.NewClusterClient(cfg.ClusterEndpoints, opts)
	}
	return redisclient.NewClient(cfg.Endpoint, opts)
}

// buildServer wires repositories, orchestrators and handlers onto a gRPC
// server. The catalog is seeded first when configured.
func buildServer(ctx context.Context, cfg config.Config, client redisclient.Client) (*grpc.Server, *health.Server, error) {
	clk := clock.New()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	catalogRepo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}
	sessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clk,
		TTL:    cfg.Dice.SessionTTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create dice session repository: %w", err)
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{CatalogRepo: catalogRepo})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}
	if cfg.Catalog.SeedOnStart {
		if _, err := catalogService.Seed(ctx, &catalog.SeedInput{Dir: cfg.Catalog.SeedDir}); err != nil {
			return nil, nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	characterService, err := character.New(&character.Config{
		CharacterRepo: characterRepo,
		CatalogRepo:   catalogRepo,
		IDGenerator:   idgen.NewUUID("char"),
		Clock:         clk,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: sessionRepo,
		CharacterRepo:   characterRepo,
		CatalogRepo:     catalogRepo,
		IDGenerator:     idgen.NewUUID("roll"),
		Clock:           clk,
		SessionTTL:      cfg.Dice.SessionTTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	characterHandler, err := paranormalhandlers.NewHandler(&paranormalhandlers.HandlerConfig{
		CharacterService: characterService,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create character handler: %w", err)
	}
	catalogHandler, err := paranormalhandlers.NewCatalogHandler(&paranormalhandlers.CatalogHandlerConfig{
		CatalogService: catalogService,
		SeedDir:        cfg.Catalog.SeedDir,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create catalog handler: %w", err)
	}
	diceHandler, err := dicehandlers.NewDiceHandler(&dicehandlers.DiceHandlerConfig{
		DiceService: diceService,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create dice handler: %w", err)
	}

	gate, err := auth.NewGate(&auth.Config{
		TokenHash: cfg.Auth.GameMasterTokenHash,
		Methods:   apiv1alpha1.GameMasterMethods,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create auth gate: %w", err)
	}

	srv := newGRPCServer(gate)

	apiv1alpha1.RegisterCharacterServiceServer(srv, characterHandler)
	apiv1alpha1.RegisterDiceServiceServer(srv, diceHandler)
	apiv1alpha1.RegisterCatalogServiceServer(srv, catalogHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{
		apiv1alpha1.CharacterServiceName,
		apiv1alpha1.DiceServiceName,
		apiv1alpha1.CatalogServiceName,
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)

	return srv, healthServer, nil
}

func newGRPCServer(gate *auth.Gate) *grpc.Server {
	logger := logging.InterceptorLogger(slog.Default())
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
			gate.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
			gate.StreamServerInterceptor(),
		),
	)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return status.Errorf(codes.Internal, "internal error")
}
