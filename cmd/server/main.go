package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"

	"clinic-scheduler/internal/auth"
	"clinic-scheduler/internal/clinic"
	pb "clinic-scheduler/internal/clinicpb"
	"clinic-scheduler/internal/config"
	"clinic-scheduler/internal/handler"
	"clinic-scheduler/internal/middleware"
	"clinic-scheduler/internal/session"
	"clinic-scheduler/internal/store"
	"clinic-scheduler/internal/web"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	hasher, err := auth.NewHasher(cfg.PasswordHash, cfg.BcryptCost)
	if err != nil {
		return err
	}
	if cfg.PasswordHash != "bcrypt" {
		slog.Warn("passwords are stored as unsalted sha256; set PASSWORD_HASH=bcrypt for new deployments")
	}

	svc := clinic.New(st, hasher, cfg.Location)
	codec := session.NewCodec(cfg.SessionSecret)

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rl.Stop()

	// grpc server
	srv := grpc.NewServer(
		pb.ServerCodec(),
		grpc.ChainUnaryInterceptor(
			middleware.RateLimit(rl),
			middleware.Auth(codec),
		),
	)
	pb.RegisterClinicServiceServer(srv, handler.New(svc, codec))

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	go func() {
		slog.Info("grpc listening", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			slog.Error("grpc serve", "error", err)
		}
	}()

	// web
	gin.SetMode(gin.ReleaseMode)
	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           web.New(svc, codec, rl, cfg.CookieSecure).TrustProxies(cfg.TrustedProxies).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("web listening", "port", cfg.WebPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http serve", "error", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown", "error", err)
	}
	srv.GracefulStop()
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.StoreDriver != "postgres" {
		slog.Info("using in-memory store; data is lost on restart")
		return store.NewMemory(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}
	slog.Info("connected to postgres")

	pg := store.NewPostgres(pool)
	if err := pg.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	slog.Info("migration applied")
	return pg, pool.Close, nil
}
