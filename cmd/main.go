package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/plantcare-server/internal/api/http/context"
	"github.com/dtroode/plantcare-server/internal/api/http/router"
	httpServer "github.com/dtroode/plantcare-server/internal/api/http/server"
	"github.com/dtroode/plantcare-server/internal/config"
	"github.com/dtroode/plantcare-server/internal/logger"
	"github.com/dtroode/plantcare-server/internal/model"
	"github.com/dtroode/plantcare-server/internal/password"
	"github.com/dtroode/plantcare-server/internal/repository/postgres"
	"github.com/dtroode/plantcare-server/internal/server"
	"github.com/dtroode/plantcare-server/internal/service"
	storage "github.com/dtroode/plantcare-server/internal/storage/minio"
	"github.com/dtroode/plantcare-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.LogLevel > int(slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	plantRepo := postgres.NewPlantRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)

	tokenManager := token.NewJWT(token.Options{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		AccessTTL:  cfg.JWT.Expiration,
		RefreshTTL: cfg.JWT.RefreshExpiration,
	})
	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, cfg.JWT.RefreshExpiration, logger)
	authService := service.NewAuth(userRepo, password.NewBcrypt(cfg.BcryptCost), tokenService, logger)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	plantService := service.NewPlant(plantRepo, userRepo, storageClient, logger)
	ctxMgr := httpctx.NewManager()

	srv := registerHTTPServer(ctx, cfg, logger, authService, plantService, tokenService, ctxMgr)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	ctx context.Context,
	cfg *config.Config,
	logger *logger.Logger,
	authService *service.Auth,
	plantService *service.Plant,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
) *httpServer.HTTPServer {
	r := router.New(authService, plantService, tokenService, ctxMgr, logger, router.Options{
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		RateLimitRPS: cfg.RateLimit.RPS,
		RateBurst:    cfg.RateLimit.Burst,
	})

	return httpServer.NewHTTPServer(r.Register(ctx), fmt.Sprintf(":%s", cfg.HTTP.Port), httpServer.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})
}
