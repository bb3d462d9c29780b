package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-users-api/internal/core/cache"
	"go-users-api/internal/core/config"
	"go-users-api/internal/core/database"
	"go-users-api/internal/core/logger"
	"go-users-api/internal/core/server"
	"go-users-api/internal/domain"
	"go-users-api/internal/repo"
	"go-users-api/internal/service"
	"go-users-api/internal/transport/http/handler"
	"go-users-api/internal/transport/http/router"
	"go-users-api/internal/validation"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     cfg.Log.File != "",
		Filename:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&repo.UserModel{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	userRepo := repo.NewUserRepo(db)
	clock := domain.SystemClock()
	users := service.NewUserService(userRepo, validation.NewUserValidator(userRepo, clock))

	var respCache *cache.Cache
	if cfg.Redis.Enabled {
		respCache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("response cache enabled", zap.String("addr", cfg.Redis.Addr))
	}
	cacheTTL := time.Duration(cfg.Cache.TTLSec) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}

	r := router.NewAPIEngine(log, handler.NewUserHandler(users, clock, respCache, cacheTTL))

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("users api start failed", zap.Error(err))
		}
	}()
	log.Info("users api started", zap.String("addr", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("users api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
