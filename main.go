package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/odinmillion/dubai-mortgage-calculator/config"
	httpLayer "github.com/odinmillion/dubai-mortgage-calculator/http"
	"github.com/odinmillion/dubai-mortgage-calculator/repository"
	"github.com/odinmillion/dubai-mortgage-calculator/scheduler"
	"github.com/odinmillion/dubai-mortgage-calculator/service"
)

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath, logger)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServer(cfg, logger)
		return
	}

	runReport(cfg, logger)
}

// runReport computes the configured borrower scenario once and prints the
// report to stdout.
func runReport(cfg *config.Config, logger *logrus.Logger) {
	scenarios := service.NewScenarioService(repository.NewMockCache(), logger)

	input := cfg.ScenarioInput()
	result, err := scenarios.Compare(context.Background(), input)
	if err != nil {
		logger.Fatalf("scenario: %v", err)
	}

	fmt.Print(service.FormatScenarioReport(input, result))
}

func runServer(cfg *config.Config, logger *logrus.Logger) {
	var repo repository.MortgageRepository
	if cfg.Database.SQLitePath != "" {
		sqliteRepo, err := repository.NewSQLiteRepository(cfg.Database.SQLitePath)
		if err != nil {
			logger.Fatalf("open sqlite: %v", err)
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
		logger.Infof("using sqlite history at %s", cfg.Database.SQLitePath)
	} else {
		repo = repository.NewMortgageRepositoryMemory()
		logger.Info("using in-memory history")
	}

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
		logger.Infof("using redis cache at %s", cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
	}

	mortgageService := service.NewMortgageService(repo, logger)
	scenarioService := service.NewScenarioService(cache, logger)

	mortgageHandler := httpLayer.NewMortgageHandler(mortgageService, logger)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioService, logger)

	rateLimiter := httpLayer.NewRateLimiter(10, time.Minute)
	defer rateLimiter.Stop()

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return httpLayer.RateLimitMiddleware(rateLimiter, next)
	})
	router.HandleFunc("/mortgage/calculate", mortgageHandler.Calculate).Methods(http.MethodPost)
	router.HandleFunc("/mortgage/schedule", mortgageHandler.Schedule).Methods(http.MethodPost)
	router.HandleFunc("/mortgage/history", mortgageHandler.History).Methods(http.MethodGet)
	router.HandleFunc("/mortgage/compare", scenarioHandler.Compare).Methods(http.MethodPost)

	sched := scheduler.New(mortgageService, scenarioService, cfg.ScenarioInput(), logger)
	if err := sched.Register(cfg.Schedule.RevaluationCron); err != nil {
		logger.Fatalf("scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("API listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("server error: %v", err)
		return
	case <-quit:
		logger.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}

	logger.Info("server exited")
}
