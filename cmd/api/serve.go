package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentflow-backend/config"
	_ "talentflow-backend/docs" // Important for Swagger
	v1 "talentflow-backend/internal/delivery/http/v1"
	"talentflow-backend/internal/repository/sqlstore"
	"talentflow-backend/internal/usecase"
	"talentflow-backend/pkg/auth"
	"talentflow-backend/pkg/logger"
	"talentflow-backend/pkg/netsim"
	"talentflow-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed once and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func newHandler(cfg *config.Config, store *sqlstore.Store) *gin.Engine {
	repos := store.Repositories()
	validate := validation.New()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:       usecase.NewAuthUsecase(repos.Users, tokens),
		JobUC:        usecase.NewJobUsecase(repos.Jobs, validate),
		CandidateUC:  usecase.NewCandidateUsecase(repos.Candidates, repos.Jobs, repos.Timeline, validate),
		AssessmentUC: usecase.NewAssessmentUsecase(repos.Assessments, repos.Responses, validate),
		HealthUC:     usecase.NewHealthUsecase(store),
		Tokens:       tokens,
		Simulator:    netsim.New(cfg.Simulator.MinDelay, cfg.Simulator.MaxDelay, cfg.Simulator.FailureRate),
		Config:       cfg,
	})
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, store, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Log.Info("Starting TalentFlow backend", "port", cfg.Port, "db_driver", cfg.DBDriver)

	if cfg.SeedOnStart {
		newSeeder(store).Initialize(ctx, newRand(cfg.SeedRandom), time.Now())
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newHandler(cfg, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Log.Error("Listen failed", "error", err)
			return err
		}
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
