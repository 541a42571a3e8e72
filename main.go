package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"mathwiz/adapters/llm"
	"mathwiz/adapters/postgres"
	"mathwiz/adapters/postgres/migrations"
	"mathwiz/app"
	"mathwiz/internal/auth"
	"mathwiz/internal/config"
	"mathwiz/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("[Main] Database connection failed: %v", err)
	}
	defer db.Close()

	if err := migrations.NewMigrator(db.DB).Up(ctx); err != nil {
		log.Fatalf("[Main] Migration failed: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)

	client := llm.NewClient(cfg.AI)
	if !client.Configured() {
		log.Printf("[Main] GEMINI_API_KEY not set; AI endpoints will report not configured")
	}
	solver := llm.NewSolverAdapter(client)

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	server := ui.NewServer(ui.Deps{
		Config:    cfg,
		Auth:      app.NewAuthService(userRepo, issuer),
		Solver:    app.NewSolverService(solver, userRepo, cfg.XP),
		Practice:  app.NewPracticeService(solver, userRepo, cfg.XP),
		Quiz:      app.NewQuizService(solver),
		Puzzle:    app.NewPuzzleService(solver),
		Users:     userRepo,
		Bookmarks: bookmarkRepo,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Handler(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[Main] Listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("[Main] Shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("[Main] Server error: %v", err)
	}
}
