package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/content"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	portfolio, err := loadPortfolio(cfg)
	if err != nil {
		log.Fatal("Failed to load portfolio content: ", err)
	}

	r := gin.Default()
	setupRoutes(r, portfolio, cfg)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Serving %s's portfolio on :%s", portfolio.Hero.Name, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error: ", err)
	}
}

func loadPortfolio(cfg Config) (*content.Portfolio, error) {
	if cfg.ContentPath == "" {
		return content.Default(), nil
	}
	p, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded portfolio content from %s", cfg.ContentPath)
	return p, nil
}
