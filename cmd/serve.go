package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgoyal/studyhall/internal/api"
	"github.com/rgoyal/studyhall/internal/authclient"
	"github.com/rgoyal/studyhall/internal/config"
	"github.com/rgoyal/studyhall/internal/llm"
	"github.com/rgoyal/studyhall/internal/quizgen"
	"github.com/rgoyal/studyhall/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return err
		}
		cfg.DBPath = p
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		return fmt.Errorf("model provider config: %w", err)
	}
	provider, err := llm.NewProvider(cmd.Context(), llmCfg, s.Events())
	if err != nil {
		return err
	}

	srv := api.NewServer(&api.Options{
		Addr:      cfg.Addr,
		Store:     s,
		Auth:      authclient.New(cfg.AuthURL, cfg.AuthServiceKey),
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		FeedLimit: cfg.ActivityFeedLimit,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}
