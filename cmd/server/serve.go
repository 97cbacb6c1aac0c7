package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"footscan-chat/internal/db"
	httpserver "footscan-chat/internal/http"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTimeout, err := cfg.GetShutdownTimeout()
	if err != nil {
		return err
	}

	// The database only backs readiness; the chat endpoint works without it.
	var pinger httpserver.Pinger
	if cfg.DatabaseURL != "" {
		openCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		conn, err := db.Open(openCtx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			return err
		}
		defer conn.Close()
		pinger = db.NewRepository(conn)
	} else {
		logger.Info("DATABASE_URL not set, readiness will not check the database")
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddr, err)
	}
	return serve(ctx, ln, httpserver.NewServer(pinger, logger), shutdownTimeout)
}

// serve runs handler on ln until ctx is done, then shuts down gracefully.
// There is no write timeout: it would cut event streams short.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
