//go:build !js && !wasm

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Its-donkey/portfolio-fx/internal/config"
	"github.com/Its-donkey/portfolio-fx/internal/ui/contract"
	"github.com/Its-donkey/portfolio-fx/logging"
)

const shutdownGrace = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio-serve: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("portfolio-serve", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "address to serve the portfolio")
	fs.StringVar(&cfg.StaticDir, "dir", cfg.StaticDir, "directory containing index.html and main.wasm")
	fs.StringVar(&cfg.ResumePath, "resume", cfg.ResumePath, "resume file, relative to -dir")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "DEBUG, INFO, WARN or ERROR")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New("server", cfg.Level(), out)

	root, err := filepath.Abs(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("failed to resolve static directory: %w", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("static directory %s is invalid: %v", root, err)
	}

	auditPage(logger, root)
	if _, err := os.Stat(filepath.Join(root, cfg.ResumePath)); err != nil {
		logger.Warn("server", "resume file not found; downloads will 404", map[string]any{"path": cfg.ResumePath})
	}

	mime.AddExtensionType(".wasm", "application/wasm")

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           logging.NewHTTPLogger(logger).Middleware(newMux(root)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	logger.Infof("server", "serving portfolio from %s on http://%s", root, cfg.ListenAddr)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server", "stopped", nil)
	return nil
}

// auditPage logs markup the page effects will silently skip.
func auditPage(logger *logging.Logger, root string) {
	rep, err := contract.AuditFile(filepath.Join(root, "index.html"))
	if err != nil {
		logger.Error("contract", "page audit failed", err, nil)
		return
	}
	for _, p := range rep.Problems() {
		logger.Warn("contract", p, nil)
	}
	logger.Info("contract", "page audited", map[string]any{
		"title":    rep.Title,
		"sections": len(rep.Sections),
		"ok":       rep.OK(),
	})
}
