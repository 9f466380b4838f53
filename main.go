//go:build !js && !wasm

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	build := []procConfig{
		{
			Name: "build-portfolio-wasm",
			Args: []string{"go", "build", "-o", "web/main.wasm", "./cmd/portfolio-wasm"},
			Env:  []string{"GOOS=js", "GOARCH=wasm"},
		},
	}
	serve := []procConfig{
		{
			Name: "portfolio-serve",
			Args: append([]string{"go", "run", "./cmd/portfolio-serve", "-dir", "web"}, os.Args[1:]...),
		},
	}

	if err := runAll(ctx, build); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio build failed: %v\n", err)
		os.Exit(1)
	}
	if ctx.Err() != nil {
		return
	}
	if err := copyWasmExec(ctx, "web/wasm_exec.js"); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio build failed: %v\n", err)
		os.Exit(1)
	}
	if err := runAll(ctx, serve); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio exited with error: %v\n", err)
		os.Exit(1)
	}
}

// copyWasmExec copies the wasm_exec.js shipped with the running toolchain.
func copyWasmExec(ctx context.Context, dst string) error {
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("go env GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))
	var src *os.File
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		if src, err = os.Open(filepath.Join(goroot, dir, "wasm_exec.js")); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("locate wasm_exec.js: %w", err)
	}
	defer src.Close()

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return fmt.Errorf("copy wasm_exec.js: %w", err)
	}
	return f.Close()
}

func runAll(ctx context.Context, procs []procConfig) error {
	if len(procs) == 0 {
		return fmt.Errorf("no processes configured")
	}
	var wg sync.WaitGroup
	errCh := make(chan error, len(procs))

	for _, cfg := range procs {
		wg.Add(1)
		go func(cfg procConfig) {
			defer wg.Done()
			cmd := exec.CommandContext(ctx, cfg.Args[0], cfg.Args[1:]...)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if cfg.Dir != "" {
				cmd.Dir = cfg.Dir
			}
			if len(cfg.Env) > 0 {
				cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
			}
			if err := cmd.Start(); err != nil {
				if ctx.Err() == nil {
					errCh <- fmt.Errorf("%s start: %w", cfg.Name, err)
				}
				return
			}
			if err := cmd.Wait(); err != nil {
				// Exits caused by cancellation are expected.
				select {
				case <-ctx.Done():
					return
				default:
				}
				errCh <- fmt.Errorf("%s exited: %w", cfg.Name, err)
			}
		}(cfg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	case err := <-errCh:
		return err
	case <-done:
		// A process can fail and finish in the same instant.
		select {
		case err := <-errCh:
			return err
		default:
		}
	}
	return nil
}
