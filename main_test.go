//go:build !js && !wasm

package main

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestRunAll(t *testing.T) {
	requireTool(t, "true")
	requireTool(t, "false")

	if err := runAll(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty process list")
	}
	if err := runAll(context.Background(), []procConfig{{Name: "ok", Args: []string{"true"}}}); err != nil {
		t.Fatalf("runAll(true): %v", err)
	}
	err := runAll(context.Background(), []procConfig{{Name: "build", Args: []string{"false"}}})
	if err == nil || !strings.Contains(err.Error(), "build exited") {
		t.Fatalf("expected build failure, got %v", err)
	}
}

func TestRunAllCancelled(t *testing.T) {
	requireTool(t, "sleep")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runAll(ctx, []procConfig{{Name: "sleep", Args: []string{"sleep", "5"}}}); err != nil {
		t.Fatalf("cancelled run should not error: %v", err)
	}
}
