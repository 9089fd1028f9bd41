package testutil

import (
	"context"
	"errors"
	"testing"
)

func TestFakeProcesses_Running(t *testing.T) {
	t.Parallel()

	fp := NewFakeProcesses()
	fp.SetRunning("sober", 41, 42)

	procs, err := fp.Running(context.Background(), "sober")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(procs) != 2 || procs[1].PID != 42 {
		t.Errorf("unexpected processes: %+v", procs)
	}
}

func TestFakeProcesses_NotRunning(t *testing.T) {
	t.Parallel()

	fp := NewFakeProcesses()
	procs, err := fp.Running(context.Background(), "sober")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(procs) != 0 {
		t.Errorf("expected no processes, got %+v", procs)
	}
}

func TestFakeProcesses_RecordsCallsAndErrors(t *testing.T) {
	t.Parallel()

	fp := NewFakeProcesses()
	fp.Err = errors.New("boom")

	if _, err := fp.Running(context.Background(), "sober"); err == nil {
		t.Fatal("expected error")
	}
	if len(fp.Calls) != 1 || fp.Calls[0] != "sober" {
		t.Errorf("unexpected calls: %v", fp.Calls)
	}
}
