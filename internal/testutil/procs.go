package testutil

import (
	"context"

	"github.com/hbjs97/cswap/internal/procscan"
)

// FakeProcesses returns pre-configured process lookups for testing.
type FakeProcesses struct {
	// Procs maps a process name to the processes reported as running.
	Procs map[string][]procscan.Process

	// Err, if set, is returned by every lookup.
	Err error

	// Calls records the names that were looked up, in order.
	Calls []string
}

// NewFakeProcesses creates a FakeProcesses with no running processes.
func NewFakeProcesses() *FakeProcesses {
	return &FakeProcesses{Procs: make(map[string][]procscan.Process)}
}

// SetRunning registers pids as running under name.
func (f *FakeProcesses) SetRunning(name string, pids ...int32) {
	for _, pid := range pids {
		f.Procs[name] = append(f.Procs[name], procscan.Process{PID: pid, Name: name})
	}
}

// Running implements procscan.Lister.
func (f *FakeProcesses) Running(_ context.Context, name string) ([]procscan.Process, error) {
	f.Calls = append(f.Calls, name)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Procs[name], nil
}
