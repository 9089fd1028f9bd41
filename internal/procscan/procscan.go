// Package procscan abstracts process inspection for testability.
// Production code uses the Lister interface; tests inject FakeProcesses from testutil.
package procscan

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Process is a running process that matched a lookup.
type Process struct {
	PID  int32
	Name string
}

// Lister finds running processes by executable name.
type Lister interface {
	// Running returns every process whose name equals name (case-insensitive).
	Running(ctx context.Context, name string) ([]Process, error)
}

// SystemLister inspects the real process table via gopsutil.
type SystemLister struct{}

var _ Lister = (*SystemLister)(nil)

// Running walks the process table. Processes that exit or deny access while
// being inspected are skipped.
func (l *SystemLister) Running(ctx context.Context, name string) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("procscan.Running: %w", err)
	}
	var found []Process
	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if strings.EqualFold(pname, name) {
			found = append(found, Process{PID: p.Pid, Name: pname})
		}
	}
	return found, nil
}
