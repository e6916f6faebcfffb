// Package sysmon samples host and process resource usage for the details
// report.
package sysmon

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Snapshot holds one sample of host load and of this process's footprint.
// Fields that could not be read are left at zero.
type Snapshot struct {
	HostCPUPercent float64 // 0.0 .. 100.0, since the previous sample
	HostMemPercent float64 // 0.0 .. 100.0
	ProcessRSS     uint64  // resident set size in bytes
}

// Sample collects a Snapshot. CPU uses interval 0, the delta since the
// previous call, so the first call in a process may report 0.
func Sample(ctx context.Context) Snapshot {
	var s Snapshot
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.HostCPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		s.HostMemPercent = vm.UsedPercent
	}
	if p, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			s.ProcessRSS = mi.RSS
		}
	}
	return s
}
