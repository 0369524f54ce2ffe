package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine a render ran on
type HostInfo struct {
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64 // Bytes
}

// DefaultWorkerCount returns the number of logical cores, falling back to
// the Go runtime's view when the host cannot be queried
func DefaultWorkerCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// GetHostInfo gathers CPU and memory details. Fields that cannot be read
// are left zero; the error reports the first failure.
func GetHostInfo() (HostInfo, error) {
	info := HostInfo{LogicalCores: DefaultWorkerCount()}

	cpuInfo, err := cpu.Info()
	if err == nil && len(cpuInfo) > 0 {
		info.CPUModel = cpuInfo[0].ModelName
	}

	memInfo, memErr := mem.VirtualMemory()
	if memErr == nil {
		info.TotalMemory = memInfo.Total
	} else if err == nil {
		err = memErr
	}

	return info, err
}
