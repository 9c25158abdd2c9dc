package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

// Decoded logos can be large (a 300 DPI PDF page is ~100MB of RGBA);
// budget per concurrent measurement task when sizing the pool.
const perWorkerBytes = 256 << 20

// SuggestWorkers picks the measurement pool size. A positive requested
// value wins; otherwise use the CPU count, capped by available memory and
// by the number of jobs.
func SuggestWorkers(requested, jobs int) int {
	if jobs < 1 {
		jobs = 1
	}

	workers := requested
	if workers <= 0 {
		workers = runtime.NumCPU()

		if vm, err := mem.VirtualMemory(); err == nil {
			byMem := int(vm.Available / perWorkerBytes)
			if byMem < 1 {
				byMem = 1
			}
			if byMem < workers {
				workers = byMem
			}
		}
	}

	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}

	return workers
}
