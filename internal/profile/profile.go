// Package profile measures a single solve: wall-clock time and the memory
// the Go runtime allocated while it ran.
package profile

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// Profile is the instrumentation recorded around one call.
//
// AllocatedBytes and Allocs are cumulative over the call (the runtime never
// decreases them), so they bound the call's peak footprint from above.
// HeapDelta is the change in live heap and may be negative after a GC.
type Profile struct {
	Duration       time.Duration
	AllocatedBytes uint64
	Allocs         uint64
	HeapDelta      int64
}

// Measure runs fn once and records its profile. Samples taken by concurrent
// goroutines are attributed to fn too; callers wanting exact numbers run
// Measure serially.
func Measure(fn func() []int) ([]int, Profile) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	out := fn()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	return out, Profile{
		Duration:       elapsed,
		AllocatedBytes: after.TotalAlloc - before.TotalAlloc,
		Allocs:         after.Mallocs - before.Mallocs,
		HeapDelta:      int64(after.HeapAlloc) - int64(before.HeapAlloc),
	}
}

// String renders the profile on one line, sizes in IEC units.
func (p Profile) String() string {
	return fmt.Sprintf("time=%s allocated=%s allocs=%d heap=%s",
		p.Duration, humanize.IBytes(p.AllocatedBytes), p.Allocs, signedBytes(p.HeapDelta))
}

func signedBytes(v int64) string {
	if v < 0 {
		return "-" + humanize.IBytes(uint64(-v))
	}

	return "+" + humanize.IBytes(uint64(v))
}
