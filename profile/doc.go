// Package profile provides optional runtime profiling for clog.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag:
//
//	go build -tags pprof .
//	clog --pprof-mode=cpu --pprof-dir=/tmp/clog warn general "disk full"
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// Profile files are written to the output directory with names matching the
// mode (for example cpu.pprof or mem.pprof) and can be inspected with:
//
//	go tool pprof -http=: /tmp/clog/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
