package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"skiff/types"
)

// Tracer provides function-call tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a function name matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Call logs a function call
func (t *Tracer) Call(name string, args []types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	argStrs := make([]string, len(args))
	for i, arg := range args {
		argStrs[i] = arg.String()
	}
	fmt.Fprintf(t.writer, "[TRACE] CALL %s(%s)\n", name, strings.Join(argStrs, ", "))
}

// Return logs a function return value
func (t *Tracer) Return(name string, result types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	resultStr := "nil"
	if result != nil {
		resultStr = result.String()
	}
	fmt.Fprintf(t.writer, "[TRACE] RETURN %s => %s\n", name, resultStr)
}

// Fail logs a function call that ended in a runtime error
func (t *Tracer) Fail(name string, err error) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] ERROR %s: %v\n", name, err)
}

// Global convenience functions

// Call logs a function call using the global tracer
func Call(name string, args []types.Value) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

// Return logs a function return using the global tracer
func Return(name string, result types.Value) {
	if globalTracer != nil {
		globalTracer.Return(name, result)
	}
}

// Fail logs a failed function call using the global tracer
func Fail(name string, err error) {
	if globalTracer != nil {
		globalTracer.Fail(name, err)
	}
}
