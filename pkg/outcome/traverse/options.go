package traverse

import "context"

type optionKey string

const workerOptionKey optionKey = "traverse_worker_options"

type workerOptions struct {
	maxWorkers int
}

// WithMaxWorkers returns a context carrying a default concurrency bound for
// Parallel, used when the call site passes workers <= 0.
func WithMaxWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxWorkers: maxWorkers})
}

// MaxWorkers reads the context-carried bound, falling back to defaultMax.
func MaxWorkers(ctx context.Context, defaultMax int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok && options.maxWorkers > 0 {
		return options.maxWorkers
	}
	return defaultMax
}
