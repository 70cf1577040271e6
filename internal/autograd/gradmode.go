package autograd

// Process-wide gradient-tracking and training-mode toggles.
//
// Both are scoped and stack-like: the With* helpers push the previous value
// and restore it on return, so nested scopes compose. The engine is
// single-threaded; concurrent graph construction would need these to become
// flow-local state instead of package variables.
var (
	gradEnabled = true
	trainMode   = false
)

// GradEnabled reports whether operations currently record graph nodes.
func GradEnabled() bool {
	return gradEnabled
}

// NoGrad runs fn with gradient recording disabled. Operations applied inside
// fn never attach producer nodes, pruning the graph at that point.
func NoGrad(fn func()) {
	WithGradEnabled(false, fn)
}

// WithGradEnabled runs fn with gradient recording set to enabled, restoring
// the previous setting on return (also on panic).
func WithGradEnabled(enabled bool, fn func()) {
	prev := gradEnabled
	gradEnabled = enabled
	defer func() { gradEnabled = prev }()
	fn()
}

// IsTraining reports whether training mode is active. Layers with distinct
// train/eval behavior (dropout and friends) consult this.
func IsTraining() bool {
	return trainMode
}

// WithTraining runs fn with training mode set to enabled, restoring the
// previous setting on return (also on panic).
func WithTraining(enabled bool, fn func()) {
	prev := trainMode
	trainMode = enabled
	defer func() { trainMode = prev }()
	fn()
}
