package nxncube

import "go.uber.org/zap"

type config struct {
	log               *zap.Logger
	completeSliceSwap bool
	oddFaceSwap       bool
	sanityChecks      bool
}

func defaultConfig() config {
	return config{log: zap.NewNop()}
}

// Option configures a commutator engine or solver.
type Option func(*config)

// WithLogger routes structured logs to the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithCompleteSliceSwap enables the 4-move whole-line swap between adjacent
// faces. It moves many cells per turn but scrambles edge wings, so it is off
// unless the caller explicitly accepts that.
func WithCompleteSliceSwap() Option {
	return func(c *config) { c.completeSliceSwap = true }
}

// WithOddFaceSwap requests whole-face swapping on odd cubes whose fixed
// middles disagree with the wanted scheme. The solver reports
// ErrFaceSwapDisabled when the request would actually be needed.
func WithOddFaceSwap() Option {
	return func(c *config) { c.oddFaceSwap = true }
}

// WithSanityChecks verifies the sticker color histogram after every executed
// commutator. Cheap relative to the search, useful when changing move
// tables.
func WithSanityChecks() Option {
	return func(c *config) { c.sanityChecks = true }
}
