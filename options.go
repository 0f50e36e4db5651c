package ttlstore

import (
	"github.com/achu-1612/ttlstore/clock"
	"github.com/achu-1612/ttlstore/log"
)

const (
	// defaultName is the logger name used when none is provided.
	defaultName = "store"

	// defaultDegree is the B-tree degree used when none is provided.
	defaultDegree = 32
)

// Options represents the options for the store initialization.
type Options struct {
	// Clock is the time source. Defaults to clock.System().
	Clock clock.Clock

	// Name tags every log line of the store.
	Name string

	// Logger replaces the built-in logrus logger when set.
	// SuppressLog and DebugLogs are ignored in that case.
	Logger log.Logger

	SuppressLog bool
	DebugLogs   bool

	// Degree is the B-tree degree of both indexes.
	Degree int
}
